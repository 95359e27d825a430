package database

import (
	"testing"
	"time"

	"github.com/fulldump/biff"
)

func TestDatabase(t *testing.T) {

	biff.Alternative("New database", func(a *biff.A) {

		db := NewDatabase(&Config{MaxPoolSize: 10})
		biff.AssertEqual(db.GetStatus(), StatusOpening)

		a.Alternative("Load", func(a *biff.A) {
			biff.AssertNil(db.Load())
			biff.AssertEqual(db.GetStatus(), StatusOperating)
		})

		a.Alternative("Create collection", func(a *biff.A) {
			col, err := db.CreateCollection("b")
			biff.AssertNil(err)
			biff.AssertEqual(col.Name, "b")

			_, err = db.CreateCollection("b")
			biff.AssertNotNil(err)

			db.CreateCollection("a")
			names := []string{}
			for _, c := range db.ListCollections() {
				names = append(names, c.Name)
			}
			biff.AssertEqual(names, []string{"a", "b"})

			a.Alternative("Max pool size is applied", func(a *biff.A) {
				biff.AssertNil(col.Reserve(1000))
				biff.AssertTrue(col.Capacity() >= 10)
				biff.AssertTrue(col.Capacity() < 1000)
			})

			a.Alternative("Drop collection", func(a *biff.A) {
				biff.AssertNil(db.DropCollection("b"))
				_, exists := db.GetCollection("b")
				biff.AssertFalse(exists)
				biff.AssertNotNil(db.DropCollection("b"))
			})
		})
	})
}

func TestDatabase_StartStop(t *testing.T) {

	db := NewDatabase(nil)

	done := make(chan error)
	go func() {
		done <- db.Start()
	}()

	deadline := time.Now().Add(time.Second)
	for db.GetStatus() != StatusOperating {
		if time.Now().After(deadline) {
			t.Fatalf("database did not become operational")
		}
		time.Sleep(time.Millisecond)
	}

	db.Stop()
	db.Stop() // idempotent

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("start: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("start did not return after stop")
	}

	if db.GetStatus() != StatusClosing {
		t.Fatalf("expected status %s, got %s", StatusClosing, db.GetStatus())
	}
}
