package collection

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/fulldump/biff"

	"github.com/fulldump/inceptionpool/pool"
)

func raw(items ...string) []json.RawMessage {
	result := make([]json.RawMessage, len(items))
	for i, item := range items {
		result[i] = json.RawMessage(item)
	}
	return result
}

func view(c *Collection) []string {
	result := []string{}
	c.Traverse(func(offset int, item json.RawMessage) bool {
		result = append(result, string(item))
		return true
	})
	return result
}

func TestCollection(t *testing.T) {

	biff.Alternative("New collection", func(a *biff.A) {

		c := NewCollection("my-pool", nil)
		biff.AssertEqual(c.Name, "my-pool")
		biff.AssertNotEqual(c.Id, "")
		biff.AssertEqual(c.Size(), 0)
		biff.AssertEqual(c.Blocks(), 0)

		a.Alternative("Add blocks", func(a *biff.A) {

			b1, err := c.AddBlock(raw(`{"name": "Alice"}`, `1`))
			biff.AssertNil(err)
			biff.AssertEqualJson(b1, &Block{Handle: 0, Offset: 0, Length: 2})

			b2, err := c.AddBlock(raw(`"two"`))
			biff.AssertNil(err)
			biff.AssertEqualJson(b2, &Block{Handle: 1, Offset: 2, Length: 1})

			biff.AssertEqual(view(c), []string{`{"name":"Alice"}`, `1`, `"two"`})

			a.Alternative("Append element", func(a *biff.A) {
				b, err := c.AppendElement(b1.Handle, json.RawMessage(`true`))
				biff.AssertNil(err)
				biff.AssertEqual(b.Length, 3)
				biff.AssertEqual(view(c), []string{`{"name":"Alice"}`, `1`, `true`, `"two"`})

				got, err := c.GetBlock(b2.Handle)
				biff.AssertNil(err)
				biff.AssertEqual(got.Offset, 3)
			})

			a.Alternative("Replace block", func(a *biff.A) {
				b, err := c.ReplaceBlock(b1.Handle, raw(`null`))
				biff.AssertNil(err)
				biff.AssertEqual(b.Length, 1)
				biff.AssertEqual(view(c), []string{`null`, `"two"`})
			})

			a.Alternative("Remove block", func(a *biff.A) {
				removed, err := c.RemoveBlock(b1.Handle)
				biff.AssertNil(err)
				biff.AssertEqual(len(removed.Items), 2)
				biff.AssertEqual(view(c), []string{`"two"`})

				_, err = c.GetBlock(b1.Handle)
				biff.AssertTrue(errors.Is(err, pool.ErrUnknownHandle))

				blocks := c.ListBlocks()
				biff.AssertEqualJson(blocks, []*Block{{Handle: 1, Offset: 0, Length: 1}})
			})

			a.Alternative("Invalid element", func(a *biff.A) {
				_, err := c.AppendElement(b1.Handle, json.RawMessage(`{bad`))
				biff.AssertTrue(errors.Is(err, ErrInvalidElement))
				biff.AssertEqual(c.Size(), 3)
			})

			a.Alternative("Clear", func(a *biff.A) {
				c.Clear()
				biff.AssertEqual(c.Size(), 0)
				biff.AssertEqual(c.Blocks(), 0)
			})
		})
	})
}

func TestCollection_GetBlockIsASnapshot(t *testing.T) {

	c := NewCollection("snapshot", nil)
	b, _ := c.AddBlock(raw(`1`, `2`))

	got, err := c.GetBlock(b.Handle)
	if err != nil {
		t.Fatalf("get block: %v", err)
	}

	c.ReplaceBlock(b.Handle, raw(`3`))

	if string(got.Items[0]) != `1` || len(got.Items) != 2 {
		t.Fatalf("snapshot changed after replace: %s", got.Items)
	}
}

func TestCollection_MaxSize(t *testing.T) {

	c := NewCollection("bounded", &pool.Config{MaxSize: 2})
	if _, err := c.AddBlock(raw(`1`, `2`, `3`)); !errors.Is(err, pool.ErrCapacityExhausted) {
		t.Fatalf("expected ErrCapacityExhausted, got %v", err)
	}
	if err := c.Reserve(3); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if c.Capacity() < 2 {
		t.Fatalf("expected capacity >= 2, got %d", c.Capacity())
	}
}
