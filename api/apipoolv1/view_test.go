package apipoolv1

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/fulldump/inceptionpool/collection"
)

func newTestCollection(t *testing.T) *collection.Collection {

	t.Helper()

	col := collection.NewCollection("view", nil)

	_, err := col.AddBlock([]json.RawMessage{
		json.RawMessage(`{"name":"Alice","age":30}`),
		json.RawMessage(`{"name":"Bob","age":20}`),
	})
	if err != nil {
		t.Fatalf("add block: %v", err)
	}

	_, err = col.AddBlock([]json.RawMessage{
		json.RawMessage(`5`),
		json.RawMessage(`{"name":"Carol","age":40}`),
	})
	if err != nil {
		t.Fatalf("add block: %v", err)
	}

	return col
}

func collect(t *testing.T, params *viewRequest, col *collection.Collection) []int {

	t.Helper()

	offsets := []int{}
	err := traverseView(params, col, func(offset int, item json.RawMessage) error {
		offsets = append(offsets, offset)
		return nil
	})
	if err != nil {
		t.Fatalf("traverse view: %v", err)
	}

	return offsets
}

func TestTraverseView_All(t *testing.T) {

	col := newTestCollection(t)

	got := collect(t, &viewRequest{Limit: -1}, col)
	if !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
		t.Fatalf("unexpected offsets %v", got)
	}
}

func TestTraverseView_SkipLimit(t *testing.T) {

	col := newTestCollection(t)

	got := collect(t, &viewRequest{Skip: 1, Limit: 2}, col)
	if !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("unexpected offsets %v", got)
	}

	got = collect(t, &viewRequest{Limit: 0}, col)
	if len(got) != 0 {
		t.Fatalf("expected nothing with limit 0, got %v", got)
	}
}

func TestTraverseView_Filter(t *testing.T) {

	col := newTestCollection(t)

	got := collect(t, &viewRequest{
		Filter: map[string]interface{}{
			"name": "Carol",
		},
		Limit: -1,
	}, col)
	if !reflect.DeepEqual(got, []int{3}) {
		t.Fatalf("unexpected offsets %v", got)
	}

	got = collect(t, &viewRequest{
		Filter: map[string]interface{}{"value": float64(5)},
		Limit:  -1,
	}, col)
	if !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("unexpected offsets %v", got)
	}
}

func TestTraverseView_StopsOnWriteError(t *testing.T) {

	col := newTestCollection(t)

	broken := errors.New("broken pipe")
	calls := 0
	err := traverseView(&viewRequest{Limit: -1}, col, func(offset int, item json.RawMessage) error {
		calls++
		return broken
	})

	if !errors.Is(err, broken) {
		t.Fatalf("expected write error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected traversal to stop after first failed write, got %d calls", calls)
	}
}
