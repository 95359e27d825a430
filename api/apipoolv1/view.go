package apipoolv1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SierraSoftworks/connor"

	"github.com/fulldump/inceptionpool/collection"
)

var newline = []byte("\n")

type viewRequest struct {
	Filter map[string]interface{} `json:"filter"`
	Skip   int64                  `json:"skip"`
	Limit  int64                  `json:"limit"`
}

// view streams the contiguous view of the pool as JSON lines, one element
// per line. Elements that are not objects are matched against filters as
// {"value": element}.
func view(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	input := &viewRequest{
		Filter: map[string]interface{}{},
		Skip:   0,
		Limit:  -1,
	}
	err := readInput(r, input)
	if err != nil {
		return err
	}

	col, err := getCollection(ctx)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/x-ndjson")

	return traverseView(input, col, func(offset int, item json.RawMessage) error {
		if _, err := w.Write(item); err != nil {
			return err
		}
		_, err := w.Write(newline)
		return err
	})
}

func traverseView(params *viewRequest, col *collection.Collection, f func(offset int, item json.RawMessage) error) error {

	hasFilter := len(params.Filter) > 0

	skip := params.Skip
	limit := params.Limit

	var result error
	col.Traverse(func(offset int, item json.RawMessage) bool {

		if limit == 0 {
			return false
		}

		if hasFilter {
			match, err := matchElement(params.Filter, item)
			if err != nil {
				result = err
				return false
			}
			if !match {
				return true
			}
		}

		if skip > 0 {
			skip--
			return true
		}

		if limit > 0 {
			limit--
		}
		if err := f(offset, item); err != nil {
			result = err
			return false
		}
		return true
	})

	return result
}

func matchElement(filter map[string]interface{}, item json.RawMessage) (bool, error) {

	var value interface{}
	err := json.Unmarshal(item, &value) // items are validated on insert
	if err != nil {
		return false, err
	}

	data, ok := value.(map[string]interface{})
	if !ok {
		data = map[string]interface{}{"value": value}
	}

	match, err := connor.Match(filter, data)
	if err != nil {
		return false, fmt.Errorf("%w: match: %s", ErrInvalidInput, err.Error())
	}

	return match, nil
}
