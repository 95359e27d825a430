package apipoolv1

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/inceptionpool/pool"
)

type appendElementRequest struct {
	Handle *pool.Handle   `json:"handle"`
	Value  jsontext.Value `json:"value"`
}

func appendElement(ctx context.Context, r *http.Request) (*BlockResponse, error) {

	input := &appendElementRequest{}
	err := readInput(r, input)
	if err != nil {
		return nil, err
	}

	h, err := requireHandle(input.Handle)
	if err != nil {
		return nil, err
	}

	col, err := getCollection(ctx)
	if err != nil {
		return nil, err
	}

	block, err := col.AppendElement(h, json.RawMessage(input.Value))
	if err != nil {
		return nil, err
	}

	return newBlockResponse(block), nil
}
