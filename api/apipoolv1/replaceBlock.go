package apipoolv1

import (
	"context"
	"net/http"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/inceptionpool/pool"
)

type replaceBlockRequest struct {
	Handle *pool.Handle     `json:"handle"`
	Items  []jsontext.Value `json:"items"`
}

func replaceBlock(ctx context.Context, r *http.Request) (*BlockResponse, error) {

	input := &replaceBlockRequest{}
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

	block, err := col.ReplaceBlock(h, rawItems(input.Items))
	if err != nil {
		return nil, err
	}

	return newBlockResponse(block), nil
}
