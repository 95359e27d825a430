package apipoolv1

import (
	"context"
	"net/http"

	"github.com/go-json-experiment/json/jsontext"
)

type addBlockRequest struct {
	Items []jsontext.Value `json:"items"`
}

func addBlock(ctx context.Context, w http.ResponseWriter, r *http.Request) (*BlockResponse, error) {

	input := &addBlockRequest{}
	err := readInput(r, input)
	if err != nil {
		return nil, err
	}

	col, err := getCollection(ctx)
	if err != nil {
		return nil, err
	}

	block, err := col.AddBlock(rawItems(input.Items))
	if err != nil {
		return nil, err
	}

	w.WriteHeader(http.StatusCreated)
	return newBlockResponse(block), nil
}
