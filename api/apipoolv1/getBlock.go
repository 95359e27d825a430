package apipoolv1

import (
	"context"
	"net/http"
)

func getBlock(ctx context.Context, r *http.Request) (*BlockResponse, error) {

	input := &handleRequest{}
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

	block, err := col.GetBlock(h)
	if err != nil {
		return nil, err
	}

	return newBlockResponse(block), nil
}
