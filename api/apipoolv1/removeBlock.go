package apipoolv1

import (
	"context"
	"net/http"

	"github.com/fulldump/inceptionpool/pool"
)

type handleRequest struct {
	Handle *pool.Handle `json:"handle"`
}

// removeBlock answers with the removed block and its items.
func removeBlock(ctx context.Context, r *http.Request) (*BlockResponse, error) {

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

	block, err := col.RemoveBlock(h)
	if err != nil {
		return nil, err
	}

	return newBlockResponse(block), nil
}
