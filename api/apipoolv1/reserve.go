package apipoolv1

import (
	"context"
	"fmt"
	"net/http"
)

type reserveRequest struct {
	Capacity int `json:"capacity"`
}

func reserve(ctx context.Context, r *http.Request) (*sizeResponse, error) {

	input := &reserveRequest{}
	err := readInput(r, input)
	if err != nil {
		return nil, err
	}
	if input.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative", ErrInvalidInput)
	}

	col, err := getCollection(ctx)
	if err != nil {
		return nil, err
	}

	err = col.Reserve(input.Capacity)
	if err != nil {
		return nil, err
	}

	return newSizeResponse(col), nil
}
