package apipoolv1

import (
	"context"
)

func clearPool(ctx context.Context) (*PoolResponse, error) {

	col, err := getCollection(ctx)
	if err != nil {
		return nil, err
	}

	col.Clear()

	return newPoolResponse(col), nil
}
