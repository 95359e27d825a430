package apipoolv1

import (
	"context"
)

func getPool(ctx context.Context) (*PoolResponse, error) {

	col, err := getCollection(ctx)
	if err != nil {
		return nil, err
	}

	return newPoolResponse(col), nil
}
