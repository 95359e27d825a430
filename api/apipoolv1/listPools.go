package apipoolv1

import (
	"context"
)

func listPools(ctx context.Context) []*PoolResponse {

	s := GetServicer(ctx)

	result := []*PoolResponse{}
	for _, col := range s.ListPools() {
		result = append(result, newPoolResponse(col))
	}

	return result
}
