package apipoolv1

import (
	"context"

	"github.com/fulldump/inceptionpool/pool"
)

type listBlocksItem struct {
	Handle pool.Handle `json:"handle"`
	Offset int         `json:"offset"`
	Length int         `json:"length"`
}

// listBlocks returns block locations in physical order.
func listBlocks(ctx context.Context) ([]*listBlocksItem, error) {

	col, err := getCollection(ctx)
	if err != nil {
		return nil, err
	}

	result := []*listBlocksItem{}
	for _, b := range col.ListBlocks() {
		result = append(result, &listBlocksItem{
			Handle: b.Handle,
			Offset: b.Offset,
			Length: b.Length,
		})
	}

	return result, nil
}
