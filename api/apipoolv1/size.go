package apipoolv1

import (
	"context"

	"github.com/fulldump/inceptionpool/collection"
)

type sizeResponse struct {
	Size     int `json:"size"`
	Blocks   int `json:"blocks"`
	Capacity int `json:"capacity"`
}

func newSizeResponse(col *collection.Collection) *sizeResponse {
	return &sizeResponse{
		Size:     col.Size(),
		Blocks:   col.Blocks(),
		Capacity: col.Capacity(),
	}
}

func size(ctx context.Context) (*sizeResponse, error) {

	col, err := getCollection(ctx)
	if err != nil {
		return nil, err
	}

	return newSizeResponse(col), nil
}
