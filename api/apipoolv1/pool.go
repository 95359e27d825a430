package apipoolv1

import (
	"encoding/json"
	"time"

	"github.com/fulldump/inceptionpool/collection"
	"github.com/fulldump/inceptionpool/pool"
)

type PoolResponse struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Size      int       `json:"size"`
	Blocks    int       `json:"blocks"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

func newPoolResponse(col *collection.Collection) *PoolResponse {
	return &PoolResponse{
		Id:        col.Id,
		Name:      col.Name,
		Size:      col.Size(),
		Blocks:    col.Blocks(),
		Capacity:  col.Capacity(),
		CreatedAt: col.CreatedAt,
	}
}

type BlockResponse struct {
	Handle pool.Handle       `json:"handle"`
	Offset int               `json:"offset"`
	Length int               `json:"length"`
	Items  []json.RawMessage `json:"items,omitempty"`
}

func newBlockResponse(b *collection.Block) *BlockResponse {
	return &BlockResponse{
		Handle: b.Handle,
		Offset: b.Offset,
		Length: b.Length,
		Items:  b.Items,
	}
}
