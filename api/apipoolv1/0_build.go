package apipoolv1

import (
	"github.com/fulldump/box"

	"github.com/fulldump/inceptionpool/service"
)

func BuildV1Pool(v1 *box.R, s service.Servicer) *box.R {

	pools := v1.Resource("/pools").
		WithActions(
			box.Get(listPools),
			box.Post(createPool),
		)

	v1.Resource("/pools/{poolName}").
		WithActions(
			box.Get(getPool),
			box.ActionPost(dropPool),
			box.ActionPost(addBlock),
			box.ActionPost(appendElement),
			box.ActionPost(replaceBlock),
			box.ActionPost(removeBlock),
			box.ActionPost(getBlock),
			box.ActionPost(listBlocks),
			box.ActionPost(clearPool).WithName("clear"),
			box.ActionPost(reserve),
			box.ActionPost(size),
			box.ActionPost(view),
		)

	return pools
}
