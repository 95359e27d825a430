package apipoolv1

import (
	"context"

	"github.com/fulldump/inceptionpool/service"
)

const ContextServicerKey = "5a0e6c2e-9f4b-11f0-8de9-0242ac120002"

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, ContextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(ContextServicerKey).(service.Servicer) // TODO: can raise panic :D
}
