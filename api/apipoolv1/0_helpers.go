package apipoolv1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"
	jsonv2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/inceptionpool/collection"
	"github.com/fulldump/inceptionpool/pool"
)

var ErrInvalidInput = errors.New("invalid input")

func getCollection(ctx context.Context) (*collection.Collection, error) {
	s := GetServicer(ctx)
	poolName := box.GetUrlParameter(ctx, "poolName")
	return s.GetPool(poolName)
}

// readInput decodes the request body into input, an empty body keeps the
// defaults already set in input.
func readInput(r *http.Request, input any) error {

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	if len(bytes.TrimSpace(requestBody)) == 0 {
		return nil
	}

	err = jsonv2.Unmarshal(requestBody, input)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	return nil
}

func requireHandle(h *pool.Handle) (pool.Handle, error) {
	if h == nil {
		return 0, fmt.Errorf("%w: field 'handle' is required", ErrInvalidInput)
	}
	return *h, nil
}

func rawItems(values []jsontext.Value) []json.RawMessage {
	items := make([]json.RawMessage, len(values))
	for i, v := range values {
		items[i] = json.RawMessage(v)
	}
	return items
}
