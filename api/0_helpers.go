package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/inceptionpool/api/apipoolv1"
	"github.com/fulldump/inceptionpool/collection"
	"github.com/fulldump/inceptionpool/database"
	"github.com/fulldump/inceptionpool/pool"
	"github.com/fulldump/inceptionpool/service"
)

var ErrUnavailable = errors.New("temporary unavailable")

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	return json.NewEncoder(w).Encode(p)
}

func InterceptorUnavailable(db *database.Database) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			status := db.GetStatus()
			if status == database.StatusOpening || status == database.StatusClosing {
				box.SetError(ctx, fmt.Errorf("%w: %s", ErrUnavailable, status))
				return
			}
			next(ctx)
		}
	}
}

// errorStatus maps an error to its http status and a human description.
func errorStatus(ctx context.Context, err error) (int, string) {

	var syntaxError *json.SyntaxError

	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, "user is not authenticated"
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable, "try again later"
	case errors.Is(err, box.ErrResourceNotFound):
		return http.StatusNotFound, fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String())
	case errors.Is(err, box.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method)
	case errors.Is(err, service.ErrorPoolNotFound):
		return http.StatusNotFound, fmt.Sprintf("pool '%s' does not exist", box.GetUrlParameter(ctx, "poolName"))
	case errors.Is(err, service.ErrorPoolAlreadyExists):
		return http.StatusConflict, "pool names must be unique"
	case errors.Is(err, service.ErrorInvalidPoolName):
		return http.StatusBadRequest, "pool name must not be empty"
	case errors.Is(err, pool.ErrUnknownHandle):
		return http.StatusNotFound, "handle was never issued or its block was removed"
	case errors.Is(err, pool.ErrCapacityExhausted):
		return http.StatusInsufficientStorage, "pool is full"
	case errors.Is(err, collection.ErrInvalidElement):
		return http.StatusBadRequest, "elements must be valid JSON"
	case errors.Is(err, apipoolv1.ErrInvalidInput):
		return http.StatusBadRequest, "Malformed input"
	case errors.As(err, &syntaxError), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return http.StatusBadRequest, "Malformed JSON"
	}

	return http.StatusInternalServerError, "Unexpected error"
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		status, description := errorStatus(ctx, err)

		w.WriteHeader(status)
		PrettyError{
			Message:     err.Error(),
			Description: description,
		}.MarshalTo(w)
	}
}
