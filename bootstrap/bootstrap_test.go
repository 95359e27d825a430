package bootstrap

import (
	"net/http"
	"testing"
	"time"

	"github.com/fulldump/apitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulldump/inceptionpool/configuration"
	"github.com/fulldump/inceptionpool/database"
)

func TestHandler(t *testing.T) {

	c := configuration.Default()
	c.MaxPoolSize = 3

	db := database.NewDatabase(&database.Config{MaxPoolSize: c.MaxPoolSize})
	api := apitest.NewWithHandler(Handler(&c, db))

	resp := api.Request("GET", "/v1/pools").Do()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.JSONEq(t, `{"error":{"message":"temporary unavailable: opening","description":"try again later"}}`, resp.BodyString())

	require.NoError(t, db.Load())

	resp = api.Request("POST", "/v1/pools").
		WithBodyJson(map[string]any{"name": "p"}).Do()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = api.Request("POST", "/v1/pools/p:addBlock").
		WithHeader("Accept-Encoding", "gzip").
		WithBodyJson(map[string]any{"items": []int{1, 2, 3, 4}}).Do()
	assert.Equal(t, http.StatusInsufficientStorage, resp.StatusCode)
	assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	resp = api.Request("GET", "/release").Do()
	assert.JSONEq(t, `"`+VERSION+`"`, resp.BodyString())

	db.Stop()

	resp = api.Request("GET", "/v1/pools").Do()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.JSONEq(t, `{"error":{"message":"temporary unavailable: closing","description":"try again later"}}`, resp.BodyString())
}

func TestBootstrap_StartStop(t *testing.T) {

	c := configuration.Default()
	c.HttpAddr = "127.0.0.1:0"

	start, stop := Bootstrap(&c)

	done := make(chan struct{})
	go func() {
		start()
		close(done)
	}()

	stop()
	stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("start did not return after stop")
	}
}
