package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fulldump/inceptionpool/bootstrap"
	"github.com/fulldump/inceptionpool/configuration"
)

type JSON = map[string]any

type Block struct {
	Handle uint32 `json:"handle"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

func Parallel(workers int, f func(worker int)) {
	wg := &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			f(worker)
		}(i)
	}
	wg.Wait()
}

func NewClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxConnsPerHost:     1024,
			MaxIdleConnsPerHost: 1024,
			MaxIdleConns:        1024,
		},
		Timeout: 10 * time.Second,
	}
}

// Post sends payload as JSON and decodes the answer into result when it is
// not nil.
func Post(client *http.Client, url string, payload any, result any) error {

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("bad status %s: %s", resp.Status, msg)
	}

	if result == nil {
		_, err = io.Copy(io.Discard, resp.Body)
		return err
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func CreatePool(client *http.Client, base string) string {

	name := "pool-" + strconv.FormatInt(time.Now().UnixNano(), 10)

	err := Post(client, base+"/v1/pools", JSON{"name": name}, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("create pool")
	}

	return name
}

func Items(n int, seed int64) []JSON {
	items := make([]JSON, n)
	for i := range items {
		items[i] = JSON{"n": seed, "i": i}
	}
	return items
}

func Report(what string, n int64, took time.Duration) {
	fmt.Println(what+":", n)
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f ops/sec\n", float64(n)/took.Seconds())
}

// WaitReady polls base until the database is operating.
func WaitReady(base string) {
	client := NewClient()
	defer client.CloseIdleConnections()

	for i := 0; i < 100; i++ {
		resp, err := client.Get(base + "/v1/pools")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	log.Fatal().Str("base", base).Msg("server not ready")
}

func CreateServer(c *Config) (start, stop func()) {

	conf := configuration.Default()
	conf.ShowBanner = false
	conf.EnableCompression = false
	c.Base = "http://" + conf.HttpAddr

	return bootstrap.Bootstrap(&conf)
}
