package main

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

func TestAdd(c Config) {

	client := NewClient()
	defer client.CloseIdleConnections()

	poolName := CreatePool(client, c.Base)
	url := c.Base + "/v1/pools/" + poolName + ":addBlock"

	pending := c.N

	t0 := time.Now()
	Parallel(c.Workers, func(worker int) {
		for {
			n := atomic.AddInt64(&pending, -1)
			if n < 0 {
				return
			}
			err := Post(client, url, JSON{"items": Items(c.BlockSize, n)}, nil)
			if err != nil {
				log.Error().Err(err).Int("worker", worker).Msg("add block")
				return
			}
		}
	})

	Report("added blocks", c.N, time.Since(t0))
}
