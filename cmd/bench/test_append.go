package main

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// TestAppend gives one block to every worker and appends to it. Every append
// to a block that is not the last one shifts all the blocks behind it.
func TestAppend(c Config) {

	client := NewClient()
	defer client.CloseIdleConnections()

	poolName := CreatePool(client, c.Base)
	base := c.Base + "/v1/pools/" + poolName

	handles := make([]uint32, c.Workers)
	for w := range handles {
		block := &Block{}
		err := Post(client, base+":addBlock", JSON{"items": Items(1, int64(w))}, block)
		if err != nil {
			log.Fatal().Err(err).Msg("preload")
		}
		handles[w] = block.Handle
	}

	pending := c.N

	t0 := time.Now()
	Parallel(c.Workers, func(worker int) {
		for {
			n := atomic.AddInt64(&pending, -1)
			if n < 0 {
				return
			}
			err := Post(client, base+":appendElement", JSON{
				"handle": handles[worker],
				"value":  JSON{"n": n},
			}, nil)
			if err != nil {
				log.Error().Err(err).Int("worker", worker).Msg("append element")
				return
			}
		}
	})

	Report("appended elements", c.N, time.Since(t0))
}
