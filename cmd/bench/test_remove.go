package main

import (
	"time"

	"github.com/rs/zerolog/log"
)

func TestRemove(c Config) {

	client := NewClient()
	defer client.CloseIdleConnections()

	poolName := CreatePool(client, c.Base)
	base := c.Base + "/v1/pools/" + poolName

	log.Info().Int64("blocks", c.N).Msg("preload blocks")
	handles := make([]uint32, c.N)
	for i := range handles {
		block := &Block{}
		err := Post(client, base+":addBlock", JSON{"items": Items(c.BlockSize, int64(i))}, block)
		if err != nil {
			log.Fatal().Err(err).Msg("preload")
		}
		handles[i] = block.Handle
	}

	t0 := time.Now()
	Parallel(c.Workers, func(worker int) {
		// Interleaved so removals hit the whole buffer, not only its tail
		for i := worker; i < len(handles); i += c.Workers {
			err := Post(client, base+":removeBlock", JSON{"handle": handles[i]}, nil)
			if err != nil {
				log.Error().Err(err).Int("worker", worker).Msg("remove block")
				return
			}
		}
	})

	Report("removed blocks", c.N, time.Since(t0))
}
