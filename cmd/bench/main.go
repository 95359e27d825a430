package main

import (
	"fmt"
	"strings"

	"github.com/fulldump/goconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Test      string `usage:"name of the test: ALL | ADD | APPEND | REMOVE"`
	Base      string `usage:"base URL, empty starts an embedded server"`
	N         int64  `usage:"number of operations"`
	Workers   int    `usage:"number of workers"`
	BlockSize int    `usage:"elements per added block"`
}

func main() {

	c := Config{
		Test:      "all",
		Base:      "",
		N:         100_000,
		Workers:   16,
		BlockSize: 4,
	}
	goconfig.Read(&c)

	if c.Base == "" {
		start, stop := CreateServer(&c)
		defer stop()
		go start()
		WaitReady(c.Base)
	}

	switch strings.ToUpper(c.Test) {
	case "ALL":
		TestAdd(c)
		TestAppend(c)
		TestRemove(c)
	case "ADD":
		TestAdd(c)
	case "APPEND":
		TestAppend(c)
	case "REMOVE":
		TestRemove(c)
	default:
		log.Fatal().Str("test", c.Test).Msg("unknown test")
	}

	fmt.Println("done")
}
