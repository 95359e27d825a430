package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fulldump/inceptionpool/bootstrap"
	"github.com/fulldump/inceptionpool/configuration"
)

var banner = `
 ___                      _   _             ____             _ 
|_ _|_ __   ___ ___ _ __ | |_(_) ___  _ __ |  _ \ ___   ___ | |
 | || '_ \ / __/ _ \ '_ \| __| |/ _ \| '_ \| |_) / _ \ / _ \| |
 | || | | | (_|  __/ |_) | |_| | (_) | | | |  __/ (_) | (_) | |
|___|_| |_|\___\___| .__/ \__|_|\___/|_| |_|_|   \___/ \___/|_|
                   |_|              version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	zerolog.SetGlobalLevel(c.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	start, _ := bootstrap.Bootstrap(&c)
	start()
}
