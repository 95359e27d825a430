package configuration

import (
	"strings"

	"github.com/rs/zerolog"
)

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	HttpsEnabled      bool   `usage:"serve HTTPS using CertFile and KeyFile"`
	CertFile          string `usage:"TLS certificate file"`
	KeyFile           string `usage:"TLS key file"`
	ApiKey            string `usage:"api key, empty disables authentication"`
	ApiSecret         string `usage:"api secret"`
	MaxPoolSize       int    `usage:"max number of elements per pool, 0 is unbounded"`
	EnableCompression bool   `usage:"gzip responses when the client accepts it"`
	LogLevel          string `usage:"log level: debug, info, warn, error"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:          "127.0.0.1:8080",
		EnableCompression: true,
		LogLevel:          "info",
		ShowBanner:        true,
	}
}

// Level parses LogLevel, unknown values fall back to info.
func (c Configuration) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
