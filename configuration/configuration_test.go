package configuration

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, "127.0.0.1:8080", c.HttpAddr)
	assert.Equal(t, 0, c.MaxPoolSize)
	assert.Empty(t, c.ApiKey)
	assert.Equal(t, zerolog.InfoLevel, c.Level())
}

func TestLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}

	for input, expected := range cases {
		c := Configuration{LogLevel: input}
		assert.Equal(t, expected, c.Level(), "input %q", input)
	}
}
