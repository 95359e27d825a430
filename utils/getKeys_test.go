package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, GetKeys(map[string]int{"c": 3, "a": 1, "b": 2}))
	assert.Empty(t, GetKeys(map[string]bool{}))
}
