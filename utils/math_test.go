package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 5000, ParsePrice("5000"))
	assert.Equal(t, 5000, ParsePrice("  5000  "))
	assert.Equal(t, 0, ParsePrice(""))
	assert.Equal(t, 0, ParsePrice("call us"))
	assert.Equal(t, 0, ParsePrice("49.99"))
	assert.Equal(t, 0, ParsePrice("-100"))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 4.3, Round1(4.333))
	assert.Equal(t, 4.7, Round1(4.65))
	assert.Equal(t, 5.0, Round1(5))
	assert.Equal(t, 0.0, Round1(0))
}
