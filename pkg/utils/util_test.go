package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandDigits(t *testing.T) {
	code, err := RandDigits(6)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, ch := range code {
		assert.True(t, ch >= '0' && ch <= '9', "unexpected %q", ch)
	}
}

func TestPanicTrace(t *testing.T) {
	trace := PanicTrace("boom")
	assert.Contains(t, trace, "boom")
}
