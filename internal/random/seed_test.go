package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeededReplays(t *testing.T) {
	a, b := NewSeeded(42), NewSeeded(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.IntN(3), b.IntN(3))
	}
}

func TestNew(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	n := r.IntN(3)
	assert.GreaterOrEqual(t, n, 0)
	assert.Less(t, n, 3)
}
