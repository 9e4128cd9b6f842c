package ledgerstate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeAddInt64(t *testing.T) {
	result, err := SafeAddInt64(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result)

	result, err = SafeAddInt64(math.MaxInt64, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), result)

	_, err = SafeAddInt64(math.MaxInt64, 1)
	assert.Error(t, err)

	_, err = SafeAddInt64(math.MinInt64, -1)
	assert.Error(t, err)
}
