package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumCoercesBadCellsToZero(t *testing.T) {
	assert.Equal(t, 150.0, Sum([]string{"100", "bad", "50"}))
	assert.Equal(t, 0.0, Sum(nil))
	assert.Equal(t, 0.0, Sum([]string{"", "x"}))
}

func TestMeanSkipsBadCells(t *testing.T) {
	m, ok := Mean([]string{"6.0", "7.0", "bad"})
	require.True(t, ok)
	assert.InDelta(t, 6.5, m, 1e-9)

	_, ok = Mean([]string{"", "bad"})
	assert.False(t, ok)
}

func TestParseNumber(t *testing.T) {
	f, ok := ParseNumber("  2.75 ")
	require.True(t, ok)
	assert.Equal(t, 2.75, f)

	_, ok = ParseNumber("1,5")
	assert.False(t, ok)
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2024-08-10")
	require.True(t, ok)
	assert.Equal(t, "2024-08", d.Format("2006-01"))

	d, ok = ParseDate("10/08/2024")
	require.True(t, ok)
	assert.Equal(t, "2024-08", d.Format("2006-01"))

	_, ok = ParseDate("soon")
	assert.False(t, ok)
	_, ok = ParseDate("")
	assert.False(t, ok)
}
