package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDs(t *testing.T) {
	ids, err := ParseIDs("1, 2,65-68,,119")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 65, 66, 67, 68, 119}, ids)

	ids, err = ParseIDs("  ")
	require.NoError(t, err)
	assert.Nil(t, ids)

	for _, bad := range []string{"a", "1-b", "9-3", "-"} {
		_, err := ParseIDs(bad)
		assert.Error(t, err, bad)
	}
}
