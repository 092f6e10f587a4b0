package ijson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSlice(t *testing.T) {
	data, err := Encode([]int64{5, -9223372036854775808})
	require.NoError(t, err)
	assert.Equal(t, `[5,-9223372036854775808]`, string(data))
}

func TestDecode(t *testing.T) {
	var v struct {
		Min int64 `json:"min"`
	}
	require.NoError(t, Decode([]byte(`{"min": 3}`), &v))
	assert.Equal(t, int64(3), v.Min)

	assert.Error(t, Decode([]byte(`{"min":`), &v))
}
