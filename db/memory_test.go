package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySlotEmpty(t *testing.T) {
	slot := NewMemorySlot()

	data, found, err := slot.Load()
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, data)
}

func TestMemorySlotRoundTrip(t *testing.T) {
	slot := NewMemorySlot()
	require.NoError(t, slot.Save([]byte(`{"courses": []}`)))

	data, found, err := slot.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"courses": []}`, string(data))
}

func TestMemorySlotCopiesData(t *testing.T) {
	slot := NewMemorySlot()
	in := []byte("abc")
	require.NoError(t, slot.Save(in))
	in[0] = 'x'

	out, _, err := slot.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))

	out[1] = 'y'
	again, _, err := slot.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
