package ttlv

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedHeader(t *testing.T) {
	h := newHeader(textRecord(TagNameValue, "hello"))
	require.Equal(t, HeaderSize, h.Size())

	b, err := h.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x42, 0x00, 0x55, 0x07, 0x00, 0x00, 0x00, 0x05}, b)

	buf := make([]byte, HeaderSize)
	n, err := h.MarshalTo(buf)
	require.NoError(t, err)
	assert.Equal(t, HeaderSize, n)
	assert.Equal(t, b, buf)

	_, err = h.MarshalTo(buf[:HeaderSize-1])
	assert.ErrorIs(t, err, io.ErrShortWrite)

	var sb bytes.Buffer
	written, err := h.WriteTo(&sb)
	require.NoError(t, err)
	assert.EqualValues(t, HeaderSize, written)

	var got recordHeader
	read, err := got.ReadFrom(&sb)
	require.NoError(t, err)
	assert.EqualValues(t, HeaderSize, read)
	assert.Equal(t, h.Payload, got.Payload)

	t.Run("UnmarshalBinary", func(t *testing.T) {
		var got recordHeader
		require.NoError(t, got.UnmarshalBinary(b))
		assert.Equal(t, h.Payload, got.Payload)

		require.NoError(t, got.UnmarshalBinary(append(bytes.Clone(b), 0, 0, 0)))
		assert.Equal(t, h.Payload, got.Payload)

		assert.ErrorIs(t, got.UnmarshalBinary(append(bytes.Clone(b), 0, 1)), ErrTrailingData)
		assert.ErrorIs(t, got.UnmarshalBinary(b[:5]), ErrTruncated)
	})
}
