package curve25519

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validKey() []byte {
	return append([]byte{DjbType}, bytes.Repeat([]byte{0x42}, 32)...)
}

func TestDecodePoint(t *testing.T) {
	key, err := DecodePoint(validKey(), 0)
	require.NoError(t, err)
	assert.Len(t, key, 32)
	assert.Equal(t, validKey(), key.Serialize())
	assert.Equal(t, strings.Repeat("42", 32), key.String())
}

func TestDecodePointWithOffsetAndTrailingBytes(t *testing.T) {
	data := append([]byte{0xff, 0xff}, validKey()...)
	data = append(data, 0x00)

	key, err := DecodePoint(data, 2)
	require.NoError(t, err)
	assert.Equal(t, Curve25519PublicKey(bytes.Repeat([]byte{0x42}, 32)), key)

	// The decoded key must not alias the input.
	data[3] = 0x00
	assert.Equal(t, byte(0x42), key[0])
}

func TestDecodePointErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		offset int
		want   error
	}{
		{"empty", nil, 0, ErrNoKeyType},
		{"offset past end", validKey(), 33, ErrNoKeyType},
		{"negative offset", validKey(), -1, ErrNoKeyType},
		{"wrong type", append([]byte{0x04}, bytes.Repeat([]byte{1}, 32)...), 0, ErrBadKeyType},
		{"short", validKey()[:20], 0, ErrBadKeyLength},
		{"type only", []byte{DjbType}, 0, ErrBadKeyLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePoint(tt.data, tt.offset)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
