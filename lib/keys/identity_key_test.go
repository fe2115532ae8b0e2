package keys

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-i2p/go-signalcontent/lib/crypto/curve25519"
)

func serialized(fill byte) []byte {
	return append([]byte{curve25519.DjbType}, bytes.Repeat([]byte{fill}, 32)...)
}

func TestNewIdentityKey(t *testing.T) {
	key, err := NewIdentityKey(serialized(7), 0)
	require.NoError(t, err)

	assert.False(t, key.IsZero())
	assert.Equal(t, serialized(7), key.Serialize())
	assert.Len(t, key.Fingerprint(), 64)

	same, err := NewIdentityKey(serialized(7), 0)
	require.NoError(t, err)
	assert.Equal(t, key.Fingerprint(), same.Fingerprint())
	assert.Equal(t, serialized(7)[1:], []byte(key.PublicKey()))

	other, err := NewIdentityKey(serialized(8), 0)
	require.NoError(t, err)
	assert.NotEqual(t, key.Fingerprint(), other.Fingerprint())
}

func TestNewIdentityKeyRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", []byte{}, curve25519.ErrNoKeyType},
		{"wrong type", append([]byte{0x01}, bytes.Repeat([]byte{7}, 32)...), curve25519.ErrBadKeyType},
		{"truncated", serialized(7)[:10], curve25519.ErrBadKeyLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := NewIdentityKey(tt.data, 0)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, key.IsZero())
			assert.Nil(t, key.Serialize())
			assert.Empty(t, key.Fingerprint())
		})
	}
}
