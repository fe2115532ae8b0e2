package curve25519

import (
	"encoding/hex"
)

// Curve25519PublicKey is the 32-byte u-coordinate, without the type prefix.
type Curve25519PublicKey []byte

// Serialize returns the type-prefixed form accepted by DecodePoint.
func (k Curve25519PublicKey) Serialize() []byte {
	out := make([]byte, 0, SerializedSize)
	out = append(out, DjbType)
	return append(out, k...)
}

func (k Curve25519PublicKey) String() string {
	return hex.EncodeToString(k)
}
