// Package keys holds the long-term key types that appear inside decoded
// content.
package keys

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"

	"github.com/go-i2p/go-signalcontent/lib/crypto/curve25519"
)

var log = logger.GetGoI2PLogger()

// IdentityKey is a participant's long-term public identity key.
type IdentityKey struct {
	publicKey curve25519.Curve25519PublicKey
}

// NewIdentityKey decodes a type-prefixed identity key starting at offset.
// Errors wrap the curve25519 sentinel that describes the failure.
func NewIdentityKey(data []byte, offset int) (IdentityKey, error) {
	pub, err := curve25519.DecodePoint(data, offset)
	if err != nil {
		log.WithFields(logger.Fields{
			"at":     "keys.NewIdentityKey",
			"length": len(data),
			"offset": offset,
			"reason": err.Error(),
		}).Debug("identity_key_rejected")
		return IdentityKey{}, oops.Wrapf(err, "identity key")
	}
	return IdentityKey{publicKey: pub}, nil
}

func (k IdentityKey) PublicKey() curve25519.Curve25519PublicKey {
	return k.publicKey
}

// Serialize returns the type-prefixed encoding NewIdentityKey accepts.
func (k IdentityKey) Serialize() []byte {
	if k.publicKey == nil {
		return nil
	}
	return k.publicKey.Serialize()
}

// Fingerprint is the hex SHA-256 of the serialized key, used for display.
// The zero key has an empty fingerprint.
func (k IdentityKey) Fingerprint() string {
	if k.IsZero() {
		return ""
	}
	sum := sha256.Sum256(k.Serialize())
	return hex.EncodeToString(sum[:])
}

func (k IdentityKey) IsZero() bool {
	return k.publicKey == nil
}
