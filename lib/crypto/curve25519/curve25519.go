// Package curve25519 decodes the serialized form of Curve25519 public keys
// used for identity keys: a one-byte key type followed by the 32-byte
// Montgomery u-coordinate.
package curve25519

import (
	"errors"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"golang.org/x/crypto/curve25519"
)

var log = logger.GetGoI2PLogger()

// DjbType is the key-type prefix byte of a serialized Curve25519 public key.
const DjbType byte = 0x05

// SerializedSize is the length of a type-prefixed public key.
const SerializedSize = 1 + curve25519.PointSize

// Sentinel errors for key decoding. They use errors.New so callers can match
// them with errors.Is().
var (
	ErrNoKeyType    = errors.New("no key type identifier")
	ErrBadKeyType   = errors.New("bad key type")
	ErrBadKeyLength = errors.New("bad public key length")
)

/*
[Curve25519 public key]
Description
Type-prefixed Montgomery public key.

Contents
+----+----+----+----+----+----+----+----+
|type|        point (32 bytes)           |
+----+                                   +
~                                       ~
+----+----+----+----+----+----+----+----+

type :: 1 byte, always DjbType

point :: 32 bytes, little-endian u-coordinate
*/

// DecodePoint reads a type-prefixed public key starting at offset. Bytes
// after the key are ignored.
func DecodePoint(data []byte, offset int) (Curve25519PublicKey, error) {
	if offset < 0 || offset >= len(data) {
		log.WithFields(logger.Fields{
			"at":     "curve25519.DecodePoint",
			"length": len(data),
			"offset": offset,
		}).Debug("key_type_missing")
		return nil, ErrNoKeyType
	}
	keyType := data[offset]
	if keyType != DjbType {
		return nil, oops.Errorf("%w: 0x%02x", ErrBadKeyType, keyType)
	}
	if len(data)-offset < SerializedSize {
		return nil, oops.Errorf("%w: %d bytes after offset %d", ErrBadKeyLength, len(data)-offset, offset)
	}
	key := make(Curve25519PublicKey, curve25519.PointSize)
	copy(key, data[offset+1:offset+SerializedSize])
	return key, nil
}
