package content

import (
	"errors"
	"fmt"

	"github.com/samber/mo"

	"github.com/go-i2p/go-signalcontent/lib/address"
)

// Error kinds. They use errors.New so callers can match them with errors.Is().
var (
	// ErrMalformedWire means the envelope bytes could not be parsed at all.
	ErrMalformedWire = errors.New("malformed wire data")
	// ErrInvalidMessage means a parsed structure violates a required invariant.
	ErrInvalidMessage = errors.New("invalid message")
	// ErrInvalidKey means an embedded key blob failed structural decoding.
	ErrInvalidKey = errors.New("invalid key")
	// ErrUnsupportedVersion means a data message requires a newer protocol
	// version than this package implements.
	ErrUnsupportedVersion = errors.New("unsupported data message version")
)

// ProtocolError is a fatal decode failure attributed to a sender. Kind is one
// of ErrMalformedWire, ErrInvalidMessage or ErrInvalidKey; Err is the cause.
type ProtocolError struct {
	Kind         error
	Sender       address.Address
	SenderDevice int32
	Err          error
}

func (e *ProtocolError) Error() string {
	if !e.Sender.IsValid() {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%v from %s.%d: %v", e.Kind, e.Sender.Identifier(), e.SenderDevice, e.Err)
}

func (e *ProtocolError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// UnsupportedVersionError reports a data message gated on a protocol version
// newer than CurrentVersion. Group holds the group context when it decoded,
// so callers can place a placeholder in the right conversation.
type UnsupportedVersionError struct {
	CurrentVersion  uint32
	RequiredVersion uint32
	Sender          address.Address
	SenderDevice    int32
	Group           mo.Option[Group]
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("%v: required %d, supported %d, from %s.%d",
		ErrUnsupportedVersion, e.RequiredVersion, e.CurrentVersion, e.Sender.Identifier(), e.SenderDevice)
}

func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}
