package wire

import (
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

var log = logger.GetGoI2PLogger()

/*
Internal serializer envelope.

This is the structure the transport layer hands over after decryption. It
wraps either a legacy bare DataMessage or a Content, together with the
metadata that was recovered while unsealing the message and the address of
the local account.

message ContentEnvelope {
  optional AddressProto localAddress = 1;
  optional Metadata     metadata     = 2;
  oneof data {
    DataMessage legacyDataMessage = 3;
    Content     content           = 4;
  }
}

message Metadata {
  optional AddressProto address      = 1;
  optional int32        senderDevice = 2;
  optional int64        timestamp    = 3;
  optional bool         needsReceipt = 4;
}

message AddressProto {
  optional bytes  uuid  = 1; // 16 raw bytes
  optional string e164  = 2;
  optional string relay = 3;
}
*/

// MessageSerializer represents wire types that can be marshaled and unmarshaled.
type MessageSerializer interface {
	MarshalBinary() ([]byte, error)
	UnmarshalBinary(data []byte) error
}

type ContentEnvelope struct {
	LocalAddress      *AddressProto
	Metadata          *Metadata
	LegacyDataMessage *DataMessage
	Content           *Content
}

// DataCase reports which member of the data oneof is populated.
func (m *ContentEnvelope) DataCase() EnvelopeDataCase {
	switch {
	case m == nil:
		return EnvelopeDataNotSet
	case m.LegacyDataMessage != nil:
		return EnvelopeDataLegacyDataMessage
	case m.Content != nil:
		return EnvelopeDataContent
	default:
		return EnvelopeDataNotSet
	}
}

func (m *ContentEnvelope) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			return mergeMessage(f, &m.LocalAddress)
		case 2:
			return mergeMessage(f, &m.Metadata)
		case 3:
			m.Content = nil
			return mergeMessage(f, &m.LegacyDataMessage)
		case 4:
			m.LegacyDataMessage = nil
			return mergeMessage(f, &m.Content)
		}
		return nil
	})
}

func (m *ContentEnvelope) appendTo(b []byte) []byte {
	b = appendMessage(b, 1, m.LocalAddress)
	b = appendMessage(b, 2, m.Metadata)
	b = appendMessage(b, 3, m.LegacyDataMessage)
	b = appendMessage(b, 4, m.Content)
	return b
}

// UnmarshalBinary parses a serialized ContentEnvelope, replacing the receiver.
func (m *ContentEnvelope) UnmarshalBinary(data []byte) error {
	*m = ContentEnvelope{}
	if err := m.unmarshal(data); err != nil {
		log.WithFields(logger.Fields{
			"at":     "wire.ContentEnvelope.UnmarshalBinary",
			"length": len(data),
			"error":  err.Error(),
		}).Debug("content_envelope_unmarshal_failed")
		return oops.Wrapf(err, "content envelope")
	}
	return nil
}

// MarshalBinary encodes the envelope in ascending field order.
func (m *ContentEnvelope) MarshalBinary() ([]byte, error) {
	if m.LegacyDataMessage != nil && m.Content != nil {
		return nil, oops.Errorf("content envelope: both legacyDataMessage and content are set")
	}
	return m.appendTo(nil), nil
}

type Metadata struct {
	Address      *AddressProto
	SenderDevice *int32
	Timestamp    *int64
	NeedsReceipt *bool
}

func (m *Metadata) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			return mergeMessage(f, &m.Address)
		case 2:
			setVarint(f, &m.SenderDevice)
		case 3:
			setVarint(f, &m.Timestamp)
		case 4:
			setBool(f, &m.NeedsReceipt)
		}
		return nil
	})
}

func (m *Metadata) appendTo(b []byte) []byte {
	b = appendMessage(b, 1, m.Address)
	b = appendVarint(b, 2, m.SenderDevice)
	b = appendVarint(b, 3, m.Timestamp)
	b = appendBool(b, 4, m.NeedsReceipt)
	return b
}

type AddressProto struct {
	UUID  []byte
	E164  *string
	Relay *string
}

func (m *AddressProto) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setBytes(f, &m.UUID)
		case 2:
			setString(f, &m.E164)
		case 3:
			setString(f, &m.Relay)
		}
		return nil
	})
}

func (m *AddressProto) appendTo(b []byte) []byte {
	b = appendBytes(b, 1, m.UUID)
	b = appendString(b, 2, m.E164)
	b = appendString(b, 3, m.Relay)
	return b
}

// Compile-time interface satisfaction checks
var (
	_ MessageSerializer = (*ContentEnvelope)(nil)
	_ MessageSerializer = (*Content)(nil)
	_ MessageSerializer = (*DataMessage)(nil)
	_ MessageSerializer = (*SyncMessage)(nil)
	_ MessageSerializer = (*CallMessage)(nil)
	_ MessageSerializer = (*ReceiptMessage)(nil)
	_ MessageSerializer = (*TypingMessage)(nil)
)
