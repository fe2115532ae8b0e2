package content

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/go-i2p/go-signalcontent/lib/crypto/curve25519"
	"github.com/go-i2p/go-signalcontent/lib/wire"
)

const (
	selfUUID  = "0f4b6ac6-4a0e-4b6a-9c46-7a1c2c0b8e11"
	selfE164  = "+14155550100"
	otherUUID = "5b1d8e0a-3c2f-4f7e-8d6a-2e9b7c4f1a22"
	otherE164 = "+14155550199"

	envelopeTimestamp = 1000
	senderDevice      = 2
)

func uuidBytes(s string) []byte {
	id := uuid.MustParse(s)
	return id[:]
}

func selfAddress() *wire.AddressProto {
	return &wire.AddressProto{UUID: uuidBytes(selfUUID), E164: lo.ToPtr(selfE164)}
}

func otherAddress() *wire.AddressProto {
	return &wire.AddressProto{UUID: uuidBytes(otherUUID), E164: lo.ToPtr(otherE164)}
}

// envelopeFrom wraps c in an envelope addressed to the local account.
func envelopeFrom(sender *wire.AddressProto, c *wire.Content) *wire.ContentEnvelope {
	return &wire.ContentEnvelope{
		LocalAddress: selfAddress(),
		Metadata: &wire.Metadata{
			Address:      sender,
			SenderDevice: lo.ToPtr(int32(senderDevice)),
			Timestamp:    lo.ToPtr(int64(envelopeTimestamp)),
			NeedsReceipt: lo.ToPtr(true),
		},
		Content: c,
	}
}

func dataEnvelope(m *wire.DataMessage) *wire.ContentEnvelope {
	return envelopeFrom(otherAddress(), &wire.Content{DataMessage: m})
}

func syncEnvelope(m *wire.SyncMessage) *wire.ContentEnvelope {
	return envelopeFrom(selfAddress(), &wire.Content{SyncMessage: m})
}

func encode(t *testing.T, env *wire.ContentEnvelope) []byte {
	t.Helper()
	data, err := env.MarshalBinary()
	require.NoError(t, err)
	return data
}

func decode(t *testing.T, env *wire.ContentEnvelope) (*Content, error) {
	t.Helper()
	return Decode(encode(t, env))
}

func mustDecode(t *testing.T, env *wire.ContentEnvelope) *Content {
	t.Helper()
	c, err := decode(t, env)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func mustData(t *testing.T, c *Content) *DataMessage {
	t.Helper()
	m, ok := c.DataMessage()
	require.True(t, ok, "expected a data message, got %v", c.Family())
	return m
}

func mustSync(t *testing.T, c *Content) *SyncMessage {
	t.Helper()
	m, ok := c.SyncMessage()
	require.True(t, ok, "expected a sync message, got %v", c.Family())
	return m
}

func identityKeyBytes() []byte {
	return append([]byte{curve25519.DjbType}, bytes.Repeat([]byte{0x11}, 32)...)
}

func pointer(id uint64, contentType string) *wire.AttachmentPointer {
	return &wire.AttachmentPointer{ID: lo.ToPtr(id), ContentType: lo.ToPtr(contentType), Key: []byte{0xaa}}
}
