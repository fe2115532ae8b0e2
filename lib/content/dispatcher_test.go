package content

import (
	"errors"
	"sync"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/go-i2p/go-signalcontent/lib/wire"
)

func TestDecodeSimpleDataMessage(t *testing.T) {
	c := mustDecode(t, dataEnvelope(&wire.DataMessage{
		Body:        lo.ToPtr("hello"),
		Attachments: []*wire.AttachmentPointer{{ID: lo.ToPtr(uint64(7)), ContentType: lo.ToPtr("image/jpeg")}},
	}))

	assert.Equal(t, FamilyData, c.Family())
	assert.Equal(t, uint64(envelopeTimestamp), c.Timestamp())
	assert.Equal(t, int32(senderDevice), c.SenderDevice())
	assert.True(t, c.NeedsReceipt())
	assert.Equal(t, otherUUID, c.Sender().Identifier())
	assert.Equal(t, selfUUID, c.LocalAddress().Identifier())

	m := mustData(t, c)
	assert.Equal(t, uint64(envelopeTimestamp), m.Timestamp)
	assert.True(t, m.Group.IsAbsent())
	require.Len(t, m.Attachments, 1)
	assert.Equal(t, uint64(7), m.Attachments[0].ID)
	assert.Equal(t, "image/jpeg", m.Attachments[0].ContentType)
	assert.Equal(t, "hello", m.Body.MustGet())
	assert.False(t, m.EndSession)
	assert.False(t, m.ExpirationUpdate)
	assert.False(t, m.ProfileKeyUpdate)
	assert.False(t, m.ViewOnce)
	assert.Empty(t, c.Diagnostics())
}

func TestDecodeReadReceipt(t *testing.T) {
	env := envelopeFrom(otherAddress(), &wire.Content{ReceiptMessage: &wire.ReceiptMessage{
		Type:       lo.ToPtr(wire.ReceiptRead),
		Timestamps: []uint64{5, 6, 7},
	}})
	env.Metadata.Timestamp = lo.ToPtr(int64(42))

	c := mustDecode(t, env)
	r, ok := c.ReceiptMessage()
	require.True(t, ok)
	assert.Equal(t, ReceiptRead, r.Type)
	assert.True(t, r.IsReadReceipt())
	assert.Equal(t, []uint64{5, 6, 7}, r.Timestamps)
	assert.Equal(t, uint64(42), r.When)
}

func TestDecodeLegacyDataMessage(t *testing.T) {
	env := dataEnvelope(nil)
	env.Content = nil
	env.LegacyDataMessage = &wire.DataMessage{Body: lo.ToPtr("legacy")}
	env.Metadata.NeedsReceipt = lo.ToPtr(false)

	c := mustDecode(t, env)
	m := mustData(t, c)
	assert.Equal(t, "legacy", m.Body.MustGet())
	assert.False(t, c.NeedsReceipt())
}

func TestDataTakesPriorityOverOtherFamilies(t *testing.T) {
	c := mustDecode(t, envelopeFrom(selfAddress(), &wire.Content{
		DataMessage:    &wire.DataMessage{},
		SyncMessage:    &wire.SyncMessage{Request: &wire.SyncRequest{}},
		ReceiptMessage: &wire.ReceiptMessage{},
		TypingMessage:  &wire.TypingMessage{},
	}))
	assert.Equal(t, FamilyData, c.Family())
}

func TestFamilyPriority(t *testing.T) {
	tests := []struct {
		name    string
		content *wire.Content
		want    Family
	}{
		{"call before receipt", &wire.Content{CallMessage: &wire.CallMessage{}, ReceiptMessage: &wire.ReceiptMessage{}}, FamilyCall},
		{"receipt before typing", &wire.Content{ReceiptMessage: &wire.ReceiptMessage{}, TypingMessage: &wire.TypingMessage{}}, FamilyReceipt},
		{"typing alone", &wire.Content{TypingMessage: &wire.TypingMessage{}}, FamilyTyping},
		{"sync before call", &wire.Content{SyncMessage: &wire.SyncMessage{}, CallMessage: &wire.CallMessage{}}, FamilySync},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustDecode(t, envelopeFrom(selfAddress(), tt.content))
			assert.Equal(t, tt.want, c.Family())
		})
	}
}

func TestSyncFromAnotherSenderIsNotClassified(t *testing.T) {
	sync := &wire.SyncMessage{Request: &wire.SyncRequest{Type: lo.ToPtr(wire.SyncRequestContacts)}}

	t.Run("falls through to empty", func(t *testing.T) {
		c, err := decode(t, envelopeFrom(otherAddress(), &wire.Content{SyncMessage: sync}))
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("falls through to later families", func(t *testing.T) {
		c := mustDecode(t, envelopeFrom(otherAddress(), &wire.Content{
			SyncMessage:    sync,
			ReceiptMessage: &wire.ReceiptMessage{Type: lo.ToPtr(wire.ReceiptDelivery)},
		}))
		assert.Equal(t, FamilyReceipt, c.Family())
	})

	t.Run("self matched by e164 alone", func(t *testing.T) {
		env := envelopeFrom(&wire.AddressProto{E164: lo.ToPtr(selfE164)}, &wire.Content{SyncMessage: sync})
		c := mustDecode(t, env)
		assert.Equal(t, FamilySync, c.Family())
	})

	t.Run("missing local address", func(t *testing.T) {
		env := envelopeFrom(selfAddress(), &wire.Content{SyncMessage: sync})
		env.LocalAddress = nil
		c, err := decode(t, env)
		require.NoError(t, err)
		assert.Nil(t, c)
	})
}

func TestTypingNeverNeedsReceipt(t *testing.T) {
	c := mustDecode(t, envelopeFrom(otherAddress(), &wire.Content{TypingMessage: &wire.TypingMessage{
		Action:  lo.ToPtr(wire.TypingStopped),
		GroupID: []byte("g"),
	}}))
	assert.False(t, c.NeedsReceipt())
	assert.False(t, c.Metadata().NeedsReceipt)

	typing, ok := c.TypingMessage()
	require.True(t, ok)
	assert.Equal(t, TypingStopped, typing.Action)
	assert.Equal(t, []byte("g"), typing.GroupID.MustGet())
}

func TestUnrecognizedContentYieldsNil(t *testing.T) {
	tests := []struct {
		name string
		env  *wire.ContentEnvelope
	}{
		{"null message only", envelopeFrom(otherAddress(), &wire.Content{NullMessage: &wire.NullMessage{Padding: []byte{0}}})},
		{"empty content", envelopeFrom(otherAddress(), &wire.Content{})},
		{"no data at all", &wire.ContentEnvelope{Metadata: &wire.Metadata{Timestamp: lo.ToPtr(int64(1))}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := decode(t, tt.env)
			assert.NoError(t, err)
			assert.Nil(t, c)
		})
	}
}

func TestMalformedEnvelope(t *testing.T) {
	data := encode(t, dataEnvelope(&wire.DataMessage{Body: lo.ToPtr("hello")}))

	_, err := Decode(data[:len(data)-2])
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedWire)
	assert.ErrorIs(t, err, wire.ErrMalformed)
	assert.NotErrorIs(t, err, ErrInvalidMessage)
}

func TestUnusableSenderIsADiagnostic(t *testing.T) {
	env := dataEnvelope(&wire.DataMessage{})
	env.Metadata.Address = &wire.AddressProto{UUID: []byte{1, 2, 3}}

	c := mustDecode(t, env)
	assert.False(t, c.Sender().IsValid())
	require.Len(t, c.Diagnostics(), 1)
	assert.Equal(t, "unusable_sender_address", c.Diagnostics()[0].Event)
}

func TestRoundTripIdentity(t *testing.T) {
	envs := map[string]*wire.ContentEnvelope{
		"data":    dataEnvelope(&wire.DataMessage{Body: lo.ToPtr("hi"), Timestamp: lo.ToPtr(uint64(envelopeTimestamp))}),
		"sync":    syncEnvelope(&wire.SyncMessage{Request: &wire.SyncRequest{Type: lo.ToPtr(wire.SyncRequestGroups)}}),
		"call":    envelopeFrom(otherAddress(), &wire.Content{CallMessage: &wire.CallMessage{Hangup: &wire.CallHangup{ID: lo.ToPtr(uint64(3))}}}),
		"receipt": envelopeFrom(otherAddress(), &wire.Content{ReceiptMessage: &wire.ReceiptMessage{Timestamps: []uint64{1}}}),
		"typing":  envelopeFrom(otherAddress(), &wire.Content{TypingMessage: &wire.TypingMessage{}}),
	}

	for name, env := range envs {
		t.Run(name, func(t *testing.T) {
			raw := encode(t, env)
			// A field this package does not model must survive re-serialization.
			raw = protowire.AppendTag(raw, 15, protowire.BytesType)
			raw = protowire.AppendBytes(raw, []byte("future"))

			first, err := Decode(raw)
			require.NoError(t, err)
			require.NotNil(t, first)
			assert.Equal(t, raw, first.Serialize())

			second := Deserialize(first.Serialize())
			require.NotNil(t, second)
			assert.Equal(t, first.Metadata(), second.Metadata())
			assert.Equal(t, first.Family(), second.Family())
			assert.Equal(t, first.Payload(), second.Payload())
			assert.Equal(t, raw, second.Serialize())
		})
	}
}

func TestSerializeReturnsACopy(t *testing.T) {
	c := mustDecode(t, dataEnvelope(&wire.DataMessage{}))
	out := c.Serialize()
	out[0] ^= 0xff
	assert.NotEqual(t, out, c.Serialize())
}

func TestCreateFromProtoUsesSuppliedEnvelope(t *testing.T) {
	env := dataEnvelope(&wire.DataMessage{Body: lo.ToPtr("parsed")})
	raw := encode(t, env)

	c, err := CreateFromProto(raw, env)
	require.NoError(t, err)
	assert.Equal(t, "parsed", mustData(t, c).Body.MustGet())
	assert.Equal(t, raw, c.Serialize())
}

func TestCreateFromProtoWithoutRawEncodesEnvelope(t *testing.T) {
	env := dataEnvelope(&wire.DataMessage{Body: lo.ToPtr("parsed")})

	c, err := CreateFromProto(nil, env)
	require.NoError(t, err)
	assert.Equal(t, encode(t, env), c.Serialize())

	again := Deserialize(c.Serialize())
	require.NotNil(t, again)
	assert.Equal(t, FamilyData, again.Family())
	assert.Equal(t, "parsed", mustData(t, again).Body.MustGet())
}

func TestCreateFromProtoRejectsMismatchedRaw(t *testing.T) {
	receipt := envelopeFrom(otherAddress(), &wire.Content{ReceiptMessage: &wire.ReceiptMessage{
		Timestamps: []uint64{1, 2},
	}})
	data := dataEnvelope(&wire.DataMessage{Body: lo.ToPtr("parsed")})

	c, err := CreateFromProto(encode(t, receipt), data)
	assert.Nil(t, c)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedWire)

	_, err = CreateFromProto([]byte{0x0a, 0x7f}, data)
	assert.ErrorIs(t, err, ErrMalformedWire)
}

func TestCreateFromProtoKeepsRawWithUnknownFields(t *testing.T) {
	env := dataEnvelope(&wire.DataMessage{Body: lo.ToPtr("parsed")})
	raw := encode(t, env)
	raw = protowire.AppendTag(raw, 99, protowire.VarintType)
	raw = protowire.AppendVarint(raw, 1)

	c, err := CreateFromProto(raw, env)
	require.NoError(t, err)
	assert.Equal(t, raw, c.Serialize())
	assert.Equal(t, FamilyData, Deserialize(c.Serialize()).Family())
}

func TestDeserialize(t *testing.T) {
	assert.Nil(t, Deserialize(nil))
	assert.Panics(t, func() { Deserialize([]byte{0x0a, 0x7f}) })

	// A data message gated on a future version decodes to an error, so
	// deserializing it is an invariant violation too.
	raw := encode(t, dataEnvelope(&wire.DataMessage{RequiredProtocolVersion: lo.ToPtr(MaxSupportedVersion + 1)}))
	assert.Panics(t, func() { Deserialize(raw) })
}

func TestProtocolErrorCarriesSender(t *testing.T) {
	_, err := decode(t, dataEnvelope(&wire.DataMessage{Timestamp: lo.ToPtr(uint64(1))}))
	require.Error(t, err)

	var pe *ProtocolError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, otherUUID, pe.Sender.Identifier())
	assert.Equal(t, int32(senderDevice), pe.SenderDevice)
	assert.Contains(t, err.Error(), otherUUID)
}

func TestConcurrentDecode(t *testing.T) {
	raw := encode(t, dataEnvelope(&wire.DataMessage{
		Body:    lo.ToPtr("concurrent"),
		Sticker: &wire.Sticker{PackID: []byte{1}},
	}))

	var wg sync.WaitGroup
	results := make([]*Content, 16)
	errs := make([]error, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Decode(raw)
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0].Payload(), results[i].Payload())
		assert.Len(t, results[i].Diagnostics(), 1)
	}
}
