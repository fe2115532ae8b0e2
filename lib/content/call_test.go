package content

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-i2p/go-signalcontent/lib/wire"
)

func decodeCall(t *testing.T, m *wire.CallMessage) *CallMessage {
	t.Helper()
	c := mustDecode(t, envelopeFrom(otherAddress(), &wire.Content{CallMessage: m}))
	call, ok := c.CallMessage()
	require.True(t, ok)
	return call
}

func TestCallMessages(t *testing.T) {
	tests := []struct {
		name string
		in   *wire.CallMessage
		want CallPayload
	}{
		{
			"offer",
			&wire.CallMessage{Offer: &wire.CallOffer{ID: lo.ToPtr(uint64(1)), Description: lo.ToPtr("sdp-offer")}},
			&OfferMessage{ID: 1, Description: "sdp-offer"},
		},
		{
			"answer",
			&wire.CallMessage{Answer: &wire.CallAnswer{ID: lo.ToPtr(uint64(2)), Description: lo.ToPtr("sdp-answer")}},
			&AnswerMessage{ID: 2, Description: "sdp-answer"},
		},
		{
			"ice updates",
			&wire.CallMessage{IceUpdates: []*wire.CallIceUpdate{
				{ID: lo.ToPtr(uint64(3)), SdpMid: lo.ToPtr("audio"), SdpMLineIndex: lo.ToPtr(uint32(0)), Sdp: lo.ToPtr("candidate:1")},
				{ID: lo.ToPtr(uint64(3)), SdpMid: lo.ToPtr("video"), SdpMLineIndex: lo.ToPtr(uint32(1)), Sdp: lo.ToPtr("candidate:2")},
			}},
			&IceUpdates{Updates: []IceUpdate{
				{ID: 3, SdpMid: "audio", SdpMLineIndex: 0, Sdp: "candidate:1"},
				{ID: 3, SdpMid: "video", SdpMLineIndex: 1, Sdp: "candidate:2"},
			}},
		},
		{
			"hangup",
			&wire.CallMessage{Hangup: &wire.CallHangup{ID: lo.ToPtr(uint64(4))}},
			&HangupMessage{ID: 4},
		},
		{
			"busy",
			&wire.CallMessage{Busy: &wire.CallBusy{ID: lo.ToPtr(uint64(5))}},
			&BusyMessage{ID: 5},
		},
		{
			"offer wins over hangup",
			&wire.CallMessage{Offer: &wire.CallOffer{ID: lo.ToPtr(uint64(6))}, Hangup: &wire.CallHangup{ID: lo.ToPtr(uint64(6))}},
			&OfferMessage{ID: 6},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call := decodeCall(t, tt.in)
			assert.False(t, call.IsEmpty())
			assert.Equal(t, tt.want, call.Payload())
		})
	}
}

func TestEmptyCallMessage(t *testing.T) {
	call := decodeCall(t, &wire.CallMessage{})
	assert.True(t, call.IsEmpty())
	assert.Nil(t, call.Payload())
}

func TestReceiptTypes(t *testing.T) {
	tests := []struct {
		name string
		in   *wire.ReceiptType
		want ReceiptType
	}{
		{"delivery", lo.ToPtr(wire.ReceiptDelivery), ReceiptDelivery},
		{"read", lo.ToPtr(wire.ReceiptRead), ReceiptRead},
		{"future", lo.ToPtr(wire.ReceiptType(9)), ReceiptUnknown},
		{"absent", nil, ReceiptDelivery},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustDecode(t, envelopeFrom(otherAddress(), &wire.Content{ReceiptMessage: &wire.ReceiptMessage{Type: tt.in}}))
			r, ok := c.ReceiptMessage()
			require.True(t, ok)
			assert.Equal(t, tt.want, r.Type)
			assert.Empty(t, r.Timestamps)
			assert.True(t, c.NeedsReceipt())
		})
	}
}

func TestTypingActions(t *testing.T) {
	tests := []struct {
		name string
		in   *wire.TypingAction
		want TypingAction
	}{
		{"started", lo.ToPtr(wire.TypingStarted), TypingStarted},
		{"stopped", lo.ToPtr(wire.TypingStopped), TypingStopped},
		{"future", lo.ToPtr(wire.TypingAction(3)), TypingUnknown},
		{"absent", nil, TypingStarted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustDecode(t, envelopeFrom(otherAddress(), &wire.Content{TypingMessage: &wire.TypingMessage{Action: tt.in}}))
			typing, ok := c.TypingMessage()
			require.True(t, ok)
			assert.Equal(t, tt.want, typing.Action)
			assert.Equal(t, uint64(envelopeTimestamp), typing.Timestamp)
			assert.True(t, typing.GroupID.IsAbsent())
		})
	}
}

func TestTypingTimestampIsEnvelopeTimestamp(t *testing.T) {
	tests := []struct {
		name   string
		inline *uint64
	}{
		{"inline absent", nil},
		{"inline matching", lo.ToPtr(uint64(envelopeTimestamp))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustDecode(t, envelopeFrom(otherAddress(), &wire.Content{TypingMessage: &wire.TypingMessage{
				Timestamp: tt.inline,
				Action:    lo.ToPtr(wire.TypingStopped),
				GroupID:   []byte{0x01, 0x02},
			}}))
			typing, ok := c.TypingMessage()
			require.True(t, ok)
			assert.Equal(t, uint64(envelopeTimestamp), typing.Timestamp)
			assert.NotZero(t, typing.Timestamp)
			assert.Equal(t, c.Timestamp(), typing.Timestamp)
			assert.Equal(t, []byte{0x01, 0x02}, typing.GroupID.MustGet())
			assert.False(t, c.NeedsReceipt())
		})
	}
}
