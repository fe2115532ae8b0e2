package content

import (
	"testing"

	"github.com/samber/lo"

	"github.com/go-i2p/go-signalcontent/lib/wire"
)

func FuzzDecode(f *testing.F) {
	seeds := []*wire.ContentEnvelope{
		dataEnvelope(&wire.DataMessage{
			Body:     lo.ToPtr("seed"),
			Group:    &wire.GroupContext{Type: lo.ToPtr(wire.GroupContextUpdate), Members: []*wire.GroupMember{{E164: lo.ToPtr(otherE164)}}},
			Sticker:  &wire.Sticker{PackID: []byte{1}},
			Reaction: &wire.Reaction{Emoji: lo.ToPtr("x")},
		}),
		syncEnvelope(&wire.SyncMessage{Sent: &wire.SyncSent{DestinationE164: lo.ToPtr(otherE164)}}),
		syncEnvelope(&wire.SyncMessage{Verified: &wire.Verified{DestinationE164: lo.ToPtr(otherE164), IdentityKey: identityKeyBytes()}}),
		envelopeFrom(otherAddress(), &wire.Content{CallMessage: &wire.CallMessage{IceUpdates: []*wire.CallIceUpdate{{}}}}),
		envelopeFrom(otherAddress(), &wire.Content{TypingMessage: &wire.TypingMessage{Timestamp: lo.ToPtr(uint64(1))}}),
	}
	for _, env := range seeds {
		data, err := env.MarshalBinary()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(data)
	}
	f.Add([]byte{})
	f.Add([]byte{0x0a, 0x7f})

	f.Fuzz(func(t *testing.T, data []byte) {
		c, err := Decode(data)
		if err != nil {
			if c != nil {
				t.Fatalf("got content and error %v", err)
			}
			return
		}
		if c == nil {
			return
		}
		if c.Payload() == nil {
			t.Fatal("decoded content without a payload")
		}
		again := Deserialize(c.Serialize())
		if again.Family() != c.Family() {
			t.Fatalf("family changed on re-decode: %v != %v", again.Family(), c.Family())
		}
	})
}
