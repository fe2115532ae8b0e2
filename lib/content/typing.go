package content

import (
	"github.com/samber/mo"

	"github.com/go-i2p/go-signalcontent/lib/wire"
)

// TypingMessage is a typing indicator, scoped to a group when GroupID is
// present. Typing messages never owe a delivery receipt.
type TypingMessage struct {
	Action    TypingAction
	Timestamp uint64
	GroupID   mo.Option[[]byte]
}

func (*TypingMessage) Family() Family { return FamilyTyping }
func (*TypingMessage) isPayload()     {}

func (t *TypingMessage) IsTypingStarted() bool { return t.Action == TypingStarted }

func (d *decoder) typingMessage(m *wire.TypingMessage) (*TypingMessage, error) {
	action := TypingUnknown
	if m.Action == nil {
		action = TypingStarted
	} else {
		switch *m.Action {
		case wire.TypingStarted:
			action = TypingStarted
		case wire.TypingStopped:
			action = TypingStopped
		}
	}

	if err := d.checkTimestamp(m.Timestamp); err != nil {
		return nil, err
	}

	return &TypingMessage{
		Action:    action,
		Timestamp: d.meta.Timestamp,
		GroupID:   optionalBytes(m.GroupID),
	}, nil
}
