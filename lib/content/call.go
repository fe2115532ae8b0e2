package content

import (
	"github.com/samber/lo"

	"github.com/go-i2p/go-signalcontent/lib/wire"
)

// CallMessage is call signaling. It holds at most one CallPayload; unknown
// signaling types decode to an empty call message.
type CallMessage struct {
	payload CallPayload
}

func (*CallMessage) Family() Family { return FamilyCall }
func (*CallMessage) isPayload()     {}

func (c *CallMessage) Payload() CallPayload { return c.payload }
func (c *CallMessage) IsEmpty() bool        { return c.payload == nil }

// CallPayload is one of *OfferMessage, *AnswerMessage, *IceUpdates,
// *HangupMessage or *BusyMessage.
type CallPayload interface {
	callPayload()
}

// OfferMessage starts a call with the caller's session description.
type OfferMessage struct {
	ID          uint64
	Description string
}

// AnswerMessage accepts an offered call.
type AnswerMessage struct {
	ID          uint64
	Description string
}

// IceUpdate is one ICE candidate for an ongoing call.
type IceUpdate struct {
	ID            uint64
	SdpMid        string
	SdpMLineIndex uint32
	Sdp           string
}

// IceUpdates carries the candidates of one call message, in wire order.
type IceUpdates struct {
	Updates []IceUpdate
}

// HangupMessage ends the call with the given id.
type HangupMessage struct {
	ID uint64
}

// BusyMessage declines a call because the callee is busy.
type BusyMessage struct {
	ID uint64
}

func (*OfferMessage) callPayload()  {}
func (*AnswerMessage) callPayload() {}
func (*IceUpdates) callPayload()    {}
func (*HangupMessage) callPayload() {}
func (*BusyMessage) callPayload()   {}

func (d *decoder) callMessage(m *wire.CallMessage) *CallMessage {
	switch {
	case m.Offer != nil:
		return &CallMessage{payload: &OfferMessage{ID: lo.FromPtr(m.Offer.ID), Description: lo.FromPtr(m.Offer.Description)}}
	case m.Answer != nil:
		return &CallMessage{payload: &AnswerMessage{ID: lo.FromPtr(m.Answer.ID), Description: lo.FromPtr(m.Answer.Description)}}
	case len(m.IceUpdates) > 0:
		return &CallMessage{payload: &IceUpdates{
			Updates: lo.Map(m.IceUpdates, func(u *wire.CallIceUpdate, _ int) IceUpdate {
				return IceUpdate{
					ID:            lo.FromPtr(u.ID),
					SdpMid:        lo.FromPtr(u.SdpMid),
					SdpMLineIndex: lo.FromPtr(u.SdpMLineIndex),
					Sdp:           lo.FromPtr(u.Sdp),
				}
			}),
		}}
	case m.Hangup != nil:
		return &CallMessage{payload: &HangupMessage{ID: lo.FromPtr(m.Hangup.ID)}}
	case m.Busy != nil:
		return &CallMessage{payload: &BusyMessage{ID: lo.FromPtr(m.Busy.ID)}}
	}
	return &CallMessage{}
}
