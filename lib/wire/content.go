package wire

import (
	"github.com/samber/oops"
)

/*
message Content {
  optional DataMessage    dataMessage    = 1;
  optional SyncMessage    syncMessage    = 2;
  optional CallMessage    callMessage    = 3;
  optional NullMessage    nullMessage    = 4;
  optional ReceiptMessage receiptMessage = 5;
  optional TypingMessage  typingMessage  = 6;
}

message CallMessage {
  optional Offer     offer     = 1;
  optional Answer    answer    = 2;
  repeated IceUpdate iceUpdate = 3;
  optional Hangup    hangup    = 4;
  optional Busy      busy      = 5;
}

message ReceiptMessage {
  optional Type   type      = 1; // DELIVERY = 0, READ = 1
  repeated uint64 timestamp = 2;
}

message TypingMessage {
  optional uint64 timestamp = 1;
  optional Action action    = 2; // STARTED = 0, STOPPED = 1
  optional bytes  groupId   = 3;
}
*/

// unmarshalBinary resets m and parses data into it.
func unmarshalBinary[T any, P interface {
	*T
	unmarshaler
}](m P, data []byte, name string) error {
	var zero T
	*m = zero
	if err := m.unmarshal(data); err != nil {
		return oops.Wrapf(err, "%s", name)
	}
	return nil
}

type Content struct {
	DataMessage    *DataMessage
	SyncMessage    *SyncMessage
	CallMessage    *CallMessage
	NullMessage    *NullMessage
	ReceiptMessage *ReceiptMessage
	TypingMessage  *TypingMessage
}

func (m *Content) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			return mergeMessage(f, &m.DataMessage)
		case 2:
			return mergeMessage(f, &m.SyncMessage)
		case 3:
			return mergeMessage(f, &m.CallMessage)
		case 4:
			return mergeMessage(f, &m.NullMessage)
		case 5:
			return mergeMessage(f, &m.ReceiptMessage)
		case 6:
			return mergeMessage(f, &m.TypingMessage)
		}
		return nil
	})
}

func (m *Content) appendTo(b []byte) []byte {
	b = appendMessage(b, 1, m.DataMessage)
	b = appendMessage(b, 2, m.SyncMessage)
	b = appendMessage(b, 3, m.CallMessage)
	b = appendMessage(b, 4, m.NullMessage)
	b = appendMessage(b, 5, m.ReceiptMessage)
	b = appendMessage(b, 6, m.TypingMessage)
	return b
}

func (m *Content) UnmarshalBinary(data []byte) error { return unmarshalBinary(m, data, "content") }
func (m *Content) MarshalBinary() ([]byte, error)    { return m.appendTo(nil), nil }

type NullMessage struct {
	Padding []byte
}

func (m *NullMessage) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		if f.num == 1 {
			setBytes(f, &m.Padding)
		}
		return nil
	})
}

func (m *NullMessage) appendTo(b []byte) []byte {
	return appendBytes(b, 1, m.Padding)
}

type ReceiptMessage struct {
	Type       *ReceiptType
	Timestamps []uint64
}

func (m *ReceiptMessage) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setVarint(f, &m.Type)
		case 2:
			return addVarints(f, &m.Timestamps)
		}
		return nil
	})
}

func (m *ReceiptMessage) appendTo(b []byte) []byte {
	b = appendVarint(b, 1, m.Type)
	b = appendVarints(b, 2, m.Timestamps)
	return b
}

func (m *ReceiptMessage) UnmarshalBinary(data []byte) error {
	return unmarshalBinary(m, data, "receipt message")
}
func (m *ReceiptMessage) MarshalBinary() ([]byte, error) { return m.appendTo(nil), nil }

type TypingMessage struct {
	Timestamp *uint64
	Action    *TypingAction
	GroupID   []byte
}

func (m *TypingMessage) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setVarint(f, &m.Timestamp)
		case 2:
			setVarint(f, &m.Action)
		case 3:
			setBytes(f, &m.GroupID)
		}
		return nil
	})
}

func (m *TypingMessage) appendTo(b []byte) []byte {
	b = appendVarint(b, 1, m.Timestamp)
	b = appendVarint(b, 2, m.Action)
	b = appendBytes(b, 3, m.GroupID)
	return b
}

func (m *TypingMessage) UnmarshalBinary(data []byte) error {
	return unmarshalBinary(m, data, "typing message")
}
func (m *TypingMessage) MarshalBinary() ([]byte, error) { return m.appendTo(nil), nil }

type CallMessage struct {
	Offer      *CallOffer
	Answer     *CallAnswer
	IceUpdates []*CallIceUpdate
	Hangup     *CallHangup
	Busy       *CallBusy
}

func (m *CallMessage) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			return mergeMessage(f, &m.Offer)
		case 2:
			return mergeMessage(f, &m.Answer)
		case 3:
			return addMessage(f, &m.IceUpdates)
		case 4:
			return mergeMessage(f, &m.Hangup)
		case 5:
			return mergeMessage(f, &m.Busy)
		}
		return nil
	})
}

func (m *CallMessage) appendTo(b []byte) []byte {
	b = appendMessage(b, 1, m.Offer)
	b = appendMessage(b, 2, m.Answer)
	b = appendMessages(b, 3, m.IceUpdates)
	b = appendMessage(b, 4, m.Hangup)
	b = appendMessage(b, 5, m.Busy)
	return b
}

func (m *CallMessage) UnmarshalBinary(data []byte) error {
	return unmarshalBinary(m, data, "call message")
}
func (m *CallMessage) MarshalBinary() ([]byte, error) { return m.appendTo(nil), nil }

// CallOffer and CallAnswer share a layout: id = 1, description = 2.
type CallOffer struct {
	ID          *uint64
	Description *string
}

func (m *CallOffer) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setVarint(f, &m.ID)
		case 2:
			setString(f, &m.Description)
		}
		return nil
	})
}

func (m *CallOffer) appendTo(b []byte) []byte {
	b = appendVarint(b, 1, m.ID)
	return appendString(b, 2, m.Description)
}

type CallAnswer struct {
	ID          *uint64
	Description *string
}

func (m *CallAnswer) unmarshal(b []byte) error {
	return (*CallOffer)(m).unmarshal(b)
}

func (m *CallAnswer) appendTo(b []byte) []byte {
	return (*CallOffer)(m).appendTo(b)
}

type CallIceUpdate struct {
	ID            *uint64
	SdpMid        *string
	SdpMLineIndex *uint32
	Sdp           *string
}

func (m *CallIceUpdate) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setVarint(f, &m.ID)
		case 2:
			setString(f, &m.SdpMid)
		case 3:
			setVarint(f, &m.SdpMLineIndex)
		case 4:
			setString(f, &m.Sdp)
		}
		return nil
	})
}

func (m *CallIceUpdate) appendTo(b []byte) []byte {
	b = appendVarint(b, 1, m.ID)
	b = appendString(b, 2, m.SdpMid)
	b = appendVarint(b, 3, m.SdpMLineIndex)
	b = appendString(b, 4, m.Sdp)
	return b
}

// CallHangup and CallBusy carry only id = 1.
type CallHangup struct {
	ID *uint64
}

func (m *CallHangup) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		if f.num == 1 {
			setVarint(f, &m.ID)
		}
		return nil
	})
}

func (m *CallHangup) appendTo(b []byte) []byte {
	return appendVarint(b, 1, m.ID)
}

type CallBusy struct {
	ID *uint64
}

func (m *CallBusy) unmarshal(b []byte) error {
	return (*CallHangup)(m).unmarshal(b)
}

func (m *CallBusy) appendTo(b []byte) []byte {
	return (*CallHangup)(m).appendTo(b)
}
