package content

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/go-i2p/go-signalcontent/lib/address"
	"github.com/go-i2p/go-signalcontent/lib/keys"
	"github.com/go-i2p/go-signalcontent/lib/wire"
)

// SyncMessage is an event the local account produced on another device. It
// holds at most one SyncPayload; a message with none is explicitly empty.
type SyncMessage struct {
	payload SyncPayload
}

func (*SyncMessage) Family() Family { return FamilySync }
func (*SyncMessage) isPayload()     {}

// Payload returns the sub-payload, or nil for an empty sync message.
func (s *SyncMessage) Payload() SyncPayload { return s.payload }
func (s *SyncMessage) IsEmpty() bool        { return s.payload == nil }

// SyncKind identifies the payload of a SyncMessage.
type SyncKind int

const (
	SyncSentTranscript SyncKind = iota + 1
	SyncRequest
	SyncRead
	SyncViewOnceOpen
	SyncVerified
	SyncStickerPackOperations
	SyncBlocked
	SyncConfiguration
	SyncFetchLatest
	SyncMessageRequestResponse
)

func (k SyncKind) String() string {
	switch k {
	case SyncSentTranscript:
		return "sent"
	case SyncRequest:
		return "request"
	case SyncRead:
		return "read"
	case SyncViewOnceOpen:
		return "view_once_open"
	case SyncVerified:
		return "verified"
	case SyncStickerPackOperations:
		return "sticker_pack_operations"
	case SyncBlocked:
		return "blocked"
	case SyncConfiguration:
		return "configuration"
	case SyncFetchLatest:
		return "fetch_latest"
	case SyncMessageRequestResponse:
		return "message_request_response"
	default:
		return "empty"
	}
}

// SyncPayload is one of the sync sub-payload types below.
type SyncPayload interface {
	Kind() SyncKind
	isSyncPayload()
}

var (
	_ SyncPayload = (*SentTranscript)(nil)
	_ SyncPayload = (*RequestMessage)(nil)
	_ SyncPayload = (*ReadMessages)(nil)
	_ SyncPayload = (*ViewOnceOpen)(nil)
	_ SyncPayload = (*VerifiedIdentity)(nil)
	_ SyncPayload = (*StickerPackOperations)(nil)
	_ SyncPayload = (*BlockedList)(nil)
	_ SyncPayload = (*Configuration)(nil)
	_ SyncPayload = (*FetchLatest)(nil)
	_ SyncPayload = (*MessageRequestResponse)(nil)
)

// SentTranscript describes a message the local account sent from another
// device. Destination is absent for group sends.
type SentTranscript struct {
	Destination              mo.Option[address.Address]
	Timestamp                uint64
	Message                  *DataMessage
	ExpirationStartTimestamp uint64
	UnidentifiedStatuses     []UnidentifiedStatus
	IsRecipientUpdate        bool
}

// UnidentifiedStatus records whether a sent copy went out sealed-sender.
type UnidentifiedStatus struct {
	Recipient    address.Address
	Unidentified bool
}

// RequestMessage asks a linked device to sync some state.
type RequestMessage struct {
	Type RequestType
}

// ReadMessage marks one message from Sender as read on another device.
type ReadMessage struct {
	Sender    address.Address
	Timestamp uint64
}

// ReadMessages holds the valid read entries, in wire order.
type ReadMessages struct {
	Messages []ReadMessage
}

// ViewOnceOpen reports that a view-once message was opened on another device.
type ViewOnceOpen struct {
	Sender    address.Address
	Timestamp uint64
}

// VerifiedIdentity is a change to the verification state of a contact's
// identity key. Timestamp is the envelope timestamp.
type VerifiedIdentity struct {
	Destination address.Address
	IdentityKey keys.IdentityKey
	State       VerifiedState
	Timestamp   uint64
}

// StickerPackOperation installs or removes one sticker pack.
type StickerPackOperation struct {
	PackID  mo.Option[[]byte]
	PackKey mo.Option[[]byte]
	Type    mo.Option[StickerPackOperationType]
}

// StickerPackOperations holds every operation, in wire order.
type StickerPackOperations struct {
	Operations []StickerPackOperation
}

// BlockedList is the full set of blocked addresses and groups.
type BlockedList struct {
	Addresses []address.Address
	GroupIDs  [][]byte
}

// Configuration carries the settings synced from another device.
type Configuration struct {
	ReadReceipts                   mo.Option[bool]
	UnidentifiedDeliveryIndicators mo.Option[bool]
	TypingIndicators               mo.Option[bool]
	LinkPreviews                   mo.Option[bool]
}

// FetchLatest asks this device to refresh local state.
type FetchLatest struct {
	Type FetchType
}

// MessageRequestResponse answers a message request for either a group or a
// one-to-one thread; exactly one of GroupID and Person is present.
type MessageRequestResponse struct {
	Type    MessageRequestResponseType
	GroupID mo.Option[[]byte]
	Person  mo.Option[address.Address]
}

func (*SentTranscript) Kind() SyncKind         { return SyncSentTranscript }
func (*RequestMessage) Kind() SyncKind         { return SyncRequest }
func (*ReadMessages) Kind() SyncKind           { return SyncRead }
func (*ViewOnceOpen) Kind() SyncKind           { return SyncViewOnceOpen }
func (*VerifiedIdentity) Kind() SyncKind       { return SyncVerified }
func (*StickerPackOperations) Kind() SyncKind  { return SyncStickerPackOperations }
func (*BlockedList) Kind() SyncKind            { return SyncBlocked }
func (*Configuration) Kind() SyncKind          { return SyncConfiguration }
func (*FetchLatest) Kind() SyncKind            { return SyncFetchLatest }
func (*MessageRequestResponse) Kind() SyncKind { return SyncMessageRequestResponse }

func (*SentTranscript) isSyncPayload()         {}
func (*RequestMessage) isSyncPayload()         {}
func (*ReadMessages) isSyncPayload()           {}
func (*ViewOnceOpen) isSyncPayload()           {}
func (*VerifiedIdentity) isSyncPayload()       {}
func (*StickerPackOperations) isSyncPayload()  {}
func (*BlockedList) isSyncPayload()            {}
func (*Configuration) isSyncPayload()          {}
func (*FetchLatest) isSyncPayload()            {}
func (*MessageRequestResponse) isSyncPayload() {}

// syncMessage returns the first sub-payload present, in the order the
// fields are checked below, or an empty SyncMessage when none is.
func (d *decoder) syncMessage(m *wire.SyncMessage) (*SyncMessage, error) {
	p, err := d.syncPayload(m)
	if err != nil {
		return nil, err
	}
	return &SyncMessage{payload: p}, nil
}

func (d *decoder) syncPayload(m *wire.SyncMessage) (SyncPayload, error) {
	switch {
	case m.Sent != nil:
		return d.sentTranscript(m.Sent)
	case m.Request != nil:
		return &RequestMessage{Type: requestType(m.Request.Type)}, nil
	case len(m.Read) > 0:
		return d.readMessages(m.Read), nil
	case m.ViewOnceOpen != nil:
		return d.viewOnceOpen(m.ViewOnceOpen)
	case m.Verified != nil:
		return d.verified(m.Verified)
	case len(m.StickerPackOperations) > 0:
		return stickerPackOperations(m.StickerPackOperations), nil
	case m.Blocked != nil:
		return d.blockedList(m.Blocked), nil
	case m.Configuration != nil:
		c := m.Configuration
		return &Configuration{
			ReadReceipts:                   optional(c.ReadReceipts),
			UnidentifiedDeliveryIndicators: optional(c.UnidentifiedDeliveryIndicators),
			TypingIndicators:               optional(c.TypingIndicators),
			LinkPreviews:                   optional(c.LinkPreviews),
		}, nil
	}

	// An unrecognized fetch type falls through to the remaining checks.
	if m.FetchLatest != nil && m.FetchLatest.Type != nil {
		switch *m.FetchLatest.Type {
		case wire.FetchLatestLocalProfile:
			return &FetchLatest{Type: FetchLocalProfile}, nil
		case wire.FetchLatestStorageManifest:
			return &FetchLatest{Type: FetchStorageManifest}, nil
		}
	}

	if m.MessageRequestResponse != nil {
		return d.messageRequestResponse(m.MessageRequestResponse)
	}

	return nil, nil
}

func (d *decoder) sentTranscript(s *wire.SyncSent) (*SentTranscript, error) {
	msg, err := d.dataMessage(s.Message)
	if err != nil {
		return nil, err
	}

	destination := address.FromRawPtr(s.DestinationUUID, s.DestinationE164)
	if destination.IsAbsent() && msg.Group.IsAbsent() {
		return nil, d.invalid("sent_transcript_without_destination",
			"sync message missing both destination and group id")
	}

	statuses := lo.FilterMap(s.UnidentifiedStatuses, func(st *wire.UnidentifiedDeliveryStatus, _ int) (UnidentifiedStatus, bool) {
		recipient, ok := d.addressOrDrop("content.sentTranscript", "dropped_invalid_unidentified_status",
			st.DestinationUUID, st.DestinationE164)
		return UnidentifiedStatus{Recipient: recipient, Unidentified: lo.FromPtr(st.Unidentified)}, ok
	})

	return &SentTranscript{
		Destination:              destination,
		Timestamp:                lo.FromPtr(s.Timestamp),
		Message:                  msg,
		ExpirationStartTimestamp: lo.FromPtr(s.ExpirationStartTimestamp),
		UnidentifiedStatuses:     statuses,
		IsRecipientUpdate:        lo.FromPtr(s.IsRecipientUpdate),
	}, nil
}

func requestType(t *wire.SyncRequestType) RequestType {
	switch lo.FromPtr(t) {
	case wire.SyncRequestContacts:
		return RequestContacts
	case wire.SyncRequestGroups:
		return RequestGroups
	case wire.SyncRequestBlocked:
		return RequestBlocked
	case wire.SyncRequestConfiguration:
		return RequestConfiguration
	default:
		return RequestUnknown
	}
}

// readMessages keeps the entries with a valid sender and drops the rest.
func (d *decoder) readMessages(reads []*wire.SyncRead) *ReadMessages {
	return &ReadMessages{
		Messages: lo.FilterMap(reads, func(r *wire.SyncRead, _ int) (ReadMessage, bool) {
			sender, ok := d.addressOrDrop("content.readMessages", "dropped_invalid_read_receipt",
				r.SenderUUID, r.SenderE164)
			return ReadMessage{Sender: sender, Timestamp: lo.FromPtr(r.Timestamp)}, ok
		}),
	}
}

func (d *decoder) viewOnceOpen(v *wire.SyncViewOnceOpen) (*ViewOnceOpen, error) {
	sender, ok := address.FromRawPtr(v.SenderUUID, v.SenderE164).Get()
	if !ok {
		return nil, d.invalid("view_once_open_without_sender", "view-once open message has no sender")
	}
	return &ViewOnceOpen{Sender: sender, Timestamp: lo.FromPtr(v.Timestamp)}, nil
}

func (d *decoder) verified(v *wire.Verified) (*VerifiedIdentity, error) {
	destination, ok := address.FromRawPtr(v.DestinationUUID, v.DestinationE164).Get()
	if !ok {
		return nil, d.invalid("verified_without_destination", "verified message has no destination")
	}

	key, err := keys.NewIdentityKey(v.IdentityKey, 0)
	if err != nil {
		return nil, d.invalidKey(err)
	}

	var state VerifiedState
	switch s := lo.FromPtr(v.State); s {
	case wire.VerifiedDefault:
		state = VerifiedDefault
	case wire.VerifiedVerified:
		state = VerifiedVerified
	case wire.VerifiedUnverified:
		state = VerifiedUnverified
	default:
		return nil, d.invalid("unknown_verified_state", "unknown verified state: %d", s)
	}

	return &VerifiedIdentity{
		Destination: destination,
		IdentityKey: key,
		State:       state,
		Timestamp:   d.meta.Timestamp,
	}, nil
}

func stickerPackOperations(ops []*wire.SyncStickerPackOperation) *StickerPackOperations {
	return &StickerPackOperations{
		Operations: lo.Map(ops, func(op *wire.SyncStickerPackOperation, _ int) StickerPackOperation {
			out := StickerPackOperation{
				PackID:  optionalBytes(op.PackID),
				PackKey: optionalBytes(op.PackKey),
			}
			if op.Type != nil {
				switch *op.Type {
				case wire.StickerPackInstall:
					out.Type = mo.Some(StickerPackInstall)
				case wire.StickerPackRemove:
					out.Type = mo.Some(StickerPackRemove)
				}
			}
			return out
		}),
	}
}

// blockedList maps numbers, then uuids, to addresses. Entries that do not
// parse are skipped.
func (d *decoder) blockedList(b *wire.SyncBlocked) *BlockedList {
	numbers := lo.FilterMap(b.Numbers, func(e164 string, i int) (address.Address, bool) {
		a, ok := address.FromRaw("", e164).Get()
		if !ok {
			d.drop("content.blockedList", "dropped_invalid_blocked_number", fmt.Sprintf("index=%d", i))
		}
		return a, ok
	})
	uuids := lo.FilterMap(b.UUIDs, func(raw string, _ int) (address.Address, bool) {
		a, ok := address.FromRaw(raw, "").Get()
		if !ok {
			d.drop("content.blockedList", "dropped_invalid_blocked_uuid", fmt.Sprintf("uuid=%q", raw))
		}
		return a, ok
	})
	return &BlockedList{
		Addresses: append(numbers, uuids...),
		GroupIDs:  b.GroupIDs,
	}
}

func messageRequestResponseType(t *wire.MessageRequestResponseType) MessageRequestResponseType {
	switch lo.FromPtr(t) {
	case wire.MessageRequestResponseAccept:
		return MessageRequestAccept
	case wire.MessageRequestResponseDelete:
		return MessageRequestDelete
	case wire.MessageRequestResponseBlock:
		return MessageRequestBlock
	case wire.MessageRequestResponseBlockAndDelete:
		return MessageRequestBlockAndDelete
	default:
		return MessageRequestUnknown
	}
}

// messageRequestResponse prefers the group id; without one the thread must
// resolve to a valid address.
func (d *decoder) messageRequestResponse(r *wire.SyncMessageRequestResponse) (*MessageRequestResponse, error) {
	out := &MessageRequestResponse{Type: messageRequestResponseType(r.Type)}
	if r.GroupID != nil {
		out.GroupID = mo.Some(r.GroupID)
		return out, nil
	}
	person, ok := address.FromRawPtr(r.ThreadUUID, r.ThreadE164).Get()
	if !ok {
		return nil, d.invalid("message_request_response_without_thread",
			"message request response has an invalid thread identifier")
	}
	out.Person = mo.Some(person)
	return out, nil
}
