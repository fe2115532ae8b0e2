package wire

import (
	"errors"
)

// ErrMalformed is returned when the bytes are not a valid encoding of the
// requested message. It uses errors.New so callers can match it with errors.Is().
var ErrMalformed = errors.New("malformed wire data")

// DataMessage.Flags bits.
const (
	DataMessageFlagEndSession            uint32 = 1
	DataMessageFlagExpirationTimerUpdate uint32 = 2
	DataMessageFlagProfileKeyUpdate      uint32 = 4
)

// DataMessage.ProtocolVersion values.
const (
	ProtocolVersionInitial       uint32 = 0
	ProtocolVersionMessageTimers uint32 = 1
	ProtocolVersionViewOnce      uint32 = 2
	ProtocolVersionViewOnceVideo uint32 = 3
	ProtocolVersionReactions     uint32 = 4
	ProtocolVersionCurrent              = ProtocolVersionReactions
)

// AttachmentPointer.Flags bits.
const (
	AttachmentFlagVoiceMessage uint32 = 1
)

type GroupContextType int32

const (
	GroupContextUnknown     GroupContextType = 0
	GroupContextUpdate      GroupContextType = 1
	GroupContextDeliver     GroupContextType = 2
	GroupContextQuit        GroupContextType = 3
	GroupContextRequestInfo GroupContextType = 4
)

// ContactMethodType is shared by Contact.Phone.Type and Contact.Email.Type.
type ContactMethodType int32

const (
	ContactMethodHome   ContactMethodType = 1
	ContactMethodMobile ContactMethodType = 2
	ContactMethodWork   ContactMethodType = 3
	ContactMethodCustom ContactMethodType = 4
)

type PostalAddressType int32

const (
	PostalAddressHome   PostalAddressType = 1
	PostalAddressWork   PostalAddressType = 2
	PostalAddressCustom PostalAddressType = 3
)

type ReceiptType int32

const (
	ReceiptDelivery ReceiptType = 0
	ReceiptRead     ReceiptType = 1
)

type TypingAction int32

const (
	TypingStarted TypingAction = 0
	TypingStopped TypingAction = 1
)

type VerifiedState int32

const (
	VerifiedDefault    VerifiedState = 0
	VerifiedVerified   VerifiedState = 1
	VerifiedUnverified VerifiedState = 2
)

type SyncRequestType int32

const (
	SyncRequestUnknown       SyncRequestType = 0
	SyncRequestContacts      SyncRequestType = 1
	SyncRequestGroups        SyncRequestType = 2
	SyncRequestBlocked       SyncRequestType = 3
	SyncRequestConfiguration SyncRequestType = 4
)

type StickerPackOperationType int32

const (
	StickerPackInstall StickerPackOperationType = 0
	StickerPackRemove  StickerPackOperationType = 1
)

type FetchLatestType int32

const (
	FetchLatestUnknown         FetchLatestType = 0
	FetchLatestLocalProfile    FetchLatestType = 1
	FetchLatestStorageManifest FetchLatestType = 2
)

type MessageRequestResponseType int32

const (
	MessageRequestResponseUnknown        MessageRequestResponseType = 0
	MessageRequestResponseAccept         MessageRequestResponseType = 1
	MessageRequestResponseDelete         MessageRequestResponseType = 2
	MessageRequestResponseBlock          MessageRequestResponseType = 3
	MessageRequestResponseBlockAndDelete MessageRequestResponseType = 4
)

// EnvelopeDataCase identifies which member of the ContentEnvelope oneof is set.
type EnvelopeDataCase int

const (
	EnvelopeDataNotSet EnvelopeDataCase = iota
	EnvelopeDataLegacyDataMessage
	EnvelopeDataContent
)
