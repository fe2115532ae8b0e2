package content

// Family identifies the top-level message family of a decoded Content.
type Family int

const (
	FamilyData Family = iota + 1
	FamilySync
	FamilyCall
	FamilyReceipt
	FamilyTyping
)

func (f Family) String() string {
	switch f {
	case FamilyData:
		return "data"
	case FamilySync:
		return "sync"
	case FamilyCall:
		return "call"
	case FamilyReceipt:
		return "receipt"
	case FamilyTyping:
		return "typing"
	default:
		return "unknown"
	}
}

// GroupType is the kind of group context update.
type GroupType int

const (
	GroupUnknown GroupType = iota
	GroupDeliver
	GroupUpdate
	GroupQuit
	GroupRequestInfo
)

func (t GroupType) String() string {
	switch t {
	case GroupDeliver:
		return "DELIVER"
	case GroupUpdate:
		return "UPDATE"
	case GroupQuit:
		return "QUIT"
	case GroupRequestInfo:
		return "REQUEST_INFO"
	default:
		return "UNKNOWN"
	}
}

// ReceiptType distinguishes delivery and read receipts.
type ReceiptType int

const (
	ReceiptUnknown ReceiptType = iota
	ReceiptDelivery
	ReceiptRead
)

func (t ReceiptType) String() string {
	switch t {
	case ReceiptDelivery:
		return "DELIVERY"
	case ReceiptRead:
		return "READ"
	default:
		return "UNKNOWN"
	}
}

// TypingAction says whether the sender started or stopped typing.
type TypingAction int

const (
	TypingUnknown TypingAction = iota
	TypingStarted
	TypingStopped
)

func (a TypingAction) String() string {
	switch a {
	case TypingStarted:
		return "STARTED"
	case TypingStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// VerifiedState is the verification state of an identity key.
type VerifiedState int

const (
	VerifiedDefault VerifiedState = iota
	VerifiedVerified
	VerifiedUnverified
)

func (s VerifiedState) String() string {
	switch s {
	case VerifiedVerified:
		return "VERIFIED"
	case VerifiedUnverified:
		return "UNVERIFIED"
	default:
		return "DEFAULT"
	}
}

// RequestType names what a request sync message asks for.
type RequestType int

const (
	RequestUnknown RequestType = iota
	RequestContacts
	RequestGroups
	RequestBlocked
	RequestConfiguration
)

func (t RequestType) String() string {
	switch t {
	case RequestContacts:
		return "CONTACTS"
	case RequestGroups:
		return "GROUPS"
	case RequestBlocked:
		return "BLOCKED"
	case RequestConfiguration:
		return "CONFIGURATION"
	default:
		return "UNKNOWN"
	}
}

// StickerPackOperationType is an install or a remove.
type StickerPackOperationType int

const (
	StickerPackInstall StickerPackOperationType = iota
	StickerPackRemove
)

func (t StickerPackOperationType) String() string {
	if t == StickerPackRemove {
		return "REMOVE"
	}
	return "INSTALL"
}

// FetchType names what a fetch-latest sync message asks to refresh.
type FetchType int

const (
	FetchLocalProfile FetchType = iota + 1
	FetchStorageManifest
)

func (t FetchType) String() string {
	switch t {
	case FetchLocalProfile:
		return "LOCAL_PROFILE"
	case FetchStorageManifest:
		return "STORAGE_MANIFEST"
	default:
		return "UNKNOWN"
	}
}

// MessageRequestResponseType is the answer to a message request.
type MessageRequestResponseType int

const (
	MessageRequestUnknown MessageRequestResponseType = iota
	MessageRequestAccept
	MessageRequestDelete
	MessageRequestBlock
	MessageRequestBlockAndDelete
)

func (t MessageRequestResponseType) String() string {
	switch t {
	case MessageRequestAccept:
		return "ACCEPT"
	case MessageRequestDelete:
		return "DELETE"
	case MessageRequestBlock:
		return "BLOCK"
	case MessageRequestBlockAndDelete:
		return "BLOCK_AND_DELETE"
	default:
		return "UNKNOWN"
	}
}

// ContactMethodType classifies shared-contact phone numbers and emails.
type ContactMethodType int

const (
	ContactHome ContactMethodType = iota
	ContactMobile
	ContactWork
	ContactCustom
)

func (t ContactMethodType) String() string {
	switch t {
	case ContactMobile:
		return "MOBILE"
	case ContactWork:
		return "WORK"
	case ContactCustom:
		return "CUSTOM"
	default:
		return "HOME"
	}
}

// PostalAddressType labels a postal address.
type PostalAddressType int

const (
	PostalHome PostalAddressType = iota
	PostalWork
	PostalCustom
)

func (t PostalAddressType) String() string {
	switch t {
	case PostalWork:
		return "WORK"
	case PostalCustom:
		return "CUSTOM"
	default:
		return "HOME"
	}
}
