package wire

/*
message SyncMessage {
  optional Sent                   sent                   = 1;
  optional Request                request                = 4;
  repeated Read                   read                   = 5;
  optional Blocked                blocked                = 6;
  optional Verified               verified               = 7;
  optional bytes                  padding                = 8;
  optional Configuration          configuration          = 9;
  repeated StickerPackOperation   stickerPackOperation   = 10;
  optional ViewOnceOpen           viewOnceOpen           = 11;
  optional FetchLatest            fetchLatest            = 12;
  optional MessageRequestResponse messageRequestResponse = 14;
}

Fields 2 (contacts), 3 (groups) and 13 (keys) exist on the wire but are not
classified by this package, so they are skipped like any unknown field.

message Verified {
  optional string destinationE164 = 1;
  optional bytes  identityKey     = 2;
  optional State  state           = 3;
  optional bytes  nullMessage     = 4;
  optional string destinationUuid = 5;
}
*/

type SyncMessage struct {
	Sent                   *SyncSent
	Request                *SyncRequest
	Read                   []*SyncRead
	Blocked                *SyncBlocked
	Verified               *Verified
	Padding                []byte
	Configuration          *SyncConfiguration
	StickerPackOperations  []*SyncStickerPackOperation
	ViewOnceOpen           *SyncViewOnceOpen
	FetchLatest            *SyncFetchLatest
	MessageRequestResponse *SyncMessageRequestResponse
}

func (m *SyncMessage) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			return mergeMessage(f, &m.Sent)
		case 4:
			return mergeMessage(f, &m.Request)
		case 5:
			return addMessage(f, &m.Read)
		case 6:
			return mergeMessage(f, &m.Blocked)
		case 7:
			return mergeMessage(f, &m.Verified)
		case 8:
			setBytes(f, &m.Padding)
		case 9:
			return mergeMessage(f, &m.Configuration)
		case 10:
			return addMessage(f, &m.StickerPackOperations)
		case 11:
			return mergeMessage(f, &m.ViewOnceOpen)
		case 12:
			return mergeMessage(f, &m.FetchLatest)
		case 14:
			return mergeMessage(f, &m.MessageRequestResponse)
		}
		return nil
	})
}

func (m *SyncMessage) appendTo(b []byte) []byte {
	b = appendMessage(b, 1, m.Sent)
	b = appendMessage(b, 4, m.Request)
	b = appendMessages(b, 5, m.Read)
	b = appendMessage(b, 6, m.Blocked)
	b = appendMessage(b, 7, m.Verified)
	b = appendBytes(b, 8, m.Padding)
	b = appendMessage(b, 9, m.Configuration)
	b = appendMessages(b, 10, m.StickerPackOperations)
	b = appendMessage(b, 11, m.ViewOnceOpen)
	b = appendMessage(b, 12, m.FetchLatest)
	b = appendMessage(b, 14, m.MessageRequestResponse)
	return b
}

func (m *SyncMessage) UnmarshalBinary(data []byte) error {
	return unmarshalBinary(m, data, "sync message")
}
func (m *SyncMessage) MarshalBinary() ([]byte, error) { return m.appendTo(nil), nil }

// SyncSent: destinationE164 = 1, timestamp = 2, message = 3,
// expirationStartTimestamp = 4, unidentifiedStatus = 5,
// isRecipientUpdate = 6, destinationUuid = 7.
type SyncSent struct {
	DestinationE164          *string
	Timestamp                *uint64
	Message                  *DataMessage
	ExpirationStartTimestamp *uint64
	UnidentifiedStatuses     []*UnidentifiedDeliveryStatus
	IsRecipientUpdate        *bool
	DestinationUUID          *string
}

func (m *SyncSent) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setString(f, &m.DestinationE164)
		case 2:
			setVarint(f, &m.Timestamp)
		case 3:
			return mergeMessage(f, &m.Message)
		case 4:
			setVarint(f, &m.ExpirationStartTimestamp)
		case 5:
			return addMessage(f, &m.UnidentifiedStatuses)
		case 6:
			setBool(f, &m.IsRecipientUpdate)
		case 7:
			setString(f, &m.DestinationUUID)
		}
		return nil
	})
}

func (m *SyncSent) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.DestinationE164)
	b = appendVarint(b, 2, m.Timestamp)
	b = appendMessage(b, 3, m.Message)
	b = appendVarint(b, 4, m.ExpirationStartTimestamp)
	b = appendMessages(b, 5, m.UnidentifiedStatuses)
	b = appendBool(b, 6, m.IsRecipientUpdate)
	b = appendString(b, 7, m.DestinationUUID)
	return b
}

// UnidentifiedDeliveryStatus: destinationE164 = 1, unidentified = 2, destinationUuid = 3.
type UnidentifiedDeliveryStatus struct {
	DestinationE164 *string
	Unidentified    *bool
	DestinationUUID *string
}

func (m *UnidentifiedDeliveryStatus) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setString(f, &m.DestinationE164)
		case 2:
			setBool(f, &m.Unidentified)
		case 3:
			setString(f, &m.DestinationUUID)
		}
		return nil
	})
}

func (m *UnidentifiedDeliveryStatus) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.DestinationE164)
	b = appendBool(b, 2, m.Unidentified)
	b = appendString(b, 3, m.DestinationUUID)
	return b
}

type SyncRequest struct {
	Type *SyncRequestType
}

func (m *SyncRequest) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		if f.num == 1 {
			setVarint(f, &m.Type)
		}
		return nil
	})
}

func (m *SyncRequest) appendTo(b []byte) []byte {
	return appendVarint(b, 1, m.Type)
}

// SyncRead and SyncViewOnceOpen share a layout: senderE164 = 1,
// timestamp = 2, senderUuid = 3.
type SyncRead struct {
	SenderE164 *string
	Timestamp  *uint64
	SenderUUID *string
}

func (m *SyncRead) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setString(f, &m.SenderE164)
		case 2:
			setVarint(f, &m.Timestamp)
		case 3:
			setString(f, &m.SenderUUID)
		}
		return nil
	})
}

func (m *SyncRead) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.SenderE164)
	b = appendVarint(b, 2, m.Timestamp)
	b = appendString(b, 3, m.SenderUUID)
	return b
}

type SyncViewOnceOpen struct {
	SenderE164 *string
	Timestamp  *uint64
	SenderUUID *string
}

func (m *SyncViewOnceOpen) unmarshal(b []byte) error {
	return (*SyncRead)(m).unmarshal(b)
}

func (m *SyncViewOnceOpen) appendTo(b []byte) []byte {
	return (*SyncRead)(m).appendTo(b)
}

// SyncBlocked: numbers = 1, groupIds = 2, uuids = 3.
type SyncBlocked struct {
	Numbers  []string
	GroupIDs [][]byte
	UUIDs    []string
}

func (m *SyncBlocked) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			addString(f, &m.Numbers)
		case 2:
			addBytes(f, &m.GroupIDs)
		case 3:
			addString(f, &m.UUIDs)
		}
		return nil
	})
}

func (m *SyncBlocked) appendTo(b []byte) []byte {
	b = appendStrings(b, 1, m.Numbers)
	b = appendBytesList(b, 2, m.GroupIDs)
	b = appendStrings(b, 3, m.UUIDs)
	return b
}

type Verified struct {
	DestinationE164 *string
	IdentityKey     []byte
	State           *VerifiedState
	NullMessage     []byte
	DestinationUUID *string
}

func (m *Verified) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setString(f, &m.DestinationE164)
		case 2:
			setBytes(f, &m.IdentityKey)
		case 3:
			setVarint(f, &m.State)
		case 4:
			setBytes(f, &m.NullMessage)
		case 5:
			setString(f, &m.DestinationUUID)
		}
		return nil
	})
}

func (m *Verified) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.DestinationE164)
	b = appendBytes(b, 2, m.IdentityKey)
	b = appendVarint(b, 3, m.State)
	b = appendBytes(b, 4, m.NullMessage)
	b = appendString(b, 5, m.DestinationUUID)
	return b
}

type SyncConfiguration struct {
	ReadReceipts                   *bool
	UnidentifiedDeliveryIndicators *bool
	TypingIndicators               *bool
	LinkPreviews                   *bool
}

func (m *SyncConfiguration) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setBool(f, &m.ReadReceipts)
		case 2:
			setBool(f, &m.UnidentifiedDeliveryIndicators)
		case 3:
			setBool(f, &m.TypingIndicators)
		case 4:
			setBool(f, &m.LinkPreviews)
		}
		return nil
	})
}

func (m *SyncConfiguration) appendTo(b []byte) []byte {
	b = appendBool(b, 1, m.ReadReceipts)
	b = appendBool(b, 2, m.UnidentifiedDeliveryIndicators)
	b = appendBool(b, 3, m.TypingIndicators)
	b = appendBool(b, 4, m.LinkPreviews)
	return b
}

type SyncStickerPackOperation struct {
	PackID  []byte
	PackKey []byte
	Type    *StickerPackOperationType
}

func (m *SyncStickerPackOperation) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setBytes(f, &m.PackID)
		case 2:
			setBytes(f, &m.PackKey)
		case 3:
			setVarint(f, &m.Type)
		}
		return nil
	})
}

func (m *SyncStickerPackOperation) appendTo(b []byte) []byte {
	b = appendBytes(b, 1, m.PackID)
	b = appendBytes(b, 2, m.PackKey)
	b = appendVarint(b, 3, m.Type)
	return b
}

type SyncFetchLatest struct {
	Type *FetchLatestType
}

func (m *SyncFetchLatest) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		if f.num == 1 {
			setVarint(f, &m.Type)
		}
		return nil
	})
}

func (m *SyncFetchLatest) appendTo(b []byte) []byte {
	return appendVarint(b, 1, m.Type)
}

// SyncMessageRequestResponse: threadE164 = 1, threadUuid = 2, groupId = 3, type = 4.
type SyncMessageRequestResponse struct {
	ThreadE164 *string
	ThreadUUID *string
	GroupID    []byte
	Type       *MessageRequestResponseType
}

func (m *SyncMessageRequestResponse) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setString(f, &m.ThreadE164)
		case 2:
			setString(f, &m.ThreadUUID)
		case 3:
			setBytes(f, &m.GroupID)
		case 4:
			setVarint(f, &m.Type)
		}
		return nil
	})
}

func (m *SyncMessageRequestResponse) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.ThreadE164)
	b = appendString(b, 2, m.ThreadUUID)
	b = appendBytes(b, 3, m.GroupID)
	b = appendVarint(b, 4, m.Type)
	return b
}
