package wire

/*
message DataMessage {
  optional string            body                    = 1;
  repeated AttachmentPointer attachments             = 2;
  optional GroupContext      group                   = 3;
  optional uint32            flags                   = 4;
  optional uint32            expireTimer             = 5;
  optional bytes             profileKey              = 6;
  optional uint64            timestamp               = 7;
  optional Quote             quote                   = 8;
  repeated Contact           contact                 = 9;
  repeated Preview           preview                 = 10;
  optional Sticker           sticker                 = 11;
  optional uint32            requiredProtocolVersion = 12;
  optional bool              isViewOnce              = 14;
  optional Reaction          reaction                = 16;
}

message AttachmentPointer {
  optional fixed64 id          = 1;
  optional string  contentType = 2;
  optional bytes   key         = 3;
  optional uint32  size        = 4;
  optional bytes   thumbnail   = 5;
  optional bytes   digest      = 6;
  optional string  fileName    = 7;
  optional uint32  flags       = 8;
  optional uint32  width       = 9;
  optional uint32  height      = 10;
  optional string  caption     = 11;
  optional string  blurHash    = 12;
}

message GroupContext {
  optional bytes             id          = 1;
  optional Type              type        = 2;
  optional string            name        = 3;
  repeated string            membersE164 = 4;
  optional AttachmentPointer avatar      = 5;
  repeated Member            members     = 6; // uuid = 1, e164 = 2
}
*/

type DataMessage struct {
	Body                    *string
	Attachments             []*AttachmentPointer
	Group                   *GroupContext
	Flags                   *uint32
	ExpireTimer             *uint32
	ProfileKey              []byte
	Timestamp               *uint64
	Quote                   *Quote
	Contacts                []*Contact
	Previews                []*Preview
	Sticker                 *Sticker
	RequiredProtocolVersion *uint32
	IsViewOnce              *bool
	Reaction                *Reaction
}

func (m *DataMessage) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setString(f, &m.Body)
		case 2:
			return addMessage(f, &m.Attachments)
		case 3:
			return mergeMessage(f, &m.Group)
		case 4:
			setVarint(f, &m.Flags)
		case 5:
			setVarint(f, &m.ExpireTimer)
		case 6:
			setBytes(f, &m.ProfileKey)
		case 7:
			setVarint(f, &m.Timestamp)
		case 8:
			return mergeMessage(f, &m.Quote)
		case 9:
			return addMessage(f, &m.Contacts)
		case 10:
			return addMessage(f, &m.Previews)
		case 11:
			return mergeMessage(f, &m.Sticker)
		case 12:
			setVarint(f, &m.RequiredProtocolVersion)
		case 14:
			setBool(f, &m.IsViewOnce)
		case 16:
			return mergeMessage(f, &m.Reaction)
		}
		return nil
	})
}

func (m *DataMessage) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Body)
	b = appendMessages(b, 2, m.Attachments)
	b = appendMessage(b, 3, m.Group)
	b = appendVarint(b, 4, m.Flags)
	b = appendVarint(b, 5, m.ExpireTimer)
	b = appendBytes(b, 6, m.ProfileKey)
	b = appendVarint(b, 7, m.Timestamp)
	b = appendMessage(b, 8, m.Quote)
	b = appendMessages(b, 9, m.Contacts)
	b = appendMessages(b, 10, m.Previews)
	b = appendMessage(b, 11, m.Sticker)
	b = appendVarint(b, 12, m.RequiredProtocolVersion)
	b = appendBool(b, 14, m.IsViewOnce)
	b = appendMessage(b, 16, m.Reaction)
	return b
}

func (m *DataMessage) UnmarshalBinary(data []byte) error {
	return unmarshalBinary(m, data, "data message")
}
func (m *DataMessage) MarshalBinary() ([]byte, error) { return m.appendTo(nil), nil }

type AttachmentPointer struct {
	ID          *uint64
	ContentType *string
	Key         []byte
	Size        *uint32
	Thumbnail   []byte
	Digest      []byte
	FileName    *string
	Flags       *uint32
	Width       *uint32
	Height      *uint32
	Caption     *string
	BlurHash    *string
}

func (m *AttachmentPointer) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setFixed64(f, &m.ID)
		case 2:
			setString(f, &m.ContentType)
		case 3:
			setBytes(f, &m.Key)
		case 4:
			setVarint(f, &m.Size)
		case 5:
			setBytes(f, &m.Thumbnail)
		case 6:
			setBytes(f, &m.Digest)
		case 7:
			setString(f, &m.FileName)
		case 8:
			setVarint(f, &m.Flags)
		case 9:
			setVarint(f, &m.Width)
		case 10:
			setVarint(f, &m.Height)
		case 11:
			setString(f, &m.Caption)
		case 12:
			setString(f, &m.BlurHash)
		}
		return nil
	})
}

func (m *AttachmentPointer) appendTo(b []byte) []byte {
	b = appendFixed64(b, 1, m.ID)
	b = appendString(b, 2, m.ContentType)
	b = appendBytes(b, 3, m.Key)
	b = appendVarint(b, 4, m.Size)
	b = appendBytes(b, 5, m.Thumbnail)
	b = appendBytes(b, 6, m.Digest)
	b = appendString(b, 7, m.FileName)
	b = appendVarint(b, 8, m.Flags)
	b = appendVarint(b, 9, m.Width)
	b = appendVarint(b, 10, m.Height)
	b = appendString(b, 11, m.Caption)
	b = appendString(b, 12, m.BlurHash)
	return b
}

type GroupContext struct {
	ID          []byte
	Type        *GroupContextType
	Name        *string
	MembersE164 []string
	Avatar      *AttachmentPointer
	Members     []*GroupMember
}

func (m *GroupContext) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setBytes(f, &m.ID)
		case 2:
			setVarint(f, &m.Type)
		case 3:
			setString(f, &m.Name)
		case 4:
			addString(f, &m.MembersE164)
		case 5:
			return mergeMessage(f, &m.Avatar)
		case 6:
			return addMessage(f, &m.Members)
		}
		return nil
	})
}

func (m *GroupContext) appendTo(b []byte) []byte {
	b = appendBytes(b, 1, m.ID)
	b = appendVarint(b, 2, m.Type)
	b = appendString(b, 3, m.Name)
	b = appendStrings(b, 4, m.MembersE164)
	b = appendMessage(b, 5, m.Avatar)
	b = appendMessages(b, 6, m.Members)
	return b
}

type GroupMember struct {
	UUID *string
	E164 *string
}

func (m *GroupMember) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setString(f, &m.UUID)
		case 2:
			setString(f, &m.E164)
		}
		return nil
	})
}

func (m *GroupMember) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.UUID)
	return appendString(b, 2, m.E164)
}

// Quote: id = 1, authorE164 = 2, text = 3, attachments = 4, authorUuid = 5.
type Quote struct {
	ID          *uint64
	AuthorE164  *string
	Text        *string
	Attachments []*QuotedAttachment
	AuthorUUID  *string
}

func (m *Quote) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setVarint(f, &m.ID)
		case 2:
			setString(f, &m.AuthorE164)
		case 3:
			setString(f, &m.Text)
		case 4:
			return addMessage(f, &m.Attachments)
		case 5:
			setString(f, &m.AuthorUUID)
		}
		return nil
	})
}

func (m *Quote) appendTo(b []byte) []byte {
	b = appendVarint(b, 1, m.ID)
	b = appendString(b, 2, m.AuthorE164)
	b = appendString(b, 3, m.Text)
	b = appendMessages(b, 4, m.Attachments)
	b = appendString(b, 5, m.AuthorUUID)
	return b
}

type QuotedAttachment struct {
	ContentType *string
	FileName    *string
	Thumbnail   *AttachmentPointer
}

func (m *QuotedAttachment) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setString(f, &m.ContentType)
		case 2:
			setString(f, &m.FileName)
		case 3:
			return mergeMessage(f, &m.Thumbnail)
		}
		return nil
	})
}

func (m *QuotedAttachment) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.ContentType)
	b = appendString(b, 2, m.FileName)
	b = appendMessage(b, 3, m.Thumbnail)
	return b
}

// Contact: name = 1, number = 3, email = 4, address = 5, avatar = 6, organization = 7.
type Contact struct {
	Name         *ContactName
	Numbers      []*ContactPhone
	Emails       []*ContactEmail
	Addresses    []*ContactPostalAddress
	Avatar       *ContactAvatar
	Organization *string
}

func (m *Contact) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			return mergeMessage(f, &m.Name)
		case 3:
			return addMessage(f, &m.Numbers)
		case 4:
			return addMessage(f, &m.Emails)
		case 5:
			return addMessage(f, &m.Addresses)
		case 6:
			return mergeMessage(f, &m.Avatar)
		case 7:
			setString(f, &m.Organization)
		}
		return nil
	})
}

func (m *Contact) appendTo(b []byte) []byte {
	b = appendMessage(b, 1, m.Name)
	b = appendMessages(b, 3, m.Numbers)
	b = appendMessages(b, 4, m.Emails)
	b = appendMessages(b, 5, m.Addresses)
	b = appendMessage(b, 6, m.Avatar)
	b = appendString(b, 7, m.Organization)
	return b
}

type ContactName struct {
	GivenName   *string
	FamilyName  *string
	Prefix      *string
	Suffix      *string
	MiddleName  *string
	DisplayName *string
}

func (m *ContactName) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setString(f, &m.GivenName)
		case 2:
			setString(f, &m.FamilyName)
		case 3:
			setString(f, &m.Prefix)
		case 4:
			setString(f, &m.Suffix)
		case 5:
			setString(f, &m.MiddleName)
		case 6:
			setString(f, &m.DisplayName)
		}
		return nil
	})
}

func (m *ContactName) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.GivenName)
	b = appendString(b, 2, m.FamilyName)
	b = appendString(b, 3, m.Prefix)
	b = appendString(b, 4, m.Suffix)
	b = appendString(b, 5, m.MiddleName)
	b = appendString(b, 6, m.DisplayName)
	return b
}

// ContactPhone and ContactEmail share a layout: value = 1, type = 2, label = 3.
type ContactPhone struct {
	Value *string
	Type  *ContactMethodType
	Label *string
}

func (m *ContactPhone) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setString(f, &m.Value)
		case 2:
			setVarint(f, &m.Type)
		case 3:
			setString(f, &m.Label)
		}
		return nil
	})
}

func (m *ContactPhone) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Value)
	b = appendVarint(b, 2, m.Type)
	b = appendString(b, 3, m.Label)
	return b
}

type ContactEmail struct {
	Value *string
	Type  *ContactMethodType
	Label *string
}

func (m *ContactEmail) unmarshal(b []byte) error {
	return (*ContactPhone)(m).unmarshal(b)
}

func (m *ContactEmail) appendTo(b []byte) []byte {
	return (*ContactPhone)(m).appendTo(b)
}

type ContactPostalAddress struct {
	Type         *PostalAddressType
	Label        *string
	Street       *string
	Pobox        *string
	Neighborhood *string
	City         *string
	Region       *string
	Postcode     *string
	Country      *string
}

func (m *ContactPostalAddress) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setVarint(f, &m.Type)
		case 2:
			setString(f, &m.Label)
		case 3:
			setString(f, &m.Street)
		case 4:
			setString(f, &m.Pobox)
		case 5:
			setString(f, &m.Neighborhood)
		case 6:
			setString(f, &m.City)
		case 7:
			setString(f, &m.Region)
		case 8:
			setString(f, &m.Postcode)
		case 9:
			setString(f, &m.Country)
		}
		return nil
	})
}

func (m *ContactPostalAddress) appendTo(b []byte) []byte {
	b = appendVarint(b, 1, m.Type)
	b = appendString(b, 2, m.Label)
	b = appendString(b, 3, m.Street)
	b = appendString(b, 4, m.Pobox)
	b = appendString(b, 5, m.Neighborhood)
	b = appendString(b, 6, m.City)
	b = appendString(b, 7, m.Region)
	b = appendString(b, 8, m.Postcode)
	b = appendString(b, 9, m.Country)
	return b
}

type ContactAvatar struct {
	Avatar    *AttachmentPointer
	IsProfile *bool
}

func (m *ContactAvatar) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			return mergeMessage(f, &m.Avatar)
		case 2:
			setBool(f, &m.IsProfile)
		}
		return nil
	})
}

func (m *ContactAvatar) appendTo(b []byte) []byte {
	b = appendMessage(b, 1, m.Avatar)
	return appendBool(b, 2, m.IsProfile)
}

type Preview struct {
	URL   *string
	Title *string
	Image *AttachmentPointer
}

func (m *Preview) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setString(f, &m.URL)
		case 2:
			setString(f, &m.Title)
		case 3:
			return mergeMessage(f, &m.Image)
		}
		return nil
	})
}

func (m *Preview) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.URL)
	b = appendString(b, 2, m.Title)
	b = appendMessage(b, 3, m.Image)
	return b
}

type Sticker struct {
	PackID    []byte
	PackKey   []byte
	StickerID *uint32
	Data      *AttachmentPointer
}

func (m *Sticker) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setBytes(f, &m.PackID)
		case 2:
			setBytes(f, &m.PackKey)
		case 3:
			setVarint(f, &m.StickerID)
		case 4:
			return mergeMessage(f, &m.Data)
		}
		return nil
	})
}

func (m *Sticker) appendTo(b []byte) []byte {
	b = appendBytes(b, 1, m.PackID)
	b = appendBytes(b, 2, m.PackKey)
	b = appendVarint(b, 3, m.StickerID)
	b = appendMessage(b, 4, m.Data)
	return b
}

type Reaction struct {
	Emoji               *string
	Remove              *bool
	TargetAuthorE164    *string
	TargetAuthorUUID    *string
	TargetSentTimestamp *uint64
}

func (m *Reaction) unmarshal(b []byte) error {
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			setString(f, &m.Emoji)
		case 2:
			setBool(f, &m.Remove)
		case 3:
			setString(f, &m.TargetAuthorE164)
		case 4:
			setString(f, &m.TargetAuthorUUID)
		case 5:
			setVarint(f, &m.TargetSentTimestamp)
		}
		return nil
	})
}

func (m *Reaction) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Emoji)
	b = appendBool(b, 2, m.Remove)
	b = appendString(b, 3, m.TargetAuthorE164)
	b = appendString(b, 4, m.TargetAuthorUUID)
	b = appendVarint(b, 5, m.TargetSentTimestamp)
	return b
}
