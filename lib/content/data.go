package content

import (
	"fmt"

	"github.com/go-i2p/logger"
	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/go-i2p/go-signalcontent/lib/address"
	"github.com/go-i2p/go-signalcontent/lib/wire"
)

// DataMessage is user-visible content. Timestamp is always the envelope
// timestamp.
type DataMessage struct {
	Timestamp        uint64
	Group            mo.Option[Group]
	Attachments      []AttachmentPointer
	Body             mo.Option[string]
	EndSession       bool
	ExpirationUpdate bool
	ProfileKeyUpdate bool
	ExpiresInSeconds mo.Option[uint32]
	ProfileKey       mo.Option[[]byte]
	Quote            mo.Option[Quote]
	SharedContacts   mo.Option[[]SharedContact]
	Previews         mo.Option[[]Preview]
	Sticker          mo.Option[Sticker]
	ViewOnce         bool
	Reaction         mo.Option[Reaction]
}

func (*DataMessage) Family() Family { return FamilyData }
func (*DataMessage) isPayload()     {}

// Preview is a link preview attached to a data message.
type Preview struct {
	URL   string
	Title string
	Image mo.Option[AttachmentPointer]
}

// Sticker references one sticker in a pack. All four parts are required.
type Sticker struct {
	PackID     []byte
	PackKey    []byte
	StickerID  uint32
	Attachment AttachmentPointer
}

// Reaction adds or removes an emoji on an earlier message.
type Reaction struct {
	Emoji               string
	Remove              bool
	TargetAuthor        address.Address
	TargetSentTimestamp uint64
}

// dataMessage validates and decodes a data message. Checks run in a fixed
// order: group context, version gate, inline timestamp, then the optional
// sub-structures. The group is decoded before the version gate only so that
// an unsupported-version error can carry it.
func (d *decoder) dataMessage(m *wire.DataMessage) (*DataMessage, error) {
	if m == nil {
		m = &wire.DataMessage{}
	}

	group, groupErr := d.group(m.Group)

	if required := lo.FromPtr(m.RequiredProtocolVersion); required > MaxSupportedVersion {
		log.WithFields(logger.Fields{
			"at":       "content.dataMessage",
			"required": required,
			"current":  MaxSupportedVersion,
			"sender":   d.meta.Sender.String(),
		}).Debug("unsupported_data_message_version")
		return nil, &UnsupportedVersionError{
			CurrentVersion:  MaxSupportedVersion,
			RequiredVersion: required,
			Sender:          d.meta.Sender,
			SenderDevice:    d.meta.SenderDevice,
			Group:           group,
		}
	}
	if groupErr != nil {
		return nil, groupErr
	}

	if err := d.checkTimestamp(m.Timestamp); err != nil {
		return nil, err
	}

	flags := lo.FromPtr(m.Flags)

	return &DataMessage{
		Timestamp:        d.meta.Timestamp,
		Group:            group,
		Attachments:      attachmentPointers(m.Attachments),
		Body:             optional(m.Body),
		EndSession:       flags&wire.DataMessageFlagEndSession != 0,
		ExpirationUpdate: flags&wire.DataMessageFlagExpirationTimerUpdate != 0,
		ProfileKeyUpdate: flags&wire.DataMessageFlagProfileKeyUpdate != 0,
		ExpiresInSeconds: optional(m.ExpireTimer),
		ProfileKey:       optionalBytes(m.ProfileKey),
		Quote:            d.quote(m.Quote),
		SharedContacts:   sharedContacts(m.Contacts),
		Previews:         previews(m.Previews),
		Sticker:          d.sticker(m.Sticker),
		ViewOnce:         lo.FromPtr(m.IsViewOnce),
		Reaction:         d.reaction(m.Reaction),
	}, nil
}

// previews returns None when the message declares no previews.
func previews(ps []*wire.Preview) mo.Option[[]Preview] {
	if len(ps) == 0 {
		return mo.None[[]Preview]()
	}
	return mo.Some(lo.Map(ps, func(p *wire.Preview, _ int) Preview {
		out := Preview{URL: lo.FromPtr(p.URL), Title: lo.FromPtr(p.Title)}
		if p.Image != nil {
			out.Image = mo.Some(attachmentPointer(p.Image))
		}
		return out
	}))
}

// sticker requires pack id, pack key, sticker id and data; anything less
// yields no sticker.
func (d *decoder) sticker(s *wire.Sticker) mo.Option[Sticker] {
	if s == nil {
		return mo.None[Sticker]()
	}
	if s.PackID == nil || s.PackKey == nil || s.StickerID == nil || s.Data == nil {
		d.drop("content.sticker", "dropped_incomplete_sticker", fmt.Sprintf(
			"pack_id=%t pack_key=%t sticker_id=%t data=%t",
			s.PackID != nil, s.PackKey != nil, s.StickerID != nil, s.Data != nil))
		return mo.None[Sticker]()
	}
	return mo.Some(Sticker{
		PackID:     s.PackID,
		PackKey:    s.PackKey,
		StickerID:  *s.StickerID,
		Attachment: attachmentPointer(s.Data),
	})
}

// reaction requires an emoji, a resolvable target author and the target's
// sent timestamp; anything less yields no reaction.
func (d *decoder) reaction(r *wire.Reaction) mo.Option[Reaction] {
	if r == nil {
		return mo.None[Reaction]()
	}
	if r.Emoji == nil || r.TargetSentTimestamp == nil {
		d.drop("content.reaction", "dropped_incomplete_reaction", fmt.Sprintf(
			"emoji=%t target_sent_timestamp=%t", r.Emoji != nil, r.TargetSentTimestamp != nil))
		return mo.None[Reaction]()
	}
	author, ok := d.addressOrDrop("content.reaction", "dropped_reaction_without_author",
		r.TargetAuthorUUID, r.TargetAuthorE164)
	if !ok {
		return mo.None[Reaction]()
	}
	return mo.Some(Reaction{
		Emoji:               *r.Emoji,
		Remove:              lo.FromPtr(r.Remove),
		TargetAuthor:        author,
		TargetSentTimestamp: *r.TargetSentTimestamp,
	})
}
