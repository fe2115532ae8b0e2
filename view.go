package main

import (
	"encoding/hex"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/go-i2p/go-signalcontent/lib/address"
	"github.com/go-i2p/go-signalcontent/lib/content"
)

// The view types are the printable form of a decoded Content. Optional
// values become pointers or omitempty fields and byte strings become hex.

type contentView struct {
	Family       string       `json:"family" yaml:"family"`
	Sender       string       `json:"sender" yaml:"sender"`
	SenderDevice int32        `json:"sender_device" yaml:"sender_device"`
	Timestamp    uint64       `json:"timestamp" yaml:"timestamp"`
	NeedsReceipt bool         `json:"needs_receipt" yaml:"needs_receipt"`
	LocalAddress string       `json:"local_address" yaml:"local_address"`
	Data         *dataView    `json:"data,omitempty" yaml:"data,omitempty"`
	Sync         *syncView    `json:"sync,omitempty" yaml:"sync,omitempty"`
	Call         *callView    `json:"call,omitempty" yaml:"call,omitempty"`
	Receipt      *receiptView `json:"receipt,omitempty" yaml:"receipt,omitempty"`
	Typing       *typingView  `json:"typing,omitempty" yaml:"typing,omitempty"`
	Diagnostics  []string     `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

func (v contentView) metadataOnly() contentView {
	v.Data, v.Sync, v.Call, v.Receipt, v.Typing = nil, nil, nil, nil, nil
	return v
}

type dataView struct {
	Timestamp        uint64              `json:"timestamp" yaml:"timestamp"`
	Body             *string             `json:"body,omitempty" yaml:"body,omitempty"`
	Group            *groupView          `json:"group,omitempty" yaml:"group,omitempty"`
	Attachments      []attachmentView    `json:"attachments,omitempty" yaml:"attachments,omitempty"`
	EndSession       bool                `json:"end_session,omitempty" yaml:"end_session,omitempty"`
	ExpirationUpdate bool                `json:"expiration_update,omitempty" yaml:"expiration_update,omitempty"`
	ProfileKeyUpdate bool                `json:"profile_key_update,omitempty" yaml:"profile_key_update,omitempty"`
	ExpiresInSeconds *uint32             `json:"expires_in_seconds,omitempty" yaml:"expires_in_seconds,omitempty"`
	ProfileKey       string              `json:"profile_key,omitempty" yaml:"profile_key,omitempty"`
	Quote            *quoteView          `json:"quote,omitempty" yaml:"quote,omitempty"`
	SharedContacts   []sharedContactView `json:"shared_contacts,omitempty" yaml:"shared_contacts,omitempty"`
	Previews         []previewView       `json:"previews,omitempty" yaml:"previews,omitempty"`
	Sticker          *stickerView        `json:"sticker,omitempty" yaml:"sticker,omitempty"`
	ViewOnce         bool                `json:"view_once,omitempty" yaml:"view_once,omitempty"`
	Reaction         *reactionView       `json:"reaction,omitempty" yaml:"reaction,omitempty"`
}

type groupView struct {
	Type    string          `json:"type" yaml:"type"`
	ID      string          `json:"id" yaml:"id"`
	Name    *string         `json:"name,omitempty" yaml:"name,omitempty"`
	Members []string        `json:"members,omitempty" yaml:"members,omitempty"`
	Avatar  *attachmentView `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

type attachmentView struct {
	ID          uint64  `json:"id" yaml:"id"`
	ContentType string  `json:"content_type" yaml:"content_type"`
	Key         string  `json:"key,omitempty" yaml:"key,omitempty"`
	Size        *uint32 `json:"size,omitempty" yaml:"size,omitempty"`
	Thumbnail   string  `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Width       uint32  `json:"width,omitempty" yaml:"width,omitempty"`
	Height      uint32  `json:"height,omitempty" yaml:"height,omitempty"`
	Digest      string  `json:"digest,omitempty" yaml:"digest,omitempty"`
	FileName    *string `json:"file_name,omitempty" yaml:"file_name,omitempty"`
	VoiceNote   bool    `json:"voice_note,omitempty" yaml:"voice_note,omitempty"`
	Caption     *string `json:"caption,omitempty" yaml:"caption,omitempty"`
	BlurHash    *string `json:"blur_hash,omitempty" yaml:"blur_hash,omitempty"`
}

type quoteView struct {
	ID          uint64                 `json:"id" yaml:"id"`
	Author      string                 `json:"author" yaml:"author"`
	Text        string                 `json:"text,omitempty" yaml:"text,omitempty"`
	Attachments []quotedAttachmentView `json:"attachments,omitempty" yaml:"attachments,omitempty"`
}

type quotedAttachmentView struct {
	ContentType string          `json:"content_type" yaml:"content_type"`
	FileName    string          `json:"file_name,omitempty" yaml:"file_name,omitempty"`
	Thumbnail   *attachmentView `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
}

type sharedContactView struct {
	Name          map[string]string   `json:"name,omitempty" yaml:"name,omitempty"`
	Avatar        *attachmentView     `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	AvatarProfile bool                `json:"avatar_is_profile,omitempty" yaml:"avatar_is_profile,omitempty"`
	Phones        []contactMethodView `json:"phones,omitempty" yaml:"phones,omitempty"`
	Emails        []contactMethodView `json:"emails,omitempty" yaml:"emails,omitempty"`
	Addresses     []map[string]string `json:"addresses,omitempty" yaml:"addresses,omitempty"`
	Organization  *string             `json:"organization,omitempty" yaml:"organization,omitempty"`
}

type contactMethodView struct {
	Type  string  `json:"type" yaml:"type"`
	Value string  `json:"value" yaml:"value"`
	Label *string `json:"label,omitempty" yaml:"label,omitempty"`
}

type previewView struct {
	URL   string          `json:"url" yaml:"url"`
	Title string          `json:"title,omitempty" yaml:"title,omitempty"`
	Image *attachmentView `json:"image,omitempty" yaml:"image,omitempty"`
}

type stickerView struct {
	PackID     string         `json:"pack_id" yaml:"pack_id"`
	PackKey    string         `json:"pack_key" yaml:"pack_key"`
	StickerID  uint32         `json:"sticker_id" yaml:"sticker_id"`
	Attachment attachmentView `json:"attachment" yaml:"attachment"`
}

type reactionView struct {
	Emoji               string `json:"emoji" yaml:"emoji"`
	Remove              bool   `json:"remove,omitempty" yaml:"remove,omitempty"`
	TargetAuthor        string `json:"target_author" yaml:"target_author"`
	TargetSentTimestamp uint64 `json:"target_sent_timestamp" yaml:"target_sent_timestamp"`
}

type syncView struct {
	Kind   string `json:"kind" yaml:"kind"`
	Detail any    `json:"detail,omitempty" yaml:"detail,omitempty"`
}

type callView struct {
	Kind   string `json:"kind" yaml:"kind"`
	Detail any    `json:"detail,omitempty" yaml:"detail,omitempty"`
}

type receiptView struct {
	Type       string   `json:"type" yaml:"type"`
	Timestamps []uint64 `json:"timestamps" yaml:"timestamps"`
	When       uint64   `json:"when" yaml:"when"`
}

type typingView struct {
	Action    string `json:"action" yaml:"action"`
	Timestamp uint64 `json:"timestamp" yaml:"timestamp"`
	GroupID   string `json:"group_id,omitempty" yaml:"group_id,omitempty"`
}

func newContentView(c *content.Content, withDiagnostics bool) contentView {
	v := contentView{
		Family:       c.Family().String(),
		Sender:       c.Sender().String(),
		SenderDevice: c.SenderDevice(),
		Timestamp:    c.Timestamp(),
		NeedsReceipt: c.NeedsReceipt(),
		LocalAddress: c.LocalAddress().String(),
	}
	if withDiagnostics {
		v.Diagnostics = lo.Map(c.Diagnostics(), func(d content.Diagnostic, _ int) string { return d.String() })
	}

	switch p := c.Payload().(type) {
	case *content.DataMessage:
		v.Data = newDataView(p)
	case *content.SyncMessage:
		v.Sync = newSyncView(p)
	case *content.CallMessage:
		v.Call = newCallView(p)
	case *content.ReceiptMessage:
		v.Receipt = &receiptView{Type: p.Type.String(), Timestamps: p.Timestamps, When: p.When}
	case *content.TypingMessage:
		v.Typing = &typingView{Action: p.Action.String(), Timestamp: p.Timestamp, GroupID: hexOption(p.GroupID)}
	}
	return v
}

func optionPtr[T any](o mo.Option[T]) *T {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}

func hexOption(o mo.Option[[]byte]) string {
	return hex.EncodeToString(o.OrEmpty())
}

func addressStrings(as []address.Address) []string {
	return lo.Map(as, func(a address.Address, _ int) string { return a.String() })
}

func newAttachmentView(a content.AttachmentPointer) attachmentView {
	return attachmentView{
		ID:          a.ID,
		ContentType: a.ContentType,
		Key:         hex.EncodeToString(a.Key),
		Size:        optionPtr(a.Size),
		Thumbnail:   hexOption(a.Thumbnail),
		Width:       a.Width,
		Height:      a.Height,
		Digest:      hexOption(a.Digest),
		FileName:    optionPtr(a.FileName),
		VoiceNote:   a.VoiceNote,
		Caption:     optionPtr(a.Caption),
		BlurHash:    optionPtr(a.BlurHash),
	}
}

func attachmentViewOption(o mo.Option[content.AttachmentPointer]) *attachmentView {
	a, ok := o.Get()
	if !ok {
		return nil
	}
	v := newAttachmentView(a)
	return &v
}

func newDataView(m *content.DataMessage) *dataView {
	v := &dataView{
		Timestamp:        m.Timestamp,
		Body:             optionPtr(m.Body),
		Attachments:      lo.Map(m.Attachments, func(a content.AttachmentPointer, _ int) attachmentView { return newAttachmentView(a) }),
		EndSession:       m.EndSession,
		ExpirationUpdate: m.ExpirationUpdate,
		ProfileKeyUpdate: m.ProfileKeyUpdate,
		ExpiresInSeconds: optionPtr(m.ExpiresInSeconds),
		ProfileKey:       hexOption(m.ProfileKey),
		ViewOnce:         m.ViewOnce,
	}

	if g, ok := m.Group.Get(); ok {
		v.Group = &groupView{
			Type:    g.Type.String(),
			ID:      hex.EncodeToString(g.ID),
			Name:    optionPtr(g.Name),
			Members: addressStrings(g.Members.OrEmpty()),
			Avatar:  attachmentViewOption(g.Avatar),
		}
	}
	if q, ok := m.Quote.Get(); ok {
		v.Quote = &quoteView{
			ID:     q.ID,
			Author: q.Author.String(),
			Text:   q.Text,
			Attachments: lo.Map(q.Attachments, func(a content.QuotedAttachment, _ int) quotedAttachmentView {
				return quotedAttachmentView{ContentType: a.ContentType, FileName: a.FileName, Thumbnail: attachmentViewOption(a.Thumbnail)}
			}),
		}
	}
	v.SharedContacts = lo.Map(m.SharedContacts.OrEmpty(), func(c content.SharedContact, _ int) sharedContactView {
		return newSharedContactView(c)
	})
	v.Previews = lo.Map(m.Previews.OrEmpty(), func(p content.Preview, _ int) previewView {
		return previewView{URL: p.URL, Title: p.Title, Image: attachmentViewOption(p.Image)}
	})
	if s, ok := m.Sticker.Get(); ok {
		v.Sticker = &stickerView{
			PackID:     hex.EncodeToString(s.PackID),
			PackKey:    hex.EncodeToString(s.PackKey),
			StickerID:  s.StickerID,
			Attachment: newAttachmentView(s.Attachment),
		}
	}
	if r, ok := m.Reaction.Get(); ok {
		v.Reaction = &reactionView{
			Emoji:               r.Emoji,
			Remove:              r.Remove,
			TargetAuthor:        r.TargetAuthor.String(),
			TargetSentTimestamp: r.TargetSentTimestamp,
		}
	}
	return v
}

// presentStrings keeps the named options that are set.
func presentStrings(named map[string]mo.Option[string]) map[string]string {
	present := lo.PickBy(named, func(_ string, o mo.Option[string]) bool { return o.IsPresent() })
	out := lo.MapValues(present, func(o mo.Option[string], _ string) string { return o.MustGet() })
	if len(out) == 0 {
		return nil
	}
	return out
}

func newSharedContactView(c content.SharedContact) sharedContactView {
	method := func(m content.ContactMethod, _ int) contactMethodView {
		return contactMethodView{Type: m.Type.String(), Value: m.Value, Label: optionPtr(m.Label)}
	}
	v := sharedContactView{
		Name: presentStrings(map[string]mo.Option[string]{
			"display": c.Name.Display,
			"given":   c.Name.Given,
			"family":  c.Name.Family,
			"prefix":  c.Name.Prefix,
			"suffix":  c.Name.Suffix,
			"middle":  c.Name.Middle,
		}),
		Phones: lo.Map(c.Phones, method),
		Emails: lo.Map(c.Emails, method),
		Addresses: lo.Map(c.Addresses, func(a content.PostalAddress, _ int) map[string]string {
			out := presentStrings(map[string]mo.Option[string]{
				"label":        a.Label,
				"street":       a.Street,
				"pobox":        a.Pobox,
				"neighborhood": a.Neighborhood,
				"city":         a.City,
				"region":       a.Region,
				"postcode":     a.Postcode,
				"country":      a.Country,
			})
			if out == nil {
				out = map[string]string{}
			}
			out["type"] = a.Type.String()
			return out
		}),
		Organization: optionPtr(c.Organization),
	}
	if avatar, ok := c.Avatar.Get(); ok {
		a := newAttachmentView(avatar.Attachment)
		v.Avatar = &a
		v.AvatarProfile = avatar.IsProfile
	}
	return v
}

func newSyncView(m *content.SyncMessage) *syncView {
	if m.IsEmpty() {
		return &syncView{Kind: "empty"}
	}

	v := &syncView{Kind: m.Payload().Kind().String()}
	switch p := m.Payload().(type) {
	case *content.SentTranscript:
		detail := map[string]any{
			"timestamp":                  p.Timestamp,
			"expiration_start_timestamp": p.ExpirationStartTimestamp,
			"is_recipient_update":        p.IsRecipientUpdate,
			"unidentified_statuses": lo.Map(p.UnidentifiedStatuses, func(s content.UnidentifiedStatus, _ int) map[string]any {
				return map[string]any{"recipient": s.Recipient.String(), "unidentified": s.Unidentified}
			}),
		}
		if d, ok := p.Destination.Get(); ok {
			detail["destination"] = d.String()
		}
		if p.Message != nil {
			detail["message"] = newDataView(p.Message)
		}
		v.Detail = detail
	case *content.RequestMessage:
		v.Detail = map[string]any{"type": p.Type.String()}
	case *content.ReadMessages:
		v.Detail = lo.Map(p.Messages, func(r content.ReadMessage, _ int) map[string]any {
			return map[string]any{"sender": r.Sender.String(), "timestamp": r.Timestamp}
		})
	case *content.ViewOnceOpen:
		v.Detail = map[string]any{"sender": p.Sender.String(), "timestamp": p.Timestamp}
	case *content.VerifiedIdentity:
		v.Detail = map[string]any{
			"destination":  p.Destination.String(),
			"identity_key": p.IdentityKey.PublicKey().String(),
			"fingerprint":  p.IdentityKey.Fingerprint(),
			"state":        p.State.String(),
			"timestamp":    p.Timestamp,
		}
	case *content.StickerPackOperations:
		v.Detail = lo.Map(p.Operations, func(op content.StickerPackOperation, _ int) map[string]any {
			out := map[string]any{"pack_id": hexOption(op.PackID), "pack_key": hexOption(op.PackKey)}
			if t, ok := op.Type.Get(); ok {
				out["type"] = t.String()
			}
			return out
		})
	case *content.BlockedList:
		v.Detail = map[string]any{
			"addresses": addressStrings(p.Addresses),
			"group_ids": lo.Map(p.GroupIDs, func(id []byte, _ int) string { return hex.EncodeToString(id) }),
		}
	case *content.Configuration:
		v.Detail = map[string]*bool{
			"read_receipts":                    optionPtr(p.ReadReceipts),
			"unidentified_delivery_indicators": optionPtr(p.UnidentifiedDeliveryIndicators),
			"typing_indicators":                optionPtr(p.TypingIndicators),
			"link_previews":                    optionPtr(p.LinkPreviews),
		}
	case *content.FetchLatest:
		v.Detail = map[string]any{"type": p.Type.String()}
	case *content.MessageRequestResponse:
		detail := map[string]any{"type": p.Type.String()}
		if id, ok := p.GroupID.Get(); ok {
			detail["group_id"] = hex.EncodeToString(id)
		}
		if person, ok := p.Person.Get(); ok {
			detail["person"] = person.String()
		}
		v.Detail = detail
	}
	return v
}

func newCallView(m *content.CallMessage) *callView {
	switch p := m.Payload().(type) {
	case *content.OfferMessage:
		return &callView{Kind: "offer", Detail: map[string]any{"id": p.ID, "description": p.Description}}
	case *content.AnswerMessage:
		return &callView{Kind: "answer", Detail: map[string]any{"id": p.ID, "description": p.Description}}
	case *content.IceUpdates:
		return &callView{Kind: "ice_updates", Detail: lo.Map(p.Updates, func(u content.IceUpdate, _ int) map[string]any {
			return map[string]any{"id": u.ID, "sdp_mid": u.SdpMid, "sdp_mline_index": u.SdpMLineIndex, "sdp": u.Sdp}
		})}
	case *content.HangupMessage:
		return &callView{Kind: "hangup", Detail: map[string]any{"id": p.ID}}
	case *content.BusyMessage:
		return &callView{Kind: "busy", Detail: map[string]any{"id": p.ID}}
	default:
		return &callView{Kind: "empty"}
	}
}
