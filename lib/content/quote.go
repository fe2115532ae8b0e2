package content

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/go-i2p/go-signalcontent/lib/address"
	"github.com/go-i2p/go-signalcontent/lib/wire"
)

// Quote references an earlier message by id and author.
type Quote struct {
	ID          uint64
	Author      address.Address
	Text        string
	Attachments []QuotedAttachment
}

// QuotedAttachment describes an attachment of the quoted message.
type QuotedAttachment struct {
	ContentType string
	FileName    string
	Thumbnail   mo.Option[AttachmentPointer]
}

// quote decodes a quote. Unlike a group member, a quote without a valid
// author does not fail the message: the quote is dropped and decoding
// continues.
func (d *decoder) quote(q *wire.Quote) mo.Option[Quote] {
	if q == nil {
		return mo.None[Quote]()
	}

	author, ok := address.FromRawPtr(q.AuthorUUID, q.AuthorE164).Get()
	if !ok {
		d.drop("content.quote", "dropped_quote_without_author", fmt.Sprintf("id=%d", lo.FromPtr(q.ID)))
		return mo.None[Quote]()
	}

	return mo.Some(Quote{
		ID:     lo.FromPtr(q.ID),
		Author: author,
		Text:   lo.FromPtr(q.Text),
		Attachments: lo.Map(q.Attachments, func(a *wire.QuotedAttachment, _ int) QuotedAttachment {
			qa := QuotedAttachment{
				ContentType: lo.FromPtr(a.ContentType),
				FileName:    lo.FromPtr(a.FileName),
			}
			if a.Thumbnail != nil {
				qa.Thumbnail = mo.Some(attachmentPointer(a.Thumbnail))
			}
			return qa
		}),
	})
}
