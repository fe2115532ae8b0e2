package content

import (
	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/go-i2p/go-signalcontent/lib/wire"
)

// AttachmentPointer references an encrypted blob stored by the service.
type AttachmentPointer struct {
	ID          uint64
	ContentType string
	Key         []byte
	Size        mo.Option[uint32]
	Thumbnail   mo.Option[[]byte]
	Width       uint32
	Height      uint32
	Digest      mo.Option[[]byte]
	FileName    mo.Option[string]
	VoiceNote   bool
	Caption     mo.Option[string]
	BlurHash    mo.Option[string]
}

func optional[T any](p *T) mo.Option[T] {
	if p == nil {
		return mo.None[T]()
	}
	return mo.Some(*p)
}

func optionalBytes(b []byte) mo.Option[[]byte] {
	if b == nil {
		return mo.None[[]byte]()
	}
	return mo.Some(b)
}

func attachmentPointer(p *wire.AttachmentPointer) AttachmentPointer {
	return AttachmentPointer{
		ID:          lo.FromPtr(p.ID),
		ContentType: lo.FromPtr(p.ContentType),
		Key:         p.Key,
		Size:        optional(p.Size),
		Thumbnail:   optionalBytes(p.Thumbnail),
		Width:       lo.FromPtr(p.Width),
		Height:      lo.FromPtr(p.Height),
		Digest:      optionalBytes(p.Digest),
		FileName:    optional(p.FileName),
		VoiceNote:   lo.FromPtr(p.Flags)&wire.AttachmentFlagVoiceMessage != 0,
		Caption:     optional(p.Caption),
		BlurHash:    optional(p.BlurHash),
	}
}

func attachmentPointers(ps []*wire.AttachmentPointer) []AttachmentPointer {
	return lo.Map(ps, func(p *wire.AttachmentPointer, _ int) AttachmentPointer {
		return attachmentPointer(p)
	})
}

// groupAvatar maps a group avatar. Avatars always carry a size, never a
// thumbnail, dimensions, file name, caption or blur hash, and are never voice
// notes.
func groupAvatar(p *wire.AttachmentPointer) AttachmentPointer {
	return AttachmentPointer{
		ID:          lo.FromPtr(p.ID),
		ContentType: lo.FromPtr(p.ContentType),
		Key:         p.Key,
		Size:        mo.Some(lo.FromPtr(p.Size)),
		Digest:      optionalBytes(p.Digest),
	}
}
