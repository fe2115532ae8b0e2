package content

import (
	"bytes"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"

	"github.com/go-i2p/go-signalcontent/lib/address"
	"github.com/go-i2p/go-signalcontent/lib/util"
	"github.com/go-i2p/go-signalcontent/lib/wire"
)

// MaxSupportedVersion is the highest data-message protocol version this
// package understands.
const MaxSupportedVersion = wire.ProtocolVersionCurrent

// Decode parses a serialized envelope and classifies it.
//
// It returns (nil, nil) when the envelope parses but carries no family this
// package recognizes, so content types added later are ignored rather than
// rejected. Errors match ErrMalformedWire, ErrInvalidMessage, ErrInvalidKey or
// ErrUnsupportedVersion with errors.Is.
func Decode(data []byte) (*Content, error) {
	return CreateFromProto(data, nil)
}

// CreateFromProto classifies an envelope that the caller may already have
// parsed from raw. When env is nil, raw is parsed first.
//
// When env is supplied, raw must be an encoding of env: bytes that parse to a
// different envelope are rejected with ErrMalformedWire. A nil raw is replaced
// by the canonical encoding of env, so Serialize always returns bytes that
// Deserialize decodes to the same content.
func CreateFromProto(raw []byte, env *wire.ContentEnvelope) (*Content, error) {
	if env == nil {
		env = new(wire.ContentEnvelope)
		if err := env.UnmarshalBinary(raw); err != nil {
			return nil, &ProtocolError{Kind: ErrMalformedWire, Err: err}
		}
	} else {
		retained, err := envelopeBytes(raw, env)
		if err != nil {
			return nil, &ProtocolError{Kind: ErrMalformedWire, Err: err}
		}
		raw = retained
	}

	meta, local, metaDiags := metadataFromProto(env)
	d := newDecoder(meta)
	for _, diag := range metaDiags {
		d.drop(diag.At, diag.Event, diag.Detail)
	}

	payload, err := d.classify(env, local)
	if err != nil {
		log.WithFields(logger.Fields{
			"at":            "content.CreateFromProto",
			"sender":        meta.Sender.String(),
			"sender_device": meta.SenderDevice,
			"timestamp":     meta.Timestamp,
			"reason":        err.Error(),
		}).Debug("content_rejected")
		return nil, err
	}
	if payload == nil {
		log.WithFields(logger.Fields{
			"at":        "content.CreateFromProto",
			"data_case": env.DataCase(),
			"timestamp": meta.Timestamp,
		}).Debug("no_recognized_family")
		return nil, nil
	}

	if payload.Family() == FamilyTyping {
		meta.NeedsReceipt = false
	}

	log.WithFields(logger.Fields{
		"at":          "content.CreateFromProto",
		"family":      payload.Family().String(),
		"sender":      meta.Sender.String(),
		"timestamp":   meta.Timestamp,
		"diagnostics": len(d.diagnostics),
	}).Debug("content_decoded")

	return &Content{
		metadata:     meta,
		localAddress: local,
		payload:      payload,
		raw:          append([]byte(nil), raw...),
		diagnostics:  d.diagnostics,
	}, nil
}

// envelopeBytes returns the bytes a Content retains for a pre-parsed env.
// Unknown fields are skipped when parsing, so raw matches env when both
// re-encode to the same canonical bytes.
func envelopeBytes(raw []byte, env *wire.ContentEnvelope) ([]byte, error) {
	canonical, err := env.MarshalBinary()
	if err != nil {
		return nil, oops.Wrapf(err, "encode supplied envelope")
	}
	if raw == nil {
		return canonical, nil
	}

	parsed := new(wire.ContentEnvelope)
	if err := parsed.UnmarshalBinary(raw); err != nil {
		return nil, err
	}
	reencoded, err := parsed.MarshalBinary()
	if err != nil {
		return nil, oops.Wrapf(err, "re-encode raw envelope")
	}
	if !bytes.Equal(reencoded, canonical) {
		log.WithFields(logger.Fields{
			"at":       "content.envelopeBytes",
			"raw_len":  len(raw),
			"env_len":  len(canonical),
			"raw_case": parsed.DataCase(),
			"env_case": env.DataCase(),
		}).Debug("raw_envelope_mismatch")
		return nil, oops.
			In("content").
			Code("raw_envelope_mismatch").
			Errorf("raw bytes do not encode the supplied envelope")
	}
	return raw, nil
}

// classify selects exactly one family classifier. Families are tried in the
// order data, sync, call, receipt, typing; sync content only counts when the
// sender is the local account.
func (d *decoder) classify(env *wire.ContentEnvelope, local address.Address) (Payload, error) {
	switch env.DataCase() {
	case wire.EnvelopeDataLegacyDataMessage:
		return d.dataMessage(env.LegacyDataMessage)
	case wire.EnvelopeDataContent:
		c := env.Content
		switch {
		case c.DataMessage != nil:
			return d.dataMessage(c.DataMessage)
		case c.SyncMessage != nil && local.Matches(d.meta.Sender):
			return d.syncMessage(c.SyncMessage)
		case c.CallMessage != nil:
			return d.callMessage(c.CallMessage), nil
		case c.ReceiptMessage != nil:
			return d.receiptMessage(c.ReceiptMessage), nil
		case c.TypingMessage != nil:
			return d.typingMessage(c.TypingMessage)
		}
	}
	return nil, nil
}

// Deserialize decodes bytes previously returned by Content.Serialize. Those
// bytes decoded once already, so a failure here is an invariant violation and
// panics. A nil slice yields nil.
func Deserialize(data []byte) *Content {
	if data == nil {
		return nil
	}
	c, err := Decode(data)
	if err != nil {
		util.Panicf("content: re-decoding serialized content failed: %v", oops.Wrapf(err, "deserialize"))
	}
	return c
}
