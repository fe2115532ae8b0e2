package content

import (
	"fmt"

	"github.com/go-i2p/logger"
	"github.com/samber/lo"
	"github.com/samber/oops"

	"github.com/go-i2p/go-signalcontent/lib/address"
	"github.com/go-i2p/go-signalcontent/lib/wire"
)

// Diagnostic records one tolerated defect: an entry or sub-structure that was
// dropped while the enclosing message still decoded.
type Diagnostic struct {
	At     string
	Event  string
	Detail string
}

func (d Diagnostic) String() string {
	if d.Detail == "" {
		return fmt.Sprintf("%s: %s", d.At, d.Event)
	}
	return fmt.Sprintf("%s: %s (%s)", d.At, d.Event, d.Detail)
}

// decoder carries per-call state: the envelope metadata every classifier
// validates against and the diagnostics collected so far.
type decoder struct {
	meta        Metadata
	diagnostics []Diagnostic
}

func newDecoder(meta Metadata) *decoder {
	return &decoder{meta: meta}
}

// drop records a soft-degraded entry and logs it.
func (d *decoder) drop(at, event, detail string) {
	d.diagnostics = append(d.diagnostics, Diagnostic{At: at, Event: event, Detail: detail})
	log.WithFields(logger.Fields{
		"at":            at,
		"sender":        d.meta.Sender.String(),
		"sender_device": d.meta.SenderDevice,
		"timestamp":     d.meta.Timestamp,
		"detail":        detail,
	}).Warn(event)
}

// invalid builds a structural-invalid-message error attributed to the sender.
func (d *decoder) invalid(code, format string, args ...any) error {
	return &ProtocolError{
		Kind:         ErrInvalidMessage,
		Sender:       d.meta.Sender,
		SenderDevice: d.meta.SenderDevice,
		Err: oops.
			In("content").
			Code(code).
			With("sender", d.meta.Sender.Identifier()).
			Errorf(format, args...),
	}
}

func (d *decoder) invalidKey(err error) error {
	return &ProtocolError{
		Kind:         ErrInvalidKey,
		Sender:       d.meta.Sender,
		SenderDevice: d.meta.SenderDevice,
		Err:          err,
	}
}

// checkTimestamp rejects an inline timestamp that disagrees with the envelope.
func (d *decoder) checkTimestamp(inline *uint64) error {
	if inline != nil && *inline != d.meta.Timestamp {
		return d.invalid("timestamp_mismatch", "timestamps don't match: %d vs %d", *inline, d.meta.Timestamp)
	}
	return nil
}

// addressOrDrop resolves a raw pair, recording a diagnostic when it is invalid.
func (d *decoder) addressOrDrop(at, event string, rawUUID, e164 *string) (address.Address, bool) {
	a, ok := address.FromRawPtr(rawUUID, e164).Get()
	if !ok {
		d.drop(at, event, fmt.Sprintf("uuid=%q e164=%q", lo.FromPtr(rawUUID), lo.FromPtr(e164)))
	}
	return a, ok
}

// metadataFromProto extracts envelope metadata. It never fails: an unusable
// sender address becomes the zero Address and is recorded as a diagnostic.
func metadataFromProto(env *wire.ContentEnvelope) (Metadata, address.Address, []Diagnostic) {
	var diags []Diagnostic
	resolve := func(p *wire.AddressProto, what string) address.Address {
		if p == nil {
			return address.Address{}
		}
		a, err := address.FromProto(p)
		if err != nil {
			diags = append(diags, Diagnostic{At: "content.metadataFromProto", Event: "unusable_" + what, Detail: err.Error()})
			return address.Address{}
		}
		return a
	}

	var meta Metadata
	if md := env.Metadata; md != nil {
		meta = Metadata{
			Sender:       resolve(md.Address, "sender_address"),
			SenderDevice: lo.FromPtr(md.SenderDevice),
			Timestamp:    uint64(lo.FromPtr(md.Timestamp)),
			NeedsReceipt: lo.FromPtr(md.NeedsReceipt),
		}
	}
	return meta, resolve(env.LocalAddress, "local_address"), diags
}
