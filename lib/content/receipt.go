package content

import (
	"github.com/go-i2p/go-signalcontent/lib/wire"
)

// ReceiptMessage acknowledges the messages sent at Timestamps. When is the
// receipt's own envelope timestamp.
type ReceiptMessage struct {
	Type       ReceiptType
	Timestamps []uint64
	When       uint64
}

func (*ReceiptMessage) Family() Family { return FamilyReceipt }
func (*ReceiptMessage) isPayload()     {}

func (r *ReceiptMessage) IsDeliveryReceipt() bool { return r.Type == ReceiptDelivery }
func (r *ReceiptMessage) IsReadReceipt() bool     { return r.Type == ReceiptRead }

func (d *decoder) receiptMessage(m *wire.ReceiptMessage) *ReceiptMessage {
	t := ReceiptUnknown
	if m.Type == nil {
		t = ReceiptDelivery
	} else {
		switch *m.Type {
		case wire.ReceiptDelivery:
			t = ReceiptDelivery
		case wire.ReceiptRead:
			t = ReceiptRead
		}
	}
	return &ReceiptMessage{
		Type:       t,
		Timestamps: append([]uint64{}, m.Timestamps...),
		When:       d.meta.Timestamp,
	}
}
