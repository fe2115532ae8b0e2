package content

import (
	"github.com/go-i2p/logger"

	"github.com/go-i2p/go-signalcontent/lib/address"
)

var log = logger.GetGoI2PLogger()

// Metadata is what the transport layer recovered about the envelope.
type Metadata struct {
	Sender       address.Address
	SenderDevice int32
	Timestamp    uint64
	NeedsReceipt bool
}

// Payload is one of *DataMessage, *SyncMessage, *CallMessage,
// *ReceiptMessage or *TypingMessage.
type Payload interface {
	Family() Family
	isPayload()
}

var (
	_ Payload = (*DataMessage)(nil)
	_ Payload = (*SyncMessage)(nil)
	_ Payload = (*CallMessage)(nil)
	_ Payload = (*ReceiptMessage)(nil)
	_ Payload = (*TypingMessage)(nil)
)

// Content is a decoded envelope. It keeps the bytes it was decoded from so
// that Serialize returns them unchanged, including fields this package does
// not model.
type Content struct {
	metadata     Metadata
	localAddress address.Address
	payload      Payload
	raw          []byte
	diagnostics  []Diagnostic
}

func (c *Content) Metadata() Metadata            { return c.metadata }
func (c *Content) Sender() address.Address       { return c.metadata.Sender }
func (c *Content) SenderDevice() int32           { return c.metadata.SenderDevice }
func (c *Content) Timestamp() uint64             { return c.metadata.Timestamp }
func (c *Content) LocalAddress() address.Address { return c.localAddress }
func (c *Content) Payload() Payload              { return c.payload }
func (c *Content) Family() Family                { return c.payload.Family() }

// NeedsReceipt reports whether a delivery receipt is owed. It is always false
// for typing messages.
func (c *Content) NeedsReceipt() bool { return c.metadata.NeedsReceipt }

// Diagnostics lists the entries dropped while decoding, in decode order.
func (c *Content) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), c.diagnostics...)
}

// Serialize returns a copy of the bytes the content was decoded from.
func (c *Content) Serialize() []byte {
	return append([]byte(nil), c.raw...)
}

func (c *Content) DataMessage() (*DataMessage, bool) {
	m, ok := c.payload.(*DataMessage)
	return m, ok
}

func (c *Content) SyncMessage() (*SyncMessage, bool) {
	m, ok := c.payload.(*SyncMessage)
	return m, ok
}

func (c *Content) CallMessage() (*CallMessage, bool) {
	m, ok := c.payload.(*CallMessage)
	return m, ok
}

func (c *Content) ReceiptMessage() (*ReceiptMessage, bool) {
	m, ok := c.payload.(*ReceiptMessage)
	return m, ok
}

func (c *Content) TypingMessage() (*TypingMessage, bool) {
	m, ok := c.payload.(*TypingMessage)
	return m, ok
}
