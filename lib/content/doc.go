// Package content turns a decrypted service envelope into a typed,
// validated message.
//
// Decode classifies the envelope into exactly one of five families:
//
//   - *DataMessage: user-visible content with attachments, quote, group
//     context, shared contacts, previews, sticker and reaction
//   - *SyncMessage: an event the local account produced on another device
//   - *CallMessage: call signaling
//   - *ReceiptMessage: delivery and read receipts
//   - *TypingMessage: typing indicators
//
// Sub-structures that are missing a mandatory field (quote author, sticker
// parts, reaction parts, individual read receipts, blocked entries and
// unidentified delivery statuses) are dropped rather than failing the
// message. Each drop is logged at warn level and recorded on the result, see
// Content.Diagnostics. Group rosters are the exception: a member without a
// valid address fails the whole message.
//
// Decoding is pure. It does no I/O, reads no clock and touches no shared
// mutable state, so a single call may run concurrently with any other.
package content
