// Package wire implements the versioned binary schema that carries decrypted
// service content between the transport layer and the content decoder.
//
// The schema uses the protobuf wire format with proto2 presence semantics:
//   - ContentEnvelope: local address, recovered metadata, and either a legacy
//     bare DataMessage or a Content
//   - Content: exactly one of DataMessage, SyncMessage, CallMessage,
//     ReceiptMessage, TypingMessage (NullMessage is padding only)
//   - DataMessage and its nested Quote, Contact, Preview, Sticker, Reaction,
//     GroupContext and AttachmentPointer structures
//   - SyncMessage and its multi-device sub-messages
//
// Decoding never validates semantics; it only recovers field values and their
// presence. Validation belongs to package content.
package wire
