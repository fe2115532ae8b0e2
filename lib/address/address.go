// Package address validates and compares the identities of remote
// participants.
//
// A participant is named by a stable identifier (a UUID) and/or a legacy
// alias (an E.164 phone number). Either one is enough for the address to be
// valid. Neither value is normalized here; callers pass what arrived on the
// wire.
package address

import (
	"github.com/go-i2p/logger"
	"github.com/google/uuid"
	"github.com/samber/mo"
	"github.com/samber/oops"

	"github.com/go-i2p/go-signalcontent/lib/wire"
)

var log = logger.GetGoI2PLogger()

// Address identifies a remote participant. The zero value is invalid.
type Address struct {
	uuid mo.Option[uuid.UUID]
	e164 mo.Option[string]
}

// New builds an Address from already-parsed parts. Empty e164 strings are
// treated as absent.
func New(id mo.Option[uuid.UUID], e164 mo.Option[string]) Address {
	if v, ok := e164.Get(); ok && v == "" {
		e164 = mo.None[string]()
	}
	return Address{uuid: id, e164: e164}
}

// canonicalUUIDLen is the length of the dashed 8-4-4-4-12 form.
const canonicalUUIDLen = 36

// parseUUID accepts only the dashed 8-4-4-4-12 form. uuid.Parse alone also
// takes braced, urn-prefixed and undashed ids.
func parseUUID(rawUUID string) (uuid.UUID, error) {
	if len(rawUUID) != canonicalUUIDLen {
		return uuid.Nil, oops.Errorf("uuid %q is not in 8-4-4-4-12 form", rawUUID)
	}
	return uuid.Parse(rawUUID)
}

// IsValid reports whether the raw pair names a participant: the alias is
// non-empty or the stable id is a dashed UUID.
func IsValid(rawUUID, e164 string) bool {
	if e164 != "" {
		return true
	}
	_, err := parseUUID(rawUUID)
	return err == nil
}

// FromRaw parses a raw (stable id, alias) pair. It returns None when the pair
// fails IsValid. An unparseable stable id is dropped when the alias alone
// makes the pair valid.
func FromRaw(rawUUID, e164 string) mo.Option[Address] {
	if !IsValid(rawUUID, e164) {
		log.WithFields(logger.Fields{
			"at":   "address.FromRaw",
			"uuid": rawUUID,
			"e164": e164,
		}).Debug("invalid_address")
		return mo.None[Address]()
	}
	id := mo.None[uuid.UUID]()
	if parsed, err := parseUUID(rawUUID); err == nil {
		id = mo.Some(parsed)
	}
	return mo.Some(New(id, mo.Some(e164)))
}

// FromRawPtr is FromRaw for optional wire strings; a nil pointer is an empty
// value.
func FromRawPtr(rawUUID, e164 *string) mo.Option[Address] {
	var u, e string
	if rawUUID != nil {
		u = *rawUUID
	}
	if e164 != nil {
		e = *e164
	}
	return FromRaw(u, e)
}

// FromProto maps the internal serializer's address block. The stable id is
// carried as 16 raw bytes there.
func FromProto(p *wire.AddressProto) (Address, error) {
	if p == nil {
		return Address{}, oops.Errorf("address: missing address block")
	}
	id := mo.None[uuid.UUID]()
	if p.UUID != nil {
		parsed, err := uuid.FromBytes(p.UUID)
		if err != nil {
			return Address{}, oops.Wrapf(err, "address: stable id of %d bytes", len(p.UUID))
		}
		id = mo.Some(parsed)
	}
	e164 := mo.None[string]()
	if p.E164 != nil {
		e164 = mo.Some(*p.E164)
	}
	a := New(id, e164)
	if !a.IsValid() {
		return Address{}, oops.Errorf("address: neither stable id nor e164 present")
	}
	return a, nil
}

// ToProto is the inverse of FromProto.
func (a Address) ToProto() *wire.AddressProto {
	p := &wire.AddressProto{}
	if id, ok := a.uuid.Get(); ok {
		p.UUID = id[:]
	}
	if e, ok := a.e164.Get(); ok {
		p.E164 = &e
	}
	return p
}

func (a Address) UUID() mo.Option[uuid.UUID] { return a.uuid }
func (a Address) E164() mo.Option[string]    { return a.e164 }

func (a Address) IsValid() bool {
	return a.uuid.IsPresent() || a.e164.IsPresent()
}

// Identifier returns the stable id when known, otherwise the alias.
func (a Address) Identifier() string {
	if id, ok := a.uuid.Get(); ok {
		return id.String()
	}
	return a.e164.OrEmpty()
}

// Matches reports whether a and other refer to the same participant: equal
// stable ids, or equal aliases when both carry one.
func (a Address) Matches(other Address) bool {
	if x, ok := a.uuid.Get(); ok {
		if y, ok := other.uuid.Get(); ok && x == y {
			return true
		}
	}
	if x, ok := a.e164.Get(); ok {
		if y, ok := other.e164.Get(); ok && x == y {
			return true
		}
	}
	return false
}

func (a Address) String() string {
	id, hasID := a.uuid.Get()
	e, hasE := a.e164.Get()
	switch {
	case hasID && hasE:
		return id.String() + "/" + e
	case hasID:
		return id.String()
	case hasE:
		return e
	default:
		return "<invalid>"
	}
}
