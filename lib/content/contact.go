package content

import (
	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/go-i2p/go-signalcontent/lib/wire"
)

// SharedContact is a contact card attached to a data message.
type SharedContact struct {
	Name         ContactName
	Avatar       mo.Option[ContactAvatar]
	Phones       []ContactMethod
	Emails       []ContactMethod
	Addresses    []PostalAddress
	Organization mo.Option[string]
}

// ContactName holds the name parts of a shared contact. Each part is optional.
type ContactName struct {
	Display mo.Option[string]
	Given   mo.Option[string]
	Family  mo.Option[string]
	Prefix  mo.Option[string]
	Suffix  mo.Option[string]
	Middle  mo.Option[string]
}

// ContactAvatar is the picture attached to a shared contact.
type ContactAvatar struct {
	Attachment AttachmentPointer
	IsProfile  bool
}

// ContactMethod is a phone number or an email address.
type ContactMethod struct {
	Type  ContactMethodType
	Value string
	Label mo.Option[string]
}

// PostalAddress is one postal address of a shared contact.
type PostalAddress struct {
	Type         PostalAddressType
	Label        mo.Option[string]
	Street       mo.Option[string]
	Pobox        mo.Option[string]
	Neighborhood mo.Option[string]
	City         mo.Option[string]
	Region       mo.Option[string]
	Postcode     mo.Option[string]
	Country      mo.Option[string]
}

// Unknown or missing types fall back to HOME.
func contactMethodType(t *wire.ContactMethodType) ContactMethodType {
	switch lo.FromPtr(t) {
	case wire.ContactMethodMobile:
		return ContactMobile
	case wire.ContactMethodWork:
		return ContactWork
	case wire.ContactMethodCustom:
		return ContactCustom
	default:
		return ContactHome
	}
}

func postalAddressType(t *wire.PostalAddressType) PostalAddressType {
	switch lo.FromPtr(t) {
	case wire.PostalAddressWork:
		return PostalWork
	case wire.PostalAddressCustom:
		return PostalCustom
	default:
		return PostalHome
	}
}

func contactMethod(value *string, t *wire.ContactMethodType, label *string) ContactMethod {
	return ContactMethod{
		Type:  contactMethodType(t),
		Value: lo.FromPtr(value),
		Label: optional(label),
	}
}

// sharedContacts returns None when the message declares no contacts.
func sharedContacts(cs []*wire.Contact) mo.Option[[]SharedContact] {
	if len(cs) == 0 {
		return mo.None[[]SharedContact]()
	}
	return mo.Some(lo.Map(cs, func(c *wire.Contact, _ int) SharedContact {
		return sharedContact(c)
	}))
}

func sharedContact(c *wire.Contact) SharedContact {
	name := c.Name
	if name == nil {
		name = &wire.ContactName{}
	}

	out := SharedContact{
		Name: ContactName{
			Display: optional(name.DisplayName),
			Given:   optional(name.GivenName),
			Family:  optional(name.FamilyName),
			Prefix:  optional(name.Prefix),
			Suffix:  optional(name.Suffix),
			Middle:  optional(name.MiddleName),
		},
		Phones: lo.Map(c.Numbers, func(p *wire.ContactPhone, _ int) ContactMethod {
			return contactMethod(p.Value, p.Type, p.Label)
		}),
		Emails: lo.Map(c.Emails, func(e *wire.ContactEmail, _ int) ContactMethod {
			return contactMethod(e.Value, e.Type, e.Label)
		}),
		Addresses: lo.Map(c.Addresses, func(a *wire.ContactPostalAddress, _ int) PostalAddress {
			return PostalAddress{
				Type:         postalAddressType(a.Type),
				Label:        optional(a.Label),
				Street:       optional(a.Street),
				Pobox:        optional(a.Pobox),
				Neighborhood: optional(a.Neighborhood),
				City:         optional(a.City),
				Region:       optional(a.Region),
				Postcode:     optional(a.Postcode),
				Country:      optional(a.Country),
			}
		}),
		Organization: optional(c.Organization),
	}

	if c.Avatar != nil {
		ptr := c.Avatar.Avatar
		if ptr == nil {
			ptr = &wire.AttachmentPointer{}
		}
		out.Avatar = mo.Some(ContactAvatar{
			Attachment: attachmentPointer(ptr),
			IsProfile:  lo.FromPtr(c.Avatar.IsProfile),
		})
	}

	return out
}
