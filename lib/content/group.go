package content

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/go-i2p/go-signalcontent/lib/address"
	"github.com/go-i2p/go-signalcontent/lib/wire"
)

// Group is the group context of a data message. A DELIVER context is a bare
// reference to a known group and carries only ID; the other types may also
// carry the roster, name and avatar.
type Group struct {
	Type    GroupType
	ID      []byte
	Name    mo.Option[string]
	Members mo.Option[[]address.Address]
	Avatar  mo.Option[AttachmentPointer]
}

func groupType(t *wire.GroupContextType) GroupType {
	switch lo.FromPtr(t) {
	case wire.GroupContextDeliver:
		return GroupDeliver
	case wire.GroupContextUpdate:
		return GroupUpdate
	case wire.GroupContextQuit:
		return GroupQuit
	case wire.GroupContextRequestInfo:
		return GroupRequestInfo
	default:
		return GroupUnknown
	}
}

// group decodes the group context. A structured member without a valid
// address fails the whole message. The legacy membersE164 list is only read
// when no structured members are present.
func (d *decoder) group(g *wire.GroupContext) (mo.Option[Group], error) {
	if g == nil {
		return mo.None[Group](), nil
	}

	t := groupType(g.Type)
	if t == GroupDeliver {
		return mo.Some(Group{Type: t, ID: g.ID}), nil
	}

	out := Group{
		Type: t,
		ID:   g.ID,
		Name: optional(g.Name),
	}

	switch {
	case len(g.Members) > 0:
		members := make([]address.Address, 0, len(g.Members))
		for i, m := range g.Members {
			a, ok := address.FromRawPtr(m.UUID, m.E164).Get()
			if !ok {
				return mo.None[Group](), d.invalid("group_member_without_address",
					"group member %d has no valid address", i)
			}
			members = append(members, a)
		}
		out.Members = mo.Some(members)
	case len(g.MembersE164) > 0:
		members := lo.FilterMap(g.MembersE164, func(e164 string, i int) (address.Address, bool) {
			a, ok := address.FromRaw("", e164).Get()
			if !ok {
				d.drop("content.group", "dropped_empty_legacy_member", fmt.Sprintf("index=%d", i))
			}
			return a, ok
		})
		out.Members = mo.Some(members)
	}

	if g.Avatar != nil {
		out.Avatar = mo.Some(groupAvatar(g.Avatar))
	}

	return mo.Some(out), nil
}
