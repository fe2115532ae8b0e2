package wire

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/samber/oops"
)

/*
Field-level codec shared by every message in this package.

Presence follows proto2: every scalar is a pointer (nil means the field was
not on the wire), bytes fields are nil when absent and non-nil (possibly
empty) when present. Unknown field numbers are skipped. A known field number
arriving with a different wire type is treated as an unknown field, which
matches how the reference protobuf runtimes behave.

Repeated occurrences of a non-repeated embedded message are merged into the
existing value.
*/

// field is one decoded (tag, value) pair handed to a message's field switch.
type field struct {
	num    protowire.Number
	typ    protowire.Type
	scalar uint64
	data   []byte
}

type unmarshaler interface {
	unmarshal(b []byte) error
}

type marshaler interface {
	appendTo(b []byte) []byte
}

// walk iterates over every field in b, calling fn for each one whose value
// could be consumed. Group-encoded fields are skipped.
func walk(b []byte, fn func(f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return oops.Errorf("%w: bad tag: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.scalar, n = protowire.ConsumeVarint(b)
		case protowire.Fixed64Type:
			f.scalar, n = protowire.ConsumeFixed64(b)
		case protowire.Fixed32Type:
			var v uint32
			v, n = protowire.ConsumeFixed32(b)
			f.scalar = uint64(v)
		case protowire.BytesType:
			f.data, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return oops.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
		}
		b = b[n:]

		if typ == protowire.StartGroupType {
			continue
		}
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

type varint interface {
	~uint64 | ~uint32 | ~int64 | ~int32
}

func setVarint[T varint](f field, dst **T) {
	if f.typ != protowire.VarintType {
		return
	}
	v := T(f.scalar)
	*dst = &v
}

func setFixed64(f field, dst **uint64) {
	if f.typ != protowire.Fixed64Type {
		return
	}
	v := f.scalar
	*dst = &v
}

func setBool(f field, dst **bool) {
	if f.typ != protowire.VarintType {
		return
	}
	v := protowire.DecodeBool(f.scalar)
	*dst = &v
}

func setString(f field, dst **string) {
	if f.typ != protowire.BytesType {
		return
	}
	v := string(f.data)
	*dst = &v
}

func setBytes(f field, dst *[]byte) {
	if f.typ != protowire.BytesType {
		return
	}
	*dst = append([]byte{}, f.data...)
}

func addString(f field, dst *[]string) {
	if f.typ != protowire.BytesType {
		return
	}
	*dst = append(*dst, string(f.data))
}

func addBytes(f field, dst *[][]byte) {
	if f.typ != protowire.BytesType {
		return
	}
	*dst = append(*dst, append([]byte{}, f.data...))
}

// addVarints accepts both the unpacked and the packed encoding of a
// repeated varint field.
func addVarints[T varint](f field, dst *[]T) error {
	switch f.typ {
	case protowire.VarintType:
		*dst = append(*dst, T(f.scalar))
	case protowire.BytesType:
		b := f.data
		for len(b) > 0 {
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return oops.Errorf("%w: packed field %d: %v", ErrMalformed, f.num, protowire.ParseError(n))
			}
			*dst = append(*dst, T(v))
			b = b[n:]
		}
	}
	return nil
}

func mergeMessage[T any, P interface {
	*T
	unmarshaler
}](f field, dst **T) error {
	if f.typ != protowire.BytesType {
		return nil
	}
	if *dst == nil {
		*dst = new(T)
	}
	if err := P(*dst).unmarshal(f.data); err != nil {
		return oops.Wrapf(err, "field %d", f.num)
	}
	return nil
}

func addMessage[T any, P interface {
	*T
	unmarshaler
}](f field, dst *[]*T) error {
	if f.typ != protowire.BytesType {
		return nil
	}
	m := new(T)
	if err := P(m).unmarshal(f.data); err != nil {
		return oops.Wrapf(err, "field %d[%d]", f.num, len(*dst))
	}
	*dst = append(*dst, m)
	return nil
}

func appendVarint[T varint](b []byte, num protowire.Number, v *T) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(*v))
}

func appendFixed64(b []byte, num protowire.Number, v *uint64) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, *v)
}

func appendBool(b []byte, num protowire.Number, v *bool) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(*v))
}

func appendString(b []byte, num protowire.Number, v *string) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, *v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendStrings(b []byte, num protowire.Number, vs []string) []byte {
	for _, v := range vs {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, v)
	}
	return b
}

func appendBytesList(b []byte, num protowire.Number, vs [][]byte) []byte {
	for _, v := range vs {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, v)
	}
	return b
}

func appendVarints[T varint](b []byte, num protowire.Number, vs []T) []byte {
	for _, v := range vs {
		b = protowire.AppendTag(b, num, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(v))
	}
	return b
}

func appendMessage[T any, P interface {
	*T
	marshaler
}](b []byte, num protowire.Number, m *T) []byte {
	if m == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, P(m).appendTo(nil))
}

func appendMessages[T any, P interface {
	*T
	marshaler
}](b []byte, num protowire.Number, ms []*T) []byte {
	for _, m := range ms {
		b = appendMessage[T, P](b, num, m)
	}
	return b
}
