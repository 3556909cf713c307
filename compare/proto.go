package compare

import (
	"cmp"
	"slices"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// ProtoHash hashes a message consistently with proto.Equal: populated fields
// in field number order, floats by canonical bits with -0 folded into 0
// since proto.Equal treats every NaN as equal and -0 as 0. Unknown fields
// are not hashed.
func ProtoHash(m protoreflect.Message) int32 {
	if m == nil || !m.IsValid() {
		return 0
	}
	var fields []protoreflect.FieldDescriptor
	m.Range(func(fd protoreflect.FieldDescriptor, _ protoreflect.Value) bool {
		fields = append(fields, fd)
		return true
	})
	slices.SortFunc(fields, func(a, b protoreflect.FieldDescriptor) int {
		return cmp.Compare(a.Number(), b.Number())
	})

	h := HashSeed
	for _, fd := range fields {
		h = HashMultiplier*h + int32(fd.Number())
		h = HashMultiplier*h + protoFieldHash(fd, m.Get(fd))
	}
	return h
}

func protoFieldHash(fd protoreflect.FieldDescriptor, v protoreflect.Value) int32 {
	switch {
	case fd.IsList():
		l := v.List()
		h := HashSeed
		for i := 0; i < l.Len(); i++ {
			h = HashMultiplier*h + protoScalarHash(fd, l.Get(i))
		}
		return h
	case fd.IsMap():
		var h int32
		v.Map().Range(func(k protoreflect.MapKey, mv protoreflect.Value) bool {
			h += protoScalarHash(fd.MapKey(), k.Value()) ^ protoScalarHash(fd.MapValue(), mv)
			return true
		})
		return h
	default:
		return protoScalarHash(fd, v)
	}
}

func protoScalarHash(fd protoreflect.FieldDescriptor, v protoreflect.Value) int32 {
	switch fd.Kind() {
	case protoreflect.BoolKind:
		return BoolHash(v.Bool())
	case protoreflect.EnumKind:
		return int32(v.Enum())
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		return int32(v.Int())
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return FoldInt64(v.Int())
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return int32(uint32(v.Uint()))
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return FoldInt64(int64(v.Uint()))
	case protoreflect.FloatKind:
		f := float32(v.Float())
		if f == 0 {
			f = 0
		}
		return int32(Float32Bits(f))
	case protoreflect.DoubleKind:
		f := v.Float()
		if f == 0 {
			f = 0
		}
		return FoldInt64(int64(Float64Bits(f)))
	case protoreflect.StringKind:
		return StringHash(v.String())
	case protoreflect.BytesKind:
		h := HashSeed
		for _, b := range v.Bytes() {
			h = HashMultiplier*h + int32(b)
		}
		return h
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return ProtoHash(v.Message())
	default:
		return 0
	}
}
