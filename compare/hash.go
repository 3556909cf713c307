package compare

import (
	"reflect"
	"time"
	"unicode/utf16"

	"google.golang.org/protobuf/proto"

	"github.com/yaroher/go-pojomatic/property"
)

const (
	HashSeed       int32 = 1
	HashMultiplier int32 = 31
)

var (
	int32Type = reflect.TypeFor[int32]()
	timeType  = reflect.TypeFor[time.Time]()
)

// BoolHash is 1231 for true and 1237 for false.
func BoolHash(b bool) int32 {
	if b {
		return 1231
	}
	return 1237
}

// FoldInt64 folds 64 bits into 32: int32(v ^ v>>>32).
func FoldInt64(v int64) int32 {
	u := uint64(v)
	return int32(u ^ u>>32)
}

// StringHash is the 31 polynomial over the UTF-16 code units of s.
func StringHash(s string) int32 {
	h := int32(0)
	for _, r := range s {
		if r >= 0x10000 {
			r1, r2 := utf16.EncodeRune(r)
			h = HashMultiplier*h + int32(r1)
			h = HashMultiplier*h + int32(r2)
			continue
		}
		h = HashMultiplier*h + int32(r)
	}
	return h
}

// ObjectHash hashes a value of a generic property, detecting arrays at run
// time. nil hashes to 0.
func ObjectHash(v reflect.Value) int32 {
	return objectHash(v, nil)
}

func objectHash(v reflect.Value, visited map[uintptr]struct{}) int32 {
	v = unwrap(v)
	if isNil(v) {
		return 0
	}
	if isArray(v.Type()) {
		return arrayHash(v, visited)
	}
	return valueHash(v, visited)
}

// ValueHash applies the hash contract of a non array value, consistent with
// NonArrayValuesEqual: a HashCode() int32 method, protobuf messages hashed
// field by field (ProtoHash), time.Time by instant, and structural
// hashing otherwise.
func ValueHash(v reflect.Value) int32 {
	return valueHash(v, nil)
}

func valueHash(v reflect.Value, visited map[uintptr]struct{}) int32 {
	v = unwrap(v)
	if isNil(v) {
		return 0
	}
	if h, ok := contractHash(v); ok {
		return h
	}

	switch v.Kind() {
	case reflect.Bool:
		return BoolHash(v.Bool())
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return int32(v.Int())
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return int32(uint32(v.Uint()))
	case reflect.Int, reflect.Int64:
		return FoldInt64(v.Int())
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return FoldInt64(int64(v.Uint()))
	case reflect.Float32:
		return int32(Float32Bits(float32(v.Float())))
	case reflect.Float64:
		return FoldInt64(int64(Float64Bits(v.Float())))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		re, im := floatHash(v.Kind(), real(c)), floatHash(v.Kind(), imag(c))
		return HashMultiplier*re + im
	case reflect.String:
		return StringHash(v.String())
	case reflect.Slice, reflect.Array:
		return arrayHash(v, visited)
	case reflect.Pointer:
		p := v.Pointer()
		if _, ok := visited[p]; ok {
			return 0
		}
		if visited == nil {
			visited = make(map[uintptr]struct{})
		}
		visited[p] = struct{}{}
		defer delete(visited, p)
		return objectHash(v.Elem(), visited)
	case reflect.Map:
		var h int32
		iter := v.MapRange()
		for iter.Next() {
			h += objectHash(iter.Key(), visited) ^ objectHash(iter.Value(), visited)
		}
		return h
	case reflect.Struct:
		h := HashSeed
		for i := 0; i < v.NumField(); i++ {
			h = HashMultiplier*h + objectHash(v.Field(i), visited)
		}
		return h
	default:
		return FoldInt64(int64(v.Pointer()))
	}
}

func floatHash(k reflect.Kind, f float64) int32 {
	if k == reflect.Complex64 {
		return int32(Float32Bits(float32(f)))
	}
	return FoldInt64(int64(Float64Bits(f)))
}

func contractHash(v reflect.Value) (int32, bool) {
	if !v.CanInterface() {
		return 0, false
	}
	if m := method(v, "HashCode"); m.IsValid() {
		mt := m.Type()
		if mt.NumIn() == 0 && mt.NumOut() == 1 && mt.Out(0) == int32Type {
			return int32(m.Call(nil)[0].Int()), true
		}
	}
	if msg, ok := asProtoMessage(v); ok {
		return ProtoHash(msg.ProtoReflect()), true
	}
	if v.Type() == timeType {
		return FoldInt64(v.Interface().(time.Time).UnixNano()), true
	}
	return 0, false
}

func asProtoMessage(v reflect.Value) (proto.Message, bool) {
	if v.Type().Implements(protoMessageType) {
		return v.Interface().(proto.Message), true
	}
	if v.Kind() == reflect.Struct && v.CanAddr() && reflect.PointerTo(v.Type()).Implements(protoMessageType) {
		return v.Addr().Interface().(proto.Message), true
	}
	return nil, false
}

// ArrayHash hashes an array or slice, choosing the primitive or the
// reference algorithm from its element type.
func ArrayHash(v reflect.Value) int32 {
	return arrayHash(v, nil)
}

func arrayHash(v reflect.Value, visited map[uintptr]struct{}) int32 {
	v = unwrap(v)
	if isNil(v) {
		return 0
	}
	if property.IsPrimitiveType(v.Type().Elem()) {
		return PrimitiveArrayHash(v)
	}
	return referenceArrayHash(v, visited)
}

// PrimitiveArrayHash is 31*r + hash(e) over the elements, from seed 1.
func PrimitiveArrayHash(v reflect.Value) int32 {
	v = unwrap(v)
	if isNil(v) {
		return 0
	}
	h := HashSeed
	for i := 0; i < v.Len(); i++ {
		h = HashMultiplier*h + valueHash(v.Index(i), nil)
	}
	return h
}

// ReferenceArrayHash hashes elements deeply, nested arrays included.
func ReferenceArrayHash(v reflect.Value) int32 {
	return referenceArrayHash(v, nil)
}

func referenceArrayHash(v reflect.Value, visited map[uintptr]struct{}) int32 {
	v = unwrap(v)
	if isNil(v) {
		return 0
	}
	h := HashSeed
	for i := 0; i < v.Len(); i++ {
		h = HashMultiplier*h + objectHash(v.Index(i), visited)
	}
	return h
}
