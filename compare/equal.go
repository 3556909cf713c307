package compare

import (
	"math"
	"reflect"

	"google.golang.org/protobuf/proto"

	"github.com/yaroher/go-pojomatic/property"
)

var (
	protoMessageType = reflect.TypeFor[proto.Message]()
	boolType         = reflect.TypeFor[bool]()
)

type visitKey struct {
	a, b uintptr
	t    reflect.Type
}

// ObjectValuesEqual compares two values of a generic (interface typed)
// property. Arrays and slices found at run time are redirected to the array
// comparisons.
func ObjectValuesEqual(a, b reflect.Value) bool {
	return objectValuesEqual(a, b, nil)
}

func objectValuesEqual(a, b reflect.Value, visited map[visitKey]struct{}) bool {
	a, b = unwrap(a), unwrap(b)
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if isArray(a.Type()) && isArray(b.Type()) {
		if property.IsPrimitiveType(a.Type().Elem()) || property.IsPrimitiveType(b.Type().Elem()) {
			return PrimitiveArraysEqual(a, b)
		}
		return referenceArraysEqual(a, b, visited)
	}
	return nonArrayValuesEqual(a, b, visited)
}

// NonArrayValuesEqual applies the equality contract of a value: protobuf
// messages use proto.Equal, types with an Equal method use it, everything
// else is compared structurally. Values of different dynamic types are never
// equal. Floating point values compare by bit pattern.
func NonArrayValuesEqual(a, b reflect.Value) bool {
	return nonArrayValuesEqual(a, b, nil)
}

func nonArrayValuesEqual(a, b reflect.Value, visited map[visitKey]struct{}) bool {
	a, b = unwrap(a), unwrap(b)
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if a.Type() != b.Type() {
		return false
	}
	if eq, ok := contractEqual(a, b); ok {
		return eq
	}

	switch a.Kind() {
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32:
		return Float32Bits(float32(a.Float())) == Float32Bits(float32(b.Float()))
	case reflect.Float64:
		return Float64Bits(a.Float()) == Float64Bits(b.Float())
	case reflect.Complex64, reflect.Complex128:
		ca, cb := a.Complex(), b.Complex()
		return Float64Bits(real(ca)) == Float64Bits(real(cb)) && Float64Bits(imag(ca)) == Float64Bits(imag(cb))
	case reflect.String:
		return a.String() == b.String()
	case reflect.Slice, reflect.Array:
		return objectValuesEqual(a, b, visited)
	case reflect.Pointer:
		if a.Pointer() == b.Pointer() {
			return true
		}
		visited = visit(visited, a, b)
		if visited == nil {
			return true
		}
		return objectValuesEqual(a.Elem(), b.Elem(), visited)
	case reflect.Map:
		if a.Len() != b.Len() {
			return false
		}
		if a.Pointer() == b.Pointer() {
			return true
		}
		iter := a.MapRange()
		for iter.Next() {
			other := b.MapIndex(iter.Key())
			if !other.IsValid() || !objectValuesEqual(iter.Value(), other, visited) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !objectValuesEqual(a.Field(i), b.Field(i), visited) {
				return false
			}
		}
		return true
	default:
		// func, chan and unsafe pointers only equal themselves
		return a.Pointer() == b.Pointer()
	}
}

// visit marks the pointer pair as being compared. A nil result means the
// pair is already on the stack.
func visit(visited map[visitKey]struct{}, a, b reflect.Value) map[visitKey]struct{} {
	k := visitKey{a: a.Pointer(), b: b.Pointer(), t: a.Type()}
	if visited == nil {
		visited = make(map[visitKey]struct{})
	}
	if _, ok := visited[k]; ok {
		return nil
	}
	visited[k] = struct{}{}
	return visited
}

// contractEqual dispatches to proto.Equal or a user Equal method. ok is false
// when the value has no such contract or cannot be interfaced.
func contractEqual(a, b reflect.Value) (eq bool, ok bool) {
	if !a.CanInterface() || !b.CanInterface() {
		return false, false
	}
	if a.Type().Implements(protoMessageType) {
		return proto.Equal(a.Interface().(proto.Message), b.Interface().(proto.Message)), true
	}
	if a.Kind() == reflect.Struct && reflect.PointerTo(a.Type()).Implements(protoMessageType) && a.CanAddr() && b.CanAddr() {
		return proto.Equal(a.Addr().Interface().(proto.Message), b.Addr().Interface().(proto.Message)), true
	}
	m := method(a, "Equal")
	if !m.IsValid() {
		return false, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0) != boolType || !b.Type().AssignableTo(mt.In(0)) {
		return false, false
	}
	return m.Call([]reflect.Value{b})[0].Bool(), true
}

func method(v reflect.Value, name string) reflect.Value {
	if m := v.MethodByName(name); m.IsValid() {
		return m
	}
	if v.Kind() != reflect.Pointer && v.CanAddr() {
		return v.Addr().MethodByName(name)
	}
	return reflect.Value{}
}

// PrimitiveArraysEqual compares two arrays or slices of primitives element
// by element. Both must have the same type.
func PrimitiveArraysEqual(a, b reflect.Value) bool {
	a, b = unwrap(a), unwrap(b)
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if a.Type() != b.Type() || a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !primitiveEqual(a.Index(i), b.Index(i)) {
			return false
		}
	}
	return true
}

func primitiveEqual(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Float32:
		return Float32Bits(float32(a.Float())) == Float32Bits(float32(b.Float()))
	case reflect.Float64:
		return Float64Bits(a.Float()) == Float64Bits(b.Float())
	case reflect.Complex64, reflect.Complex128:
		ca, cb := a.Complex(), b.Complex()
		return Float64Bits(real(ca)) == Float64Bits(real(cb)) && Float64Bits(imag(ca)) == Float64Bits(imag(cb))
	default:
		return a.Uint() == b.Uint()
	}
}

// ReferenceArraysEqual compares arrays or slices of non-primitive elements.
// The container types may differ ([]string against []any); elements are
// compared deeply, nested arrays included.
func ReferenceArraysEqual(a, b reflect.Value) bool {
	return referenceArraysEqual(a, b, nil)
}

func referenceArraysEqual(a, b reflect.Value, visited map[visitKey]struct{}) bool {
	a, b = unwrap(a), unwrap(b)
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if !isArray(a.Type()) || !isArray(b.Type()) || a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !objectValuesEqual(a.Index(i), b.Index(i), visited) {
			return false
		}
	}
	return true
}

func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isArray(t reflect.Type) bool {
	return t.Kind() == reflect.Slice || t.Kind() == reflect.Array
}

// Float32Bits returns the IEEE 754 bits of f with every NaN mapped to one
// canonical pattern.
func Float32Bits(f float32) uint32 {
	if f != f {
		return 0x7fc00000
	}
	return math.Float32bits(f)
}

// Float64Bits returns the IEEE 754 bits of f with every NaN mapped to one
// canonical pattern.
func Float64Bits(f float64) uint64 {
	if math.IsNaN(f) {
		return 0x7ff8000000000000
	}
	return math.Float64bits(f)
}
