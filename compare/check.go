package compare

import (
	"reflect"
	"unsafe"

	"github.com/yaroher/go-pojomatic/property"
)

// IsNull reports whether v is nil or a nil pointer.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	return isNil(reflect.ValueOf(v))
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// CheckNotNull panics with *ArgumentError when v is nil. Otherwise it
// returns v with one pointer level removed, always addressable so that
// unexported fields and pointer receiver methods can be reached.
func CheckNotNull(v any, name string) reflect.Value {
	if IsNull(v) {
		panic(&ArgumentError{Name: name})
	}
	return Addressable(reflect.ValueOf(v))
}

// Addressable dereferences one pointer level, copying plain values into
// fresh storage.
func Addressable(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Pointer {
		return v.Elem()
	}
	if v.CanAddr() {
		return v
	}
	cp := reflect.New(v.Type()).Elem()
	cp.Set(v)
	return cp
}

// SamePointer reports reference identity: both values are the same non-nil
// pointer.
func SamePointer(a, b any) bool {
	if a == nil || b == nil {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != reflect.Pointer || va.Type() != vb.Type() || va.IsNil() {
		return false
	}
	return va.Pointer() == vb.Pointer()
}

// CheckClass verifies that v is of type expected or embeds it.
func CheckClass(v reflect.Value, expected reflect.Type, side string) error {
	if property.IsA(v.Type(), expected) {
		return nil
	}
	return &TypeError{Side: side, Found: v.Type(), Expected: expected}
}

// IsCompatibleForEquality tells whether instances of other may equal
// instances described by c.
func IsCompatibleForEquality(c *property.ClassProperties, other reflect.Type) bool {
	return c.IsCompatibleForEquals(other)
}

// Expose returns a readable and callable view of an addressable value
// reached through unexported fields.
func Expose(v reflect.Value) reflect.Value {
	if v.CanInterface() || !v.CanAddr() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}
