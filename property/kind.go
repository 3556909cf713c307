package property

import (
	"fmt"
	"reflect"
)

// Kind selects the comparison, hashing and formatting strategy of a property.
// It is resolved once from the declared Go type.
type Kind int

const (
	// KindNarrow: bool and integers up to 32 bits
	KindNarrow Kind = iota
	// KindWide: 64-bit integers (int, int64, uint, uint64, uintptr)
	KindWide
	// KindFloating: float32/float64/complex, compared by bit pattern
	KindFloating
	// KindPrimitiveArray: slice or array of a primitive element type
	KindPrimitiveArray
	// KindReferenceArray: slice or array of any other element type
	KindReferenceArray
	// KindReference: value with its own equality contract
	KindReference
	// KindObject: interface typed, dispatched on the dynamic value
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNarrow:
		return "narrow"
	case KindWide:
		return "wide"
	case KindFloating:
		return "floating"
	case KindPrimitiveArray:
		return "primitive_array"
	case KindReferenceArray:
		return "reference_array"
	case KindReference:
		return "reference"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// IsPrimitive reports whether values of this kind are never nil.
func (k Kind) IsPrimitive() bool {
	return k == KindNarrow || k == KindWide || k == KindFloating
}

// KindOf classifies a Go type.
func KindOf(t reflect.Type) Kind {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return KindNarrow
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return KindWide
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return KindFloating
	case reflect.Slice, reflect.Array:
		if IsPrimitiveType(t.Elem()) {
			return KindPrimitiveArray
		}
		return KindReferenceArray
	case reflect.Interface:
		return KindObject
	default:
		return KindReference
	}
}

// IsPrimitiveType reports whether t is a bool, integer, float or complex type.
func IsPrimitiveType(t reflect.Type) bool {
	return KindOf(t).IsPrimitive()
}
