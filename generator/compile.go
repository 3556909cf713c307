package generator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/yaroher/go-pojomatic/compare"
	"github.com/yaroher/go-pojomatic/format"
	"github.com/yaroher/go-pojomatic/property"
)

type (
	equalFunc  func(a, b reflect.Value) bool
	hashFunc   func(v reflect.Value) int32
	appendFunc func(b *strings.Builder, v reflect.Value)
)

// slot is a compiled property.
type slot struct {
	prop   property.Property
	get    accessor
	equal  equalFunc
	hash   hashFunc
	append appendFunc
}

func compileEquals(unitType reflect.Type, p property.Property) slot {
	return slot{
		prop:  p,
		get:   newAccessor(unitType, p),
		equal: equalFor(p),
		hash:  hashFor(p),
	}
}

func compileToString(c *property.ClassProperties, p property.Property) (slot, error) {
	f, err := format.ResolvePropertyFormatter(c, p)
	if err != nil {
		return slot{}, err
	}
	return slot{
		prop:   p,
		get:    newAccessor(c.Type(), p),
		append: appendFor(p, f),
	}, nil
}

func equalFor(p property.Property) equalFunc {
	t := p.Type()
	switch p.Kind() {
	case property.KindNarrow, property.KindWide:
		switch t.Kind() {
		case reflect.Bool:
			return func(a, b reflect.Value) bool { return a.Bool() == b.Bool() }
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return func(a, b reflect.Value) bool { return a.Int() == b.Int() }
		default:
			return func(a, b reflect.Value) bool { return a.Uint() == b.Uint() }
		}
	case property.KindFloating:
		switch t.Kind() {
		case reflect.Float32:
			return func(a, b reflect.Value) bool {
				return compare.Float32Bits(float32(a.Float())) == compare.Float32Bits(float32(b.Float()))
			}
		case reflect.Float64:
			return func(a, b reflect.Value) bool {
				return compare.Float64Bits(a.Float()) == compare.Float64Bits(b.Float())
			}
		default:
			return func(a, b reflect.Value) bool {
				ca, cb := a.Complex(), b.Complex()
				return compare.Float64Bits(real(ca)) == compare.Float64Bits(real(cb)) &&
					compare.Float64Bits(imag(ca)) == compare.Float64Bits(imag(cb))
			}
		}
	case property.KindPrimitiveArray:
		return compare.PrimitiveArraysEqual
	case property.KindReferenceArray:
		return compare.ReferenceArraysEqual
	case property.KindObject:
		return compare.ObjectValuesEqual
	default:
		return compare.NonArrayValuesEqual
	}
}

func hashFor(p property.Property) hashFunc {
	t := p.Type()
	switch p.Kind() {
	case property.KindNarrow:
		switch t.Kind() {
		case reflect.Bool:
			return func(v reflect.Value) int32 { return compare.BoolHash(v.Bool()) }
		case reflect.Int8, reflect.Int16, reflect.Int32:
			return func(v reflect.Value) int32 { return int32(v.Int()) }
		default:
			return func(v reflect.Value) int32 { return int32(uint32(v.Uint())) }
		}
	case property.KindWide:
		switch t.Kind() {
		case reflect.Int, reflect.Int64:
			return func(v reflect.Value) int32 { return compare.FoldInt64(v.Int()) }
		default:
			return func(v reflect.Value) int32 { return compare.FoldInt64(int64(v.Uint())) }
		}
	case property.KindFloating:
		switch t.Kind() {
		case reflect.Float32:
			return func(v reflect.Value) int32 { return int32(compare.Float32Bits(float32(v.Float()))) }
		case reflect.Float64:
			return func(v reflect.Value) int32 { return compare.FoldInt64(int64(compare.Float64Bits(v.Float()))) }
		case reflect.Complex64:
			return func(v reflect.Value) int32 {
				c := v.Complex()
				re := int32(compare.Float32Bits(float32(real(c))))
				im := int32(compare.Float32Bits(float32(imag(c))))
				return compare.HashMultiplier*re + im
			}
		default:
			return func(v reflect.Value) int32 {
				c := v.Complex()
				re := compare.FoldInt64(int64(compare.Float64Bits(real(c))))
				im := compare.FoldInt64(int64(compare.Float64Bits(imag(c))))
				return compare.HashMultiplier*re + im
			}
		}
	case property.KindPrimitiveArray:
		return compare.PrimitiveArrayHash
	case property.KindReferenceArray:
		return compare.ReferenceArrayHash
	case property.KindObject:
		return compare.ObjectHash
	default:
		return compare.ValueHash
	}
}

var stringerType = reflect.TypeFor[fmt.Stringer]()

// appendFor picks an unboxed appender when the formatter offers one for the
// property type, boxing into any otherwise.
func appendFor(p property.Property, f format.EnhancedPropertyFormatter) appendFunc {
	boxed := func(b *strings.Builder, v reflect.Value) {
		f.AppendFormatted(b, box(v))
	}
	t := p.Type()
	// Stringer types render through their String method
	if t.Implements(stringerType) || reflect.PointerTo(t).Implements(stringerType) {
		return boxed
	}

	switch t.Kind() {
	case reflect.Bool:
		if a, ok := f.(format.BoolAppender); ok {
			return func(b *strings.Builder, v reflect.Value) { a.AppendBool(b, v.Bool()) }
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if a, ok := f.(format.Int64Appender); ok {
			return func(b *strings.Builder, v reflect.Value) { a.AppendInt64(b, v.Int()) }
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if a, ok := f.(format.Uint64Appender); ok {
			return func(b *strings.Builder, v reflect.Value) { a.AppendUint64(b, v.Uint()) }
		}
	case reflect.Float32, reflect.Float64:
		if a, ok := f.(format.Float64Appender); ok {
			bits := t.Bits()
			return func(b *strings.Builder, v reflect.Value) { a.AppendFloat64(b, v.Float(), bits) }
		}
	case reflect.String:
		if a, ok := f.(format.StringAppender); ok {
			return func(b *strings.Builder, v reflect.Value) { a.AppendString(b, v.String()) }
		}
	}
	return boxed
}

// box converts a property value into any for formatters and diff results.
func box(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	if v.CanInterface() {
		return v.Interface()
	}
	return compare.Expose(v).Interface()
}
