package format

import (
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/go-faster/jx"

	"github.com/yaroher/go-pojomatic/property"
)

// JSONPojoFormatter renders an instance as a JSON object keyed by property
// names: `{"a":1,"b":"x"}`. Pair it with JSONPropertyFormatter.
type JSONPojoFormatter struct{}

func (JSONPojoFormatter) AppendToStringPrefix(b *strings.Builder, _ reflect.Type) {
	b.WriteByte('{')
}

func (JSONPojoFormatter) AppendToStringSuffix(b *strings.Builder, _ reflect.Type) {
	b.WriteByte('}')
}

func (JSONPojoFormatter) AppendPropertyPrefix(b *strings.Builder, p property.Property, index int) {
	if index > 0 {
		b.WriteByte(',')
	}
	writeJX(b, func(e *jx.Encoder) {
		e.Str(p.Name())
	})
	b.WriteByte(':')
}

func (JSONPojoFormatter) AppendPropertySuffix(*strings.Builder, property.Property) {}

// JSONPropertyFormatter renders values as JSON. Values without a JSON
// counterpart (structs, pointers to them) become strings holding their
// default rendering.
type JSONPropertyFormatter struct{}

func (JSONPropertyFormatter) AppendFormatted(b *strings.Builder, v any) {
	writeJX(b, func(e *jx.Encoder) {
		encodeValue(e, reflect.ValueOf(v))
	})
}

func (JSONPropertyFormatter) AppendInt64(b *strings.Builder, v int64) {
	writeJX(b, func(e *jx.Encoder) { e.Int64(v) })
}

func (JSONPropertyFormatter) AppendUint64(b *strings.Builder, v uint64) {
	writeJX(b, func(e *jx.Encoder) { e.UInt64(v) })
}

func (JSONPropertyFormatter) AppendFloat64(b *strings.Builder, v float64, bitSize int) {
	writeJX(b, func(e *jx.Encoder) { encodeFloat(e, v, bitSize) })
}

func (JSONPropertyFormatter) AppendBool(b *strings.Builder, v bool) {
	writeJX(b, func(e *jx.Encoder) { e.Bool(v) })
}

func (JSONPropertyFormatter) AppendString(b *strings.Builder, v string) {
	writeJX(b, func(e *jx.Encoder) { e.Str(v) })
}

func writeJX(b *strings.Builder, fn func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	fn(e)
	b.Write(e.Bytes())
}

func encodeFloat(e *jx.Encoder, v float64, bitSize int) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		// в JSON нет NaN/Inf
		e.Str(FormatValue(v))
		return
	}
	if bitSize == 32 {
		e.Float32(float32(v))
		return
	}
	e.Float64(v)
}

func encodeValue(e *jx.Encoder, v reflect.Value) {
	if isNull(v) {
		e.Null()
		return
	}
	if isStringer(v) {
		e.Str(FormatValue(v.Interface()))
		return
	}
	switch v.Kind() {
	case reflect.Interface:
		encodeValue(e, v.Elem())
	case reflect.Bool:
		e.Bool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.Int64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		e.UInt64(v.Uint())
	case reflect.Float32:
		encodeFloat(e, v.Float(), 32)
	case reflect.Float64:
		encodeFloat(e, v.Float(), 64)
	case reflect.String:
		e.Str(v.String())
	case reflect.Slice, reflect.Array:
		e.ArrStart()
		for i := 0; i < v.Len(); i++ {
			encodeValue(e, v.Index(i))
		}
		e.ArrEnd()
	case reflect.Map:
		keys := v.MapKeys()
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = formatReflect(k)
		}
		order := make([]int, len(keys))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool { return names[order[i]] < names[order[j]] })
		e.ObjStart()
		for _, i := range order {
			e.FieldStart(names[i])
			encodeValue(e, v.MapIndex(keys[i]))
		}
		e.ObjEnd()
	default:
		e.Str(formatReflect(v))
	}
}
