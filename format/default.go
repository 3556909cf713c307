package format

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/yaroher/go-pojomatic/property"
)

// DefaultPojoFormatter renders `Name{a: {1}, b: {2}}`.
type DefaultPojoFormatter struct{}

func (DefaultPojoFormatter) AppendToStringPrefix(b *strings.Builder, t reflect.Type) {
	b.WriteString(SimpleName(t))
	b.WriteByte('{')
}

func (DefaultPojoFormatter) AppendToStringSuffix(b *strings.Builder, _ reflect.Type) {
	b.WriteByte('}')
}

func (DefaultPojoFormatter) AppendPropertyPrefix(b *strings.Builder, p property.Property, index int) {
	if index > 0 {
		b.WriteString(", ")
	}
	b.WriteString(p.Name())
	b.WriteString(": {")
}

func (DefaultPojoFormatter) AppendPropertySuffix(b *strings.Builder, _ property.Property) {
	b.WriteByte('}')
}

// SimpleName is the unqualified type name, or the full type string for
// unnamed types.
func SimpleName(t reflect.Type) string {
	t = property.Normalize(t)
	if t == nil {
		return "null"
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// DefaultPropertyFormatter renders values with FormatValue.
type DefaultPropertyFormatter struct{}

func (DefaultPropertyFormatter) AppendFormatted(b *strings.Builder, v any) {
	appendValue(b, reflect.ValueOf(v))
}

func (DefaultPropertyFormatter) AppendInt64(b *strings.Builder, v int64) {
	b.WriteString(strconv.FormatInt(v, 10))
}

func (DefaultPropertyFormatter) AppendUint64(b *strings.Builder, v uint64) {
	b.WriteString(strconv.FormatUint(v, 10))
}

func (DefaultPropertyFormatter) AppendFloat64(b *strings.Builder, v float64, bitSize int) {
	b.WriteString(strconv.FormatFloat(v, 'g', -1, bitSize))
}

func (DefaultPropertyFormatter) AppendBool(b *strings.Builder, v bool) {
	b.WriteString(strconv.FormatBool(v))
}

func (DefaultPropertyFormatter) AppendString(b *strings.Builder, v string) {
	b.WriteString(v)
}

// FormatValue is the default rendering of a property value: `null` for nil,
// `[a, b]` for arrays and slices without a String method, fmt.Sprint for
// everything else.
func FormatValue(v any) string {
	return formatReflect(reflect.ValueOf(v))
}

func formatReflect(v reflect.Value) string {
	var b strings.Builder
	appendValue(&b, v)
	return b.String()
}

var stringerType = reflect.TypeFor[fmt.Stringer]()

func appendValue(b *strings.Builder, v reflect.Value) {
	if isNull(v) {
		b.WriteString("null")
		return
	}
	if v.Kind() == reflect.Interface {
		appendValue(b, v.Elem())
		return
	}
	if (v.Kind() == reflect.Slice || v.Kind() == reflect.Array) && !isStringer(v) {
		b.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			appendValue(b, v.Index(i))
		}
		b.WriteByte(']')
		return
	}
	if v.CanInterface() {
		b.WriteString(fmt.Sprint(v.Interface()))
		return
	}
	// не экспортируемое значение, fmt достаёт его сам
	b.WriteString(fmt.Sprint(v))
}

func isStringer(v reflect.Value) bool {
	return v.CanInterface() && v.Type().Implements(stringerType)
}

func isNull(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
