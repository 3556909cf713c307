// Package format defines how generated units render instances as strings.
//
// A pojo formatter writes the frame of the output (type prefix and suffix,
// text around each property) and a property formatter writes each value.
// Both come in a legacy shape returning strings and an enhanced shape
// appending to a strings.Builder; legacy strategies are wrapped on
// resolution.
package format

import (
	"reflect"
	"strings"

	"github.com/yaroher/go-pojomatic/property"
)

// PojoFormatter is the legacy string returning pojo formatter.
//
// Deprecated: implement EnhancedPojoFormatter.
type PojoFormatter interface {
	ToStringPrefix(t reflect.Type) string
	ToStringSuffix(t reflect.Type) string
	// PropertyPrefix gets the zero based position of p among the rendered
	// properties.
	PropertyPrefix(p property.Property, index int) string
	PropertySuffix(p property.Property) string
}

type EnhancedPojoFormatter interface {
	AppendToStringPrefix(b *strings.Builder, t reflect.Type)
	AppendToStringSuffix(b *strings.Builder, t reflect.Type)
	AppendPropertyPrefix(b *strings.Builder, p property.Property, index int)
	AppendPropertySuffix(b *strings.Builder, p property.Property)
}

// PropertyFormatter is the legacy string returning property formatter.
//
// Deprecated: implement EnhancedPropertyFormatter.
type PropertyFormatter interface {
	Format(v any) string
}

type EnhancedPropertyFormatter interface {
	AppendFormatted(b *strings.Builder, v any)
}

// PropertyInitializer is implemented by formatters that need to know the
// property they are bound to. Initialize is called once, before first use.
type PropertyInitializer interface {
	Initialize(p property.Property)
}

// Unboxed appenders. A property formatter implementing one of them gets
// numeric, boolean and string values without conversion to any.
type (
	Int64Appender interface {
		AppendInt64(b *strings.Builder, v int64)
	}
	Uint64Appender interface {
		AppendUint64(b *strings.Builder, v uint64)
	}
	// Float64Appender receives float32 values widened, bitSize keeps the
	// original precision for rendering.
	Float64Appender interface {
		AppendFloat64(b *strings.Builder, v float64, bitSize int)
	}
	BoolAppender interface {
		AppendBool(b *strings.Builder, v bool)
	}
	StringAppender interface {
		AppendString(b *strings.Builder, v string)
	}
)

// WrapPojoFormatter adapts a legacy pojo formatter.
func WrapPojoFormatter(f PojoFormatter) EnhancedPojoFormatter {
	return legacyPojoFormatter{f: f}
}

type legacyPojoFormatter struct {
	f PojoFormatter
}

func (l legacyPojoFormatter) AppendToStringPrefix(b *strings.Builder, t reflect.Type) {
	b.WriteString(l.f.ToStringPrefix(t))
}

func (l legacyPojoFormatter) AppendToStringSuffix(b *strings.Builder, t reflect.Type) {
	b.WriteString(l.f.ToStringSuffix(t))
}

func (l legacyPojoFormatter) AppendPropertyPrefix(b *strings.Builder, p property.Property, index int) {
	b.WriteString(l.f.PropertyPrefix(p, index))
}

func (l legacyPojoFormatter) AppendPropertySuffix(b *strings.Builder, p property.Property) {
	b.WriteString(l.f.PropertySuffix(p))
}

// WrapPropertyFormatter adapts a legacy property formatter. Initialize is
// forwarded when the wrapped formatter implements PropertyInitializer.
func WrapPropertyFormatter(f PropertyFormatter) EnhancedPropertyFormatter {
	return legacyPropertyFormatter{f: f}
}

type legacyPropertyFormatter struct {
	f PropertyFormatter
}

func (l legacyPropertyFormatter) AppendFormatted(b *strings.Builder, v any) {
	b.WriteString(l.f.Format(v))
}

func (l legacyPropertyFormatter) Initialize(p property.Property) {
	if init, ok := l.f.(PropertyInitializer); ok {
		init.Initialize(p)
	}
}
