package property

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

// Source tells how a property value is read from its declaring type.
type Source int

const (
	// SourceField: struct field of the declaring type
	SourceField Source = iota
	// SourceMethod: no-argument accessor method of the declaring type
	SourceMethod
)

func (s Source) String() string {
	if s == SourceMethod {
		return "method"
	}
	return "field"
}

// Property is an immutable descriptor of one comparable / formattable
// member of a struct type.
type Property struct {
	name          string
	element       string
	declaringType reflect.Type
	typ           reflect.Type
	kind          Kind
	policy        Policy
	source        Source
	fieldIndex    int
	formatter     string
}

// NewFieldProperty describes field number index of declaringType.
func NewFieldProperty(declaringType reflect.Type, index int, name string, policy Policy) Property {
	f := declaringType.Field(index)
	if name == "" {
		name = DefaultFieldName(f.Name)
	}
	return Property{
		name:          name,
		element:       f.Name,
		declaringType: declaringType,
		typ:           f.Type,
		kind:          KindOf(f.Type),
		policy:        policy.normalize(),
		source:        SourceField,
		fieldIndex:    index,
	}
}

// NewMethodProperty describes an accessor method of declaringType. The
// method must exist in the method set of *declaringType.
func NewMethodProperty(declaringType reflect.Type, method string, name string, policy Policy) (Property, error) {
	m, ok := reflect.PointerTo(declaringType).MethodByName(method)
	if !ok {
		return Property{}, errorf("%s has no method %s", declaringType, method)
	}
	// receiver + no arguments, exactly one result
	if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
		return Property{}, errorf("%s.%s must take no arguments and return one value", declaringType, method)
	}
	if name == "" {
		name = DefaultMethodName(method)
	}
	out := m.Type.Out(0)
	return Property{
		name:          name,
		element:       method,
		declaringType: declaringType,
		typ:           out,
		kind:          KindOf(out),
		policy:        policy.normalize(),
		source:        SourceMethod,
		fieldIndex:    -1,
	}, nil
}

// WithFormatter returns a copy bound to a registered property formatter.
func (p Property) WithFormatter(name string) Property {
	p.formatter = name
	return p
}

func (p Property) Name() string                { return p.name }
func (p Property) ElementName() string         { return p.element }
func (p Property) DeclaringType() reflect.Type { return p.declaringType }
func (p Property) Type() reflect.Type          { return p.typ }
func (p Property) Kind() Kind                  { return p.kind }
func (p Property) Policy() Policy              { return p.policy }
func (p Property) Source() Source              { return p.source }
func (p Property) IsMethod() bool              { return p.source == SourceMethod }
func (p Property) FieldIndex() int             { return p.fieldIndex }
func (p Property) FormatterName() string       { return p.formatter }

// MethodName is the accessor method name, empty for field properties.
func (p Property) MethodName() string {
	if p.source != SourceMethod {
		return ""
	}
	return p.element
}

// Identifier is unique per property within one type hierarchy.
func (p Property) Identifier() string {
	return typeName(p.declaringType) + "." + p.name
}

func (p Property) String() string {
	return p.Identifier() + " (" + p.source.String() + " " + p.element + ", " + p.kind.String() + ", " + p.policy.String() + ")"
}

func (p Property) sourceName() string {
	return p.source.String()
}

// DefaultFieldName converts a Go field name into a property name.
func DefaultFieldName(field string) string {
	return strcase.ToLowerCamel(field)
}

// DefaultMethodName strips a Get/Is prefix and converts the rest.
func DefaultMethodName(method string) string {
	for _, prefix := range []string{"Get", "Is"} {
		rest, ok := strings.CutPrefix(method, prefix)
		if ok && rest != "" && rest[0] >= 'A' && rest[0] <= 'Z' {
			return strcase.ToLowerCamel(rest)
		}
	}
	return strcase.ToLowerCamel(method)
}
