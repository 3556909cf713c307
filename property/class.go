package property

import (
	"reflect"
	"slices"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/yaroher/go-pojomatic/logger"
)

// ClassProperties is the ordered property set of one struct type,
// partitioned into the views used by each generated operation.
type ClassProperties struct {
	typ               reflect.Type
	all               []Property
	equals            []Property
	toString          []Property
	equalsParent      reflect.Type
	pojoFormatter     string
	propertyFormatter string
}

func newClassProperties(t reflect.Type, props []Property, equalsParent reflect.Type) *ClassProperties {
	return &ClassProperties{
		typ: t,
		all: props,
		equals: lo.Filter(props, func(p Property, _ int) bool {
			return p.Policy().InEquals()
		}),
		toString: lo.Filter(props, func(p Property, _ int) bool {
			return p.Policy().InToString()
		}),
		equalsParent: equalsParent,
	}
}

func (c *ClassProperties) Type() reflect.Type { return c.typ }

// All returns every property in declaration order.
func (c *ClassProperties) All() []Property { return slices.Clone(c.all) }

// Equals returns the properties compared by equals.
func (c *ClassProperties) Equals() []Property { return slices.Clone(c.equals) }

// HashCode is the same view as Equals.
func (c *ClassProperties) HashCode() []Property { return slices.Clone(c.equals) }

// Diff is the same view as Equals.
func (c *ClassProperties) Diff() []Property { return slices.Clone(c.equals) }

// ToString returns the properties rendered by toString.
func (c *ClassProperties) ToString() []Property { return slices.Clone(c.toString) }

// EqualsParent is the most derived type in the embedding chain declaring an
// equals property of its own.
func (c *ClassProperties) EqualsParent() reflect.Type { return c.equalsParent }

// PojoFormatterName is the registered pojo formatter requested by the class
// annotation, empty for the default one.
func (c *ClassProperties) PojoFormatterName() string { return c.pojoFormatter }

// DefaultPropertyFormatterName is the class wide property formatter.
func (c *ClassProperties) DefaultPropertyFormatterName() string { return c.propertyFormatter }

// IsCompatibleForEquals reports whether instances of other may be equal to
// instances of this class.
func (c *ClassProperties) IsCompatibleForEquals(other reflect.Type) bool {
	other = Normalize(other)
	if other == c.typ {
		return true
	}
	if !IsA(other, c.equalsParent) {
		return false
	}
	oc, err := ForType(other)
	if err != nil {
		return false
	}
	return oc.equalsParent == c.equalsParent
}

var classes sync.Map // reflect.Type -> *ClassProperties

// ForType returns the cached properties of t, discovering them on first use.
// Failures are not cached.
func ForType(t reflect.Type) (*ClassProperties, error) {
	t = Normalize(t)
	if t == nil {
		return Discover(t)
	}
	if cached, ok := classes.Load(t); ok {
		return cached.(*ClassProperties), nil
	}
	c, err := Discover(t)
	if err != nil {
		return nil, err
	}
	actual, loaded := classes.LoadOrStore(t, c)
	if !loaded {
		logger.Debug("pojomatic properties discovered",
			zap.Stringer("type", t),
			zap.Int("equals", len(c.equals)),
			zap.Int("tostring", len(c.toString)),
			zap.Stringer("equals_parent", c.equalsParent),
		)
	}
	return actual.(*ClassProperties), nil
}

// ResetCache drops every cached discovery result.
func ResetCache() {
	classes.Clear()
	paths.Clear()
}
