// Package diff holds the result of comparing two instances property by
// property.
package diff

import (
	"strings"

	"github.com/go-faster/errors"

	"github.com/yaroher/go-pojomatic/format"
)

// ErrEmptyDifferences is returned when PropertyDifferences would be built
// without a single difference.
var ErrEmptyDifferences = errors.New("property differences must not be empty")

// Differences is the outcome of a diff.
type Differences interface {
	// AreEqual is true only when no property differs.
	AreEqual() bool
	// Differences lists differing properties in declaration order.
	Differences() []Difference
	String() string
}

// Difference is a single differing property.
type Difference interface {
	PropertyName() string
	LeftValue() any
	RightValue() any
	String() string
}

type noDifferences struct{}

var none Differences = &noDifferences{}

// NoDifferences returns the shared result for equal instances.
func NoDifferences() Differences { return none }

func (noDifferences) AreEqual() bool            { return true }
func (noDifferences) Differences() []Difference { return nil }
func (noDifferences) String() string            { return "no differences" }

// FromNull is the result when the instance side is nil and the other is not.
type FromNull struct {
	Value any
}

func (FromNull) AreEqual() bool { return false }

// Differences is empty: there are no properties to compare against nil.
func (FromNull) Differences() []Difference { return nil }

func (d FromNull) String() string {
	return "null is different than the object {" + format.FormatValue(d.Value) + "}"
}

// ToNull is the result when the other side is nil and the instance is not.
type ToNull struct {
	Value any
}

func (ToNull) AreEqual() bool { return false }

func (ToNull) Differences() []Difference { return nil }

func (d ToNull) String() string {
	return "the object {" + format.FormatValue(d.Value) + "} is different than null"
}

// ValueDifference records one property whose values differ.
type ValueDifference struct {
	name  string
	left  any
	right any
}

func NewValueDifference(name string, left, right any) ValueDifference {
	return ValueDifference{name: name, left: left, right: right}
}

func (d ValueDifference) PropertyName() string { return d.name }
func (d ValueDifference) LeftValue() any       { return d.left }
func (d ValueDifference) RightValue() any      { return d.right }

func (d ValueDifference) String() string {
	return d.name + ": {" + format.FormatValue(d.left) + "} versus {" + format.FormatValue(d.right) + "}"
}

// PropertyDifferences is a non-empty ordered list of differing properties.
type PropertyDifferences struct {
	diffs []ValueDifference
}

// NewPropertyDifferences fails with ErrEmptyDifferences on an empty list.
func NewPropertyDifferences(diffs []ValueDifference) (*PropertyDifferences, error) {
	if len(diffs) == 0 {
		return nil, ErrEmptyDifferences
	}
	return &PropertyDifferences{diffs: append([]ValueDifference(nil), diffs...)}, nil
}

func (*PropertyDifferences) AreEqual() bool { return false }

func (d *PropertyDifferences) Differences() []Difference {
	res := make([]Difference, len(d.diffs))
	for i, v := range d.diffs {
		res[i] = v
	}
	return res
}

// Values returns the differences with their concrete type.
func (d *PropertyDifferences) Values() []ValueDifference {
	return append([]ValueDifference(nil), d.diffs...)
}

func (d *PropertyDifferences) String() string {
	parts := make([]string, len(d.diffs))
	for i, v := range d.diffs {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
