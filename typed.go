package pojomatic

import (
	"reflect"

	"github.com/yaroher/go-pojomatic/diff"
	"github.com/yaroher/go-pojomatic/generator"
)

// unit is what the facades need from a generated unit.
type unit interface {
	Equals(a, b any) bool
	HashCode(a any) int32
	ToString(a any) string
	Diff(a, b any) (diff.Differences, error)
}

var _ unit = (*generator.Unit)(nil)

// Pojomator is a typed view on the unit of T. T may be a struct type or a
// pointer to one.
type Pojomator[T any] struct {
	u *generator.Unit
}

// New returns the Pojomator of T.
func New[T any]() (Pojomator[T], error) {
	u, err := For(reflect.TypeFor[T]())
	if err != nil {
		return Pojomator[T]{}, err
	}
	return Pojomator[T]{u: u}, nil
}

// MustNew is like New but panics on error.
func MustNew[T any]() Pojomator[T] {
	p, err := New[T]()
	if err != nil {
		panic(err)
	}
	return p
}

// Equals accepts any b: values of other types are simply not equal.
func (p Pojomator[T]) Equals(a T, b any) bool { return p.u.Equals(a, b) }

func (p Pojomator[T]) HashCode(a T) int32 { return p.u.HashCode(a) }

func (p Pojomator[T]) ToString(a T) string { return p.u.ToString(a) }

func (p Pojomator[T]) Diff(a, b T) (diff.Differences, error) { return p.u.Diff(a, b) }

// Unit exposes the underlying generated unit.
func (p Pojomator[T]) Unit() *generator.Unit { return p.u }
