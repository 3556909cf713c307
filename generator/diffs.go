package generator

import (
	"reflect"

	"github.com/yaroher/go-pojomatic/compare"
	"github.com/yaroher/go-pojomatic/diff"
)

// Diff lists the equals properties whose values differ between a and b.
// Either side may be nil. Both sides must be of the unit type or embed it,
// otherwise a *compare.TypeError is returned. Every property is read from
// both sides.
func (u *Unit) Diff(a, b any) (diff.Differences, error) {
	aNull, bNull := compare.IsNull(a), compare.IsNull(b)
	switch {
	case aNull && bNull, compare.SamePointer(a, b):
		return diff.NoDifferences(), nil
	case aNull:
		return diff.FromNull{Value: b}, nil
	case bNull:
		return diff.ToNull{Value: a}, nil
	}

	va := compare.Addressable(reflect.ValueOf(a))
	vb := compare.Addressable(reflect.ValueOf(b))
	if err := compare.CheckClass(va, u.typ, "instance"); err != nil {
		return nil, err
	}
	if err := compare.CheckClass(vb, u.typ, "other"); err != nil {
		return nil, err
	}

	var diffs []diff.ValueDifference
	for i := range u.equals {
		s := &u.equals[i]
		left, right := s.get.get(va), s.get.get(vb)
		if !s.equal(left, right) {
			diffs = append(diffs, diff.NewValueDifference(s.prop.Name(), box(left), box(right)))
		}
	}
	if len(diffs) == 0 {
		return diff.NoDifferences(), nil
	}
	return diff.NewPropertyDifferences(diffs)
}
