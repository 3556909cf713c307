package pojomatic

import (
	"github.com/yaroher/go-pojomatic/compare"
	"github.com/yaroher/go-pojomatic/diff"
)

// Equals reports whether a and b are equal by the properties of the type of
// a. It panics when a is nil or its type cannot be introspected.
func Equals(a, b any) bool {
	compare.CheckNotNull(a, "instance")
	return mustForValue(a).Equals(a, b)
}

// HashCode computes the hash of a, consistent with Equals.
func HashCode(a any) int32 {
	compare.CheckNotNull(a, "instance")
	return mustForValue(a).HashCode(a)
}

// ToString renders a, `Type{prop: {value}, ...}` by default.
func ToString(a any) string {
	compare.CheckNotNull(a, "instance")
	return mustForValue(a).ToString(a)
}

// Diff compares a and b using the unit of whichever side is not nil, a
// first.
func Diff(a, b any) (diff.Differences, error) {
	v := a
	if compare.IsNull(a) {
		if compare.IsNull(b) {
			return diff.NoDifferences(), nil
		}
		v = b
	}
	u, err := ForValue(v)
	if err != nil {
		return nil, err
	}
	return u.Diff(a, b)
}

func mustForValue(v any) unit {
	u, err := ForValue(v)
	if err != nil {
		panic(err)
	}
	return u
}
