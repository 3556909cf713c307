package generator

import (
	"reflect"

	"github.com/yaroher/go-pojomatic/compare"
)

// Equals compares a and b property by property.
//
// a must not be nil (panics with *compare.ArgumentError) and must be of the
// unit type or embed it (panics with *compare.TypeError). b may be anything:
// nil or an incompatible type simply yields false. Properties are read
// lazily, a property is only accessed when every earlier one was equal.
func (u *Unit) Equals(a, b any) bool {
	va := compare.CheckNotNull(a, "instance")
	if compare.SamePointer(a, b) {
		return true
	}
	if compare.IsNull(b) {
		return false
	}
	vb := compare.Addressable(reflect.ValueOf(b))
	if va.Type() != vb.Type() && !compare.IsCompatibleForEquality(u.class, vb.Type()) {
		return false
	}
	if err := compare.CheckClass(va, u.typ, "instance"); err != nil {
		panic(err)
	}

	for i := range u.equals {
		s := &u.equals[i]
		if !s.equal(s.get.get(va), s.get.get(vb)) {
			return false
		}
	}
	return true
}
