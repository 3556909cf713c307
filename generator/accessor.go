package generator

import (
	"reflect"

	"github.com/yaroher/go-pojomatic/compare"
	"github.com/yaroher/go-pojomatic/property"
)

// accessor reads one property from an addressable struct value of the unit
// type or of any type embedding the declaring type.
type accessor struct {
	unitType  reflect.Type
	declaring reflect.Type
	// path from the unit type to the declaring type
	unitPath []int
	field    int
	method   reflect.Value
}

func newAccessor(unitType reflect.Type, p property.Property) accessor {
	a := accessor{
		unitType:  unitType,
		declaring: p.DeclaringType(),
		field:     p.FieldIndex(),
	}
	a.unitPath, _ = property.PathTo(unitType, a.declaring)
	if p.IsMethod() {
		m, _ := reflect.PointerTo(a.declaring).MethodByName(p.MethodName())
		a.method = m.Func
	}
	return a
}

func (a accessor) get(root reflect.Value) reflect.Value {
	path := a.unitPath
	if root.Type() != a.unitType {
		p, ok := property.PathTo(root.Type(), a.declaring)
		if !ok {
			panic(&compare.TypeError{Side: "instance", Found: root.Type(), Expected: a.declaring})
		}
		path = p
	}
	owner := root
	if len(path) > 0 {
		owner = compare.Expose(root.FieldByIndex(path))
	}
	if a.method.IsValid() {
		return a.method.Call([]reflect.Value{owner.Addr()})[0]
	}
	return compare.Expose(owner.Field(a.field))
}
