package generator

import (
	"strings"

	"github.com/yaroher/go-pojomatic/compare"
)

// ToString renders a with the pojo formatter of the unit and the property
// formatter bound to each toString property.
func (u *Unit) ToString(a any) string {
	va := compare.CheckNotNull(a, "instance")
	if err := compare.CheckClass(va, u.typ, "instance"); err != nil {
		panic(err)
	}

	var b strings.Builder
	u.pojoFormatter.AppendToStringPrefix(&b, u.typ)
	for i := range u.toString {
		s := &u.toString[i]
		u.pojoFormatter.AppendPropertyPrefix(&b, s.prop, i)
		s.append(&b, s.get.get(va))
		u.pojoFormatter.AppendPropertySuffix(&b, s.prop)
	}
	u.pojoFormatter.AppendToStringSuffix(&b, u.typ)
	return b.String()
}
