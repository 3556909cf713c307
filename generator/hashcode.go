package generator

import "github.com/yaroher/go-pojomatic/compare"

// HashCode folds the equals properties of a into h = 31*h + hash(p), from 1.
// It panics on nil like Equals.
func (u *Unit) HashCode(a any) int32 {
	va := compare.CheckNotNull(a, "instance")
	if err := compare.CheckClass(va, u.typ, "instance"); err != nil {
		panic(err)
	}

	h := compare.HashSeed
	for i := range u.equals {
		s := &u.equals[i]
		h = compare.HashMultiplier*h + s.hash(s.get.get(va))
	}
	return h
}
