package property

import (
	"reflect"
	"sync"
)

// Normalize strips one level of pointer indirection: *T and T describe the
// same class.
func Normalize(t reflect.Type) reflect.Type {
	if t != nil && t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

type pathKey struct {
	from, to reflect.Type
}

var paths sync.Map // pathKey -> pathResult

type pathResult struct {
	index []int
	ok    bool
}

// PathTo returns the field index path leading from a struct of type from to
// its embedded struct of type to, following anonymous struct-valued fields
// breadth first. The path is empty when from == to.
func PathTo(from, to reflect.Type) ([]int, bool) {
	from, to = Normalize(from), Normalize(to)
	if from == nil || to == nil {
		return nil, false
	}
	if from == to {
		return nil, true
	}
	key := pathKey{from: from, to: to}
	if cached, ok := paths.Load(key); ok {
		r := cached.(pathResult)
		return r.index, r.ok
	}
	index, ok := findPath(from, to)
	paths.Store(key, pathResult{index: index, ok: ok})
	return index, ok
}

// IsA reports whether values of type from can stand in for type to: either
// the types are equal or to is embedded (by value) somewhere in from.
func IsA(from, to reflect.Type) bool {
	_, ok := PathTo(from, to)
	return ok
}

func findPath(from, to reflect.Type) ([]int, bool) {
	type node struct {
		t     reflect.Type
		index []int
	}
	if from.Kind() != reflect.Struct {
		return nil, false
	}
	queue := []node{{t: from}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for i := 0; i < cur.t.NumField(); i++ {
			f := cur.t.Field(i)
			if !f.Anonymous || f.Type.Kind() != reflect.Struct {
				continue
			}
			index := append(append(make([]int, 0, len(cur.index)+1), cur.index...), i)
			if f.Type == to {
				return index, true
			}
			queue = append(queue, node{t: f.Type, index: index})
		}
	}
	return nil, false
}

// embedsMethod reports whether the method is promoted into t from one of its
// embedded fields.
func embedsMethod(t reflect.Type, method string) bool {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		if ft.Kind() != reflect.Pointer && ft.Kind() != reflect.Interface {
			ft = reflect.PointerTo(ft)
		}
		if _, ok := ft.MethodByName(method); ok {
			return true
		}
	}
	return false
}
