package pojomatic

import (
	"reflect"
	"sync"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/yaroher/go-pojomatic/generator"
	"github.com/yaroher/go-pojomatic/logger"
	"github.com/yaroher/go-pojomatic/property"
)

type entry struct {
	once sync.Once
	unit *generator.Unit
	err  error
}

var units sync.Map // reflect.Type -> *entry

// For returns the unit of t (*T and T share one unit), generating it on
// first use. Concurrent first calls build it once. A failed build is not
// kept, the next call retries.
func For(t reflect.Type) (*generator.Unit, error) {
	t = property.Normalize(t)
	if t == nil {
		return nil, &property.DiscoveryError{Type: t, Err: property.ErrNoProperties}
	}
	v, loaded := units.LoadOrStore(t, &entry{})
	e := v.(*entry)
	if loaded {
		logger.Debug("pojomatic unit cache hit", zap.Stringer("type", t))
	}
	e.once.Do(func() {
		logger.Debug("pojomatic unit cache miss", zap.Stringer("type", t))
		e.unit, e.err = build(t)
		if e.err != nil {
			logger.Error("pojomatic unit build failed", zap.Stringer("type", t), zap.Error(e.err))
			units.CompareAndDelete(t, e)
		}
	})
	return e.unit, e.err
}

// build never panics: a panic raised by user formatter code or by discovery
// is returned as an error.
func build(t reflect.Type) (u *generator.Unit, err error) {
	defer func() {
		if r := recover(); r != nil {
			u, err = nil, errors.Errorf("build %s: %v", t, r)
		}
	}()
	c, err := property.ForType(t)
	if err != nil {
		return nil, err
	}
	return generator.Generate(c)
}

// ForValue returns the unit of the dynamic type of v.
func ForValue(v any) (*generator.Unit, error) {
	return For(reflect.TypeOf(v))
}

// MustFor is like For but panics on error.
func MustFor(t reflect.Type) *generator.Unit {
	u, err := For(t)
	if err != nil {
		panic(err)
	}
	return u
}

// Reset drops every cached unit and discovery result.
func Reset() {
	units.Clear()
	property.ResetCache()
}
