// Package generator builds the per type unit implementing equals, hashCode,
// toString and diff from the discovered properties of a struct type.
//
// Everything depending on the property kind is resolved once, when the unit
// is generated: each property becomes a slot holding its accessor and the
// comparison, hashing and formatting closures for its kind.
package generator

import (
	"reflect"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yaroher/go-pojomatic/format"
	"github.com/yaroher/go-pojomatic/logger"
	"github.com/yaroher/go-pojomatic/property"
)

// Unit is the generated implementation for one struct type. It is immutable
// and safe for concurrent use.
type Unit struct {
	id            uuid.UUID
	typ           reflect.Type
	class         *property.ClassProperties
	equals        []slot
	toString      []slot
	pojoFormatter format.EnhancedPojoFormatter
}

// Generate compiles the unit for c. Errors come from formatter resolution
// and are configuration errors.
func Generate(c *property.ClassProperties) (*Unit, error) {
	if c == nil {
		return nil, errors.New("nil class properties")
	}
	pf, err := format.ResolvePojoFormatter(c)
	if err != nil {
		return nil, errors.Wrapf(err, "generate %s", c.Type())
	}

	u := &Unit{
		id:            uuid.New(),
		typ:           c.Type(),
		class:         c,
		pojoFormatter: pf,
	}
	for _, p := range c.Equals() {
		u.equals = append(u.equals, compileEquals(u.typ, p))
	}
	for _, p := range c.ToString() {
		s, err := compileToString(c, p)
		if err != nil {
			return nil, errors.Wrapf(err, "generate %s", c.Type())
		}
		u.toString = append(u.toString, s)
	}

	logger.Debug("pojomatic unit generated",
		zap.Stringer("type", u.typ),
		zap.Stringer("id", u.id),
		zap.Int("equals", len(u.equals)),
		zap.Int("tostring", len(u.toString)),
	)
	return u, nil
}

// Type is the struct type the unit was generated for.
func (u *Unit) Type() reflect.Type { return u.typ }

// ID identifies this build of the unit in log records.
func (u *Unit) ID() uuid.UUID { return u.id }

func (u *Unit) Class() *property.ClassProperties { return u.class }

// Properties returns every property in declaration order.
func (u *Unit) Properties() []property.Property { return u.class.All() }
