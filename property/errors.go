package property

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/multierr"
)

var (
	// ErrNoProperties is returned for types without any pojomatic property.
	ErrNoProperties = errors.New("no pojomatic properties")
	// ErrCollision is returned when two properties share an identifier.
	ErrCollision = errors.New("property collision")
	// ErrBadTag is returned for malformed pojo tags and accessor methods.
	ErrBadTag = errors.New("invalid pojo annotation")
)

// Collision describes two properties of the same declaring type that
// resolve to the same identifier.
type Collision struct {
	Type     reflect.Type
	Existing Property
	New      Property
}

func (c Collision) Error() string {
	return fmt.Sprintf(
		"property name collision in %s: %s %q (from %s) conflicts with %s %q",
		c.Type,
		c.New.sourceName(),
		c.New.Name(),
		c.New.ElementName(),
		c.Existing.sourceName(),
		c.Existing.ElementName(),
	)
}

func (c Collision) Unwrap() error {
	return ErrCollision
}

// DiscoveryError is a configuration error surfaced once, when a type is
// first introspected.
type DiscoveryError struct {
	Type reflect.Type
	Err  error
}

func (e *DiscoveryError) Error() string {
	errs := multierr.Errors(e.Err)
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("pojomatic discovery of %s: %s", typeName(e.Type), strings.Join(msgs, "; "))
}

func (e *DiscoveryError) Unwrap() []error {
	return multierr.Errors(e.Err)
}

// Problems returns every individual problem found for the type.
func (e *DiscoveryError) Problems() []error {
	return multierr.Errors(e.Err)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

func errorf(format string, args ...any) error {
	return errors.Wrapf(ErrBadTag, format, args...)
}
