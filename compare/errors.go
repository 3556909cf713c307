package compare

import (
	"fmt"
	"reflect"

	"github.com/go-faster/errors"
)

var (
	// ErrNullArgument reports a nil instance where one is required.
	ErrNullArgument = errors.New("null argument")
	// ErrTypeMismatch reports an instance the generated unit cannot read.
	ErrTypeMismatch = errors.New("type mismatch")
)

// ArgumentError is raised (as a panic value) by equals, hashCode and
// toString when the instance is nil.
type ArgumentError struct {
	Name string
}

func (e *ArgumentError) Error() string {
	return e.Name + " is null"
}

func (e *ArgumentError) Unwrap() error {
	return ErrNullArgument
}

// TypeError describes an instance which is neither of the expected type nor
// embeds it.
type TypeError struct {
	Side     string
	Found    reflect.Type
	Expected reflect.Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s has type %s which is not a subtype of %s", e.Side, typeName(e.Found), typeName(e.Expected))
}

func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
