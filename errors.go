package pojomatic

import (
	"github.com/yaroher/go-pojomatic/compare"
	"github.com/yaroher/go-pojomatic/property"
)

var (
	ErrNullArgument = compare.ErrNullArgument
	ErrTypeMismatch = compare.ErrTypeMismatch
	ErrNoProperties = property.ErrNoProperties
	ErrCollision    = property.ErrCollision
	ErrBadTag       = property.ErrBadTag
)

type (
	ArgumentError  = compare.ArgumentError
	TypeError      = compare.TypeError
	DiscoveryError = property.DiscoveryError
)
