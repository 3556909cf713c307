package format

import (
	"sort"
	"sync"

	"github.com/go-faster/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/yaroher/go-pojomatic/logger"
	"github.com/yaroher/go-pojomatic/property"
)

const (
	// Default names the built-in default formatters.
	Default = "default"
	// JSON names the built-in jx backed formatters.
	JSON = "json"
)

var (
	// ErrUnknownFormatter is returned for a formatter name nobody registered.
	ErrUnknownFormatter = errors.New("unknown formatter")
	// ErrBadFormatter is returned when a factory produces a value implementing
	// neither the enhanced nor the legacy contract.
	ErrBadFormatter = errors.New("formatter does not implement a formatter contract")
)

// Factory creates a formatter instance. Pojo formatter factories must return
// an EnhancedPojoFormatter or a PojoFormatter, property formatter factories
// an EnhancedPropertyFormatter or a PropertyFormatter.
type Factory func() any

type registry struct {
	mu       sync.RWMutex
	pojo     map[string]Factory
	property map[string]Factory
}

var formatters = newRegistry()

func newRegistry() *registry {
	return &registry{
		pojo: map[string]Factory{
			Default: func() any { return DefaultPojoFormatter{} },
			JSON:    func() any { return JSONPojoFormatter{} },
		},
		property: map[string]Factory{
			Default: func() any { return DefaultPropertyFormatter{} },
			JSON:    func() any { return JSONPropertyFormatter{} },
		},
	}
}

// RegisterPojoFormatter makes a pojo formatter available to class tags
// (`format=name`). Registering a name again replaces the factory.
func RegisterPojoFormatter(name string, factory Factory) {
	formatters.mu.Lock()
	defer formatters.mu.Unlock()
	formatters.pojo[name] = factory
}

// RegisterPropertyFormatter makes a property formatter available to field
// tags (`format=name`) and class tags (`propertyformat=name`).
func RegisterPropertyFormatter(name string, factory Factory) {
	formatters.mu.Lock()
	defer formatters.mu.Unlock()
	formatters.property[name] = factory
}

// PojoFormatterNames lists registered pojo formatters, sorted.
func PojoFormatterNames() []string {
	formatters.mu.RLock()
	defer formatters.mu.RUnlock()
	names := lo.Keys(formatters.pojo)
	sort.Strings(names)
	return names
}

// PropertyFormatterNames lists registered property formatters, sorted.
func PropertyFormatterNames() []string {
	formatters.mu.RLock()
	defer formatters.mu.RUnlock()
	names := lo.Keys(formatters.property)
	sort.Strings(names)
	return names
}

func lookup(m map[string]Factory, name string) (Factory, bool) {
	formatters.mu.RLock()
	defer formatters.mu.RUnlock()
	f, ok := m[name]
	return f, ok
}

// ResolvePojoFormatter instantiates the pojo formatter requested by the
// class, the default one when none is requested.
func ResolvePojoFormatter(c *property.ClassProperties) (EnhancedPojoFormatter, error) {
	name := c.PojoFormatterName()
	if name == "" {
		return DefaultPojoFormatter{}, nil
	}
	factory, ok := lookup(formatters.pojo, name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFormatter, "pojo formatter %q for %s", name, c.Type())
	}
	switch f := factory().(type) {
	case EnhancedPojoFormatter:
		return f, nil
	case PojoFormatter:
		logger.Warn("legacy pojo formatter wrapped",
			zap.String("formatter", name),
			zap.Stringer("type", c.Type()),
		)
		return WrapPojoFormatter(f), nil
	default:
		return nil, errors.Wrapf(ErrBadFormatter, "pojo formatter %q (%T)", name, f)
	}
}

// ResolvePropertyFormatter instantiates the formatter for p: the one declared
// on the property, then the class default, then DefaultPropertyFormatter.
// A formatter implementing PropertyInitializer is initialized with p.
func ResolvePropertyFormatter(c *property.ClassProperties, p property.Property) (EnhancedPropertyFormatter, error) {
	name := p.FormatterName()
	if name == "" {
		name = c.DefaultPropertyFormatterName()
	}
	if name == "" {
		return DefaultPropertyFormatter{}, nil
	}
	factory, ok := lookup(formatters.property, name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFormatter, "property formatter %q for %s", name, p.Identifier())
	}

	var res EnhancedPropertyFormatter
	switch f := factory().(type) {
	case EnhancedPropertyFormatter:
		res = f
	case PropertyFormatter:
		logger.Warn("legacy property formatter wrapped",
			zap.String("formatter", name),
			zap.String("property", p.Identifier()),
		)
		res = WrapPropertyFormatter(f)
	default:
		return nil, errors.Wrapf(ErrBadFormatter, "property formatter %q (%T)", name, f)
	}
	if init, ok := res.(PropertyInitializer); ok {
		init.Initialize(p)
	}
	return res, nil
}
