package property

import (
	"reflect"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yaroher/go-pojomatic/logger"
	"github.com/yaroher/go-pojomatic/property/marker"
)

// TagKey is the struct tag read by discovery.
const TagKey = "pojo"

// MetaField is the name of the blank field carrying the class annotation.
const MetaField = "_"

const (
	markerPolicy         = "policy"
	markerFormat         = "format"
	markerAuto           = "auto"
	markerMethods        = "methods"
	markerPropertyFormat = "propertyformat"
)

// AutoDetect selects which members are taken as properties without their own tag.
type AutoDetect uint8

const (
	AutoNone    AutoDetect = 0
	AutoFields  AutoDetect = 1
	AutoMethods AutoDetect = 2
	AutoAll                = AutoFields | AutoMethods
)

func parseAuto(s string) (AutoDetect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return AutoNone, nil
	case "fields", "field":
		return AutoFields, nil
	case "methods", "method":
		return AutoMethods, nil
	case "all":
		return AutoAll, nil
	default:
		return AutoNone, errorf("unknown auto mode %q", s)
	}
}

// classMeta is the parsed class annotation of one struct type.
type classMeta struct {
	auto              AutoDetect
	policy            Policy
	methods           []string
	pojoFormatter     string
	propertyFormatter string
}

func readClassMeta(t reflect.Type) (classMeta, error) {
	meta := classMeta{policy: PolicyAll}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Name != MetaField {
			continue
		}
		tag, ok := f.Tag.Lookup(TagKey)
		if !ok {
			continue
		}
		m := marker.Parse(tag)
		var err error
		auto, autoErr := parseAuto(m.GetMarker(markerAuto))
		err = multierr.Append(err, autoErr)
		policy, policyErr := ParsePolicy(m.GetMarker(markerPolicy))
		err = multierr.Append(err, policyErr)
		meta.auto = auto
		meta.policy = policy
		meta.methods = m.GetList(markerMethods)
		meta.pojoFormatter = m.GetMarker(markerFormat)
		meta.propertyFormatter = m.GetMarker(markerPropertyFormat)
		return meta, err
	}
	return meta, nil
}

// collected is the discovery result for one struct type, embedded types
// already expanded.
type collected struct {
	meta         classMeta
	props        []Property
	equalsParent reflect.Type
}

// Discover introspects t without consulting the cache.
func Discover(t reflect.Type) (*ClassProperties, error) {
	t = Normalize(t)
	if t == nil || t.Kind() != reflect.Struct {
		return nil, &DiscoveryError{
			Type: t,
			Err:  errors.Wrapf(ErrNoProperties, "%s is not a struct type", typeName(t)),
		}
	}
	if IsProtoMessage(t) {
		return discoverProto(t)
	}

	c, err := collect(t)
	err = multierr.Append(err, checkCollisions(t, c.props))
	if err != nil {
		return nil, &DiscoveryError{Type: t, Err: err}
	}

	cp := newClassProperties(t, c.props, c.equalsParent)
	cp.pojoFormatter = c.meta.pojoFormatter
	cp.propertyFormatter = c.meta.propertyFormatter
	if len(cp.equals) == 0 && len(cp.toString) == 0 {
		return nil, &DiscoveryError{
			Type: t,
			Err:  errors.Wrapf(ErrNoProperties, "class %s has no properties annotated for use with pojomatic", typeName(t)),
		}
	}
	return cp, nil
}

func collect(t reflect.Type) (collected, error) {
	meta, err := readClassMeta(t)
	if err != nil {
		return collected{}, err
	}

	var (
		props []Property
		// embedded types that contributed equals properties
		equalsEmbeds []reflect.Type
		ownEquals    bool
	)

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Name == MetaField {
			continue
		}
		tag, tagged := f.Tag.Lookup(TagKey)
		if tag == "-" {
			continue
		}
		if f.Anonymous && !tagged && f.Type.Kind() == reflect.Struct {
			sub, subErr := collect(f.Type)
			if subErr != nil {
				err = multierr.Append(err, subErr)
				continue
			}
			props = append(props, sub.props...)
			if hasEquals(sub.props) {
				equalsEmbeds = append(equalsEmbeds, sub.equalsParent)
			}
			continue
		}

		var p Property
		switch {
		case tagged:
			m := marker.Parse(tag)
			policy, policyErr := ParsePolicy(m.GetMarker(markerPolicy))
			if policyErr != nil {
				err = multierr.Append(err, errors.Wrapf(policyErr, "field %s.%s", typeName(t), f.Name))
				continue
			}
			p = NewFieldProperty(t, i, m.Value(), policy).WithFormatter(m.GetMarker(markerFormat))
		case meta.auto&AutoFields != 0:
			p = NewFieldProperty(t, i, "", meta.policy)
		default:
			continue
		}
		if p.Policy() == PolicyNone {
			continue
		}
		ownEquals = ownEquals || p.Policy().InEquals()
		props = append(props, p)
	}

	methods, methodsErr := methodProperties(t, meta)
	err = multierr.Append(err, methodsErr)
	for _, p := range methods {
		ownEquals = ownEquals || p.Policy().InEquals()
		props = append(props, p)
	}

	res := collected{meta: meta, props: props, equalsParent: t}
	if !ownEquals && len(equalsEmbeds) == 1 {
		res.equalsParent = equalsEmbeds[0]
	}
	return res, err
}

func methodProperties(t reflect.Type, meta classMeta) ([]Property, error) {
	if meta.policy == PolicyNone {
		return nil, nil
	}
	names := meta.methods
	if meta.auto&AutoMethods != 0 {
		names = append(names, autoMethods(t, names)...)
	}

	var (
		props []Property
		err   error
	)
	for _, name := range names {
		p, methodErr := NewMethodProperty(t, name, "", meta.policy)
		if methodErr != nil {
			err = multierr.Append(err, methodErr)
			continue
		}
		props = append(props, p)
	}
	return props, err
}

// autoMethods lists exported GetX / IsX accessors declared on t itself, in
// name order, skipping the ones already listed explicitly.
func autoMethods(t reflect.Type, listed []string) []string {
	pt := reflect.PointerTo(t)
	var names []string
	for i := 0; i < pt.NumMethod(); i++ {
		m := pt.Method(i)
		if !isAccessorName(m.Name) || m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			continue
		}
		if embedsMethod(t, m.Name) || contains(listed, m.Name) {
			continue
		}
		names = append(names, m.Name)
	}
	return names
}

func isAccessorName(name string) bool {
	return DefaultMethodName(name) != DefaultFieldName(name)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func hasEquals(props []Property) bool {
	for _, p := range props {
		if p.Policy().InEquals() {
			return true
		}
	}
	return false
}

func checkCollisions(t reflect.Type, props []Property) error {
	var err error
	seen := make(map[string]Property, len(props))
	for _, p := range props {
		id := p.Identifier()
		if existing, ok := seen[id]; ok {
			collision := Collision{Type: t, Existing: existing, New: p}
			logger.Warn("pojomatic property collision",
				zap.Stringer("type", t),
				zap.String("property", id),
				zap.String("existing", existing.ElementName()),
				zap.String("new", p.ElementName()),
			)
			err = multierr.Append(err, collision)
			continue
		}
		seen[id] = p
	}
	return err
}
