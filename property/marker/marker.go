// Package marker parses the value of a `pojo` struct tag.
//
// A tag value is a name optionally followed by markers:
//
//	name?key=value;other=a|b
//
// The name part may be empty (`?auto=fields`), list values are separated by
// ValueListSeparator.
package marker

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

const MarkerSeparator = "?"
const ValueListSeparator = "|"
const kvSeparator = "="
const valuesSeparator = ";"

type StringMarker struct {
	value   string
	markers map[string]string
}

func New(s string, mp map[string]string) StringMarker {
	return StringMarker{value: s, markers: mp}
}

func (sm StringMarker) Markers() map[string]string {
	return sm.markers
}

func (sm StringMarker) Value() string {
	return sm.value
}

func (sm StringMarker) HasMarker(key string) bool {
	_, ok := sm.markers[key]
	return ok
}

func (sm StringMarker) Copy() StringMarker {
	return StringMarker{
		value:   sm.value,
		markers: lo.Assign(map[string]string{}, sm.markers),
	}
}

func (sm StringMarker) GetMarker(key string) string {
	return sm.markers[key]
}

// GetList splits a marker value on ValueListSeparator, dropping blanks.
func (sm StringMarker) GetList(key string) []string {
	raw, ok := sm.markers[key]
	if !ok || raw == "" {
		return nil
	}
	parts := lo.Map(strings.Split(raw, ValueListSeparator), func(p string, _ int) string {
		return strings.TrimSpace(p)
	})
	return lo.Compact(parts)
}

// Keys returns marker keys in sorted order.
func (sm StringMarker) Keys() []string {
	keys := lo.Keys(sm.markers)
	sort.Strings(keys)
	return keys
}

func (sm StringMarker) String() string {
	if len(sm.markers) == 0 {
		return sm.Value()
	}
	kvs := make([]string, 0, len(sm.markers))
	for _, k := range sm.Keys() {
		kvs = append(kvs, k+kvSeparator+sm.markers[k])
	}
	return strings.Join([]string{sm.Value(), strings.Join(kvs, valuesSeparator)}, MarkerSeparator)
}

func Parse(s string) StringMarker {
	markers := make(map[string]string)
	value, rest, found := strings.Cut(s, MarkerSeparator)
	value = strings.TrimSpace(value)
	if !found {
		return StringMarker{
			value:   value,
			markers: markers,
		}
	}
	for _, maker := range strings.Split(rest, valuesSeparator) {
		k, v, ok := strings.Cut(maker, kvSeparator)
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			continue
		}
		markers[strings.ToLower(k)] = strings.TrimSpace(v)
	}
	return StringMarker{
		value:   value,
		markers: markers,
	}
}
