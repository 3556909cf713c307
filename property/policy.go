package property

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/samber/lo"
)

// Policy is the set of generated operations a property takes part in.
//
//	┌──────────┬──────────┬────────────────┐
//	│ Diff (2) │ ToString │ Equals (0)     │
//	└──────────┴──────────┴────────────────┘
//
// Equals covers both equals and hashCode. Diff always follows Equals.
type Policy uint8

const (
	PolicyEquals Policy = 1 << iota
	PolicyToString
	PolicyDiff

	PolicyNone Policy = 0
	PolicyAll         = PolicyEquals | PolicyToString | PolicyDiff
)

var policyWords = map[string]Policy{
	"all":      PolicyAll,
	"equals":   PolicyEquals | PolicyDiff,
	"hashcode": PolicyEquals | PolicyDiff,
	"tostring": PolicyToString,
	"none":     PolicyNone,
}

// ParsePolicy parses a `|` separated list of policy words
// (all, equals, hashcode, tostring, none). An empty string yields PolicyAll.
func ParsePolicy(s string) (Policy, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PolicyAll, nil
	}
	var p Policy
	for _, word := range strings.Split(s, "|") {
		word = strings.ToLower(strings.TrimSpace(word))
		v, ok := policyWords[word]
		if !ok {
			return PolicyNone, errors.Wrapf(ErrBadTag, "unknown policy %q", word)
		}
		p |= v
	}
	return p.normalize(), nil
}

func (p Policy) normalize() Policy {
	if p&PolicyEquals != 0 {
		return p | PolicyDiff
	}
	return p &^ PolicyDiff
}

func (p Policy) Has(other Policy) bool {
	return other != 0 && p&other == other
}

func (p Policy) InEquals() bool   { return p.Has(PolicyEquals) }
func (p Policy) InToString() bool { return p.Has(PolicyToString) }
func (p Policy) InDiff() bool     { return p.Has(PolicyDiff) }

func (p Policy) String() string {
	if p == PolicyNone {
		return "none"
	}
	names := lo.Filter([]string{"equals", "tostring", "diff"}, func(_ string, i int) bool {
		return p&(1<<i) != 0
	})
	return strings.Join(names, "|")
}
