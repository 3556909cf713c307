package property

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		typ      reflect.Type
		expected Kind
	}{
		{"bool", reflect.TypeFor[bool](), KindNarrow},
		{"int8", reflect.TypeFor[int8](), KindNarrow},
		{"uint32", reflect.TypeFor[uint32](), KindNarrow},
		{"int", reflect.TypeFor[int](), KindWide},
		{"int64", reflect.TypeFor[int64](), KindWide},
		{"uintptr", reflect.TypeFor[uintptr](), KindWide},
		{"duration", reflect.TypeFor[time.Duration](), KindWide},
		{"float32", reflect.TypeFor[float32](), KindFloating},
		{"complex128", reflect.TypeFor[complex128](), KindFloating},
		{"bytes", reflect.TypeFor[[]byte](), KindPrimitiveArray},
		{"uuid", reflect.TypeFor[uuid.UUID](), KindPrimitiveArray},
		{"strings", reflect.TypeFor[[]string](), KindReferenceArray},
		{"matrix", reflect.TypeFor[[][]int](), KindReferenceArray},
		{"string", reflect.TypeFor[string](), KindReference},
		{"pointer", reflect.TypeFor[*int](), KindReference},
		{"map", reflect.TypeFor[map[string]int](), KindReference},
		{"time", reflect.TypeFor[time.Time](), KindReference},
		{"any", reflect.TypeFor[any](), KindObject},
		{"stringer", reflect.TypeFor[interface{ String() string }](), KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.typ))
		})
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindNarrow, "narrow"},
		{KindWide, "wide"},
		{KindFloating, "floating"},
		{KindPrimitiveArray, "primitive_array"},
		{KindReferenceArray, "reference_array"},
		{KindReference, "reference"},
		{KindObject, "object"},
		{Kind(999), "unknown(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestKind_IsPrimitive(t *testing.T) {
	assert.True(t, KindNarrow.IsPrimitive())
	assert.True(t, KindWide.IsPrimitive())
	assert.True(t, KindFloating.IsPrimitive())
	assert.False(t, KindPrimitiveArray.IsPrimitive())
	assert.False(t, KindObject.IsPrimitive())
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in       string
		expected Policy
		wantErr  bool
	}{
		{"", PolicyAll, false},
		{"all", PolicyAll, false},
		{"equals", PolicyEquals | PolicyDiff, false},
		{"hashcode", PolicyEquals | PolicyDiff, false},
		{"tostring", PolicyToString, false},
		{"none", PolicyNone, false},
		{"Equals | ToString", PolicyAll, false},
		{"sometimes", PolicyNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParsePolicy(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadTag)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "none", PolicyNone.String())
	assert.Equal(t, "equals|tostring|diff", PolicyAll.String())
	assert.Equal(t, "tostring", PolicyToString.String())
	assert.True(t, PolicyAll.InDiff())
	assert.False(t, PolicyToString.InEquals())
	assert.False(t, PolicyNone.Has(PolicyNone))
}
