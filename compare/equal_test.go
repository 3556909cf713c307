package compare

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type pair struct {
	A int32
	B string
}

type hashed struct {
	id string
}

func (hashed) HashCode() int32 { return 42 }

type caseless string

func (c caseless) Equal(other caseless) bool {
	return len(c) == len(other)
}

type node struct {
	next *node
	v    int
}

func ptr[T any](v T) *T { return &v }

func values(a, b any) (reflect.Value, reflect.Value) {
	return reflect.ValueOf(a), reflect.ValueOf(b)
}

func TestNonArrayValuesEqual(t *testing.T) {
	instant := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		a, b     any
		expected bool
	}{
		{"nils", nil, nil, true},
		{"nil and value", nil, "x", false},
		{"value and nil", "x", nil, false},
		{"nil pointers of different types", (*int)(nil), (*string)(nil), true},
		{"strings", "foo", "foo", true},
		{"different strings", "foo", "bar", false},
		{"different types", int32(1), int64(1), false},
		{"nan", math.NaN(), math.NaN(), true},
		{"signed zero", 0.0, math.Copysign(0, -1), false},
		{"float32 nan", float32(math.NaN()), float32(math.NaN()), true},
		{"complex", complex(1, 2), complex(1, 2), true},
		{"pointees", ptr(3), ptr(3), true},
		{"different pointees", ptr(3), ptr(4), false},
		{"maps", map[string]int{"a": 1}, map[string]int{"a": 1}, true},
		{"maps different value", map[string]int{"a": 1}, map[string]int{"a": 2}, false},
		{"maps different key", map[string]int{"a": 1}, map[string]int{"b": 1}, false},
		{"structs", pair{1, "x"}, pair{1, "x"}, true},
		{"structs differ", pair{1, "x"}, pair{1, "y"}, false},
		{"unexported fields", hashed{"a"}, hashed{"b"}, false},
		{"time same instant", instant, instant.In(time.FixedZone("X", 3600)), true},
		{"equal method", caseless("abc"), caseless("xyz"), true},
		{"equal method false", caseless("abc"), caseless("ab"), false},
		{"proto", &timestamppb.Timestamp{Seconds: 1}, &timestamppb.Timestamp{Seconds: 1}, true},
		{"proto differ", &timestamppb.Timestamp{Seconds: 1}, &timestamppb.Timestamp{Seconds: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := values(tt.a, tt.b)
			assert.Equal(t, tt.expected, NonArrayValuesEqual(a, b))
		})
	}
}

func TestNonArrayValuesEqual_Cycle(t *testing.T) {
	a := &node{v: 1}
	a.next = a
	b := &node{v: 1}
	b.next = b
	c := &node{v: 2}
	c.next = c

	assert.True(t, NonArrayValuesEqual(reflect.ValueOf(a), reflect.ValueOf(b)))
	assert.False(t, NonArrayValuesEqual(reflect.ValueOf(a), reflect.ValueOf(c)))
}

func TestPrimitiveArraysEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     any
		expected bool
	}{
		{"equal", []int32{1, 2, 3}, []int32{1, 2, 3}, true},
		{"length", make([]int32, 3), make([]int32, 4), false},
		{"element", []int32{1, 2, 3}, []int32{1, 2, 4}, false},
		{"both nil", []byte(nil), []byte(nil), true},
		{"nil and empty", []byte(nil), []byte{}, false},
		{"element types differ", []int32{1}, []int64{1}, false},
		{"nan elements", []float64{math.NaN()}, []float64{math.NaN()}, true},
		{"arrays", [2]bool{true}, [2]bool{true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := values(tt.a, tt.b)
			assert.Equal(t, tt.expected, PrimitiveArraysEqual(a, b))
		})
	}
}

func TestReferenceArraysEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     any
		expected bool
	}{
		{"strings", []string{"a", "b"}, []string{"a", "b"}, true},
		{"strings differ", []string{"a", "b"}, []string{"a", "c"}, false},
		{"container types differ", []string{"a"}, []any{"a"}, true},
		{"deep", []any{"foo", []string{"bar"}}, []any{"foo", []string{"bar"}}, true},
		{"deep differ", []any{"foo", []string{"bar"}}, []any{"foo", []string{"baz"}}, false},
		{"nested primitive", [][]int{{1, 2}}, [][]int{{1, 2}}, true},
		{"nil elements", []any{nil}, []any{nil}, true},
		{"nil and empty", []string(nil), []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := values(tt.a, tt.b)
			assert.Equal(t, tt.expected, ReferenceArraysEqual(a, b))
		})
	}
}

func TestObjectValuesEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     any
		expected bool
	}{
		{"primitive arrays", make([]int16, 3), make([]int16, 3), true},
		{"primitive vs object array", make([]int16, 3), []string{"foo"}, false},
		{"object vs primitive array", []string{"foo"}, make([]int16, 3), false},
		{"array vs string", []string{""}, "", false},
		{"string vs array", "", []string{""}, false},
		{"array vs nil", []string{""}, nil, false},
		{"scalars", 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := values(tt.a, tt.b)
			assert.Equal(t, tt.expected, ObjectValuesEqual(a, b))
		})
	}
}

func TestFloatBits(t *testing.T) {
	assert.Equal(t, uint32(0x7fc00000), Float32Bits(float32(math.NaN())))
	assert.Equal(t, uint64(0x7ff8000000000000), Float64Bits(math.Float64frombits(0x7ff0000000000001)))
	assert.NotEqual(t, Float64Bits(0), Float64Bits(math.Copysign(0, -1)))
}
