package compare

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestStringHash(t *testing.T) {
	tests := []struct {
		in       string
		expected int32
	}{
		{"", 0},
		{"a", 97},
		{"foo", 101574},
		{"bar", 97299},
		{"hello", 99162322},
		{"world", 113318802},
		// суррогатная пара: U+1F600 → D83D DE00
		{"\U0001F600", 31*0xD83D + 0xDE00},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, StringHash(tt.in))
		})
	}
}

func TestFoldInt64(t *testing.T) {
	assert.Equal(t, int32(5), FoldInt64(5))
	assert.Equal(t, int32(0), FoldInt64(-1))
	assert.Equal(t, int32(1), FoldInt64(1<<32))
	assert.Equal(t, int32(-2147483648), FoldInt64(math.MinInt64))
}

func TestBoolHash(t *testing.T) {
	assert.Equal(t, int32(1231), BoolHash(true))
	assert.Equal(t, int32(1237), BoolHash(false))
}

func TestValueHash(t *testing.T) {
	instant := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		value    any
		expected int32
	}{
		{"nil", nil, 0},
		{"nil pointer", (*int)(nil), 0},
		{"true", true, 1231},
		{"int8", int8(-3), -3},
		{"uint16", uint16(65535), 65535},
		{"int64", int64(5), 5},
		{"float32", float32(1), int32(math.Float32bits(1))},
		{"float64 nan", math.NaN(), FoldInt64(0x7ff8000000000000)},
		{"string", "foo", 101574},
		{"pointer", ptr("foo"), 101574},
		{"time", instant, FoldInt64(instant.UnixNano())},
		{"time in other zone", instant.In(time.FixedZone("X", 3600)), FoldInt64(instant.UnixNano())},
		{"hash method", hashed{}, 42},
		{"struct", pair{A: 1, B: "a"}, 31*(31*1+1) + 97},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValueHash(reflect.ValueOf(tt.value)))
		})
	}
}

func TestValueHash_MapIsOrderIndependent(t *testing.T) {
	m := map[string]int32{"a": 1, "b": 2}
	expected := (StringHash("a") ^ 1) + (StringHash("b") ^ 2)
	assert.Equal(t, expected, ValueHash(reflect.ValueOf(m)))
}

func TestValueHash_ProtoConsistentWithEqual(t *testing.T) {
	a := &timestamppb.Timestamp{Seconds: 5, Nanos: 7}
	b := &timestamppb.Timestamp{Seconds: 5, Nanos: 7}
	c := &timestamppb.Timestamp{Seconds: 6, Nanos: 7}

	assert.Equal(t, ValueHash(reflect.ValueOf(a)), ValueHash(reflect.ValueOf(b)))
	assert.NotEqual(t, ValueHash(reflect.ValueOf(a)), ValueHash(reflect.ValueOf(c)))
}

func TestValueHash_ProtoFloats(t *testing.T) {
	tests := []struct {
		name string
		a, b any
	}{
		{
			"nan payloads",
			wrapperspb.Double(math.NaN()),
			wrapperspb.Double(math.Float64frombits(0x7ff8000000000001)),
		},
		{
			"float nan payloads",
			wrapperspb.Float(float32(math.NaN())),
			wrapperspb.Float(math.Float32frombits(0x7fc00001)),
		},
		{
			"negative zero",
			&structpb.ListValue{Values: []*structpb.Value{structpb.NewNumberValue(math.Copysign(0, -1))}},
			&structpb.ListValue{Values: []*structpb.Value{structpb.NewNumberValue(0)}},
		},
		{
			"map order",
			&structpb.Struct{Fields: map[string]*structpb.Value{
				"a": structpb.NewStringValue("x"),
				"b": structpb.NewBoolValue(true),
			}},
			&structpb.Struct{Fields: map[string]*structpb.Value{
				"b": structpb.NewBoolValue(true),
				"a": structpb.NewStringValue("x"),
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			va, vb := reflect.ValueOf(tt.a), reflect.ValueOf(tt.b)
			require.True(t, NonArrayValuesEqual(va, vb))
			assert.Equal(t, ValueHash(va), ValueHash(vb))
		})
	}
}

func TestProtoHash(t *testing.T) {
	// field number, then value: seconds (1) before nanos (2)
	ts := &timestamppb.Timestamp{Seconds: 5, Nanos: 7}
	expected := HashMultiplier*(HashMultiplier*(HashMultiplier*(HashMultiplier*HashSeed+1)+5)+2) + 7
	assert.Equal(t, expected, ProtoHash(ts.ProtoReflect()))

	assert.Equal(t, HashSeed, ProtoHash((&timestamppb.Timestamp{}).ProtoReflect()))
	assert.Equal(t, int32(0), ProtoHash((*timestamppb.Timestamp)(nil).ProtoReflect()))
}

func TestValueHash_Cycle(t *testing.T) {
	n := &node{v: 1}
	n.next = n
	assert.NotPanics(t, func() {
		ValueHash(reflect.ValueOf(n))
	})
}

func TestArrayHash(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected int32
	}{
		{"nil slice", []int32(nil), 0},
		{"empty", []int32{}, 1},
		{"int32 zeros", make([]int32, 2), 961},
		{"bool zeros", make([]bool, 2), 31*(31+1237) + 1237},
		{"float64 zeros", [2]float64{}, 961},
		{"int64", []int64{1 << 32}, 31 + 1},
		{"strings", []string{"foo", "bar"}, 31*(31+101574) + 97299},
		{"nested", [][]int32{{1}, nil}, 31*(31+(31+1)) + 0},
		{"objects", []any{"foo", nil}, 31 * (31 + 101574)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ArrayHash(reflect.ValueOf(tt.value)))
		})
	}
}

func TestObjectHash_DetectsArrays(t *testing.T) {
	var v any = []int32{1, 2}
	assert.Equal(t, PrimitiveArrayHash(reflect.ValueOf(v)), ObjectHash(reflect.ValueOf(&v).Elem()))
	assert.Equal(t, int32(0), ObjectHash(reflect.ValueOf((*any)(nil))))
}
