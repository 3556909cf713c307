package compare

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type base struct {
	ID int
}

type derived struct {
	base
	Name string
}

func TestIsNull(t *testing.T) {
	assert.True(t, IsNull(nil))
	assert.True(t, IsNull((*base)(nil)))
	assert.True(t, IsNull([]int(nil)))
	assert.False(t, IsNull(base{}))
	assert.False(t, IsNull(&base{}))
	assert.False(t, IsNull(0))
}

func TestCheckNotNull(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrNullArgument)
		assert.EqualError(t, err, "instance is null")
	}()
	CheckNotNull((*base)(nil), "instance")
}

func TestCheckNotNull_Addressable(t *testing.T) {
	v := CheckNotNull(base{ID: 1}, "instance")
	assert.True(t, v.CanAddr())
	assert.Equal(t, reflect.TypeFor[base](), v.Type())

	b := &base{ID: 2}
	v = CheckNotNull(b, "instance")
	v.Field(0).SetInt(3)
	assert.Equal(t, 3, b.ID)
}

func TestSamePointer(t *testing.T) {
	b := &base{}
	assert.True(t, SamePointer(b, b))
	assert.False(t, SamePointer(b, &base{}))
	assert.False(t, SamePointer(*b, *b))
	assert.False(t, SamePointer(nil, nil))
}

func TestCheckClass(t *testing.T) {
	expected := reflect.TypeFor[base]()
	assert.NoError(t, CheckClass(reflect.ValueOf(base{}), expected, "instance"))
	assert.NoError(t, CheckClass(reflect.ValueOf(derived{}), expected, "instance"))

	err := CheckClass(reflect.ValueOf("wrong"), expected, "other")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.EqualError(t, err, "other has type string which is not a subtype of compare.base")
}

func TestExpose(t *testing.T) {
	v := reflect.ValueOf(&hashed{id: "x"}).Elem().Field(0)
	require.False(t, v.CanInterface())
	assert.Equal(t, "x", Expose(v).Interface())
}
