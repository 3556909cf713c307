package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoDifferences(t *testing.T) {
	d := NoDifferences()
	assert.True(t, d.AreEqual())
	assert.Empty(t, d.Differences())
	assert.Equal(t, "no differences", d.String())
	assert.Same(t, NoDifferences(), NoDifferences())
}

func TestNullDifferences(t *testing.T) {
	from := FromNull{Value: "x"}
	assert.False(t, from.AreEqual())
	assert.Empty(t, from.Differences())
	assert.Equal(t, "null is different than the object {x}", from.String())

	to := ToNull{Value: []int{1, 2}}
	assert.False(t, to.AreEqual())
	assert.Equal(t, "the object {[1, 2]} is different than null", to.String())
}

func TestPropertyDifferences(t *testing.T) {
	_, err := NewPropertyDifferences(nil)
	assert.ErrorIs(t, err, ErrEmptyDifferences)

	d, err := NewPropertyDifferences([]ValueDifference{
		NewValueDifference("s", "this", "THIS"),
		NewValueDifference("n", nil, 2),
	})
	require.NoError(t, err)
	assert.False(t, d.AreEqual())
	assert.Equal(t, "[s: {this} versus {THIS}, n: {null} versus {2}]", d.String())

	diffs := d.Differences()
	require.Len(t, diffs, 2)
	assert.Equal(t, "s", diffs[0].PropertyName())
	assert.Equal(t, "this", diffs[0].LeftValue())
	assert.Equal(t, "THIS", diffs[0].RightValue())
	assert.Equal(t, NewValueDifference("n", nil, 2), d.Values()[1])
}
