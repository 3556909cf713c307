package marker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		value   string
		markers map[string]string
	}{
		{"", "", map[string]string{}},
		{"name", "name", map[string]string{}},
		{"-", "-", map[string]string{}},
		{"name?policy=equals", "name", map[string]string{"policy": "equals"}},
		{"?auto=fields;Format=json", "", map[string]string{"auto": "fields", "format": "json"}},
		{"x?broken;policy = all ", "x", map[string]string{"policy": "all"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m := Parse(tt.in)
			assert.Equal(t, tt.value, m.Value())
			assert.Equal(t, tt.markers, m.Markers())
		})
	}
}

func TestGetList(t *testing.T) {
	m := Parse("?methods=GetA| GetB||GetC;empty=")
	assert.Equal(t, []string{"GetA", "GetB", "GetC"}, m.GetList("methods"))
	assert.Nil(t, m.GetList("empty"))
	assert.Nil(t, m.GetList("missing"))
	assert.True(t, m.HasMarker("empty"))
}

func TestStringIsSorted(t *testing.T) {
	m := Parse("name?b=2;a=1")
	assert.Equal(t, "name?a=1;b=2", m.String())
	assert.Equal(t, "plain", Parse("plain").String())
}

func TestCopyIsIndependent(t *testing.T) {
	m := Parse("n?a=1")
	c := m.Copy()
	c.Markers()["a"] = "2"
	assert.Equal(t, "1", m.GetMarker("a"))
}
