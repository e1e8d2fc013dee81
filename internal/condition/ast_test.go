package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingAttrs serves fixed attribute values and records every lookup.
type recordingAttrs struct {
	values  map[Attribute]string
	lookups []Attribute
}

func (r *recordingAttrs) Lookup(a Attribute) (string, bool) {
	r.lookups = append(r.lookups, a)
	v, ok := r.values[a]
	return v, ok
}

func attrs(values map[Attribute]string) *recordingAttrs {
	return &recordingAttrs{values: values}
}

func TestPredicateMatches(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		values map[Attribute]string
		want   bool
	}{
		{"exact class", `class = "Caprine"`, map[Attribute]string{Class: "Caprine"}, true},
		{"case differs", `class = "caprine"`, map[Attribute]string{Class: "Caprine"}, false},
		{"no trimming", `name = "termite"`, map[Attribute]string{Name: "termite "}, false},
		{"no globbing", `name = "term*"`, map[Attribute]string{Name: "termite"}, false},
		{"missing attribute", `class = "Caprine"`, map[Attribute]string{Name: "Caprine"}, false},
		{"empty value never matches missing", `class = ""`, map[Attribute]string{}, false},
		{"id", `id = "0x00000007"`, map[Attribute]string{ID: "0x00000007"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParse(tt.query).Matches(attrs(tt.values))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAndShortCircuits(t *testing.T) {
	a := attrs(map[Attribute]string{Class: "xterm", Name: "mutt"})
	assert.False(t, MustParse(`class = "URxvt" and name = "mutt"`).Matches(a))
	assert.Equal(t, []Attribute{Class}, a.lookups, "right operand must not be evaluated")

	a = attrs(map[Attribute]string{Class: "URxvt", Name: "mutt"})
	assert.True(t, MustParse(`class = "URxvt" and name = "mutt"`).Matches(a))
	assert.Equal(t, []Attribute{Class, Name}, a.lookups)
}

func TestOrShortCircuits(t *testing.T) {
	a := attrs(map[Attribute]string{Class: "firefox"})
	assert.True(t, MustParse(`class = "firefox" or name = "x"`).Matches(a))
	assert.Equal(t, []Attribute{Class}, a.lookups, "right operand must not be evaluated")

	a = attrs(map[Attribute]string{Name: "x"})
	assert.True(t, MustParse(`class = "firefox" or name = "x"`).Matches(a))
	assert.Equal(t, []Attribute{Class, Name}, a.lookups)
}

func TestUnresolvedAttributeFalsifiesConjunction(t *testing.T) {
	a := attrs(map[Attribute]string{Name: "mutt"})
	assert.False(t, MustParse(`name = "mutt" and class = "URxvt"`).Matches(a))
	assert.True(t, MustParse(`name = "mutt" and class = "URxvt" or name = "mutt"`).Matches(a))
}

func TestEq(t *testing.T) {
	assert.Equal(t, MustParse(`class = "Caprine"`), Eq(Class, "Caprine"))
	assert.Equal(t, `name = "a \"b\""`, Eq(Name, `a "b"`).String())
}

func TestAttributesOf(t *testing.T) {
	c := MustParse(`name = "a" or (class = "b" and name = "c") or id = "0x1"`)
	assert.Equal(t, []Attribute{Name, Class, ID}, AttributesOf(c))
	assert.Equal(t, []Attribute{Class}, AttributesOf(Eq(Class, "x")))
}

func TestLookupAttribute(t *testing.T) {
	for _, a := range []Attribute{Class, Name, ID} {
		got, ok := LookupAttribute(a.String())
		assert.True(t, ok, a.String())
		assert.Equal(t, a, got)
	}
	_, ok := LookupAttribute("title")
	assert.False(t, ok)
	assert.Equal(t, "attribute(9)", Attribute(9).String())
}
