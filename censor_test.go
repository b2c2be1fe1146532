package ahocorasick

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterMergesOverlappingOccurrences(t *testing.T) {
	c := NewCensor()
	c.Build([]string{"apple", "app"})

	require.Equal(t, "*****", c.Filter("apple", "*"))
	require.Equal(t, "***", c.Filter("app", "*"))
	require.Equal(t, "bat", c.Filter("bat", "*"))
	require.Equal(t, "bat*****", c.Filter("batapple", "*"))
	require.Equal(t, "", c.Filter("", "*"))

	c.Insert("bat")
	require.Equal(t, "***", c.Filter("bat", "*"))
	require.Equal(t, "********", c.Filter("batapple", "*"))
	require.Equal(t, "***a*****", c.Filter("bataapple", "*"))
	require.Equal(t, "***ap*****", c.Filter("batapapple", "*"))
}

func TestFilterIgnoresEmptyPatternCoverage(t *testing.T) {
	c := NewCensor()
	c.Build([]string{"apple", "app", "bat"})
	c.Insert("")

	require.Equal(t, "*****", c.Filter("apple", "*"))
	require.Equal(t, "***", c.Filter("app", "*"))
	require.Equal(t, "***", c.Filter("bat", "*"))
	require.Equal(t, "", c.Filter("", "*"))
}

func TestFilterEmptyReplacementElidesCoveredRegion(t *testing.T) {
	c := NewCensor()
	c.Build([]string{"bat"})
	require.Equal(t, "apple", c.Filter("batapple", ""))
}

func TestFilterIgnoreWorkedExample(t *testing.T) {
	c := NewCensor()
	c.Insert("135")

	ignore := map[rune]struct{}{'2': {}, '4': {}, '6': {}}
	require.Equal(t, "*2*4*6", c.FilterIgnore("123456", "*", ignore))
}

func TestFilterIgnoreNoIgnoredCharactersMatchesFilter(t *testing.T) {
	c := NewCensor()
	c.Build([]string{"apple", "app", "bat"})

	require.Equal(t, c.Filter("bataapple", "*"), c.FilterIgnore("bataapple", "*", nil))
}

func TestFilterIgnoreSkipsEmptyPattern(t *testing.T) {
	c := NewCensor()
	c.Insert("135")
	c.Insert("")

	ignore := map[rune]struct{}{'2': {}, '4': {}, '6': {}}
	require.Equal(t, "*2*4*6", c.FilterIgnore("123456", "*", ignore))
}

func TestFilterIgnorePassesThroughUncoveredIgnoredChars(t *testing.T) {
	c := NewCensor()
	c.Insert("ab")

	ignore := map[rune]struct{}{'-': {}}
	require.Equal(t, "x-y", c.FilterIgnore("x-y", "*", ignore))
}

func TestFilterIgnoreExtendsRegionAcrossIgnoredChars(t *testing.T) {
	c := NewCensor()
	c.Insert("ab")
	c.Insert("bc")

	// "a-b-c": ignoring '-', matching sees "abc", so "ab" and "bc" both
	// match and share the middle 'b'; the merged region covers all of
	// a, b, c while the ignored '-' characters pass through verbatim.
	ignore := map[rune]struct{}{'-': {}}
	require.Equal(t, "*-*-*", c.FilterIgnore("a-b-c", "*", ignore))
}

func TestNilCensorPanics(t *testing.T) {
	var c *Censor
	require.Panics(t, func() { c.Filter("x", "*") })
}
