package ahocorasick

import (
	"strings"

	"github.com/solstice-go/ahocorasick/acerrors"
	"github.com/solstice-go/ahocorasick/acopts"
)

// Censor wraps an Automaton and adds a censoring transformation on top
// of its search. It holds no state of its own beyond the embedded
// Automaton, whose Insert/Remove/Build/Search methods it exposes
// unchanged through embedding.
type Censor struct {
	*Automaton
}

// NewCensor returns a Censor backed by a fresh, empty Automaton.
func NewCensor(opts ...acopts.Option) *Censor {
	return &Censor{Automaton: New(opts...)}
}

func (c *Censor) requireNonNil() {
	if c == nil || c.Automaton == nil {
		panic(acerrors.ErrNilCensor)
	}
}

// Filter runs the automaton's search over text and replaces every
// covered code point with one copy of replacement, merging overlapping
// or nested occurrences into a single censored region. The empty
// pattern, if present, contributes no coverage.
func (c *Censor) Filter(text, replacement string) string {
	c.requireNonNil()

	runes := []rune(text)
	matches := c.Search(text)

	starts := make(map[int]int, len(matches))
	for _, m := range matches {
		if m.Length == 0 {
			continue
		}
		if cur, ok := starts[m.Start]; !ok || m.Length > cur {
			starts[m.Start] = m.Length
		}
	}

	var sb strings.Builder
	j := 0
	for j < len(runes) {
		length, covered := starts[j]
		if !covered {
			sb.WriteRune(runes[j])
			j++
			continue
		}

		sb.WriteString(replacement)
		end := j + length
		j++
		for j < end {
			if l2, ok := starts[j]; ok {
				if extended := j + l2; extended > end {
					end = extended
				}
			}
			sb.WriteString(replacement)
			j++
		}
	}

	c.tracer.Filter(text, false)
	return sb.String()
}

// FilterIgnore behaves like Filter, except that code points in ignore
// are transparent to matching (the trie walk does not consume a
// transition for them) while still being copied through to the output
// verbatim, even inside a censored region. The empty pattern never
// contributes coverage here, matching Filter.
func (c *Censor) FilterIgnore(text, replacement string, ignore map[rune]struct{}) string {
	c.requireNonNil()

	runes := []rune(text)
	indices := c.scanIgnoring(runes, ignore)

	tokens := make([]string, 0, len(runes))
	j := len(runes) - 1
	for j >= 0 {
		ch := runes[j]
		if _, skip := ignore[ch]; skip {
			tokens = append(tokens, string(ch))
			j--
			continue
		}

		length, covered := indices[j]
		if !covered {
			tokens = append(tokens, string(ch))
			j--
			continue
		}

		tokens = append(tokens, replacement)
		remaining := length
		k := 1
		j--
		for k < remaining && j >= 0 {
			ch2 := runes[j]
			if _, skip2 := ignore[ch2]; skip2 {
				tokens = append(tokens, string(ch2))
				j--
				continue
			}
			if otherLen, ok := indices[j]; ok {
				if extended := otherLen + k; extended > remaining {
					remaining = extended
				}
			}
			tokens = append(tokens, replacement)
			k++
			j--
		}
	}

	for l, r := 0, len(tokens)-1; l < r; l, r = l+1, r-1 {
		tokens[l], tokens[r] = tokens[r], tokens[l]
	}

	c.tracer.Filter(text, true)
	return strings.Join(tokens, "")
}

// scanIgnoring walks runes exactly like the automaton's search loop, but
// characters in ignore advance the cursor without consuming a trie
// transition. It returns, for every real text index that is the last
// (non-ignored) character of some match, the length in matched (not
// ignored) code points of the longest pattern ending there. Zero-length
// matches (the empty pattern) are never recorded.
func (c *Censor) scanIgnoring(runes []rune, ignore map[rune]struct{}) map[int]int {
	c.rlock()
	defer c.runlock()

	indices := make(map[int]int)

	n := c.root
	i := 0
	for i < len(runes) {
		ch := runes[i]
		if _, skip := ignore[ch]; skip {
			i++
			continue
		}

		cur := c.arena.Get(n)
		if child, ok := cur.children[ch]; ok {
			n = child
			pos := i
			i++

			cn := c.arena.Get(n)
			for outID := range cn.outputSet {
				outNode := c.arena.Get(outID)
				if outNode.length == 0 {
					continue
				}
				if cur2, ok2 := indices[pos]; !ok2 || outNode.length > cur2 {
					indices[pos] = outNode.length
				}
			}
		} else if n == c.root {
			i++
		} else {
			n = c.arena.Get(n).suffixLink
		}
	}

	return indices
}
