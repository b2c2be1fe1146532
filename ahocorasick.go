// Package ahocorasick implements a dynamic multi-pattern string matching
// automaton: a code-point trie augmented with failure (suffix) links and
// aggregated output sets, supporting incremental insertion and deletion
// of patterns while preserving correct search semantics after every
// mutation.
//
// The automaton is pure and in-memory. It never fails: absent patterns
// are silent no-ops on removal, and search always returns, possibly with
// an empty result. By default an *Automaton is safe for use by a single
// goroutine at a time; pass acopts.WithRWGuard to New for the classic
// readers-writer discipline instead.
package ahocorasick

import (
	"sync"

	"github.com/solstice-go/ahocorasick/acerrors"
	"github.com/solstice-go/ahocorasick/acopts"
	"github.com/solstice-go/ahocorasick/actrace"
	"github.com/solstice-go/ahocorasick/internal/arena"
)

// noLink is the sentinel suffixLink value meaning "no link" (root only).
const noLink int32 = -1

// node is a single trie state: an edge map keyed by code point, a
// failure (suffix) link, the transitively-closed set of pattern-terminal
// nodes reachable via suffix links, and the code-point length of the
// pattern terminating here (0 if none).
type node struct {
	children   map[rune]int32
	suffixLink int32
	outputSet  map[int32]struct{}
	length     int
}

// Match is a single pattern occurrence: Start and Length are measured in
// code points, not bytes.
type Match struct {
	Start  int
	Length int
}

// Automaton is the keyword trie with failure links and output sets. The
// zero value is not ready for use; construct one with New.
type Automaton struct {
	arena *arena.Arena[node]
	root  int32

	hasEmptyPattern bool

	guard  *sync.RWMutex
	tracer *actrace.Tracer
}

// New returns an empty automaton with no patterns.
func New(opts ...acopts.Option) *Automaton {
	cfg := acopts.Apply(opts)

	capacity := cfg.InitialCapacity
	if capacity <= 0 {
		capacity = 1
	}

	a := &Automaton{
		arena: arena.NewWithCapacity[node](capacity),
	}
	if cfg.RWGuard {
		a.guard = &sync.RWMutex{}
	}
	a.tracer = actrace.New(cfg.TraceHandler)

	rootID := a.arena.Alloc()
	root := a.arena.Get(rootID)
	root.suffixLink = noLink
	a.root = rootID

	return a
}

func (a *Automaton) requireNonNil() {
	if a == nil {
		panic(acerrors.ErrNilAutomaton)
	}
}

func (a *Automaton) lock() {
	if a.guard != nil {
		a.guard.Lock()
	}
}

func (a *Automaton) unlock() {
	if a.guard != nil {
		a.guard.Unlock()
	}
}

func (a *Automaton) rlock() {
	if a.guard != nil {
		a.guard.RLock()
	}
}

func (a *Automaton) runlock() {
	if a.guard != nil {
		a.guard.RUnlock()
	}
}

// Insert adds word to the dictionary, rebuilding failure and output
// links immediately afterward. Inserting a pattern already present is a
// no-op beyond the link rebuild.
func (a *Automaton) Insert(word string) {
	a.requireNonNil()
	a.lock()
	defer a.unlock()

	a.insertTrie(word)
	a.rebuildLinks()
	a.tracer.Insert(word)
}

// Build inserts every word in words, rebuilding links exactly once at
// the end, equivalent to but cheaper than inserting them one at a time.
func (a *Automaton) Build(words []string) {
	a.requireNonNil()
	a.lock()
	defer a.unlock()

	for _, w := range words {
		a.insertTrie(w)
	}
	a.rebuildLinks()
	a.tracer.Build(len(words))
}

// Remove deletes word from the dictionary. Removing an absent pattern is
// a silent no-op.
func (a *Automaton) Remove(word string) {
	a.requireNonNil()
	a.lock()
	defer a.unlock()

	if word == "" {
		a.hasEmptyPattern = false
	} else {
		a.deleteTrie(a.root, []rune(word), 0)
	}
	a.clearLinks()
	a.rebuildLinks()
	a.tracer.Remove(word)
}

// Search reports every occurrence of every currently-inserted pattern in
// text, in the order in which each occurrence's end position is reached
// during the left-to-right scan.
func (a *Automaton) Search(text string) []Match {
	a.requireNonNil()
	a.rlock()
	defer a.runlock()

	var out []Match

	root := a.arena.Get(a.root)
	if len(root.outputSet) > 0 {
		out = append(out, Match{Start: 0, Length: 0})
	}

	runes := []rune(text)
	n := a.root
	i := 0
	for i < len(runes) {
		c := runes[i]
		cur := a.arena.Get(n)
		if child, ok := cur.children[c]; ok {
			n = child
			i++
			cn := a.arena.Get(n)
			for outID := range cn.outputSet {
				outNode := a.arena.Get(outID)
				out = append(out, Match{Start: i - outNode.length, Length: outNode.length})
			}
		} else if n == a.root {
			i++
		} else {
			n = a.arena.Get(n).suffixLink
		}
	}

	a.tracer.Search(text, len(out))
	return out
}

// insertTrie walks word from the root, creating edges as needed, and
// marks the terminal node with word's code-point length and its own id
// in its output set. It does not touch links; callers must follow with
// rebuildLinks.
func (a *Automaton) insertTrie(word string) {
	cur := a.root
	for _, c := range word {
		child, ok := a.childOf(cur, c)
		if !ok {
			child = a.arena.Alloc()
			cn := a.arena.Get(child)
			cn.suffixLink = noLink
			a.setChild(cur, c, child)
		}
		cur = child
	}

	n := a.arena.Get(cur)
	n.length = len([]rune(word))
	if n.outputSet == nil {
		n.outputSet = make(map[int32]struct{}, 1)
	}
	n.outputSet[cur] = struct{}{}

	if cur == a.root {
		a.hasEmptyPattern = true
	}
}

func (a *Automaton) childOf(id int32, c rune) (int32, bool) {
	n := a.arena.Get(id)
	if n.children == nil {
		return 0, false
	}
	child, ok := n.children[c]
	return child, ok
}

func (a *Automaton) setChild(id int32, c rune, child int32) {
	n := a.arena.Get(id)
	if n.children == nil {
		n.children = make(map[rune]int32)
	}
	n.children[c] = child
}

// deleteTrie recursively descends the trie along word, clearing the
// terminal node's length flag and pruning childless non-terminal edges
// on the way back up. It returns whether the node at id became a
// childless non-terminal leaf that its parent should prune.
func (a *Automaton) deleteTrie(id int32, word []rune, depth int) bool {
	if depth == len(word) {
		n := a.arena.Get(id)
		if n.length == 0 {
			return false
		}
		n.length = 0
		return len(n.children) == 0
	}

	c := word[depth]
	n := a.arena.Get(id)
	child, ok := n.children[c]
	if !ok {
		return false
	}

	shouldPruneChild := a.deleteTrie(child, word, depth+1)
	if !shouldPruneChild {
		return false
	}

	n = a.arena.Get(id)
	delete(n.children, c)
	a.arena.Free(child)
	return len(n.children) == 0 && n.length == 0
}

// rebuildLinks recomputes suffix links and unions output sets over the
// current trie, breadth-first from root's children. Root's own output
// set is never touched here; it is only ever set directly by insertTrie
// (empty pattern) or reset by clearLinks.
func (a *Automaton) rebuildLinks() {
	root := a.arena.Get(a.root)
	queue := make([]int32, 0, len(root.children))
	for _, childID := range root.children {
		cn := a.arena.Get(childID)
		cn.suffixLink = a.root
		if len(root.outputSet) > 0 {
			if cn.outputSet == nil {
				cn.outputSet = make(map[int32]struct{}, len(root.outputSet))
			}
			for k := range root.outputSet {
				cn.outputSet[k] = struct{}{}
			}
		}
		queue = append(queue, childID)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		curNode := a.arena.Get(cur)
		curSuffix := curNode.suffixLink
		children := curNode.children

		for key, child := range children {
			queue = append(queue, child)

			fail := curSuffix
			childSuffix := a.root
			for fail != noLink {
				failNode := a.arena.Get(fail)
				if fc, ok := failNode.children[key]; ok {
					childSuffix = fc
					break
				}
				fail = failNode.suffixLink
			}

			cn := a.arena.Get(child)
			cn.suffixLink = childSuffix

			suffixNode := a.arena.Get(childSuffix)
			if len(suffixNode.outputSet) > 0 {
				if cn.outputSet == nil {
					cn.outputSet = make(map[int32]struct{}, len(suffixNode.outputSet))
				}
				for k := range suffixNode.outputSet {
					cn.outputSet[k] = struct{}{}
				}
			}
		}
	}
}

// clearLinks resets suffix links and output sets across the whole trie
// before a rebuild following a deletion, since deletion can shrink an
// output set and rebuildLinks only ever grows one.
func (a *Automaton) clearLinks() {
	stack := []int32{a.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := a.arena.Get(id)
		n.suffixLink = noLink
		n.outputSet = nil

		switch {
		case id == a.root:
			if a.hasEmptyPattern {
				n.outputSet = map[int32]struct{}{id: {}}
			}
		case n.length != 0:
			n.outputSet = map[int32]struct{}{id: {}}
		}

		for _, child := range n.children {
			stack = append(stack, child)
		}
	}
}
