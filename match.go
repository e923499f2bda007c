package aoc

import (
	"cmp"
	"slices"
	"sync"

	"tailscale.com/util/deephash"
)

// Match is an occurrence of a pattern in a string.
type Match struct {
	Pattern    int // index into the patterns the Matcher was built with
	Start, End int // byte offsets; s[Start:End] is the pattern
}

type acNode struct {
	next map[byte]int
	fail int
	out  []int // patterns ending here, including those reached via fail
}

// Matcher finds all occurrences of a fixed set of patterns in a string
// in a single pass, using an Aho–Corasick automaton.
type Matcher struct {
	patterns []string
	nodes    []acNode // nodes[0] is the root
}

// NewMatcher builds a Matcher for patterns. It panics if any pattern is
// empty.
func NewMatcher(patterns ...string) *Matcher {
	m := &Matcher{
		patterns: slices.Clone(patterns),
		nodes:    make([]acNode, 1),
	}
	for i, p := range patterns {
		if p == "" {
			panic("aoc: empty pattern")
		}
		n := 0
		for j := 0; j < len(p); j++ {
			nx, ok := m.nodes[n].next[p[j]]
			if !ok {
				nx = len(m.nodes)
				m.nodes = append(m.nodes, acNode{})
				InitMap(&m.nodes[n].next)
				m.nodes[n].next[p[j]] = nx
			}
			n = nx
		}
		m.nodes[n].out = append(m.nodes[n].out, i)
	}

	// Fail links point at the longest proper suffix that is also in the
	// trie. Breadth first so a node's parent is always done before it.
	q := NewQueue[int]()
	for _, child := range m.nodes[0].next {
		q.Push(child)
	}
	q.While(func(n int) bool {
		for c, child := range m.nodes[n].next {
			q.Push(child)
			f := m.nodes[n].fail
			for {
				if nx, ok := m.nodes[f].next[c]; ok {
					m.nodes[child].fail = nx
					break
				}
				if f == 0 {
					break
				}
				f = m.nodes[f].fail
			}
			if fo := m.nodes[m.nodes[child].fail].out; len(fo) > 0 {
				out := slices.Clip(m.nodes[child].out)
				m.nodes[child].out = append(out, fo...)
			}
		}
		return true
	})
	return m
}

// Patterns returns the patterns m was built with.
func (m *Matcher) Patterns() []string {
	return slices.Clone(m.patterns)
}

// ForOverlapping calls f for every occurrence of every pattern in s,
// overlapping ones included. Matches are reported by ascending Start;
// ties go to the shorter match, then the lower pattern index.
func (m *Matcher) ForOverlapping(s string, f func(Match) (keepGoing bool)) {
	var found []Match
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		for {
			if nx, ok := m.nodes[n].next[c]; ok {
				n = nx
				break
			}
			if n == 0 {
				break
			}
			n = m.nodes[n].fail
		}
		for _, p := range m.nodes[n].out {
			found = append(found, Match{
				Pattern: p,
				Start:   i + 1 - len(m.patterns[p]),
				End:     i + 1,
			})
		}
	}
	// The automaton reports by end offset.
	slices.SortFunc(found, func(a, b Match) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		if c := cmp.Compare(a.End, b.End); c != 0 {
			return c
		}
		return cmp.Compare(a.Pattern, b.Pattern)
	})
	for _, mt := range found {
		if !f(mt) {
			return
		}
	}
}

// FindAllOverlapping returns every match ForOverlapping would report.
func (m *Matcher) FindAllOverlapping(s string) []Match {
	var out []Match
	m.ForOverlapping(s, func(mt Match) bool {
		out = append(out, mt)
		return true
	})
	return out
}

var (
	matchersMu sync.Mutex
	matchers   map[deephash.Sum]*Matcher // keyed by hash of the pattern list
)

// CompileMatcher is like NewMatcher but reuses the Matcher from an
// earlier call with the same patterns. It is safe for concurrent use.
func CompileMatcher(patterns []string) *Matcher {
	key := deephash.Hash(&patterns)
	matchersMu.Lock()
	defer matchersMu.Unlock()
	if m, ok := matchers[key]; ok {
		return m
	}
	m := NewMatcher(patterns...)
	InitMap(&matchers)
	matchers[key] = m
	return m
}
