package unshackled

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSharesCellsForPrefixCollapsedValues(t *testing.T) {
	tree := NewMemoryTree()

	// Two TNums with different explicit tail widths but the same
	// represented value (appending the head trit changes nothing) must
	// resolve to the identical Cell.
	short := &TNum{head: 0, tail: []trit{1}}
	long := &TNum{head: 0, tail: []trit{1, 0, 0, 0}}

	c1 := tree.Resolve(short)
	c2 := tree.Resolve(long)
	assert.Same(t, c1, c2)
}

func TestResolveDistinguishesDifferentValues(t *testing.T) {
	tree := NewMemoryTree()
	a := &TNum{head: 0, tail: []trit{1}}
	b := &TNum{head: 0, tail: []trit{2}}
	assert.NotSame(t, tree.Resolve(a), tree.Resolve(b))
}

func TestAdvanceRecordsForwardLink(t *testing.T) {
	tree := NewMemoryTree()
	n := FromUint64(41)
	first := tree.Resolve(n)
	Advance(tree, n)
	require.Equal(t, uint64(42), uint64(n.Unicode()))
	second := n.memptr
	assert.Same(t, second, first.next)
}

func TestResolveIsMemoized(t *testing.T) {
	tree := NewMemoryTree()
	n := FromUint64(7)
	first := tree.Resolve(n)
	second := tree.Resolve(n)
	assert.Same(t, first, second)
}
