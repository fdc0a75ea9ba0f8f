package unshackled

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRejectsByteAtInvalidPosition(t *testing.T) {
	tree := NewMemoryTree()
	// 'A' (65) at position 0 decodes to (65+0)%94 = 65, not one of the
	// eight valid instructions.
	_, err := NewLoader(tree).Load([]byte{'A', 'A'})
	require.Error(t, err)
}

func TestLoadRejectsFewerThanTwoInstructions(t *testing.T) {
	tree := NewMemoryTree()
	_, err := NewLoader(tree).Load([]byte{})
	require.Error(t, err)
}

func TestLoadSkipsWhitespaceWithoutAdvancingPosition(t *testing.T) {
	// 'D' (68) decodes to nop at position 0. 'b' (98) decodes to out at
	// position 1: (98+1)%94 == 5. Whitespace interposed between them
	// must not shift 'b' to a different, invalid position.
	withSpace := []byte{'D', ' ', '\t', 'b'}
	withoutSpace := []byte{'D', 'b'}

	tree1 := NewMemoryTree()
	_, err1 := NewLoader(tree1).Load(withSpace)
	tree2 := NewMemoryTree()
	_, err2 := NewLoader(tree2).Load(withoutSpace)
	require.NoError(t, err1)
	require.NoError(t, err2)
}

func TestLoadDerivesSixInitialValues(t *testing.T) {
	tree := NewMemoryTree()
	initialValues, err := NewLoader(tree).Load([]byte{'D', 'b', 's'})
	require.NoError(t, err)
	for i, v := range initialValues {
		require.NotNil(t, v, "initialValues[%d] must be populated", i)
	}
}
