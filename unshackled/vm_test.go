package unshackled

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() Params {
	return Params{
		InitialRotWidth: 10,
		Policy:          DeterministicPolicy{Step: 4, Slack: 2},
	}
}

func TestRunHaltsImmediatelyOnLeadingHlt(t *testing.T) {
	tree := NewMemoryTree()
	// 'Q' (81) at position 0 decodes directly to hlt; 'b' exists only
	// to satisfy the loader's two-instruction minimum.
	initialValues, err := NewLoader(tree).Load([]byte("Qb"))
	require.NoError(t, err)

	var out bytes.Buffer
	vm := New(tree, initialValues, testParams(), strings.NewReader(""), &out)
	require.NoError(t, vm.Run())
	assert.Empty(t, out.Bytes())
}

func TestRunEchoesNewlineThroughInAndOut(t *testing.T) {
	tree := NewMemoryTree()
	// 'u' (117) at position 0 decodes to in, 'b' (98) at position 1 to
	// out, 'O' (79) at position 2 to hlt.
	initialValues, err := NewLoader(tree).Load([]byte("ubO"))
	require.NoError(t, err)

	var out bytes.Buffer
	vm := New(tree, initialValues, testParams(), strings.NewReader("\n"), &out)
	require.NoError(t, vm.Run())
	assert.Equal(t, "\n", out.String())
}

func TestStepTreatsJunkOpcodeAsNoOp(t *testing.T) {
	tree := NewMemoryTree()
	vm := New(tree, [6]*TNum{}, testParams(), strings.NewReader(""), &bytes.Buffer{})
	cCell := vm.tree.Resolve(vm.c)
	cCell.val = FromUint64(65) // 'A', decodes to instr 65 at position 0 -- not one
	// of the eight valid instructions, but still within the printable
	// range, so it must be silently skipped rather than fatal.
	err := vm.Step()
	require.NoError(t, err)
	assert.EqualValues(t, 1, vm.step)
	assert.EqualValues(t, 1, vm.pos)
}

func TestStepRejectsUnprintableInstructionByte(t *testing.T) {
	tree := NewMemoryTree()
	vm := New(tree, [6]*TNum{}, testParams(), strings.NewReader(""), &bytes.Buffer{})
	cCell := vm.tree.Resolve(vm.c)
	cCell.val = FromUint64(200) // outside [33, 126], fatal regardless of decode.
	err := vm.Step()
	assert.Error(t, err)
}
