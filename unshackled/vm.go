package unshackled

import (
	"bufio"
	"io"

	"github.com/golang/glog"
)

// instruction names, used only for -v tracing.
var instructionNames = map[int]string{
	4: "jmp", 5: "out", 23: "in", 39: "rot",
	40: "movd", 62: "opr", 68: "nop", 81: "hlt",
}

// VM is the execution core: three registers, a position counter modulo
// 564, and the rotation-width growth state. It owns no file descriptors
// directly — in and out are the abstract byte-oriented input/output
// pair the spec requires; main.go supplies os.Stdin/os.Stdout (or test
// buffers).
type VM struct {
	tree *MemoryTree

	a, c, d *TNum
	pos     uint64
	step    uint64

	initialValues [6]*TNum

	maxWordWidth uint64
	rotWidth     uint64
	growth       GrowthPolicy

	in  *bufio.Reader
	out io.Writer
}

// New creates a VM ready to run from address 0, with registers A, C, D
// all zero, wired to the given initial values, memory tree, growth
// parameters, and I/O streams.
func New(tree *MemoryTree, initialValues [6]*TNum, params Params, in io.Reader, out io.Writer) *VM {
	vm := &VM{
		tree:          tree,
		a:             FromUint64(0),
		c:             FromUint64(0),
		d:             FromUint64(0),
		initialValues: initialValues,
		rotWidth:      params.InitialRotWidth,
		growth:        params.Policy,
		in:            bufio.NewReader(in),
		out:           out,
	}
	tree.Resolve(vm.c)
	tree.Resolve(vm.d)
	return vm
}

type haltedError struct{}

func (haltedError) Error() string { return "halted" }

// ErrHalted is the sentinel error Step returns once hlt has executed.
// Run treats it as success.
var ErrHalted error = haltedError{}

// Run executes Step in a loop until hlt (returns nil) or a fatal error.
func (vm *VM) Run() error {
	for {
		if err := vm.Step(); err != nil {
			if err == ErrHalted {
				return nil
			}
			return err
		}
	}
}

// Step performs one fetch/decode/execute cycle per spec §4.5.
func (vm *VM) Step() error {
	cCell := vm.tree.Resolve(vm.c)
	if cCell.val == nil {
		cCell.val = vm.initialValues[vm.pos%6].Clone()
	}
	u := cCell.val.Unicode()
	if u < 33 || u > 126 {
		return errInvalidInstruction(int(u), vm.step)
	}
	instr := (int(u) + int(vm.pos)) % 94
	if glog.V(2) {
		glog.Infof("step=%d pos=%d instr=%s", vm.step, vm.pos, instructionNames[instr])
	}

	var err error
	switch instr {
	case 4:
		err = vm.jmp()
	case 5:
		err = vm.out_()
	case 23:
		err = vm.in_()
	case 39:
		err = vm.rot()
	case 40:
		err = vm.movd()
	case 62:
		err = vm.opr()
	case 81:
		return ErrHalted
	default:
		// 68 (nop), and any value outside the eight valid
		// instructions, is a no-op.
	}
	if err != nil {
		return err
	}

	cCell = vm.tree.Resolve(vm.c)
	if err := cCell.val.Xlat2(); err != nil {
		return err
	}
	Advance(vm.tree, vm.c)
	vm.pos = (vm.pos + 1) % 564
	Advance(vm.tree, vm.d)
	vm.step++
	return nil
}

func (vm *VM) dCell() *Cell {
	return vm.tree.Resolve(vm.d)
}

// jmp implements instruction 4: C <- the value addressed by D (or the
// seeded initial value if that cell has never been written), then pos
// and the materialized cell at the new C are refreshed.
func (vm *VM) jmp() error {
	dCell := vm.dCell()
	if dCell.val == nil {
		vm.c.CopyFrom(vm.initialValues[vm.d.Mod(6)])
	} else {
		dCell.val.RepairAfterXlat2()
		vm.tree.Resolve(dCell.val)
		vm.c.CopyFrom(dCell.val)
	}
	vm.tree.Resolve(vm.c)
	vm.pos = uint64(vm.c.Mod(564))
	cCell := vm.tree.Resolve(vm.c)
	if cCell.val == nil {
		cCell.val = vm.initialValues[vm.pos%6].Clone()
	}
	return nil
}

// out_ implements instruction 5.
func (vm *VM) out_() error {
	if vm.a.IsNewline() {
		_, err := vm.out.Write([]byte{'\n'})
		return err
	}
	return WriteCodepoint(vm.out, vm.a.Unicode())
}

// in_ implements instruction 23.
func (vm *VM) in_() error {
	cp, err := ReadCodepoint(vm.in)
	if err != nil {
		return err
	}
	switch cp {
	case -1:
		vm.a = eofSentinel()
	case '\n':
		vm.a = newlineSentinel()
	default:
		vm.a = FromUint64(uint64(cp))
	}
	return nil
}

// rot implements instruction 39: materialize D's cell, rotate it in
// place by the current rotation width, copy the result into A.
func (vm *VM) rot() error {
	dCell := vm.dCell()
	if dCell.val == nil {
		dCell.val = vm.initialValues[vm.d.Mod(6)].Clone()
	} else {
		dCell.val.RepairAfterXlat2()
	}
	dCell.val.RotateRight(vm.rotWidth)
	vm.a.CopyFrom(dCell.val)
	return nil
}

// movd implements instruction 40: D <- the value addressed by D, then
// the rotation width is grown if this pushed max_wordwidth higher.
func (vm *VM) movd() error {
	dCell := vm.dCell()
	if dCell.val == nil {
		vm.d.CopyFrom(vm.initialValues[vm.d.Mod(6)])
	} else {
		dCell.val.RepairAfterXlat2()
		vm.tree.Resolve(dCell.val)
		vm.d.CopyFrom(dCell.val)
	}
	vm.tree.Resolve(vm.d)
	if uint64(len(vm.d.tail)) <= vm.maxWordWidth {
		return nil
	}
	w := vm.d.realWidth()
	if w <= vm.maxWordWidth {
		return nil
	}
	vm.maxWordWidth = w
	grown, err := vm.growth.Grow(w, vm.rotWidth)
	if err != nil {
		return err
	}
	vm.rotWidth = grown
	return nil
}

// opr implements instruction 62.
func (vm *VM) opr() error {
	dCell := vm.dCell()
	if dCell.val == nil {
		dCell.val = vm.initialValues[vm.d.Mod(6)].Clone()
	} else {
		dCell.val.RepairAfterXlat2()
	}
	crazyOp(vm.a, dCell.val)
	return nil
}
