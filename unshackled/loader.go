package unshackled

// validInstructions is the set of decoded opcodes accepted at load time.
// Execution time has no equivalent gate: a decoded value outside this
// set is simply skipped as a no-op (see VM.Step).
var validInstructions = map[int]bool{
	4: true, 5: true, 23: true, 39: true, 40: true, 62: true, 68: true, 81: true,
}

// Loader consumes the raw program bytes (already read from disk or
// stdin by the caller — that read is an external-collaborator concern)
// and populates a MemoryTree at successive addresses 0, 1, 2, ..., then
// derives the six initial values used for reads of never-written cells.
type Loader struct {
	tree *MemoryTree
}

// NewLoader creates a Loader writing into tree.
func NewLoader(tree *MemoryTree) *Loader {
	return &Loader{tree: tree}
}

// Load validates and ingests data per §4.4: whitespace is skipped
// without advancing position; a printable byte in [33,127) is accepted
// only if it decodes to one of the eight valid instructions at the
// current position; anything else is fatal. At end of input it runs the
// synthetic steps numbered pos%6 through 17 (18 - pos%6 steps in all);
// steps 12..17 yield the six initial values.
func (l *Loader) Load(data []byte) ([6]*TNum, error) {
	var initialValues [6]*TNum

	init := FromUint64(0)
	l.tree.Resolve(init)

	var prev, prevprev *Cell
	pos := 0
	for i, v := range data {
		switch v {
		case ' ', '\t', '\r', '\n':
			continue
		}
		if v < 33 || v >= 127 {
			return initialValues, errInvalidProgramByte(v, i)
		}
		instr := (int(v) + pos) % 94
		if !validInstructions[instr] {
			return initialValues, errInvalidProgramByte(v, i)
		}
		cell := l.tree.Resolve(init)
		cell.val = FromUint64(uint64(v))
		prevprev = prev
		prev = cell
		Advance(l.tree, init)
		pos = (pos + 1) % 564
	}
	if prevprev == nil {
		return initialValues, errNotAValidProgram()
	}

	pos %= 6
	for ; pos < 18; pos++ {
		m1 := prev.val.Clone()
		m2 := prevprev.val.Clone()
		crazyOp(m1, m2)
		if pos >= 12 {
			initialValues[pos-12] = m2
		}
		cell := l.tree.Resolve(init)
		cell.val = m1
		prevprev = prev
		prev = cell
		Advance(l.tree, init)
	}
	return initialValues, nil
}
