package unshackled

import "fmt"

// errOutOfXlat2Range reports an attempt to apply xlat2 to a value
// outside the printable ASCII range it is defined on.
func errOutOfXlat2Range(u int32) error {
	return fmt.Errorf("cannot apply xlat2: unicode value %d outside [33, 127)", u)
}

// errInvalidInstruction reports that the cell at C holds a value i
// outside the printable range [33, 126], from which no instruction can
// be decoded. A printable value that decodes to something other than the
// eight instructions is not reported here: VM.Step skips it as a no-op.
func errInvalidInstruction(i int, step uint64) error {
	return fmt.Errorf("invalid instruction %d at step %d", i, step)
}

// errRotationWidthExceeded reports that a growth policy would have to
// grow the rotation width past the host's largest representable
// uint64.
func errRotationWidthExceeded() error {
	return fmt.Errorf("maximal supported rotation width exceeded")
}

// errInvalidProgramByte reports a loader-time rejection: either a byte
// outside the accepted set, or a printable byte at a position where it
// doesn't decode to one of the eight valid instructions.
func errInvalidProgramByte(v byte, pos int) error {
	return fmt.Errorf("invalid character %q at position %d", v, pos)
}

// errNotAValidProgram reports fewer than two accepted bytes in the
// whole program.
func errNotAValidProgram() error {
	return fmt.Errorf("not a valid Malbolge Unshackled program: fewer than two instructions")
}

// errInvalidUTF8 reports a malformed UTF-8 sequence read from the
// program's input stream.
func errInvalidUTF8() error {
	return fmt.Errorf("invalid utf-8 encoding while reading input")
}

// errInvalidCodepoint reports an attempt to write a codepoint outside
// [0, 0x110000) to the output stream.
func errInvalidCodepoint(cp int32) error {
	return fmt.Errorf("invalid unicode codepoint %d for output", cp)
}
