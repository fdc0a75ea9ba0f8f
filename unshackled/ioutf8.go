package unshackled

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// ReadCodepoint decodes one Unicode codepoint from r. It returns -1, nil
// on end of input (instruction 23's defined EOF behavior) and a non-nil
// error on malformed UTF-8.
func ReadCodepoint(r *bufio.Reader) (int32, error) {
	ru, size, err := r.ReadRune()
	if err == io.EOF {
		return -1, nil
	}
	if err != nil {
		return 0, err
	}
	if ru == utf8.RuneError && size == 1 {
		return 0, errInvalidUTF8()
	}
	return int32(ru), nil
}

// WriteCodepoint encodes cp as UTF-8 and writes it to w. Newline is
// handled separately by the caller, since it is its own sentinel value
// rather than a literal codepoint. A surrogate codepoint (0xD800-0xDFFF)
// is written as U+FFFD, as utf8.EncodeRune does.
func WriteCodepoint(w io.Writer, cp int32) error {
	if cp < 0 || cp >= 0x110000 {
		return errInvalidCodepoint(cp)
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], rune(cp))
	_, err := w.Write(buf[:n])
	return err
}
