package unshackled

// TNum is an arbitrary-width base-3 number. Conceptually it is an
// infinite-to-the-left stream of trits, all but finitely many equal to
// head. tail holds the explicit trits, least-significant first; trits
// beyond len(tail) are all equal to head.
//
// Reference: https://lutter.cc/unshackled/ (Matthias Lutter, 2017)
type TNum struct {
	head trit
	tail []trit

	memptr  *Cell
	unicode unicodeCache
}

type trit uint8

// unicodeCache is a tagged union: valid=false means "to be computed".
// value may legitimately be -1 ("not a codepoint"), so a bare sentinel
// int would collide with that real value.
type unicodeCache struct {
	valid bool
	value int32
}

// crazyOpTable is the OPR lookup, indexed [a][d].
var crazyOpTable = [3][3]trit{
	{1, 0, 0},
	{1, 0, 2},
	{2, 2, 1},
}

// xlat2Table is the fixed 94-entry substitution cipher keyed by (u-33)%94.
const xlat2Table = "5z]&gqtyfr$(we4{WP)H-Zn,[%\\3dL+Q;>U!pJS72FhOA1C" +
	"B6v^=I_0/8|jsb9m<.TVac`uY*MK'X~xDl}REokN:#?G\"i@"

// FromUint64 builds the TNum for a non-negative integer: head=0, tail is
// its base-3 digits least-significant first, width at least 1.
func FromUint64(s uint64) *TNum {
	n := &TNum{head: 0, tail: digitsBase3(s)}
	if s < 0x110000 {
		n.unicode = unicodeCache{valid: true, value: int32(s)}
	} else {
		n.unicode = unicodeCache{valid: true, value: -1}
	}
	return n
}

func digitsBase3(s uint64) []trit {
	tail := []trit{trit(s % 3)}
	s /= 3
	for s > 0 {
		tail = append(tail, trit(s%3))
		s /= 3
	}
	return tail
}

// newlineSentinel is the value instruction 23 (in) assigns to A on a
// newline byte: head=2, tail=[1], i.e. ...22221 in base 3.
func newlineSentinel() *TNum {
	return &TNum{head: 2, tail: []trit{1}, unicode: unicodeCache{valid: true, value: -1}}
}

// eofSentinel is the value instruction 23 (in) assigns to A on EOF.
func eofSentinel() *TNum {
	return &TNum{head: 2, tail: []trit{2}, unicode: unicodeCache{valid: true, value: -1}}
}

// Clone duplicates n into a new, independently owned TNum.
func (n *TNum) Clone() *TNum {
	tail := make([]trit, len(n.tail))
	copy(tail, n.tail)
	return &TNum{head: n.head, tail: tail, memptr: n.memptr, unicode: n.unicode}
}

// CopyFrom replaces n's contents in place with src's.
func (n *TNum) CopyFrom(src *TNum) {
	n.head = src.head
	n.tail = append(n.tail[:0], src.tail...)
	n.memptr = src.memptr
	n.unicode = src.unicode
}

// Increment performs x <- x+1.
func (n *TNum) Increment() {
	if n.unicode.valid && n.unicode.value >= 0 && n.unicode.value < 0x110000-1 {
		n.unicode.value++
	} else {
		n.unicode.valid = false
	}
	if n.memptr != nil {
		n.memptr = n.memptr.next
	}
	for i := range n.tail {
		n.tail[i] = (n.tail[i] + 1) % 3
		if n.tail[i] != 0 {
			return
		}
	}
	if n.head == 2 {
		n.head = 0
		return
	}
	n.tail = append(n.tail, n.head+1)
}

// RotateRight pads the tail to at least w trits (with head-valued
// padding), then cyclically rotates it by one position: the former
// least-significant trit becomes the new most-significant trit. head
// itself is never touched. This is the operation behind instruction 39
// (rot); calling it w times in a row on a number of width w returns the
// tail to its original arrangement.
func (n *TNum) RotateRight(w uint64) {
	for uint64(len(n.tail)) < w {
		n.tail = append(n.tail, n.head)
	}
	lsd := n.tail[0]
	n.tail = append(n.tail[1:], lsd)
	n.memptr = nil
	n.unicode.valid = false
}

// crazyOp applies the OPR table trit-wise to (a, d) simultaneously,
// including the head trits, extending whichever operand is narrower by
// padding it with its own head before combining.
func crazyOp(a, d *TNum) {
	width := len(a.tail)
	if len(d.tail) > width {
		width = len(d.tail)
	}
	for len(a.tail) < width {
		a.tail = append(a.tail, a.head)
	}
	for len(d.tail) < width {
		d.tail = append(d.tail, d.head)
	}
	for i := 0; i < width; i++ {
		r := crazyOpTable[a.tail[i]][d.tail[i]]
		a.tail[i] = r
		d.tail[i] = r
	}
	r := crazyOpTable[a.head][d.head]
	a.head, d.head = r, r
	a.memptr, d.memptr = nil, nil
	a.unicode.valid, d.unicode.valid = false, false
}

// Xlat2 applies the fixed substitution cipher. Precondition: the current
// Unicode projection lies in [33, 127). The trit sequence is discarded;
// RepairAfterXlat2 rebuilds it lazily the next time n is used as an
// address.
func (n *TNum) Xlat2() error {
	u := n.Unicode()
	if u < 33 || u > 126 {
		return errOutOfXlat2Range(u)
	}
	mapped := xlat2Table[(u-33)%94]
	n.unicode = unicodeCache{valid: true, value: int32(mapped)}
	n.tail = n.tail[:0]
	return nil
}

// RepairAfterXlat2 rebuilds the tail from the cached Unicode value if a
// prior Xlat2 call left it empty. A no-op otherwise.
func (n *TNum) RepairAfterXlat2() {
	if len(n.tail) != 0 {
		return
	}
	if !n.unicode.valid || n.unicode.value < 0 {
		return
	}
	n.head = 0
	n.tail = digitsBase3(uint64(n.unicode.value))
	n.memptr = nil
}

// Mod evaluates n mod m, for 2 <= m <= 29524. Translated directly from
// the original's per-trit accumulator rather than a closed-form
// rederivation, since that is what "correct for all widths" means here.
func (n *TNum) Mod(m int) int {
	result := (29524 % m) * int(n.head)
	position := 1
	for i := 0; i < len(n.tail); i++ {
		result += position * (int(n.tail[i]) + (m - int(n.head)))
		result %= m
		position *= 3
		position %= m
	}
	return result % m
}

// resolveUnicode recomputes the Unicode cache if stale.
func (n *TNum) resolveUnicode() {
	if n.unicode.valid {
		return
	}
	if n.head != 0 {
		n.unicode = unicodeCache{valid: true, value: -1}
		return
	}
	var sum int64
	factor := int64(1)
	for i := 0; i < len(n.tail); i++ {
		sum += factor * int64(n.tail[i])
		if factor < 0x110000 {
			factor *= 3
		}
		if sum >= 0x110000 {
			n.unicode = unicodeCache{valid: true, value: -1}
			return
		}
	}
	n.unicode = unicodeCache{valid: true, value: int32(sum)}
}

// Unicode returns the Unicode projection: the exact value when head==0
// and the number is < 0x110000, otherwise -1.
func (n *TNum) Unicode() int32 {
	n.resolveUnicode()
	return n.unicode.value
}

// IsNewline reports whether n encodes the newline sentinel: head=2,
// least-significant trit 1, every other tail trit 2 (the value
// ...22221 base 3, i.e. -2 read as a two's-complement-like trinary).
func (n *TNum) IsNewline() bool {
	if n.head != 2 {
		return false
	}
	if len(n.tail) == 0 || n.tail[0] != 1 {
		return false
	}
	for i := 1; i < len(n.tail); i++ {
		if n.tail[i] != 2 {
			return false
		}
	}
	return true
}

// realWidth is the greatest i+1 such that tail[i] != head, or 0.
func (n *TNum) realWidth() uint64 {
	var w uint64
	for i, t := range n.tail {
		if t != n.head {
			w = uint64(i + 1)
		}
	}
	return w
}
