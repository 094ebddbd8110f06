/*Package keyword implements the type registry (component A) and the
endian codec (component B) for ecl3 arrays.

An array on disk is named by an 8-byte keyword and typed by a 4-byte tag
such as "INTE" or "C001". This package turns those tags into a closed Go
enum and knows the two intrinsic constants, element size and block size,
that every other layer needs in order to read an array's body. It also
knows how to byte-swap a buffer of elements between the big-endian wire
format and the host's native representation.
*/
package keyword

import (
	"encoding/binary"
	"fmt"

	"github.com/equinor/ecl3/ecl3err"
)

// Type is ecl3's closed element-type enumeration. The numeric value is the
// big-endian 32-bit reading of the four ASCII tag bytes, which gives O(1)
// dispatch in Typeid without a lookup table; this is an implementation
// choice, not part of the contract, and is sound on any host because the
// load is always done as big-endian regardless of host byte order.
type Type uint32

// make4 encodes a 4-character ASCII tag the same way the wire does: as the
// big-endian uint32 reading of its bytes.
func make4(tag string) Type {
	return Type(binary.BigEndian.Uint32([]byte(tag)))
}

var (
	INTE = make4("INTE")
	REAL = make4("REAL")
	DOUB = make4("DOUB")
	CHAR = make4("CHAR")
	MESS = make4("MESS")
	LOGI = make4("LOGI")
	X231 = make4("X231")
)

// cNNN returns the type tag for a CNNN fixed-width ASCII string of the
// given width, e.g. cNNN(7) is "C007".
func cNNN(width int) Type {
	return make4(fmt.Sprintf("C%03d", width))
}

// Typeid parses an 4-byte ASCII type tag (as found in an array header) into
// a Type. It fails with ecl3err.InvalidArgs if tag isn't one of the
// recognised variants.
func Typeid(tag string) (Type, error) {
	if len(tag) != 4 {
		return 0, fmt.Errorf("typeid %q: %w", tag, ecl3err.InvalidArgs)
	}
	t := make4(tag)
	if _, ok := cWidth(t); ok {
		return t, nil
	}
	switch t {
	case INTE, REAL, DOUB, CHAR, MESS, LOGI, X231:
		return t, nil
	}
	return 0, fmt.Errorf("typeid %q: %w", tag, ecl3err.InvalidArgs)
}

// cWidth reports whether t is a CNNN variant and, if so, its width in
// bytes. CNNN tags are recognised structurally ("C" followed by three
// decimal digits between 001 and 099) rather than through a 99-entry
// table; TypeName rebuilds the same tag from the decoded width.
func cWidth(t Type) (int, bool) {
	b := [4]byte{
		byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t),
	}
	if b[0] != 'C' {
		return 0, false
	}
	if b[1] < '0' || b[1] > '9' || b[2] < '0' || b[2] > '9' || b[3] < '0' || b[3] > '9' {
		return 0, false
	}
	width := int(b[1]-'0')*100 + int(b[2]-'0')*10 + int(b[3]-'0')
	if width < 1 || width > 99 {
		return 0, false
	}
	return width, true
}

// ElementSize returns the size, in bytes, of a single element of type t.
// It is 0 for MESS, the decoded width for CNNN, 8 for DOUB/CHAR, and 4 for
// everything else (INTE/REAL/LOGI/X231).
func ElementSize(t Type) (int, error) {
	if width, ok := cWidth(t); ok {
		return width, nil
	}
	switch t {
	case MESS:
		return 0, nil
	case DOUB, CHAR:
		return 8, nil
	case INTE, REAL, LOGI, X231:
		return 4, nil
	}
	return 0, fmt.Errorf("element size: %w", ecl3err.InvalidArgs)
}

// BlockSize returns the number of elements of type t that a producer
// packs into one body record: 105 for character-like types (CHAR, CNNN)
// and 1000 for everything else. The array reader (component D) does not
// enforce this as an upper bound; it is only a hint for writers.
func BlockSize(t Type) (int, error) {
	if _, ok := cWidth(t); ok {
		return 105, nil
	}
	switch t {
	case CHAR:
		return 105, nil
	case INTE, REAL, DOUB, MESS, LOGI, X231:
		return 1000, nil
	}
	return 0, fmt.Errorf("block size: %w", ecl3err.InvalidArgs)
}

// TypeName returns the static 4-character ASCII tag for t, the inverse of
// Typeid. It panics if t is not a value ever returned by Typeid, since
// that indicates a programmer error rather than a malformed file.
func TypeName(t Type) string {
	if width, ok := cWidth(t); ok {
		return fmt.Sprintf("C%03d", width)
	}
	switch t {
	case INTE:
		return "INTE"
	case REAL:
		return "REAL"
	case DOUB:
		return "DOUB"
	case CHAR:
		return "CHAR"
	case MESS:
		return "MESS"
	case LOGI:
		return "LOGI"
	case X231:
		return "X231"
	}
	panic(fmt.Sprintf("keyword: %d is not a valid Type", uint32(t)))
}
