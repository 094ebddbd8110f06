/*Package record implements the framed record reader (component C): a
Fortran unformatted sequential record is a length-prefixed payload bracketed
by two copies of the same big-endian int32 length, and this package is the
only place that knows how to peel one off a stream.

Every higher layer (the array reader, the array stream) is built on top of
ReadRecord and never touches the head/tail markers directly, the same way
guppy's snapio package centralises the single block-header read that every
Gadget-2 block begins with instead of re-deriving it at each call site.
*/
package record

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/equinor/ecl3/ecl3err"
)

const markerSize = 4

// ReadRecord reads one Fortran sequential record from r: a 4-byte
// big-endian length, that many payload bytes, and a trailing 4-byte
// big-endian length that must equal the first. The payload is appended to
// dst[:0] (dst's backing array is reused when it's large enough) and the
// resulting slice is returned.
//
// Clean EOF before the head is reported as ecl3err.Eof. EOF partway through
// the head, payload, or tail is ecl3err.TruncatedRecord. A head that
// disagrees with its tail is reported via ecl3err.HeadTailMismatch. The
// reader never seeks and never reads past the tail it just validated.
func ReadRecord(r io.Reader, dst []byte) ([]byte, error) {
	var headBuf [markerSize]byte
	if _, err := io.ReadFull(r, headBuf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ecl3err.Eof
		}
		return nil, fmt.Errorf("record: reading head: %w", ecl3err.TruncatedRecord)
	}
	head := int32(binary.BigEndian.Uint32(headBuf[:]))

	if cap(dst) < int(head) {
		dst = make([]byte, head)
	} else {
		dst = dst[:head]
	}
	if head > 0 {
		if _, err := io.ReadFull(r, dst); err != nil {
			return nil, fmt.Errorf("record: reading payload: %w", ecl3err.TruncatedRecord)
		}
	}

	var tailBuf [markerSize]byte
	if _, err := io.ReadFull(r, tailBuf[:]); err != nil {
		return nil, fmt.Errorf("record: reading tail: %w", ecl3err.TruncatedRecord)
	}
	tail := int32(binary.BigEndian.Uint32(tailBuf[:]))

	if head != tail {
		return nil, ecl3err.HeadTailMismatch(head, tail)
	}

	return dst, nil
}
