/*Package arraystream implements the array stream (component E): a
forward-only iterator over the arrays in an ecl3 file, with exactly one
record of lookahead via Unget.

This mirrors the role guppy's snapio.File.Read plays for Gadget-2 blocks,
except ecl3 files don't know ahead of time how many arrays they contain, so
callers must loop until Next returns the end-of-stream sentinel rather than
consulting a count up front.
*/
package arraystream

import (
	"errors"
	"io"

	"github.com/equinor/ecl3/array"
	"github.com/equinor/ecl3/ecl3err"
)

// Stream is a forward-only cursor over the arrays of an io.Reader. The
// zero value is not usable; construct one with New.
//
// The Array returned by Next is a borrow: it aliases Stream's internal
// buffer and is only valid until the next call to Next. Callers that need
// to retain data across calls must copy it out of the returned Array.
//
// A Stream is owned by exactly one caller at a time; concurrent calls on
// the same Stream are undefined behaviour, the same single-ownership
// contract guppy's snapio readers assume for a given *os.File.
type Stream struct {
	r       io.Reader
	last    array.Array
	scratch []byte
	ungot   bool
	started bool
}

// New returns a Stream reading arrays from r.
func New(r io.Reader) *Stream {
	return &Stream{r: r}
}

// Next returns the next array in the stream. If Unget was called since the
// last Next, the previously-returned array is replayed without touching r.
// On clean end of file, the returned Array's Empty method reports true
// (Count == -1) and subsequent calls return the same sentinel idempotently.
//
// The returned pointer aliases Stream's internal state and is invalidated
// by the next call to Next.
func (s *Stream) Next() (*array.Array, error) {
	if s.ungot {
		s.ungot = false
		return &s.last, nil
	}

	if s.started && s.last.Empty() {
		// Once the sentinel has been produced, keep returning it rather
		// than issuing further reads against an exhausted reader.
		return &s.last, nil
	}
	s.started = true

	scratch, err := array.ReadArray(s.r, s.scratch, &s.last)
	s.scratch = scratch
	if err != nil {
		if errors.Is(err, ecl3err.Eof) {
			s.last = array.Array{Count: -1}
			return &s.last, nil
		}
		return nil, err
	}

	return &s.last, nil
}

// Unget marks the most recently returned array for replay on the next call
// to Next. Calling Unget before any call to Next, or calling it twice
// without an intervening Next, is a no-op: the defensive behaviour the
// spec allows in place of undefined behaviour.
func (s *Stream) Unget() {
	if !s.started || s.ungot {
		return
	}
	s.ungot = true
}
