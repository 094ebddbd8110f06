/*Package ecl3 ties the four framing layers (keyword, record, array,
arraystream) to the summary-specific layer (summary) into the two calls a
typical caller actually wants: read a .SMSPEC header once, then read a
.UNSMRY body against the column plan it produced.

This plays the same role guppy's top-level guppy.go plays for that
module — a small, dependency-light front door over packages that are each
independently usable — except ecl3 is a library, not a command, so it
exposes functions rather than a main.
*/
package ecl3

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/equinor/ecl3/array"
	"github.com/equinor/ecl3/arraystream"
	"github.com/equinor/ecl3/ecl3err"
	"github.com/equinor/ecl3/keyword"
	"github.com/equinor/ecl3/summary"
)

// Spec is a parsed .SMSPEC file: the column plan a .UNSMRY file's PARAMS
// vectors are resolved against.
type Spec struct {
	Columns []summary.Column

	// NLIST is the length of every PARAMS vector this spec describes, as
	// declared by KEYWORDS' element count.
	NLIST int
}

// ReadSpec reads every array in r (a .SMSPEC stream) and builds the column
// plan from the identifier arrays it finds, using ":" as the qualifier
// separator. It stops at end of stream; there is no fixed array order to
// require, mirroring how summary.Columns accepts whichever of the optional
// identifier arrays happen to be present.
func ReadSpec(r io.Reader) (*Spec, error) {
	s := arraystream.New(r)

	var in summary.ColumnsInput
	in.Separator = ":"

	for {
		a, err := s.Next()
		if err != nil {
			return nil, err
		}
		if a.Empty() {
			break
		}

		switch strings.TrimRight(a.Keyword, " ") {
		case "KEYWORDS":
			in.Keywords = charElements(a)
		case "WGNAMES", "NAMES":
			in.WGNAMES = charElements(a)
		case "NUMS":
			in.NUMS = intElements(a)
		case "LGRS":
			in.LGRS = charElements(a)
		case "NUMLX":
			in.NUMLX = intElements(a)
		case "NUMLY":
			in.NUMLY = intElements(a)
		case "NUMLZ":
			in.NUMLZ = intElements(a)
		}
	}

	if in.Keywords == nil {
		return nil, fmt.Errorf("ecl3: spec stream has no KEYWORDS array: %w", ecl3err.InvalidHeader)
	}

	return &Spec{
		Columns: summary.Columns(in),
		NLIST:   len(in.Keywords),
	}, nil
}

// ReadSummary drives the SEQHDR/MINISTEP/PARAMS protocol (component H)
// over r (a .UNSMRY stream), packing every column in spec.Columns into
// each emitted row.
func ReadSummary(r io.Reader, spec *Spec) (*summary.RowBuffer, error) {
	positions := make([]int, len(spec.Columns))
	for i, c := range spec.Columns {
		positions[i] = c.SourceIndex
	}
	s := arraystream.New(r)
	return summary.ReadRows(s, positions)
}

// charElements splits a CHAR array's body into one 8-byte string per
// element. Trailing padding is deliberately left in place: the void
// sentinel check and the classifier both expect space-padded input, so
// trimming happens downstream in summary.Columns.
func charElements(a *array.Array) []string {
	const width = 8
	n := len(a.Body) / width
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = string(a.Body[i*width : (i+1)*width])
	}
	return out
}

// intElements reinterprets an INTE array's already-host-order body as a
// slice of int32, one per 4-byte element.
func intElements(a *array.Array) []int32 {
	if a.Type != keyword.INTE {
		return nil
	}
	n := len(a.Body) / 4
	out := make([]int32, n)
	for i := 0; i < n; i++ {
		out[i] = int32(binary.NativeEndian.Uint32(a.Body[i*4:]))
	}
	return out
}
