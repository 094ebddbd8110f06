package summary

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/equinor/ecl3/array"
	"github.com/equinor/ecl3/arraystream"
	"github.com/equinor/ecl3/ecl3err"
	"github.com/equinor/ecl3/keyword"
)

const (
	kwSEQHDR   = "SEQHDR  "
	kwMINISTEP = "MINISTEP"
	kwPARAMS   = "PARAMS  "
)

// rowSize is the packed, little-endian-in-host-memory row layout's per-row
// byte count for a column plan of width k: report_step, ministep, then one
// float32 per plan column.
func rowSize(k int) int { return 4 + 4 + 4*k }

// RowBuffer accumulates rows materialised from a SEQHDR/MINISTEP/PARAMS
// stream (component H). It grows by doubling and never shrinks, the same
// discipline array.Array's Body and guppy's snapio buffers use.
type RowBuffer struct {
	buf []byte
	n   int
	k   int
}

// NewRowBuffer returns a RowBuffer for a column plan with k positions.
func NewRowBuffer(k int) *RowBuffer {
	return &RowBuffer{k: k}
}

// Len reports the number of rows accumulated so far.
func (b *RowBuffer) Len() int { return b.n }

// Width reports the number of float columns (i.e. len(positions)) each row
// carries, independent of the report_step/ministep pair.
func (b *RowBuffer) Width() int { return b.k }

// Bytes returns the packed row data, sized to exactly Len() rows.
func (b *RowBuffer) Bytes() []byte {
	return b.buf[:b.n*rowSize(b.k)]
}

// ReportStep returns row i's report_step field.
func (b *RowBuffer) ReportStep(i int) int32 {
	return int32(binary.NativeEndian.Uint32(b.row(i)))
}

// Ministep returns row i's ministep field.
func (b *RowBuffer) Ministep(i int) int32 {
	return int32(binary.NativeEndian.Uint32(b.row(i)[4:]))
}

// Value returns row i's j'th float column.
func (b *RowBuffer) Value(i, j int) float32 {
	return math.Float32frombits(binary.NativeEndian.Uint32(b.row(i)[8+4*j:]))
}

func (b *RowBuffer) row(i int) []byte {
	sz := rowSize(b.k)
	return b.buf[i*sz : (i+1)*sz]
}

func (b *RowBuffer) grow(extra int) {
	need := len(b.buf) + extra
	if cap(b.buf) >= need {
		b.buf = b.buf[:need]
		return
	}
	newCap := cap(b.buf) * 2
	if newCap < need {
		newCap = need
	}
	grown := make([]byte, need, newCap)
	copy(grown, b.buf)
	b.buf = grown
}

func (b *RowBuffer) appendRow(reportStep, ministep int32, values []float32, positions []int) {
	sz := rowSize(len(positions))
	off := len(b.buf)
	b.grow(sz)

	binary.NativeEndian.PutUint32(b.buf[off:], uint32(reportStep))
	binary.NativeEndian.PutUint32(b.buf[off+4:], uint32(ministep))
	for i, p := range positions {
		binary.NativeEndian.PutUint32(b.buf[off+8+4*i:], math.Float32bits(values[p]))
	}
	b.n++
}

// ReadRows drives the SEQHDR/MINISTEP/PARAMS state machine (spec
// §4.H) over s, emitting one row per MINISTEP/PARAMS pair into a fresh
// RowBuffer. positions indexes into each PARAMS vector, selecting which
// columns of the plan built by Columns are packed into each row.
//
// report_step starts at 1 with the first SEQHDR and increments by 1 on
// every subsequent SEQHDR; ministep is packed verbatim from each
// MINISTEP array's single int32 element.
//
// A missing initial SEQHDR, or any SEQHDR not immediately followed by a
// MINISTEP, is a fatal ecl3err.ProtocolErr. EOF while a PARAMS record is
// expected is ecl3err.TruncatedStream. EOF at the top of the loop (where
// either a SEQHDR or the end of the file is valid) is clean termination.
func ReadRows(s *arraystream.Stream, positions []int) (*RowBuffer, error) {
	rows := NewRowBuffer(len(positions))

	var reportStep int32

	a, err := s.Next()
	if err != nil {
		return nil, err
	}
	if err := expect(a, kwSEQHDR, keyword.INTE); err != nil {
		return nil, err
	}
	reportStep = 1

	for {
		a, err := s.Next()
		if err != nil {
			return nil, err
		}
		if a.Empty() {
			return rows, nil
		}

		if trimKeyword(a.Keyword) == trimKeyword(kwSEQHDR) {
			if err := expect(a, kwSEQHDR, keyword.INTE); err != nil {
				return nil, err
			}
			reportStep++

			next, err := s.Next()
			if err != nil {
				return nil, err
			}
			if next.Empty() || trimKeyword(next.Keyword) != trimKeyword(kwMINISTEP) {
				return nil, ecl3err.ProtocolError(kwMINISTEP, describe(next))
			}
			a = next
		}

		if err := expect(a, kwMINISTEP, keyword.INTE); err != nil {
			return nil, err
		}
		if len(a.Body) != 4 {
			return nil, ecl3err.ProtocolError("MINISTEP with 1 element", describe(a))
		}
		ministep := int32(binary.NativeEndian.Uint32(a.Body))

		params, err := s.Next()
		if err != nil {
			return nil, err
		}
		if params.Empty() {
			return nil, ecl3err.TruncatedStream
		}
		if err := expect(params, kwPARAMS, keyword.REAL); err != nil {
			return nil, err
		}

		values := asFloat32s(params.Body)
		for _, p := range positions {
			if p < 0 || p >= len(values) {
				return nil, ecl3err.ProtocolError("PARAMS wide enough for column plan", describe(params))
			}
		}
		rows.appendRow(reportStep, ministep, values, positions)
	}
}

func expect(a *array.Array, wantKeyword string, wantType keyword.Type) error {
	if trimKeyword(a.Keyword) != trimKeyword(wantKeyword) || a.Type != wantType {
		return ecl3err.ProtocolError(wantKeyword, describe(a))
	}
	return nil
}

func describe(a *array.Array) string {
	if a == nil || a.Empty() {
		return "eof"
	}
	return trimKeyword(a.Keyword)
}

func trimKeyword(s string) string { return strings.TrimRight(s, " ") }

func asFloat32s(body []byte) []float32 {
	n := len(body) / 4
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = math.Float32frombits(binary.NativeEndian.Uint32(body[i*4:]))
	}
	return out
}
