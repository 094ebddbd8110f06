package array

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/equinor/ecl3/ecl3err"
	"github.com/equinor/ecl3/keyword"
	"github.com/equinor/ecl3/record"
)

const headerSize = 16

// ReadArray reads one array from r into dst: a single header record
// followed by one or more blocked body records. dst.Body is reused and
// grown (never shrunk) across calls, the same buffer-reuse discipline
// guppy's snapio.Buffer.read applies to particle fields.
//
// scratch is a reusable buffer for raw record bytes; pass nil on the first
// call and thread the returned slice back in on subsequent calls to avoid
// reallocating on every record.
//
// A clean EOF before the header is reported as ecl3err.Eof, exactly as
// record.ReadRecord reports it; callers that want the end-of-stream
// sentinel behaviour of component E should catch that themselves. EOF at a
// record boundary partway through the body is ecl3err.BodyUnderrun; EOF
// inside a body record is ecl3err.TruncatedRecord, as record.ReadRecord
// reports it.
func ReadArray(r io.Reader, scratch []byte, dst *Array) ([]byte, error) {
	header, err := record.ReadRecord(r, scratch)
	if err != nil {
		return scratch, err
	}
	scratch = header

	if len(header) != headerSize {
		return scratch, fmt.Errorf("array: header record has %d bytes, want %d: %w",
			len(header), headerSize, ecl3err.InvalidHeader)
	}

	name := string(header[0:8])
	count := int32(binary.BigEndian.Uint32(header[8:12]))
	tag := string(header[12:16])

	if count < 0 {
		return scratch, fmt.Errorf("array %q: negative element count %d: %w",
			strings.TrimRight(name, " "), count, ecl3err.InvalidHeader)
	}

	typ, err := keyword.Typeid(tag)
	if err != nil {
		return scratch, fmt.Errorf("array %q: %w", strings.TrimRight(name, " "), ecl3err.UnknownType(tag))
	}

	elemSize, err := keyword.ElementSize(typ)
	if err != nil {
		return scratch, err
	}

	dst.Keyword = name
	dst.Type = typ
	dst.Count = count
	dst.Body = dst.Body[:0]

	remaining := int(count)
	for remaining > 0 {
		body, err := record.ReadRecord(r, scratch)
		if err != nil {
			if errors.Is(err, ecl3err.Eof) {
				return scratch, fmt.Errorf("array %q: %w", strings.TrimRight(name, " "), ecl3err.BodyUnderrun)
			}
			return scratch, err
		}
		scratch = body

		if elemSize == 0 {
			return scratch, fmt.Errorf("array %q: type %s has zero element size but count %d: %w",
				strings.TrimRight(name, " "), keyword.TypeName(typ), count, ecl3err.InvalidArgs)
		}
		if len(body)%elemSize != 0 {
			return scratch, fmt.Errorf("array %q: body record of %d bytes is not a multiple of element size %d: %w",
				strings.TrimRight(name, " "), len(body), elemSize, ecl3err.InvalidArgs)
		}

		n := len(body) / elemSize
		if n > remaining {
			return scratch, fmt.Errorf("array %q: body record carries %d elements but only %d remain: %w",
				strings.TrimRight(name, " "), n, remaining, ecl3err.BodyOverrun)
		}

		prev := len(dst.Body)
		dst.Body = append(dst.Body, make([]byte, n*elemSize)...)
		if err := keyword.ToNative(dst.Body[prev:], body[:n*elemSize], typ, n); err != nil {
			return scratch, err
		}

		remaining -= n
	}

	return scratch, nil
}
