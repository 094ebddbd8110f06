package array

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/equinor/ecl3/ecl3err"
	"github.com/equinor/ecl3/internal/eq"
	"github.com/equinor/ecl3/keyword"
)

// frameRecord wraps payload in Fortran head/tail int32-be markers.
func frameRecord(buf *bytes.Buffer, payload []byte) {
	n := len(payload)
	var marker [4]byte
	binary.BigEndian.PutUint32(marker[:], uint32(n))
	buf.Write(marker[:])
	buf.Write(payload)
	buf.Write(marker[:])
}

// writeIntArray writes a complete [keyword, INTE, values...] array, split
// into blocks of at most blockElems elements each.
func writeIntArray(buf *bytes.Buffer, name string, values []int32, blockElems int) {
	header := make([]byte, 16)
	copy(header[0:8], padTo8(name))
	binary.BigEndian.PutUint32(header[8:12], uint32(len(values)))
	copy(header[12:16], "INTE")
	frameRecord(buf, header)

	for i := 0; i < len(values); i += blockElems {
		end := i + blockElems
		if end > len(values) {
			end = len(values)
		}
		block := make([]byte, (end-i)*4)
		for j := i; j < end; j++ {
			binary.BigEndian.PutUint32(block[(j-i)*4:], uint32(values[j]))
		}
		frameRecord(buf, block)
	}
}

func padTo8(s string) string {
	for len(s) < 8 {
		s += " "
	}
	return s
}

func TestReadArrayIntRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	writeIntArray(&buf, "WWCT", []int32{1, 2, 3}, 1000)

	var a Array
	_, err := ReadArray(&buf, nil, &a)
	if err != nil {
		t.Fatalf("ReadArray: %v", err)
	}
	if a.Keyword != "WWCT    " {
		t.Errorf("Keyword = %q, want %q", a.Keyword, "WWCT    ")
	}
	if a.Type != keyword.INTE {
		t.Errorf("Type = %v, want INTE", a.Type)
	}
	if a.Count != 3 {
		t.Errorf("Count = %d, want 3", a.Count)
	}
	if len(a.Body) != 12 {
		t.Fatalf("len(Body) = %d, want 12", len(a.Body))
	}
	got := []int32{
		int32(binary.NativeEndian.Uint32(a.Body[0:4])),
		int32(binary.NativeEndian.Uint32(a.Body[4:8])),
		int32(binary.NativeEndian.Uint32(a.Body[8:12])),
	}
	want := []int32{1, 2, 3}
	if !eq.Int32s(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReadArrayBlockedDoub(t *testing.T) {
	var buf bytes.Buffer

	count := 2005
	header := make([]byte, 16)
	copy(header[0:8], padTo8("ZBLK"))
	binary.BigEndian.PutUint32(header[8:12], uint32(count))
	copy(header[12:16], "DOUB")
	frameRecord(&buf, header)

	written := 0
	blockSizes := []int{1000, 1000, 5}
	for _, n := range blockSizes {
		block := make([]byte, n*8)
		for i := 0; i < n; i++ {
			binary.BigEndian.PutUint64(block[i*8:], uint64(written+i))
		}
		frameRecord(&buf, block)
		written += n
	}

	var a Array
	_, err := ReadArray(&buf, nil, &a)
	if err != nil {
		t.Fatalf("ReadArray: %v", err)
	}
	if a.Count != int32(count) {
		t.Errorf("Count = %d, want %d", a.Count, count)
	}
	if len(a.Body) != count*8 {
		t.Errorf("len(Body) = %d, want %d", len(a.Body), count*8)
	}
}

func TestReadArrayUnknownType(t *testing.T) {
	var buf bytes.Buffer
	header := make([]byte, 16)
	copy(header[0:8], padTo8("FOO"))
	binary.BigEndian.PutUint32(header[8:12], 0)
	copy(header[12:16], "BOGU")
	frameRecord(&buf, header)

	var a Array
	_, err := ReadArray(&buf, nil, &a)
	var ute *ecl3err.UnknownTypeError
	if !errors.As(err, &ute) {
		t.Fatalf("expected UnknownTypeError, got %v", err)
	}
}

func TestReadArrayBodyUnderrun(t *testing.T) {
	var buf bytes.Buffer
	header := make([]byte, 16)
	copy(header[0:8], padTo8("WWCT"))
	binary.BigEndian.PutUint32(header[8:12], 5) // claims 5, provides 0
	copy(header[12:16], "INTE")
	frameRecord(&buf, header)

	var a Array
	_, err := ReadArray(&buf, nil, &a)
	if !errors.Is(err, ecl3err.BodyUnderrun) {
		t.Errorf("expected BodyUnderrun, got %v", err)
	}
}

func TestReadArrayBodyOverrun(t *testing.T) {
	var buf bytes.Buffer
	header := make([]byte, 16)
	copy(header[0:8], padTo8("WWCT"))
	binary.BigEndian.PutUint32(header[8:12], 2) // claims 2
	copy(header[12:16], "INTE")
	frameRecord(&buf, header)
	block := make([]byte, 3*4) // provides 3
	frameRecord(&buf, block)

	var a Array
	_, err := ReadArray(&buf, nil, &a)
	if !errors.Is(err, ecl3err.BodyOverrun) {
		t.Errorf("expected BodyOverrun, got %v", err)
	}
}

