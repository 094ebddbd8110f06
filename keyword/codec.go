package keyword

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/equinor/ecl3/ecl3err"
)

// ToNative copies n elements of type t from src (big-endian, on-disk
// representation) to dst (host-native representation). For CHAR/CNNN,
// bytes pass through unchanged since ASCII text has no endianness; for
// MESS, there is nothing to copy since its element size is 0. dst and src
// must each be at least n*ElementSize(t) bytes; the caller owns that
// precondition, mirroring guppy's lib/lib.go WriteAsBytes/ReadAsBytes,
// which likewise trust the caller to size buffers correctly.
//
// ToNative fails with ecl3err.InvalidArgs if t is not a recognised type.
func ToNative(dst, src []byte, t Type, n int) error {
	return convert(dst, src, t, n, binary.BigEndian, hostOrder)
}

// ToDisk is the host-to-disk inverse of ToNative.
func ToDisk(dst, src []byte, t Type, n int) error {
	return convert(dst, src, t, n, hostOrder, binary.BigEndian)
}

func convert(dst, src []byte, t Type, n int, from, to binary.ByteOrder) error {
	if width, ok := cWidth(t); ok {
		return copyBytes(dst, src, width*n)
	}

	switch t {
	case MESS:
		return nil

	case CHAR:
		return copyBytes(dst, src, 8*n)

	case INTE, LOGI, X231:
		for i := 0; i < n; i++ {
			v := from.Uint32(src[i*4 : i*4+4])
			to.PutUint32(dst[i*4:i*4+4], v)
		}
		return nil

	case REAL:
		for i := 0; i < n; i++ {
			v := from.Uint32(src[i*4 : i*4+4])
			to.PutUint32(dst[i*4:i*4+4], v)
		}
		return nil

	case DOUB:
		for i := 0; i < n; i++ {
			v := from.Uint64(src[i*8 : i*8+8])
			to.PutUint64(dst[i*8:i*8+8], v)
		}
		return nil
	}

	return fmt.Errorf("endian codec: %w", ecl3err.InvalidArgs)
}

func copyBytes(dst, src []byte, n int) error {
	copy(dst[:n], src[:n])
	return nil
}

// hostOrder is the machine's native byte order, detected the same way
// guppy's lib/lib.go SystemByteOrder does: write a known uint16 through an
// unsafe cast and inspect which byte lands first. ecl3 files are always
// big-endian on disk (§6); this only matters for the host side of the
// conversion.
var hostOrder = detectHostOrder()

// detectHostOrder inspects the machine's actual in-memory layout of a
// uint16, the same trick guppy's lib/lib.go SystemByteOrder uses, rather
// than assuming a platform.
func detectHostOrder() binary.ByteOrder {
	var b [2]byte
	*(*uint16)(unsafe.Pointer(&b[0])) = uint16(0x0001)
	if b[0] == 0 {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
