/*Package array implements the array reader (component D): one logical
array is a header record (name, element count, type tag) followed by one
or more blocked body records. This package assembles the two into a single
in-memory Array with its body already byte-swapped into host order.
*/
package array

import "github.com/equinor/ecl3/keyword"

// Array is one named, typed, length-prefixed sequence read from an ecl3
// file. Body is stored in host byte order and is exactly
// Count*element-size(Type) bytes long, except when Count is the
// end-of-stream sentinel (-1), in which case Body is empty.
//
// Keyword is the raw 8-byte, right-space-padded name exactly as it
// appears on disk; callers that want a trimmed name should call
// strings.TrimRight(a.Keyword, " ").
type Array struct {
	Keyword string
	Type    keyword.Type
	Count   int32
	Body    []byte
}

// Empty reports whether a is the end-of-stream sentinel used by the array
// stream (component E), i.e. Count == -1.
func (a *Array) Empty() bool { return a.Count == -1 }
