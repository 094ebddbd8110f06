/*Package eq is a simple package for telling whether two arrays are equal to
one another. It exists so test files can compare slices without pulling in
a third-party assertion library for what is, in the end, one loop.
*/
package eq

// Strings returns true if two []string slices are the same and false
// otherwise.
func Strings(x, y []string) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Ints returns true if two []int slices are the same and false otherwise.
func Ints(x, y []int) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Int32s returns true if two []int32 slices are the same and false
// otherwise.
func Int32s(x, y []int32) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Float32s returns true if two []float32 slices are the same and false
// otherwise.
func Float32s(x, y []float32) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Bytes returns true if two []byte slices are the same and false otherwise.
func Bytes(x, y []byte) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
