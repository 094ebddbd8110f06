package summary

import (
	"strconv"
	"strings"
)

// voidString is the sentinel used to mark a string-identified column as
// garbage; an all-spaces entry means the same thing.
const voidString = ":+:+:+:+"

// Column is one qualified column name together with the index into the
// input arrays (and therefore into each PARAMS vector) it was built from.
type Column struct {
	Name        string
	SourceIndex int
}

// ColumnsInput carries the parallel arrays Columns needs. Keywords,
// WGNAMES, and LGRS are CHAR-like; their entries may be the space-padded
// 8-byte strings cut from an Array's Body or already trimmed, since Columns
// pads keywords for the classifier and trims every name part itself.
// NUMS, NUMLX, NUMLY, NUMLZ are INTE-derived.
//
// WGNAMES and NUMS are required (spec §4.G); LGRS/NUMLX/NUMLY/NUMLZ are
// optional and, when omitted, simply never contribute to a qualified name
// even if Identifies would otherwise say they should.
type ColumnsInput struct {
	Keywords []string
	WGNAMES  []string
	NUMS     []int32
	LGRS     []string
	NUMLX    []int32
	NUMLY    []int32
	NUMLZ    []int32

	// Separator is placed between the keyword and each qualifier, ":" in
	// the common case.
	Separator string
}

// Columns walks the parallel identifier arrays in in and emits the
// qualified column name for each row, in the fixed order WGNAMES, NUMS,
// LGRS, NUMLX, NUMLY, NUMLZ. A row is dropped entirely if any identifier
// array that qualifies its keyword holds a void entry at that row, or if
// its computed name duplicates one already emitted.
//
// Columns is a pure function of in: calling it twice on the same input
// yields identical output, satisfying the resolver idempotence property
// (spec §8).
func Columns(in ColumnsInput) []Column {
	n := len(in.Keywords)
	seen := make(map[string]bool, n)
	out := make([]Column, 0, n)

	hasLGRS := in.LGRS != nil
	hasNUMLX := in.NUMLX != nil
	hasNUMLY := in.NUMLY != nil
	hasNUMLZ := in.NUMLZ != nil

	for i := 0; i < n; i++ {
		kw := padTo8(in.Keywords[i])
		name := strings.TrimRight(in.Keywords[i], " ")

		ok := true
		if Identifies(WGNAMES, kw) > 0 {
			v := in.WGNAMES[i]
			if isVoidString(v) {
				ok = false
			} else {
				name += in.Separator + strings.TrimRight(v, " ")
			}
		}
		if ok && Identifies(NUMS, kw) > 0 {
			v := in.NUMS[i]
			if isVoidInt(v) {
				ok = false
			} else {
				name += in.Separator + strconv.FormatInt(int64(v), 10)
			}
		}
		if ok && hasLGRS && Identifies(LGRS, kw) > 0 {
			v := in.LGRS[i]
			if isVoidString(v) {
				ok = false
			} else {
				name += in.Separator + strings.TrimRight(v, " ")
			}
		}
		if ok && hasNUMLX && Identifies(NUMLX, kw) > 0 {
			v := in.NUMLX[i]
			if isVoidInt(v) {
				ok = false
			} else {
				name += in.Separator + strconv.FormatInt(int64(v), 10)
			}
		}
		if ok && hasNUMLY && Identifies(NUMLY, kw) > 0 {
			v := in.NUMLY[i]
			if isVoidInt(v) {
				ok = false
			} else {
				name += in.Separator + strconv.FormatInt(int64(v), 10)
			}
		}
		if ok && hasNUMLZ && Identifies(NUMLZ, kw) > 0 {
			v := in.NUMLZ[i]
			if isVoidInt(v) {
				ok = false
			} else {
				name += in.Separator + strconv.FormatInt(int64(v), 10)
			}
		}

		if !ok {
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, Column{Name: name, SourceIndex: i})
	}

	return out
}

func padTo8(s string) string {
	if len(s) >= 8 {
		return s[:8]
	}
	return s + strings.Repeat(" ", 8-len(s))
}

// isVoidString reports whether s is one of the two string void sentinels:
// the literal ":+:+:+:+", or an entry that is entirely spaces.
func isVoidString(s string) bool {
	if s == voidString {
		return true
	}
	return strings.TrimSpace(s) == ""
}

// isVoidInt reports whether i is a void integer sentinel: any negative
// value.
func isVoidInt(i int32) bool { return i < 0 }
