/*Package summary implements the domain-specific layer on top of the record
codec: the keyword classifier (component F), the column resolver
(component G), the row materialiser (component H), and the small lookup
tables the .SMSPEC/.UNSMRY external interface defines (component A').
*/
package summary

// The identifier arrays a keyword can be qualified by, in the fixed order
// Columns (component G) walks them. Exported as Identifiers so callers can
// iterate the closed universe the way the classifier's contract (spec §4.F)
// expects: "callers iterate the set of possible tags and stop when they've
// collected N positive hits."
const (
	WGNAMES = "WGNAMES "
	NUMS    = "NUMS    "
	LGRS    = "LGRS    "
	NUMLX   = "NUMLX   "
	NUMLY   = "NUMLY   "
	NUMLZ   = "NUMLZ   "
)

// Identifiers is the closed universe of 8-byte, space-padded identifier
// array tags that Identifies ever reports a positive hit against.
var Identifiers = []string{WGNAMES, NUMS, LGRS, NUMLX, NUMLY, NUMLZ}

// Identifies reports whether id (one of the Identifiers tags) qualifies
// keyword, both given as 8-byte space-padded ASCII. A return of 0 means id
// is irrelevant to keyword; a positive N means keyword needs N identifier
// arrays in total to be uniquely named, one of which is id.
//
// Both arguments must already be exactly 8 bytes (space-padded); this
// mirrors the wire format keywords always carry, and keeps the classifier a
// pure function of two fixed-width byte strings the way
// ecl3_params_identifies is.
func Identifies(id, kw string) int {
	if len(kw) != 8 {
		return 0
	}

	switch kw[0] {
	case 'A', 'B':
		return oneIf(id == NUMS)

	case 'C':
		return twoIf(id == WGNAMES || id == NUMS)

	case 'G':
		if kw[1] == 'M' {
			return 0
		}
		return oneIf(id == WGNAMES)

	case 'W':
		// F/G/W-M mnemonics are reserved for other purposes and aren't
		// parametrised; WNEWTON is likewise exempt even though it would
		// otherwise look like a well vector.
		if kw[1] == 'M' {
			return 0
		}
		if kw == "WNEWTON " {
			return 0
		}
		return oneIf(id == WGNAMES)

	case 'P':
		return oneIf(id == WGNAMES)

	case 'R':
		return oneIf(id == NUMS)

	case 'L':
		switch kw[1] {
		case 'B':
			return fourIf(id == LGRS || id == NUMLX || id == NUMLY || id == NUMLZ)
		case 'C':
			return fourIf(id == LGRS || id == WGNAMES || id == NUMLX || id == NUMLY || id == NUMLZ)
		case 'W':
			return twoIf(id == LGRS || id == WGNAMES)
		}
		return 0

	case 'N':
		switch kw {
		case "NEWTON  ", "NAIMFRAC", "NLINEARS", "NLINSMIN", "NLINSMAX":
			return 0
		}
		return oneIf(id == WGNAMES)

	case 'S':
		if kw == "STEPTYPE" {
			return 0
		}
		switch kw[:4] {
		case "SGAS", "SOIL", "SWAT":
			return 0
		}
		return twoIf(id == WGNAMES || id == NUMS)
	}

	return 0
}

// PartialIdentifiers returns the closed universe of identifier array tags,
// i.e. a copy of Identifiers. It exists as a function (rather than
// exporting the slice directly for mutation) to match the read-only,
// call-site-friendly shape of ecl3_params_partial_identifiers.
func PartialIdentifiers() []string {
	out := make([]string, len(Identifiers))
	copy(out, Identifiers)
	return out
}

func oneIf(ok bool) int {
	if ok {
		return 1
	}
	return 0
}

func twoIf(ok bool) int {
	if ok {
		return 2
	}
	return 0
}

func fourIf(ok bool) int {
	if ok {
		return 4
	}
	return 0
}
