package summary

// SpecKeywords returns the closed, ordered list of array keywords a
// .SMSPEC file may carry, exactly as ecl3_smspec_keywords enumerates them.
// The slice is a fresh copy on every call; callers are free to mutate it.
func SpecKeywords() []string {
	out := make([]string, len(smspecKeywords))
	copy(out, smspecKeywords)
	return out
}

var smspecKeywords = []string{
	"INTEHEAD",
	"RESTART ",
	"DIMENS  ",
	"KEYWORDS",
	"WGNAMES ",
	"NAMES   ",
	"NUMS    ",
	"LGRS    ",
	"NUMLX   ",
	"NUMLY   ",
	"NUMLZ   ",
	"LENGTHS ",
	"LENUNITS",
	"MEASRMNT",
	"UNITS   ",
	"STARTDAT",
	"LGRNAMES",
	"LGRVEC  ",
	"LGRTIMES",
	"RUNTIMEI",
	"RUNTIMED",
	"STEPRESN",
	"XCOORD  ",
	"YCOORD  ",
	"TIMESTMP",
}

// UnitSystem is the closed set of unit systems a .SMSPEC's INTEHEAD can
// declare.
type UnitSystem int

const (
	Metric UnitSystem = 1
	Field  UnitSystem = 2
	Lab    UnitSystem = 3
	PvtM   UnitSystem = 4
)

// UnitSystemName returns the display name for sys and true, or ("", false)
// if sys is not one of the recognised unit systems.
func UnitSystemName(sys int) (string, bool) {
	switch UnitSystem(sys) {
	case Metric:
		return "METRIC", true
	case Field:
		return "FIELD", true
	case Lab:
		return "LAB", true
	case PvtM:
		return "PVT-M", true
	default:
		return "", false
	}
}

// Simulator is the closed set of simulator identifiers a .SMSPEC's
// INTEHEAD can declare.
type Simulator int

const (
	Eclipse100        Simulator = 100
	Eclipse300        Simulator = 300
	Eclipse300Thermal Simulator = 500
	Intersect         Simulator = 700
	FrontSim          Simulator = 800
)

// SimulatorName returns the display name for id and true, or ("", false)
// if id is not one of the recognised simulator identifiers.
func SimulatorName(id int) (string, bool) {
	switch Simulator(id) {
	case Eclipse100:
		return "ECLIPSE 100", true
	case Eclipse300:
		return "ECLIPSE 300", true
	case Eclipse300Thermal:
		return "ECLIPSE 300 (thermal option)", true
	case Intersect:
		return "INTERSECT", true
	case FrontSim:
		return "FrontSim", true
	default:
		return "", false
	}
}
