package summary

import "testing"

func TestClassifierCompletion(t *testing.T) {
	if got := Identifies(WGNAMES, "COFR    "); got != 2 {
		t.Errorf("Identifies(WGNAMES, COFR) = %d, want 2", got)
	}
	if got := Identifies(NUMS, "COFR    "); got != 2 {
		t.Errorf("Identifies(NUMS, COFR) = %d, want 2", got)
	}
	if got := Identifies(LGRS, "COFR    "); got != 0 {
		t.Errorf("Identifies(LGRS, COFR) = %d, want 0", got)
	}
}

func TestClassifierSingleLetterFamilies(t *testing.T) {
	for _, kw := range []string{"AQWLEN  ", "BPR     ", "RPR     "} {
		if got := Identifies(NUMS, kw); got != 1 {
			t.Errorf("Identifies(NUMS, %q) = %d, want 1", kw, got)
		}
		for _, other := range []string{WGNAMES, LGRS, NUMLX, NUMLY, NUMLZ} {
			if got := Identifies(other, kw); got != 0 {
				t.Errorf("Identifies(%q, %q) = %d, want 0", other, kw, got)
			}
		}
	}
}

func TestClassifierGPWFamilies(t *testing.T) {
	for _, kw := range []string{"GOPR    ", "POIL    ", "WOPR    "} {
		if got := Identifies(WGNAMES, kw); got != 1 {
			t.Errorf("Identifies(WGNAMES, %q) = %d, want 1", kw, got)
		}
		for _, other := range []string{NUMS, LGRS, NUMLX, NUMLY, NUMLZ} {
			if got := Identifies(other, kw); got != 0 {
				t.Errorf("Identifies(%q, %q) = %d, want 0", other, kw, got)
			}
		}
	}
}

func TestClassifierExceptions(t *testing.T) {
	exceptions := []string{
		"GMCTP   ", "GMCTG   ", "GMCTW   ", "GMCPL   ",
		"WMCTL   ", "WNEWTON ",
		"NEWTON  ", "NAIMFRAC", "NLINEARS", "NLINSMIN", "NLINSMAX",
		"STEPTYPE", "SOIL    ", "SGAS    ", "SWAT    ",
	}
	for _, kw := range exceptions {
		for _, id := range PartialIdentifiers() {
			if got := Identifies(id, kw); got != 0 {
				t.Errorf("Identifies(%q, %q) = %d, want 0", id, kw, got)
			}
		}
	}
}

func TestClassifierLFamilies(t *testing.T) {
	if got := Identifies(LGRS, "LBXYZ   "); got != 4 {
		t.Errorf("Identifies(LGRS, LBXYZ) = %d, want 4", got)
	}
	if got := Identifies(WGNAMES, "LWOPR   "); got != 2 {
		t.Errorf("Identifies(WGNAMES, LWOPR) = %d, want 2", got)
	}
	if got := Identifies(WGNAMES, "LCOFR   "); got != 4 {
		t.Errorf("Identifies(WGNAMES, LCOFR) = %d, want 4", got)
	}
	if got := Identifies(WGNAMES, "LXFOO   "); got != 0 {
		t.Errorf("Identifies(WGNAMES, LXFOO) = %d, want 0", got)
	}
}

func TestClassifierUnrelatedFirstChar(t *testing.T) {
	if got := Identifies(WGNAMES, "TIME    "); got != 0 {
		t.Errorf("Identifies(WGNAMES, TIME) = %d, want 0", got)
	}
	if got := Identifies(WGNAMES, "YEARS   "); got != 0 {
		t.Errorf("Identifies(WGNAMES, YEARS) = %d, want 0", got)
	}
}

func TestPartialIdentifiersIsClosedAndCopy(t *testing.T) {
	ids := PartialIdentifiers()
	if len(ids) != 6 {
		t.Fatalf("len(PartialIdentifiers()) = %d, want 6", len(ids))
	}
	ids[0] = "CLOBBERED"
	if Identifiers[0] != WGNAMES {
		t.Errorf("PartialIdentifiers() leaked a mutable reference to Identifiers")
	}
}
