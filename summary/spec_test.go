package summary

import "testing"

func TestSpecKeywordsClosedSetAndCopy(t *testing.T) {
	kws := SpecKeywords()
	if len(kws) != 25 {
		t.Fatalf("len(SpecKeywords()) = %d, want 25", len(kws))
	}
	if kws[0] != "INTEHEAD" || kws[len(kws)-1] != "TIMESTMP" {
		t.Errorf("unexpected first/last keyword: %q / %q", kws[0], kws[len(kws)-1])
	}

	kws[0] = "CLOBBERED"
	fresh := SpecKeywords()
	if fresh[0] != "INTEHEAD" {
		t.Errorf("SpecKeywords() leaked a mutable reference")
	}
}

func TestUnitSystemName(t *testing.T) {
	cases := []struct {
		sys  int
		want string
	}{
		{1, "METRIC"},
		{2, "FIELD"},
		{3, "LAB"},
		{4, "PVT-M"},
	}
	for _, c := range cases {
		got, ok := UnitSystemName(c.sys)
		if !ok || got != c.want {
			t.Errorf("UnitSystemName(%d) = %q, %v, want %q, true", c.sys, got, ok, c.want)
		}
	}
	if _, ok := UnitSystemName(999); ok {
		t.Errorf("UnitSystemName(999) should not be recognised")
	}
}

func TestSimulatorName(t *testing.T) {
	cases := []struct {
		id   int
		want string
	}{
		{100, "ECLIPSE 100"},
		{300, "ECLIPSE 300"},
		{500, "ECLIPSE 300 (thermal option)"},
		{700, "INTERSECT"},
		{800, "FrontSim"},
	}
	for _, c := range cases {
		got, ok := SimulatorName(c.id)
		if !ok || got != c.want {
			t.Errorf("SimulatorName(%d) = %q, %v, want %q, true", c.id, got, ok, c.want)
		}
	}
	if _, ok := SimulatorName(1); ok {
		t.Errorf("SimulatorName(1) should not be recognised")
	}
}
