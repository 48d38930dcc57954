package regions

import "testing"

func TestLookup(t *testing.T) {
	p, ok := Lookup("İstanbul")
	if !ok {
		t.Fatal("İstanbul missing from directory")
	}
	if p.Density != 5 {
		t.Errorf("İstanbul density = %d, want 5", p.Density)
	}

	if _, ok := Lookup("Atlantis"); ok {
		t.Error("unknown province resolved")
	}
}

func TestMatchSubstring(t *testing.T) {
	p, ok := MatchSubstring("Kadıköy İstanbul sahil yolu")
	if !ok || p.Name != "İstanbul" {
		t.Errorf("MatchSubstring = %v/%v, want İstanbul", p.Name, ok)
	}

	if _, ok := MatchSubstring("Toros Dağları"); ok {
		t.Error("matched a province inside an unrelated name")
	}
}

func TestAllCoversEveryProvince(t *testing.T) {
	if got := len(All()); got != 81 {
		t.Errorf("directory holds %d provinces, want 81", got)
	}
}

func TestDensityDefault(t *testing.T) {
	if got := Density("Atlantis"); got != 1 {
		t.Errorf("unknown province density = %d, want 1", got)
	}
}
