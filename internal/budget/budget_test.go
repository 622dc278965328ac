package budget

import "testing"

func TestPlan(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		present        int
		wantPerSection int
		wantOverview   int
	}{
		{"default target three sections", 800, 3, 160, 320},
		{"default target two sections", 800, 2, 240, 320},
		{"small target floors apply", 100, 3, 80, 200},
		{"no sections boosts overview", 800, 0, 480, 640},
		{"no sections small target", 300, 0, 180, 400},
		{"large target", 2000, 3, 400, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Plan(tt.total, tt.present)
			if b.PerSection != tt.wantPerSection {
				t.Errorf("Plan(%d, %d).PerSection = %d, want %d",
					tt.total, tt.present, b.PerSection, tt.wantPerSection)
			}
			if b.Overview != tt.wantOverview {
				t.Errorf("Plan(%d, %d).Overview = %d, want %d",
					tt.total, tt.present, b.Overview, tt.wantOverview)
			}
			if b.TotalTarget != tt.total {
				t.Errorf("TotalTarget = %d, want %d", b.TotalTarget, tt.total)
			}
			if b.ExpandBelow != ExpandBelow {
				t.Errorf("ExpandBelow = %v, want %v", b.ExpandBelow, ExpandBelow)
			}
		})
	}
}

func TestPlanFloors(t *testing.T) {
	b := Plan(0, 5)
	if b.PerSection < 80 {
		t.Errorf("PerSection = %d, want >= 80", b.PerSection)
	}
	if b.Overview < 200 {
		t.Errorf("Overview = %d, want >= 200", b.Overview)
	}

	b = Plan(0, 0)
	if b.Overview < 400 {
		t.Errorf("no-section Overview = %d, want >= 400", b.Overview)
	}
}

func TestPlanMonotonicity(t *testing.T) {
	for _, present := range []int{0, 1, 3, 7} {
		prev := Plan(100, present)
		for total := 150; total <= 5000; total += 50 {
			cur := Plan(total, present)
			if cur.PerSection < prev.PerSection {
				t.Fatalf("PerSection decreased from %d to %d at total=%d present=%d",
					prev.PerSection, cur.PerSection, total, present)
			}
			if cur.Overview < prev.Overview {
				t.Fatalf("Overview decreased from %d to %d at total=%d present=%d",
					prev.Overview, cur.Overview, total, present)
			}
			prev = cur
		}
	}
}
