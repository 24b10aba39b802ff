package token

import "testing"

func TestSplitNumAffix(t *testing.T) {
	tests := []struct {
		word  string
		lead  uint
		core  string
		trail uint
	}{
		{"32week4", 32, "week", 4},
		{"10days", 10, "days", 0},
		{"months5", 0, "months", 5},
		{"year", 0, "year", 0},
		{"rep4", 0, "rep", 4},
		{"", 0, "", 0},
	}
	for _, tt := range tests {
		lead, core, trail := SplitNumAffix(tt.word)
		if lead != tt.lead || core != tt.core || trail != tt.trail {
			t.Errorf("SplitNumAffix(%q) = (%d, %q, %d), want (%d, %q, %d)",
				tt.word, lead, core, trail, tt.lead, tt.core, tt.trail)
		}
	}
}
