package dialogue

import "testing"

func TestParseSelection(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"1", 1, true},
		{"10", 10, true},
		{"two", 2, true},
		{"Ten", 10, true},
		{"second", 2, true},
		{"fifth", 5, true},
		{"  3  ", 3, true},
		{"FIRST", 1, true},
		{"0", 0, false},
		{"11", 0, false},
		{"eleventh", 0, false},
		{"yes", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseSelection(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseSelection(%q) = %d, %v, want %d, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}
