package selection

import "testing"

func TestEndTime(t *testing.T) {
	tests := []struct {
		start   string
		minutes int
		want    string
	}{
		{"9:00 AM", 120, "11:00 AM"},
		{"11:15 AM", 120, "1:15 PM"},
		{"1:15 PM", 120, "3:15 PM"},
		{"11:00 PM", 120, "1:00 AM"},  // wraps past midnight, not clamped
		{"12:00 AM", 60, "1:00 AM"},   // 12 AM is hour 0
		{"12:30 PM", 45, "1:15 PM"},   // 12 PM stays noon
		{"11:45 AM", 30, "12:15 PM"},  // AM/PM boundary
		{"11:45 PM", 30, "12:15 AM"},  // midnight boundary
	}
	for _, tt := range tests {
		got, err := EndTime(tt.start, tt.minutes)
		if err != nil {
			t.Fatalf("EndTime(%q, %d): %v", tt.start, tt.minutes, err)
		}
		if got != tt.want {
			t.Errorf("EndTime(%q, %d) = %q, want %q", tt.start, tt.minutes, got, tt.want)
		}
	}
}

func TestEndTime_RejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "9:00", "25:00 AM", "9:61 AM", "9:00 XX", "noon"} {
		if _, err := EndTime(s, 60); err == nil {
			t.Errorf("EndTime(%q) expected error", s)
		}
	}
}
