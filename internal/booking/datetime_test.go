package booking

import "testing"

func TestParseAppointment(t *testing.T) {
	date, timeOfDay, err := ParseAppointment("2025-12-04 9:00 AM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if date != "2025-12-04" {
		t.Errorf("date = %q, want 2025-12-04", date)
	}
	if timeOfDay != "09:00:00" {
		t.Errorf("time = %q, want 09:00:00", timeOfDay)
	}

	date, timeOfDay, err = ParseAppointment("2025-11-04 1:15 PM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if date != "2025-11-04" || timeOfDay != "13:15:00" {
		t.Errorf("got (%q, %q), want (2025-11-04, 13:15:00)", date, timeOfDay)
	}
}

func TestParseAppointment_Malformed(t *testing.T) {
	for _, s := range []string{"", "tomorrow", "2025-12-04", "9:00 AM", "2025-12-04 25:00 PM", "04/12/2025 9:00 AM"} {
		if _, _, err := ParseAppointment(s); err == nil {
			t.Errorf("ParseAppointment(%q) expected error", s)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"Scheduled", "Completed", "Cancelled"} {
		if _, err := ParseStatus(s); err != nil {
			t.Errorf("ParseStatus(%q): %v", s, err)
		}
	}
	if _, err := ParseStatus("Pending"); err == nil {
		t.Errorf("ParseStatus(Pending) expected error")
	}
}
