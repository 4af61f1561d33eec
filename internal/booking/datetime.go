package booking

import (
	"fmt"
	"strings"
	"time"
)

// Submissions carry the chosen slot as a single string, e.g.
// "2025-12-04 9:00 AM".
const appointmentLayout = "2006-01-02 3:04 PM"

// ParseAppointment splits a combined appointment string into its ISO date and
// 24-hour time-of-day components.
func ParseAppointment(s string) (date string, timeOfDay string, err error) {
	t, err := time.Parse(appointmentLayout, strings.TrimSpace(s))
	if err != nil {
		return "", "", fmt.Errorf("invalid datetime format: %s", s)
	}
	return t.Format("2006-01-02"), t.Format("15:04:05"), nil
}
