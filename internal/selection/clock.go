package selection

import (
	"fmt"
	"strconv"
	"strings"
)

// The booking page displays 12-hour clock strings like "9:00 AM" or "1:15 PM".

const minutesPerDay = 24 * 60

// parseClock converts a 12-hour clock string to minutes since midnight.
// 12 AM is hour 0; PM hours other than 12 get +12.
func parseClock(s string) (int, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return 0, fmt.Errorf("invalid time: %q", s)
	}

	hm := strings.SplitN(fields[0], ":", 2)
	if len(hm) != 2 {
		return 0, fmt.Errorf("invalid time: %q", s)
	}
	hour, err := strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}

	switch strings.ToUpper(fields[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, fmt.Errorf("invalid meridiem in %q", s)
	}

	return hour*60 + minute, nil
}

func formatClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	hour := minutes / 60
	minute := minutes % 60

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, minute, meridiem)
}

// EndTime computes the display end of an appointment that starts at a 12-hour
// clock string and runs for the given number of minutes. Appointments past
// midnight wrap around rather than clamp; that matches what the booking page
// has always shown.
func EndTime(start string, durationMinutes int) (string, error) {
	m, err := parseClock(start)
	if err != nil {
		return "", err
	}
	return formatClock(m + durationMinutes), nil
}
