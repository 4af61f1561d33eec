// Package availability holds the date -> bookable start times table.
//
// The salon does not compute availability: an admin marks dates as open for a
// service, and every open date offers the same fixed list of start times. The
// interface shape (date to an ordered list of times) is the contract the
// booking frontend relies on.
package availability

// DefaultSlotTimes are the start times offered on every open date, in display
// order.
var DefaultSlotTimes = []string{"9:00 AM", "11:15 AM", "1:15 PM", "3:00 PM"}

// Schedule maps an ISO date (YYYY-MM-DD) to the ordered start times offered on
// that date. Dates absent from the map offer no times.
type Schedule map[string][]string

func (s Schedule) TimesFor(date string) []string {
	return s[date]
}

// BuildSchedule expands a list of open dates into a Schedule offering the
// default slot times on each.
func BuildSchedule(dates []string) Schedule {
	sched := make(Schedule, len(dates))
	for _, d := range dates {
		if _, ok := sched[d]; !ok {
			sched[d] = DefaultSlotTimes
		}
	}
	return sched
}
