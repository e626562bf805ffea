package ticket

import (
	"strings"
	"time"
)

// OpenDays is the set of weekdays a club opens its doors.
type OpenDays map[time.Weekday]struct{}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseOpenDays builds the set from stored weekday names, case-insensitive.
// Unknown names are skipped rather than failing the whole club.
func ParseOpenDays(names []string) OpenDays {
	days := make(OpenDays, len(names))
	for _, n := range names {
		if wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(n))]; ok {
			days[wd] = struct{}{}
		}
	}
	return days
}

func NewOpenDays(days ...time.Weekday) OpenDays {
	set := make(OpenDays, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return set
}

func (d OpenDays) Contains(day time.Weekday) bool {
	_, ok := d[day]
	return ok
}

func (d OpenDays) Names() []string {
	names := make([]string, 0, len(d))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if d.Contains(wd) {
			names = append(names, wd.String())
		}
	}
	return names
}
