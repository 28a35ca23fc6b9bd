package domain

import (
	"fmt"
	"strings"
)

// Weekday is a teaching day. The canonical form is the English day name.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
)

// AllWeekdays lists every day an event may be held on, in week order.
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WorkingDays are the days the generator searches by default.
var WorkingDays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

var indonesianNames = map[Weekday]string{
	Monday:    "Senin",
	Tuesday:   "Selasa",
	Wednesday: "Rabu",
	Thursday:  "Kamis",
	Friday:    "Jumat",
	Saturday:  "Sabtu",
}

// ParseWeekday accepts English or Indonesian day names, case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(s)
	for _, d := range AllWeekdays {
		if strings.EqualFold(s, string(d)) || strings.EqualFold(s, indonesianNames[d]) {
			return d, nil
		}
	}
	// "Jum'at" apparaît dans les anciens exports.
	if strings.EqualFold(s, "Jum'at") {
		return Friday, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDay, s)
}

func (d Weekday) Valid() bool {
	return d.Index() >= 0
}

// Index is the position of d in the week starting Monday, or -1.
func (d Weekday) Index() int {
	for i, w := range AllWeekdays {
		if w == d {
			return i
		}
	}
	return -1
}

// Indonesian returns the day name used on printed timetables.
func (d Weekday) Indonesian() string {
	if name, ok := indonesianNames[d]; ok {
		return name
	}
	return string(d)
}

func (d Weekday) String() string {
	return string(d)
}
