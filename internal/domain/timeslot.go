package domain

import "fmt"

// TimeSlot is one entry of the academic calendar's ordered period sequence.
type TimeSlot struct {
	Number int
	Start  TimeOfDay
	End    TimeOfDay
}

// Contains reports whether t falls inside the slot's half-open interval.
func (s TimeSlot) Contains(t TimeOfDay) bool {
	return t >= s.Start && t < s.End
}

func (s TimeSlot) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Calendar is the set of days and slots the generator may place courses in.
type Calendar struct {
	Days  []Weekday
	Slots []TimeSlot
}

var defaultSlotBounds = [][2]string{
	{"07:00", "07:50"},
	{"07:50", "08:40"},
	{"08:40", "09:30"},
	{"09:30", "10:20"},
	{"10:20", "11:10"},
	{"11:10", "12:00"},
	{"12:30", "13:20"},
	{"13:20", "14:10"},
	{"14:10", "15:00"},
	{"15:30", "16:20"},
	{"16:20", "17:10"},
	{"18:15", "19:05"},
	{"19:05", "19:55"},
	{"19:55", "20:45"},
}

// DefaultSlots returns the fourteen teaching periods of the university day.
// 12:00-12:30, 15:00-15:30 and 17:10-18:15 are breaks, not slots.
func DefaultSlots() []TimeSlot {
	slots := make([]TimeSlot, 0, len(defaultSlotBounds))
	for i, b := range defaultSlotBounds {
		slots = append(slots, TimeSlot{
			Number: i + 1,
			Start:  MustTimeOfDay(b[0]),
			End:    MustTimeOfDay(b[1]),
		})
	}
	return slots
}

// DefaultCalendar is Monday to Friday over DefaultSlots.
func DefaultCalendar() Calendar {
	days := make([]Weekday, len(WorkingDays))
	copy(days, WorkingDays)
	return Calendar{Days: days, Slots: DefaultSlots()}
}

// Validate checks that days are known and unique and that slots are
// well-formed, strictly increasing and non-overlapping.
func (c Calendar) Validate() error {
	if len(c.Days) == 0 {
		return fmt.Errorf("%w: no days", ErrInvalidSlotCalendar)
	}
	seen := make(map[Weekday]bool, len(c.Days))
	for _, d := range c.Days {
		if !d.Valid() {
			return fmt.Errorf("%w: unknown day %q", ErrInvalidSlotCalendar, d)
		}
		if seen[d] {
			return fmt.Errorf("%w: duplicate day %q", ErrInvalidSlotCalendar, d)
		}
		seen[d] = true
	}
	if len(c.Slots) == 0 {
		return fmt.Errorf("%w: no slots", ErrInvalidSlotCalendar)
	}
	for i, s := range c.Slots {
		if !s.Start.Valid() || !s.End.Valid() || s.Start >= s.End {
			return fmt.Errorf("%w: slot %d has an empty or inverted range", ErrInvalidSlotCalendar, i+1)
		}
		if i > 0 && s.Start < c.Slots[i-1].End {
			return fmt.Errorf("%w: slot %d overlaps slot %d", ErrInvalidSlotCalendar, i+1, i)
		}
	}
	return nil
}

// SlotAt returns the slot containing t.
func (c Calendar) SlotAt(t TimeOfDay) (TimeSlot, bool) {
	for _, s := range c.Slots {
		if s.Contains(t) {
			return s, true
		}
	}
	return TimeSlot{}, false
}

// SlotSpan returns the index range [first, last] of slots touched by the
// interval [start, end). ok is false when the interval hits no slot.
func (c Calendar) SlotSpan(start, end TimeOfDay) (first, last int, ok bool) {
	first, last = -1, -1
	for i, s := range c.Slots {
		if Overlaps(start, end, s.Start, s.End) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	return first, last, first >= 0
}
