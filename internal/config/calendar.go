package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"jadwal/internal/domain"
)

// calendarFile is the YAML shape of SLOTS_FILE:
//
//	days: [Monday, Tuesday, Wednesday, Thursday, Friday]
//	slots:
//	  - {start: "07:00", end: "07:50"}
//	  - {start: "07:50", end: "08:40"}
type calendarFile struct {
	Days  []string `yaml:"days"`
	Slots []struct {
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	} `yaml:"slots"`
}

// LoadCalendar reads the slot calendar from path. An empty path yields the
// default calendar; missing days or slots in the file fall back to defaults.
func LoadCalendar(path string) (domain.Calendar, error) {
	if path == "" {
		return domain.DefaultCalendar(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Calendar{}, fmt.Errorf("config: lecture de SLOTS_FILE: %w", err)
	}
	return ParseCalendar(raw)
}

func ParseCalendar(raw []byte) (domain.Calendar, error) {
	var f calendarFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return domain.Calendar{}, fmt.Errorf("config: SLOTS_FILE invalide: %w", err)
	}

	cal := domain.DefaultCalendar()
	if len(f.Days) > 0 {
		cal.Days = make([]domain.Weekday, 0, len(f.Days))
		for _, d := range f.Days {
			day, err := domain.ParseWeekday(d)
			if err != nil {
				return domain.Calendar{}, fmt.Errorf("config: SLOTS_FILE: %w", err)
			}
			cal.Days = append(cal.Days, day)
		}
	}
	if len(f.Slots) > 0 {
		cal.Slots = make([]domain.TimeSlot, 0, len(f.Slots))
		for i, s := range f.Slots {
			start, err := domain.ParseTimeOfDay(s.Start)
			if err != nil {
				return domain.Calendar{}, fmt.Errorf("config: SLOTS_FILE slot %d: %w", i+1, err)
			}
			end, err := domain.ParseTimeOfDay(s.End)
			if err != nil {
				return domain.Calendar{}, fmt.Errorf("config: SLOTS_FILE slot %d: %w", i+1, err)
			}
			cal.Slots = append(cal.Slots, domain.TimeSlot{Number: i + 1, Start: start, End: end})
		}
	}

	if err := cal.Validate(); err != nil {
		return domain.Calendar{}, fmt.Errorf("config: SLOTS_FILE: %w", err)
	}
	return cal, nil
}
