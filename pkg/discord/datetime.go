package discord

import (
	"fmt"
	"time"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
	"jadwal/pkg/tz"
)

// DayName renders d in the reader's language.
func DayName(locale string, d domain.Weekday) string {
	if locale == "id" {
		return d.Indonesian()
	}
	return d.String()
}

// FormatEventSlot gives "Senin 07:00-09:30" for locale id.
func FormatEventSlot(locale string, e *entities.ScheduledEvent) string {
	return fmt.Sprintf("%s %s-%s", DayName(locale, e.Day), e.StartTime, e.EndTime)
}

// FormatChangeTime formats t in campus time.
func FormatChangeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(tz.Jakarta).Format("02/01/2006 15:04") + " WIB"
}
