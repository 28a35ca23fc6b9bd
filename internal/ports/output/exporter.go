package output

import (
	"io"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
)

// ScheduleDocument is the data every exporter renders.
// Events are already marked and sorted.
type ScheduleDocument struct {
	Title    string
	Events   []entities.ScheduledEvent
	Calendar domain.Calendar
}

type ListRenderer interface {
	RenderList(w io.Writer, doc ScheduleDocument) error
}

type GridRenderer interface {
	RenderGrid(w io.Writer, doc ScheduleDocument) error
}

type SpreadsheetRenderer interface {
	RenderSpreadsheet(w io.Writer, doc ScheduleDocument) error
}

type CalendarFeedRenderer interface {
	RenderCalendarFeed(w io.Writer, doc ScheduleDocument) error
}
