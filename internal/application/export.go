package application

import (
	"context"
	"fmt"
	"io"

	"jadwal/internal/domain"
	"jadwal/internal/ports/input"
	"jadwal/internal/ports/output"
)

var _ input.ExportUseCase = (*ExportService)(nil)

// Renderers groups the document writers the export service can use.
// Any of them may be nil, in which case the matching format is unsupported.
type Renderers struct {
	List     output.ListRenderer
	Grid     output.GridRenderer
	Sheet    output.SpreadsheetRenderer
	Calendar output.CalendarFeedRenderer
}

type ExportService struct {
	schedules input.ScheduleUseCase
	renderers Renderers
	title     string
}

func NewExportService(schedules input.ScheduleUseCase, renderers Renderers, title string) *ExportService {
	return &ExportService{schedules: schedules, renderers: renderers, title: title}
}

func (s *ExportService) Export(ctx context.Context, format string, w io.Writer) error {
	events, err := s.schedules.List(ctx)
	if err != nil {
		return err
	}
	doc := output.ScheduleDocument{
		Title:    s.title,
		Events:   events,
		Calendar: s.schedules.Calendar(),
	}

	switch format {
	case input.ExportPDFList:
		if s.renderers.List != nil {
			return s.renderers.List.RenderList(w, doc)
		}
	case input.ExportPDFTable:
		if s.renderers.Grid != nil {
			for _, e := range events {
				if e.HasConflict {
					return domain.ErrUnresolvedConflicts
				}
			}
			return s.renderers.Grid.RenderGrid(w, doc)
		}
	case input.ExportXLSX:
		if s.renderers.Sheet != nil {
			return s.renderers.Sheet.RenderSpreadsheet(w, doc)
		}
	case input.ExportICS:
		if s.renderers.Calendar != nil {
			return s.renderers.Calendar.RenderCalendarFeed(w, doc)
		}
	}
	return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
}

func (s *ExportService) ContentType(format string) string {
	switch format {
	case input.ExportPDFList, input.ExportPDFTable:
		return "application/pdf"
	case input.ExportXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case input.ExportICS:
		return "text/calendar; charset=utf-8"
	}
	return "application/octet-stream"
}
