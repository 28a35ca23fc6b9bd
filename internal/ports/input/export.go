package input

import (
	"context"
	"io"
)

// Export formats.
const (
	ExportPDFList  = "pdf-list"
	ExportPDFTable = "pdf-table"
	ExportXLSX     = "xlsx"
	ExportICS      = "ics"
)

type ExportUseCase interface {
	// Export writes the current schedule in format to w. The PDF table view
	// is refused with domain.ErrUnresolvedConflicts while conflicts remain.
	Export(ctx context.Context, format string, w io.Writer) error
	ContentType(format string) string
}
