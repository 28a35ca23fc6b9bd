package application

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jadwal/internal/domain"
	"jadwal/internal/ports/input"
	"jadwal/internal/ports/output"
)

type textRenderer struct{}

func (textRenderer) write(w io.Writer, kind string, doc output.ScheduleDocument) error {
	_, err := fmt.Fprintf(w, "%s %s %d", kind, doc.Title, len(doc.Events))
	return err
}

func (r textRenderer) RenderList(w io.Writer, doc output.ScheduleDocument) error {
	return r.write(w, "list", doc)
}

func (r textRenderer) RenderGrid(w io.Writer, doc output.ScheduleDocument) error {
	return r.write(w, "grid", doc)
}

func (r textRenderer) RenderSpreadsheet(w io.Writer, doc output.ScheduleDocument) error {
	return r.write(w, "sheet", doc)
}

func TestExportService_Formats(t *testing.T) {
	f := newFixture(t, true)
	r := textRenderer{}
	svc := NewExportService(f.svc, Renderers{List: r, Grid: r, Sheet: r}, "Jadwal")
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, svc.Export(ctx, input.ExportPDFList, &buf))
	assert.Equal(t, "list Jadwal 6", buf.String())

	buf.Reset()
	require.NoError(t, svc.Export(ctx, input.ExportXLSX, &buf))
	assert.Equal(t, "sheet Jadwal 6", buf.String())

	buf.Reset()
	err := svc.Export(ctx, input.ExportPDFTable, &buf)
	assert.ErrorIs(t, err, domain.ErrUnresolvedConflicts)
	assert.Zero(t, buf.Len())

	err = svc.Export(ctx, input.ExportICS, &buf)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat, "no calendar renderer configured")
	err = svc.Export(ctx, "docx", &buf)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestExportService_GridOnceResolved(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	require.NoError(t, f.svc.Delete(ctx, "sch-2"))
	require.NoError(t, f.svc.Delete(ctx, "sch-5"))

	svc := NewExportService(f.svc, Renderers{Grid: textRenderer{}}, "Jadwal")
	var buf bytes.Buffer
	require.NoError(t, svc.Export(ctx, input.ExportPDFTable, &buf))
	assert.Equal(t, "grid Jadwal 4", buf.String())
}

func TestExportService_ContentType(t *testing.T) {
	svc := NewExportService(nil, Renderers{}, "")
	assert.Equal(t, "application/pdf", svc.ContentType(input.ExportPDFTable))
	assert.Equal(t, "text/calendar; charset=utf-8", svc.ContentType(input.ExportICS))
	assert.Contains(t, svc.ContentType(input.ExportXLSX), "spreadsheetml")
	assert.Equal(t, "application/octet-stream", svc.ContentType("docx"))
}
