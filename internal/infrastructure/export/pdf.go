// Package export renders the schedule as PDF, XLSX and iCalendar documents.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/output"
)

var (
	_ output.ListRenderer = (*PDFRenderer)(nil)
	_ output.GridRenderer = (*PDFRenderer)(nil)
)

const (
	pageMargin = 10.0
	rowHeight  = 7.0
	gridRowH   = 18.0
	dayColW    = 22.0
)

var (
	colorConflict = [3]int{220, 38, 38}
	colorOK       = [3]int{22, 163, 74}
	colorHeader   = [3]int{30, 64, 175}
	colorCell     = [3]int{219, 234, 254}
)

var listColumns = []struct {
	title string
	width float64
}{
	{"Kode", 22},
	{"Mata Kuliah", 68},
	{"Hari", 24},
	{"Waktu", 28},
	{"Ruangan", 30},
	{"Dosen", 70},
	{"Status", 25},
}

// PDFRenderer draws A4 landscape timetables.
type PDFRenderer struct {
	loc *time.Location
	now func() time.Time
}

func NewPDFRenderer(loc *time.Location) *PDFRenderer {
	if loc == nil {
		loc = time.Local
	}
	return &PDFRenderer{loc: loc, now: time.Now}
}

func (r *PDFRenderer) newDocument(title string) (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.SetCreator("jadwal", true)

	printed := r.now().In(r.loc).Format("02/01/2006 15:04")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pageMargin)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("Dicetak %s", printed)), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("%d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})
	return pdf, tr
}

func (r *PDFRenderer) title(pdf *gofpdf.Fpdf, tr func(string) string, title, subtitle string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 9, tr(title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(subtitle), "", 1, "C", false, 0, "")
	pdf.Ln(4)
}

// RenderList writes one row per event, conflicting rows flagged BENTROK.
func (r *PDFRenderer) RenderList(w io.Writer, doc output.ScheduleDocument) error {
	pdf, tr := r.newDocument(doc.Title)
	pdf.AddPage()

	conflicts := 0
	for _, e := range doc.Events {
		if e.HasConflict {
			conflicts++
		}
	}
	r.title(pdf, tr, doc.Title, fmt.Sprintf("%d jadwal, %d bentrok", len(doc.Events), conflicts))

	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(colorHeader[0], colorHeader[1], colorHeader[2])
		pdf.SetTextColor(255, 255, 255)
		for _, c := range listColumns {
			pdf.CellFormat(c.width, rowHeight, tr(c.title), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	header()

	_, pageH := pdf.GetPageSize()
	for i, e := range doc.Events {
		if pdf.GetY()+rowHeight > pageH-2*pageMargin {
			pdf.AddPage()
			header()
		}
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		fill := i%2 == 1
		pdf.SetFillColor(243, 244, 246)
		cells := []string{
			e.CourseCode,
			e.CourseName,
			e.Day.Indonesian(),
			fmt.Sprintf("%s - %s", e.StartTime, e.EndTime),
			e.RoomName,
			e.InstructorName,
		}
		for j, text := range cells {
			pdf.CellFormat(listColumns[j].width, rowHeight, tr(text), "1", 0, "L", fill, 0, "")
		}

		status, color := "OK", colorOK
		if e.HasConflict {
			status, color = "BENTROK", colorConflict
		}
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(color[0], color[1], color[2])
		pdf.CellFormat(listColumns[len(listColumns)-1].width, rowHeight, status, "1", 1, "C", fill, 0, "")
	}

	return writePDF(pdf, w)
}

// RenderGrid writes a day by slot table; each event spans the slots its
// time range covers. Events falling entirely inside a break are listed under
// the table.
func (r *PDFRenderer) RenderGrid(w io.Writer, doc output.ScheduleDocument) error {
	pdf, tr := r.newDocument(doc.Title)
	pdf.AddPage()
	r.title(pdf, tr, doc.Title, "Tabel jadwal mingguan")

	slots := doc.Calendar.Slots
	if len(slots) == 0 {
		slots = domain.DefaultSlots()
	}
	pageW, _ := pdf.GetPageSize()
	slotW := (pageW - 2*pageMargin - dayColW) / float64(len(slots))
	top := pdf.GetY()

	pdf.SetFillColor(colorHeader[0], colorHeader[1], colorHeader[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(pageMargin, top)
	pdf.CellFormat(dayColW, 10, "Hari", "1", 0, "C", true, 0, "")
	for _, s := range slots {
		x := pdf.GetX()
		pdf.MultiCell(slotW, 5, fmt.Sprintf("%d\n%s-%s", s.Number, s.Start, s.End), "1", "C", true)
		pdf.SetXY(x+slotW, top)
	}

	byDay := make(map[domain.Weekday][]entities.ScheduledEvent)
	for _, e := range doc.Events {
		byDay[e.Day] = append(byDay[e.Day], e)
	}

	cal := domain.Calendar{Days: domain.AllWeekdays, Slots: slots}
	var offGrid []entities.ScheduledEvent
	y := top + 10
	for _, day := range domain.AllWeekdays {
		pdf.SetXY(pageMargin, y)
		pdf.SetFillColor(229, 231, 235)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(dayColW, gridRowH, tr(day.Indonesian()), "1", 0, "C", true, 0, "")
		for range slots {
			pdf.CellFormat(slotW, gridRowH, "", "1", 0, "", false, 0, "")
		}

		pdf.SetFont("Helvetica", "", 7)
		for _, e := range byDay[day] {
			first, last, ok := cal.SlotSpan(e.StartTime, e.EndTime)
			if !ok {
				offGrid = append(offGrid, e)
				continue
			}
			x := pageMargin + dayColW + float64(first)*slotW
			width := float64(last-first+1) * slotW
			pdf.SetFillColor(colorCell[0], colorCell[1], colorCell[2])
			pdf.Rect(x, y, width, gridRowH, "FD")
			pdf.SetXY(x, y+1)
			text := fmt.Sprintf("%s\n%s\n%s", e.CourseCode, e.RoomName, e.InstructorName)
			pdf.MultiCell(width, 5, tr(text), "", "C", false)
		}
		y += gridRowH
	}

	if len(offGrid) > 0 {
		pdf.SetXY(pageMargin, y+4)
		pdf.SetFont("Helvetica", "I", 8)
		for _, e := range offGrid {
			line := fmt.Sprintf("Di luar slot: %s %s %s-%s (%s)", e.CourseCode, e.Day.Indonesian(), e.StartTime, e.EndTime, e.RoomName)
			pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
		}
	}

	return writePDF(pdf, w)
}

func writePDF(pdf *gofpdf.Fpdf, w io.Writer) error {
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
