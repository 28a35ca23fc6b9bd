package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"jadwal/internal/ports/output"
)

var _ output.SpreadsheetRenderer = (*XLSXRenderer)(nil)

const sheetName = "Jadwal"

// XLSXRenderer writes the list view as a single-sheet workbook.
type XLSXRenderer struct{}

func NewXLSXRenderer() *XLSXRenderer {
	return &XLSXRenderer{}
}

func (XLSXRenderer) RenderSpreadsheet(w io.Writer, doc output.ScheduleDocument) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("xlsx: rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1E40AF"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("xlsx: header style: %w", err)
	}
	conflictStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#DC2626"},
	})
	if err != nil {
		return fmt.Errorf("xlsx: conflict style: %w", err)
	}
	okStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#16A34A"},
	})
	if err != nil {
		return fmt.Errorf("xlsx: ok style: %w", err)
	}

	headers := []string{"Kode", "Mata Kuliah", "Hari", "Mulai", "Selesai", "Ruangan", "Dosen", "Status", "Jenis Bentrok"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("xlsx: header %s: %w", cell, err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheetName, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("xlsx: header style: %w", err)
	}

	for i, e := range doc.Events {
		row := i + 2
		status, style := "OK", okStyle
		if e.HasConflict {
			status, style = "BENTROK", conflictStyle
		}
		values := []any{
			e.CourseCode,
			e.CourseName,
			e.Day.Indonesian(),
			e.StartTime.String(),
			e.EndTime.String(),
			e.RoomName,
			e.InstructorName,
			status,
			e.ConflictCategory,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("xlsx: cell %s: %w", cell, err)
			}
		}
		statusCell, _ := excelize.CoordinatesToCellName(8, row)
		if err := f.SetCellStyle(sheetName, statusCell, statusCell, style); err != nil {
			return fmt.Errorf("xlsx: status style: %w", err)
		}
	}

	for col, width := range map[string]float64{"A": 10, "B": 30, "C": 10, "D": 8, "E": 8, "F": 12, "G": 28, "H": 10, "I": 14} {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return fmt.Errorf("xlsx: column %s: %w", col, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: write: %w", err)
	}
	return nil
}
