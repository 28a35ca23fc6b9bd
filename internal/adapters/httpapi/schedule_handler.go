package httpapi

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/input"
)

type scheduleRequest struct {
	CourseID  string `json:"courseId" binding:"required"`
	RoomID    string `json:"roomId" binding:"required"`
	Day       string `json:"day" binding:"required,weekday"`
	StartTime string `json:"startTime" binding:"required,hhmm"`
	EndTime   string `json:"endTime" binding:"required,hhmm"`
}

type scheduleUpdateRequest struct {
	CourseID  *string `json:"courseId"`
	RoomID    *string `json:"roomId"`
	Day       *string `json:"day" binding:"omitempty,weekday"`
	StartTime *string `json:"startTime" binding:"omitempty,hhmm"`
	EndTime   *string `json:"endTime" binding:"omitempty,hhmm"`
}

type generateRequest struct {
	Mode      string   `json:"mode" binding:"omitempty,oneof=replace extend"`
	CourseIDs []string `json:"courseIds"`
	RoomIDs   []string `json:"roomIds"`
	Days      []string `json:"days" binding:"omitempty,dive,weekday"`
}

func (r scheduleRequest) toInput() (input.CreateScheduleInput, error) {
	day, err := domain.ParseWeekday(r.Day)
	if err != nil {
		return input.CreateScheduleInput{}, err
	}
	start, err := domain.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return input.CreateScheduleInput{}, err
	}
	end, err := domain.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return input.CreateScheduleInput{}, err
	}
	return input.CreateScheduleInput{
		CourseID:  r.CourseID,
		RoomID:    r.RoomID,
		Day:       day,
		StartTime: start,
		EndTime:   end,
	}, nil
}

func (r scheduleUpdateRequest) toInput() (input.UpdateScheduleInput, error) {
	in := input.UpdateScheduleInput{CourseID: r.CourseID, RoomID: r.RoomID}
	if r.Day != nil {
		day, err := domain.ParseWeekday(*r.Day)
		if err != nil {
			return in, err
		}
		in.Day = &day
	}
	if r.StartTime != nil {
		t, err := domain.ParseTimeOfDay(*r.StartTime)
		if err != nil {
			return in, err
		}
		in.StartTime = &t
	}
	if r.EndTime != nil {
		t, err := domain.ParseTimeOfDay(*r.EndTime)
		if err != nil {
			return in, err
		}
		in.EndTime = &t
	}
	return in, nil
}

func (s *Server) listSchedules(c *gin.Context) {
	var (
		events []entities.ScheduledEvent
		err    error
	)
	if raw := c.Query("day"); raw != "" {
		day, perr := domain.ParseWeekday(raw)
		if perr != nil {
			s.fail(c, perr)
			return
		}
		events, err = s.schedules.ListByDay(c.Request.Context(), day)
	} else {
		events, err = s.schedules.List(c.Request.Context())
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, http.StatusOK, "", gin.H{"schedules": events})
}

func (s *Server) getSchedule(c *gin.Context) {
	e, err := s.schedules.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, http.StatusOK, "", gin.H{"schedule": e})
}

func (s *Server) createSchedule(c *gin.Context) {
	var req scheduleRequest
	if err := bind(c, &req); err != nil {
		s.fail(c, err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		s.fail(c, err)
		return
	}
	e, err := s.schedules.Create(c.Request.Context(), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, http.StatusCreated, "ok.saved", gin.H{"schedule": e})
}

func (s *Server) updateSchedule(c *gin.Context) {
	var req scheduleUpdateRequest
	if err := bind(c, &req); err != nil {
		s.fail(c, err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		s.fail(c, err)
		return
	}
	e, err := s.schedules.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, http.StatusOK, "ok.saved", gin.H{"schedule": e})
}

func (s *Server) deleteSchedule(c *gin.Context) {
	if err := s.schedules.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, http.StatusOK, "ok.deleted", nil)
}

func (s *Server) checkConflicts(c *gin.Context) {
	reports, err := s.schedules.CheckConflicts(c.Request.Context(), locale(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	if reports == nil {
		reports = []entities.ConflictReport{}
	}
	s.ok(c, http.StatusOK, "", gin.H{"conflicts": reports, "count": len(reports)})
}

func (s *Server) generate(c *gin.Context) {
	var req generateRequest
	if err := bind(c, &req); err != nil {
		s.fail(c, err)
		return
	}
	days := make([]domain.Weekday, 0, len(req.Days))
	for _, raw := range req.Days {
		d, err := domain.ParseWeekday(raw)
		if err != nil {
			s.fail(c, err)
			return
		}
		days = append(days, d)
	}

	out, err := s.schedules.Generate(c.Request.Context(), input.GenerateInput{
		Mode:      req.Mode,
		CourseIDs: req.CourseIDs,
		RoomIDs:   req.RoomIDs,
		Days:      days,
		Locale:    locale(c),
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	unplaced := make([]gin.H, 0, len(out.Unplaced))
	for _, u := range out.Unplaced {
		unplaced = append(unplaced, gin.H{"id": u.ID, "code": u.Code, "name": u.Name})
	}
	warnings := out.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	msg := s.localizer.T(locale(c), "generate.done", map[string]any{
		"Placed":   len(out.Placed),
		"Unplaced": len(out.Unplaced),
	})
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: msg,
		Body: gin.H{
			"schedules":     out.Events,
			"placed":        len(out.Placed),
			"unplaced":      unplaced,
			"warnings":      warnings,
			"conflictCount": out.ConflictCount,
		},
	})
}

func (s *Server) stats(c *gin.Context) {
	st, err := s.schedules.Stats(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, http.StatusOK, "", gin.H{"stats": st})
}

func (s *Server) slots(c *gin.Context) {
	cal := s.schedules.Calendar()
	slots := make([]gin.H, 0, len(cal.Slots))
	for _, sl := range cal.Slots {
		slots = append(slots, gin.H{"number": sl.Number, "start": sl.Start, "end": sl.End})
	}
	s.ok(c, http.StatusOK, "", gin.H{"days": cal.Days, "slots": slots})
}

func (s *Server) exportPDF(c *gin.Context) {
	switch c.DefaultQuery("view", "list") {
	case "list":
		s.exportFile(input.ExportPDFList, "jadwal.pdf")(c)
	case "table":
		s.exportFile(input.ExportPDFTable, "jadwal-tabel.pdf")(c)
	default:
		s.fail(c, domain.ErrUnsupportedFormat)
	}
}

// exportFile buffers the document before any header is written.
func (s *Server) exportFile(format, filename string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var buf bytes.Buffer
		if err := s.export.Export(c.Request.Context(), format, &buf); err != nil {
			s.fail(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, s.export.ContentType(format), buf.Bytes())
	}
}
