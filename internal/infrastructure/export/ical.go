package export

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/output"
)

var _ output.CalendarFeedRenderer = (*ICalRenderer)(nil)

var rruleDays = map[domain.Weekday]rrule.Weekday{
	domain.Monday:    rrule.MO,
	domain.Tuesday:   rrule.TU,
	domain.Wednesday: rrule.WE,
	domain.Thursday:  rrule.TH,
	domain.Friday:    rrule.FR,
	domain.Saturday:  rrule.SA,
}

// ICalRenderer turns each weekly event into a VEVENT recurring for the
// length of the term.
type ICalRenderer struct {
	termStart time.Time
	weeks     int
	loc       *time.Location
	now       func() time.Time
}

func NewICalRenderer(termStart time.Time, weeks int, loc *time.Location) *ICalRenderer {
	if loc == nil {
		loc = time.Local
	}
	return &ICalRenderer{termStart: termStart, weeks: weeks, loc: loc, now: time.Now}
}

func (r *ICalRenderer) RenderCalendarFeed(w io.Writer, doc output.ScheduleDocument) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//jadwal//Jadwal Perkuliahan//ID")
	cal.SetName(doc.Title)
	cal.SetXWRTimezone(r.loc.String())

	stamp := r.now().UTC()
	for _, e := range doc.Events {
		opt, err := r.weeklyOption(e)
		if err != nil {
			return fmt.Errorf("ics: event %s: %w", e.ID, err)
		}
		rule, err := rrule.NewRRule(opt)
		if err != nil {
			return fmt.Errorf("ics: event %s: %w", e.ID, err)
		}
		occurrences := rule.All()
		if len(occurrences) == 0 {
			continue
		}
		start := occurrences[0]
		end := start.Add(time.Duration(e.EndTime-e.StartTime) * time.Minute)

		ev := cal.AddEvent(e.ID + "@jadwal")
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(fmt.Sprintf("%s %s", e.CourseCode, e.CourseName))
		ev.SetLocation(e.RoomName)
		ev.SetDescription(description(e))
		ev.AddProperty(ics.ComponentPropertyRrule, opt.RRuleString())
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("ics: write: %w", err)
	}
	return nil
}

// weeklyOption describes the term recurrence of e. Its first occurrence is
// the first matching weekday on or after the term start.
func (r *ICalRenderer) weeklyOption(e entities.ScheduledEvent) (rrule.ROption, error) {
	day, ok := rruleDays[e.Day]
	if !ok {
		return rrule.ROption{}, fmt.Errorf("%w: %q", domain.ErrInvalidDay, e.Day)
	}
	t := r.termStart.In(r.loc)
	dtstart := time.Date(t.Year(), t.Month(), t.Day(), e.StartTime.Hour(), e.StartTime.Minute(), 0, 0, r.loc)
	return rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   dtstart,
		Count:     r.weeks,
		Byweekday: []rrule.Weekday{day},
	}, nil
}

func description(e entities.ScheduledEvent) string {
	d := fmt.Sprintf("Dosen: %s\nRuangan: %s", e.InstructorName, e.RoomName)
	if e.HasConflict {
		d += "\nStatus: BENTROK"
	}
	return d
}
