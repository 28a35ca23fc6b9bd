package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
)

func TestTimeOfDayColumn(t *testing.T) {
	pg := timeOfDayToPg(domain.MustTimeOfDay("13:20"))
	assert.True(t, pg.Valid)
	assert.Equal(t, int64(13*3600+20*60)*1_000_000, pg.Microseconds)
	assert.Equal(t, domain.MustTimeOfDay("13:20"), pgToTimeOfDay(pg))
}

func TestScheduleRowRoundTrip(t *testing.T) {
	created := time.Date(2026, 2, 16, 8, 0, 0, 0, time.UTC)
	e := entities.ScheduledEvent{
		ID:               "sch-1",
		CourseID:         "course-1",
		CourseCode:       "CS101",
		RoomID:           "room-1",
		Day:              domain.Monday,
		StartTime:        domain.MustTimeOfDay("07:00"),
		EndTime:          domain.MustTimeOfDay("09:30"),
		HasConflict:      true,
		ConflictCategory: domain.ConflictRoom,
		CreatedAt:        created,
		UpdatedAt:        created,
	}
	assert.Equal(t, e, scheduleToDomain(scheduleFromDomain(&e)))
}

func TestTimestamptz(t *testing.T) {
	stamped := pgtypeTimestamptzToTime(timeToTimestamptz(time.Time{}))
	assert.WithinDuration(t, time.Now(), stamped, time.Minute, "zero time is stamped with now")

	assert.True(t, pgtypeTimestamptzToTime(pgtype.Timestamptz{}).IsZero())
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, isNoRows(fmt.Errorf("get course: %w", pgx.ErrNoRows)))
	assert.False(t, isNoRows(fmt.Errorf("boom")))

	dup := &pgconn.PgError{Code: "23505"}
	assert.True(t, isUniqueViolation(fmt.Errorf("insert course: %w", dup)))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
}
