package database

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
)

const (
	microsPerMinute     = int64(time.Minute / time.Microsecond)
	uniqueViolationCode = "23505"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timeToTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		t = time.Now()
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func timeOfDayToPg(t domain.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t) * microsPerMinute, Valid: true}
}

func pgToTimeOfDay(t pgtype.Time) domain.TimeOfDay {
	return domain.TimeOfDay(t.Microseconds / microsPerMinute)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func scheduleToDomain(s scheduleRow) entities.ScheduledEvent {
	return entities.ScheduledEvent{
		ID:               s.ID,
		CourseID:         s.CourseID,
		CourseCode:       s.CourseCode,
		CourseName:       s.CourseName,
		InstructorName:   s.InstructorName,
		RoomID:           s.RoomID,
		RoomName:         s.RoomName,
		Day:              domain.Weekday(s.Day),
		StartTime:        pgToTimeOfDay(s.StartTime),
		EndTime:          pgToTimeOfDay(s.EndTime),
		HasConflict:      s.HasConflict,
		ConflictCategory: s.ConflictCategory,
		CreatedAt:        pgtypeTimestamptzToTime(s.CreatedAt),
		UpdatedAt:        pgtypeTimestamptzToTime(s.UpdatedAt),
	}
}

func scheduleFromDomain(e *entities.ScheduledEvent) scheduleRow {
	return scheduleRow{
		ID:               e.ID,
		CourseID:         e.CourseID,
		CourseCode:       e.CourseCode,
		CourseName:       e.CourseName,
		InstructorName:   e.InstructorName,
		RoomID:           e.RoomID,
		RoomName:         e.RoomName,
		Day:              string(e.Day),
		StartTime:        timeOfDayToPg(e.StartTime),
		EndTime:          timeOfDayToPg(e.EndTime),
		HasConflict:      e.HasConflict,
		ConflictCategory: e.ConflictCategory,
		CreatedAt:        timeToTimestamptz(e.CreatedAt),
		UpdatedAt:        timeToTimestamptz(e.UpdatedAt),
	}
}

func courseToDomain(c courseRow) entities.Course {
	return entities.Course{
		ID:             c.ID,
		Code:           c.Code,
		Name:           c.Name,
		Credits:        int(c.Credits),
		InstructorName: c.InstructorName,
		CreatedAt:      pgtypeTimestamptzToTime(c.CreatedAt),
		UpdatedAt:      pgtypeTimestamptzToTime(c.UpdatedAt),
	}
}

func courseFromDomain(c *entities.Course) courseRow {
	return courseRow{
		ID:             c.ID,
		Code:           c.Code,
		Name:           c.Name,
		Credits:        int32(c.Credits),
		InstructorName: c.InstructorName,
		CreatedAt:      timeToTimestamptz(c.CreatedAt),
		UpdatedAt:      timeToTimestamptz(c.UpdatedAt),
	}
}

func roomToDomain(r roomRow) entities.Room {
	return entities.Room{
		ID:        r.ID,
		Name:      r.Name,
		Building:  r.Building,
		Capacity:  int(r.Capacity),
		CreatedAt: pgtypeTimestamptzToTime(r.CreatedAt),
		UpdatedAt: pgtypeTimestamptzToTime(r.UpdatedAt),
	}
}

func roomFromDomain(r *entities.Room) roomRow {
	return roomRow{
		ID:        r.ID,
		Name:      r.Name,
		Building:  r.Building,
		Capacity:  int32(r.Capacity),
		CreatedAt: timeToTimestamptz(r.CreatedAt),
		UpdatedAt: timeToTimestamptz(r.UpdatedAt),
	}
}

func userToDomain(u userRow) entities.User {
	return entities.User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role,
		PasswordHash: u.PasswordHash,
		CreatedAt:    pgtypeTimestamptzToTime(u.CreatedAt),
	}
}
