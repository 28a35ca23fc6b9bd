package input

import (
	"context"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
	"jadwal/internal/domain/scheduling"
)

type CreateScheduleInput struct {
	CourseID  string
	RoomID    string
	Day       domain.Weekday
	StartTime domain.TimeOfDay
	EndTime   domain.TimeOfDay
}

// UpdateScheduleInput replaces only the non-nil fields.
type UpdateScheduleInput struct {
	CourseID  *string
	RoomID    *string
	Day       *domain.Weekday
	StartTime *domain.TimeOfDay
	EndTime   *domain.TimeOfDay
}

// Generate modes.
const (
	GenerateReplace = "replace"
	GenerateExtend  = "extend"
)

type GenerateInput struct {
	Mode      string
	CourseIDs []string
	RoomIDs   []string
	Days      []domain.Weekday
	Locale    string
}

type GenerateOutcome struct {
	Events        []entities.ScheduledEvent
	Placed        []entities.ScheduledEvent
	Unplaced      []scheduling.CourseToPlace
	Warnings      []string
	ConflictCount int
}

type Stats struct {
	TotalSchedules    int `json:"totalSchedules"`
	ConflictSchedules int `json:"conflictSchedules"`
	TotalCourses      int `json:"totalCourses"`
	TotalRooms        int `json:"totalRooms"`
}

type ScheduleUseCase interface {
	List(ctx context.Context) ([]entities.ScheduledEvent, error)
	ListByDay(ctx context.Context, day domain.Weekday) ([]entities.ScheduledEvent, error)
	Get(ctx context.Context, id string) (*entities.ScheduledEvent, error)
	Create(ctx context.Context, in CreateScheduleInput) (*entities.ScheduledEvent, error)
	Update(ctx context.Context, id string, in UpdateScheduleInput) (*entities.ScheduledEvent, error)
	Delete(ctx context.Context, id string) error
	CheckConflicts(ctx context.Context, locale string) ([]entities.ConflictReport, error)
	Generate(ctx context.Context, in GenerateInput) (*GenerateOutcome, error)
	Stats(ctx context.Context) (*Stats, error)
	Calendar() domain.Calendar
}
