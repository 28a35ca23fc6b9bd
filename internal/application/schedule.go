package application

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
	"jadwal/internal/domain/scheduling"
	"jadwal/internal/ports/input"
	"jadwal/internal/ports/output"
)

var _ input.ScheduleUseCase = (*ScheduleService)(nil)

// ScheduleService owns the load -> mutate -> mark -> save sequence for the
// stored schedule set. Mutations are serialised by mu.
type ScheduleService struct {
	scheduleRepo output.ScheduleRepository
	courseRepo   output.CourseRepository
	roomRepo     output.RoomRepository
	notifier     output.ChangeNotifier
	translator   output.T
	calendar     domain.Calendar
	logger       *zap.Logger

	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

func NewScheduleService(
	scheduleRepo output.ScheduleRepository,
	courseRepo output.CourseRepository,
	roomRepo output.RoomRepository,
	notifier output.ChangeNotifier,
	translator output.T,
	calendar domain.Calendar,
	logger *zap.Logger,
) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		courseRepo:   courseRepo,
		roomRepo:     roomRepo,
		notifier:     notifier,
		translator:   translator,
		calendar:     calendar,
		logger:       logger,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

func (s *ScheduleService) Calendar() domain.Calendar {
	return s.calendar
}

// List returns every event with fresh display caches and conflict flags,
// sorted by day then start time.
func (s *ScheduleService) List(ctx context.Context) ([]entities.ScheduledEvent, error) {
	events, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	SortEvents(events)
	return events, nil
}

func (s *ScheduleService) ListByDay(ctx context.Context, day domain.Weekday) ([]entities.ScheduledEvent, error) {
	if !day.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDay, day)
	}
	events, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := events[:0]
	for _, e := range events {
		if e.Day == day {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *ScheduleService) Get(ctx context.Context, id string) (*entities.ScheduledEvent, error) {
	events, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID == id {
			return &events[i], nil
		}
	}
	return nil, domain.ErrScheduleNotFound
}

func (s *ScheduleService) Create(ctx context.Context, in input.CreateScheduleInput) (*entities.ScheduledEvent, error) {
	if err := validateSlot(in.Day, in.StartTime, in.EndTime); err != nil {
		return nil, err
	}
	course, err := s.courseRepo.FindByID(ctx, in.CourseID)
	if err != nil {
		return nil, err
	}
	room, err := s.roomRepo.FindByID(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	event := entities.ScheduledEvent{
		ID:        s.newID(),
		Day:       in.Day,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		CreatedAt: now,
		UpdatedAt: now,
	}
	event.ApplyCourse(course)
	event.ApplyRoom(room)

	stored, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	marked := scheduling.MarkConflicts(append(stored, event))
	created := marked[len(marked)-1]

	err = s.scheduleRepo.WithTx(ctx, func(ctx context.Context, repo output.ScheduleRepository) error {
		if err := repo.Create(ctx, &created); err != nil {
			return fmt.Errorf("create schedule: %w", err)
		}
		if err := repo.SaveConflictState(ctx, marked); err != nil {
			return fmt.Errorf("save conflict state: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notify(ctx, entities.ChangeCreated, []string{created.ID}, marked)
	return &created, nil
}

func (s *ScheduleService) Update(ctx context.Context, id string, in input.UpdateScheduleInput) (*entities.ScheduledEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := *current

	if in.CourseID != nil {
		course, err := s.courseRepo.FindByID(ctx, *in.CourseID)
		if err != nil {
			return nil, err
		}
		updated.ApplyCourse(course)
	}
	if in.RoomID != nil {
		room, err := s.roomRepo.FindByID(ctx, *in.RoomID)
		if err != nil {
			return nil, err
		}
		updated.ApplyRoom(room)
	}
	if in.Day != nil {
		updated.Day = *in.Day
	}
	if in.StartTime != nil {
		updated.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		updated.EndTime = *in.EndTime
	}
	if err := validateSlot(updated.Day, updated.StartTime, updated.EndTime); err != nil {
		return nil, err
	}
	updated.UpdatedAt = s.now()

	stored, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	for i := range stored {
		if stored[i].ID == id {
			stored[i] = updated
		}
	}
	marked := scheduling.MarkConflicts(stored)
	for _, e := range marked {
		if e.ID == id {
			updated = e
		}
	}

	err = s.scheduleRepo.WithTx(ctx, func(ctx context.Context, repo output.ScheduleRepository) error {
		if err := repo.Update(ctx, &updated); err != nil {
			return fmt.Errorf("update schedule: %w", err)
		}
		if err := repo.SaveConflictState(ctx, marked); err != nil {
			return fmt.Errorf("save conflict state: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notify(ctx, entities.ChangeUpdated, []string{id}, marked)
	return &updated, nil
}

func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var marked []entities.ScheduledEvent
	err := s.scheduleRepo.WithTx(ctx, func(ctx context.Context, repo output.ScheduleRepository) error {
		if err := repo.Delete(ctx, id); err != nil {
			return err
		}
		stored, err := repo.List(ctx)
		if err != nil {
			return fmt.Errorf("list schedules: %w", err)
		}
		marked = scheduling.MarkConflicts(stored)
		if err := repo.SaveConflictState(ctx, marked); err != nil {
			return fmt.Errorf("save conflict state: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.notify(ctx, entities.ChangeDeleted, []string{id}, marked)
	return nil
}

// CheckConflicts runs the detector over the stored set without saving
// anything. Reasons are rendered in locale.
func (s *ScheduleService) CheckConflicts(ctx context.Context, locale string) ([]entities.ConflictReport, error) {
	events, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	reports := scheduling.DetectConflicts(events)
	for i := range reports {
		reports[i].Reason = s.translator.T(locale, "conflict.reason", map[string]any{
			"Count": len(reports[i].ConflictingWith),
		})
	}
	return reports, nil
}

// Generate runs the greedy generator over the selected courses and rooms.
// In replace mode the stored set is discarded and every selected course is
// placed from scratch. In extend mode the stored set is the baseline and only
// courses without an event are placed.
func (s *ScheduleService) Generate(ctx context.Context, in input.GenerateInput) (*input.GenerateOutcome, error) {
	if in.Mode == "" {
		in.Mode = input.GenerateReplace
	}
	if in.Mode != input.GenerateReplace && in.Mode != input.GenerateExtend {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidGenerateMode, in.Mode)
	}
	for _, d := range in.Days {
		if !d.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDay, d)
		}
	}

	courses, err := s.selectCourses(ctx, in.CourseIDs)
	if err != nil {
		return nil, err
	}
	rooms, err := s.selectRooms(ctx, in.RoomIDs)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var baseline []entities.ScheduledEvent
	if in.Mode == input.GenerateExtend {
		baseline, err = s.scheduleRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list schedules: %w", err)
		}
		courses = withoutEvents(courses, baseline)
	}

	cal := s.calendar
	if len(in.Days) > 0 {
		cal.Days = in.Days
	}
	result := scheduling.GenerateSchedule(courses, rooms, baseline,
		scheduling.WithCalendar(cal),
		scheduling.WithIDGenerator(s.newID),
	)

	now := s.now()
	for i := len(baseline); i < len(result.Events); i++ {
		result.Events[i].CreatedAt = now
		result.Events[i].UpdatedAt = now
	}
	marked := scheduling.MarkConflicts(result.Events)
	if err := s.scheduleRepo.ReplaceAll(ctx, marked); err != nil {
		return nil, fmt.Errorf("replace schedules: %w", err)
	}

	placedIDs := make([]string, 0, len(result.Placed))
	for _, e := range result.Placed {
		placedIDs = append(placedIDs, e.ID)
	}
	warnings := make([]string, 0, len(result.Unplaced))
	for _, c := range result.Unplaced {
		warnings = append(warnings, s.translator.T(in.Locale, "generate.unplaced", map[string]any{
			"Name": c.Name,
			"Code": c.Code,
		}))
	}
	conflicts := scheduling.CountConflicts(marked)

	s.logger.Info("📅 Emploi du temps généré",
		zap.String("mode", in.Mode),
		zap.Int("placed", len(result.Placed)),
		zap.Int("unplaced", len(result.Unplaced)),
		zap.Int("conflicts", conflicts),
	)
	s.notify(ctx, entities.ChangeGenerated, placedIDs, marked)

	placedSet := make(map[string]bool, len(placedIDs))
	for _, id := range placedIDs {
		placedSet[id] = true
	}
	placed := make([]entities.ScheduledEvent, 0, len(placedIDs))
	for _, e := range marked {
		if placedSet[e.ID] {
			placed = append(placed, e)
		}
	}

	SortEvents(marked)
	return &input.GenerateOutcome{
		Events:        marked,
		Placed:        placed,
		Unplaced:      result.Unplaced,
		Warnings:      warnings,
		ConflictCount: conflicts,
	}, nil
}

// Stats returns the dashboard counters.
func (s *ScheduleService) Stats(ctx context.Context) (*input.Stats, error) {
	events, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return &input.Stats{
		TotalSchedules:    len(events),
		ConflictSchedules: scheduling.CountConflicts(events),
		TotalCourses:      len(courses),
		TotalRooms:        len(rooms),
	}, nil
}

// load reads the stored set, refreshes display caches from the catalog and
// re-marks conflicts. Stored flags are never trusted.
func (s *ScheduleService) load(ctx context.Context) ([]entities.ScheduledEvent, error) {
	events, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	courseByID := make(map[string]*entities.Course, len(courses))
	for i := range courses {
		courseByID[courses[i].ID] = &courses[i]
	}
	roomByID := make(map[string]*entities.Room, len(rooms))
	for i := range rooms {
		roomByID[rooms[i].ID] = &rooms[i]
	}
	for i := range events {
		// Un cours ou une salle supprimés gardent leur dernier affichage connu.
		if c, ok := courseByID[events[i].CourseID]; ok {
			events[i].ApplyCourse(c)
		}
		if r, ok := roomByID[events[i].RoomID]; ok {
			events[i].ApplyRoom(r)
		}
	}
	return scheduling.MarkConflicts(events), nil
}

func (s *ScheduleService) selectCourses(ctx context.Context, ids []string) ([]scheduling.CourseToPlace, error) {
	var courses []entities.Course
	if len(ids) == 0 {
		all, err := s.courseRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list courses: %w", err)
		}
		courses = all
	} else {
		for _, id := range ids {
			c, err := s.courseRepo.FindByID(ctx, id)
			if err != nil {
				return nil, err
			}
			courses = append(courses, *c)
		}
	}
	out := make([]scheduling.CourseToPlace, 0, len(courses))
	for _, c := range courses {
		out = append(out, scheduling.CourseToPlace{
			ID:             c.ID,
			Code:           c.Code,
			Name:           c.Name,
			InstructorName: c.InstructorName,
		})
	}
	return out, nil
}

func (s *ScheduleService) selectRooms(ctx context.Context, ids []string) ([]scheduling.RoomCandidate, error) {
	var rooms []entities.Room
	if len(ids) == 0 {
		all, err := s.roomRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list rooms: %w", err)
		}
		rooms = all
	} else {
		for _, id := range ids {
			r, err := s.roomRepo.FindByID(ctx, id)
			if err != nil {
				return nil, err
			}
			rooms = append(rooms, *r)
		}
	}
	out := make([]scheduling.RoomCandidate, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, scheduling.RoomCandidate{ID: r.ID, Name: r.Name})
	}
	return out, nil
}

func (s *ScheduleService) notify(ctx context.Context, kind string, ids []string, marked []entities.ScheduledEvent) {
	if s.notifier == nil {
		return
	}
	change := entities.ChangeEvent{
		Kind:          kind,
		ScheduleIDs:   ids,
		ConflictCount: scheduling.CountConflicts(marked),
		At:            s.now(),
	}
	if err := s.notifier.SchedulesChanged(ctx, change); err != nil {
		s.logger.Warn("⚠️ Échec de la notification de changement", zap.String("kind", kind), zap.Error(err))
	}
}

func withoutEvents(courses []scheduling.CourseToPlace, events []entities.ScheduledEvent) []scheduling.CourseToPlace {
	scheduled := make(map[string]bool, len(events))
	for _, e := range events {
		scheduled[e.CourseID] = true
	}
	out := make([]scheduling.CourseToPlace, 0, len(courses))
	for _, c := range courses {
		if !scheduled[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

func validateSlot(day domain.Weekday, start, end domain.TimeOfDay) error {
	if !day.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidDay, day)
	}
	if !start.Valid() || !end.Valid() {
		return domain.ErrInvalidTime
	}
	if start >= end {
		return domain.ErrInvalidTimeRange
	}
	return nil
}

// SortEvents orders events by day of week, then start time, then course code.
func SortEvents(events []entities.ScheduledEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Day != b.Day {
			return a.Day.Index() < b.Day.Index()
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		return a.CourseCode < b.CourseCode
	})
}
