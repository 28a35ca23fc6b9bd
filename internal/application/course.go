package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/input"
	"jadwal/internal/ports/output"
)

var _ input.CourseUseCase = (*CourseService)(nil)

// CourseService manages the course catalog. Deleting a course leaves its
// scheduled events in place.
type CourseService struct {
	courseRepo output.CourseRepository
	now        func() time.Time
}

func NewCourseService(courseRepo output.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo, now: time.Now}
}

func (s *CourseService) List(ctx context.Context) ([]entities.Course, error) {
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	sort.SliceStable(courses, func(i, j int) bool {
		return courses[i].Code < courses[j].Code
	})
	return courses, nil
}

func (s *CourseService) Get(ctx context.Context, id string) (*entities.Course, error) {
	return s.courseRepo.FindByID(ctx, id)
}

func (s *CourseService) Create(ctx context.Context, in input.CourseInput) (*entities.Course, error) {
	in = normalizeCourse(in)
	if in.Code == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: code, name", domain.ErrMissingRequiredField)
	}
	if err := s.ensureCodeFree(ctx, in.Code, ""); err != nil {
		return nil, err
	}
	now := s.now()
	course := &entities.Course{
		ID:             uuid.NewString(),
		Code:           in.Code,
		Name:           in.Name,
		Credits:        in.Credits,
		InstructorName: in.InstructorName,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return course, nil
}

func (s *CourseService) Update(ctx context.Context, id string, in input.CourseInput) (*entities.Course, error) {
	in = normalizeCourse(in)
	if in.Code == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: code, name", domain.ErrMissingRequiredField)
	}
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureCodeFree(ctx, in.Code, id); err != nil {
		return nil, err
	}
	course.Code = in.Code
	course.Name = in.Name
	course.Credits = in.Credits
	course.InstructorName = in.InstructorName
	course.UpdatedAt = s.now()
	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	return course, nil
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	return s.courseRepo.Delete(ctx, id)
}

func (s *CourseService) ensureCodeFree(ctx context.Context, code, selfID string) error {
	existing, err := s.courseRepo.FindByCode(ctx, code)
	if errors.Is(err, domain.ErrCourseNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("find course by code: %w", err)
	}
	if existing.ID != selfID {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateCode, code)
	}
	return nil
}

func normalizeCourse(in input.CourseInput) input.CourseInput {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	in.Name = strings.TrimSpace(in.Name)
	in.InstructorName = strings.TrimSpace(in.InstructorName)
	return in
}
