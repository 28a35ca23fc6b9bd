package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/output"
)

// Demo data: one week of the computer science department, with two known
// clashes (sch-1/sch-2 on Monday, sch-4/sch-5 on Tuesday).
var (
	DemoRooms = []entities.Room{
		{ID: "room-1", Name: "A101", Building: "Gedung A", Capacity: 40},
		{ID: "room-2", Name: "A102", Building: "Gedung A", Capacity: 40},
		{ID: "room-3", Name: "B201", Building: "Gedung B", Capacity: 50},
		{ID: "room-4", Name: "B202", Building: "Gedung B", Capacity: 50},
		{ID: "room-5", Name: "C301", Building: "Gedung C", Capacity: 30},
		{ID: "room-6", Name: "Lab 1", Building: "Gedung Lab", Capacity: 25},
	}

	DemoCourses = []entities.Course{
		{ID: "course-1", Code: "CS101", Name: "Pemrograman Dasar", Credits: 3, InstructorName: "Dr. Budi Santoso"},
		{ID: "course-2", Code: "CS102", Name: "Struktur Data", Credits: 3, InstructorName: "Dr. Ani Widodo"},
		{ID: "course-3", Code: "CS201", Name: "Algoritma", Credits: 3, InstructorName: "Dr. Citra Dewi"},
		{ID: "course-4", Code: "CS202", Name: "Basis Data", Credits: 3, InstructorName: "Dr. Dedi Rahman"},
		{ID: "course-5", Code: "CS301", Name: "Sistem Operasi", Credits: 3, InstructorName: "Dr. Eko Prasetyo"},
		{ID: "course-6", Code: "CS302", Name: "Jaringan Komputer", Credits: 3, InstructorName: "Dr. Fitri Handayani"},
		{ID: "course-7", Code: "MTK101", Name: "Kalkulus I", Credits: 3, InstructorName: "Dr. Gunawan"},
		{ID: "course-8", Code: "MTK102", Name: "Aljabar Linear", Credits: 3, InstructorName: "Dr. Hani Sari"},
	}

	demoSchedules = []struct {
		id, course, room string
		day              domain.Weekday
		start, end       string
	}{
		{"sch-1", "course-1", "room-1", domain.Monday, "07:00", "09:30"},
		{"sch-2", "course-2", "room-2", domain.Monday, "07:00", "09:30"},
		{"sch-3", "course-3", "room-2", domain.Monday, "09:30", "12:00"},
		{"sch-4", "course-4", "room-3", domain.Tuesday, "07:00", "09:30"},
		{"sch-5", "course-5", "room-4", domain.Tuesday, "07:50", "10:20"},
		{"sch-6", "course-6", "room-5", domain.Wednesday, "12:30", "15:00"},
	}

	DemoUsers = []entities.User{
		{ID: "user-1", Name: "Admin Sistem", Email: "admin@university.ac.id", Role: domain.RoleAdmin},
		{ID: "user-2", Name: "Dr. Budi Santoso", Email: "budi@university.ac.id", Role: domain.RoleLecturer},
		{ID: "user-3", Name: "Ahmad Rizki", Email: "ahmad@university.ac.id", Role: domain.RoleStudent},
	}
)

// DemoSchedules builds the demo events with display caches filled in and
// conflict flags unset.
func DemoSchedules() []entities.ScheduledEvent {
	courses := make(map[string]entities.Course, len(DemoCourses))
	for _, c := range DemoCourses {
		courses[c.ID] = c
	}
	rooms := make(map[string]entities.Room, len(DemoRooms))
	for _, r := range DemoRooms {
		rooms[r.ID] = r
	}

	out := make([]entities.ScheduledEvent, 0, len(demoSchedules))
	for _, s := range demoSchedules {
		c, r := courses[s.course], rooms[s.room]
		e := entities.ScheduledEvent{
			ID:        s.id,
			Day:       s.day,
			StartTime: domain.MustTimeOfDay(s.start),
			EndTime:   domain.MustTimeOfDay(s.end),
		}
		e.ApplyCourse(&c)
		e.ApplyRoom(&r)
		out = append(out, e)
	}
	return out
}

// Seed fills empty repositories with the demo data. Repositories that
// already hold rows are left alone. Users get password as their password.
func Seed(
	ctx context.Context,
	courseRepo output.CourseRepository,
	roomRepo output.RoomRepository,
	scheduleRepo output.ScheduleRepository,
	userRepo output.UserRepository,
	hasher output.PasswordHasher,
	password string,
) error {
	now := time.Now()

	rooms, err := roomRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("seed rooms: %w", err)
	}
	if len(rooms) == 0 {
		for _, r := range DemoRooms {
			r.CreatedAt, r.UpdatedAt = now, now
			if err := roomRepo.Create(ctx, &r); err != nil {
				return fmt.Errorf("seed room %s: %w", r.ID, err)
			}
		}
	}

	courses, err := courseRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("seed courses: %w", err)
	}
	if len(courses) == 0 {
		for _, c := range DemoCourses {
			c.CreatedAt, c.UpdatedAt = now, now
			if err := courseRepo.Create(ctx, &c); err != nil {
				return fmt.Errorf("seed course %s: %w", c.ID, err)
			}
		}
	}

	events, err := scheduleRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("seed schedules: %w", err)
	}
	if len(events) == 0 {
		demo := DemoSchedules()
		for i := range demo {
			demo[i].CreatedAt, demo[i].UpdatedAt = now, now
		}
		if err := scheduleRepo.ReplaceAll(ctx, demo); err != nil {
			return fmt.Errorf("seed schedules: %w", err)
		}
	}

	if userRepo == nil || hasher == nil {
		return nil
	}
	for _, u := range DemoUsers {
		_, err := userRepo.FindByEmail(ctx, u.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		hash, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		u.PasswordHash = hash
		u.CreatedAt = now
		if err := userRepo.Create(ctx, &u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}
	return nil
}
