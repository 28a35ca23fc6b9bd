package application

import (
	"context"
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

var _ input.RoomUseCase = (*RoomService)(nil)

type RoomService struct {
	roomRepo output.RoomRepository
	now      func() time.Time
}

func NewRoomService(roomRepo output.RoomRepository) *RoomService {
	return &RoomService{roomRepo: roomRepo, now: time.Now}
}

// List returns rooms grouped by building, then by name.
func (s *RoomService) List(ctx context.Context) ([]entities.Room, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	sort.SliceStable(rooms, func(i, j int) bool {
		if rooms[i].Building != rooms[j].Building {
			return rooms[i].Building < rooms[j].Building
		}
		return rooms[i].Name < rooms[j].Name
	})
	return rooms, nil
}

func (s *RoomService) Get(ctx context.Context, id string) (*entities.Room, error) {
	return s.roomRepo.FindByID(ctx, id)
}

func (s *RoomService) Create(ctx context.Context, in input.RoomInput) (*entities.Room, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Building = strings.TrimSpace(in.Building)
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name", domain.ErrMissingRequiredField)
	}
	now := s.now()
	room := &entities.Room{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Building:  in.Building,
		Capacity:  in.Capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}
	return room, nil
}

func (s *RoomService) Update(ctx context.Context, id string, in input.RoomInput) (*entities.Room, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name", domain.ErrMissingRequiredField)
	}
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	room.Name = in.Name
	room.Building = strings.TrimSpace(in.Building)
	room.Capacity = in.Capacity
	room.UpdatedAt = s.now()
	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, id string) error {
	return s.roomRepo.Delete(ctx, id)
}
