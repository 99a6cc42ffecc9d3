package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingDomain "github.com/harborview-stays/service-reservation/internal/domain/booking"
	roomDomain "github.com/harborview-stays/service-reservation/internal/domain/room"
)

// CreateRoomRequest holds the data to add a new room to the inventory.
type CreateRoomRequest struct {
	RoomType   string `json:"room_type" binding:"required"`
	PriceCents int64  `json:"price_cents"`
	PhotoURL   string `json:"photo_url"`
}

// UpdateRoomRequest holds partial updates for a room. Absent fields leave
// the current value untouched.
type UpdateRoomRequest struct {
	RoomType   string `json:"room_type"`
	PriceCents *int64 `json:"price_cents"`
	PhotoURL   string `json:"photo_url"`
}

// RoomDTO is the response representation of a room. Booked is derived: true
// when the room has at least one active booking.
type RoomDTO struct {
	ID         uuid.UUID `json:"id"`
	RoomType   string    `json:"room_type"`
	PriceCents int64     `json:"price_cents"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	Booked     bool      `json:"booked"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RoomService manages the room inventory. The booking ledger reads rooms
// through the repository; this service is the only writer.
type RoomService struct {
	rooms    roomDomain.Repository
	bookings bookingDomain.BookingRepository
	logger   *zap.Logger
}

// NewRoomService creates a new RoomService.
func NewRoomService(rooms roomDomain.Repository, bookings bookingDomain.BookingRepository, logger *zap.Logger) *RoomService {
	return &RoomService{rooms: rooms, bookings: bookings, logger: logger}
}

// AddRoom adds a new room to the inventory.
func (s *RoomService) AddRoom(ctx context.Context, req CreateRoomRequest) (*RoomDTO, error) {
	rm, err := roomDomain.NewRoom(req.RoomType, req.PriceCents, req.PhotoURL)
	if err != nil {
		return nil, err
	}

	if err := s.rooms.Save(ctx, rm); err != nil {
		return nil, err
	}

	s.logger.Info("room added",
		zap.String("room_id", rm.ID().String()),
		zap.String("room_type", rm.RoomType()),
	)

	result := toRoomDTO(rm, false)
	return &result, nil
}

// UpdateRoom applies partial updates to an existing room.
func (s *RoomService) UpdateRoom(ctx context.Context, roomID uuid.UUID, req UpdateRoomRequest) (*RoomDTO, error) {
	rm, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if err := rm.Update(req.RoomType, req.PriceCents, req.PhotoURL); err != nil {
		return nil, err
	}

	if err := s.rooms.Update(ctx, rm); err != nil {
		return nil, err
	}

	booked, err := s.isBooked(ctx, roomID)
	if err != nil {
		return nil, err
	}
	result := toRoomDTO(rm, booked)
	return &result, nil
}

// DeleteRoom removes a room from the inventory. Gating deletion against
// active bookings is the caller's responsibility.
func (s *RoomService) DeleteRoom(ctx context.Context, roomID uuid.UUID) error {
	if err := s.rooms.Delete(ctx, roomID); err != nil {
		return err
	}
	s.logger.Info("room deleted", zap.String("room_id", roomID.String()))
	return nil
}

// GetRoom retrieves a single room by id.
func (s *RoomService) GetRoom(ctx context.Context, roomID uuid.UUID) (*RoomDTO, error) {
	rm, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	booked, err := s.isBooked(ctx, roomID)
	if err != nil {
		return nil, err
	}
	result := toRoomDTO(rm, booked)
	return &result, nil
}

// ListRooms retrieves all rooms with their derived booked flags.
func (s *RoomService) ListRooms(ctx context.Context) ([]RoomDTO, error) {
	rooms, err := s.rooms.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]RoomDTO, 0, len(rooms))
	for _, rm := range rooms {
		booked, err := s.isBooked(ctx, rm.ID())
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, toRoomDTO(rm, booked))
	}
	return dtos, nil
}

// ListRoomTypes retrieves the distinct room type labels in the inventory.
func (s *RoomService) ListRoomTypes(ctx context.Context) ([]string, error) {
	return s.rooms.DistinctRoomTypes(ctx)
}

func (s *RoomService) isBooked(ctx context.Context, roomID uuid.UUID) (bool, error) {
	active, err := s.bookings.FindActiveByRoomID(ctx, roomID)
	if err != nil {
		return false, err
	}
	return len(active) > 0, nil
}

func toRoomDTO(rm *roomDomain.Room, booked bool) RoomDTO {
	return RoomDTO{
		ID:         rm.ID(),
		RoomType:   rm.RoomType(),
		PriceCents: rm.PriceCents(),
		PhotoURL:   rm.PhotoURL(),
		Booked:     booked,
		CreatedAt:  rm.CreatedAt(),
		UpdatedAt:  rm.UpdatedAt(),
	}
}
