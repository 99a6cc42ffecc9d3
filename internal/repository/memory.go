package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/harborview-stays/service-reservation/internal/domain"
	bookingDomain "github.com/harborview-stays/service-reservation/internal/domain/booking"
	roomDomain "github.com/harborview-stays/service-reservation/internal/domain/room"
)

// MemoryRoomRepository is an in-memory room.Repository for tests and local
// development. It mirrors the error semantics of the GORM implementation.
type MemoryRoomRepository struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID]*roomDomain.Room
}

// NewMemoryRoomRepository creates an empty MemoryRoomRepository.
func NewMemoryRoomRepository() *MemoryRoomRepository {
	return &MemoryRoomRepository{rooms: make(map[uuid.UUID]*roomDomain.Room)}
}

func (r *MemoryRoomRepository) FindByID(_ context.Context, id uuid.UUID) (*roomDomain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rm, ok := r.rooms[id]
	if !ok {
		return nil, domain.NewNotFoundError("Room", id.String())
	}
	return rm, nil
}

func (r *MemoryRoomRepository) FindAll(_ context.Context) ([]*roomDomain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*roomDomain.Room, 0, len(r.rooms))
	for _, rm := range r.rooms {
		out = append(out, rm)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt().After(out[j].CreatedAt())
	})
	return out, nil
}

func (r *MemoryRoomRepository) DistinctRoomTypes(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	var types []string
	for _, rm := range r.rooms {
		if _, ok := seen[rm.RoomType()]; !ok {
			seen[rm.RoomType()] = struct{}{}
			types = append(types, rm.RoomType())
		}
	}
	sort.Strings(types)
	return types, nil
}

func (r *MemoryRoomRepository) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rooms[id]
	return ok, nil
}

func (r *MemoryRoomRepository) Save(_ context.Context, rm *roomDomain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[rm.ID()] = rm
	return nil
}

func (r *MemoryRoomRepository) Update(_ context.Context, rm *roomDomain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[rm.ID()]; !ok {
		return domain.NewNotFoundError("Room", rm.ID().String())
	}
	r.rooms[rm.ID()] = rm
	return nil
}

func (r *MemoryRoomRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[id]; !ok {
		return domain.NewNotFoundError("Room", id.String())
	}
	delete(r.rooms, id)
	return nil
}

// MemoryBookingRepository is an in-memory BookingRepository for tests and
// local development. Saves enforce confirmation-code uniqueness and updates
// enforce optimistic locking, matching the GORM implementation.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]*bookingDomain.Booking
	order    []uuid.UUID
	versions map[uuid.UUID]int64
}

// NewMemoryBookingRepository creates an empty MemoryBookingRepository.
func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{
		bookings: make(map[uuid.UUID]*bookingDomain.Booking),
		versions: make(map[uuid.UUID]int64),
	}
}

func (r *MemoryBookingRepository) FindByID(_ context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bk, ok := r.bookings[id]
	if !ok {
		return nil, domain.NewNotFoundError("Booking", id.String())
	}
	return bk, nil
}

func (r *MemoryBookingRepository) FindByConfirmationCode(_ context.Context, code string) (*bookingDomain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, bk := range r.bookings {
		if bk.ConfirmationCode() == code {
			return bk, nil
		}
	}
	return nil, domain.NewNotFoundError("Booking", code)
}

func (r *MemoryBookingRepository) FindByRoomID(_ context.Context, roomID uuid.UUID) ([]*bookingDomain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*bookingDomain.Booking
	for _, id := range r.order {
		if bk := r.bookings[id]; bk != nil && bk.RoomID() == roomID {
			out = append(out, bk)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepository) FindActiveByRoomID(_ context.Context, roomID uuid.UUID) ([]*bookingDomain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*bookingDomain.Booking
	for _, id := range r.order {
		if bk := r.bookings[id]; bk != nil && bk.RoomID() == roomID && bk.IsActive() {
			out = append(out, bk)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepository) ListAll(_ context.Context) ([]*bookingDomain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*bookingDomain.Booking, 0, len(r.order))
	for _, id := range r.order {
		if bk := r.bookings[id]; bk != nil {
			out = append(out, bk)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepository) ExistsByConfirmationCode(_ context.Context, code string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, bk := range r.bookings {
		if bk.ConfirmationCode() == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryBookingRepository) Save(_ context.Context, bk *bookingDomain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.bookings {
		if existing.ConfirmationCode() == bk.ConfirmationCode() {
			return domain.NewConflictError("confirmation code already in use")
		}
	}
	r.bookings[bk.ID()] = bk
	r.order = append(r.order, bk.ID())
	r.versions[bk.ID()] = bk.Version()
	return nil
}

func (r *MemoryBookingRepository) Update(_ context.Context, bk *bookingDomain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.versions[bk.ID()]
	if !ok {
		return domain.NewNotFoundError("Booking", bk.ID().String())
	}
	if stored != bk.Version()-1 {
		return domain.NewConflictError("booking was modified by another transaction")
	}
	r.bookings[bk.ID()] = bk
	r.versions[bk.ID()] = bk.Version()
	return nil
}
