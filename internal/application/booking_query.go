package application

import (
	"context"

	"github.com/google/uuid"

	bookingDomain "github.com/harborview-stays/service-reservation/internal/domain/booking"
	roomDomain "github.com/harborview-stays/service-reservation/internal/domain/room"
)

// RoomSummary is the slice of room data embedded in a booking view.
type RoomSummary struct {
	ID         uuid.UUID `json:"id"`
	RoomType   string    `json:"room_type"`
	PriceCents int64     `json:"price_cents"`
	HasPhoto   bool      `json:"has_photo"`
}

// BookingView is the response-ready composition of a booking and its room.
type BookingView struct {
	BookingDTO
	Room RoomSummary `json:"room"`
}

// BookingQueryService assembles booking and room data for presentation. It
// never mutates state.
type BookingQueryService struct {
	rooms    roomDomain.Repository
	bookings bookingDomain.BookingRepository
}

// NewBookingQueryService creates a new BookingQueryService.
func NewBookingQueryService(rooms roomDomain.Repository, bookings bookingDomain.BookingRepository) *BookingQueryService {
	return &BookingQueryService{rooms: rooms, bookings: bookings}
}

// GetByConfirmationCode returns the booking view for the public lookup key.
func (s *BookingQueryService) GetByConfirmationCode(ctx context.Context, code string) (*BookingView, error) {
	bk, err := s.bookings.FindByConfirmationCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, bk)
}

// ListBookings returns views for every booking in insertion order.
func (s *BookingQueryService) ListBookings(ctx context.Context) ([]BookingView, error) {
	bookings, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]BookingView, 0, len(bookings))
	for _, bk := range bookings {
		view, err := s.assemble(ctx, bk)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// assemble resolves the booking's room. The ownership invariant says the
// room should always exist, but a vanished room is surfaced as not-found
// rather than assumed impossible.
func (s *BookingQueryService) assemble(ctx context.Context, bk *bookingDomain.Booking) (*BookingView, error) {
	rm, err := s.rooms.FindByID(ctx, bk.RoomID())
	if err != nil {
		return nil, err
	}

	return &BookingView{
		BookingDTO: toBookingDTO(bk),
		Room: RoomSummary{
			ID:         rm.ID(),
			RoomType:   rm.RoomType(),
			PriceCents: rm.PriceCents(),
			HasPhoto:   rm.HasPhoto(),
		},
	}, nil
}
