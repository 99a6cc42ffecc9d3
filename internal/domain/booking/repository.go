package booking

import (
	"context"

	"github.com/google/uuid"
)

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// FindByID retrieves a booking by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// FindByConfirmationCode retrieves a booking by its public confirmation code.
	FindByConfirmationCode(ctx context.Context, code string) (*Booking, error)

	// FindByRoomID retrieves all bookings referencing a room, any status.
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*Booking, error)

	// FindActiveByRoomID retrieves the confirmed bookings for a room. This
	// is the set the availability check runs against.
	FindActiveByRoomID(ctx context.Context, roomID uuid.UUID) ([]*Booking, error)

	// ListAll retrieves every booking in insertion order.
	ListAll(ctx context.Context) ([]*Booking, error)

	// ExistsByConfirmationCode reports whether any booking already carries
	// the given confirmation code.
	ExistsByConfirmationCode(ctx context.Context, code string) (bool, error)

	// Save persists a new booking.
	Save(ctx context.Context, booking *Booking) error

	// Update persists changes to an existing booking with optimistic locking.
	Update(ctx context.Context, booking *Booking) error
}
