package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/harborview-stays/service-reservation/internal/domain"
)

// Booking is the aggregate root for a room reservation. The stay is a
// half-open interval [checkIn, checkOut): the checkout day is excluded so a
// departing guest and an arriving guest can share a turnover day.
type Booking struct {
	id               uuid.UUID
	roomID           uuid.UUID
	checkInDate      time.Time
	checkOutDate     time.Time
	guestFullName    string
	guestEmail       string
	numAdults        int
	numChildren      int
	confirmationCode string
	status           BookingStatus
	version          int64
	createdAt        time.Time
	updatedAt        time.Time
}

// NewBooking creates a new Booking aggregate with status=requested. The
// confirmation code is assigned later, when the ledger confirms the booking.
func NewBooking(
	roomID uuid.UUID,
	guestFullName, guestEmail string,
	checkInDate, checkOutDate time.Time,
	numAdults, numChildren int,
) (*Booking, error) {
	if roomID == uuid.Nil {
		return nil, domain.NewValidationError("room ID is required")
	}
	if guestFullName == "" {
		return nil, domain.NewValidationError("guest full name is required")
	}
	if guestEmail == "" {
		return nil, domain.NewValidationError("guest email is required")
	}
	if checkInDate.IsZero() || checkOutDate.IsZero() {
		return nil, domain.NewValidationError("check-in and check-out dates are required")
	}
	if !checkInDate.Before(checkOutDate) {
		return nil, domain.NewValidationError("check-in date must come before check-out date")
	}
	if numAdults < 0 || numChildren < 0 {
		return nil, domain.NewValidationError("guest counts cannot be negative")
	}
	if numAdults+numChildren < 1 {
		return nil, domain.NewValidationError("booking must have at least one guest")
	}

	now := time.Now().UTC()
	return &Booking{
		id:            uuid.New(),
		roomID:        roomID,
		checkInDate:   checkInDate,
		checkOutDate:  checkOutDate,
		guestFullName: guestFullName,
		guestEmail:    guestEmail,
		numAdults:     numAdults,
		numChildren:   numChildren,
		status:        StatusRequested,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(
	id, roomID uuid.UUID,
	checkInDate, checkOutDate time.Time,
	guestFullName, guestEmail string,
	numAdults, numChildren int,
	confirmationCode string,
	status BookingStatus,
	version int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:               id,
		roomID:           roomID,
		checkInDate:      checkInDate,
		checkOutDate:     checkOutDate,
		guestFullName:    guestFullName,
		guestEmail:       guestEmail,
		numAdults:        numAdults,
		numChildren:      numChildren,
		confirmationCode: confirmationCode,
		status:           status,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// --- Getters ---

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) RoomID() uuid.UUID       { return b.roomID }
func (b *Booking) CheckInDate() time.Time  { return b.checkInDate }
func (b *Booking) CheckOutDate() time.Time { return b.checkOutDate }
func (b *Booking) GuestFullName() string   { return b.guestFullName }
func (b *Booking) GuestEmail() string      { return b.guestEmail }
func (b *Booking) NumAdults() int          { return b.numAdults }
func (b *Booking) NumChildren() int        { return b.numChildren }
func (b *Booking) Status() BookingStatus   { return b.status }
func (b *Booking) Version() int64          { return b.version }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }

// ConfirmationCode returns the public lookup key for this booking. Empty
// until the booking is confirmed, immutable afterwards.
func (b *Booking) ConfirmationCode() string { return b.confirmationCode }

// TotalGuests returns the derived total guest count.
func (b *Booking) TotalGuests() int {
	return b.numAdults + b.numChildren
}

// IsActive reports whether this booking occupies its date range. Cancelled
// bookings no longer count against availability.
func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

// --- Behavior ---

// Confirm transitions the booking from requested to confirmed and assigns
// its confirmation code. The code cannot change once set.
func (b *Booking) Confirm(confirmationCode string) error {
	if !b.status.CanTransitionTo(StatusConfirmed) {
		return domain.NewInvalidStateError(string(b.status), string(StatusConfirmed))
	}
	if confirmationCode == "" {
		return domain.NewValidationError("confirmation code is required")
	}
	b.confirmationCode = confirmationCode
	b.status = StatusConfirmed
	b.updatedAt = time.Now().UTC()
	return nil
}

// Cancel transitions the booking to cancelled. Cancelling an already
// cancelled booking is rejected so callers can tell "cancelled" apart from
// "never existed".
func (b *Booking) Cancel() error {
	if !b.status.CanTransitionTo(StatusCancelled) {
		return domain.NewInvalidStateError(string(b.status), string(StatusCancelled))
	}
	b.status = StatusCancelled
	b.updatedAt = time.Now().UTC()
	return nil
}

// IncrementVersion bumps the version for optimistic locking.
func (b *Booking) IncrementVersion() {
	b.version++
	b.updatedAt = time.Now().UTC()
}
