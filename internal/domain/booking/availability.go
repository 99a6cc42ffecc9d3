package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/harborview-stays/service-reservation/internal/domain"
	roomDomain "github.com/harborview-stays/service-reservation/internal/domain/room"
)

// Overlaps reports whether two half-open date intervals [aIn, aOut) and
// [bIn, bOut) intersect. A checkout and a check-in on the same day do not
// overlap, which is what allows back-to-back turnover.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// AvailabilityChecker answers whether a room is free for a requested stay by
// consulting the room's active bookings. It has no side effects; the result
// can go stale immediately, so the ledger serializes check-and-insert per
// room.
type AvailabilityChecker struct {
	rooms    roomDomain.Repository
	bookings BookingRepository
}

// NewAvailabilityChecker creates a new AvailabilityChecker.
func NewAvailabilityChecker(rooms roomDomain.Repository, bookings BookingRepository) *AvailabilityChecker {
	return &AvailabilityChecker{rooms: rooms, bookings: bookings}
}

// IsRoomAvailable reports whether no active booking for the room overlaps
// the requested [checkIn, checkOut) interval.
func (c *AvailabilityChecker) IsRoomAvailable(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return false, domain.NewValidationError("check-in and check-out dates are required")
	}
	if !checkIn.Before(checkOut) {
		return false, domain.NewValidationError("check-in date must come before check-out date")
	}

	exists, err := c.rooms.Exists(ctx, roomID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, domain.NewNotFoundError("Room", roomID.String())
	}

	existing, err := c.bookings.FindActiveByRoomID(ctx, roomID)
	if err != nil {
		return false, err
	}

	for _, bk := range existing {
		if Overlaps(checkIn, checkOut, bk.CheckInDate(), bk.CheckOutDate()) {
			return false, nil
		}
	}
	return true, nil
}
