package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborview-stays/service-reservation/internal/domain"
	"github.com/harborview-stays/service-reservation/internal/domain/booking"
	"github.com/harborview-stays/service-reservation/internal/domain/room"
	"github.com/harborview-stays/service-reservation/internal/repository"
)

func day(d int) time.Time {
	return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                 string
		aIn, aOut, bIn, bOut int
		want                 bool
	}{
		{"identical ranges", 1, 5, 1, 5, true},
		{"contained range", 1, 10, 3, 5, true},
		{"containing range", 3, 5, 1, 10, true},
		{"partial overlap at start", 1, 5, 3, 8, true},
		{"partial overlap at end", 3, 8, 1, 5, true},
		{"single shared night", 1, 5, 4, 8, true},
		{"back to back, a then b", 1, 5, 5, 8, false},
		{"back to back, b then a", 5, 8, 1, 5, false},
		{"disjoint", 1, 3, 10, 12, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.Overlaps(day(tt.aIn), day(tt.aOut), day(tt.bIn), day(tt.bOut))
			assert.Equal(t, tt.want, got)
		})
	}
}

func confirmedBooking(t *testing.T, roomID uuid.UUID, checkIn, checkOut time.Time) *booking.Booking {
	t.Helper()
	bk, err := booking.NewBooking(roomID, "Guest", "guest@example.com", checkIn, checkOut, 2, 0)
	require.NoError(t, err)
	require.NoError(t, bk.Confirm(uuid.NewString()))
	return bk
}

func TestAvailabilityChecker(t *testing.T) {
	ctx := context.Background()
	rooms := repository.NewMemoryRoomRepository()
	bookings := repository.NewMemoryBookingRepository()
	checker := booking.NewAvailabilityChecker(rooms, bookings)

	rm, err := room.NewRoom("Deluxe King", 18900, "")
	require.NoError(t, err)
	require.NoError(t, rooms.Save(ctx, rm))

	// Occupy [June 3, June 7).
	require.NoError(t, bookings.Save(ctx, confirmedBooking(t, rm.ID(), day(3), day(7))))

	t.Run("overlapping stay is unavailable", func(t *testing.T) {
		available, err := checker.IsRoomAvailable(ctx, rm.ID(), day(5), day(9))
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("back-to-back stay is available", func(t *testing.T) {
		available, err := checker.IsRoomAvailable(ctx, rm.ID(), day(7), day(10))
		require.NoError(t, err)
		assert.True(t, available)

		available, err = checker.IsRoomAvailable(ctx, rm.ID(), day(1), day(3))
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("unknown room", func(t *testing.T) {
		_, err := checker.IsRoomAvailable(ctx, uuid.New(), day(1), day(3))
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("invalid date range", func(t *testing.T) {
		_, err := checker.IsRoomAvailable(ctx, rm.ID(), day(5), day(5))
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("cancelled booking frees the range", func(t *testing.T) {
		bk := confirmedBooking(t, rm.ID(), day(10), day(12))
		require.NoError(t, bookings.Save(ctx, bk))

		available, err := checker.IsRoomAvailable(ctx, rm.ID(), day(10), day(12))
		require.NoError(t, err)
		assert.False(t, available)

		require.NoError(t, bk.Cancel())
		bk.IncrementVersion()
		require.NoError(t, bookings.Update(ctx, bk))

		available, err = checker.IsRoomAvailable(ctx, rm.ID(), day(10), day(12))
		require.NoError(t, err)
		assert.True(t, available)
	})
}
