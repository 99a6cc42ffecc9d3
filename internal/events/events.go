package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicBookingEvents is the Kafka topic carrying booking lifecycle events.
const TopicBookingEvents = "booking.events"

// Event types published on TopicBookingEvents.
const (
	BookingConfirmed = "booking.confirmed"
	BookingCancelled = "booking.cancelled"
)

// BookingConfirmedEvent is emitted after a booking is validated and persisted.
type BookingConfirmedEvent struct {
	BookingID        uuid.UUID `json:"booking_id"`
	RoomID           uuid.UUID `json:"room_id"`
	ConfirmationCode string    `json:"confirmation_code"`
	CheckInDate      time.Time `json:"check_in_date"`
	CheckOutDate     time.Time `json:"check_out_date"`
	GuestEmail       string    `json:"guest_email"`
	TotalGuests      int       `json:"total_guests"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// BookingCancelledEvent is emitted when a booking is cancelled and its date
// range becomes available again.
type BookingCancelledEvent struct {
	BookingID        uuid.UUID `json:"booking_id"`
	RoomID           uuid.UUID `json:"room_id"`
	ConfirmationCode string    `json:"confirmation_code"`
	OccurredAt       time.Time `json:"occurred_at"`
}
