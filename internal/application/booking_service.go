package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/harborview-stays/service-reservation/internal/domain"
	bookingDomain "github.com/harborview-stays/service-reservation/internal/domain/booking"
	roomDomain "github.com/harborview-stays/service-reservation/internal/domain/room"
	"github.com/harborview-stays/service-reservation/internal/events"
)

// dateLayout is the wire format for check-in and check-out dates.
const dateLayout = "2006-01-02"

// maxCodeAttempts bounds confirmation-code regeneration on collision.
const maxCodeAttempts = 5

// CreateBookingRequest holds the data needed to create a new booking.
type CreateBookingRequest struct {
	GuestFullName string `json:"guest_full_name" binding:"required"`
	GuestEmail    string `json:"guest_email" binding:"required"`
	CheckInDate   string `json:"check_in_date" binding:"required"`
	CheckOutDate  string `json:"check_out_date" binding:"required"`
	NumAdults     int    `json:"num_adults"`
	NumChildren   int    `json:"num_children"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID               uuid.UUID `json:"id"`
	RoomID           uuid.UUID `json:"room_id"`
	CheckInDate      string    `json:"check_in_date"`
	CheckOutDate     string    `json:"check_out_date"`
	GuestFullName    string    `json:"guest_full_name"`
	GuestEmail       string    `json:"guest_email"`
	NumAdults        int       `json:"num_adults"`
	NumChildren      int       `json:"num_children"`
	TotalGuests      int       `json:"total_guests"`
	ConfirmationCode string    `json:"confirmation_code"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BookingService is the booking ledger: it owns the authoritative set of
// bookings and is the only writer. Availability check and insert run under a
// per-room lock so no other writer can slip an overlapping booking between
// the read and the write.
type BookingService struct {
	rooms     roomDomain.Repository
	bookings  bookingDomain.BookingRepository
	checker   *bookingDomain.AvailabilityChecker
	codes     bookingDomain.CodeGenerator
	locks     *roomLocks
	publisher events.Publisher
	logger    *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	rooms roomDomain.Repository,
	bookings bookingDomain.BookingRepository,
	codes bookingDomain.CodeGenerator,
	publisher events.Publisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		rooms:     rooms,
		bookings:  bookings,
		checker:   bookingDomain.NewAvailabilityChecker(rooms, bookings),
		codes:     codes,
		locks:     newRoomLocks(),
		publisher: publisher,
		logger:    logger,
	}
}

// CreateBooking validates the requested stay, checks availability, assigns a
// confirmation code and persists the booking. All validation happens before
// any write; nothing is persisted on failure.
func (s *BookingService) CreateBooking(ctx context.Context, roomID uuid.UUID, req CreateBookingRequest) (*BookingDTO, error) {
	checkIn, checkOut, err := parseStayDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	bk, err := bookingDomain.NewBooking(
		roomID,
		req.GuestFullName,
		req.GuestEmail,
		checkIn,
		checkOut,
		req.NumAdults,
		req.NumChildren,
	)
	if err != nil {
		return nil, err
	}

	lock := s.locks.acquire(roomID)
	defer lock.Unlock()

	available, err := s.checker.IsRoomAvailable(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, domain.NewValidationError("room is not available for the selected date range")
	}

	if err := s.confirmWithUniqueCode(ctx, bk); err != nil {
		return nil, err
	}

	s.publisher.PublishBookingConfirmed(ctx, events.BookingConfirmedEvent{
		BookingID:        bk.ID(),
		RoomID:           bk.RoomID(),
		ConfirmationCode: bk.ConfirmationCode(),
		CheckInDate:      bk.CheckInDate(),
		CheckOutDate:     bk.CheckOutDate(),
		GuestEmail:       bk.GuestEmail(),
		TotalGuests:      bk.TotalGuests(),
		OccurredAt:       time.Now().UTC(),
	})

	s.logger.Info("booking confirmed",
		zap.String("booking_id", bk.ID().String()),
		zap.String("room_id", roomID.String()),
	)

	result := toBookingDTO(bk)
	return &result, nil
}

// confirmWithUniqueCode assigns a confirmation code and persists the
// booking, regenerating the code a bounded number of times if it is already
// taken. Code uniqueness is probabilistic by construction, so the unique
// index on the column remains the last-resort guard.
func (s *BookingService) confirmWithUniqueCode(ctx context.Context, bk *bookingDomain.Booking) error {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code := s.codes.Generate()

		taken, err := s.bookings.ExistsByConfirmationCode(ctx, code)
		if err != nil {
			return err
		}
		if taken {
			s.logger.Warn("confirmation code collision, regenerating",
				zap.Int("attempt", attempt),
			)
			continue
		}

		if err := bk.Confirm(code); err != nil {
			return err
		}
		return s.bookings.Save(ctx, bk)
	}
	return domain.NewConflictError("could not allocate a unique confirmation code")
}

// CancelBooking cancels a confirmed booking, freeing its date range. Unknown
// ids surface as not-found and already-cancelled bookings as an invalid
// transition, never as silent success.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := bk.Cancel(); err != nil {
		return err
	}

	bk.IncrementVersion()
	if err := s.bookings.Update(ctx, bk); err != nil {
		return err
	}

	s.publisher.PublishBookingCancelled(ctx, events.BookingCancelledEvent{
		BookingID:        bk.ID(),
		RoomID:           bk.RoomID(),
		ConfirmationCode: bk.ConfirmationCode(),
		OccurredAt:       time.Now().UTC(),
	})

	s.logger.Info("booking cancelled",
		zap.String("booking_id", bk.ID().String()),
		zap.String("room_id", bk.RoomID().String()),
	)
	return nil
}

// GetBooking retrieves a single booking by id.
func (s *BookingService) GetBooking(ctx context.Context, bookingID uuid.UUID) (*BookingDTO, error) {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	result := toBookingDTO(bk)
	return &result, nil
}

// GetRoomBookings retrieves all bookings for a room, any status.
func (s *BookingService) GetRoomBookings(ctx context.Context, roomID uuid.UUID) ([]BookingDTO, error) {
	exists, err := s.rooms.Exists(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFoundError("Room", roomID.String())
	}

	bookings, err := s.bookings.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return toBookingDTOs(bookings), nil
}

// --- Helpers ---

func parseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.ParseInLocation(dateLayout, checkIn, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("check-in date must be formatted as YYYY-MM-DD")
	}
	out, err := time.ParseInLocation(dateLayout, checkOut, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("check-out date must be formatted as YYYY-MM-DD")
	}
	return in, out, nil
}

func toBookingDTO(bk *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:               bk.ID(),
		RoomID:           bk.RoomID(),
		CheckInDate:      bk.CheckInDate().Format(dateLayout),
		CheckOutDate:     bk.CheckOutDate().Format(dateLayout),
		GuestFullName:    bk.GuestFullName(),
		GuestEmail:       bk.GuestEmail(),
		NumAdults:        bk.NumAdults(),
		NumChildren:      bk.NumChildren(),
		TotalGuests:      bk.TotalGuests(),
		ConfirmationCode: bk.ConfirmationCode(),
		Status:           string(bk.Status()),
		CreatedAt:        bk.CreatedAt(),
		UpdatedAt:        bk.UpdatedAt(),
	}
}

func toBookingDTOs(bookings []*bookingDomain.Booking) []BookingDTO {
	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk)
	}
	return dtos
}
