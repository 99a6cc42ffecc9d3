package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harborview-stays/service-reservation/internal/domain"
	bookingDomain "github.com/harborview-stays/service-reservation/internal/domain/booking"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoomID           uuid.UUID `gorm:"type:uuid;index;not null"`
	CheckInDate      time.Time `gorm:"type:date;not null"`
	CheckOutDate     time.Time `gorm:"type:date;not null"`
	GuestFullName    string    `gorm:"not null;size:200"`
	GuestEmail       string    `gorm:"not null;size:200"`
	NumAdults        int       `gorm:"not null"`
	NumChildren      int       `gorm:"not null"`
	ConfirmationCode string    `gorm:"uniqueIndex;not null;size:36"`
	Status           string    `gorm:"not null;size:20;index"`
	Version          int64     `gorm:"not null;default:1"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of BookingRepository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking by its unique identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", id.String())
		}
		return nil, domain.NewStorageError("find booking by id", err)
	}
	return toDomainBooking(&model)
}

// FindByConfirmationCode retrieves a booking by its public confirmation code.
func (r *GormBookingRepository) FindByConfirmationCode(ctx context.Context, code string) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("confirmation_code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", code)
		}
		return nil, domain.NewStorageError("find booking by confirmation code", err)
	}
	return toDomainBooking(&model)
}

// FindByRoomID retrieves all bookings referencing a room, any status.
func (r *GormBookingRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, domain.NewStorageError("find bookings by room", err)
	}
	return toDomainBookings(models)
}

// FindActiveByRoomID retrieves the confirmed bookings for a room.
func (r *GormBookingRepository) FindActiveByRoomID(ctx context.Context, roomID uuid.UUID) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where("room_id = ? AND status = ?", roomID, bookingDomain.StatusConfirmed.String()).
		Order("check_in_date ASC").
		Find(&models).Error; err != nil {
		return nil, domain.NewStorageError("find active bookings by room", err)
	}
	return toDomainBookings(models)
}

// ListAll retrieves every booking in insertion order.
func (r *GormBookingRepository) ListAll(ctx context.Context) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, domain.NewStorageError("list bookings", err)
	}
	return toDomainBookings(models)
}

// ExistsByConfirmationCode reports whether the code is already taken.
func (r *GormBookingRepository) ExistsByConfirmationCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("confirmation_code = ?", code).
		Count(&count).Error; err != nil {
		return false, domain.NewStorageError("check confirmation code", err)
	}
	return count > 0, nil
}

// Save persists a new booking. A unique-index race on the confirmation code
// surfaces as a ConflictError.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewConflictError("confirmation code already in use")
		}
		return domain.NewStorageError("save booking", err)
	}
	return nil
}

// Update persists changes to an existing booking with optimistic locking.
func (r *GormBookingRepository) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)

	// IncrementVersion was called before Update, so the stored row must
	// still hold the previous version.
	expectedVersion := bk.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"status":     model.Status,
			"version":    model.Version,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return domain.NewStorageError("update booking", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError("booking was modified by another transaction")
	}
	return nil
}

// --- Conversion helpers ---

func toBookingModel(bk *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:               bk.ID(),
		RoomID:           bk.RoomID(),
		CheckInDate:      bk.CheckInDate(),
		CheckOutDate:     bk.CheckOutDate(),
		GuestFullName:    bk.GuestFullName(),
		GuestEmail:       bk.GuestEmail(),
		NumAdults:        bk.NumAdults(),
		NumChildren:      bk.NumChildren(),
		ConfirmationCode: bk.ConfirmationCode(),
		Status:           string(bk.Status()),
		Version:          bk.Version(),
		CreatedAt:        bk.CreatedAt(),
		UpdatedAt:        bk.UpdatedAt(),
	}
}

func toDomainBooking(m *BookingModel) (*bookingDomain.Booking, error) {
	status, err := bookingDomain.ParseBookingStatus(m.Status)
	if err != nil {
		return nil, err
	}
	return bookingDomain.Reconstruct(
		m.ID,
		m.RoomID,
		m.CheckInDate,
		m.CheckOutDate,
		m.GuestFullName,
		m.GuestEmail,
		m.NumAdults,
		m.NumChildren,
		m.ConfirmationCode,
		status,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func toDomainBookings(models []BookingModel) ([]*bookingDomain.Booking, error) {
	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		bk, err := toDomainBooking(&m)
		if err != nil {
			return nil, err
		}
		bookings[i] = bk
	}
	return bookings, nil
}
