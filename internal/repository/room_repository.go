package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harborview-stays/service-reservation/internal/domain"
	roomDomain "github.com/harborview-stays/service-reservation/internal/domain/room"
)

// RoomModel is the GORM model for the rooms table.
type RoomModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoomType   string    `gorm:"not null;size:100;index"`
	PriceCents int64     `gorm:"not null"`
	PhotoURL   string    `gorm:"size:500"`
	Version    int64     `gorm:"not null;default:1"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (RoomModel) TableName() string {
	return "rooms"
}

// GormRoomRepository is the GORM-based implementation of room.Repository.
type GormRoomRepository struct {
	db *gorm.DB
}

// NewGormRoomRepository creates a new GormRoomRepository.
func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

// FindByID retrieves a room by its unique identifier.
func (r *GormRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*roomDomain.Room, error) {
	var model RoomModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Room", id.String())
		}
		return nil, domain.NewStorageError("find room by id", err)
	}
	return toDomainRoom(&model), nil
}

// FindAll retrieves every room, newest first.
func (r *GormRoomRepository) FindAll(ctx context.Context) ([]*roomDomain.Room, error) {
	var models []RoomModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, domain.NewStorageError("list rooms", err)
	}

	rooms := make([]*roomDomain.Room, len(models))
	for i, m := range models {
		rooms[i] = toDomainRoom(&m)
	}
	return rooms, nil
}

// DistinctRoomTypes retrieves the distinct room type labels.
func (r *GormRoomRepository) DistinctRoomTypes(ctx context.Context) ([]string, error) {
	var types []string
	if err := r.db.WithContext(ctx).
		Model(&RoomModel{}).
		Distinct("room_type").
		Order("room_type ASC").
		Pluck("room_type", &types).Error; err != nil {
		return nil, domain.NewStorageError("list room types", err)
	}
	return types, nil
}

// Exists reports whether a room with the given id exists.
func (r *GormRoomRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&RoomModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, domain.NewStorageError("check room existence", err)
	}
	return count > 0, nil
}

// Save persists a new room.
func (r *GormRoomRepository) Save(ctx context.Context, rm *roomDomain.Room) error {
	if err := r.db.WithContext(ctx).Create(toRoomModel(rm)).Error; err != nil {
		return domain.NewStorageError("save room", err)
	}
	return nil
}

// Update persists changes to an existing room with optimistic locking.
func (r *GormRoomRepository) Update(ctx context.Context, rm *roomDomain.Room) error {
	model := toRoomModel(rm)

	expectedVersion := rm.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&RoomModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"room_type":   model.RoomType,
			"price_cents": model.PriceCents,
			"photo_url":   model.PhotoURL,
			"version":     model.Version,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		return domain.NewStorageError("update room", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError("room was modified by another transaction")
	}
	return nil
}

// Delete removes a room. Missing rooms surface as NotFoundError so staff can
// tell a stale id from a successful delete.
func (r *GormRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&RoomModel{})
	if result.Error != nil {
		return domain.NewStorageError("delete room", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Room", id.String())
	}
	return nil
}

// --- Conversion helpers ---

func toRoomModel(rm *roomDomain.Room) *RoomModel {
	return &RoomModel{
		ID:         rm.ID(),
		RoomType:   rm.RoomType(),
		PriceCents: rm.PriceCents(),
		PhotoURL:   rm.PhotoURL(),
		Version:    rm.Version(),
		CreatedAt:  rm.CreatedAt(),
		UpdatedAt:  rm.UpdatedAt(),
	}
}

func toDomainRoom(m *RoomModel) *roomDomain.Room {
	return roomDomain.Reconstruct(
		m.ID,
		m.RoomType,
		m.PriceCents,
		m.PhotoURL,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
