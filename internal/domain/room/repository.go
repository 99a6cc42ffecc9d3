package room

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for rooms.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Room, error)
	FindAll(ctx context.Context) ([]*Room, error)
	DistinctRoomTypes(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Save(ctx context.Context, room *Room) error
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}
