package room

import (
	"time"

	"github.com/google/uuid"

	"github.com/harborview-stays/service-reservation/internal/domain"
)

// Room is the aggregate root for a bookable hotel room.
type Room struct {
	id         uuid.UUID
	roomType   string
	priceCents int64
	photoURL   string
	version    int64
	createdAt  time.Time
	updatedAt  time.Time
}

// NewRoom creates a new room with validated fields. The photo URL is an
// opaque reference; this service never touches the binary content.
func NewRoom(roomType string, priceCents int64, photoURL string) (*Room, error) {
	if roomType == "" {
		return nil, domain.NewValidationError("room type is required")
	}
	if priceCents < 0 {
		return nil, domain.NewValidationError("room price cannot be negative")
	}

	now := time.Now().UTC()
	return &Room{
		id:         uuid.New(),
		roomType:   roomType,
		priceCents: priceCents,
		photoURL:   photoURL,
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// Reconstruct rebuilds a Room from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	roomType string,
	priceCents int64,
	photoURL string,
	version int64,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:         id,
		roomType:   roomType,
		priceCents: priceCents,
		photoURL:   photoURL,
		version:    version,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// --- Getters ---

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) RoomType() string     { return r.roomType }
func (r *Room) PriceCents() int64    { return r.priceCents }
func (r *Room) PhotoURL() string     { return r.photoURL }
func (r *Room) Version() int64       { return r.version }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

// HasPhoto reports whether a photo reference is attached.
func (r *Room) HasPhoto() bool {
	return r.photoURL != ""
}

// --- Behavior ---

// Update applies partial updates to the room. Empty or nil values leave the
// existing field untouched.
func (r *Room) Update(roomType string, priceCents *int64, photoURL string) error {
	if priceCents != nil && *priceCents < 0 {
		return domain.NewValidationError("room price cannot be negative")
	}
	if roomType != "" {
		r.roomType = roomType
	}
	if priceCents != nil {
		r.priceCents = *priceCents
	}
	if photoURL != "" {
		r.photoURL = photoURL
	}
	r.version++
	r.updatedAt = time.Now().UTC()
	return nil
}
