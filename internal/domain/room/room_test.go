package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborview-stays/service-reservation/internal/domain"
)

func TestNewRoom(t *testing.T) {
	t.Run("valid room", func(t *testing.T) {
		rm, err := NewRoom("Deluxe King", 18900, "https://cdn.example.com/rooms/deluxe.jpg")
		require.NoError(t, err)
		assert.Equal(t, "Deluxe King", rm.RoomType())
		assert.Equal(t, int64(18900), rm.PriceCents())
		assert.True(t, rm.HasPhoto())
	})

	t.Run("no photo", func(t *testing.T) {
		rm, err := NewRoom("Standard Twin", 9900, "")
		require.NoError(t, err)
		assert.False(t, rm.HasPhoto())
	})

	t.Run("free room is allowed", func(t *testing.T) {
		_, err := NewRoom("Staff Bunk", 0, "")
		require.NoError(t, err)
	})

	t.Run("missing type", func(t *testing.T) {
		_, err := NewRoom("", 18900, "")
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := NewRoom("Deluxe King", -1, "")
		assert.True(t, domain.IsValidation(err))
	})
}

func TestRoomUpdate(t *testing.T) {
	rm, err := NewRoom("Deluxe King", 18900, "")
	require.NoError(t, err)

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		newPrice := int64(21900)
		require.NoError(t, rm.Update("", &newPrice, ""))
		assert.Equal(t, "Deluxe King", rm.RoomType())
		assert.Equal(t, int64(21900), rm.PriceCents())
	})

	t.Run("renaming type", func(t *testing.T) {
		require.NoError(t, rm.Update("Deluxe Queen", nil, ""))
		assert.Equal(t, "Deluxe Queen", rm.RoomType())
		assert.Equal(t, int64(21900), rm.PriceCents())
	})

	t.Run("attaching photo", func(t *testing.T) {
		require.NoError(t, rm.Update("", nil, "https://cdn.example.com/rooms/queen.jpg"))
		assert.True(t, rm.HasPhoto())
	})

	t.Run("negative price rejected without side effects", func(t *testing.T) {
		bad := int64(-500)
		err := rm.Update("Suite", &bad, "")
		assert.True(t, domain.IsValidation(err))
		assert.Equal(t, "Deluxe Queen", rm.RoomType())
		assert.Equal(t, int64(21900), rm.PriceCents())
	})

	t.Run("version increments on update", func(t *testing.T) {
		before := rm.Version()
		require.NoError(t, rm.Update("Suite", nil, ""))
		assert.Equal(t, before+1, rm.Version())
	})
}
