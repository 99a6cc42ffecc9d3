package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborview-stays/service-reservation/internal/application"
)

func TestRoomEndpoints(t *testing.T) {
	router := newTestRouter()

	t.Run("add room", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/rooms", gin.H{
			"room_type":   "Standard Twin",
			"price_cents": 9900,
			"photo_url":   "https://cdn.example.com/rooms/twin.jpg",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var dto application.RoomDTO
		decodeData(t, rec, &dto)
		assert.Equal(t, "Standard Twin", dto.RoomType)
		assert.False(t, dto.Booked)
	})

	t.Run("add room without type", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/rooms", gin.H{"price_cents": 9900})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list rooms", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/rooms", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var dtos []application.RoomDTO
		decodeData(t, rec, &dtos)
		require.Len(t, dtos, 1)
	})

	t.Run("list room types", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/rooms/types", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var types []string
		decodeData(t, rec, &types)
		assert.Equal(t, []string{"Standard Twin"}, types)
	})
}

func TestRoomLifecycleEndpoints(t *testing.T) {
	router := newTestRouter()
	roomID := createRoom(t, router)
	roomPath := fmt.Sprintf("/api/v1/rooms/%s", roomID)

	t.Run("get room", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, roomPath, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var dto application.RoomDTO
		decodeData(t, rec, &dto)
		assert.Equal(t, roomID, dto.ID)
	})

	t.Run("update room price", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, roomPath, gin.H{"price_cents": 21900})
		require.Equal(t, http.StatusOK, rec.Code)

		var dto application.RoomDTO
		decodeData(t, rec, &dto)
		assert.Equal(t, int64(21900), dto.PriceCents)
		assert.Equal(t, "Deluxe King", dto.RoomType)
	})

	t.Run("booked flag reflects active bookings", func(t *testing.T) {
		bookingsPath := roomPath + "/bookings"
		rec := doJSON(t, router, http.MethodPost, bookingsPath, bookingBody("2024-06-01", "2024-06-05"))
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, router, http.MethodGet, roomPath, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var dto application.RoomDTO
		decodeData(t, rec, &dto)
		assert.True(t, dto.Booked)
	})

	t.Run("delete room", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, roomPath, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, router, http.MethodGet, roomPath, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown room", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/rooms/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed room id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/rooms/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
