package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/harborview-stays/service-reservation/internal/application"
	"github.com/harborview-stays/service-reservation/internal/response"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
	query   *application.BookingQueryService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService, query *application.BookingQueryService) *BookingHandler {
	return &BookingHandler{service: service, query: query}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/api/v1/bookings")
	{
		bookings.GET("", h.ListBookings)
		bookings.GET("/confirmation/:code", h.GetByConfirmationCode)
		bookings.DELETE("/:id", h.CancelBooking)
	}

	rooms := r.Group("/api/v1/rooms")
	{
		rooms.POST("/:id/bookings", h.CreateBooking)
		rooms.GET("/:id/bookings", h.GetRoomBookings)
	}
}

// CreateBooking handles POST /api/v1/rooms/:id/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid room ID")
		return
	}

	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), roomID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListBookings handles GET /api/v1/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	views, err := h.query.ListBookings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, views)
}

// GetByConfirmationCode handles GET /api/v1/bookings/confirmation/:code.
func (h *BookingHandler) GetByConfirmationCode(c *gin.Context) {
	code := c.Param("code")

	view, err := h.query.GetByConfirmationCode(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, view)
}

// CancelBooking handles DELETE /api/v1/bookings/:id.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	if err := h.service.CancelBooking(c.Request.Context(), bookingID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetRoomBookings handles GET /api/v1/rooms/:id/bookings.
func (h *BookingHandler) GetRoomBookings(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid room ID")
		return
	}

	bookings, err := h.service.GetRoomBookings(c.Request.Context(), roomID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, bookings)
}
