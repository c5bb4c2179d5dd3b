package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/agenda-hub/internal/domain/booking"
	"github.com/BruksfildServices01/agenda-hub/internal/httpresp"
	"github.com/BruksfildServices01/agenda-hub/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	list         *booking.ListBookings
	updateStatus *booking.UpdateStatus
	createPublic *booking.CreatePublic
	log          logrus.FieldLogger
}

func NewBookingHandler(
	list *booking.ListBookings,
	updateStatus *booking.UpdateStatus,
	createPublic *booking.CreatePublic,
	log logrus.FieldLogger,
) *BookingHandler {
	return &BookingHandler{
		list:         list,
		updateStatus: updateStatus,
		createPublic: createPublic,
		log:          log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateBookingStatusRequest struct {
	Action string `json:"action" binding:"required"`
}

type PublicCreateBookingRequest struct {
	ServiceID     string `json:"service_id" binding:"required"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:MM
	Notes         string `json:"notes"`
}

// ======================================================
// LIST (OWNER)
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	rows, err := h.list.Execute(c.Request.Context(), sessionFrom(c))
	if err != nil {
		respondError(c, h.log, err, "failed_to_list_bookings", "Error al cargar las reservas.")
		return
	}

	httpresp.List(c, rows)
}

// ======================================================
// STATUS (OWNER)
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id", "booking_not_found")
	if !ok {
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	b, err := h.updateStatus.Execute(
		c.Request.Context(),
		sessionFrom(c),
		id,
		domain.Action(req.Action),
	)
	if err != nil {
		respondError(c, h.log, err, "failed_to_update_booking", "No se pudo actualizar la reserva.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     b.ID,
		"status": b.Status,
		"badge":  booking.ToListDTO(*b).Badge,
	})
}

// ======================================================
// CREATE (PUBLIC)
// ======================================================

func (h *BookingHandler) CreatePublic(c *gin.Context) {
	businessID, ok := paramID(c, "id", "business_not_found")
	if !ok {
		return
	}

	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		invalidRequest(c)
		return
	}

	b, err := h.createPublic.Execute(c.Request.Context(), booking.CreatePublicInput{
		BusinessID:    businessID,
		ServiceID:     serviceID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, h.log, err, "failed_to_create_booking", "No se pudo registrar la reserva.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":           b.ID,
		"business_id":  b.BusinessID,
		"service_id":   b.ServiceID,
		"booking_date": b.BookingDate.Format("2006-01-02"),
		"start_time":   b.StartTime,
		"end_time":     b.EndTime,
		"status":       b.Status,
	})
}
