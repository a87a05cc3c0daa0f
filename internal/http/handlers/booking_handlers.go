package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// BookingHandlers handles service bookings and history
type BookingHandlers struct {
	bookingSvc domain.BookingService
}

// NewBookingHandlers creates new booking handlers
func NewBookingHandlers(bookingSvc domain.BookingService) *BookingHandlers {
	return &BookingHandlers{bookingSvc: bookingSvc}
}

// BookingRequest represents a service booking
type BookingRequest struct {
	VehicleType   string   `json:"vehicleType"`
	VehicleNumber string   `json:"vehicleNumber"`
	VehicleName   string   `json:"vehicleName"`
	VehicleID     *uint    `json:"vehicleId"`
	ServiceTypes  []string `json:"serviceTypes"`
	ScheduledDate string   `json:"scheduledDate"`
	Notes         string   `json:"notes"`
}

// parseScheduledDate accepts RFC 3339 timestamps and plain dates.
// An empty value yields the zero time, which the service reports as missing.
func parseScheduledDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// Create books a service for the caller
func (h *BookingHandlers) Create(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	scheduled, err := parseScheduledDate(req.ScheduledDate)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid scheduled date")
		return
	}

	booking, err := h.bookingSvc.Book(c.Request.Context(), id, &domain.Booking{
		VehicleType:   req.VehicleType,
		VehicleNumber: req.VehicleNumber,
		VehicleName:   req.VehicleName,
		VehicleID:     req.VehicleID,
		ServiceTypes:  req.ServiceTypes,
		ScheduledDate: scheduled,
		Notes:         req.Notes,
	})
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{
				"success":       false,
				"error":         "Missing required fields",
				"missingFields": verr.Fields,
			})
		case errors.Is(err, domain.ErrInvalidVehicleType):
			fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrVehicleNotFound):
			fail(c, http.StatusNotFound, err.Error())
		default:
			fail(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": booking})
}

// History returns the caller's bookings
func (h *BookingHandlers) History(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	bookings, err := h.bookingSvc.History(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": bookings})
}
