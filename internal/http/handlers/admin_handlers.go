package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// AdminHandlers serves the admin view across all accounts
type AdminHandlers struct {
	bookingSvc  domain.BookingService
	vehicleSvc  domain.VehicleService
	accountRepo domain.AccountRepository
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(bookingSvc domain.BookingService, vehicleSvc domain.VehicleService, accountRepo domain.AccountRepository) *AdminHandlers {
	return &AdminHandlers{
		bookingSvc:  bookingSvc,
		vehicleSvc:  vehicleSvc,
		accountRepo: accountRepo,
	}
}

// StatusUpdateRequest represents an admin booking update
type StatusUpdateRequest struct {
	Status string              `json:"status"`
	Cost   decimal.NullDecimal `json:"cost"`
}

// Bookings lists every booking
func (h *AdminHandlers) Bookings(c *gin.Context) {
	bookings, err := h.bookingSvc.ListAll(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": bookings})
}

// UpdateBooking changes a booking's status and optionally its cost
func (h *AdminHandlers) UpdateBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		fail(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.bookingSvc.UpdateStatus(c.Request.Context(), uint(id), domain.BookingStatus(req.Status), req.Cost)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidBookingStatus), errors.Is(err, domain.ErrInvalidCost):
			fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrBookingNotFound):
			fail(c, http.StatusNotFound, err.Error())
		default:
			fail(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": booking})
}

// Vehicles lists every vehicle
func (h *AdminHandlers) Vehicles(c *gin.Context) {
	vehicles, err := h.vehicleSvc.ListAll(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": vehicles})
}

// Accounts lists every account without challenge state
func (h *AdminHandlers) Accounts(c *gin.Context) {
	accounts, err := h.accountRepo.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	out := make([]gin.H, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, profileJSON(a))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}
