package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// VehicleHandlers handles the caller's vehicles
type VehicleHandlers struct {
	vehicleSvc domain.VehicleService
}

// NewVehicleHandlers creates new vehicle handlers
func NewVehicleHandlers(vehicleSvc domain.VehicleService) *VehicleHandlers {
	return &VehicleHandlers{vehicleSvc: vehicleSvc}
}

// VehicleRequest represents a vehicle registration
type VehicleRequest struct {
	Type               string `json:"type"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	Year               int    `json:"year"`
	RegistrationNumber string `json:"registrationNumber"`
}

// List returns the caller's vehicles
func (h *VehicleHandlers) List(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	vehicles, err := h.vehicleSvc.List(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": vehicles})
}

// Create registers a vehicle for the caller
func (h *VehicleHandlers) Create(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	vehicle, err := h.vehicleSvc.Register(c.Request.Context(), id, &domain.Vehicle{
		Type:               req.Type,
		Make:               req.Make,
		Model:              req.Model,
		Year:               req.Year,
		RegistrationNumber: req.RegistrationNumber,
	})
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{
				"success":       false,
				"error":         "Please include all required fields",
				"missingFields": verr.Fields,
			})
		case errors.Is(err, domain.ErrInvalidVehicleType):
			fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrVehicleExists):
			fail(c, http.StatusConflict, err.Error())
		default:
			fail(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": vehicle})
}
