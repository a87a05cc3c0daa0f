package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// PolicyHandlers manages authorization policies
type PolicyHandlers struct {
	policySvc domain.PolicyService
}

// NewPolicyHandlers creates new policy handlers
func NewPolicyHandlers(policySvc domain.PolicyService) *PolicyHandlers {
	return &PolicyHandlers{policySvc: policySvc}
}

// PolicyRequest names a role, a route pattern and an action pattern
type PolicyRequest struct {
	Role   string `json:"role" binding:"required"`
	Path   string `json:"path" binding:"required"`
	Method string `json:"method" binding:"required"`
}

// List returns all policies
func (h *PolicyHandlers) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.policySvc.GetPolicies()})
}

// Add grants a role access to a route
func (h *PolicyHandlers) Add(c *gin.Context) {
	var r PolicyRequest
	if err := c.ShouldBindJSON(&r); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.policySvc.AddPolicy(domain.PolicySubject(r.Role), r.Path, r.Method); err != nil {
		fail(c, http.StatusBadRequest, "not added")
		return
	}
	c.Status(http.StatusNoContent)
}

// Remove revokes a role's access to a route
func (h *PolicyHandlers) Remove(c *gin.Context) {
	var r PolicyRequest
	if err := c.ShouldBindJSON(&r); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.policySvc.RemovePolicy(domain.PolicySubject(r.Role), r.Path, r.Method); err != nil {
		fail(c, http.StatusBadRequest, "not removed")
		return
	}
	c.Status(http.StatusNoContent)
}
