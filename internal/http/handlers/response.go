package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/http/middleware"
)

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// accountID returns the authenticated caller; routes using it sit behind
// the auth middleware.
func accountID(c *gin.Context) (uint, bool) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return 0, false
	}
	return claims.AccountID, true
}
