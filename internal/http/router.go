package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/http/handlers"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/http/middleware"
)

// Handlers groups the route handlers mounted by BuildRouter
type Handlers struct {
	Auth     *handlers.AuthHandlers
	Vehicles *handlers.VehicleHandlers
	Bookings *handlers.BookingHandlers
	Admin    *handlers.AdminHandlers
	Policies *handlers.PolicyHandlers
}

func BuildRouter(h Handlers, jwtmw *middleware.AuthMW, cb middleware.CasbinMiddleware, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/send-otp", h.Auth.SendOTP)
	auth.POST("/verify-otp", h.Auth.VerifyOTP)
	auth.GET("/logout", h.Auth.Logout)

	v := r.Group("/").Use(jwtmw.WithJWT(), cb.Enforce())
	v.GET("/auth/me", h.Auth.Me)
	v.PUT("/auth/me", h.Auth.UpdateMe)
	v.GET("/vehicles", h.Vehicles.List)
	v.POST("/vehicles", h.Vehicles.Create)
	v.GET("/services", h.Bookings.History)
	v.POST("/services", h.Bookings.Create)

	adm := r.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/bookings", h.Admin.Bookings)
	adm.PUT("/bookings/:id", h.Admin.UpdateBooking)
	adm.GET("/vehicles", h.Admin.Vehicles)
	adm.GET("/accounts", h.Admin.Accounts)
	adm.GET("/policies", h.Policies.List)
	adm.POST("/policies", h.Policies.Add)
	adm.DELETE("/policies", h.Policies.Remove)

	return r
}
