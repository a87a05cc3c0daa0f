package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/mocks"
)

func TestAdminHandlers_UpdateBooking(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           string
		updateErr      error
		expectedStatus int
		checkCall      func(t *testing.T, id uint, status domain.BookingStatus, cost decimal.NullDecimal)
	}{
		{
			name:           "status and cost",
			path:           "/admin/bookings/5",
			body:           `{"status":"confirmed","cost":1499.5}`,
			expectedStatus: http.StatusOK,
			checkCall: func(t *testing.T, id uint, status domain.BookingStatus, cost decimal.NullDecimal) {
				assert.Equal(t, uint(5), id)
				assert.Equal(t, domain.BookingConfirmed, status)
				require.True(t, cost.Valid)
				assert.True(t, cost.Decimal.Equal(decimal.RequireFromString("1499.5")))
			},
		},
		{
			name:           "status only",
			path:           "/admin/bookings/5",
			body:           `{"status":"completed"}`,
			expectedStatus: http.StatusOK,
			checkCall: func(t *testing.T, id uint, status domain.BookingStatus, cost decimal.NullDecimal) {
				assert.False(t, cost.Valid)
			},
		},
		{
			name:           "bad id",
			path:           "/admin/bookings/abc",
			body:           `{"status":"completed"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown status",
			path:           "/admin/bookings/5",
			body:           `{"status":"lost"}`,
			updateErr:      domain.ErrInvalidBookingStatus,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative cost",
			path:           "/admin/bookings/5",
			body:           `{"status":"confirmed","cost":-1}`,
			updateErr:      domain.ErrInvalidCost,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no such booking",
			path:           "/admin/bookings/9",
			body:           `{"status":"confirmed"}`,
			updateErr:      domain.ErrBookingNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockBookingService()
			svc.UpdateStatusFunc = func(ctx context.Context, id uint, status domain.BookingStatus, cost decimal.NullDecimal) (*domain.Booking, error) {
				if tt.checkCall != nil {
					tt.checkCall(t, id, status, cost)
				}
				if tt.updateErr != nil {
					return nil, tt.updateErr
				}
				return &domain.Booking{ID: id, Status: status, Cost: cost}, nil
			}
			h := NewAdminHandlers(svc, mocks.NewMockVehicleService(), mocks.NewMockAccountRepository())
			r := newTestRouter()
			r.PUT("/admin/bookings/:id", h.UpdateBooking)

			w := doJSON(t, r, http.MethodPut, tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestAdminHandlers_Lists(t *testing.T) {
	bookings := mocks.NewMockBookingService()
	bookings.ListAllFunc = func(ctx context.Context) ([]*domain.Booking, error) {
		return []*domain.Booking{{ID: 1}, {ID: 2}}, nil
	}
	vehicles := mocks.NewMockVehicleService()
	vehicles.ListAllFunc = func(ctx context.Context) ([]*domain.Vehicle, error) {
		return nil, errors.New("db down")
	}
	accounts := mocks.NewMockAccountRepository()
	hash := "secret"
	accounts.ListFunc = func(ctx context.Context) ([]*domain.Account, error) {
		return []*domain.Account{{ID: 1, Email: "a@b.com", ChallengeHash: &hash}}, nil
	}
	h := NewAdminHandlers(bookings, vehicles, accounts)
	r := newTestRouter()
	r.GET("/admin/bookings", h.Bookings)
	r.GET("/admin/vehicles", h.Vehicles)
	r.GET("/admin/accounts", h.Accounts)

	w := doJSON(t, r, http.MethodGet, "/admin/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"].([]interface{}), 2)

	w = doJSON(t, r, http.MethodGet, "/admin/vehicles", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admin/accounts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
	assert.Contains(t, w.Body.String(), "a@b.com")
}
