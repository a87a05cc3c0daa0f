package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/mocks"
)

func TestVehicleHandlers_Create(t *testing.T) {
	tests := []struct {
		name           string
		registerErr    error
		expectedStatus int
		checkBody      func(t *testing.T, body map[string]interface{})
	}{
		{
			name:           "created",
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				data := body["data"].(map[string]interface{})
				assert.Equal(t, float64(7), data["accountId"])
				assert.Equal(t, "KA01AB1234", data["registrationNumber"])
			},
		},
		{
			name:           "missing fields",
			registerErr:    &domain.ValidationError{Fields: map[string]bool{"make": true, "model": false}},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				missing := body["missingFields"].(map[string]interface{})
				assert.Equal(t, true, missing["make"])
				assert.Equal(t, false, missing["model"])
			},
		},
		{
			name:           "unknown type",
			registerErr:    domain.ErrInvalidVehicleType,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate registration",
			registerErr:    domain.ErrVehicleExists,
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockVehicleService()
			if tt.registerErr != nil {
				svc.RegisterFunc = func(ctx context.Context, accountID uint, v *domain.Vehicle) (*domain.Vehicle, error) {
					return nil, tt.registerErr
				}
			}
			h := NewVehicleHandlers(svc)
			r := newTestRouter()
			r.POST("/vehicles", withClaims(userClaims()), h.Create)

			w := doJSON(t, r, http.MethodPost, "/vehicles", VehicleRequest{
				Type: domain.VehicleTypeFourWheeler, Make: "Maruti", Model: "Swift", Year: 2020, RegistrationNumber: "KA01AB1234",
			})
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.checkBody != nil {
				tt.checkBody(t, decode(t, w))
			}
		})
	}
}

func TestVehicleHandlers_List(t *testing.T) {
	svc := mocks.NewMockVehicleService()
	svc.ListFunc = func(ctx context.Context, accountID uint) ([]*domain.Vehicle, error) {
		return []*domain.Vehicle{{ID: 1, AccountID: accountID, RegistrationNumber: "KA01AB1234"}}, nil
	}
	h := NewVehicleHandlers(svc)
	r := newTestRouter()
	r.GET("/vehicles", withClaims(userClaims()), h.List)

	w := doJSON(t, r, http.MethodGet, "/vehicles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, float64(7), data[0].(map[string]interface{})["accountId"])
}
