package services

import (
	"errors"
	"testing"

	"github.com/vishwaa-12/Vehicleservicebooking/domain"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/mocks"
)

// createPolicyServiceForTest creates a PolicyService with mock Casbin enforcer
func createPolicyServiceForTest(t *testing.T) (domain.PolicyService, *mocks.MockCasbinEnforcer) {
	t.Helper()

	enforcer := mocks.NewMockCasbinEnforcer()
	return NewPolicyService(enforcer), enforcer
}

func TestPolicyServiceImpl_AddPolicy(t *testing.T) {
	errStore := errors.New("store unavailable")

	tests := []struct {
		name               string
		setupMock          func(*mocks.MockCasbinEnforcer, *bool)
		expectedError      error
		expectedSaveCalled bool
	}{
		{
			name: "successful policy addition",
			setupMock: func(enforcer *mocks.MockCasbinEnforcer, saved *bool) {
				enforcer.SavePolicyFunc = func() error {
					*saved = true
					return nil
				}
			},
			expectedSaveCalled: true,
		},
		{
			name: "add policy fails",
			setupMock: func(enforcer *mocks.MockCasbinEnforcer, saved *bool) {
				enforcer.AddPolicyFunc = func(params ...interface{}) (bool, error) {
					return false, errStore
				}
				enforcer.SavePolicyFunc = func() error {
					*saved = true
					return nil
				}
			},
			expectedError: errStore,
		},
		{
			name: "save policy fails",
			setupMock: func(enforcer *mocks.MockCasbinEnforcer, saved *bool) {
				enforcer.SavePolicyFunc = func() error {
					*saved = true
					return errStore
				}
			},
			expectedError:      errStore,
			expectedSaveCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policyService, enforcer := createPolicyServiceForTest(t)
			saved := false
			tt.setupMock(enforcer, &saved)

			err := policyService.AddPolicy("role_user", "/vehicles", "GET")
			if !errors.Is(err, tt.expectedError) {
				t.Fatalf("expected error %v, got %v", tt.expectedError, err)
			}
			if saved != tt.expectedSaveCalled {
				t.Errorf("expected SavePolicy called=%v, got %v", tt.expectedSaveCalled, saved)
			}
		})
	}
}

func TestPolicyServiceImpl_RemoveAndCheck(t *testing.T) {
	policyService, _ := createPolicyServiceForTest(t)

	if err := policyService.AddPolicy("role_user", "/services", "GET|POST"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	allowed, err := policyService.CheckPermission("role_user", "/services", "POST")
	if err != nil || !allowed {
		t.Fatalf("expected permission, got %v, %v", allowed, err)
	}

	if err := policyService.RemovePolicy("role_user", "/services", "GET|POST"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	allowed, _ = policyService.CheckPermission("role_user", "/services", "POST")
	if allowed {
		t.Error("expected permission to be revoked")
	}
}

func TestPolicyServiceImpl_SeedDefaults(t *testing.T) {
	tests := []struct {
		name           string
		existing       [][]string
		expectedSeeded bool
		expectedCount  int
	}{
		{
			name:           "empty policy set is seeded",
			expectedSeeded: true,
			expectedCount:  len(DefaultPolicies),
		},
		{
			name:           "existing policies are left alone",
			existing:       [][]string{{"role_admin", "/admin/*", "GET"}},
			expectedSeeded: false,
			expectedCount:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policyService, enforcer := createPolicyServiceForTest(t)
			enforcer.SetPolicies(tt.existing)

			seeded, err := policyService.SeedDefaults()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if seeded != tt.expectedSeeded {
				t.Errorf("expected seeded=%v, got %v", tt.expectedSeeded, seeded)
			}
			if got := len(policyService.GetPolicies()); got != tt.expectedCount {
				t.Errorf("expected %d policies, got %d", tt.expectedCount, got)
			}
		})
	}
}

func TestDefaultPolicies_Access(t *testing.T) {
	policyService, _ := createPolicyServiceForTest(t)
	if _, err := policyService.SeedDefaults(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	tests := []struct {
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"role_user", "/vehicles", "POST", true},
		{"role_user", "/services", "GET", true},
		{"role_user", "/auth/me", "PUT", true},
		{"role_user", "/admin/bookings", "GET", false},
		{"role_admin", "/admin/bookings/:id", "PUT", true},
		{"role_admin", "/services", "POST", true},
		{"role_guest", "/vehicles", "GET", false},
	}

	for _, tt := range tests {
		allowed, err := policyService.CheckPermission(tt.role, tt.resource, tt.action)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if allowed != tt.allowed {
			t.Errorf("%s %s %s: expected %v, got %v", tt.role, tt.action, tt.resource, tt.allowed, allowed)
		}
	}
}
