package services

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

var _ domain.CasbinEnforcer = (*casbin.Enforcer)(nil)

// DefaultPolicies grant users their own routes and admins everything
var DefaultPolicies = [][]string{
	{domain.PolicySubject(domain.RoleUser), "/auth/me", "GET|PUT"},
	{domain.PolicySubject(domain.RoleUser), "/vehicles", "GET|POST"},
	{domain.PolicySubject(domain.RoleUser), "/services", "GET|POST"},
	{domain.PolicySubject(domain.RoleAdmin), "/auth/me", "GET|PUT"},
	{domain.PolicySubject(domain.RoleAdmin), "/vehicles", "GET|POST"},
	{domain.PolicySubject(domain.RoleAdmin), "/services", "GET|POST"},
	{domain.PolicySubject(domain.RoleAdmin), "/admin/*", "GET|POST|PUT|DELETE"},
}

// PolicyServiceImpl maps role subjects to route patterns and methods.
// Every change is persisted through the enforcer's adapter.
type PolicyServiceImpl struct {
	rules domain.CasbinEnforcer
}

// NewPolicyService accepts a *casbin.Enforcer or a test double.
func NewPolicyService(rules domain.CasbinEnforcer) domain.PolicyService {
	return &PolicyServiceImpl{rules: rules}
}

func (p *PolicyServiceImpl) AddPolicy(subject, path, methods string) error {
	if _, err := p.rules.AddPolicy(subject, path, methods); err != nil {
		return fmt.Errorf("add policy %s %s %s: %w", subject, path, methods, err)
	}
	return p.persist()
}

func (p *PolicyServiceImpl) RemovePolicy(subject, path, methods string) error {
	if _, err := p.rules.RemovePolicy(subject, path, methods); err != nil {
		return fmt.Errorf("remove policy %s %s %s: %w", subject, path, methods, err)
	}
	return p.persist()
}

func (p *PolicyServiceImpl) CheckPermission(subject, path, method string) (bool, error) {
	return p.rules.Enforce(subject, path, method)
}

// GetPolicies returns nil when the rule set cannot be read.
func (p *PolicyServiceImpl) GetPolicies() [][]string {
	rules, err := p.rules.GetPolicy()
	if err != nil {
		return nil
	}
	return rules
}

// SeedDefaults installs DefaultPolicies only into an empty rule set and
// reports whether it did.
func (p *PolicyServiceImpl) SeedDefaults() (bool, error) {
	existing, err := p.rules.GetPolicy()
	if err != nil {
		return false, fmt.Errorf("read policies: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}
	for _, rule := range DefaultPolicies {
		if _, err := p.rules.AddPolicy(rule[0], rule[1], rule[2]); err != nil {
			return false, fmt.Errorf("seed policy %v: %w", rule, err)
		}
	}
	return true, p.persist()
}

func (p *PolicyServiceImpl) persist() error {
	if err := p.rules.SavePolicy(); err != nil {
		return fmt.Errorf("save policies: %w", err)
	}
	return nil
}
