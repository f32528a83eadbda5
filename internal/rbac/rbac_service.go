package rbac

import (
	"sort"

	"github.com/HorizonColonel/orient-launch-pad/internal/domain"
	"github.com/HorizonColonel/orient-launch-pad/internal/tenant"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

type EnforceRequest = domain.EnforceRequest

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req EnforceRequest) (bool, error)
	Permissions(role tenant.Role) ([]string, error)
}

type service struct {
	enforcer *casbin.SyncedEnforcer
	logger   *zap.Logger
}

// NewService loads the role policy into enforcer.
func NewService(enforcer *casbin.SyncedEnforcer, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	s := &service{enforcer: enforcer, logger: l}
	if err := s.loadPolicy(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) loadPolicy() error {
	s.enforcer.ClearPolicy()

	rules := make([][]string, 0)
	for role, perms := range Policy {
		for _, p := range perms {
			rules = append(rules, []string{string(role), p[0], p[1]})
		}
	}
	if _, err := s.enforcer.AddPolicies(rules); err != nil {
		return err
	}

	for _, g := range inherits {
		if _, err := s.enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return err
		}
	}

	s.logger.Debug("rbac policy loaded", zap.Int("rules", len(rules)))
	return nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	if !tenant.Role(req.Role).Valid() {
		return false, nil
	}

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	if !allowed {
		s.logger.Debug("rbac denied",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
		)
	}
	return allowed, nil
}

func (s *service) Permissions(role tenant.Role) ([]string, error) {
	if !role.Valid() {
		return []string{}, nil
	}

	perms, err := s.enforcer.GetImplicitPermissionsForUser(string(role))
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(perms))
	for _, p := range perms {
		if len(p) < 3 {
			continue
		}
		out = append(out, p[1]+":"+p[2])
	}
	sort.Strings(out)
	return out, nil
}
