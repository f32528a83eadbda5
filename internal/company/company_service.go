package company

import (
	"context"
	"strings"

	companyerrors "github.com/HorizonColonel/orient-launch-pad/internal/company/errors"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	GetByID(ctx context.Context, id string) (*CompanyResponse, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) (*CompanyResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetByID(ctx context.Context, id string) (*CompanyResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToResponse(comp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCompanyRequest) (*CompanyResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update company requested", zap.String("request_id", rid), zap.String("company_id", id))

	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, companyerrors.ErrEmptyName
		}
		comp.Name = name
	}
	if req.Description != nil {
		comp.Description = req.Description
	}
	if req.Mission != nil {
		comp.Mission = req.Mission
	}
	if req.LogoURL != nil {
		comp.LogoURL = req.LogoURL
	}

	if err := s.repo.Update(ctx, comp); err != nil {
		s.logger.Error("update company failed", zap.String("request_id", rid), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("update company success", zap.String("request_id", rid), zap.String("company_id", id))
	return mapToResponse(comp), nil
}

func mapToResponse(c *Company) *CompanyResponse {
	return &CompanyResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: deref(c.Description),
		Mission:     deref(c.Mission),
		LogoURL:     deref(c.LogoURL),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
