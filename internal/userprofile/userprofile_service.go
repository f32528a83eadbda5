package userprofile

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/HorizonColonel/orient-launch-pad/internal/shared/contextutil"
	"github.com/HorizonColonel/orient-launch-pad/internal/tenant"
	userprofileerrors "github.com/HorizonColonel/orient-launch-pad/internal/userprofile/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const OptionsKeyPrefix = "user_profiles:options:"

func GetOptionsKey(companyID string) string {
	return OptionsKeyPrefix + companyID
}

// RoleAll disables the role filter of ListByCompany.
const RoleAll = "all"

//go:generate mockgen -source=userprofile_service.go -destination=mock/userprofile_service_mock.go -package=mock
type Service interface {
	ListByCompany(ctx context.Context, companyID string, role string) ([]ProfileResponse, error)
	Options(ctx context.Context, companyID string) ([]OptionResponse, error)
	GetMe(ctx context.Context, userID string) (ProfileResponse, error)
	UpdateMe(ctx context.Context, userID string, req UpdateMeRequest) (ProfileResponse, error)
	IsEmployeeOf(ctx context.Context, companyID string, employeeIDs []string) (bool, error)
	EmployeeIDs(ctx context.Context, companyID string) ([]string, error)
	CountByCompany(ctx context.Context, companyID string, role tenant.Role) (int64, error)
}

type service struct {
	repo       Repository
	rdb        *redis.Client
	optionsTTL time.Duration
	sf         *singleflight.Group
	logger     *zap.Logger
}

// NewService builds the directory. rdb may be nil, which disables the options cache.
func NewService(repo Repository, rdb *redis.Client, optionsTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("userprofile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("userprofile.service")
	}
	if optionsTTL <= 0 {
		optionsTTL = time.Hour
	}
	return &service{
		repo:       repo,
		rdb:        rdb,
		optionsTTL: optionsTTL,
		sf:         &singleflight.Group{},
		logger:     l,
	}
}

func (s *service) ListByCompany(ctx context.Context, companyID string, role string) ([]ProfileResponse, error) {
	role = strings.TrimSpace(role)
	switch role {
	case "":
		role = string(tenant.RoleEmployee)
	case RoleAll:
		role = ""
	default:
		if !tenant.Role(role).Valid() {
			return nil, userprofileerrors.ErrInvalidRole
		}
	}

	s.logger.Debug("list profiles requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("company_id", companyID),
		zap.String("role", role),
	)

	profiles, err := s.repo.FindByCompany(ctx, companyID, role)
	if err != nil {
		s.logger.Error("list profiles failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]ProfileResponse, len(profiles))
	for i, p := range profiles {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) Options(ctx context.Context, companyID string) ([]OptionResponse, error) {
	cacheKey := GetOptionsKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []OptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		profiles, err := s.repo.FindByCompany(ctx, companyID, string(tenant.RoleEmployee))
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]OptionResponse, len(profiles))
		for i, p := range profiles {
			resp[i] = OptionResponse{ID: p.ID.String(), Name: DisplayName(p.FirstName, p.LastName, p.Email)}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, s.optionsTTL).Err(); err != nil {
					s.logger.Warn("cache employee options failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("load employee options failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, err
	}

	return v.([]OptionResponse), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (ProfileResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return ProfileResponse{}, userprofileerrors.ErrInvalidUserID
	}

	profile, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return ProfileResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*profile), nil
}

func (s *service) UpdateMe(ctx context.Context, userID string, req UpdateMeRequest) (ProfileResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(userID); err != nil {
		return ProfileResponse{}, userprofileerrors.ErrInvalidUserID
	}

	profile, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return ProfileResponse{}, mapRepositoryError(err)
	}

	if req.FirstName != nil {
		v := strings.TrimSpace(*req.FirstName)
		profile.FirstName = &v
	}
	if req.LastName != nil {
		v := strings.TrimSpace(*req.LastName)
		profile.LastName = &v
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		s.logger.Error("update profile failed", zap.String("request_id", rid), zap.Error(err))
		return ProfileResponse{}, mapRepositoryError(err)
	}

	if s.rdb != nil && profile.CompanyID != nil {
		cacheKey := GetOptionsKey(profile.CompanyID.String())
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			s.logger.Error("failed to invalidate employee options cache",
				zap.Error(err),
				zap.String("key", cacheKey),
			)
		}
	}

	s.logger.Info("update profile success", zap.String("request_id", rid), zap.String("user_id", userID))
	return mapToResponse(*profile), nil
}

// IsEmployeeOf reports whether every id is an employee of companyID.
func (s *service) IsEmployeeOf(ctx context.Context, companyID string, employeeIDs []string) (bool, error) {
	if len(employeeIDs) == 0 {
		return true, nil
	}
	for _, id := range employeeIDs {
		if _, err := uuid.Parse(id); err != nil {
			return false, nil
		}
	}

	found, err := s.repo.FindEmployeeIDs(ctx, companyID, dedupe(employeeIDs))
	if err != nil {
		return false, mapRepositoryError(err)
	}
	return len(found) == len(dedupe(employeeIDs)), nil
}

func (s *service) EmployeeIDs(ctx context.Context, companyID string) ([]string, error) {
	ids, err := s.repo.FindEmployeeIDs(ctx, companyID, nil)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return ids, nil
}

func (s *service) CountByCompany(ctx context.Context, companyID string, role tenant.Role) (int64, error) {
	n, err := s.repo.CountByCompany(ctx, companyID, string(role))
	if err != nil {
		return 0, mapRepositoryError(err)
	}
	return n, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func mapToResponse(p UserProfile) ProfileResponse {
	resp := ProfileResponse{
		ID:          p.ID.String(),
		Email:       p.Email,
		FirstName:   deref(p.FirstName),
		LastName:    deref(p.LastName),
		DisplayName: DisplayName(p.FirstName, p.LastName, p.Email),
		Role:        p.Role,
	}
	if p.CompanyID != nil {
		resp.CompanyID = p.CompanyID.String()
	}
	return resp
}
