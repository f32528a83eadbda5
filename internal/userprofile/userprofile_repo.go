package userprofile

import (
	"context"

	"github.com/HorizonColonel/orient-launch-pad/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=userprofile_repo.go -destination=mock/userprofile_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByID(ctx context.Context, id string) (*UserProfile, error)
	FindByCompany(ctx context.Context, companyID string, role string) ([]UserProfile, error)
	FindEmployeeIDs(ctx context.Context, companyID string, ids []string) ([]string, error)
	CountByCompany(ctx context.Context, companyID string, role string) (int64, error)
	Update(ctx context.Context, profile *UserProfile) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) FindByID(ctx context.Context, id string) (*UserProfile, error) {
	var profile UserProfile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByCompany lists profiles of a company. An empty role lists every role.
func (r *repository) FindByCompany(ctx context.Context, companyID string, role string) ([]UserProfile, error) {
	var profiles []UserProfile
	q := r.db.WithContext(ctx).Scopes(tenant.CompanyScope(companyID))
	if role != "" {
		q = q.Where("role = ?", role)
	}
	err := q.Order("first_name ASC, last_name ASC, email ASC").Find(&profiles).Error
	return profiles, err
}

// FindEmployeeIDs returns the subset of ids that are employees of companyID.
// A nil ids slice returns every employee of the company.
func (r *repository) FindEmployeeIDs(ctx context.Context, companyID string, ids []string) ([]string, error) {
	var out []string
	q := r.db.WithContext(ctx).
		Model(&UserProfile{}).
		Scopes(tenant.CompanyScope(companyID)).
		Where("role = ?", string(tenant.RoleEmployee))
	if ids != nil {
		if len(ids) == 0 {
			return []string{}, nil
		}
		q = q.Where("id IN ?", ids)
	}
	err := q.Order("id").Pluck("id", &out).Error
	return out, err
}

func (r *repository) CountByCompany(ctx context.Context, companyID string, role string) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&UserProfile{}).Scopes(tenant.CompanyScope(companyID))
	if role != "" {
		q = q.Where("role = ?", role)
	}
	err := q.Count(&n).Error
	return n, err
}

func (r *repository) Update(ctx context.Context, profile *UserProfile) error {
	return r.db.WithContext(ctx).
		Model(profile).
		Select("first_name", "last_name", "updated_at").
		Updates(profile).Error
}
