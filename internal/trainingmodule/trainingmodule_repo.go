package trainingmodule

import (
	"context"
	"strings"

	"github.com/HorizonColonel/orient-launch-pad/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=trainingmodule_repo.go -destination=mock/trainingmodule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, module *TrainingModule) error
	List(ctx context.Context, companyID string, filter ListFilter) ([]TrainingModule, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*TrainingModule, error)
	Update(ctx context.Context, module *TrainingModule) error
	Delete(ctx context.Context, companyID, id string) (int64, error)
	CountActive(ctx context.Context, companyID string) (int64, error)
	ListMaterials(ctx context.Context, moduleID string) ([]TrainingMaterial, error)
	CreateMaterial(ctx context.Context, material *TrainingMaterial) error
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

func (r *repository) Create(ctx context.Context, module *TrainingModule) error {
	return r.db.WithContext(ctx).Create(module).Error
}

func (r *repository) List(ctx context.Context, companyID string, filter ListFilter) ([]TrainingModule, error) {
	var modules []TrainingModule
	q := r.db.WithContext(ctx).Scopes(tenant.CompanyScope(companyID))

	if term := strings.TrimSpace(filter.Query); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ?", like, like)
	}

	switch filter.Status {
	case StatusActive:
		q = q.Where("is_active = ?", true)
	case StatusInactive:
		q = q.Where("is_active = ?", false)
	}

	err := q.Order("created_at DESC").Find(&modules).Error
	return modules, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*TrainingModule, error) {
	var module TrainingModule
	err := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		First(&module, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *repository) Update(ctx context.Context, module *TrainingModule) error {
	return r.db.WithContext(ctx).Save(module).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		Delete(&TrainingModule{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) CountActive(ctx context.Context, companyID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&TrainingModule{}).
		Scopes(tenant.CompanyScope(companyID)).
		Where("is_active = ?", true).
		Count(&n).Error
	return n, err
}

func (r *repository) ListMaterials(ctx context.Context, moduleID string) ([]TrainingMaterial, error) {
	var materials []TrainingMaterial
	err := r.db.WithContext(ctx).
		Where("module_id = ?", moduleID).
		Order("uploaded_at ASC").
		Find(&materials).Error
	return materials, err
}

func (r *repository) CreateMaterial(ctx context.Context, material *TrainingMaterial) error {
	return r.db.WithContext(ctx).Create(material).Error
}
