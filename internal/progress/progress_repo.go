package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HorizonColonel/orient-launch-pad/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const visibleColumns = `ep.id, ep.employee_id, ep.module_id, ep.status, ep.progress_percentage,
	ep.started_at, ep.completed_at, ep.created_at, ep.updated_at,
	up.email AS employee_email, up.first_name AS employee_first_name, up.last_name AS employee_last_name,
	tm.title AS module_title, tm.company_id AS module_company_id, tm.is_active AS module_is_active`

//go:generate mockgen -source=progress_repo.go -destination=mock/progress_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindVisible(ctx context.Context, scope tenant.Scope, filter FetchFilter) ([]ProgressRecord, error)
	FindByKey(ctx context.Context, employeeID, moduleID string) (*ProgressRecord, error)
	FindByKeyForUpdate(ctx context.Context, employeeID, moduleID string) (*EmployeeProgress, error)
	Upsert(ctx context.Context, p *EmployeeProgress) error
	InsertMissing(ctx context.Context, moduleID string, employeeIDs []string, now time.Time) (int64, error)
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

func (r *repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("employee_progress AS ep").
		Select(visibleColumns).
		Joins("LEFT JOIN user_profiles up ON up.id = ep.employee_id").
		Joins("LEFT JOIN training_modules tm ON tm.id = ep.module_id")
}

// FindVisible returns the rows scope may see, newest update first.
func (r *repository) FindVisible(ctx context.Context, scope tenant.Scope, filter FetchFilter) ([]ProgressRecord, error) {
	q := r.joined(ctx)

	switch s := scope.(type) {
	case tenant.EmployeeScope:
		q = q.Where("ep.employee_id = ?", s.EmployeeID)
	case tenant.CompanyAdminScope:
		q = q.Scopes(tenant.CompanyModules("ep.module_id", s.CompanyID))
	default:
		return nil, fmt.Errorf("progress: unsupported scope %T", scope)
	}

	if filter.ModuleID != "" {
		q = q.Where("ep.module_id = ?", filter.ModuleID)
	}
	if filter.EmployeeID != "" {
		q = q.Where("ep.employee_id = ?", filter.EmployeeID)
	}
	if filter.ActiveOnly {
		q = q.Where("tm.is_active = ?", true)
	}

	var records []ProgressRecord
	err := q.Order("ep.updated_at DESC").Order("ep.id").Find(&records).Error
	return records, err
}

func (r *repository) FindByKey(ctx context.Context, employeeID, moduleID string) (*ProgressRecord, error) {
	var record ProgressRecord
	err := r.joined(ctx).
		Where("ep.employee_id = ? AND ep.module_id = ?", employeeID, moduleID).
		Take(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// FindByKeyForUpdate locks the row for the rest of the transaction. A missing row
// is not an error: it returns nil, nil.
func (r *repository) FindByKeyForUpdate(ctx context.Context, employeeID, moduleID string) (*EmployeeProgress, error) {
	var p EmployeeProgress
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ? AND module_id = ?", employeeID, moduleID).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert writes the state columns of p keyed on (employee_id, module_id).
func (r *repository) Upsert(ctx context.Context, p *EmployeeProgress) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "module_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status", "progress_percentage", "started_at", "completed_at", "updated_at",
			}),
		}).
		Create(p).Error
}

// insertBatchSize keeps one INSERT well under the Postgres limit of 65535 bind
// parameters.
const insertBatchSize = 500

// InsertMissing creates a not_started row for every employee without one and
// leaves existing rows untouched. It returns the number of rows created.
func (r *repository) InsertMissing(ctx context.Context, moduleID string, employeeIDs []string, now time.Time) (int64, error) {
	if len(employeeIDs) == 0 {
		return 0, nil
	}

	mid, err := uuid.Parse(moduleID)
	if err != nil {
		return 0, err
	}

	rows := make([]EmployeeProgress, 0, len(employeeIDs))
	for _, id := range employeeIDs {
		eid, err := uuid.Parse(id)
		if err != nil {
			return 0, err
		}
		rows = append(rows, EmployeeProgress{
			ID:                 uuid.New(),
			EmployeeID:         eid,
			ModuleID:           mid,
			Status:             StatusNotStarted,
			ProgressPercentage: 0,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "module_id"}},
			DoNothing: true,
		}).
		CreateInBatches(&rows, insertBatchSize)
	return res.RowsAffected, res.Error
}
