package progress

import (
	"context"
	"strings"

	"github.com/HorizonColonel/orient-launch-pad/internal/events"
	"github.com/HorizonColonel/orient-launch-pad/internal/messaging/kafka"
	progresserrors "github.com/HorizonColonel/orient-launch-pad/internal/progress/errors"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/apperror"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/contextutil"
	"github.com/HorizonColonel/orient-launch-pad/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AssignModule rolls moduleID out to the given employees of the admin's company.
// Everything is validated before the single batched insert.
func (s *service) AssignModule(ctx context.Context, caller tenant.Caller, moduleID string, employeeIDs []string) (AssignmentResult, error) {
	scope, err := tenant.Resolve(caller)
	if err != nil {
		return AssignmentResult{}, err
	}
	admin, ok := scope.(tenant.CompanyAdminScope)
	if !ok {
		return AssignmentResult{}, apperror.ErrForbidden
	}
	if _, err := uuid.Parse(moduleID); err != nil {
		return AssignmentResult{}, progresserrors.ErrInvalidModuleID
	}

	ids, err := normalizeEmployeeIDs(employeeIDs)
	if err != nil {
		return AssignmentResult{}, err
	}

	if err := s.requireModule(ctx, admin.CompanyID, moduleID); err != nil {
		return AssignmentResult{}, err
	}
	ok, err = s.directory.IsEmployeeOf(ctx, admin.CompanyID, ids)
	if err != nil {
		return AssignmentResult{}, storeFailure(err)
	}
	if !ok {
		s.logger.Warn("assignment rejected: foreign employees",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("module_id", moduleID),
		)
		return AssignmentResult{}, progresserrors.ErrNotCompanyEmployee
	}

	return s.assign(ctx, admin.CompanyID, moduleID, ids, caller.UserID)
}

// AssignModuleToCompany rolls moduleID out to every employee of companyID.
// Employees who already have a row keep it as is.
func (s *service) AssignModuleToCompany(ctx context.Context, companyID, moduleID, assignedBy string) (AssignmentResult, error) {
	if strings.TrimSpace(companyID) == "" {
		return AssignmentResult{}, tenant.ErrNoCompany
	}
	if _, err := uuid.Parse(moduleID); err != nil {
		return AssignmentResult{}, progresserrors.ErrInvalidModuleID
	}
	if err := s.requireModule(ctx, companyID, moduleID); err != nil {
		return AssignmentResult{}, err
	}

	ids, err := s.directory.EmployeeIDs(ctx, companyID)
	if err != nil {
		return AssignmentResult{}, storeFailure(err)
	}
	if len(ids) == 0 {
		s.logger.Info("assign to company skipped: no employees", zap.String("company_id", companyID), zap.String("module_id", moduleID))
		return AssignmentResult{}, nil
	}

	return s.assign(ctx, companyID, moduleID, ids, assignedBy)
}

func (s *service) assign(ctx context.Context, companyID, moduleID string, employeeIDs []string, assignedBy string) (AssignmentResult, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("assign module requested",
		zap.String("request_id", rid),
		zap.String("module_id", moduleID),
		zap.Int("employees", len(employeeIDs)),
	)

	var created int64
	err := s.transact(ctx, func(ctx context.Context, repo Repository, tx *gorm.DB) error {
		n, err := repo.InsertMissing(ctx, moduleID, employeeIDs, s.now())
		if err != nil {
			return err
		}
		created = n
		return s.queueModuleAssigned(ctx, tx, companyID, moduleID, employeeIDs, int(n), assignedBy)
	})
	if err != nil {
		s.logger.Error("assign module failed", zap.String("request_id", rid), zap.String("module_id", moduleID), zap.Error(err))
		return AssignmentResult{}, err
	}

	if err := s.snapshots.Invalidate(ctx, companyID, employeeIDs...); err != nil {
		s.logger.Warn("invalidate progress snapshots failed", zap.String("company_id", companyID), zap.Error(err))
	}

	result := AssignmentResult{
		Requested:       len(employeeIDs),
		Created:         int(created),
		AlreadyAssigned: len(employeeIDs) - int(created),
	}
	s.logger.Info("assign module success",
		zap.String("request_id", rid),
		zap.String("module_id", moduleID),
		zap.Int("created", result.Created),
		zap.Int("already_assigned", result.AlreadyAssigned),
	)
	return result, nil
}

func (s *service) queueModuleAssigned(ctx context.Context, tx *gorm.DB, companyID, moduleID string, employeeIDs []string, created int, assignedBy string) error {
	if s.outbox == nil {
		return nil
	}

	event, err := kafka.NewEvent(events.ProgressTopic, events.ModuleAssigned, "training_module", moduleID,
		contextutil.GetRequestID(ctx),
		events.ModuleAssignedEvent{
			EventType:   events.ModuleAssigned,
			ModuleID:    moduleID,
			CompanyID:   companyID,
			EmployeeIDs: employeeIDs,
			Created:     created,
			AssignedBy:  assignedBy,
			OccurredAt:  s.now(),
		})
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

// normalizeEmployeeIDs trims, validates and de-duplicates ids keeping first-seen order.
func normalizeEmployeeIDs(ids []string) ([]string, error) {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, progresserrors.ErrInvalidEmployeeID
		}
		key := id.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	if len(out) == 0 {
		return nil, progresserrors.ErrNoEmployees
	}
	return out, nil
}
