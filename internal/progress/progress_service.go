package progress

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/HorizonColonel/orient-launch-pad/internal/events"
	"github.com/HorizonColonel/orient-launch-pad/internal/messaging/kafka"
	progresserrors "github.com/HorizonColonel/orient-launch-pad/internal/progress/errors"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/apperror"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/contextutil"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/retry"
	"github.com/HorizonColonel/orient-launch-pad/internal/tenant"
	"github.com/HorizonColonel/orient-launch-pad/internal/trainingmodule"
	"github.com/HorizonColonel/orient-launch-pad/internal/userprofile"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	unknownEmployee = "Unknown"
	unknownModule   = "Unknown Module"
)

// ModuleCatalog is the part of the training module catalog progress depends on.
//
//go:generate mockgen -source=progress_service.go -destination=mock/progress_service_mock.go -package=mock
type ModuleCatalog interface {
	BelongsToCompany(ctx context.Context, companyID, moduleID string) (bool, error)
	CountActive(ctx context.Context, companyID string) (int64, error)
	Options(ctx context.Context, companyID string) ([]trainingmodule.OptionResponse, error)
}

// Directory is the part of the employee directory progress depends on.
type Directory interface {
	IsEmployeeOf(ctx context.Context, companyID string, employeeIDs []string) (bool, error)
	EmployeeIDs(ctx context.Context, companyID string) ([]string, error)
	Options(ctx context.Context, companyID string) ([]userprofile.OptionResponse, error)
	CountByCompany(ctx context.Context, companyID string, role tenant.Role) (int64, error)
}

type Service interface {
	Fetch(ctx context.Context, caller tenant.Caller, filter FetchFilter) (FetchResult, error)
	Dashboard(ctx context.Context, caller tenant.Caller) (Dashboard, error)
	ModuleStats(ctx context.Context, caller tenant.Caller, moduleID string) (ModuleStatsResponse, error)
	EmployeeStats(ctx context.Context, caller tenant.Caller, employeeID string) (EmployeeStatsResponse, error)
	UpdateOwn(ctx context.Context, caller tenant.Caller, moduleID string, req UpdateProgressRequest) (MutationResponse, error)
	UpdateForEmployee(ctx context.Context, caller tenant.Caller, employeeID, moduleID string, req UpdateProgressRequest) (MutationResponse, error)
	Reopen(ctx context.Context, caller tenant.Caller, employeeID, moduleID string, req ReopenRequest) (MutationResponse, error)
	AssignModule(ctx context.Context, caller tenant.Caller, moduleID string, employeeIDs []string) (AssignmentResult, error)
	AssignModuleToCompany(ctx context.Context, companyID, moduleID, assignedBy string) (AssignmentResult, error)
	ExportReport(ctx context.Context, caller tenant.Caller) ([]byte, error)
	InvalidateCompany(ctx context.Context, companyID string) error
}

type service struct {
	db        *gorm.DB
	repo      Repository
	snapshots SnapshotStore
	catalog   ModuleCatalog
	directory Directory
	outbox    kafka.OutboxRepository
	policy    retry.Policy
	sf        *singleflight.Group
	now       func() time.Time
	logger    *zap.Logger
}

// NewService builds the progress engine. snapshots and outbox may be nil.
func NewService(
	db *gorm.DB,
	repo Repository,
	snapshots SnapshotStore,
	catalog ModuleCatalog,
	directory Directory,
	outbox kafka.OutboxRepository,
	policy retry.Policy,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("progress.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("progress.service")
	}
	if snapshots == nil {
		snapshots = noopSnapshotStore{}
	}
	return &service{
		db:        db,
		repo:      repo,
		snapshots: snapshots,
		catalog:   catalog,
		directory: directory,
		outbox:    outbox,
		policy:    policy,
		sf:        &singleflight.Group{},
		now:       func() time.Time { return time.Now().UTC() },
		logger:    l,
	}
}

func (s *service) Fetch(ctx context.Context, caller tenant.Caller, filter FetchFilter) (FetchResult, error) {
	if err := validateFilter(filter); err != nil {
		return FetchResult{}, err
	}
	scope, err := tenant.Resolve(caller)
	if err != nil {
		return FetchResult{}, err
	}

	s.logger.Debug("fetch progress requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("scope", scope.Key()),
		zap.String("module_id", filter.ModuleID),
		zap.String("employee_id", filter.EmployeeID),
		zap.Bool("active_only", filter.ActiveOnly),
	)

	if filter.IsZero() {
		return s.loadScope(ctx, scope)
	}

	rows, err := s.fetchRows(ctx, scope, filter)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return FetchResult{}, ctxErr
		}
		res, ferr := s.fallback(ctx, scope, err)
		if ferr != nil {
			return FetchResult{}, ferr
		}
		res.Rows = filterRows(res.Rows, filter)
		return res, nil
	}
	return FetchResult{Rows: rows, FetchMeta: FetchMeta{FetchedAt: s.now()}}, nil
}

// loadScope reads every row of scope. Identical concurrent reads share one
// store round trip; a caller whose context ends stops waiting and gets ctx.Err().
func (s *service) loadScope(ctx context.Context, scope tenant.Scope) (FetchResult, error) {
	gen, err := s.snapshots.Generation(ctx, scope)
	if err != nil {
		s.logger.Warn("snapshot generation unavailable", zap.String("scope", scope.Key()), zap.Error(err))
		rows, err := s.fetchRows(ctx, scope, FetchFilter{})
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return FetchResult{}, ctxErr
			}
			return FetchResult{}, storeFailure(err)
		}
		return FetchResult{Rows: rows, FetchMeta: FetchMeta{FetchedAt: s.now()}}, nil
	}

	key := scope.Key() + ":" + strconv.FormatInt(gen, 10)
	ch := s.sf.DoChan(key, func() (interface{}, error) {
		fctx := context.WithoutCancel(ctx)
		rows, err := s.fetchRows(fctx, scope, FetchFilter{})
		if err != nil {
			return nil, err
		}
		// an abandoned leader does not write its result back
		if ctx.Err() == nil {
			if _, err := s.snapshots.Save(fctx, scope, gen, rows); err != nil {
				s.logger.Warn("save progress snapshot failed", zap.String("scope", scope.Key()), zap.Error(err))
			}
		}
		return rows, nil
	})

	select {
	case <-ctx.Done():
		s.logger.Debug("fetch progress abandoned", zap.String("scope", scope.Key()))
		return FetchResult{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return s.fallback(ctx, scope, res.Err)
		}
		return FetchResult{Rows: res.Val.([]ProgressRow), FetchMeta: FetchMeta{FetchedAt: s.now()}}, nil
	}
}

func (s *service) fetchRows(ctx context.Context, scope tenant.Scope, filter FetchFilter) ([]ProgressRow, error) {
	records, err := retry.DoValue(ctx, s.policy, func(ctx context.Context) ([]ProgressRecord, error) {
		return s.repo.FindVisible(ctx, scope, filter)
	})
	if err != nil {
		s.logger.Error("fetch progress failed", zap.String("scope", scope.Key()), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	rows := make([]ProgressRow, len(records))
	for i, r := range records {
		rows[i] = toRow(r)
	}
	return rows, nil
}

// fallback serves the last-known-good snapshot after a failed read.
func (s *service) fallback(ctx context.Context, scope tenant.Scope, cause error) (FetchResult, error) {
	if !isStoreFailure(cause) {
		return FetchResult{}, cause
	}

	snap, err := s.snapshots.Load(ctx, scope)
	if err != nil || snap == nil {
		if err != nil {
			s.logger.Warn("load progress snapshot failed", zap.String("scope", scope.Key()), zap.Error(err))
		}
		return FetchResult{}, storeFailure(cause)
	}

	s.logger.Warn("serving stale progress snapshot",
		zap.String("scope", scope.Key()),
		zap.Time("fetched_at", snap.FetchedAt),
		zap.Error(cause),
	)
	return FetchResult{
		Rows: snap.Rows,
		FetchMeta: FetchMeta{
			Stale:     true,
			Warning:   apperror.ToHTTP(storeFailure(cause)).Message,
			FetchedAt: snap.FetchedAt,
		},
	}, nil
}

func isStoreFailure(err error) bool {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Code == apperror.CodeStoreUnavailable || appErr.Code == apperror.CodeInternalError
	}
	return true
}

func validateFilter(filter FetchFilter) error {
	if filter.ModuleID != "" {
		if _, err := uuid.Parse(filter.ModuleID); err != nil {
			return progresserrors.ErrInvalidModuleID
		}
	}
	if filter.EmployeeID != "" {
		if _, err := uuid.Parse(filter.EmployeeID); err != nil {
			return progresserrors.ErrInvalidEmployeeID
		}
	}
	return nil
}

func storeFailure(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.StoreUnavailable(err)
}

func (s *service) Dashboard(ctx context.Context, caller tenant.Caller) (Dashboard, error) {
	scope, err := tenant.Resolve(caller)
	if err != nil {
		return Dashboard{}, err
	}

	res, err := s.loadScope(ctx, scope)
	if err != nil {
		return Dashboard{}, err
	}

	d := Dashboard{
		Rows:      res.Rows,
		Overview:  ComputeCompanyOverview(res.Rows),
		Modules:   GroupModuleStats(res.Rows, nil),
		FetchMeta: res.FetchMeta,
	}

	admin, ok := scope.(tenant.CompanyAdminScope)
	if !ok {
		return d, nil
	}

	options, err := s.directory.Options(ctx, admin.CompanyID)
	if err != nil {
		s.logger.Warn("load employee directory failed", zap.String("company_id", admin.CompanyID), zap.Error(err))
	}
	ids := make([]string, len(options))
	names := make(map[string]string, len(options))
	for i, o := range options {
		ids[i] = o.ID
		names[o.ID] = o.Name
	}
	d.Employees = GroupEmployeeStats(res.Rows, ids)
	for i := range d.Employees {
		if name, ok := names[d.Employees[i].EmployeeID]; ok {
			d.Employees[i].EmployeeName = name
		}
	}

	// modules nobody is assigned to yet still get a zero row
	modules, err := s.catalog.Options(ctx, admin.CompanyID)
	if err != nil {
		s.logger.Warn("load module catalog failed", zap.String("company_id", admin.CompanyID), zap.Error(err))
	}
	moduleIDs := make([]string, len(modules))
	titles := make(map[string]string, len(modules))
	for i, m := range modules {
		moduleIDs[i] = m.ID
		titles[m.ID] = m.Title
	}
	d.Modules = GroupModuleStats(res.Rows, moduleIDs)
	for i := range d.Modules {
		if title, ok := titles[d.Modules[i].ModuleID]; ok {
			d.Modules[i].ModuleTitle = title
		}
	}

	if n, err := s.directory.CountByCompany(ctx, admin.CompanyID, tenant.RoleEmployee); err == nil {
		d.TotalEmployees = &n
	} else {
		s.logger.Warn("count employees failed", zap.String("company_id", admin.CompanyID), zap.Error(err))
	}
	if n, err := s.catalog.CountActive(ctx, admin.CompanyID); err == nil {
		d.ActiveModules = &n
	} else {
		s.logger.Warn("count active modules failed", zap.String("company_id", admin.CompanyID), zap.Error(err))
	}

	return d, nil
}

func (s *service) ModuleStats(ctx context.Context, caller tenant.Caller, moduleID string) (ModuleStatsResponse, error) {
	if _, err := uuid.Parse(moduleID); err != nil {
		return ModuleStatsResponse{}, progresserrors.ErrInvalidModuleID
	}
	scope, err := tenant.Resolve(caller)
	if err != nil {
		return ModuleStatsResponse{}, err
	}

	if admin, ok := scope.(tenant.CompanyAdminScope); ok {
		if err := s.requireModule(ctx, admin.CompanyID, moduleID); err != nil {
			return ModuleStatsResponse{}, err
		}
	}

	res, err := s.loadScope(ctx, scope)
	if err != nil {
		return ModuleStatsResponse{}, err
	}
	return ModuleStatsResponse{ModuleStats: ComputeModuleStats(res.Rows, moduleID), FetchMeta: res.FetchMeta}, nil
}

func (s *service) EmployeeStats(ctx context.Context, caller tenant.Caller, employeeID string) (EmployeeStatsResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return EmployeeStatsResponse{}, progresserrors.ErrInvalidEmployeeID
	}
	scope, err := tenant.Resolve(caller)
	if err != nil {
		return EmployeeStatsResponse{}, err
	}

	switch sc := scope.(type) {
	case tenant.EmployeeScope:
		if sc.EmployeeID != employeeID {
			return EmployeeStatsResponse{}, progresserrors.ErrForbiddenEmployee
		}
	case tenant.CompanyAdminScope:
		if err := s.requireEmployee(ctx, sc.CompanyID, employeeID); err != nil {
			return EmployeeStatsResponse{}, err
		}
	}

	res, err := s.loadScope(ctx, scope)
	if err != nil {
		return EmployeeStatsResponse{}, err
	}
	return EmployeeStatsResponse{EmployeeStats: ComputeEmployeeStats(res.Rows, employeeID), FetchMeta: res.FetchMeta}, nil
}

func (s *service) UpdateOwn(ctx context.Context, caller tenant.Caller, moduleID string, req UpdateProgressRequest) (MutationResponse, error) {
	scope, err := tenant.Resolve(caller)
	if err != nil {
		return MutationResponse{}, err
	}
	if caller.CompanyID == "" {
		return MutationResponse{}, tenant.ErrNoCompany
	}
	return s.update(ctx, caller, scope, caller.UserID, moduleID, req)
}

func (s *service) UpdateForEmployee(ctx context.Context, caller tenant.Caller, employeeID, moduleID string, req UpdateProgressRequest) (MutationResponse, error) {
	scope, err := tenant.Resolve(caller)
	if err != nil {
		return MutationResponse{}, err
	}

	switch sc := scope.(type) {
	case tenant.EmployeeScope:
		if sc.EmployeeID != employeeID {
			return MutationResponse{}, progresserrors.ErrForbiddenEmployee
		}
		if sc.CompanyID == "" {
			return MutationResponse{}, tenant.ErrNoCompany
		}
	case tenant.CompanyAdminScope:
		if _, err := uuid.Parse(employeeID); err != nil {
			return MutationResponse{}, progresserrors.ErrInvalidEmployeeID
		}
		if err := s.requireEmployee(ctx, sc.CompanyID, employeeID); err != nil {
			return MutationResponse{}, err
		}
	}
	return s.update(ctx, caller, scope, employeeID, moduleID, req)
}

func (s *service) update(ctx context.Context, caller tenant.Caller, scope tenant.Scope, employeeID, moduleID string, req UpdateProgressRequest) (MutationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(moduleID); err != nil {
		return MutationResponse{}, progresserrors.ErrInvalidModuleID
	}
	if !req.Status.Valid() {
		return MutationResponse{}, progresserrors.ErrInvalidStatus
	}
	if err := s.requireModule(ctx, caller.CompanyID, moduleID); err != nil {
		return MutationResponse{}, err
	}

	s.logger.Debug("update progress requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("module_id", moduleID),
		zap.String("status", string(req.Status)),
	)

	err := s.transact(ctx, func(ctx context.Context, repo Repository, tx *gorm.DB) error {
		current, err := repo.FindByKeyForUpdate(ctx, employeeID, moduleID)
		if err != nil {
			return err
		}

		next, changed, err := Apply(current, req.Status, req.ProgressPercentage, s.now())
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}

		from := StatusNotStarted
		if current != nil {
			from = current.Status
		} else {
			next.ID = uuid.New()
			next.EmployeeID = uuid.MustParse(employeeID)
			next.ModuleID = uuid.MustParse(moduleID)
		}

		if err := repo.Upsert(ctx, &next); err != nil {
			return err
		}
		return s.queueProgressUpdated(ctx, tx, caller, from, next)
	})
	if err != nil {
		if apperror.HasCode(err, apperror.CodeInvalidState) {
			s.logger.Warn("progress transition rejected",
				zap.String("request_id", rid),
				zap.String("employee_id", employeeID),
				zap.String("module_id", moduleID),
				zap.String("to", string(req.Status)),
			)
		} else {
			s.logger.Error("update progress failed", zap.String("request_id", rid), zap.Error(err))
		}
		return MutationResponse{}, err
	}

	s.logger.Info("update progress success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("module_id", moduleID),
		zap.String("status", string(req.Status)),
	)
	return s.afterWrite(ctx, scope, caller.CompanyID, employeeID, moduleID), nil
}

func (s *service) Reopen(ctx context.Context, caller tenant.Caller, employeeID, moduleID string, req ReopenRequest) (MutationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	scope, err := tenant.Resolve(caller)
	if err != nil {
		return MutationResponse{}, err
	}
	admin, ok := scope.(tenant.CompanyAdminScope)
	if !ok {
		return MutationResponse{}, apperror.ErrForbidden
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return MutationResponse{}, progresserrors.ErrInvalidEmployeeID
	}
	if _, err := uuid.Parse(moduleID); err != nil {
		return MutationResponse{}, progresserrors.ErrInvalidModuleID
	}
	if err := s.requireModule(ctx, admin.CompanyID, moduleID); err != nil {
		return MutationResponse{}, err
	}

	err = s.transact(ctx, func(ctx context.Context, repo Repository, tx *gorm.DB) error {
		current, err := repo.FindByKeyForUpdate(ctx, employeeID, moduleID)
		if err != nil {
			return err
		}
		if current == nil {
			return progresserrors.ErrProgressNotFound
		}

		next, err := Reopen(*current, req.ProgressPercentage, s.now())
		if err != nil {
			return err
		}
		if err := repo.Upsert(ctx, &next); err != nil {
			return err
		}
		return s.queueProgressUpdated(ctx, tx, caller, current.Status, next)
	})
	if err != nil {
		s.logger.Warn("reopen progress failed", zap.String("request_id", rid), zap.Error(err))
		return MutationResponse{}, err
	}

	s.logger.Info("reopen progress success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("module_id", moduleID),
	)
	return s.afterWrite(ctx, scope, admin.CompanyID, employeeID, moduleID), nil
}

// transact runs fn in one transaction. Transient failures retry the whole
// transaction; nothing is committed on any error.
func (s *service) transact(ctx context.Context, fn func(ctx context.Context, repo Repository, tx *gorm.DB) error) error {
	err := retry.Do(ctx, s.policy, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(ctx, s.repo.WithTx(tx), tx)
		})
	})
	return mapRepositoryError(err)
}

// afterWrite retires snapshots and re-reads from the store. The write already
// committed, so read failures only degrade the response.
func (s *service) afterWrite(ctx context.Context, scope tenant.Scope, companyID, employeeID, moduleID string) MutationResponse {
	if err := s.snapshots.Invalidate(ctx, companyID, employeeID); err != nil {
		s.logger.Warn("invalidate progress snapshots failed", zap.String("company_id", companyID), zap.Error(err))
	}

	var resp MutationResponse
	record, err := retry.DoValue(ctx, s.policy, func(ctx context.Context) (*ProgressRecord, error) {
		return s.repo.FindByKey(ctx, employeeID, moduleID)
	})
	if err == nil {
		resp.Row = toRow(*record)
	} else {
		s.logger.Warn("re-read progress row failed", zap.String("employee_id", employeeID), zap.String("module_id", moduleID), zap.Error(err))
		resp.Warning = apperror.ToHTTP(storeFailure(mapRepositoryError(err))).Message
	}

	res, err := s.loadScope(ctx, scope)
	if err != nil {
		resp.Stale = true
		resp.Warning = apperror.ToHTTP(storeFailure(err)).Message
		return resp
	}
	resp.Rows = res.Rows
	resp.FetchMeta = res.FetchMeta
	return resp
}

func (s *service) requireModule(ctx context.Context, companyID, moduleID string) error {
	ok, err := s.catalog.BelongsToCompany(ctx, companyID, moduleID)
	if err != nil {
		return storeFailure(err)
	}
	if !ok {
		return progresserrors.ErrModuleNotFound
	}
	return nil
}

func (s *service) requireEmployee(ctx context.Context, companyID, employeeID string) error {
	ok, err := s.directory.IsEmployeeOf(ctx, companyID, []string{employeeID})
	if err != nil {
		return storeFailure(err)
	}
	if !ok {
		return progresserrors.ErrEmployeeNotFound
	}
	return nil
}

func (s *service) queueProgressUpdated(ctx context.Context, tx *gorm.DB, caller tenant.Caller, from Status, p EmployeeProgress) error {
	if s.outbox == nil {
		return nil
	}

	event, err := kafka.NewEvent(events.ProgressTopic, events.ProgressUpdated, "employee_progress",
		p.EmployeeID.String()+":"+p.ModuleID.String(), contextutil.GetRequestID(ctx),
		events.ProgressUpdatedEvent{
			EventType:          events.ProgressUpdated,
			EmployeeID:         p.EmployeeID.String(),
			ModuleID:           p.ModuleID.String(),
			CompanyID:          caller.CompanyID,
			FromStatus:         string(from),
			ToStatus:           string(p.Status),
			ProgressPercentage: p.ProgressPercentage,
			UpdatedBy:          caller.UserID,
			OccurredAt:         p.UpdatedAt,
		})
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

func (s *service) InvalidateCompany(ctx context.Context, companyID string) error {
	return s.snapshots.Invalidate(ctx, companyID)
}

// toRow denormalizes a joined record. A missing employee or module falls back to
// a placeholder label instead of failing the read.
func toRow(r ProgressRecord) ProgressRow {
	row := ProgressRow{
		ID:                 r.ID.String(),
		EmployeeID:         r.EmployeeID.String(),
		ModuleID:           r.ModuleID.String(),
		EmployeeName:       unknownEmployee,
		ModuleTitle:        unknownModule,
		Status:             r.Status,
		ProgressPercentage: r.ProgressPercentage,
		StartedAt:          r.StartedAt,
		CompletedAt:        r.CompletedAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	if r.EmployeeEmail != nil {
		if name := userprofile.DisplayName(r.EmployeeFirstName, r.EmployeeLastName, *r.EmployeeEmail); name != "" {
			row.EmployeeName = name
		}
	}
	if r.ModuleTitle != nil && *r.ModuleTitle != "" {
		row.ModuleTitle = *r.ModuleTitle
	}
	if r.ModuleIsActive != nil {
		row.ModuleActive = *r.ModuleIsActive
	}
	return row
}
