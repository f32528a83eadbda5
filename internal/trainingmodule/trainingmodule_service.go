package trainingmodule

import (
	"context"
	"strings"
	"time"

	"github.com/HorizonColonel/orient-launch-pad/internal/events"
	"github.com/HorizonColonel/orient-launch-pad/internal/messaging/kafka"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/contextutil"
	"github.com/HorizonColonel/orient-launch-pad/internal/tenant"
	trainingmoduleerrors "github.com/HorizonColonel/orient-launch-pad/internal/trainingmodule/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProgressInvalidator drops cached progress of a company after module changes
// that alter what progress reads return.
type ProgressInvalidator interface {
	InvalidateCompany(ctx context.Context, companyID string) error
}

//go:generate mockgen -source=trainingmodule_service.go -destination=mock/trainingmodule_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller tenant.Caller, req CreateModuleRequest) (ModuleResponse, error)
	List(ctx context.Context, companyID string, filter ListFilter) ([]ModuleResponse, error)
	GetByID(ctx context.Context, companyID, id string) (ModuleResponse, error)
	Update(ctx context.Context, caller tenant.Caller, id string, req UpdateModuleRequest) (ModuleResponse, error)
	Delete(ctx context.Context, caller tenant.Caller, id string) error
	ListMaterials(ctx context.Context, companyID, moduleID string) ([]MaterialResponse, error)
	AddMaterial(ctx context.Context, companyID, moduleID string, req AddMaterialRequest) (MaterialResponse, error)
	BelongsToCompany(ctx context.Context, companyID, moduleID string) (bool, error)
	CountActive(ctx context.Context, companyID string) (int64, error)
	Options(ctx context.Context, companyID string) ([]OptionResponse, error)
}

type service struct {
	db          *gorm.DB
	repo        Repository
	outbox      kafka.OutboxRepository
	invalidator ProgressInvalidator
	logger      *zap.Logger
}

// NewService wires the catalog. outbox and invalidator may be nil.
func NewService(
	db *gorm.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	invalidator ProgressInvalidator,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("trainingmodule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("trainingmodule.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		outbox:      outbox,
		invalidator: invalidator,
		logger:      l,
	}
}

func (s *service) Create(ctx context.Context, caller tenant.Caller, req CreateModuleRequest) (ModuleResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create module requested",
		zap.String("request_id", rid),
		zap.String("company_id", caller.CompanyID),
		zap.Bool("assign_to_all", req.AssignToAll),
	)

	companyID, err := uuid.Parse(caller.CompanyID)
	if err != nil {
		return ModuleResponse{}, tenant.ErrNoCompany
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return ModuleResponse{}, trainingmoduleerrors.ErrEmptyTitle
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return ModuleResponse{}, err
	}
	if req.EstimatedDuration != nil && *req.EstimatedDuration < 0 {
		return ModuleResponse{}, trainingmoduleerrors.ErrInvalidDuration
	}

	module := &TrainingModule{
		ID:                uuid.New(),
		CompanyID:         companyID,
		Title:             title,
		Description:       req.Description,
		IsActive:          req.IsActive == nil || *req.IsActive,
		DueDate:           dueDate,
		EstimatedDuration: req.EstimatedDuration,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, module); err != nil {
			return mapRepositoryError(err)
		}
		return s.queue(ctx, tx, events.ModuleCreated, module.ID.String(), events.ModuleCreatedEvent{
			EventType:   events.ModuleCreated,
			ModuleID:    module.ID.String(),
			CompanyID:   caller.CompanyID,
			AssignToAll: req.AssignToAll,
			CreatedBy:   caller.UserID,
			OccurredAt:  time.Now().UTC(),
		})
	})
	if err != nil {
		s.logger.Error("create module failed", zap.String("request_id", rid), zap.Error(err))
		return ModuleResponse{}, err
	}

	s.logger.Info("create module success",
		zap.String("request_id", rid),
		zap.String("module_id", module.ID.String()),
	)
	return mapToResponse(*module), nil
}

func (s *service) List(ctx context.Context, companyID string, filter ListFilter) ([]ModuleResponse, error) {
	switch filter.Status {
	case "":
		filter.Status = StatusAll
	case StatusAll, StatusActive, StatusInactive:
	default:
		return nil, trainingmoduleerrors.ErrInvalidStatusFilter
	}

	modules, err := s.repo.List(ctx, companyID, filter)
	if err != nil {
		s.logger.Error("list modules failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]ModuleResponse, len(modules))
	for i, m := range modules {
		resp[i] = mapToResponse(m)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (ModuleResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ModuleResponse{}, trainingmoduleerrors.ErrInvalidModuleID
	}

	module, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ModuleResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*module), nil
}

func (s *service) Update(ctx context.Context, caller tenant.Caller, id string, req UpdateModuleRequest) (ModuleResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(id); err != nil {
		return ModuleResponse{}, trainingmoduleerrors.ErrInvalidModuleID
	}

	module, err := s.repo.FindByIDAndCompany(ctx, caller.CompanyID, id)
	if err != nil {
		return ModuleResponse{}, mapRepositoryError(err)
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return ModuleResponse{}, trainingmoduleerrors.ErrEmptyTitle
		}
		module.Title = title
	}
	if req.Description != nil {
		module.Description = req.Description
	}
	if req.IsActive != nil {
		module.IsActive = *req.IsActive
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			module.DueDate = nil
		} else {
			dueDate, err := parseDueDate(req.DueDate)
			if err != nil {
				return ModuleResponse{}, err
			}
			module.DueDate = dueDate
		}
	}
	if req.EstimatedDuration != nil {
		if *req.EstimatedDuration < 0 {
			return ModuleResponse{}, trainingmoduleerrors.ErrInvalidDuration
		}
		module.EstimatedDuration = req.EstimatedDuration
	}

	if err := s.repo.Update(ctx, module); err != nil {
		s.logger.Error("update module failed", zap.String("request_id", rid), zap.String("module_id", id), zap.Error(err))
		return ModuleResponse{}, mapRepositoryError(err)
	}

	s.invalidate(ctx, caller.CompanyID)
	s.logger.Info("update module success", zap.String("request_id", rid), zap.String("module_id", id))
	return mapToResponse(*module), nil
}

// Delete removes the module. Its materials and progress rows cascade in the store.
func (s *service) Delete(ctx context.Context, caller tenant.Caller, id string) error {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(id); err != nil {
		return trainingmoduleerrors.ErrInvalidModuleID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.repo.WithTx(tx).Delete(ctx, caller.CompanyID, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if n == 0 {
			return trainingmoduleerrors.ErrModuleNotFound
		}
		return s.queue(ctx, tx, events.ModuleDeleted, id, events.ModuleDeletedEvent{
			EventType:  events.ModuleDeleted,
			ModuleID:   id,
			CompanyID:  caller.CompanyID,
			DeletedBy:  caller.UserID,
			OccurredAt: time.Now().UTC(),
		})
	})
	if err != nil {
		s.logger.Warn("delete module failed", zap.String("request_id", rid), zap.String("module_id", id), zap.Error(err))
		return err
	}

	s.invalidate(ctx, caller.CompanyID)
	s.logger.Info("delete module success", zap.String("request_id", rid), zap.String("module_id", id))
	return nil
}

func (s *service) ListMaterials(ctx context.Context, companyID, moduleID string) ([]MaterialResponse, error) {
	if _, err := s.GetByID(ctx, companyID, moduleID); err != nil {
		return nil, err
	}

	materials, err := s.repo.ListMaterials(ctx, moduleID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]MaterialResponse, len(materials))
	for i, m := range materials {
		resp[i] = mapMaterialToResponse(m)
	}
	return resp, nil
}

func (s *service) AddMaterial(ctx context.Context, companyID, moduleID string, req AddMaterialRequest) (MaterialResponse, error) {
	switch req.Type {
	case MaterialPDF, MaterialVideo, MaterialImage, MaterialDocument:
	default:
		return MaterialResponse{}, trainingmoduleerrors.ErrInvalidMaterialType
	}

	module, err := s.repo.FindByIDAndCompany(ctx, companyID, moduleID)
	if err != nil {
		return MaterialResponse{}, mapRepositoryError(err)
	}

	material := &TrainingMaterial{
		ID:       uuid.New(),
		ModuleID: module.ID,
		FileName: strings.TrimSpace(req.FileName),
		FileURL:  req.FileURL,
		FileSize: req.FileSize,
		Type:     req.Type,
	}
	if err := s.repo.CreateMaterial(ctx, material); err != nil {
		s.logger.Error("add material failed", zap.String("module_id", moduleID), zap.Error(err))
		return MaterialResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("add material success",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("module_id", moduleID),
		zap.String("material_id", material.ID.String()),
	)
	return mapMaterialToResponse(*material), nil
}

func (s *service) BelongsToCompany(ctx context.Context, companyID, moduleID string) (bool, error) {
	if _, err := uuid.Parse(moduleID); err != nil {
		return false, nil
	}

	_, err := s.repo.FindByIDAndCompany(ctx, companyID, moduleID)
	if err == nil {
		return true, nil
	}
	mapped := mapRepositoryError(err)
	if mapped == trainingmoduleerrors.ErrModuleNotFound {
		return false, nil
	}
	return false, mapped
}

func (s *service) CountActive(ctx context.Context, companyID string) (int64, error) {
	n, err := s.repo.CountActive(ctx, companyID)
	if err != nil {
		return 0, mapRepositoryError(err)
	}
	return n, nil
}

// Options lists every module of the company, active or not, newest first.
func (s *service) Options(ctx context.Context, companyID string) ([]OptionResponse, error) {
	modules, err := s.repo.List(ctx, companyID, ListFilter{Status: StatusAll})
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]OptionResponse, len(modules))
	for i, m := range modules {
		resp[i] = OptionResponse{ID: m.ID.String(), Title: m.Title}
	}
	return resp, nil
}

func (s *service) queue(ctx context.Context, tx *gorm.DB, eventType, moduleID string, payload any) error {
	if s.outbox == nil {
		return nil
	}

	event, err := kafka.NewEvent(events.ModuleLifecycleTopic, eventType, "training_module", moduleID, contextutil.GetRequestID(ctx), payload)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

func (s *service) invalidate(ctx context.Context, companyID string) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.InvalidateCompany(ctx, companyID); err != nil {
		s.logger.Warn("invalidate company progress failed", zap.String("company_id", companyID), zap.Error(err))
	}
}

func parseDueDate(v *string) (*datatypes.Date, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*v))
	if err != nil {
		return nil, trainingmoduleerrors.ErrInvalidDueDate
	}
	d := datatypes.Date(t)
	return &d, nil
}

func mapToResponse(m TrainingModule) ModuleResponse {
	resp := ModuleResponse{
		ID:                m.ID.String(),
		CompanyID:         m.CompanyID.String(),
		Title:             m.Title,
		IsActive:          m.IsActive,
		EstimatedDuration: m.EstimatedDuration,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.Description != nil {
		resp.Description = *m.Description
	}
	if m.DueDate != nil {
		resp.DueDate = time.Time(*m.DueDate).Format(dateLayout)
	}
	return resp
}

func mapMaterialToResponse(m TrainingMaterial) MaterialResponse {
	return MaterialResponse{
		ID:         m.ID.String(),
		ModuleID:   m.ModuleID.String(),
		FileName:   m.FileName,
		FileURL:    m.FileURL,
		FileSize:   m.FileSize,
		Type:       m.Type,
		UploadedAt: m.UploadedAt,
	}
}
