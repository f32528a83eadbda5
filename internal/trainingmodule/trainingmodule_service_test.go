package trainingmodule_test

import (
	"context"
	"errors"
	"testing"

	"github.com/HorizonColonel/orient-launch-pad/internal/events"
	"github.com/HorizonColonel/orient-launch-pad/internal/messaging/kafka"
	kafkaMock "github.com/HorizonColonel/orient-launch-pad/internal/messaging/kafka/mock"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/apperror"
	"github.com/HorizonColonel/orient-launch-pad/internal/tenant"
	"github.com/HorizonColonel/orient-launch-pad/internal/trainingmodule"
	trainingmoduleerrors "github.com/HorizonColonel/orient-launch-pad/internal/trainingmodule/errors"
	trainingmoduleMock "github.com/HorizonColonel/orient-launch-pad/internal/trainingmodule/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

type serviceDeps struct {
	sqlMock     sqlmock.Sqlmock
	repo        *trainingmoduleMock.MockRepository
	outbox      *kafkaMock.MockOutboxRepository
	invalidator *trainingmoduleMock.MockProgressInvalidator
	service     trainingmodule.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	deps := &serviceDeps{
		sqlMock:     sqlMock,
		repo:        trainingmoduleMock.NewMockRepository(ctrl),
		outbox:      kafkaMock.NewMockOutboxRepository(ctrl),
		invalidator: trainingmoduleMock.NewMockProgressInvalidator(ctrl),
	}
	deps.service = trainingmodule.NewService(db, deps.repo, deps.outbox, deps.invalidator)
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	admin := tenant.Caller{UserID: "admin-1", Role: tenant.RoleCompanyAdmin, CompanyID: companyID}

	t.Run("success writes module and lifecycle event", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m *trainingmodule.TrainingModule) error {
			assert.Equal(t, "Security basics", m.Title)
			assert.True(t, m.IsActive)
			assert.Equal(t, companyID, m.CompanyID.String())
			return nil
		})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
			assert.Equal(t, events.ModuleLifecycleTopic, ev.Topic)
			assert.Equal(t, events.ModuleCreated, ev.EventType)
			assert.Contains(t, string(ev.Payload), `"assign_to_all":true`)
			return nil
		})

		resp, err := deps.service.Create(ctx, admin, trainingmodule.CreateModuleRequest{
			Title:             "  Security basics ",
			DueDate:           strPtr("2026-03-01"),
			EstimatedDuration: intPtr(45),
			AssignToAll:       true,
		})

		require.NoError(t, err)
		assert.Equal(t, "Security basics", resp.Title)
		assert.Equal(t, "2026-03-01", resp.DueDate)
		assert.True(t, resp.IsActive)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("inactive on request", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Create(ctx, admin, trainingmodule.CreateModuleRequest{Title: "Draft", IsActive: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, resp.IsActive)
	})

	t.Run("admin without company", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, tenant.Caller{UserID: "admin-1", Role: tenant.RoleCompanyAdmin}, trainingmodule.CreateModuleRequest{Title: "x"})
		assert.ErrorIs(t, err, tenant.ErrNoCompany)
	})

	t.Run("invalid due date", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, admin, trainingmodule.CreateModuleRequest{Title: "x", DueDate: strPtr("03/01/2026")})
		assert.ErrorIs(t, err, trainingmoduleerrors.ErrInvalidDueDate)
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("disk full"))

		_, err := deps.service.Create(ctx, admin, trainingmodule.CreateModuleRequest{Title: "x"})
		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to all", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().List(ctx, "c-1", trainingmodule.ListFilter{Query: "sec", Status: trainingmodule.StatusAll}).
			Return([]trainingmodule.TrainingModule{{ID: uuid.New(), Title: "Security"}}, nil)

		resp, err := deps.service.List(ctx, "c-1", trainingmodule.ListFilter{Query: "sec"})
		require.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.List(ctx, "c-1", trainingmodule.ListFilter{Status: "archived"})
		assert.ErrorIs(t, err, trainingmoduleerrors.ErrInvalidStatusFilter)
	})

	t.Run("store down", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().List(ctx, "c-1", gomock.Any()).Return(nil, context.DeadlineExceeded)

		_, err := deps.service.List(ctx, "c-1", trainingmodule.ListFilter{})
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeStoreUnavailable, appErr.Code)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	admin := tenant.Caller{UserID: "admin-1", Role: tenant.RoleCompanyAdmin, CompanyID: companyID}
	id := uuid.New()

	t.Run("toggle active and clear due date", func(t *testing.T) {
		deps := setupServiceTest(t)
		existing := &trainingmodule.TrainingModule{ID: id, Title: "Security", IsActive: true, EstimatedDuration: intPtr(30)}

		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id.String()).Return(existing, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m *trainingmodule.TrainingModule) error {
			assert.False(t, m.IsActive)
			assert.Nil(t, m.DueDate)
			assert.Equal(t, 30, *m.EstimatedDuration)
			return nil
		})
		deps.invalidator.EXPECT().InvalidateCompany(ctx, companyID).Return(nil)

		resp, err := deps.service.Update(ctx, admin, id.String(), trainingmodule.UpdateModuleRequest{
			IsActive: boolPtr(false),
			DueDate:  strPtr(""),
		})
		require.NoError(t, err)
		assert.False(t, resp.IsActive)
	})

	t.Run("not found in company", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, admin, id.String(), trainingmodule.UpdateModuleRequest{Title: strPtr("x")})
		assert.ErrorIs(t, err, trainingmoduleerrors.ErrModuleNotFound)
	})

	t.Run("blank title", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id.String()).
			Return(&trainingmodule.TrainingModule{ID: id, Title: "Security"}, nil)

		_, err := deps.service.Update(ctx, admin, id.String(), trainingmodule.UpdateModuleRequest{Title: strPtr("  ")})
		assert.ErrorIs(t, err, trainingmoduleerrors.ErrEmptyTitle)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	admin := tenant.Caller{UserID: "admin-1", Role: tenant.RoleCompanyAdmin, CompanyID: companyID}
	id := uuid.New().String()

	t.Run("success invalidates company progress", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, companyID, id).Return(int64(1), nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
			assert.Equal(t, events.ModuleDeleted, ev.EventType)
			assert.Equal(t, id, ev.AggregateID)
			return nil
		})
		deps.invalidator.EXPECT().InvalidateCompany(ctx, companyID).Return(errors.New("redis down"))

		assert.NoError(t, deps.service.Delete(ctx, admin, id))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("other company's module is not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, companyID, id).Return(int64(0), nil)

		err := deps.service.Delete(ctx, admin, id)
		assert.ErrorIs(t, err, trainingmoduleerrors.ErrModuleNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		assert.ErrorIs(t, deps.service.Delete(ctx, admin, "nope"), trainingmoduleerrors.ErrInvalidModuleID)
	})
}

func TestService_Materials(t *testing.T) {
	ctx := context.Background()
	moduleID := uuid.New()

	t.Run("add material to own module", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, "c-1", moduleID.String()).
			Return(&trainingmodule.TrainingModule{ID: moduleID}, nil)
		deps.repo.EXPECT().CreateMaterial(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m *trainingmodule.TrainingMaterial) error {
			assert.Equal(t, moduleID, m.ModuleID)
			assert.Equal(t, "handbook.pdf", m.FileName)
			return nil
		})

		resp, err := deps.service.AddMaterial(ctx, "c-1", moduleID.String(), trainingmodule.AddMaterialRequest{
			FileName: " handbook.pdf ",
			FileURL:  "https://files.example.com/handbook.pdf",
			Type:     trainingmodule.MaterialPDF,
		})
		require.NoError(t, err)
		assert.Equal(t, trainingmodule.MaterialPDF, resp.Type)
	})

	t.Run("unknown type", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.AddMaterial(ctx, "c-1", moduleID.String(), trainingmodule.AddMaterialRequest{Type: "zip"})
		assert.ErrorIs(t, err, trainingmoduleerrors.ErrInvalidMaterialType)
	})

	t.Run("list requires module in company", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, "c-2", moduleID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.ListMaterials(ctx, "c-2", moduleID.String())
		assert.ErrorIs(t, err, trainingmoduleerrors.ErrModuleNotFound)
	})
}

func TestService_Catalog(t *testing.T) {
	ctx := context.Background()
	moduleID := uuid.New().String()

	deps := setupServiceTest(t)
	deps.repo.EXPECT().FindByIDAndCompany(ctx, "c-1", moduleID).Return(&trainingmodule.TrainingModule{}, nil)
	deps.repo.EXPECT().FindByIDAndCompany(ctx, "c-2", moduleID).Return(nil, gorm.ErrRecordNotFound)
	deps.repo.EXPECT().CountActive(ctx, "c-1").Return(int64(4), nil)

	ok, err := deps.service.BelongsToCompany(ctx, "c-1", moduleID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = deps.service.BelongsToCompany(ctx, "c-2", moduleID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = deps.service.BelongsToCompany(ctx, "c-1", "garbage")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := deps.service.CountActive(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestService_Options(t *testing.T) {
	ctx := context.Background()
	active, archived := uuid.New(), uuid.New()

	t.Run("lists active and inactive modules", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().List(ctx, "c-1", trainingmodule.ListFilter{Status: trainingmodule.StatusAll}).Return([]trainingmodule.TrainingModule{
			{ID: active, Title: "Security", IsActive: true},
			{ID: archived, Title: "Archived"},
		}, nil)

		got, err := deps.service.Options(ctx, "c-1")
		require.NoError(t, err)
		assert.Equal(t, []trainingmodule.OptionResponse{
			{ID: active.String(), Title: "Security"},
			{ID: archived.String(), Title: "Archived"},
		}, got)
	})

	t.Run("store error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().List(ctx, "c-1", gomock.Any()).Return(nil, errors.New("boom"))

		_, err := deps.service.Options(ctx, "c-1")
		assert.Error(t, err)
	})
}
