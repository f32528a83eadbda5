package trainingmodule_test

import (
	"context"
	"testing"
	"time"

	"github.com/HorizonColonel/orient-launch-pad/internal/trainingmodule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&trainingmodule.TrainingModule{}, &trainingmodule.TrainingMaterial{}))
	return db
}

func TestRepository_ModulesAreCompanyScoped(t *testing.T) {
	db := newTestDB(t)
	repo := trainingmodule.NewRepository(db)
	ctx := context.Background()

	companyA, companyB := uuid.New(), uuid.New()
	now := time.Now()
	onboarding := trainingmodule.TrainingModule{ID: uuid.New(), CompanyID: companyA, Title: "Onboarding", IsActive: true, CreatedAt: now.Add(-2 * time.Hour)}
	security := trainingmodule.TrainingModule{ID: uuid.New(), CompanyID: companyA, Title: "Security", Description: strPtr("Phishing drills"), IsActive: false, CreatedAt: now.Add(-time.Hour)}
	foreign := trainingmodule.TrainingModule{ID: uuid.New(), CompanyID: companyB, Title: "Security", IsActive: true, CreatedAt: now}
	for _, m := range []*trainingmodule.TrainingModule{&onboarding, &security, &foreign} {
		require.NoError(t, repo.Create(ctx, m))
	}

	all, err := repo.List(ctx, companyA.String(), trainingmodule.ListFilter{Status: trainingmodule.StatusAll})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, security.ID, all[0].ID)

	active, err := repo.List(ctx, companyA.String(), trainingmodule.ListFilter{Status: trainingmodule.StatusActive})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, onboarding.ID, active[0].ID)

	search, err := repo.List(ctx, companyA.String(), trainingmodule.ListFilter{Query: "PHISH", Status: trainingmodule.StatusAll})
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, security.ID, search[0].ID)

	n, err := repo.CountActive(ctx, companyA.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.FindByIDAndCompany(ctx, companyA.String(), foreign.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	deleted, err := repo.Delete(ctx, companyA.String(), foreign.ID.String())
	require.NoError(t, err)
	assert.Zero(t, deleted)

	deleted, err = repo.Delete(ctx, companyB.String(), foreign.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestRepository_Materials(t *testing.T) {
	db := newTestDB(t)
	repo := trainingmodule.NewRepository(db)
	ctx := context.Background()

	moduleID := uuid.New()
	first := &trainingmodule.TrainingMaterial{ID: uuid.New(), ModuleID: moduleID, FileName: "intro.mp4", FileURL: "https://cdn.example.com/intro.mp4", Type: trainingmodule.MaterialVideo}
	require.NoError(t, repo.CreateMaterial(ctx, first))
	second := &trainingmodule.TrainingMaterial{ID: uuid.New(), ModuleID: moduleID, FileName: "quiz.pdf", FileURL: "https://cdn.example.com/quiz.pdf", Type: trainingmodule.MaterialPDF, UploadedAt: time.Now().Add(time.Minute)}
	require.NoError(t, repo.CreateMaterial(ctx, second))

	materials, err := repo.ListMaterials(ctx, moduleID.String())
	require.NoError(t, err)
	require.Len(t, materials, 2)
	assert.Equal(t, "intro.mp4", materials[0].FileName)
	assert.False(t, materials[0].UploadedAt.IsZero())
}
