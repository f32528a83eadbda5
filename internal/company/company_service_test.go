package company_test

import (
	"context"
	"errors"
	"testing"

	"github.com/HorizonColonel/orient-launch-pad/internal/company"
	companyerrors "github.com/HorizonColonel/orient-launch-pad/internal/company/errors"
	companyMock "github.com/HorizonColonel/orient-launch-pad/internal/company/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func TestService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		mockComp := &company.Company{
			ID:      id,
			Name:    "Acme",
			Mission: strPtr("Ship it"),
		}

		mockRepo.EXPECT().GetByID(ctx, id).Return(mockComp, nil)

		resp, err := service.GetByID(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, "Acme", resp.Name)
		assert.Equal(t, "Ship it", resp.Mission)
		assert.Equal(t, "", resp.LogoURL)
	})

	t.Run("Not Found", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.GetByID(ctx, id.String())
		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		_, err := service.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, companyerrors.ErrInvalidCompanyID)
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo)
	ctx := context.Background()
	id := uuid.New()

	t.Run("Partial update keeps other fields", func(t *testing.T) {
		existing := &company.Company{ID: id, Name: "Acme", Description: strPtr("old")}
		mockRepo.EXPECT().GetByID(ctx, id).Return(existing, nil)
		mockRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *company.Company) error {
			assert.Equal(t, "Acme Corp", c.Name)
			assert.Equal(t, "old", *c.Description)
			return nil
		})

		resp, err := service.Update(ctx, id.String(), company.UpdateCompanyRequest{Name: strPtr(" Acme Corp ")})

		assert.NoError(t, err)
		assert.Equal(t, "Acme Corp", resp.Name)
	})

	t.Run("Blank name rejected", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(ctx, id).Return(&company.Company{ID: id, Name: "Acme"}, nil)

		_, err := service.Update(ctx, id.String(), company.UpdateCompanyRequest{Name: strPtr("  ")})
		assert.ErrorIs(t, err, companyerrors.ErrEmptyName)
	})

	t.Run("Repo failure", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(ctx, id).Return(&company.Company{ID: id, Name: "Acme"}, nil)
		mockRepo.EXPECT().Update(ctx, gomock.Any()).Return(errors.New("boom"))

		_, err := service.Update(ctx, id.String(), company.UpdateCompanyRequest{Mission: strPtr("m")})
		assert.Error(t, err)
	})
}
