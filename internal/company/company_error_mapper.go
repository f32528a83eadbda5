package company

import (
	"errors"

	companyerrors "github.com/HorizonColonel/orient-launch-pad/internal/company/errors"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/apperror"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/retry"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return companyerrors.ErrCompanyNotFound
	}

	if retry.IsTransient(err) {
		return apperror.StoreUnavailable(err)
	}

	return err
}
