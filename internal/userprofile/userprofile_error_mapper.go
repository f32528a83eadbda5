package userprofile

import (
	"errors"

	"github.com/HorizonColonel/orient-launch-pad/internal/shared/apperror"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/retry"
	userprofileerrors "github.com/HorizonColonel/orient-launch-pad/internal/userprofile/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return userprofileerrors.ErrProfileNotFound
	}

	if retry.IsTransient(err) {
		return apperror.StoreUnavailable(err)
	}

	return err
}
