package progress

import (
	"errors"

	progresserrors "github.com/HorizonColonel/orient-launch-pad/internal/progress/errors"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/apperror"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/retry"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return progresserrors.ErrProgressNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			// employee or module deleted underneath the write
			if pgErr.ConstraintName == "employee_progress_employee_id_fkey" {
				return progresserrors.ErrEmployeeNotFound
			}
			return progresserrors.ErrModuleNotFound
		case "23514":
			return progresserrors.ErrInvalidPercentage
		case "22P02":
			return progresserrors.ErrInvalidStatus
		}
	}

	if retry.IsTransient(err) {
		return apperror.StoreUnavailable(err)
	}

	return err
}
