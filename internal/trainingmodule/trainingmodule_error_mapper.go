package trainingmodule

import (
	"errors"

	"github.com/HorizonColonel/orient-launch-pad/internal/shared/apperror"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/retry"
	trainingmoduleerrors "github.com/HorizonColonel/orient-launch-pad/internal/trainingmodule/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return trainingmoduleerrors.ErrModuleNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			// company or module vanished underneath the write
			return trainingmoduleerrors.ErrModuleNotFound
		case "23514":
			return trainingmoduleerrors.ErrInvalidDuration
		}
	}

	if retry.IsTransient(err) {
		return apperror.StoreUnavailable(err)
	}

	return err
}
