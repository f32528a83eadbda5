package userprofileerrors

import (
	"net/http"

	"github.com/HorizonColonel/orient-launch-pad/internal/shared/apperror"
)

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"User profile not found",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role filter must be employee, company_admin or all",
		http.StatusBadRequest,
	)
)
