package companyerrors

import (
	"net/http"

	"github.com/HorizonColonel/orient-launch-pad/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)

	ErrEmptyName = apperror.New(
		apperror.CodeValidationFailed,
		"Company name cannot be empty",
		http.StatusBadRequest,
	)
)
