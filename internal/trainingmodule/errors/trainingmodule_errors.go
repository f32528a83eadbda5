package trainingmoduleerrors

import (
	"net/http"

	"github.com/HorizonColonel/orient-launch-pad/internal/shared/apperror"
)

var (
	ErrModuleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Training module not found",
		http.StatusNotFound,
	)
	ErrInvalidModuleID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid training module ID",
		http.StatusBadRequest,
	)
	ErrEmptyTitle = apperror.New(
		apperror.CodeValidationFailed,
		"Title cannot be empty",
		http.StatusBadRequest,
	)
	ErrInvalidDueDate = apperror.New(
		apperror.CodeValidationFailed,
		"Due date must be formatted as YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDuration = apperror.New(
		apperror.CodeValidationFailed,
		"Estimated duration cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"Status filter must be all, active or inactive",
		http.StatusBadRequest,
	)
	ErrInvalidMaterialType = apperror.New(
		apperror.CodeValidationFailed,
		"Material type must be pdf, video, image or document",
		http.StatusBadRequest,
	)
)
