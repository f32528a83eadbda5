package progresserrors

import (
	"net/http"

	"github.com/HorizonColonel/orient-launch-pad/internal/shared/apperror"
)

var (
	ErrProgressNotFound = apperror.New(
		apperror.CodeNotFound,
		"Progress record not found",
		http.StatusNotFound,
	)
	ErrModuleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Training module not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidModuleID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid training module ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeValidationFailed,
		"Status must be one of not_started, in_progress, completed",
		http.StatusBadRequest,
	)
	ErrInvalidPercentage = apperror.New(
		apperror.CodeValidationFailed,
		"Progress percentage must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrNotStartedPercentage = apperror.New(
		apperror.CodeValidationFailed,
		"Progress percentage must be 0 when status is not_started",
		http.StatusBadRequest,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"Status transition is not allowed",
		http.StatusConflict,
	)
	ErrNoEmployees = apperror.New(
		apperror.CodeValidationFailed,
		"At least one employee is required",
		http.StatusBadRequest,
	)
	ErrNotCompanyEmployee = apperror.New(
		apperror.CodeValidationFailed,
		"Every employee must belong to the module's company",
		http.StatusBadRequest,
	)
	ErrAssignmentTargetConflict = apperror.New(
		apperror.CodeInvalidInput,
		"Provide either employee_ids or all, not both",
		http.StatusBadRequest,
	)
	ErrForbiddenEmployee = apperror.New(
		apperror.CodeForbidden,
		"You can only access your own progress",
		http.StatusForbidden,
	)
)
