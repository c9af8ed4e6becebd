package usecase

import "errors"

var (
	ErrMissingFields        = errors.New("missing required fields")
	ErrMissingActionID      = errors.New("missing action id")
	ErrActionNotFound       = errors.New("action not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrMockNotFound         = errors.New("mock resource not found")
	ErrInvalidProgress      = errors.New("progress must be between 0 and 100")
	ErrInvalidDueDate       = errors.New("due_date must be YYYY-MM-DD")
	ErrInternal             = errors.New("internal error")
)
