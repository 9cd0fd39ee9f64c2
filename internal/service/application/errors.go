package application

import "errors"

var (
	ErrNotFound           = errors.New("application not found")
	ErrInternshipNotFound = errors.New("internship not found")
	ErrInternshipClosed   = errors.New("internship is closed for applications")
	ErrAlreadyApplied     = errors.New("already applied to this internship")
	ErrNotOwner           = errors.New("application belongs to another student")
	ErrNotInternshipOwner = errors.New("internship belongs to another company")
	ErrInvalidStatus      = errors.New("invalid application status")
	ErrNotWithdrawable    = errors.New("application can no longer be withdrawn")
)
