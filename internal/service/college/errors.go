package college

import "errors"

var (
	ErrProfileNotFound = errors.New("college profile not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrNotLinked       = errors.New("student is not linked to this college")
	ErrAlreadyLinked   = errors.New("student is already linked to this college")
	ErrNotAStudent     = errors.New("user is not a student account")
)
