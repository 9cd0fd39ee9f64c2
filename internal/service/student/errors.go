package student

import "errors"

var (
	ErrNotFound        = errors.New("student profile not found")
	ErrNotStudent      = errors.New("user is not a student account")
	ErrCollegeNotFound = errors.New("college not found")
	ErrAlreadyLinked   = errors.New("student is already associated with this college")
)
