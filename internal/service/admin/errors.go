package admin

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCompanyNotFound    = errors.New("company not found")
	ErrEmailAlreadyExists = errors.New("email is already registered")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrCannotDeleteAdmin  = errors.New("admin accounts cannot be deleted through this endpoint")
)
