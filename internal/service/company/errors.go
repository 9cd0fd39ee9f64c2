package company

import "errors"

var (
	ErrNotFound      = errors.New("company profile not found")
	ErrNotCompany    = errors.New("user is not a company account")
	ErrAlreadyExists = errors.New("company profile already exists")
	ErrInvalidPhone  = errors.New("invalid contact phone number")
	ErrNotApproved   = errors.New("company is not approved yet")
)
