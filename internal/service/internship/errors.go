package internship

import "errors"

var (
	ErrNotFound           = errors.New("internship not found")
	ErrNotOwner           = errors.New("internship belongs to another company")
	ErrCompanyNotApproved = errors.New("company is not approved to post internships")
	ErrClosed             = errors.New("internship is closed")
)
