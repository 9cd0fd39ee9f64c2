// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Application is the predicate function for application builders.
type Application func(*sql.Selector)

// CollegeProfile is the predicate function for collegeprofile builders.
type CollegeProfile func(*sql.Selector)

// CollegeStudent is the predicate function for collegestudent builders.
type CollegeStudent func(*sql.Selector)

// CompanyProfile is the predicate function for companyprofile builders.
type CompanyProfile func(*sql.Selector)

// Internship is the predicate function for internship builders.
type Internship func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// StudentProfile is the predicate function for studentprofile builders.
type StudentProfile func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserSession is the predicate function for usersession builders.
type UserSession func(*sql.Selector)
