// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/internlink/internlink_backend/internal/repo/collegestudent"
	"github.com/internlink/internlink_backend/internal/repo/user"
)

// CollegeStudent is the model entity for the CollegeStudent schema.
type CollegeStudent struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id of the college
	CollegeID uuid.UUID `json:"college_id,omitempty"`
	// FK → users.id of the student
	StudentID uuid.UUID `json:"student_id,omitempty"`
	// VerificationStatus holds the value of the "verification_status" field.
	VerificationStatus collegestudent.VerificationStatus `json:"verification_status,omitempty"`
	// VerifiedAt holds the value of the "verified_at" field.
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CollegeStudentQuery when eager-loading is set.
	Edges        CollegeStudentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CollegeStudentEdges holds the relations/edges for other nodes in the graph.
type CollegeStudentEdges struct {
	// College holds the value of the college edge.
	College *User `json:"college,omitempty"`
	// Student holds the value of the student edge.
	Student *User `json:"student,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CollegeOrErr returns the College value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CollegeStudentEdges) CollegeOrErr() (*User, error) {
	if e.College != nil {
		return e.College, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "college"}
}

// StudentOrErr returns the Student value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CollegeStudentEdges) StudentOrErr() (*User, error) {
	if e.Student != nil {
		return e.Student, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "student"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CollegeStudent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case collegestudent.FieldVerificationStatus:
			values[i] = new(sql.NullString)
		case collegestudent.FieldCreatedAt, collegestudent.FieldUpdatedAt, collegestudent.FieldVerifiedAt:
			values[i] = new(sql.NullTime)
		case collegestudent.FieldID, collegestudent.FieldCollegeID, collegestudent.FieldStudentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CollegeStudent fields.
func (_m *CollegeStudent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case collegestudent.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case collegestudent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case collegestudent.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case collegestudent.FieldCollegeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field college_id", values[i])
			} else if value != nil {
				_m.CollegeID = *value
			}
		case collegestudent.FieldStudentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value != nil {
				_m.StudentID = *value
			}
		case collegestudent.FieldVerificationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verification_status", values[i])
			} else if value.Valid {
				_m.VerificationStatus = collegestudent.VerificationStatus(value.String)
			}
		case collegestudent.FieldVerifiedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field verified_at", values[i])
			} else if value.Valid {
				_m.VerifiedAt = new(time.Time)
				*_m.VerifiedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CollegeStudent.
// This includes values selected through modifiers, order, etc.
func (_m *CollegeStudent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCollege queries the "college" edge of the CollegeStudent entity.
func (_m *CollegeStudent) QueryCollege() *UserQuery {
	return NewCollegeStudentClient(_m.config).QueryCollege(_m)
}

// QueryStudent queries the "student" edge of the CollegeStudent entity.
func (_m *CollegeStudent) QueryStudent() *UserQuery {
	return NewCollegeStudentClient(_m.config).QueryStudent(_m)
}

// Update returns a builder for updating this CollegeStudent.
// Note that you need to call CollegeStudent.Unwrap() before calling this method if this CollegeStudent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CollegeStudent) Update() *CollegeStudentUpdateOne {
	return NewCollegeStudentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CollegeStudent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CollegeStudent) Unwrap() *CollegeStudent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: CollegeStudent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CollegeStudent) String() string {
	var builder strings.Builder
	builder.WriteString("CollegeStudent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("college_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CollegeID))
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudentID))
	builder.WriteString(", ")
	builder.WriteString("verification_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.VerificationStatus))
	builder.WriteString(", ")
	if v := _m.VerifiedAt; v != nil {
		builder.WriteString("verified_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CollegeStudents is a parsable slice of CollegeStudent.
type CollegeStudents []*CollegeStudent
