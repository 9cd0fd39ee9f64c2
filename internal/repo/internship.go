// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/internlink/internlink_backend/internal/repo/internship"
	"github.com/internlink/internlink_backend/internal/repo/user"
)

// Internship is the model entity for the Internship schema.
type Internship struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id of the posting company
	CompanyID uuid.UUID `json:"company_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Requirements holds the value of the "requirements" field.
	Requirements *string `json:"requirements,omitempty"`
	// Location holds the value of the "location" field.
	Location *string `json:"location,omitempty"`
	// WorkMode holds the value of the "work_mode" field.
	WorkMode internship.WorkMode `json:"work_mode,omitempty"`
	// Duration holds the value of the "duration" field.
	Duration *string `json:"duration,omitempty"`
	// Stipend holds the value of the "stipend" field.
	Stipend *string `json:"stipend,omitempty"`
	// ApplicationDeadline holds the value of the "application_deadline" field.
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	// Status holds the value of the "status" field.
	Status internship.Status `json:"status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InternshipQuery when eager-loading is set.
	Edges        InternshipEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InternshipEdges holds the relations/edges for other nodes in the graph.
type InternshipEdges struct {
	// Company holds the value of the company edge.
	Company *User `json:"company,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InternshipEdges) CompanyOrErr() (*User, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Internship) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case internship.FieldTitle, internship.FieldDescription, internship.FieldRequirements, internship.FieldLocation, internship.FieldWorkMode, internship.FieldDuration, internship.FieldStipend, internship.FieldStatus:
			values[i] = new(sql.NullString)
		case internship.FieldCreatedAt, internship.FieldUpdatedAt, internship.FieldApplicationDeadline:
			values[i] = new(sql.NullTime)
		case internship.FieldID, internship.FieldCompanyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Internship fields.
func (_m *Internship) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case internship.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case internship.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case internship.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case internship.FieldCompanyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value != nil {
				_m.CompanyID = *value
			}
		case internship.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case internship.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case internship.FieldRequirements:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requirements", values[i])
			} else if value.Valid {
				_m.Requirements = new(string)
				*_m.Requirements = value.String
			}
		case internship.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = new(string)
				*_m.Location = value.String
			}
		case internship.FieldWorkMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field work_mode", values[i])
			} else if value.Valid {
				_m.WorkMode = internship.WorkMode(value.String)
			}
		case internship.FieldDuration:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field duration", values[i])
			} else if value.Valid {
				_m.Duration = new(string)
				*_m.Duration = value.String
			}
		case internship.FieldStipend:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stipend", values[i])
			} else if value.Valid {
				_m.Stipend = new(string)
				*_m.Stipend = value.String
			}
		case internship.FieldApplicationDeadline:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field application_deadline", values[i])
			} else if value.Valid {
				_m.ApplicationDeadline = new(time.Time)
				*_m.ApplicationDeadline = value.Time
			}
		case internship.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = internship.Status(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Internship.
// This includes values selected through modifiers, order, etc.
func (_m *Internship) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the Internship entity.
func (_m *Internship) QueryCompany() *UserQuery {
	return NewInternshipClient(_m.config).QueryCompany(_m)
}

// Update returns a builder for updating this Internship.
// Note that you need to call Internship.Unwrap() before calling this method if this Internship
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Internship) Update() *InternshipUpdateOne {
	return NewInternshipClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Internship entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Internship) Unwrap() *Internship {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Internship is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Internship) String() string {
	var builder strings.Builder
	builder.WriteString("Internship(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Requirements; v != nil {
		builder.WriteString("requirements=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Location; v != nil {
		builder.WriteString("location=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("work_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkMode))
	builder.WriteString(", ")
	if v := _m.Duration; v != nil {
		builder.WriteString("duration=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Stipend; v != nil {
		builder.WriteString("stipend=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ApplicationDeadline; v != nil {
		builder.WriteString("application_deadline=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteByte(')')
	return builder.String()
}

// Internships is a parsable slice of Internship.
type Internships []*Internship
