// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/internlink/internlink_backend/internal/repo/collegeprofile"
	"github.com/internlink/internlink_backend/internal/repo/user"
)

// CollegeProfile is the model entity for the CollegeProfile schema.
type CollegeProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// CollegeName holds the value of the "college_name" field.
	CollegeName string `json:"college_name,omitempty"`
	// Location holds the value of the "location" field.
	Location *string `json:"location,omitempty"`
	// Website holds the value of the "website" field.
	Website *string `json:"website,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Accreditation holds the value of the "accreditation" field.
	Accreditation *string `json:"accreditation,omitempty"`
	// ContactPhone holds the value of the "contact_phone" field.
	ContactPhone *string `json:"contact_phone,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CollegeProfileQuery when eager-loading is set.
	Edges        CollegeProfileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CollegeProfileEdges holds the relations/edges for other nodes in the graph.
type CollegeProfileEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CollegeProfileEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CollegeProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case collegeprofile.FieldCollegeName, collegeprofile.FieldLocation, collegeprofile.FieldWebsite, collegeprofile.FieldDescription, collegeprofile.FieldAccreditation, collegeprofile.FieldContactPhone:
			values[i] = new(sql.NullString)
		case collegeprofile.FieldCreatedAt, collegeprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case collegeprofile.FieldID, collegeprofile.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CollegeProfile fields.
func (_m *CollegeProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case collegeprofile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case collegeprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case collegeprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case collegeprofile.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case collegeprofile.FieldCollegeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field college_name", values[i])
			} else if value.Valid {
				_m.CollegeName = value.String
			}
		case collegeprofile.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = new(string)
				*_m.Location = value.String
			}
		case collegeprofile.FieldWebsite:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field website", values[i])
			} else if value.Valid {
				_m.Website = new(string)
				*_m.Website = value.String
			}
		case collegeprofile.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case collegeprofile.FieldAccreditation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field accreditation", values[i])
			} else if value.Valid {
				_m.Accreditation = new(string)
				*_m.Accreditation = value.String
			}
		case collegeprofile.FieldContactPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_phone", values[i])
			} else if value.Valid {
				_m.ContactPhone = new(string)
				*_m.ContactPhone = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CollegeProfile.
// This includes values selected through modifiers, order, etc.
func (_m *CollegeProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the CollegeProfile entity.
func (_m *CollegeProfile) QueryUser() *UserQuery {
	return NewCollegeProfileClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this CollegeProfile.
// Note that you need to call CollegeProfile.Unwrap() before calling this method if this CollegeProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CollegeProfile) Update() *CollegeProfileUpdateOne {
	return NewCollegeProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CollegeProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CollegeProfile) Unwrap() *CollegeProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: CollegeProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CollegeProfile) String() string {
	var builder strings.Builder
	builder.WriteString("CollegeProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("college_name=")
	builder.WriteString(_m.CollegeName)
	builder.WriteString(", ")
	if v := _m.Location; v != nil {
		builder.WriteString("location=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Website; v != nil {
		builder.WriteString("website=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Accreditation; v != nil {
		builder.WriteString("accreditation=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ContactPhone; v != nil {
		builder.WriteString("contact_phone=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// CollegeProfiles is a parsable slice of CollegeProfile.
type CollegeProfiles []*CollegeProfile
