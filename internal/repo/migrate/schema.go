// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApplicationsColumns holds the columns for the "applications" table.
	ApplicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "cover_letter", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "shortlisted", "rejected", "selected"}, Default: "pending"},
		{Name: "applied_at", Type: field.TypeTime, Nullable: true},
		{Name: "student_id", Type: field.TypeUUID},
		{Name: "internship_id", Type: field.TypeUUID},
	}
	// ApplicationsTable holds the schema information for the "applications" table.
	ApplicationsTable = &schema.Table{
		Name:       "applications",
		Columns:    ApplicationsColumns,
		PrimaryKey: []*schema.Column{ApplicationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "applications_users_student",
				Columns:    []*schema.Column{ApplicationsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "applications_internships_internship",
				Columns:    []*schema.Column{ApplicationsColumns[7]},
				RefColumns: []*schema.Column{InternshipsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "application_student_id_internship_id",
				Unique:  true,
				Columns: []*schema.Column{ApplicationsColumns[6], ApplicationsColumns[7]},
			},
			{
				Name:    "application_internship_id_status",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[7], ApplicationsColumns[4]},
			},
		},
	}
	// CollegeProfilesColumns holds the columns for the "college_profiles" table.
	CollegeProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "college_name", Type: field.TypeString, Size: 255},
		{Name: "location", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "website", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "accreditation", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "contact_phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// CollegeProfilesTable holds the schema information for the "college_profiles" table.
	CollegeProfilesTable = &schema.Table{
		Name:       "college_profiles",
		Columns:    CollegeProfilesColumns,
		PrimaryKey: []*schema.Column{CollegeProfilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "college_profiles_users_user",
				Columns:    []*schema.Column{CollegeProfilesColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "collegeprofile_user_id",
				Unique:  true,
				Columns: []*schema.Column{CollegeProfilesColumns[9]},
			},
		},
	}
	// CollegeStudentsColumns holds the columns for the "college_students" table.
	CollegeStudentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "verification_status", Type: field.TypeEnum, Enums: []string{"pending", "verified", "rejected"}, Default: "pending"},
		{Name: "verified_at", Type: field.TypeTime, Nullable: true},
		{Name: "college_id", Type: field.TypeUUID},
		{Name: "student_id", Type: field.TypeUUID},
	}
	// CollegeStudentsTable holds the schema information for the "college_students" table.
	CollegeStudentsTable = &schema.Table{
		Name:       "college_students",
		Columns:    CollegeStudentsColumns,
		PrimaryKey: []*schema.Column{CollegeStudentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "college_students_users_college",
				Columns:    []*schema.Column{CollegeStudentsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "college_students_users_student",
				Columns:    []*schema.Column{CollegeStudentsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "collegestudent_college_id_student_id",
				Unique:  true,
				Columns: []*schema.Column{CollegeStudentsColumns[5], CollegeStudentsColumns[6]},
			},
			{
				Name:    "collegestudent_college_id_verification_status",
				Unique:  false,
				Columns: []*schema.Column{CollegeStudentsColumns[5], CollegeStudentsColumns[3]},
			},
		},
	}
	// CompanyProfilesColumns holds the columns for the "company_profiles" table.
	CompanyProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_name", Type: field.TypeString, Size: 255},
		{Name: "industry", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "website", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "location", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "contact_phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "logo_key", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "approved", Type: field.TypeBool, Default: false},
		{Name: "approved_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// CompanyProfilesTable holds the schema information for the "company_profiles" table.
	CompanyProfilesTable = &schema.Table{
		Name:       "company_profiles",
		Columns:    CompanyProfilesColumns,
		PrimaryKey: []*schema.Column{CompanyProfilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "company_profiles_users_user",
				Columns:    []*schema.Column{CompanyProfilesColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "companyprofile_user_id",
				Unique:  true,
				Columns: []*schema.Column{CompanyProfilesColumns[12]},
			},
			{
				Name:    "companyprofile_approved",
				Unique:  false,
				Columns: []*schema.Column{CompanyProfilesColumns[10]},
			},
		},
	}
	// InternshipsColumns holds the columns for the "internships" table.
	InternshipsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "requirements", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "location", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "work_mode", Type: field.TypeEnum, Enums: []string{"onsite", "remote", "hybrid"}, Default: "onsite"},
		{Name: "duration", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "stipend", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "application_deadline", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "closed"}, Default: "open"},
		{Name: "company_id", Type: field.TypeUUID},
	}
	// InternshipsTable holds the schema information for the "internships" table.
	InternshipsTable = &schema.Table{
		Name:       "internships",
		Columns:    InternshipsColumns,
		PrimaryKey: []*schema.Column{InternshipsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "internships_users_company",
				Columns:    []*schema.Column{InternshipsColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "internship_company_id",
				Unique:  false,
				Columns: []*schema.Column{InternshipsColumns[12]},
			},
			{
				Name:    "internship_status",
				Unique:  false,
				Columns: []*schema.Column{InternshipsColumns[11]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString, Size: 64},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_is_read_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[7], NotificationsColumns[1]},
			},
		},
	}
	// StudentProfilesColumns holds the columns for the "student_profiles" table.
	StudentProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "college", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "degree", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "branch", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "graduation_year", Type: field.TypeInt, Nullable: true},
		{Name: "skills", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "bio", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "resume_key", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// StudentProfilesTable holds the schema information for the "student_profiles" table.
	StudentProfilesTable = &schema.Table{
		Name:       "student_profiles",
		Columns:    StudentProfilesColumns,
		PrimaryKey: []*schema.Column{StudentProfilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "student_profiles_users_user",
				Columns:    []*schema.Column{StudentProfilesColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "studentprofile_user_id",
				Unique:  true,
				Columns: []*schema.Column{StudentProfilesColumns[12]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "user_type", Type: field.TypeEnum, Enums: []string{"student", "company", "college", "admin"}},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
		{Name: "last_failed_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_user_type",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[5]},
			},
		},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "refresh_token_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_sessions_users_user",
				Columns:    []*schema.Column{UserSessionsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_session_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[3]},
			},
			{
				Name:    "usersession_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApplicationsTable,
		CollegeProfilesTable,
		CollegeStudentsTable,
		CompanyProfilesTable,
		InternshipsTable,
		NotificationsTable,
		StudentProfilesTable,
		UsersTable,
		UserSessionsTable,
	}
)

func init() {
	ApplicationsTable.ForeignKeys[0].RefTable = UsersTable
	ApplicationsTable.ForeignKeys[1].RefTable = InternshipsTable
	CollegeProfilesTable.ForeignKeys[0].RefTable = UsersTable
	CollegeStudentsTable.ForeignKeys[0].RefTable = UsersTable
	CollegeStudentsTable.ForeignKeys[1].RefTable = UsersTable
	CompanyProfilesTable.ForeignKeys[0].RefTable = UsersTable
	InternshipsTable.ForeignKeys[0].RefTable = UsersTable
	StudentProfilesTable.ForeignKeys[0].RefTable = UsersTable
	UserSessionsTable.ForeignKeys[0].RefTable = UsersTable
}
