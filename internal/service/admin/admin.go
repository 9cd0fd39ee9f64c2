package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/internlink/internlink_backend/config"
	"github.com/internlink/internlink_backend/internal/events"
	"github.com/internlink/internlink_backend/internal/repo"
	entapp "github.com/internlink/internlink_backend/internal/repo/application"
	entcollege "github.com/internlink/internlink_backend/internal/repo/collegeprofile"
	entcs "github.com/internlink/internlink_backend/internal/repo/collegestudent"
	entcompany "github.com/internlink/internlink_backend/internal/repo/companyprofile"
	entintern "github.com/internlink/internlink_backend/internal/repo/internship"
	entnotif "github.com/internlink/internlink_backend/internal/repo/notification"
	entstudent "github.com/internlink/internlink_backend/internal/repo/studentprofile"
	entuser "github.com/internlink/internlink_backend/internal/repo/user"
	entsession "github.com/internlink/internlink_backend/internal/repo/usersession"
	"github.com/internlink/internlink_backend/pkg/authorize"
	"github.com/internlink/internlink_backend/pkg/database"
	"github.com/internlink/internlink_backend/pkg/email"
	"github.com/internlink/internlink_backend/pkg/util/password"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UserFilter struct {
	UserType *string
	Search   *string // matches email
}

type CreateAdminRequest struct {
	Email    string
	Password string
}

// Stats is the portal-wide counter block for the admin dashboard.
type Stats struct {
	Students         int `json:"students"`
	Companies        int `json:"companies"`
	Colleges         int `json:"colleges"`
	Internships      int `json:"internships"`
	Applications     int `json:"applications"`
	PendingCompanies int `json:"pending_companies"`
}

// StatusCount is one row of the applications-by-status report.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// UserDetail is a user with whichever role profile the account carries.
type UserDetail struct {
	User    *repo.User           `json:"user"`
	Student *repo.StudentProfile `json:"student_profile,omitempty"`
	Company *repo.CompanyProfile `json:"company_profile,omitempty"`
	College *repo.CollegeProfile `json:"college_profile,omitempty"`
}

// CompanyReport summarizes one approved company's activity.
type CompanyReport struct {
	CompanyUserID    uuid.UUID `json:"company_user_id"`
	CompanyName      string    `json:"company_name"`
	InternshipCount  int       `json:"internship_count"`
	ApplicationCount int       `json:"application_count"`
	SelectedCount    int       `json:"selected_count"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	ListUsers(ctx context.Context, filter UserFilter, page, perPage int) ([]*repo.User, int, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*UserDetail, error)
	CreateAdmin(ctx context.Context, req CreateAdminRequest) (*repo.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	ListAllInternships(ctx context.Context, page, perPage int) ([]*repo.Internship, error)
	ListAllApplications(ctx context.Context, page, perPage int) ([]*repo.Application, error)

	ListPendingCompanies(ctx context.Context, page, perPage int) ([]*repo.CompanyProfile, error)
	ApproveCompany(ctx context.Context, companyUserID uuid.UUID) (*repo.CompanyProfile, error)
	RejectCompany(ctx context.Context, companyUserID uuid.UUID) error

	GetStats(ctx context.Context) (*Stats, error)
	ReportApplicationsByStatus(ctx context.Context, from, to *time.Time) ([]StatusCount, error)
	ReportCompanies(ctx context.Context) ([]CompanyReport, error)

	ImportDemoData(ctx context.Context) error
	DeleteDemoData(ctx context.Context) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type adminService struct {
	db     *repo.Client
	mail   *email.Client
	events *events.Publisher
	auth   authorize.IAuthorization
	cfg    *config.Config
}

func New(
	db *repo.Client,
	mail *email.Client,
	pub *events.Publisher,
	auth authorize.IAuthorization,
	cfg *config.Config,
) Service {
	return &adminService{
		db:     db,
		mail:   mail,
		events: pub,
		auth:   auth,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

func (s *adminService) ListUsers(ctx context.Context, filter UserFilter, page, perPage int) ([]*repo.User, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := s.db.User.Query()
	if filter.UserType != nil && *filter.UserType != "" {
		ut := entuser.UserType(*filter.UserType)
		if err := entuser.UserTypeValidator(ut); err == nil {
			q = q.Where(entuser.UserTypeEQ(ut))
		}
	}
	if filter.Search != nil && *filter.Search != "" {
		q = q.Where(entuser.EmailContainsFold(*filter.Search))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	users, err := q.
		Order(entuser.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

// GetUser loads a user with its role-specific profile. A missing profile
// (account created, profile never filled in) leaves the field nil.
func (s *adminService) GetUser(ctx context.Context, userID uuid.UUID) (*UserDetail, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	detail := &UserDetail{User: u}
	switch u.UserType {
	case entuser.UserTypeStudent:
		if p, err := s.db.StudentProfile.Query().
			Where(entstudent.UserID(userID)).
			Only(ctx); err == nil {
			detail.Student = p
		} else if !repo.IsNotFound(err) {
			return nil, fmt.Errorf("get student profile: %w", err)
		}
	case entuser.UserTypeCompany:
		if p, err := s.db.CompanyProfile.Query().
			Where(entcompany.UserID(userID)).
			Only(ctx); err == nil {
			detail.Company = p
		} else if !repo.IsNotFound(err) {
			return nil, fmt.Errorf("get company profile: %w", err)
		}
	case entuser.UserTypeCollege:
		if p, err := s.db.CollegeProfile.Query().
			Where(entcollege.UserID(userID)).
			Only(ctx); err == nil {
			detail.College = p
		} else if !repo.IsNotFound(err) {
			return nil, fmt.Errorf("get college profile: %w", err)
		}
	}
	return detail, nil
}

// ListAllInternships is the admin's unfiltered posting view, pending and
// closed included, with the posting company loaded.
func (s *adminService) ListAllInternships(ctx context.Context, page, perPage int) ([]*repo.Internship, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	list, err := s.db.Internship.Query().
		WithCompany().
		Order(entintern.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list internships: %w", err)
	}
	return list, nil
}

// ListAllApplications is the admin's portal-wide application view with the
// student and posting loaded.
func (s *adminService) ListAllApplications(ctx context.Context, page, perPage int) ([]*repo.Application, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	list, err := s.db.Application.Query().
		WithStudent().
		WithInternship().
		Order(entapp.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return list, nil
}

func (s *adminService) CreateAdmin(ctx context.Context, req CreateAdminRequest) (*repo.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.db.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(passHash).
		SetUserType(entuser.UserTypeAdmin).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}

	if err := authorize.AssignUserSelfRole(ctx, s.auth, u.ID.String()); err != nil {
		slog.Error("assign self role failed", "user_id", u.ID, "error", err)
	}
	if err := authorize.AssignPortalRole(ctx, s.auth, u.ID.String(), authorize.UserTypeAdmin); err != nil {
		slog.Error("assign admin role failed", "user_id", u.ID, "error", err)
	}

	return u, nil
}

// DeleteUser removes a user and everything hanging off it in one
// transaction. A partially deleted account is worse than a failed delete.
func (s *adminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}
	if u.UserType == entuser.UserTypeAdmin {
		return ErrCannotDeleteAdmin
	}

	err = database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		return deleteUserCascade(ctx, tx, u)
	})
	if err != nil {
		return err
	}

	// RBAC grants outlive the row only as garbage; clean them best-effort.
	if err := authorize.RemovePortalRole(ctx, s.auth, userID.String(), string(u.UserType)); err != nil {
		slog.Warn("remove portal roles failed", "user_id", userID, "error", err)
	}

	s.events.StatsUpdated()
	return nil
}

func deleteUserCascade(ctx context.Context, tx *repo.Tx, u *repo.User) error {
	id := u.ID

	switch u.UserType {
	case entuser.UserTypeStudent:
		if _, err := tx.Application.Delete().
			Where(entapp.StudentID(id)).Exec(ctx); err != nil {
			return fmt.Errorf("delete applications: %w", err)
		}
		if _, err := tx.CollegeStudent.Delete().
			Where(entcs.StudentID(id)).Exec(ctx); err != nil {
			return fmt.Errorf("delete college links: %w", err)
		}
		if _, err := tx.StudentProfile.Delete().
			Where(entstudent.UserID(id)).Exec(ctx); err != nil {
			return fmt.Errorf("delete student profile: %w", err)
		}

	case entuser.UserTypeCompany:
		var internshipIDs []uuid.UUID
		if err := tx.Internship.Query().
			Where(entintern.CompanyID(id)).
			Select(entintern.FieldID).
			Scan(ctx, &internshipIDs); err != nil {
			return fmt.Errorf("load internships: %w", err)
		}
		if len(internshipIDs) > 0 {
			if _, err := tx.Application.Delete().
				Where(entapp.InternshipIDIn(internshipIDs...)).Exec(ctx); err != nil {
				return fmt.Errorf("delete applications: %w", err)
			}
			if _, err := tx.Internship.Delete().
				Where(entintern.IDIn(internshipIDs...)).Exec(ctx); err != nil {
				return fmt.Errorf("delete internships: %w", err)
			}
		}
		if _, err := tx.CompanyProfile.Delete().
			Where(entcompany.UserID(id)).Exec(ctx); err != nil {
			return fmt.Errorf("delete company profile: %w", err)
		}

	case entuser.UserTypeCollege:
		if _, err := tx.CollegeStudent.Delete().
			Where(entcs.CollegeID(id)).Exec(ctx); err != nil {
			return fmt.Errorf("delete college links: %w", err)
		}
		if _, err := tx.CollegeProfile.Delete().
			Where(entcollege.UserID(id)).Exec(ctx); err != nil {
			return fmt.Errorf("delete college profile: %w", err)
		}
	}

	if _, err := tx.Notification.Delete().
		Where(entnotif.UserID(id)).Exec(ctx); err != nil {
		return fmt.Errorf("delete notifications: %w", err)
	}
	if _, err := tx.UserSession.Delete().
		Where(entsession.UserIDEQ(id)).Exec(ctx); err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}

	if err := tx.User.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Company approval
// ---------------------------------------------------------------------------

func (s *adminService) ListPendingCompanies(ctx context.Context, page, perPage int) ([]*repo.CompanyProfile, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	list, err := s.db.CompanyProfile.Query().
		Where(entcompany.Approved(false)).
		Order(entcompany.ByCreatedAt(sql.OrderAsc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending companies: %w", err)
	}
	return list, nil
}

func (s *adminService) ApproveCompany(ctx context.Context, companyUserID uuid.UUID) (*repo.CompanyProfile, error) {
	cp, err := s.db.CompanyProfile.Query().
		Where(entcompany.UserID(companyUserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("get company profile: %w", err)
	}

	// Approving twice is a no-op, not an error.
	if cp.Approved {
		return cp, nil
	}

	out, err := s.db.CompanyProfile.UpdateOne(cp).
		SetApproved(true).
		SetApprovedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("approve company: %w", err)
	}

	s.events.CompanyApproved(companyUserID)
	s.sendCompanyEmail(ctx, companyUserID, cp.CompanyName, true)

	return out, nil
}

// RejectCompany removes the registration entirely so the company can
// register again with corrected details.
func (s *adminService) RejectCompany(ctx context.Context, companyUserID uuid.UUID) error {
	u, err := s.db.User.Get(ctx, companyUserID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrCompanyNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}
	if u.UserType != entuser.UserTypeCompany {
		return ErrCompanyNotFound
	}

	var companyName string
	if cp, err := s.db.CompanyProfile.Query().
		Where(entcompany.UserID(companyUserID)).
		Only(ctx); err == nil {
		companyName = cp.CompanyName
	}

	// Capture the address before the row goes away.
	rejectedEmail := u.Email

	err = database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		return deleteUserCascade(ctx, tx, u)
	})
	if err != nil {
		return err
	}

	if err := authorize.RemovePortalRole(ctx, s.auth, companyUserID.String(), authorize.UserTypeCompany); err != nil {
		slog.Warn("remove portal roles failed", "user_id", companyUserID, "error", err)
	}

	s.events.CompanyRejected(companyUserID)
	s.sendCompanyEmailTo(ctx, rejectedEmail, companyName, false)

	return nil
}

func (s *adminService) sendCompanyEmail(ctx context.Context, companyUserID uuid.UUID, companyName string, approved bool) {
	u, err := s.db.User.Get(ctx, companyUserID)
	if err != nil {
		slog.Warn("load company user for email failed", "user_id", companyUserID, "error", err)
		return
	}
	s.sendCompanyEmailTo(ctx, u.Email, companyName, approved)
}

func (s *adminService) sendCompanyEmailTo(ctx context.Context, to, companyName string, approved bool) {
	if s.mail == nil || to == "" {
		return
	}

	data := email.CompanyEmailData{
		CompanyName: companyName,
		Email:       to,
		BaseURL:     "https://" + s.cfg.Server.Domain,
	}
	var msg email.Message
	if approved {
		msg = email.BuildCompanyApprovedEmail(data)
	} else {
		msg = email.BuildCompanyRejectedEmail(data)
	}
	if err := s.mail.Send(ctx, msg); err != nil {
		slog.Warn("send company decision email failed", "email", to, "error", err)
	}
}

// ---------------------------------------------------------------------------
// Stats and reports
// ---------------------------------------------------------------------------

func (s *adminService) GetStats(ctx context.Context) (*Stats, error) {
	students, err := s.db.User.Query().
		Where(entuser.UserTypeEQ(entuser.UserTypeStudent)).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count students: %w", err)
	}
	companies, err := s.db.User.Query().
		Where(entuser.UserTypeEQ(entuser.UserTypeCompany)).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count companies: %w", err)
	}
	colleges, err := s.db.User.Query().
		Where(entuser.UserTypeEQ(entuser.UserTypeCollege)).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count colleges: %w", err)
	}
	internships, err := s.db.Internship.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count internships: %w", err)
	}
	applications, err := s.db.Application.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}
	pending, err := s.db.CompanyProfile.Query().
		Where(entcompany.Approved(false)).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count pending companies: %w", err)
	}

	return &Stats{
		Students:         students,
		Companies:        companies,
		Colleges:         colleges,
		Internships:      internships,
		Applications:     applications,
		PendingCompanies: pending,
	}, nil
}

func (s *adminService) ReportApplicationsByStatus(ctx context.Context, from, to *time.Time) ([]StatusCount, error) {
	q := s.db.Application.Query()
	if from != nil {
		q = q.Where(entapp.CreatedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(entapp.CreatedAtLT(*to))
	}

	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := q.
		GroupBy(entapp.FieldStatus).
		Aggregate(repo.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("group applications by status: %w", err)
	}

	out := make([]StatusCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, StatusCount{Status: r.Status, Count: r.Count})
	}
	return out, nil
}

func (s *adminService) ReportCompanies(ctx context.Context) ([]CompanyReport, error) {
	companies, err := s.db.CompanyProfile.Query().
		Where(entcompany.Approved(true)).
		Order(entcompany.ByCompanyName()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list approved companies: %w", err)
	}

	reports := make([]CompanyReport, 0, len(companies))
	for _, cp := range companies {
		var internshipIDs []uuid.UUID
		if err := s.db.Internship.Query().
			Where(entintern.CompanyID(cp.UserID)).
			Select(entintern.FieldID).
			Scan(ctx, &internshipIDs); err != nil {
			return nil, fmt.Errorf("load internships: %w", err)
		}

		var appCount, selectedCount int
		if len(internshipIDs) > 0 {
			appCount, err = s.db.Application.Query().
				Where(entapp.InternshipIDIn(internshipIDs...)).
				Count(ctx)
			if err != nil {
				return nil, fmt.Errorf("count applications: %w", err)
			}
			selectedCount, err = s.db.Application.Query().
				Where(
					entapp.InternshipIDIn(internshipIDs...),
					entapp.StatusEQ(entapp.StatusSelected),
				).
				Count(ctx)
			if err != nil {
				return nil, fmt.Errorf("count selected: %w", err)
			}
		}

		reports = append(reports, CompanyReport{
			CompanyUserID:    cp.UserID,
			CompanyName:      cp.CompanyName,
			InternshipCount:  len(internshipIDs),
			ApplicationCount: appCount,
			SelectedCount:    selectedCount,
		})
	}
	return reports, nil
}
