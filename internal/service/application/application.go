package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/internlink/internlink_backend/internal/events"
	"github.com/internlink/internlink_backend/internal/repo"
	entapp "github.com/internlink/internlink_backend/internal/repo/application"
	entcompany "github.com/internlink/internlink_backend/internal/repo/companyprofile"
	entintern "github.com/internlink/internlink_backend/internal/repo/internship"
	entstudent "github.com/internlink/internlink_backend/internal/repo/studentprofile"
	entuser "github.com/internlink/internlink_backend/internal/repo/user"
	"github.com/internlink/internlink_backend/pkg/email"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ApplyRequest struct {
	InternshipID uuid.UUID
	CoverLetter  *string
}

type StatusFilter struct {
	Status *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Apply(ctx context.Context, studentUserID uuid.UUID, req ApplyRequest) (*repo.Application, error)
	Get(ctx context.Context, studentUserID, applicationID uuid.UUID) (*repo.Application, error)
	Withdraw(ctx context.Context, studentUserID, applicationID uuid.UUID) error
	ListForStudent(ctx context.Context, studentUserID uuid.UUID, page, perPage int) ([]*repo.Application, error)
	ListForInternship(ctx context.Context, companyUserID, internshipID uuid.UUID, filter StatusFilter, page, perPage int) ([]*repo.Application, error)
	UpdateStatus(ctx context.Context, companyUserID, applicationID uuid.UUID, status string) (*repo.Application, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type applicationService struct {
	db     *repo.Client
	mail   *email.Client
	events *events.Publisher
}

func New(db *repo.Client, mail *email.Client, pub *events.Publisher) Service {
	return &applicationService{db: db, mail: mail, events: pub}
}

func (s *applicationService) Apply(ctx context.Context, studentUserID uuid.UUID, req ApplyRequest) (*repo.Application, error) {
	in, err := s.db.Internship.Get(ctx, req.InternshipID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInternshipNotFound
		}
		return nil, fmt.Errorf("get internship: %w", err)
	}
	if in.Status != entintern.StatusOpen {
		return nil, ErrInternshipClosed
	}
	if in.ApplicationDeadline != nil && time.Now().After(*in.ApplicationDeadline) {
		return nil, ErrInternshipClosed
	}

	// A posting whose company lost approval is no longer applicable either.
	approved, err := s.db.CompanyProfile.Query().
		Where(entcompany.UserID(in.CompanyID), entcompany.Approved(true)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check company approval: %w", err)
	}
	if !approved {
		return nil, ErrInternshipNotFound
	}

	app, err := s.db.Application.Create().
		SetStudentID(studentUserID).
		SetInternshipID(req.InternshipID).
		SetNillableCoverLetter(req.CoverLetter).
		SetAppliedAt(time.Now()).
		Save(ctx)
	if err != nil {
		// Unique (student_id, internship_id) closes the duplicate-apply race.
		if repo.IsConstraintError(err) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.events.ApplicationSubmitted(in.ID, app.ID)

	return app, nil
}

// Get returns one of the student's own applications with the posting loaded.
func (s *applicationService) Get(ctx context.Context, studentUserID, applicationID uuid.UUID) (*repo.Application, error) {
	app, err := s.db.Application.Query().
		Where(entapp.ID(applicationID)).
		WithInternship().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	if app.StudentID != studentUserID {
		return nil, ErrNotOwner
	}
	return app, nil
}

func (s *applicationService) Withdraw(ctx context.Context, studentUserID, applicationID uuid.UUID) error {
	app, err := s.db.Application.Get(ctx, applicationID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get application: %w", err)
	}
	if app.StudentID != studentUserID {
		return ErrNotOwner
	}
	// Once a company has decided, the application is part of its record.
	if app.Status != entapp.StatusPending && app.Status != entapp.StatusShortlisted {
		return ErrNotWithdrawable
	}

	if err := s.db.Application.DeleteOneID(applicationID).Exec(ctx); err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete application: %w", err)
	}
	return nil
}

func (s *applicationService) ListForStudent(ctx context.Context, studentUserID uuid.UUID, page, perPage int) ([]*repo.Application, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	list, err := s.db.Application.Query().
		Where(entapp.StudentID(studentUserID)).
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

func (s *applicationService) ListForInternship(ctx context.Context, companyUserID, internshipID uuid.UUID, filter StatusFilter, page, perPage int) ([]*repo.Application, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	in, err := s.db.Internship.Get(ctx, internshipID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInternshipNotFound
		}
		return nil, fmt.Errorf("get internship: %w", err)
	}
	if in.CompanyID != companyUserID {
		return nil, ErrNotInternshipOwner
	}

	q := s.db.Application.Query().
		Where(entapp.InternshipID(internshipID))

	if filter.Status != nil && *filter.Status != "" {
		st := entapp.Status(*filter.Status)
		if err := entapp.StatusValidator(st); err != nil {
			return nil, ErrInvalidStatus
		}
		q = q.Where(entapp.StatusEQ(st))
	}

	list, err := q.
		WithStudent().
		Order(entapp.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return list, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, companyUserID, applicationID uuid.UUID, status string) (*repo.Application, error) {
	st := entapp.Status(status)
	if err := entapp.StatusValidator(st); err != nil {
		return nil, ErrInvalidStatus
	}
	// A decision can be revised to another decision, never rolled back
	// to pending.
	if st == entapp.StatusPending {
		return nil, ErrInvalidStatus
	}

	app, err := s.db.Application.Get(ctx, applicationID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get application: %w", err)
	}

	in, err := s.db.Internship.Get(ctx, app.InternshipID)
	if err != nil {
		return nil, fmt.Errorf("get internship: %w", err)
	}
	if in.CompanyID != companyUserID {
		return nil, ErrNotInternshipOwner
	}

	out, err := s.db.Application.UpdateOne(app).
		SetStatus(st).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update application status: %w", err)
	}

	s.events.ApplicationStatusChanged(app.StudentID, app.ID)
	s.notifyStudent(ctx, app.StudentID, in, string(st))

	return out, nil
}

// notifyStudent emails the student about the status change. Best-effort.
func (s *applicationService) notifyStudent(ctx context.Context, studentUserID uuid.UUID, in *repo.Internship, status string) {
	if s.mail == nil {
		return
	}

	u, err := s.db.User.Query().Where(entuser.ID(studentUserID)).Only(ctx)
	if err != nil {
		slog.Warn("load student for status email failed", "student_id", studentUserID, "error", err)
		return
	}

	var studentName string
	if sp, err := s.db.StudentProfile.Query().
		Where(entstudent.UserID(studentUserID)).
		Only(ctx); err == nil {
		studentName = sp.FirstName
	}

	var companyName string
	if cp, err := s.db.CompanyProfile.Query().
		Where(entcompany.UserID(in.CompanyID)).
		Only(ctx); err == nil {
		companyName = cp.CompanyName
	}

	msg := email.BuildApplicationStatusEmail(email.ApplicationEmailData{
		StudentName:     studentName,
		Email:           u.Email,
		InternshipTitle: in.Title,
		CompanyName:     companyName,
		Status:          status,
	})
	if err := s.mail.Send(ctx, msg); err != nil {
		slog.Warn("send application status email failed", "email", u.Email, "error", err)
	}
}
