package college

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/internlink/internlink_backend/internal/repo"
	entapp "github.com/internlink/internlink_backend/internal/repo/application"
	entcp "github.com/internlink/internlink_backend/internal/repo/collegeprofile"
	entcs "github.com/internlink/internlink_backend/internal/repo/collegestudent"
	entuser "github.com/internlink/internlink_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpsertProfileRequest struct {
	CollegeName   string
	Location      *string
	Website       *string
	Description   *string
	Accreditation *string
	ContactPhone  *string
}

// RosterEntry is one student on the college's roster with the user record
// loaded alongside the association.
type RosterEntry struct {
	Association *repo.CollegeStudent `json:"association"`
	Student     *repo.User           `json:"student"`
}

// Dashboard aggregates the college-facing counters.
type Dashboard struct {
	VerifiedStudents     int `json:"verified_students"`
	PendingVerifications int `json:"pending_verifications"`
	TotalApplications    int `json:"total_applications"`
	SelectedStudents     int `json:"selected_students"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	UpsertProfile(ctx context.Context, collegeUserID uuid.UUID, req UpsertProfileRequest) (*repo.CollegeProfile, error)
	Get(ctx context.Context, collegeUserID uuid.UUID) (*repo.CollegeProfile, error)

	// Roster management. status filters by verification status when set.
	ListStudents(ctx context.Context, collegeUserID uuid.UUID, status *string, page, perPage int) ([]RosterEntry, error)
	VerifyStudent(ctx context.Context, collegeUserID, studentUserID uuid.UUID) (*repo.CollegeStudent, error)
	RejectStudent(ctx context.Context, collegeUserID, studentUserID uuid.UUID) (*repo.CollegeStudent, error)
	AddStudentByEmail(ctx context.Context, collegeUserID uuid.UUID, studentEmail string) (*repo.CollegeStudent, error)
	RemoveStudent(ctx context.Context, collegeUserID, studentUserID uuid.UUID) error

	GetDashboard(ctx context.Context, collegeUserID uuid.UUID) (*Dashboard, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type collegeService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &collegeService{db: db}
}

func (s *collegeService) UpsertProfile(ctx context.Context, collegeUserID uuid.UUID, req UpsertProfileRequest) (*repo.CollegeProfile, error) {
	existing, err := s.db.CollegeProfile.Query().
		Where(entcp.UserID(collegeUserID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get college profile: %w", err)
	}

	if existing == nil {
		p, err := s.db.CollegeProfile.Create().
			SetUserID(collegeUserID).
			SetCollegeName(req.CollegeName).
			SetNillableLocation(req.Location).
			SetNillableWebsite(req.Website).
			SetNillableDescription(req.Description).
			SetNillableAccreditation(req.Accreditation).
			SetNillableContactPhone(req.ContactPhone).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create college profile: %w", err)
		}
		return p, nil
	}

	upd := s.db.CollegeProfile.UpdateOne(existing).
		SetNillableLocation(req.Location).
		SetNillableWebsite(req.Website).
		SetNillableDescription(req.Description).
		SetNillableAccreditation(req.Accreditation).
		SetNillableContactPhone(req.ContactPhone)
	if req.CollegeName != "" {
		upd = upd.SetCollegeName(req.CollegeName)
	}

	p, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update college profile: %w", err)
	}
	return p, nil
}

func (s *collegeService) Get(ctx context.Context, collegeUserID uuid.UUID) (*repo.CollegeProfile, error) {
	p, err := s.db.CollegeProfile.Query().
		Where(entcp.UserID(collegeUserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get college profile: %w", err)
	}
	return p, nil
}

func (s *collegeService) ListStudents(ctx context.Context, collegeUserID uuid.UUID, status *string, page, perPage int) ([]RosterEntry, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := s.db.CollegeStudent.Query().
		Where(entcs.CollegeID(collegeUserID))
	if status != nil && *status != "" {
		st := entcs.VerificationStatus(*status)
		if err := entcs.VerificationStatusValidator(st); err == nil {
			q = q.Where(entcs.VerificationStatusEQ(st))
		}
	}

	links, err := q.
		WithStudent().
		Order(entcs.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}

	entries := make([]RosterEntry, 0, len(links))
	for _, l := range links {
		entries = append(entries, RosterEntry{
			Association: l,
			Student:     l.Edges.Student,
		})
	}
	return entries, nil
}

// setVerification moves an association to verified or rejected. Verification
// can flip either way; verified_at records the latest decision.
func (s *collegeService) setVerification(ctx context.Context, collegeUserID, studentUserID uuid.UUID, status entcs.VerificationStatus) (*repo.CollegeStudent, error) {
	link, err := s.db.CollegeStudent.Query().
		Where(
			entcs.CollegeID(collegeUserID),
			entcs.StudentID(studentUserID),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotLinked
		}
		return nil, fmt.Errorf("get roster entry: %w", err)
	}

	out, err := s.db.CollegeStudent.UpdateOne(link).
		SetVerificationStatus(status).
		SetVerifiedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update roster entry: %w", err)
	}
	return out, nil
}

func (s *collegeService) VerifyStudent(ctx context.Context, collegeUserID, studentUserID uuid.UUID) (*repo.CollegeStudent, error) {
	return s.setVerification(ctx, collegeUserID, studentUserID, entcs.VerificationStatusVerified)
}

func (s *collegeService) RejectStudent(ctx context.Context, collegeUserID, studentUserID uuid.UUID) (*repo.CollegeStudent, error) {
	return s.setVerification(ctx, collegeUserID, studentUserID, entcs.VerificationStatusRejected)
}

// AddStudentByEmail links an existing student account to the college. A
// college-initiated link is trusted, so it starts out verified.
func (s *collegeService) AddStudentByEmail(ctx context.Context, collegeUserID uuid.UUID, studentEmail string) (*repo.CollegeStudent, error) {
	u, err := s.db.User.Query().
		Where(entuser.Email(studentEmail)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	if u.UserType != entuser.UserTypeStudent {
		return nil, ErrNotAStudent
	}

	link, err := s.db.CollegeStudent.Create().
		SetCollegeID(collegeUserID).
		SetStudentID(u.ID).
		SetVerificationStatus(entcs.VerificationStatusVerified).
		SetVerifiedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrAlreadyLinked
		}
		return nil, fmt.Errorf("create roster entry: %w", err)
	}
	return link, nil
}

func (s *collegeService) RemoveStudent(ctx context.Context, collegeUserID, studentUserID uuid.UUID) error {
	n, err := s.db.CollegeStudent.Delete().
		Where(
			entcs.CollegeID(collegeUserID),
			entcs.StudentID(studentUserID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("remove roster entry: %w", err)
	}
	if n == 0 {
		return ErrNotLinked
	}
	return nil
}

func (s *collegeService) GetDashboard(ctx context.Context, collegeUserID uuid.UUID) (*Dashboard, error) {
	verified, err := s.db.CollegeStudent.Query().
		Where(
			entcs.CollegeID(collegeUserID),
			entcs.VerificationStatusEQ(entcs.VerificationStatusVerified),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count verified students: %w", err)
	}

	pending, err := s.db.CollegeStudent.Query().
		Where(
			entcs.CollegeID(collegeUserID),
			entcs.VerificationStatusEQ(entcs.VerificationStatusPending),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count pending students: %w", err)
	}

	// Application counters cover the verified roster only.
	var studentIDs []uuid.UUID
	err = s.db.CollegeStudent.Query().
		Where(
			entcs.CollegeID(collegeUserID),
			entcs.VerificationStatusEQ(entcs.VerificationStatusVerified),
		).
		Select(entcs.FieldStudentID).
		Scan(ctx, &studentIDs)
	if err != nil {
		return nil, fmt.Errorf("load roster student ids: %w", err)
	}

	var total, selected int
	if len(studentIDs) > 0 {
		total, err = s.db.Application.Query().
			Where(entapp.StudentIDIn(studentIDs...)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count applications: %w", err)
		}
		selected, err = s.db.Application.Query().
			Where(
				entapp.StudentIDIn(studentIDs...),
				entapp.StatusEQ(entapp.StatusSelected),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count selected applications: %w", err)
		}
	}

	return &Dashboard{
		VerifiedStudents:     verified,
		PendingVerifications: pending,
		TotalApplications:    total,
		SelectedStudents:     selected,
	}, nil
}
