package student

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/internlink/internlink_backend/internal/repo"
	entcollege "github.com/internlink/internlink_backend/internal/repo/collegeprofile"
	entcs "github.com/internlink/internlink_backend/internal/repo/collegestudent"
	entprofile "github.com/internlink/internlink_backend/internal/repo/studentprofile"
	entuser "github.com/internlink/internlink_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpsertProfileRequest struct {
	FirstName      string
	LastName       *string
	College        *string
	Degree         *string
	Branch         *string
	GraduationYear *int
	Skills         *string
	Bio            *string
	// ResumeKey nil means "keep the stored resume"; updates go through
	// SetResumeKey after an upload.
}

// CollegeLink is the student's association with one college, the college
// profile loaded alongside.
type CollegeLink struct {
	Association *repo.CollegeStudent `json:"association"`
	College     *repo.CollegeProfile `json:"college"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	UpsertProfile(ctx context.Context, userID uuid.UUID, req UpsertProfileRequest) (*repo.StudentProfile, error)
	Get(ctx context.Context, userID uuid.UUID) (*repo.StudentProfile, error)
	GetByProfileID(ctx context.Context, profileID uuid.UUID) (*repo.StudentProfile, error)
	SetResumeKey(ctx context.Context, userID uuid.UUID, key string) error
	LinkCollege(ctx context.Context, studentUserID, collegeUserID uuid.UUID) (*repo.CollegeStudent, error)
	MyColleges(ctx context.Context, studentUserID uuid.UUID) ([]CollegeLink, error)
	ListColleges(ctx context.Context, page, perPage int) ([]*repo.CollegeProfile, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type studentService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &studentService{db: db}
}

func (s *studentService) UpsertProfile(ctx context.Context, userID uuid.UUID, req UpsertProfileRequest) (*repo.StudentProfile, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u.UserType != entuser.UserTypeStudent {
		return nil, ErrNotStudent
	}

	existing, err := s.db.StudentProfile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get student profile: %w", err)
	}

	if existing == nil {
		c := s.db.StudentProfile.Create().
			SetUserID(userID).
			SetFirstName(req.FirstName).
			SetNillableLastName(req.LastName).
			SetNillableCollege(req.College).
			SetNillableDegree(req.Degree).
			SetNillableBranch(req.Branch).
			SetNillableGraduationYear(req.GraduationYear).
			SetNillableSkills(req.Skills).
			SetNillableBio(req.Bio)

		p, err := c.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create student profile: %w", err)
		}
		return p, nil
	}

	upd := s.db.StudentProfile.UpdateOne(existing).
		SetFirstName(req.FirstName).
		SetNillableLastName(req.LastName).
		SetNillableCollege(req.College).
		SetNillableDegree(req.Degree).
		SetNillableBranch(req.Branch).
		SetNillableGraduationYear(req.GraduationYear).
		SetNillableSkills(req.Skills).
		SetNillableBio(req.Bio)

	p, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update student profile: %w", err)
	}
	return p, nil
}

func (s *studentService) Get(ctx context.Context, userID uuid.UUID) (*repo.StudentProfile, error) {
	p, err := s.db.StudentProfile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get student profile: %w", err)
	}
	return p, nil
}

func (s *studentService) GetByProfileID(ctx context.Context, profileID uuid.UUID) (*repo.StudentProfile, error) {
	p, err := s.db.StudentProfile.Get(ctx, profileID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get student profile: %w", err)
	}
	return p, nil
}

func (s *studentService) SetResumeKey(ctx context.Context, userID uuid.UUID, key string) error {
	n, err := s.db.StudentProfile.Update().
		Where(entprofile.UserID(userID)).
		SetResumeKey(key).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set resume key: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// LinkCollege creates a pending association between the student and a
// college. The college verifies or rejects it from its roster view.
func (s *studentService) LinkCollege(ctx context.Context, studentUserID, collegeUserID uuid.UUID) (*repo.CollegeStudent, error) {
	exists, err := s.db.CollegeProfile.Query().
		Where(entcollege.UserID(collegeUserID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check college: %w", err)
	}
	if !exists {
		return nil, ErrCollegeNotFound
	}

	cs, err := s.db.CollegeStudent.Create().
		SetCollegeID(collegeUserID).
		SetStudentID(studentUserID).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrAlreadyLinked
		}
		return nil, fmt.Errorf("link college: %w", err)
	}
	return cs, nil
}

// MyColleges returns the student's college associations with the matching
// college profiles, whatever their verification status.
func (s *studentService) MyColleges(ctx context.Context, studentUserID uuid.UUID) ([]CollegeLink, error) {
	assocs, err := s.db.CollegeStudent.Query().
		Where(entcs.StudentID(studentUserID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list college links: %w", err)
	}
	if len(assocs) == 0 {
		return []CollegeLink{}, nil
	}

	collegeIDs := make([]uuid.UUID, 0, len(assocs))
	for _, a := range assocs {
		collegeIDs = append(collegeIDs, a.CollegeID)
	}
	profiles, err := s.db.CollegeProfile.Query().
		Where(entcollege.UserIDIn(collegeIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load college profiles: %w", err)
	}
	byUser := make(map[uuid.UUID]*repo.CollegeProfile, len(profiles))
	for _, p := range profiles {
		byUser[p.UserID] = p
	}

	links := make([]CollegeLink, 0, len(assocs))
	for _, a := range assocs {
		links = append(links, CollegeLink{
			Association: a,
			College:     byUser[a.CollegeID],
		})
	}
	return links, nil
}

func (s *studentService) ListColleges(ctx context.Context, page, perPage int) ([]*repo.CollegeProfile, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	colleges, err := s.db.CollegeProfile.Query().
		Order(entcollege.ByCollegeName()).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list colleges: %w", err)
	}
	return colleges, nil
}
