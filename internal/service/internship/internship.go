package internship

import (
	"context"
	"fmt"
	"sort"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/internlink/internlink_backend/internal/repo"
	entapp "github.com/internlink/internlink_backend/internal/repo/application"
	entcompany "github.com/internlink/internlink_backend/internal/repo/companyprofile"
	entintern "github.com/internlink/internlink_backend/internal/repo/internship"
	"github.com/internlink/internlink_backend/pkg/database"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Title               string
	Description         *string
	Requirements        *string
	Location            *string
	WorkMode            string // onsite | remote | hybrid
	Duration            *string
	Stipend             *string
	ApplicationDeadline *time.Time
}

type UpdateRequest struct {
	Title               *string
	Description         *string
	Requirements        *string
	Location            *string
	WorkMode            *string
	Duration            *string
	Stipend             *string
	ApplicationDeadline *time.Time
}

type ListFilter struct {
	Location *string
	WorkMode *string
	Search   *string // matches title
}

// StatusCounts breaks applications down by status.
type StatusCounts struct {
	Pending     int `json:"pending"`
	Shortlisted int `json:"shortlisted"`
	Rejected    int `json:"rejected"`
	Selected    int `json:"selected"`
}

// PostingStats is the per-posting application breakdown.
type PostingStats struct {
	InternshipID uuid.UUID    `json:"internship_id"`
	Title        string       `json:"title"`
	Applications int          `json:"applications"`
	ByStatus     StatusCounts `json:"by_status"`
}

// CompanyStats is the company dashboard aggregate.
type CompanyStats struct {
	TotalInternships  int            `json:"total_internships"`
	OpenInternships   int            `json:"open_internships"`
	ClosedInternships int            `json:"closed_internships"`
	TotalApplications int            `json:"total_applications"`
	ByStatus          StatusCounts   `json:"by_status"`
	Postings          []PostingStats `json:"postings"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Public catalog: open internships from approved companies only.
	ListOpen(ctx context.Context, filter ListFilter, page, perPage int) ([]*repo.Internship, error)
	GetOpen(ctx context.Context, id uuid.UUID) (*repo.Internship, error)

	// Company-side management. companyUserID must own the posting.
	Create(ctx context.Context, companyUserID uuid.UUID, req CreateRequest) (*repo.Internship, error)
	Update(ctx context.Context, companyUserID, id uuid.UUID, req UpdateRequest) (*repo.Internship, error)
	Close(ctx context.Context, companyUserID, id uuid.UUID) (*repo.Internship, error)
	Reopen(ctx context.Context, companyUserID, id uuid.UUID) (*repo.Internship, error)
	Delete(ctx context.Context, companyUserID, id uuid.UUID) error
	ListMine(ctx context.Context, companyUserID uuid.UUID, page, perPage int) ([]*repo.Internship, error)
	Stats(ctx context.Context, companyUserID uuid.UUID) (*CompanyStats, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type internshipService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &internshipService{db: db}
}

// approvedCompanyIDs returns the user ids of all approved companies.
// The public catalog never shows postings from unapproved companies,
// including ones that were approved at posting time and rejected later.
func (s *internshipService) approvedCompanyIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.CompanyProfile.Query().
		Where(entcompany.Approved(true)).
		Select(entcompany.FieldUserID).
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("load approved companies: %w", err)
	}
	return ids, nil
}

func (s *internshipService) ListOpen(ctx context.Context, filter ListFilter, page, perPage int) ([]*repo.Internship, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	companyIDs, err := s.approvedCompanyIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(companyIDs) == 0 {
		return []*repo.Internship{}, nil
	}

	q := s.db.Internship.Query().
		Where(
			entintern.StatusEQ(entintern.StatusOpen),
			entintern.CompanyIDIn(companyIDs...),
		)

	if filter.Location != nil && *filter.Location != "" {
		q = q.Where(entintern.LocationContainsFold(*filter.Location))
	}
	if filter.WorkMode != nil && *filter.WorkMode != "" {
		q = q.Where(entintern.WorkModeEQ(entintern.WorkMode(*filter.WorkMode)))
	}
	if filter.Search != nil && *filter.Search != "" {
		q = q.Where(entintern.TitleContainsFold(*filter.Search))
	}

	list, err := q.
		Order(entintern.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list internships: %w", err)
	}
	return list, nil
}

func (s *internshipService) GetOpen(ctx context.Context, id uuid.UUID) (*repo.Internship, error) {
	in, err := s.db.Internship.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get internship: %w", err)
	}

	approved, err := s.db.CompanyProfile.Query().
		Where(entcompany.UserID(in.CompanyID), entcompany.Approved(true)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check company approval: %w", err)
	}
	// Hidden postings are indistinguishable from missing ones.
	if !approved {
		return nil, ErrNotFound
	}
	if in.Status != entintern.StatusOpen {
		return nil, ErrNotFound
	}
	return in, nil
}

func (s *internshipService) Create(ctx context.Context, companyUserID uuid.UUID, req CreateRequest) (*repo.Internship, error) {
	approved, err := s.db.CompanyProfile.Query().
		Where(entcompany.UserID(companyUserID), entcompany.Approved(true)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check company approval: %w", err)
	}
	if !approved {
		return nil, ErrCompanyNotApproved
	}

	c := s.db.Internship.Create().
		SetCompanyID(companyUserID).
		SetTitle(req.Title).
		SetNillableDescription(req.Description).
		SetNillableRequirements(req.Requirements).
		SetNillableLocation(req.Location).
		SetNillableDuration(req.Duration).
		SetNillableStipend(req.Stipend).
		SetNillableApplicationDeadline(req.ApplicationDeadline)

	if req.WorkMode != "" {
		c = c.SetWorkMode(entintern.WorkMode(req.WorkMode))
	}

	in, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create internship: %w", err)
	}
	return in, nil
}

// owned loads an internship and verifies company ownership.
func (s *internshipService) owned(ctx context.Context, companyUserID, id uuid.UUID) (*repo.Internship, error) {
	in, err := s.db.Internship.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get internship: %w", err)
	}
	if in.CompanyID != companyUserID {
		return nil, ErrNotOwner
	}
	return in, nil
}

func (s *internshipService) Update(ctx context.Context, companyUserID, id uuid.UUID, req UpdateRequest) (*repo.Internship, error) {
	in, err := s.owned(ctx, companyUserID, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.Internship.UpdateOne(in).
		SetNillableDescription(req.Description).
		SetNillableRequirements(req.Requirements).
		SetNillableLocation(req.Location).
		SetNillableDuration(req.Duration).
		SetNillableStipend(req.Stipend).
		SetNillableApplicationDeadline(req.ApplicationDeadline)

	if req.Title != nil && *req.Title != "" {
		upd = upd.SetTitle(*req.Title)
	}
	if req.WorkMode != nil && *req.WorkMode != "" {
		upd = upd.SetWorkMode(entintern.WorkMode(*req.WorkMode))
	}

	out, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update internship: %w", err)
	}
	return out, nil
}

func (s *internshipService) Close(ctx context.Context, companyUserID, id uuid.UUID) (*repo.Internship, error) {
	in, err := s.owned(ctx, companyUserID, id)
	if err != nil {
		return nil, err
	}

	out, err := s.db.Internship.UpdateOne(in).
		SetStatus(entintern.StatusClosed).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("close internship: %w", err)
	}
	return out, nil
}

func (s *internshipService) Reopen(ctx context.Context, companyUserID, id uuid.UUID) (*repo.Internship, error) {
	in, err := s.owned(ctx, companyUserID, id)
	if err != nil {
		return nil, err
	}

	out, err := s.db.Internship.UpdateOne(in).
		SetStatus(entintern.StatusOpen).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("reopen internship: %w", err)
	}
	return out, nil
}

func (s *internshipService) Delete(ctx context.Context, companyUserID, id uuid.UUID) error {
	if _, err := s.owned(ctx, companyUserID, id); err != nil {
		return err
	}

	// Applications to the deleted posting go with it.
	return s.deleteWithApplications(ctx, id)
}

func (s *internshipService) deleteWithApplications(ctx context.Context, id uuid.UUID) error {
	return database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		if _, err := tx.Application.Delete().
			Where(entapp.InternshipID(id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete applications: %w", err)
		}
		if err := tx.Internship.DeleteOneID(id).Exec(ctx); err != nil {
			return fmt.Errorf("delete internship: %w", err)
		}
		return nil
	})
}

// Stats aggregates the company's postings and their applications, ordered
// by application count descending like the posting list on the dashboard.
func (s *internshipService) Stats(ctx context.Context, companyUserID uuid.UUID) (*CompanyStats, error) {
	postings, err := s.db.Internship.Query().
		Where(entintern.CompanyID(companyUserID)).
		Order(entintern.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list own internships: %w", err)
	}

	out := &CompanyStats{
		TotalInternships: len(postings),
		Postings:         make([]PostingStats, 0, len(postings)),
	}
	if len(postings) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, len(postings))
	for i, in := range postings {
		ids[i] = in.ID
		if in.Status == entintern.StatusOpen {
			out.OpenInternships++
		} else {
			out.ClosedInternships++
		}
	}

	apps, err := s.db.Application.Query().
		Where(entapp.InternshipIDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	perPosting := make(map[uuid.UUID]*PostingStats, len(postings))
	for _, in := range postings {
		perPosting[in.ID] = &PostingStats{InternshipID: in.ID, Title: in.Title}
	}
	for _, a := range apps {
		ps := perPosting[a.InternshipID]
		ps.Applications++
		out.TotalApplications++
		switch a.Status {
		case entapp.StatusPending:
			ps.ByStatus.Pending++
			out.ByStatus.Pending++
		case entapp.StatusShortlisted:
			ps.ByStatus.Shortlisted++
			out.ByStatus.Shortlisted++
		case entapp.StatusRejected:
			ps.ByStatus.Rejected++
			out.ByStatus.Rejected++
		case entapp.StatusSelected:
			ps.ByStatus.Selected++
			out.ByStatus.Selected++
		}
	}

	for _, in := range postings {
		out.Postings = append(out.Postings, *perPosting[in.ID])
	}
	sort.SliceStable(out.Postings, func(i, j int) bool {
		return out.Postings[i].Applications > out.Postings[j].Applications
	})

	return out, nil
}

func (s *internshipService) ListMine(ctx context.Context, companyUserID uuid.UUID, page, perPage int) ([]*repo.Internship, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	list, err := s.db.Internship.Query().
		Where(entintern.CompanyID(companyUserID)).
		Order(entintern.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list own internships: %w", err)
	}
	return list, nil
}
