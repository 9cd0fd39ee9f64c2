package company

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/internlink/internlink_backend/internal/repo"
	entprofile "github.com/internlink/internlink_backend/internal/repo/companyprofile"
	entuser "github.com/internlink/internlink_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateProfileRequest struct {
	CompanyName  string
	Industry     *string
	Website      *string
	Location     *string
	Description  *string
	ContactPhone *string
	PhoneRegion  string // ISO region for phone parsing, default "IN"
}

type UpdateProfileRequest struct {
	CompanyName  *string
	Industry     *string
	Website      *string
	Location     *string
	Description  *string
	ContactPhone *string
	PhoneRegion  string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, req CreateProfileRequest) (*repo.CompanyProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*repo.CompanyProfile, error)
	Get(ctx context.Context, userID uuid.UUID) (*repo.CompanyProfile, error)
	GetByProfileID(ctx context.Context, profileID uuid.UUID) (*repo.CompanyProfile, error)
	SetLogoKey(ctx context.Context, userID uuid.UUID, key string) error
	IsApproved(ctx context.Context, userID uuid.UUID) (bool, error)
	ListApproved(ctx context.Context, page, perPage int) ([]*repo.CompanyProfile, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type companyService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &companyService{db: db}
}

// normalizePhone validates and formats a contact phone in E.164.
func normalizePhone(raw, region string) (string, error) {
	if region == "" {
		region = "IN"
	}
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", ErrInvalidPhone
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func (s *companyService) CreateProfile(ctx context.Context, userID uuid.UUID, req CreateProfileRequest) (*repo.CompanyProfile, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u.UserType != entuser.UserTypeCompany {
		return nil, ErrNotCompany
	}

	var phone *string
	if req.ContactPhone != nil && *req.ContactPhone != "" {
		p, err := normalizePhone(*req.ContactPhone, req.PhoneRegion)
		if err != nil {
			return nil, err
		}
		phone = &p
	}

	// New company profiles start unapproved; admins flip the flag.
	p, err := s.db.CompanyProfile.Create().
		SetUserID(userID).
		SetCompanyName(req.CompanyName).
		SetNillableIndustry(req.Industry).
		SetNillableWebsite(req.Website).
		SetNillableLocation(req.Location).
		SetNillableDescription(req.Description).
		SetNillableContactPhone(phone).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("create company profile: %w", err)
	}
	return p, nil
}

func (s *companyService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*repo.CompanyProfile, error) {
	existing, err := s.db.CompanyProfile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get company profile: %w", err)
	}

	upd := s.db.CompanyProfile.UpdateOne(existing).
		SetNillableIndustry(req.Industry).
		SetNillableWebsite(req.Website).
		SetNillableLocation(req.Location).
		SetNillableDescription(req.Description)

	if req.CompanyName != nil && *req.CompanyName != "" {
		upd = upd.SetCompanyName(*req.CompanyName)
	}
	if req.ContactPhone != nil && *req.ContactPhone != "" {
		p, err := normalizePhone(*req.ContactPhone, req.PhoneRegion)
		if err != nil {
			return nil, err
		}
		upd = upd.SetContactPhone(p)
	}

	p, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update company profile: %w", err)
	}
	return p, nil
}

func (s *companyService) Get(ctx context.Context, userID uuid.UUID) (*repo.CompanyProfile, error) {
	p, err := s.db.CompanyProfile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get company profile: %w", err)
	}
	return p, nil
}

func (s *companyService) GetByProfileID(ctx context.Context, profileID uuid.UUID) (*repo.CompanyProfile, error) {
	p, err := s.db.CompanyProfile.Get(ctx, profileID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get company profile: %w", err)
	}
	return p, nil
}

func (s *companyService) SetLogoKey(ctx context.Context, userID uuid.UUID, key string) error {
	n, err := s.db.CompanyProfile.Update().
		Where(entprofile.UserID(userID)).
		SetLogoKey(key).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set logo key: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListApproved is the public company directory. Pending companies stay
// invisible until an admin approves them.
func (s *companyService) ListApproved(ctx context.Context, page, perPage int) ([]*repo.CompanyProfile, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	list, err := s.db.CompanyProfile.Query().
		Where(entprofile.Approved(true)).
		Order(entprofile.ByCompanyName()).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list approved companies: %w", err)
	}
	return list, nil
}

// IsApproved reports whether the company's profile has been approved by an
// admin. A missing profile counts as not approved.
func (s *companyService) IsApproved(ctx context.Context, userID uuid.UUID) (bool, error) {
	approved, err := s.db.CompanyProfile.Query().
		Where(entprofile.UserID(userID), entprofile.Approved(true)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check approval: %w", err)
	}
	return approved, nil
}
