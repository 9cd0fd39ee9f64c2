package file

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/internlink/internlink_backend/internal/repo"
	entcompany "github.com/internlink/internlink_backend/internal/repo/companyprofile"
	entstudent "github.com/internlink/internlink_backend/internal/repo/studentprofile"
	s3pkg "github.com/internlink/internlink_backend/pkg/s3"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNoFile          = errors.New("no file attached")
	ErrBadFileType     = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file exceeds the size limit")
)

const (
	maxResumeBytes = 5 << 20  // 5 MiB
	maxLogoBytes   = 2 << 20  // 2 MiB
)

var resumeExts = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

var logoExts = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".svg":  "image/svg+xml",
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UploadResult struct {
	Key      string
	FileName string
	Size     int64
	MimeType string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// UploadResume stores a student's resume and records the key on the
	// student profile. The previous resume object is removed.
	UploadResume(ctx context.Context, studentUserID uuid.UUID, fh *multipart.FileHeader) (*UploadResult, error)

	// UploadLogo stores a company logo and records the key on the company
	// profile. The previous logo object is removed.
	UploadLogo(ctx context.Context, companyUserID uuid.UUID, fh *multipart.FileHeader) (*UploadResult, error)

	GetDownloadURL(ctx context.Context, key string) (string, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type fileService struct {
	db *repo.Client
	s3 *s3pkg.Client
}

func New(db *repo.Client, s3Client *s3pkg.Client) Service {
	return &fileService{db: db, s3: s3Client}
}

func (s *fileService) UploadResume(ctx context.Context, studentUserID uuid.UUID, fh *multipart.FileHeader) (*UploadResult, error) {
	sp, err := s.db.StudentProfile.Query().
		Where(entstudent.UserID(studentUserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get student profile: %w", err)
	}

	res, err := s.upload(ctx, "resumes", studentUserID, fh, resumeExts, maxResumeBytes)
	if err != nil {
		return nil, err
	}

	if sp.ResumeKey != nil && *sp.ResumeKey != "" {
		_ = s.s3.Delete(ctx, *sp.ResumeKey)
	}

	if _, err := s.db.StudentProfile.UpdateOne(sp).
		SetResumeKey(res.Key).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("record resume key: %w", err)
	}
	return res, nil
}

func (s *fileService) UploadLogo(ctx context.Context, companyUserID uuid.UUID, fh *multipart.FileHeader) (*UploadResult, error) {
	cp, err := s.db.CompanyProfile.Query().
		Where(entcompany.UserID(companyUserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get company profile: %w", err)
	}

	res, err := s.upload(ctx, "logos", companyUserID, fh, logoExts, maxLogoBytes)
	if err != nil {
		return nil, err
	}

	if cp.LogoKey != nil && *cp.LogoKey != "" {
		_ = s.s3.Delete(ctx, *cp.LogoKey)
	}

	if _, err := s.db.CompanyProfile.UpdateOne(cp).
		SetLogoKey(res.Key).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("record logo key: %w", err)
	}
	return res, nil
}

func (s *fileService) upload(ctx context.Context, entity string, userID uuid.UUID, fh *multipart.FileHeader, allowed map[string]string, maxBytes int64) (*UploadResult, error) {
	if fh == nil {
		return nil, ErrNoFile
	}
	if fh.Size > maxBytes {
		return nil, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	mime, ok := allowed[ext]
	if !ok {
		return nil, ErrBadFileType
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	key := fmt.Sprintf("%s/%s/%s%s", entity, userID, uuid.New(), ext)
	if err := s.s3.Upload(ctx, key, mime, src, fh.Size); err != nil {
		return nil, fmt.Errorf("s3 upload: %w", err)
	}

	return &UploadResult{
		Key:      key,
		FileName: fh.Filename,
		Size:     fh.Size,
		MimeType: mime,
	}, nil
}

func (s *fileService) GetDownloadURL(ctx context.Context, key string) (string, error) {
	url, err := s.s3.PresignDownload(ctx, key)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	return url, nil
}
