package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"designmeta/internal/models"
	"designmeta/internal/repositories"

	"github.com/google/uuid"
)

// AttachmentService is the media-library backend for the admin upload
// picker: it stores the object, records the asset row, and hands back
// presigned URLs.
type AttachmentService interface {
	Upload(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (*models.Attachment, string, error)
	Get(ctx context.Context, id int64) (*models.Attachment, string, error)
}

type attachmentService struct {
	attachmentRepo repositories.AttachmentRepository
	minioService   MinioService
	bucket         string
	presignExpiry  time.Duration
}

func NewAttachmentService(attachmentRepo repositories.AttachmentRepository, minioService MinioService, bucket string, presignExpiry time.Duration) AttachmentService {
	return &attachmentService{
		attachmentRepo: attachmentRepo,
		minioService:   minioService,
		bucket:         bucket,
		presignExpiry:  presignExpiry,
	}
}

func (s *attachmentService) Upload(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (*models.Attachment, string, error) {
	name := path.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == "/" {
		name = "upload"
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Object keys are prefixed with a fresh UUID so uploads never collide
	// while the base name stays derivable for downloads.
	objectKey := fmt.Sprintf("attachments/%s/%s", uuid.New().String(), name)

	if err := s.minioService.UploadObject(ctx, s.bucket, objectKey, contentType, reader, size); err != nil {
		return nil, "", err
	}

	attachment := &models.Attachment{
		ObjectKey:   objectKey,
		ContentType: contentType,
		Size:        size,
	}
	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		return nil, "", err
	}

	url, err := s.minioService.PresignedURL(ctx, s.bucket, objectKey, s.presignExpiry)
	if err != nil {
		return nil, "", err
	}

	return attachment, url, nil
}

func (s *attachmentService) Get(ctx context.Context, id int64) (*models.Attachment, string, error) {
	attachment, err := s.attachmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if attachment == nil {
		return nil, "", nil
	}

	url, err := s.minioService.PresignedURL(ctx, s.bucket, attachment.ObjectKey, s.presignExpiry)
	if err != nil {
		return nil, "", err
	}

	return attachment, url, nil
}
