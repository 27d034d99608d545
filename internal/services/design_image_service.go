package services

import (
	"context"
	"errors"
	"log"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"designmeta/internal/caching"
	"designmeta/internal/common"
	"designmeta/internal/models"
	"designmeta/internal/repositories"
)

// ErrNoDesignImage is returned by DownloadOriginal when the product has no
// usable design image source.
var ErrNoDesignImage = errors.New("no design image found for this product")

// DownloadDescriptor tells the client what to fetch and what to call it.
type DownloadDescriptor struct {
	DownloadURL string `json:"download_url"`
	Filename    string `json:"filename"`
	Type        string `json:"type"`
}

// DesignImageService owns the write side of the design image metadata and
// the download resolution policy.
type DesignImageService interface {
	// Save applies submitted field values. Each field is processed
	// independently and only when present (non-nil) in the submission.
	// Malformed values are normalized, never rejected.
	Save(ctx context.Context, productID int64, submittedID, submittedURL *string) error
	DownloadOriginal(ctx context.Context, productID int64) (*DownloadDescriptor, error)
}

type designImageService struct {
	metaRepo       repositories.ProductMetaRepository
	attachmentRepo repositories.AttachmentRepository
	resolver       ResolverService
	minioService   MinioService
	cacheService   caching.CacheService
	bucket         string
	presignExpiry  time.Duration
}

func NewDesignImageService(metaRepo repositories.ProductMetaRepository, attachmentRepo repositories.AttachmentRepository, resolver ResolverService, minioService MinioService, cacheService caching.CacheService, bucket string, presignExpiry time.Duration) DesignImageService {
	return &designImageService{
		metaRepo:       metaRepo,
		attachmentRepo: attachmentRepo,
		resolver:       resolver,
		minioService:   minioService,
		cacheService:   cacheService,
		bucket:         bucket,
		presignExpiry:  presignExpiry,
	}
}

func (s *designImageService) Save(ctx context.Context, productID int64, submittedID, submittedURL *string) error {
	// Once any write or delete has been applied the cached record is stale,
	// so invalidation must happen even when a later field errors out.
	mutated := false
	defer func() {
		if !mutated {
			return
		}
		if cacheErr := s.cacheService.DeleteDesignImage(ctx, productID); cacheErr != nil {
			log.Printf("Failed to invalidate design image cache for product %d: %v", productID, cacheErr)
		}
	}()

	if submittedID != nil {
		id, err := strconv.ParseInt(strings.TrimSpace(*submittedID), 10, 64)
		if err != nil {
			id = 0 // coerced, not rejected
		}
		if id != 0 {
			if err := s.metaRepo.Set(ctx, productID, models.MetaDesignImageID, strconv.FormatInt(id, 10)); err != nil {
				return err
			}
		} else {
			if err := s.metaRepo.Delete(ctx, productID, models.MetaDesignImageID); err != nil {
				return err
			}
		}
		mutated = true
	}

	if submittedURL != nil {
		cleaned := common.SanitizeURL(*submittedURL)
		if cleaned != "" {
			if err := s.metaRepo.Set(ctx, productID, models.MetaDesignImageURL, cleaned); err != nil {
				return err
			}
		} else {
			if err := s.metaRepo.Delete(ctx, productID, models.MetaDesignImageURL); err != nil {
				return err
			}
		}
		mutated = true
	}

	return nil
}

func (s *designImageService) DownloadOriginal(ctx context.Context, productID int64) (*DownloadDescriptor, error) {
	record := s.resolver.Record(ctx, productID)

	if record.AttachmentID != 0 {
		// A set but dangling attachment reference does not fall back to the
		// stored URL here; the download surfaces "no image" like the editor's
		// preview does.
		attachment, err := s.attachmentRepo.GetByID(ctx, record.AttachmentID)
		if err != nil {
			return nil, err
		}
		if attachment == nil {
			return nil, ErrNoDesignImage
		}

		downloadURL, err := s.minioService.PresignedURL(ctx, s.bucket, attachment.ObjectKey, s.presignExpiry)
		if err != nil {
			return nil, err
		}

		return &DownloadDescriptor{
			DownloadURL: downloadURL,
			Filename:    path.Base(attachment.ObjectKey),
			Type:        string(models.SourceAttachment),
		}, nil
	}

	if record.ImageURL != "" {
		filename := models.DefaultDownloadFilename
		if u, err := url.Parse(record.ImageURL); err == nil {
			if base := path.Base(u.Path); base != "" && base != "." && base != "/" {
				filename = base
			}
		}

		return &DownloadDescriptor{
			DownloadURL: record.ImageURL,
			Filename:    filename,
			Type:        string(models.SourceURL),
		}, nil
	}

	return nil, ErrNoDesignImage
}
