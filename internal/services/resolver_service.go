package services

import (
	"context"
	"log"
	"strconv"
	"time"

	"designmeta/internal/caching"
	"designmeta/internal/models"
	"designmeta/internal/repositories"
)

const recordCacheTTL = 15 * time.Minute

// ResolverService is the read side of the design image metadata. It never
// fails: storage or cache problems degrade to "no image" rather than
// surfacing an error to render paths.
type ResolverService interface {
	// Record returns the raw stored metadata for a product.
	Record(ctx context.Context, productID int64) *models.DesignImageRecord
	// Resolve turns the stored metadata into display/original URLs. An
	// attachment reference takes precedence over a stored URL; a dangling
	// attachment reference falls through to the URL, then to none.
	Resolve(ctx context.Context, productID int64) *models.Resolution
}

type resolverService struct {
	metaRepo       repositories.ProductMetaRepository
	attachmentRepo repositories.AttachmentRepository
	minioService   MinioService
	cacheService   caching.CacheService
	bucket         string
	presignExpiry  time.Duration
}

func NewResolverService(metaRepo repositories.ProductMetaRepository, attachmentRepo repositories.AttachmentRepository, minioService MinioService, cacheService caching.CacheService, bucket string, presignExpiry time.Duration) ResolverService {
	return &resolverService{
		metaRepo:       metaRepo,
		attachmentRepo: attachmentRepo,
		minioService:   minioService,
		cacheService:   cacheService,
		bucket:         bucket,
		presignExpiry:  presignExpiry,
	}
}

func (s *resolverService) Record(ctx context.Context, productID int64) *models.DesignImageRecord {
	if cached, err := s.cacheService.GetDesignImage(ctx, productID); cached != nil {
		return cached
	} else if err != nil {
		// Cache errors shouldn't fail the read, fall through to the store
		log.Printf("Cache error for design image %d: %v", productID, err)
	}

	record := &models.DesignImageRecord{ProductID: productID}

	rawID, err := s.metaRepo.Get(ctx, productID, models.MetaDesignImageID)
	if err != nil {
		log.Printf("Failed to read %s for product %d: %v", models.MetaDesignImageID, productID, err)
	} else if rawID != "" {
		if id, parseErr := strconv.ParseInt(rawID, 10, 64); parseErr == nil {
			record.AttachmentID = id
		}
	}

	rawURL, err := s.metaRepo.Get(ctx, productID, models.MetaDesignImageURL)
	if err != nil {
		log.Printf("Failed to read %s for product %d: %v", models.MetaDesignImageURL, productID, err)
	} else {
		record.ImageURL = rawURL
	}

	if cacheErr := s.cacheService.SetDesignImage(ctx, record, recordCacheTTL); cacheErr != nil {
		log.Printf("Failed to cache design image %d: %v", productID, cacheErr)
	}

	return record
}

func (s *resolverService) Resolve(ctx context.Context, productID int64) *models.Resolution {
	record := s.Record(ctx, productID)

	if record.AttachmentID != 0 {
		if resolution := s.resolveAttachment(ctx, record.AttachmentID); resolution != nil {
			return resolution
		}
	}

	if record.ImageURL != "" {
		return &models.Resolution{
			PreviewURL:  record.ImageURL,
			OriginalURL: record.ImageURL,
			Source:      models.SourceURL,
		}
	}

	return &models.Resolution{Source: models.SourceNone}
}

func (s *resolverService) resolveAttachment(ctx context.Context, attachmentID int64) *models.Resolution {
	attachment, err := s.attachmentRepo.GetByID(ctx, attachmentID)
	if err != nil {
		log.Printf("Failed to load attachment %d: %v", attachmentID, err)
		return nil
	}
	if attachment == nil {
		return nil
	}

	original, err := s.minioService.PresignedURL(ctx, s.bucket, attachment.ObjectKey, s.presignExpiry)
	if err != nil {
		log.Printf("Failed to presign attachment %d: %v", attachmentID, err)
		return nil
	}

	// Preview prefers the medium rendition, falling back to the original
	preview := original
	if attachment.MediumObjectKey != nil && *attachment.MediumObjectKey != "" {
		if mediumURL, err := s.minioService.PresignedURL(ctx, s.bucket, *attachment.MediumObjectKey, s.presignExpiry); err == nil {
			preview = mediumURL
		} else {
			log.Printf("Failed to presign medium rendition for attachment %d: %v", attachmentID, err)
		}
	}

	return &models.Resolution{
		PreviewURL:  preview,
		OriginalURL: original,
		Source:      models.SourceAttachment,
	}
}
