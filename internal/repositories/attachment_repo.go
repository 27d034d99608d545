package repositories

import (
	"context"
	"errors"

	"designmeta/internal/models"

	"github.com/jackc/pgx/v5"
)

// AttachmentRepository records media-library assets. GetByID returns
// (nil, nil) for unknown ids: a dangling attachment reference is a normal
// degraded state, not an error.
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *models.Attachment) error
	GetByID(ctx context.Context, id int64) (*models.Attachment, error)
	Delete(ctx context.Context, id int64) error
}

type attachmentRepo struct {
	db DB
}

func NewAttachmentRepository(db DB) AttachmentRepository {
	return &attachmentRepo{db: db}
}

func (r *attachmentRepo) Create(ctx context.Context, attachment *models.Attachment) error {
	query := `
		INSERT INTO attachments (object_key, medium_object_key, content_type, size, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		attachment.ObjectKey,
		attachment.MediumObjectKey,
		attachment.ContentType,
		attachment.Size,
	).Scan(&attachment.ID, &attachment.CreatedAt)
}

func (r *attachmentRepo) GetByID(ctx context.Context, id int64) (*models.Attachment, error) {
	query := `
		SELECT id, object_key, medium_object_key, content_type, size, created_at
		FROM attachments
		WHERE id = $1
	`
	attachment := &models.Attachment{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&attachment.ID,
		&attachment.ObjectKey,
		&attachment.MediumObjectKey,
		&attachment.ContentType,
		&attachment.Size,
		&attachment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return attachment, nil
}

func (r *attachmentRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM attachments WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
