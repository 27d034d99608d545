package models

import (
	"path"
	"time"
)

// Attachment is a media-library asset stored as an object in MinIO and
// referenced from product metadata by integer id. ObjectKey points at the
// original upload; MediumObjectKey, when present, points at a medium-sized
// rendition used for previews.
type Attachment struct {
	ID              int64     `json:"id" db:"id"`
	ObjectKey       string    `json:"object_key" db:"object_key"`
	MediumObjectKey *string   `json:"medium_object_key" db:"medium_object_key"`
	ContentType     string    `json:"content_type" db:"content_type"`
	Size            int64     `json:"size" db:"size"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// Filename derives the downloadable file name from the stored object key.
func (a *Attachment) Filename() string {
	return path.Base(a.ObjectKey)
}
