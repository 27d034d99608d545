package models

// Metadata keys and external names. These are stable, externally-visible
// identifiers shared with the admin client and must not change.
const (
	MetaDesignImageID  = "_wcpd_design_image_id"
	MetaDesignImageURL = "_wcpd_design_image_url"

	ActionDownloadOriginal = "wcpd_download_original"

	CapabilityEditProducts = "edit_products"

	DefaultDownloadFilename = "design-image.jpg"
)

// DesignImageRecord is the per-product design image metadata. Both fields
// are independently optional: a zero AttachmentID and an empty ImageURL mean
// "not set", never an error.
type DesignImageRecord struct {
	ProductID    int64  `json:"product_id"`
	AttachmentID int64  `json:"attachment_id"`
	ImageURL     string `json:"image_url"`
}

// IsEmpty reports whether the record carries no image source at all.
func (r *DesignImageRecord) IsEmpty() bool {
	return r.AttachmentID == 0 && r.ImageURL == ""
}

// SourceKind identifies which source a resolved design image came from.
type SourceKind string

const (
	SourceAttachment SourceKind = "attachment"
	SourceURL        SourceKind = "url"
	SourceNone       SourceKind = "none"
)

// Resolution is the read-side view of a design image record: display and
// original URLs plus the source they were derived from. A resolution with
// SourceNone has empty URLs.
type Resolution struct {
	PreviewURL  string     `json:"preview_url"`
	OriginalURL string     `json:"original_url"`
	Source      SourceKind `json:"source"`
}
