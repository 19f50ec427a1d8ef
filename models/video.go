package models

import "time"

// Video is a catalog record describing one uploaded media object.
// It is created on upload and never mutated afterwards.
//
// JSON field names follow the wire format the web client was built against.
type Video struct {
	// VideoID is the catalog identifier (UUID in canonical form).
	VideoID string `json:"_id"`

	// FileName is the original name of the uploaded file.
	FileName string `json:"title"`

	// StorageKey is the object key inside the media bucket.
	StorageKey string `json:"path"`

	// Title is the user supplied title.
	Title string `json:"vidtitle"`

	// Category is the user supplied category used for filtering.
	Category string `json:"vidcategory"`

	// Description is free-form text.
	Description string `json:"viddescription"`

	// CreatedAt is the upload time.
	CreatedAt time.Time `json:"uploadedAt"`
}

// TableName returns the name of the database table
// associated with the Video model.
func (v Video) TableName() string {
	return "videos"
}

// VideoWithURL is a catalog record enriched with a time-bounded download URL.
type VideoWithURL struct {
	Video
	URL string `json:"url"`
}

// VideoFilter narrows catalog listings. Zero value lists everything.
type VideoFilter struct {
	// Category, when non-empty, selects videos of exactly this category.
	Category string

	// IDs, when non-nil, restricts the result to these identifiers.
	IDs []string
}

// VideoUpload carries an uploaded media object together with its metadata.
type VideoUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Title       string
	Category    string
	Description string
}
