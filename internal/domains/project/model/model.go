package model

import "atelier/shared/model"

const (
	TableName  = "projects"
	EntityName = "project"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategoryID  = "category_id"
	FieldImageURL    = "image_url"
	FieldGallery     = "gallery"
	FieldVideoURL    = "video_url"
	FieldIsPublished = "is_published"
)

// Project persists the gallery as serialized JSON text. An empty stored
// gallery collapses to the single main image when materialized.
type Project struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	CategoryID  string `db:"category_id"`
	ImageURL    string `db:"image_url"`
	Gallery     string `db:"gallery"`
	VideoURL    string `db:"video_url"`
	IsPublished bool   `db:"is_published"`
	model.Metadata
}
