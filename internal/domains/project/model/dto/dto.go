package dto

import (
	"encoding/json"
	"strings"

	"atelier/internal/domains/project/model"
	"atelier/shared"
	"atelier/shared/constant"
	gDto "atelier/shared/dto"
	gModel "atelier/shared/model"
	"atelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description" validate:"required"`
	CategoryID  string   `json:"categoryId" validate:"required,uuid4"`
	ImageURL    string   `json:"imageUrl" validate:"required,max=2048"`
	Gallery     []string `json:"gallery" validate:"omitempty,dive,max=2048"`
	VideoURL    string   `json:"videoUrl" validate:"omitempty,max=2048"`
	IsPublished *bool    `json:"isPublished" validate:"omitempty"`
}

func (c *CreateProjectRequest) ToModel(admin string) model.Project {
	published := true
	if c.IsPublished != nil {
		published = *c.IsPublished
	}

	gallery := c.Gallery
	if len(gallery) == 0 {
		gallery = []string{c.ImageURL}
	}

	return model.Project{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		CategoryID:  c.CategoryID,
		ImageURL:    c.ImageURL,
		Gallery:     SerializeGallery(gallery),
		VideoURL:    c.VideoURL,
		IsPublished: published,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  admin,
			ModifiedBy: admin,
		},
	}
}

// UpdateProjectRequest carries the partial update. Gallery has no db tag
// because omission and an explicit list must be told apart; the service
// serializes it only when the field is present. VideoURL is a pointer for
// the same reason, so an explicit empty string clears the stored link.
type UpdateProjectRequest struct {
	Title       string    `db:"title" json:"title" validate:"omitempty,max=255"`
	Description string    `db:"description" json:"description" validate:"omitempty"`
	CategoryID  string    `db:"category_id" json:"categoryId" validate:"omitempty,uuid4"`
	ImageURL    string    `db:"image_url" json:"imageUrl" validate:"omitempty,max=2048"`
	Gallery     *[]string `json:"gallery" validate:"omitempty,dive,max=2048"`
	VideoURL    *string   `db:"video_url" json:"videoUrl" validate:"omitempty,max=2048"`
	IsPublished *bool     `db:"is_published" json:"isPublished" validate:"omitempty"`
}

func (u *UpdateProjectRequest) IsEmpty() bool {
	return u.Title == constant.Empty &&
		u.Description == constant.Empty &&
		u.CategoryID == constant.Empty &&
		u.ImageURL == constant.Empty &&
		u.Gallery == nil &&
		u.VideoURL == nil &&
		u.IsPublished == nil
}

type ProjectResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CategoryID  string   `json:"categoryId"`
	ImageURL    string   `json:"imageUrl"`
	Gallery     []string `json:"gallery"`
	VideoURL    string   `json:"videoUrl,omitempty"`
	IsPublished bool     `json:"isPublished"`
	gDto.Metadata
}

func (r *ProjectResponse) FromModel(model model.Project) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.CategoryID = model.CategoryID
	r.ImageURL = model.ImageURL
	r.Gallery = DeserializeGallery(model.Gallery, model.ImageURL)
	r.VideoURL = model.VideoURL
	r.IsPublished = model.IsPublished
	r.Metadata.FromModel(model.Metadata)
}

type GetProjectsResponse struct {
	Projects  []ProjectResponse `json:"projects"`
	TotalPage int               `json:"totalPage"`
	TotalData int               `json:"totalData"`
}

func (r *GetProjectsResponse) FromModels(models []model.Project, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Projects = make([]ProjectResponse, len(models))
	for i, mod := range models {
		r.Projects[i].FromModel(mod)
	}
}

// SerializeGallery stores the ordered URL list as JSON text.
func SerializeGallery(urls []string) string {
	raw, err := json.Marshal(urls)
	if err != nil {
		return constant.Empty
	}

	return string(raw)
}

// DeserializeGallery parses the stored gallery text. Empty, invalid or
// zero-length values collapse to the single main image so the gallery a
// client sees is never empty.
func DeserializeGallery(stored, imageURL string) []string {
	if strings.TrimSpace(stored) == constant.Empty {
		return []string{imageURL}
	}

	var urls []string
	if err := json.Unmarshal([]byte(stored), &urls); err != nil || len(urls) == 0 {
		return []string{imageURL}
	}

	return urls
}

// BuildFilter translates the list query into the repository filter tree.
// A title term matches title or description case-insensitively; blank
// terms are dropped.
func BuildFilter(title, categoryID string, onlyPublished *bool) gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if term := strings.TrimSpace(title); term != constant.Empty {
		group.Filters = append(group.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldTitle,
					Value:    term,
					Operator: gDto.FilterOperatorLike,
					Table:    model.TableName,
				},
				gDto.Filter{
					Field:    model.FieldDescription,
					Value:    term,
					Operator: gDto.FilterOperatorLike,
					Table:    model.TableName,
				},
			},
		})
	}

	if categoryID != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldCategoryID,
			Value:    categoryID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if onlyPublished != nil && *onlyPublished {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldIsPublished,
			Value:    true,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return group
}
