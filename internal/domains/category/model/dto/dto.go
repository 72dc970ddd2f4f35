package dto

import (
	"atelier/internal/domains/category/model"
	"atelier/shared"
	"atelier/shared/constant"
	gDto "atelier/shared/dto"
	gModel "atelier/shared/model"
	"atelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,max=2048"`
}

func (c *CreateCategoryRequest) ToModel(admin string) model.Category {
	return model.Category{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  admin,
			ModifiedBy: admin,
		},
	}
}

type UpdateCategoryRequest struct {
	Name        string `db:"name" json:"name" validate:"omitempty,max=255"`
	Description string `db:"description" json:"description" validate:"omitempty"`
	ImageURL    string `db:"image_url" json:"imageUrl" validate:"omitempty,max=2048"`
}

func (u *UpdateCategoryRequest) IsEmpty() bool {
	return u.Name == constant.Empty &&
		u.Description == constant.Empty &&
		u.ImageURL == constant.Empty
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	gDto.Metadata
}

func (r *CategoryResponse) FromModel(model model.Category) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.ImageURL = model.ImageURL
	r.Metadata.FromModel(model.Metadata)
}

type GetCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	TotalPage  int                `json:"totalPage"`
	TotalData  int                `json:"totalData"`
}

func (r *GetCategoriesResponse) FromModels(models []model.Category, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Categories = make([]CategoryResponse, len(models))
	for i, mod := range models {
		r.Categories[i].FromModel(mod)
	}
}
