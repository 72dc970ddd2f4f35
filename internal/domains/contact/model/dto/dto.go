package dto

import (
	"atelier/internal/domains/contact/model"
	"atelier/shared"
	gDto "atelier/shared/dto"
	gModel "atelier/shared/model"
	"atelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateContactMessageRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Phone       string `json:"phone" validate:"required,max=32"`
	Email       string `json:"email" validate:"omitempty,email,max=255"`
	ProjectType string `json:"projectType" validate:"omitempty,max=255"`
	Message     string `json:"message" validate:"required"`
	PreferPhone bool   `json:"preferPhone"`
	PreferEmail bool   `json:"preferEmail"`
}

func (c *CreateContactMessageRequest) ToModel(actor string) model.ContactMessage {
	return model.ContactMessage{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		ProjectType: c.ProjectType,
		Message:     c.Message,
		PreferPhone: c.PreferPhone,
		PreferEmail: c.PreferEmail,
		IsRead:      false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

// CreateContactMessageResponse acknowledges a public form submission.
type CreateContactMessageResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

type ContactMessageResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	ProjectType string `json:"projectType,omitempty"`
	Message     string `json:"message"`
	PreferPhone bool   `json:"preferPhone"`
	PreferEmail bool   `json:"preferEmail"`
	IsRead      bool   `json:"isRead"`
	gDto.Metadata
}

func (r *ContactMessageResponse) FromModel(model model.ContactMessage) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
	r.Email = model.Email
	r.ProjectType = model.ProjectType
	r.Message = model.Message
	r.PreferPhone = model.PreferPhone
	r.PreferEmail = model.PreferEmail
	r.IsRead = model.IsRead
	r.Metadata.FromModel(model.Metadata)
}

type GetContactMessagesResponse struct {
	Messages  []ContactMessageResponse `json:"messages"`
	TotalPage int                      `json:"totalPage"`
	TotalData int                      `json:"totalData"`
}

func (r *GetContactMessagesResponse) FromModels(models []model.ContactMessage, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Messages = make([]ContactMessageResponse, len(models))
	for i, mod := range models {
		r.Messages[i].FromModel(mod)
	}
}

// BuildFilter narrows the inbox listing by read state when the flag is set.
func BuildFilter(isRead *bool) gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if isRead != nil {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldIsRead,
			Value:    *isRead,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return group
}
