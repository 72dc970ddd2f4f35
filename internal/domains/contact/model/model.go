package model

import "atelier/shared/model"

const (
	TableName  = "contact_messages"
	EntityName = "contact_message"

	FieldID          = "id"
	FieldName        = "name"
	FieldPhone       = "phone"
	FieldEmail       = "email"
	FieldProjectType = "project_type"
	FieldMessage     = "message"
	FieldPreferPhone = "prefer_phone"
	FieldPreferEmail = "prefer_email"
	FieldIsRead      = "is_read"
)

type ContactMessage struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Phone       string `db:"phone"`
	Email       string `db:"email"`
	ProjectType string `db:"project_type"`
	Message     string `db:"message"`
	PreferPhone bool   `db:"prefer_phone"`
	PreferEmail bool   `db:"prefer_email"`
	IsRead      bool   `db:"is_read"`
	model.Metadata
}
