package validator_test

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"atelier/shared/failure"
	"atelier/shared/validator"
)

type testRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Limit int    `json:"limit" validate:"gte=0,lte=100"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        testRequest
		expectError bool
	}{
		{
			name:        "valid struct",
			data:        testRequest{Name: "Jane", Email: "jane@example.com", Limit: 10},
			expectError: false,
		},
		{
			name:        "missing required field",
			data:        testRequest{Email: "jane@example.com"},
			expectError: true,
		},
		{
			name:        "invalid email",
			data:        testRequest{Name: "Jane", Email: "not-an-email"},
			expectError: true,
		},
		{
			name:        "limit out of range",
			data:        testRequest{Name: "Jane", Limit: 101},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}

				if failure.GetCode(err) != 400 {
					t.Errorf("expected a bad request failure, got code %d", failure.GetCode(err))
				}
			} else if err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid body",
			body:        `{"name":"Jane","email":"jane@example.com"}`,
			expectError: false,
		},
		{
			name:        "malformed json",
			body:        `{"name":`,
			expectError: true,
		},
		{
			name:        "valid json failing validation",
			body:        `{"email":"jane@example.com"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := testRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid url",
			field:       "https://example.com/image.jpg",
			tag:         "url",
			expectError: false,
		},
		{
			name:        "invalid url",
			field:       "not a url",
			tag:         "url",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
		})
	}
}

type uploadRequest struct {
	Image *multipart.FileHeader `validate:"required,mimetypes=image/png image/jpeg,maxfilesize=10"`
}

func fileHeader(contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)

	return &multipart.FileHeader{
		Filename: "photo.png",
		Header:   header,
		Size:     size,
	}
}

func TestFileValidation(t *testing.T) {
	tests := []struct {
		name        string
		file        *multipart.FileHeader
		expectError bool
	}{
		{
			name:        "allowed type within size",
			file:        fileHeader("image/png", 1024),
			expectError: false,
		},
		{
			name:        "disallowed content type",
			file:        fileHeader("application/pdf", 1024),
			expectError: true,
		},
		{
			name:        "file too large",
			file:        fileHeader("image/png", 11*1024*1024),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := uploadRequest{Image: tt.file}
			err := validator.ValidateStruct(&req)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
		})
	}
}
