package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"atelier/internal/domains/project/model"
	"atelier/internal/domains/project/model/dto"
	gDto "atelier/shared/dto"
)

func TestDeserializeGallery(t *testing.T) {
	mainImage := "https://example.com/main.jpg"

	tests := []struct {
		name   string
		stored string
		want   []string
	}{
		{
			name:   "stored list",
			stored: `["https://example.com/a.jpg","https://example.com/b.jpg"]`,
			want:   []string{"https://example.com/a.jpg", "https://example.com/b.jpg"},
		},
		{
			name:   "empty string collapses to main image",
			stored: "",
			want:   []string{mainImage},
		},
		{
			name:   "whitespace collapses to main image",
			stored: "   ",
			want:   []string{mainImage},
		},
		{
			name:   "invalid json collapses to main image",
			stored: "{not json",
			want:   []string{mainImage},
		},
		{
			name:   "empty list collapses to main image",
			stored: "[]",
			want:   []string{mainImage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.DeserializeGallery(tt.stored, mainImage))
		})
	}
}

func TestSerializeGalleryRoundTrip(t *testing.T) {
	urls := []string{"https://example.com/a.jpg", "https://example.com/b.jpg"}

	stored := dto.SerializeGallery(urls)
	assert.Equal(t, urls, dto.DeserializeGallery(stored, "unused"))
}

func TestCreateProjectRequestToModel(t *testing.T) {
	published := false

	tests := []struct {
		name          string
		req           dto.CreateProjectRequest
		wantPublished bool
		wantGallery   string
	}{
		{
			name: "defaults",
			req: dto.CreateProjectRequest{
				Title:    "Walnut Dining Table",
				ImageURL: "https://example.com/table.jpg",
			},
			wantPublished: true,
			wantGallery:   `["https://example.com/table.jpg"]`,
		},
		{
			name: "explicit values",
			req: dto.CreateProjectRequest{
				Title:       "Walnut Dining Table",
				ImageURL:    "https://example.com/table.jpg",
				Gallery:     []string{"https://example.com/a.jpg"},
				IsPublished: &published,
			},
			wantPublished: false,
			wantGallery:   `["https://example.com/a.jpg"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project := tt.req.ToModel("admin-1")

			assert.NotEmpty(t, project.ID)
			assert.Equal(t, tt.wantPublished, project.IsPublished)
			assert.JSONEq(t, tt.wantGallery, project.Gallery)
			assert.Equal(t, "admin-1", project.CreatedBy)
		})
	}
}

func TestUpdateProjectRequestIsEmpty(t *testing.T) {
	gallery := []string{}
	published := true
	clearedVideo := ""

	tests := []struct {
		name string
		req  dto.UpdateProjectRequest
		want bool
	}{
		{name: "empty", req: dto.UpdateProjectRequest{}, want: true},
		{name: "title set", req: dto.UpdateProjectRequest{Title: "x"}, want: false},
		{name: "gallery present but empty", req: dto.UpdateProjectRequest{Gallery: &gallery}, want: false},
		{name: "publish flag set", req: dto.UpdateProjectRequest{IsPublished: &published}, want: false},
		{name: "video link cleared", req: dto.UpdateProjectRequest{VideoURL: &clearedVideo}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.IsEmpty())
		})
	}
}

func TestBuildFilter(t *testing.T) {
	published := true

	t.Run("empty inputs produce no clauses", func(t *testing.T) {
		group := dto.BuildFilter("", "", nil)

		where, args := group.GetWhereClause()
		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("title matches title or description", func(t *testing.T) {
		group := dto.BuildFilter("  walnut ", "", nil)

		where, args := group.GetWhereClause()
		assert.Contains(t, where, model.TableName+"."+model.FieldTitle)
		assert.Contains(t, where, model.TableName+"."+model.FieldDescription)
		assert.Contains(t, where, " "+gDto.FilterGroupOperatorOr+" ")
		assert.Equal(t, "%walnut%", args[model.FieldTitle])
	})

	t.Run("all filters combined with AND", func(t *testing.T) {
		group := dto.BuildFilter("walnut", "9f3b8a3e-0be7-4a65-a7ee-5c04c33cf866", &published)

		where, args := group.GetWhereClause()
		assert.Contains(t, where, model.TableName+"."+model.FieldCategoryID)
		assert.Contains(t, where, model.TableName+"."+model.FieldIsPublished)
		assert.Equal(t, "9f3b8a3e-0be7-4a65-a7ee-5c04c33cf866", args[model.FieldCategoryID])
		assert.Equal(t, true, args[model.FieldIsPublished])
	})
}
