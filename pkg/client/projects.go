package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CategoryID  string   `json:"categoryId"`
	ImageURL    string   `json:"imageUrl"`
	Gallery     []string `json:"gallery"`
	VideoURL    string   `json:"videoUrl,omitempty"`
	IsPublished bool     `json:"isPublished"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type ProjectList struct {
	Projects  []Project `json:"projects"`
	TotalPage int       `json:"totalPage"`
	TotalData int       `json:"totalData"`
}

type CreateProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	CategoryID  string   `json:"categoryId"`
	ImageURL    string   `json:"imageUrl"`
	Gallery     []string `json:"gallery,omitempty"`
	VideoURL    string   `json:"videoUrl,omitempty"`
	IsPublished *bool    `json:"isPublished,omitempty"`
}

// UpdateProjectRequest carries a partial update. Nil or zero fields are left
// untouched server-side; a pointer to an empty string clears the video link.
type UpdateProjectRequest struct {
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	CategoryID  string    `json:"categoryId,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Gallery     *[]string `json:"gallery,omitempty"`
	VideoURL    *string   `json:"videoUrl,omitempty"`
	IsPublished *bool     `json:"isPublished,omitempty"`
}

type ListProjectsOptions struct {
	Title         string
	CategoryID    string
	OnlyPublished bool
	Page          int
	Limit         int
	SortBy        string
	SortDir       string
}

func (o ListProjectsOptions) query() url.Values {
	query := url.Values{}

	if o.Title != "" {
		query.Set("title", o.Title)
	}

	if o.CategoryID != "" {
		query.Set("categoryId", o.CategoryID)
	}

	if o.OnlyPublished {
		query.Set("onlyPublished", "true")
	}

	if o.Page > 0 {
		query.Set("page", strconv.Itoa(o.Page))
	}

	if o.Limit > 0 {
		query.Set("limit", strconv.Itoa(o.Limit))
	}

	if o.SortBy != "" {
		query.Set("sortBy", o.SortBy)
	}

	if o.SortDir != "" {
		query.Set("sortDir", o.SortDir)
	}

	return query
}

func (c *Client) ListProjects(ctx context.Context, opts ListProjectsOptions) (*ProjectList, error) {
	list := ProjectList{}
	if err := c.do(ctx, http.MethodGet, "/projects", opts.query(), nil, &list, false); err != nil {
		return nil, err
	}

	return &list, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (*Project, error) {
	project := Project{}
	if err := c.do(ctx, http.MethodGet, "/projects/"+id, nil, nil, &project, false); err != nil {
		return nil, err
	}

	return &project, nil
}

func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	project := Project{}
	if err := c.do(ctx, http.MethodPost, "/projects", nil, req, &project, true); err != nil {
		return nil, err
	}

	return &project, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, req UpdateProjectRequest) (*Project, error) {
	project := Project{}
	if err := c.do(ctx, http.MethodPatch, "/projects/"+id, nil, req, &project, true); err != nil {
		return nil, err
	}

	return &project, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+id, nil, nil, nil, true)
}
