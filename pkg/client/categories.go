package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type CategoryList struct {
	Categories []Category `json:"categories"`
	TotalPage  int        `json:"totalPage"`
	TotalData  int        `json:"totalData"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type ListCategoriesOptions struct {
	Page    int
	Limit   int
	SortBy  string
	SortDir string
}

func (o ListCategoriesOptions) query() url.Values {
	query := url.Values{}

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

func (c *Client) ListCategories(ctx context.Context, opts ListCategoriesOptions) (*CategoryList, error) {
	list := CategoryList{}
	if err := c.do(ctx, http.MethodGet, "/categories", opts.query(), nil, &list, false); err != nil {
		return nil, err
	}

	return &list, nil
}

func (c *Client) GetCategory(ctx context.Context, id string) (*Category, error) {
	category := Category{}
	if err := c.do(ctx, http.MethodGet, "/categories/"+id, nil, nil, &category, false); err != nil {
		return nil, err
	}

	return &category, nil
}

func (c *Client) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	category := Category{}
	if err := c.do(ctx, http.MethodPost, "/categories", nil, req, &category, true); err != nil {
		return nil, err
	}

	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, req UpdateCategoryRequest) (*Category, error) {
	category := Category{}
	if err := c.do(ctx, http.MethodPatch, "/categories/"+id, nil, req, &category, true); err != nil {
		return nil, err
	}

	return &category, nil
}

// DeleteCategory removes a category. A category still referenced by projects
// fails with a 409 APIError.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+id, nil, nil, nil, true)
}
