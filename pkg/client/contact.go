package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type ContactMessage struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	ProjectType string `json:"projectType,omitempty"`
	Message     string `json:"message"`
	PreferPhone bool   `json:"preferPhone"`
	PreferEmail bool   `json:"preferEmail"`
	IsRead      bool   `json:"isRead"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type ContactMessageList struct {
	Messages  []ContactMessage `json:"messages"`
	TotalPage int              `json:"totalPage"`
	TotalData int              `json:"totalData"`
}

type CreateContactMessageRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	ProjectType string `json:"projectType,omitempty"`
	Message     string `json:"message"`
	PreferPhone bool   `json:"preferPhone"`
	PreferEmail bool   `json:"preferEmail"`
}

type CreateContactMessageResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

type ListContactMessagesOptions struct {
	IsRead  *bool
	Page    int
	Limit   int
	SortBy  string
	SortDir string
}

func (o ListContactMessagesOptions) query() url.Values {
	query := url.Values{}

	if o.IsRead != nil {
		query.Set("isRead", strconv.FormatBool(*o.IsRead))
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

// SubmitContactMessage posts the public contact form. No session needed.
func (c *Client) SubmitContactMessage(ctx context.Context, req CreateContactMessageRequest) (*CreateContactMessageResponse, error) {
	res := CreateContactMessageResponse{}
	if err := c.do(ctx, http.MethodPost, "/contact", nil, req, &res, false); err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *Client) ListContactMessages(ctx context.Context, opts ListContactMessagesOptions) (*ContactMessageList, error) {
	list := ContactMessageList{}
	if err := c.do(ctx, http.MethodGet, "/contact", opts.query(), nil, &list, true); err != nil {
		return nil, err
	}

	return &list, nil
}

func (c *Client) GetContactMessage(ctx context.Context, id string) (*ContactMessage, error) {
	message := ContactMessage{}
	if err := c.do(ctx, http.MethodGet, "/contact/"+id, nil, nil, &message, true); err != nil {
		return nil, err
	}

	return &message, nil
}

func (c *Client) MarkContactMessageRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPatch, "/contact/"+id+"/read", nil, nil, nil, true)
}

func (c *Client) DeleteContactMessage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/contact/"+id, nil, nil, nil, true)
}
