package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

type UploadedImage struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
}

type DeleteImagesRequest struct {
	ImageURLs []string `json:"imageUrls"`
}

// UploadImage streams an image to object storage and returns its public URL.
// fileName is the original name, used to keep the extension.
func (c *Client) UploadImage(ctx context.Context, fileName string, content io.Reader) (*UploadedImage, error) {
	if c.session == nil {
		return nil, ErrNoSession
	}

	buf := bytes.Buffer{}
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}

	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("copying file content: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/storage/images", &buf)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.session.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	env := envelope{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, fmt.Errorf("decoding response: %w", err)
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		message := http.StatusText(resp.StatusCode)

		switch {
		case env.Error != nil:
			message = *env.Error
		case env.Message != nil:
			message = *env.Message
		}

		return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	uploaded := UploadedImage{}
	if err := json.Unmarshal(env.Data, &uploaded); err != nil {
		return nil, fmt.Errorf("decoding response data: %w", err)
	}

	return &uploaded, nil
}

// DeleteImages removes previously uploaded images by their public URLs.
func (c *Client) DeleteImages(ctx context.Context, imageURLs []string) error {
	req := DeleteImagesRequest{ImageURLs: imageURLs}

	return c.do(ctx, http.MethodDelete, "/storage/images", nil, req, nil, true)
}
