// Package client is a typed Go client for the PhixelForge HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/phixelforge/internal/models"
	"github.com/sbilibin2017/phixelforge/internal/services"
)

// DefaultPollInterval is the StreamImages refresh interval.
const DefaultPollInterval = 5 * time.Second

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Option configures a Client.
type Option func(*Client)

// WithToken sends token as a bearer token on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithPollInterval sets the StreamImages refresh interval.
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithOverlapPolicy sets what StreamImages does when a tick fires while a fetch is still running.
func WithOverlapPolicy(p OverlapPolicy) Option {
	return func(c *Client) { c.overlap = p }
}

// Client calls the API at baseURL.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	interval   time.Duration
	overlap    OverlapPolicy
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		interval:   DefaultPollInterval,
		overlap:    OverlapSkip,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateImageInput is the body of CreateImage.
type CreateImageInput struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	FilePath    string   `json:"file_path"`
	FileSize    *int64   `json:"file_size,omitempty"`
	MimeType    *string  `json:"mime_type,omitempty"`
	Width       *int     `json:"width,omitempty"`
	Height      *int     `json:"height,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsPublic    *bool    `json:"is_public,omitempty"`
}

// CreateAlbumInput is the body of CreateAlbum.
type CreateAlbumInput struct {
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	CoverImageID *string `json:"coverImageId,omitempty"`
}

// GetPublicImages returns a page of the public gallery.
func (c *Client) GetPublicImages(ctx context.Context, limit, offset int) ([]models.Image, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	var out struct {
		Images []models.Image `json:"images"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/images?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out.Images, nil
}

// GetUserImages returns the caller's images, newest first.
func (c *Client) GetUserImages(ctx context.Context) ([]models.Image, error) {
	var out struct {
		Images []models.Image `json:"images"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/images/user", nil, &out); err != nil {
		return nil, err
	}
	return out.Images, nil
}

func (c *Client) CreateImage(ctx context.Context, in CreateImageInput) (*models.Image, error) {
	var out struct {
		Image *models.Image `json:"image"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/images", in, &out); err != nil {
		return nil, err
	}
	return out.Image, nil
}

// SaveImage stores a legacy record as a public image and returns the new image id.
func (c *Client) SaveImage(ctx context.Context, rec models.ImageRecord) (string, error) {
	title, tags := services.DescribePrompt(rec.Prompt)
	mimeType := services.MimeTypeFromDataURI(rec.ImageData, "image/png")
	public := true

	image, err := c.CreateImage(ctx, CreateImageInput{
		Title:       &title,
		Description: &rec.Prompt,
		FilePath:    rec.ImageData,
		MimeType:    &mimeType,
		Tags:        tags,
		IsPublic:    &public,
	})
	if err != nil {
		return "", err
	}
	return image.ID.String(), nil
}

func (c *Client) ToggleLike(ctx context.Context, imageID uuid.UUID) (*models.LikeState, error) {
	var out models.LikeState
	body := map[string]string{"imageId": imageID.String()}
	if err := c.do(ctx, http.MethodPost, "/api/likes", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetLikeStatus(ctx context.Context, imageID uuid.UUID) (*models.LikeState, error) {
	var out models.LikeState
	if err := c.do(ctx, http.MethodGet, "/api/likes?imageId="+url.QueryEscape(imageID.String()), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUserAlbums(ctx context.Context) ([]models.Album, error) {
	var out struct {
		Albums []models.Album `json:"albums"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/albums", nil, &out); err != nil {
		return nil, err
	}
	return out.Albums, nil
}

func (c *Client) CreateAlbum(ctx context.Context, in CreateAlbumInput) (*models.Album, error) {
	var out struct {
		Album *models.Album `json:"album"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/albums", in, &out); err != nil {
		return nil, err
	}
	return out.Album, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&e)
		if e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
