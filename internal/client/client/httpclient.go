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

	"github.com/dmitrijs2005/heritagewatch/internal/client/models"
	"github.com/dmitrijs2005/heritagewatch/internal/common"
)

const maxResponseSize = 4 << 20

type HTTPClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// HTTP exposes the underlying client so presigned uploads share its timeout.
func (c *HTTPClient) HTTP() *http.Client {
	return c.http
}

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func (c *HTTPClient) do(ctx context.Context, method, path, auth string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(common.APIKeyHeaderName, c.apiKey)
	if auth != "" {
		req.Header.Set(common.AuthenticationHeaderName, auth)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	var eb errorBody
	if len(raw) > 0 && raw[0] == '{' && json.Unmarshal(raw, &eb) == nil && eb.Error != "" {
		return &RemoteError{Status: resp.StatusCode, Code: eb.Code, Message: eb.Error}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		return &RemoteError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/health", "", nil, &resp); err != nil {
		return err
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, "/account", "", models.Credentials{Email: email, Password: password}, nil)
}

func (c *HTTPClient) CreateSession(ctx context.Context, email, password string) (*models.Session, error) {
	var s models.Session
	if err := c.do(ctx, http.MethodPost, "/account/session", "", models.Credentials{Email: email, Password: password}, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) DeleteSession(ctx context.Context, auth, sessionID string) error {
	return c.do(ctx, http.MethodDelete, "/account/session/"+url.PathEscape(sessionID), auth, nil, nil)
}

func (c *HTTPClient) ListReports(ctx context.Context, auth string) ([]models.Report, error) {
	var reports []models.Report
	if err := c.do(ctx, http.MethodGet, "/har/report", auth, nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *HTTPClient) CreateReport(ctx context.Context, auth string, report *models.NewReport) (*models.Report, error) {
	var r models.Report
	if err := c.do(ctx, http.MethodPost, "/har/report", auth, report, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) DeleteReport(ctx context.Context, auth, reportID string) error {
	return c.do(ctx, http.MethodDelete, "/har/report/"+url.PathEscape(reportID), auth, nil, nil)
}

func (c *HTTPClient) PresignPhotoUpload(ctx context.Context, auth, contentType string) (*models.PhotoUpload, error) {
	in := struct {
		ContentType string `json:"content_type"`
	}{ContentType: contentType}

	var u models.PhotoUpload
	if err := c.do(ctx, http.MethodPost, "/har/report/upload", auth, in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) PhotoPage(ctx context.Context, page, limit int) ([]models.PhotoStub, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var stubs []models.PhotoStub
	if err := c.do(ctx, http.MethodGet, "/photos?"+q.Encode(), "", nil, &stubs); err != nil {
		return nil, err
	}
	return stubs, nil
}

func (c *HTTPClient) Photo(ctx context.Context, photoID string) (*models.Photo, error) {
	var p models.Photo
	if err := c.do(ctx, http.MethodGet, "/photos/"+url.PathEscape(photoID), "", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) SubmitTranslation(ctx context.Context, photoID string, t models.Translation) error {
	return c.do(ctx, http.MethodPost, "/photos/"+url.PathEscape(photoID)+"/translations", "", t, nil)
}
