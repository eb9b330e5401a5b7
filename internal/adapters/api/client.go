package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fincoach/fincoach-cli/internal/domain"
	"github.com/google/uuid"
)

const (
	defaultTimeout  = 30 * time.Second
	maxResponseSize = 1 << 20
)

// Client is the one configured HTTP client every view talks through. It
// attaches the current session token as a bearer credential and reduces
// every failure to a *domain.APIError.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      func() string
}

// NewClient builds a client rooted at baseURL (which already carries the
// /api/v1 prefix). token is consulted per request; it returns "" while
// unauthenticated. A nil httpClient gets a bounded-timeout default.
func NewClient(baseURL string, httpClient *http.Client, token func() string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if token == nil {
		token = func() string { return "" }
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		token:      token,
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &domain.APIError{Kind: domain.ErrorKindValidation, Message: "encode request: " + err.Error()}
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &domain.APIError{Kind: domain.ErrorKindNetwork, Message: err.Error()}
	}

	request.Header.Set("Accept", "application/json")
	request.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return &domain.APIError{Kind: domain.ErrorKindNetwork, Message: err.Error()}
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return &domain.APIError{Kind: domain.ErrorKindNetwork, Message: "read response: " + err.Error()}
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return &domain.APIError{
			Kind:       kindForStatus(response.StatusCode),
			Message:    detailMessage(payload),
			StatusCode: response.StatusCode,
		}
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &domain.APIError{Kind: domain.ErrorKindServer, Message: "decode response: " + err.Error()}
	}

	return nil
}

func kindForStatus(status int) domain.ErrorKind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrorKindAuth
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrorKindValidation
	default:
		return domain.ErrorKindServer
	}
}

// detailMessage extracts the backend's {"detail": ...} field. FastAPI sends
// a string for application errors and a structured list for validation
// errors; anything unparseable falls back to the raw body.
func detailMessage(payload []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(payload, &envelope); err == nil && len(envelope.Detail) > 0 {
		var text string
		if err := json.Unmarshal(envelope.Detail, &text); err == nil {
			return text
		}
		return string(envelope.Detail)
	}

	return strings.TrimSpace(string(payload))
}
