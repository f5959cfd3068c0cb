// Package remote implements ports.FileStore against an HTTP file-storage
// service authenticated with a bearer token.
//
// The service exposes a small JSON API:
//
//	GET  /v1/files           list file metadata
//	POST /v1/files           create a file {"name","content"}
//	GET  /v1/files/{id}      fetch metadata plus content
//	GET  /v1/files/{id}/meta fetch metadata only
//	PUT  /v1/files/{id}      replace content {"content"}
//
// Modification timestamps are RFC 3339. The client performs no retries;
// retry policy belongs to the caller.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/seanwalsh/declog/internal/domain/ports"
)

// DefaultTimeout bounds each remote operation when the caller's context
// carries no deadline.
const DefaultTimeout = 15 * time.Second

// Options configures the remote client.
type Options struct {
	BaseURL    string
	Tokens     ports.TokenSource
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
}

// Client talks to the remote file-storage service.
type Client struct {
	baseURL    string
	tokens     ports.TokenSource
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
}

// fileJSON is the wire shape of a file descriptor, with optional content.
type fileJSON struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	ModifiedAt time.Time       `json:"modifiedAt"`
	Content    json.RawMessage `json:"content,omitempty"`
}

type listJSON struct {
	Files []fileJSON `json:"files"`
}

// NewClient creates a remote file store client.
func NewClient(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("remote base URL is required")
	}
	if opts.Tokens == nil {
		return nil, fmt.Errorf("token source is required")
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		tokens:     opts.Tokens,
		httpClient: httpClient,
		timeout:    timeout,
		userAgent:  strings.TrimSpace(opts.UserAgent),
	}, nil
}

// List returns descriptors for all files visible to the account.
func (c *Client) List(ctx context.Context) ([]ports.FileDescriptor, error) {
	var resp listJSON
	if err := c.do(ctx, http.MethodGet, "/v1/files", nil, &resp); err != nil {
		return nil, err
	}
	out := make([]ports.FileDescriptor, 0, len(resp.Files))
	for _, f := range resp.Files {
		out = append(out, ports.FileDescriptor{ID: f.ID, Name: f.Name, Modified: f.ModifiedAt})
	}
	return out, nil
}

// Create writes a new remote file.
func (c *Client) Create(ctx context.Context, name string, data []byte) (ports.FileDescriptor, error) {
	body := fileJSON{Name: name, Content: json.RawMessage(data)}
	var resp fileJSON
	if err := c.do(ctx, http.MethodPost, "/v1/files", &body, &resp); err != nil {
		return ports.FileDescriptor{}, err
	}
	return ports.FileDescriptor{ID: resp.ID, Name: resp.Name, Modified: resp.ModifiedAt}, nil
}

// Read fetches a file's raw bytes and the modification timestamp observed at
// fetch time.
func (c *Client) Read(ctx context.Context, fileID string) ([]byte, time.Time, error) {
	var resp fileJSON
	if err := c.do(ctx, http.MethodGet, "/v1/files/"+fileID, nil, &resp); err != nil {
		return nil, time.Time{}, err
	}
	return []byte(resp.Content), resp.ModifiedAt, nil
}

// Stat fetches a file's current metadata.
func (c *Client) Stat(ctx context.Context, fileID string) (ports.FileDescriptor, error) {
	var resp fileJSON
	if err := c.do(ctx, http.MethodGet, "/v1/files/"+fileID+"/meta", nil, &resp); err != nil {
		return ports.FileDescriptor{}, err
	}
	return ports.FileDescriptor{ID: resp.ID, Name: resp.Name, Modified: resp.ModifiedAt}, nil
}

// Write replaces a file's content and returns the new modification
// timestamp.
func (c *Client) Write(ctx context.Context, fileID string, data []byte) (time.Time, error) {
	body := fileJSON{Content: json.RawMessage(data)}
	var resp fileJSON
	if err := c.do(ctx, http.MethodPut, "/v1/files/"+fileID, &body, &resp); err != nil {
		return time.Time{}, err
	}
	return resp.ModifiedAt, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(token) == "" {
		return &ports.AuthError{Reason: "empty bearer token"}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ports.TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ports.TransportError{Op: method + " " + path, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &ports.AuthError{Reason: serviceMessage(resp.StatusCode, respBody)}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &ports.TransportError{
			Op:  method + " " + path,
			Err: fmt.Errorf("%s", serviceMessage(resp.StatusCode, respBody)),
		}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &ports.TransportError{Op: method + " " + path, Err: fmt.Errorf("decoding response: %w", err)}
		}
	}
	return nil
}

// serviceMessage extracts a human-readable message from an error response.
func serviceMessage(status int, body []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &parsed) == nil {
		if parsed.Message != "" {
			return fmt.Sprintf("status %d: %s", status, parsed.Message)
		}
		if parsed.Error != "" {
			return fmt.Sprintf("status %d: %s", status, parsed.Error)
		}
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return fmt.Sprintf("status %d", status)
	}
	return fmt.Sprintf("status %d: %s", status, msg)
}
