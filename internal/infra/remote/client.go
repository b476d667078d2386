// Package remote talks to the external e-commerce REST API that owns
// products and orders.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"example.com/admin-console/internal/usecase/resource"
)

// maxErrorBody bounds how much of an error response is read for its message.
const maxErrorBody = 64 << 10

type Client struct {
	baseURL *url.URL
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api base url %q must be absolute", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: u, http: httpClient}, nil
}

func (c *Client) endpoint(segments ...string) string {
	escaped := make([]string, 0, len(segments))
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	return c.baseURL.JoinPath(escaped...).String()
}

// do sends a request and decodes a 2xx JSON body into out when out is set.
// Any other status becomes a *resource.RemoteError.
func (c *Client) do(ctx context.Context, method, target, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeRemoteError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, req.URL.Path, err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, target string, payload any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return err
	}
	return c.do(ctx, method, target, "application/json", &buf, nil)
}

type errorPayload struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func decodeRemoteError(resp *http.Response) error {
	remoteErr := &resource.RemoteError{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return remoteErr
	}
	var payload errorPayload
	if json.Unmarshal(raw, &payload) == nil {
		remoteErr.Message = payload.Message
		if remoteErr.Message == "" {
			remoteErr.Message = payload.Error
		}
	}
	return remoteErr
}

// notFound tags a 404 answer with the domain's not-found error, keeping the
// *resource.RemoteError reachable for its message.
func notFound(err, sentinel error) error {
	if resource.StatusCode(err) == http.StatusNotFound {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return err
}
