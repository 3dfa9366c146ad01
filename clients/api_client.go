package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "storefront-bff/errors"
)

// APIClient is the thin wrapper over the upstream storefront REST API. Every
// request goes to the configured base URL under /api and carries whatever
// upstream session cookies the calling session holds.
type APIClient struct {
	baseURL  string
	mediaURL string
	client   *http.Client
}

func NewAPIClient(baseURL, mediaURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL:  strings.TrimRight(baseURL, "/") + "/api",
		mediaURL: strings.TrimRight(mediaURL, "/"),
		client:   &http.Client{Timeout: timeout},
	}
}

// Do issues one upstream request. A non-nil body is sent as JSON. Transport
// failures come back as Network errors; HTTP error statuses are left to the
// caller (DecodeJSON translates them).
func (a *APIClient) Do(ctx context.Context, method, path string, query url.Values, cookies []string, body interface{}) (*http.Response, error) {
	u := a.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, apperrors.Server("failed to encode request body", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, apperrors.Network("failed to build upstream request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.Header.Add("Cookie", c)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, apperrors.Network("upstream request failed", err)
	}
	return resp, nil
}

// DoJSON issues a request, translates HTTP error statuses into the error
// taxonomy and decodes a success body into out (ignored when out is nil).
// It returns any Set-Cookie values so callers can carry the upstream session
// forward.
func (a *APIClient) DoJSON(ctx context.Context, method, path string, query url.Values, cookies []string, body, out interface{}) ([]string, error) {
	resp, err := a.Do(ctx, method, path, query, cookies, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	setCookies := resp.Header.Values("Set-Cookie")

	if resp.StatusCode >= 400 {
		return setCookies, translateStatus(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return setCookies, apperrors.Server("unexpected upstream payload", err)
		}
	}
	return setCookies, nil
}

// translateStatus maps an upstream error response onto the taxonomy.
func translateStatus(resp *http.Response) *apperrors.Error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	cause := fmt.Errorf("upstream status=%d body=%s", resp.StatusCode, string(snippet))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return apperrors.AuthRequired("login required", cause)
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.NotFound("resource not found", cause)
	default:
		return apperrors.Server("upstream request rejected", cause)
	}
}

// ImageURL resolves an image path against the media host. Absolute URLs pass
// through unchanged; any path not starting with "http" is treated as locally
// hosted.
func (a *APIClient) ImageURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http") {
		return path
	}
	return a.mediaURL + path
}
