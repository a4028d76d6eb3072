package stitch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/kataras/stitch-extractor/pkg/config"
)

// Version is the stitch-extractor release, also sent in the User-Agent header.
const Version = "0.3.0"

// APIError is returned for any non-2xx response from the Stitch API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

// Client is a Stitch API client. Requests are never retried: a failed call is
// reported to the caller as-is.
type Client struct {
	baseURL      string
	apiKey       string
	accessToken  string
	quotaProject string
	httpClient   *http.Client
}

// NewClient creates a Stitch API client from cfg. An API key is sent as X-Goog-Api-Key,
// an access token as a bearer Authorization header. When cfg.QuotaProject is set it is
// sent as X-Goog-User-Project on every request.
func NewClient(cfg config.Config) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}

	return &Client{
		baseURL:      baseURL,
		apiKey:       cfg.APIKey,
		accessToken:  cfg.AccessToken,
		quotaProject: cfg.QuotaProject,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
	}
}

// HTTPClient returns the underlying HTTP client, shared with file downloads.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

var (
	projectNameRe = regexp.MustCompile(`^(?:projects/)?([A-Za-z0-9_-]+)$`)
	screenNameRe  = regexp.MustCompile(`^projects/([A-Za-z0-9_-]+)/screens/([A-Za-z0-9_-]+)$`)
)

// ParseProjectName accepts "projects/{id}" or a bare id and returns the id.
func ParseProjectName(name string) (string, error) {
	m := projectNameRe.FindStringSubmatch(strings.TrimSpace(name))
	if m == nil {
		return "", fmt.Errorf("invalid project name %q: expected projects/{id} or a bare id", name)
	}
	return m[1], nil
}

// ParseScreenName splits "projects/{p}/screens/{s}" into its project and screen ids.
func ParseScreenName(name string) (projectID, screenID string, err error) {
	m := screenNameRe.FindStringSubmatch(strings.TrimSpace(name))
	if m == nil {
		return "", "", fmt.Errorf("invalid screen name %q: expected projects/{p}/screens/{s}", name)
	}
	return m[1], m[2], nil
}

// ListProjects returns the projects visible to the configured credentials.
func (c *Client) ListProjects(ctx context.Context) (*ProjectsResponse, error) {
	var resp ProjectsResponse
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProject retrieves a single project including its design theme.
func (c *Client) GetProject(ctx context.Context, projectID string) (*Project, error) {
	id, err := ParseProjectName(projectID)
	if err != nil {
		return nil, err
	}

	var project Project
	if err := c.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(id), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// ListScreens returns the screens of a project.
func (c *Client) ListScreens(ctx context.Context, projectID string) (*ScreensResponse, error) {
	id, err := ParseProjectName(projectID)
	if err != nil {
		return nil, err
	}

	var resp ScreensResponse
	if err := c.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(id)+"/screens", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetScreen retrieves the metadata of a screen: title, code download URLs, screenshot and theme.
// When the screen carries no theme, the project's design theme is used instead.
// screenID may also be a full "projects/{p}/screens/{s}" resource name, in which case
// projectID is ignored.
func (c *Client) GetScreen(ctx context.Context, projectID, screenID string) (*Screen, error) {
	if strings.HasPrefix(screenID, "projects/") {
		p, s, err := ParseScreenName(screenID)
		if err != nil {
			return nil, err
		}
		projectID, screenID = p, s
	}

	pid, err := ParseProjectName(projectID)
	if err != nil {
		return nil, err
	}
	if screenID == "" {
		return nil, fmt.Errorf("screen id is required")
	}

	path := fmt.Sprintf("/projects/%s/screens/%s", url.PathEscape(pid), url.PathEscape(screenID))

	var screen Screen
	if err := c.do(ctx, http.MethodGet, path, nil, &screen); err != nil {
		return nil, err
	}

	if screen.Theme == nil {
		project, err := c.GetProject(ctx, pid)
		if err == nil && project.DesignTheme != nil {
			screen.Theme = project.DesignTheme
		}
	}

	return &screen, nil
}

// GenerateScreen asks Stitch to generate new screens in a project from a text prompt.
func (c *Client) GenerateScreen(ctx context.Context, projectID string, req GenerateRequest) (*GenerateResponse, error) {
	id, err := ParseProjectName(projectID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("prompt is required")
	}

	var resp GenerateResponse
	if err := c.do(ctx, http.MethodPost, "/projects/"+url.PathEscape(id)+"/screens:generateFromText", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Download fetches the body of a file download URL. Credentials are not forwarded
// because download URLs are pre-signed.
func (c *Client) Download(ctx context.Context, downloadURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "stitch-extractor/"+Version)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if c.apiKey == "" && c.accessToken == "" {
		return config.ErrMissingCredentials
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "stitch-extractor/"+Version)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	} else {
		req.Header.Set("X-Goog-Api-Key", c.apiKey)
	}
	if c.quotaProject != "" {
		req.Header.Set("X-Goog-User-Project", c.quotaProject)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}
