package github

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

type Client struct {
	apiURL     string
	uploadURL  string
	token      string
	repo       string // owner/name
	httpClient *http.Client

	// Services
	Releases ReleasesService
	Tags     TagsService
}

// GitHubError represents an error response from the GitHub API.
type GitHubError struct {
	StatusCode int
	Message    string
	Body       []byte
}

// Error returns a string representation of the GitHubError.
func (e *GitHubError) Error() string {
	return fmt.Sprintf("GitHub API error (%d): %s -- %s", e.StatusCode, e.Message, string(e.Body))
}

// NewClient creates a new GitHub client using environment variables for
// configuration.
// Required environment variables:
//   - GITHUB_TOKEN (preferred) or GH_TOKEN
//   - GITHUB_REPOSITORY ("owner/name", provided by Actions)
//
// GITHUB_API_URL and GITHUB_UPLOAD_URL override the endpoints; Actions sets
// the former, and tests point both at a local server.
func NewClient(timeout time.Duration) (*Client, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GH_TOKEN")
	}
	if token == "" {
		return nil, errors.New("GITHUB_TOKEN or GH_TOKEN must be set")
	}

	repo := strings.TrimSpace(os.Getenv("GITHUB_REPOSITORY"))
	if repo == "" || !strings.Contains(repo, "/") {
		return nil, errors.New("GITHUB_REPOSITORY must be set to owner/name")
	}

	apiURL := os.Getenv("GITHUB_API_URL")
	if apiURL == "" {
		apiURL = "https://api.github.com"
	}
	uploadURL := os.Getenv("GITHUB_UPLOAD_URL")
	if uploadURL == "" {
		uploadURL = "https://uploads.github.com"
	}

	if _, err := url.ParseRequestURI(apiURL); err != nil {
		return nil, errors.New("invalid GitHub API URL: " + err.Error())
	}

	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	c := &Client{
		apiURL:     strings.TrimRight(apiURL, "/"),
		uploadURL:  strings.TrimRight(uploadURL, "/"),
		token:      token,
		repo:       repo,
		httpClient: &http.Client{Timeout: timeout},
	}

	// Initialize services
	c.Releases = &releasesService{client: c}
	c.Tags = &tagsService{client: c}

	return c, nil
}

// Repo returns the owner/name the client talks to.
func (c *Client) Repo() string {
	return c.repo
}

// DoRequest sends an HTTP request to the GitHub API and returns the response
// body. The 'path' should be relative to the API root and include the repo
// segment (e.g., "/repos/owner/name/releases").
func (c *Client) DoRequest(method, path string, body interface{}) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	fullURL := c.apiURL + path
	req, err := http.NewRequest(method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request [%s %s]: %w", method, fullURL, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req)
}

// DoUpload streams an asset body to the uploads endpoint. GitHub requires
// an explicit Content-Length, so size is mandatory.
func (c *Client) DoUpload(path, contentType string, body io.Reader, size int64) ([]byte, error) {
	fullURL := c.uploadURL + path
	req, err := http.NewRequest(http.MethodPost, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload request [%s]: %w", fullURL, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = size

	return c.send(req)
}

func (c *Client) send(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed [%s %s]: %w", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &GitHubError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       respData,
		}
	}

	return respData, nil
}

func (c *Client) repoPath(suffix string) string {
	return fmt.Sprintf("/repos/%s%s", c.repo, suffix)
}
