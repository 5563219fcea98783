package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// ReleasesService defines the interface for GitHub Release operations.
type ReleasesService interface {
	CreateRelease(payload ReleasePayload) (Release, error)
	GetReleaseByTag(tagName string) (Release, error)
	UploadAsset(releaseID int64, name, path string) (Asset, error)
	PublishRelease(releaseID int64) (Release, error)
	DeleteRelease(releaseID int64) error
}

// releasesService is a concrete implementation of ReleasesService.
type releasesService struct {
	client *Client
}

var (
	ErrNoRelease     = errors.New("no release for tag")
	ErrReleaseExists = errors.New("release already exists for tag")
)

// CreateRelease creates a new release. A 422 from the API means a release
// for the tag already exists; that is normalized to ErrReleaseExists so the
// assembler can fail deterministically on a re-run.
func (s *releasesService) CreateRelease(payload ReleasePayload) (Release, error) {
	path := s.client.repoPath("/releases")

	respData, err := s.client.DoRequest("POST", path, payload)
	if err != nil {
		var gerr *GitHubError
		if errors.As(err, &gerr) && gerr.StatusCode == 422 {
			return Release{}, fmt.Errorf("%w: %s", ErrReleaseExists, payload.TagName)
		}
		return Release{}, fmt.Errorf("failed to create release %q: %w", payload.TagName, err)
	}

	var rel Release
	if err := json.Unmarshal(respData, &rel); err != nil {
		return Release{}, fmt.Errorf("failed to unmarshal release: %w", err)
	}
	return rel, nil
}

// GetReleaseByTag fetches the release published for a tag, or ErrNoRelease.
func (s *releasesService) GetReleaseByTag(tagName string) (Release, error) {
	path := s.client.repoPath("/releases/tags/" + url.PathEscape(tagName))

	respData, err := s.client.DoRequest("GET", path, nil)
	if err != nil {
		var gerr *GitHubError
		if errors.As(err, &gerr) && gerr.StatusCode == 404 {
			return Release{}, ErrNoRelease
		}
		return Release{}, fmt.Errorf("failed to get release for tag %q: %w", tagName, err)
	}

	var rel Release
	if err := json.Unmarshal(respData, &rel); err != nil {
		return Release{}, fmt.Errorf("failed to unmarshal release: %w", err)
	}
	return rel, nil
}

// UploadAsset attaches one local file to a release under the given name.
func (s *releasesService) UploadAsset(releaseID int64, name, path string) (Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Asset{}, fmt.Errorf("failed to open asset %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return Asset{}, fmt.Errorf("failed to stat asset %s: %w", path, err)
	}

	if name == "" {
		name = filepath.Base(path)
	}
	uploadPath := fmt.Sprintf("/repos/%s/releases/%d/assets?name=%s",
		s.client.repo, releaseID, url.QueryEscape(name))

	respData, err := s.client.DoUpload(uploadPath, "application/octet-stream", f, st.Size())
	if err != nil {
		return Asset{}, fmt.Errorf("failed to upload asset %q: %w", name, err)
	}

	var asset Asset
	if err := json.Unmarshal(respData, &asset); err != nil {
		return Asset{}, fmt.Errorf("failed to unmarshal asset: %w", err)
	}
	return asset, nil
}

// PublishRelease flips a draft release to published.
func (s *releasesService) PublishRelease(releaseID int64) (Release, error) {
	path := s.client.repoPath(fmt.Sprintf("/releases/%d", releaseID))

	respData, err := s.client.DoRequest("PATCH", path, map[string]bool{"draft": false})
	if err != nil {
		return Release{}, fmt.Errorf("failed to publish release %d: %w", releaseID, err)
	}

	var rel Release
	if err := json.Unmarshal(respData, &rel); err != nil {
		return Release{}, fmt.Errorf("failed to unmarshal release: %w", err)
	}
	return rel, nil
}

// DeleteRelease removes a release, used to clean up a draft whose asset
// uploads failed partway.
func (s *releasesService) DeleteRelease(releaseID int64) error {
	path := s.client.repoPath(fmt.Sprintf("/releases/%d", releaseID))
	if _, err := s.client.DoRequest("DELETE", path, nil); err != nil {
		return fmt.Errorf("failed to delete release %d: %w", releaseID, err)
	}
	return nil
}
