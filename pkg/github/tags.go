package github

import (
	"encoding/json"
	"fmt"
)

// TagsService defines the interface for repository tag operations.
type TagsService interface {
	ListRepoTags() ([]RepoTag, error)
	ListTagNames() ([]string, error)
}

type tagsService struct {
	client *Client
}

// ListRepoTags retrieves tags in the current repository, newest first as
// returned by the API. Pagination stops after the page that comes back
// short.
func (s *tagsService) ListRepoTags() ([]RepoTag, error) {
	const perPage = 100

	var all []RepoTag
	for page := 1; ; page++ {
		path := s.client.repoPath(fmt.Sprintf("/tags?per_page=%d&page=%d", perPage, page))
		respData, err := s.client.DoRequest("GET", path, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch tags: %w", err)
		}

		var tags []RepoTag
		if err := json.Unmarshal(respData, &tags); err != nil {
			return nil, fmt.Errorf("failed to parse tag list: %w", err)
		}

		all = append(all, tags...)
		if len(tags) < perPage {
			return all, nil
		}
	}
}

// ListTagNames returns just the tag names, for classification and compare
// links.
func (s *tagsService) ListTagNames() ([]string, error) {
	tags, err := s.ListRepoTags()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names, nil
}
