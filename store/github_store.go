package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v68/github"

	"spleux/api/config"
	"spleux/api/models"
)

// GitHubStore keeps the content document as a JSON file in a GitHub
// repository. The file's blob SHA doubles as the version token, so every
// write is an optimistic-concurrency commit: the contents API rejects a
// write carrying a stale SHA, which surfaces here as ErrConflict.
//
// Writes are commits, so the repo history is a free audit trail.
type GitHubStore struct {
	client *github.Client
	owner  string
	repo   string
	path   string

	committerName  string
	committerEmail string
}

func NewGitHubStore(cfg *config.Config) *GitHubStore {
	return &GitHubStore{
		client:         github.NewClient(nil).WithAuthToken(cfg.GitHubToken),
		owner:          cfg.GitHubRepoOwner,
		repo:           cfg.GitHubRepoName,
		path:           cfg.ContentFilePath,
		committerName:  cfg.CommitterName,
		committerEmail: cfg.CommitterEmail,
	}
}

// Get fetches and decodes the remote content file. The returned string is
// the file's blob SHA, passed back to Put as the expected version.
func (s *GitHubStore) Get(ctx context.Context) (*models.ContentDocument, string, error) {
	fc, _, resp, err := s.client.Repositories.GetContents(ctx, s.owner, s.repo, s.path, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to fetch %s from GitHub: %w", s.path, err)
	}
	if fc == nil {
		return nil, "", fmt.Errorf("%s is a directory, not a file", s.path)
	}

	raw, err := fc.GetContent()
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode %s: %w", s.path, err)
	}

	var doc models.ContentDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", s.path, err)
	}

	return &doc, fc.GetSHA(), nil
}

// Put commits a whole replacement document. An empty expectedVersion
// means the file does not exist yet and this write creates it.
func (s *GitHubStore) Put(ctx context.Context, doc *models.ContentDocument, expectedVersion string) (string, error) {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode content document: %w", err)
	}

	opts := &github.RepositoryContentFileOptions{
		Message: github.String(fmt.Sprintf("Update website content via admin dashboard - %s", time.Now().UTC().Format(time.RFC3339))),
		Content: payload,
		Committer: &github.CommitAuthor{
			Name:  github.String(s.committerName),
			Email: github.String(s.committerEmail),
		},
	}
	if expectedVersion != "" {
		opts.SHA = github.String(expectedVersion)
	}

	res, resp, err := s.client.Repositories.UpdateFile(ctx, s.owner, s.repo, s.path, opts)
	if err != nil {
		if resp != nil && (resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity) {
			return "", fmt.Errorf("%w: %s", ErrConflict, githubErrorMessage(err))
		}
		return "", fmt.Errorf("failed to update %s on GitHub: %s", s.path, githubErrorMessage(err))
	}

	return res.GetContent().GetSHA(), nil
}

// CheckAccess verifies the configured repository is reachable with the
// configured token. Used by the github-health endpoint.
func (s *GitHubStore) CheckAccess(ctx context.Context) (*github.Repository, error) {
	repo, _, err := s.client.Repositories.Get(ctx, s.owner, s.repo)
	if err != nil {
		return nil, fmt.Errorf("GitHub API access failed: %s", githubErrorMessage(err))
	}
	return repo, nil
}

// githubErrorMessage pulls the remote's own message out of an API error
// so conflict and rejection responses stay meaningful to the admin.
func githubErrorMessage(err error) string {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Message != "" {
		return ghErr.Message
	}
	return err.Error()
}
