package gitlab

import (
	"context"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aikomment/pkg/domain/interfaces"
	"github.com/secmon-lab/aikomment/pkg/domain/model"
	"github.com/secmon-lab/aikomment/pkg/domain/types"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

const notesPerPage = 100

// Client provides the merge request note operations of the GitLab API
type Client struct {
	client *gitlab.Client
}

var _ interfaces.GitLab = (*Client)(nil)

// Option configures a Client
type Option func(*options)

type options struct {
	httpClient *http.Client
}

// WithHTTPClient sets the HTTP client used by the underlying GitLab client
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// New creates a GitLab client for the instance at baseURL
func New(baseURL, token string, opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	clientOpts := []gitlab.ClientOptionFunc{
		gitlab.WithBaseURL(NormalizeURL(baseURL)),
	}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, gitlab.WithHTTPClient(o.httpClient))
	}

	client, err := gitlab.NewClient(NormalizeToken(token), clientOpts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitLab client", goerr.V("url", baseURL))
	}

	return &Client{client: client}, nil
}

// NormalizeURL prepends https:// when the instance URL has no scheme
func NormalizeURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return baseURL
	}
	if !strings.HasPrefix(baseURL, "https://") && !strings.HasPrefix(baseURL, "http://") {
		baseURL = "https://" + baseURL
	}
	return strings.TrimSuffix(baseURL, "/")
}

// NormalizeToken strips a header-style prefix such as "Private_Token:" from the token
func NormalizeToken(token string) string {
	if _, after, found := strings.Cut(token, ":"); found {
		return strings.TrimSpace(after)
	}
	return strings.TrimSpace(token)
}

// ListMergeRequestNotes returns all notes of a merge request
func (c *Client) ListMergeRequestNotes(ctx context.Context, projectID types.ProjectID, mrIID types.MergeRequestIID) ([]*model.Note, error) {
	opt := &gitlab.ListMergeRequestNotesOptions{
		ListOptions: gitlab.ListOptions{
			PerPage: notesPerPage,
			Page:    1,
		},
	}

	var notes []*model.Note
	for {
		page, resp, err := c.client.Notes.ListMergeRequestNotes(projectID.String(), int(mrIID), opt, gitlab.WithContext(ctx))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list merge request notes",
				goerr.V("projectID", projectID),
				goerr.V("mrIID", mrIID),
				goerr.V("page", opt.Page))
		}

		for _, n := range page {
			notes = append(notes, toNote(n))
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return notes, nil
}

// CreateMergeRequestNote adds a note to a merge request
func (c *Client) CreateMergeRequestNote(ctx context.Context, projectID types.ProjectID, mrIID types.MergeRequestIID, body string) (*model.Note, error) {
	opt := &gitlab.CreateMergeRequestNoteOptions{
		Body: gitlab.Ptr(body),
	}

	note, _, err := c.client.Notes.CreateMergeRequestNote(projectID.String(), int(mrIID), opt, gitlab.WithContext(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to add note to merge request",
			goerr.V("projectID", projectID),
			goerr.V("mrIID", mrIID))
	}
	return toNote(note), nil
}

// UpdateMergeRequestNote replaces the body of an existing merge request note
func (c *Client) UpdateMergeRequestNote(ctx context.Context, projectID types.ProjectID, mrIID types.MergeRequestIID, noteID types.NoteID, body string) (*model.Note, error) {
	opt := &gitlab.UpdateMergeRequestNoteOptions{
		Body: gitlab.Ptr(body),
	}

	note, _, err := c.client.Notes.UpdateMergeRequestNote(projectID.String(), int(mrIID), int(noteID), opt, gitlab.WithContext(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update merge request note",
			goerr.V("projectID", projectID),
			goerr.V("mrIID", mrIID),
			goerr.V("noteID", noteID))
	}
	return toNote(note), nil
}

func toNote(n *gitlab.Note) *model.Note {
	if n == nil {
		return nil
	}
	return &model.Note{
		ID:     types.NoteID(n.ID),
		Body:   n.Body,
		Author: n.Author.Username,
		System: n.System,
	}
}
