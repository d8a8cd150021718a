package aikido

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aikomment/pkg/domain/interfaces"
	"github.com/secmon-lab/aikomment/pkg/domain/model"
	"github.com/secmon-lab/aikomment/pkg/domain/types"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	// DefaultBaseURL is the Aikido SaaS endpoint
	DefaultBaseURL = "https://app.aikido.dev"

	tokenPath        = "/api/oauth/token"
	repositoriesPath = "/api/public/v1/repositories/code"
	issueGroupsPath  = "/api/public/v1/open-issue-groups"
	issueExportPath  = "/api/public/v1/issues/export"

	repositoriesPerPage = 10
	maxResponseSize     = 32 << 20
)

// Client is a client of the Aikido public API
type Client struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource oauth2.TokenSource
	api         *http.Client
}

var _ interfaces.Aikido = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithBaseURL sets the Aikido base URL (useful for testing)
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for both token and API requests
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// New creates a new Aikido client authenticating with the OAuth2 client
// credentials flow. No request is sent until the first API call.
func New(clientID, clientSecret string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     c.baseURL + tokenPath,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	// The token source keeps this context for refreshing tokens, so it must
	// not be bound to a single call.
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, c.httpClient)
	c.tokenSource = cfg.TokenSource(tokenCtx)
	c.api = oauth2.NewClient(tokenCtx, c.tokenSource)
	c.api.Timeout = c.httpClient.Timeout

	return c
}

// BaseURL returns the Aikido base URL used for API calls and issue links
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Authenticate retrieves an access token so that credential problems are
// reported before any API call.
func (c *Client) Authenticate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return goerr.Wrap(err, "context is done before authentication")
	}
	if _, err := c.tokenSource.Token(); err != nil {
		return goerr.Wrap(err, "unable to retrieve access token",
			goerr.V("url", c.baseURL+tokenPath))
	}
	return nil
}

// ListCodeRepositories returns all code repositories, following pagination
// until a page is shorter than the page size.
func (c *Client) ListCodeRepositories(ctx context.Context) ([]*model.CodeRepository, error) {
	var repos []*model.CodeRepository

	for page := 0; ; page++ {
		query := url.Values{}
		query.Set("per_page", strconv.Itoa(repositoriesPerPage))
		query.Set("page", strconv.Itoa(page))

		var batch []*model.CodeRepository
		if err := c.get(ctx, repositoriesPath, query, &batch); err != nil {
			return nil, goerr.Wrap(err, "failed to retrieve code repositories", goerr.V("page", page))
		}

		repos = append(repos, batch...)
		if len(batch) < repositoriesPerPage {
			break
		}
	}

	return repos, nil
}

// ListOpenIssueGroups returns the open issue groups of a repository
func (c *Client) ListOpenIssueGroups(ctx context.Context, repoID types.AikidoID) ([]*model.IssueGroup, error) {
	query := url.Values{}
	query.Set("filter_code_repo_id", repoID.String())

	var groups []*model.IssueGroup
	if err := c.get(ctx, issueGroupsPath, query, &groups); err != nil {
		return nil, goerr.Wrap(err, "failed to retrieve issue groups", goerr.V("repoID", repoID))
	}
	return groups, nil
}

// ExportIssues returns the open issues of a group within a repository
func (c *Client) ExportIssues(ctx context.Context, repoID, groupID types.AikidoID) ([]*model.Issue, error) {
	query := url.Values{}
	query.Set("filter_code_repo_id", repoID.String())
	query.Set("filter_issue_group_id", groupID.String())
	query.Set("filter_status", "open")

	var issues []*model.Issue
	if err := c.get(ctx, issueExportPath, query, &issues); err != nil {
		return nil, goerr.Wrap(err, "failed to export issues",
			goerr.V("repoID", repoID),
			goerr.V("groupID", groupID))
	}
	return issues, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("url", reqURL))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.api.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to send request", goerr.V("url", reqURL))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return goerr.Wrap(err, "failed to read response", goerr.V("url", reqURL))
	}

	if resp.StatusCode != http.StatusOK {
		return goerr.New("unexpected status from Aikido API",
			goerr.V("url", reqURL),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return goerr.Wrap(err, "failed to decode response", goerr.V("url", reqURL))
	}
	return nil
}
