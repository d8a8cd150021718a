package config

import (
	"log/slog"

	"github.com/secmon-lab/aikomment/pkg/domain/types"
	"github.com/secmon-lab/aikomment/pkg/service/gitlab"
	"github.com/urfave/cli/v3"
)

// GitLab holds GitLab configuration
type GitLab struct {
	URL             string
	Token           string
	ProjectID       string
	MergeRequestIID int
}

// Flags returns CLI flags for GitLab configuration
func (g *GitLab) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gitlab-url",
			Usage:       "URL of the GitLab instance",
			Category:    "GitLab",
			Sources:     cli.EnvVars("CI_SERVER_URL"),
			Destination: &g.URL,
		},
		&cli.StringFlag{
			Name:        "gitlab-token",
			Usage:       "GitLab access token allowed to comment on merge requests",
			Category:    "GitLab",
			Sources:     cli.EnvVars("GL_TOKEN"),
			Destination: &g.Token,
		},
		&cli.StringFlag{
			Name:        "project-id",
			Aliases:     []string{"repo-id"},
			Usage:       "GitLab project ID",
			Category:    "GitLab",
			Sources:     cli.EnvVars("CI_PROJECT_ID"),
			Destination: &g.ProjectID,
		},
		&cli.IntFlag{
			Name:        "mr-iid",
			Usage:       "Merge request IID; the command does nothing when unset",
			Category:    "GitLab",
			Sources:     cli.EnvVars("CI_MERGE_REQUEST_IID"),
			Destination: &g.MergeRequestIID,
		},
	}
}

// Configure creates a GitLab client
func (g *GitLab) Configure() (*gitlab.Client, error) {
	return gitlab.New(g.URL, g.Token)
}

// IsMergeRequest returns true if the pipeline runs for a merge request
func (g *GitLab) IsMergeRequest() bool {
	return types.MergeRequestIID(g.MergeRequestIID).IsSet()
}

// Missing returns the names of required settings that are not set
func (g *GitLab) Missing() []string {
	var missing []string
	if g.URL == "" {
		missing = append(missing, "gitlab-url")
	}
	if g.Token == "" {
		missing = append(missing, "gitlab-token")
	}
	if g.ProjectID == "" {
		missing = append(missing, "project-id")
	}
	return missing
}

// LogValue returns structured log value
func (g GitLab) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", g.URL),
		slog.Bool("has_token", g.Token != ""),
		slog.String("project_id", g.ProjectID),
		slog.Int("mr_iid", g.MergeRequestIID),
	)
}
