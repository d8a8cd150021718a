package config

import (
	"log/slog"

	"github.com/secmon-lab/aikomment/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Pipeline holds the GitLab CI context of the job
type Pipeline struct {
	ProjectName string
	ProjectURL  string
	RefName     string
	PipelineID  string
	PipelineURL string
	CommitSHA   string
}

// Flags returns CLI flags for the pipeline context
func (p *Pipeline) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "project-name",
			Usage:       "Project name used to find the Aikido repository",
			Category:    "Pipeline",
			Sources:     cli.EnvVars("CI_PROJECT_NAME"),
			Destination: &p.ProjectName,
		},
		&cli.StringFlag{
			Name:        "project-url",
			Usage:       "Web URL of the project, used for file links",
			Category:    "Pipeline",
			Sources:     cli.EnvVars("CI_PROJECT_URL"),
			Destination: &p.ProjectURL,
		},
		&cli.StringFlag{
			Name:        "ref-name",
			Usage:       "Branch or tag the pipeline runs for",
			Category:    "Pipeline",
			Sources:     cli.EnvVars("CI_COMMIT_REF_NAME"),
			Destination: &p.RefName,
		},
		&cli.StringFlag{
			Name:        "pipeline-id",
			Usage:       "Pipeline ID",
			Category:    "Pipeline",
			Sources:     cli.EnvVars("CI_PIPELINE_ID"),
			Destination: &p.PipelineID,
		},
		&cli.StringFlag{
			Name:        "pipeline-url",
			Usage:       "Pipeline web URL",
			Category:    "Pipeline",
			Sources:     cli.EnvVars("CI_PIPELINE_URL"),
			Destination: &p.PipelineURL,
		},
		&cli.StringFlag{
			Name:        "commit-sha",
			Usage:       "Commit SHA the pipeline runs for",
			Category:    "Pipeline",
			Sources:     cli.EnvVars("CI_COMMIT_SHA"),
			Destination: &p.CommitSHA,
		},
	}
}

// Context converts the configuration to the domain model
func (p *Pipeline) Context() *model.PipelineContext {
	return &model.PipelineContext{
		ProjectName: p.ProjectName,
		ProjectURL:  p.ProjectURL,
		RefName:     p.RefName,
		PipelineID:  p.PipelineID,
		PipelineURL: p.PipelineURL,
		CommitSHA:   p.CommitSHA,
	}
}

// Missing returns the names of required settings that are not set
func (p *Pipeline) Missing() []string {
	if p.ProjectName == "" {
		return []string{"project-name"}
	}
	return nil
}

// LogValue returns structured log value
func (p Pipeline) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project_name", p.ProjectName),
		slog.String("ref_name", p.RefName),
		slog.String("pipeline_id", p.PipelineID),
		slog.String("commit_sha", p.CommitSHA),
	)
}
