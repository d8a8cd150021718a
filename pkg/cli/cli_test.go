package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/m-mizutani/gt"
)

func TestCommentNotMergeRequest(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	err := app.Run(ctx, []string{"aikomment", "--log-format", "text", "comment", "--mr-iid", "0"})
	gt.NoError(t, err)
	gt.Equal(t, "", out.String())
}

func TestCommentMissingSettings(t *testing.T) {
	ctx := context.Background()
	app := newApp()

	err := app.Run(ctx, []string{
		"aikomment", "--log-format", "text", "comment",
		"--mr-iid", "7",
		"--gitlab-url", "https://gitlab.example.com",
		"--gitlab-token", "",
		"--project-id", "42",
		"--aikido-client-id", "",
		"--aikido-client-secret", "",
		"--project-name", "app",
	})
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("missing required settings")
}

func TestCommentDryRunScanFailure(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	err := app.Run(ctx, []string{
		"aikomment", "--log-format", "text", "--log-level", "error", "comment",
		"--dry-run",
		"--aikido-client-id", "id",
		"--aikido-client-secret", "secret",
		"--aikido-url", "http://127.0.0.1:1",
		"--project-name", "app",
		"--pipeline-id", "123",
	})
	gt.NoError(t, err).Required()
	gt.S(t, out.String()).Contains("# Security tooling scan results")
	gt.S(t, out.String()).Contains("Failed to generate Aikido table")
}

func TestInvalidLogFormat(t *testing.T) {
	err := Run(context.Background(), []string{"aikomment", "--log-format", "xml", "comment", "--mr-iid", "0"})
	gt.Error(t, err)
}
