package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aikomment/pkg/cli/config"
	"github.com/secmon-lab/aikomment/pkg/domain/types"
	"github.com/secmon-lab/aikomment/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdComment() *cli.Command {
	var (
		gitlabCfg   config.GitLab
		aikidoCfg   config.Aikido
		pipelineCfg config.Pipeline
		policyCfg   config.Policy
		dryRun      bool
	)

	flags := joinFlags(
		gitlabCfg.Flags(),
		aikidoCfg.Flags(),
		pipelineCfg.Flags(),
		policyCfg.Flags(),
		[]cli.Flag{
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "Print the comment to stdout instead of posting it",
				Sources:     cli.EnvVars("AIKOMMENT_DRY_RUN"),
				Destination: &dryRun,
			},
		},
	)

	return &cli.Command{
		Name:  "comment",
		Usage: "Comment Aikido findings on the current merge request",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Debug("Starting aikomment",
				slog.Any("gitlab", gitlabCfg),
				slog.Any("aikido", aikidoCfg),
				slog.Any("pipeline", pipelineCfg),
				slog.Any("policy", policyCfg),
				slog.Bool("dry_run", dryRun),
			)

			if !dryRun && !gitlabCfg.IsMergeRequest() {
				logger.Info("Not running in a merge request, nothing to comment")
				return nil
			}

			missing := append(aikidoCfg.Missing(), pipelineCfg.Missing()...)
			if !dryRun {
				missing = append(gitlabCfg.Missing(), missing...)
			}
			if len(missing) > 0 {
				return goerr.New("missing required settings", goerr.V("missing", missing))
			}

			policy, err := policyCfg.Configure()
			if err != nil {
				return err
			}

			aikidoClient := aikidoCfg.Configure()
			scanUC := usecase.NewScan(aikidoClient, usecase.NewScanConfig(
				usecase.WithConcurrency(aikidoCfg.Concurrency),
				usecase.WithPolicy(policy),
			))
			pipeline := pipelineCfg.Context()
			body := usecase.NewReport(scanUC, pipeline, aikidoClient.BaseURL()).Build(ctx)

			if dryRun {
				_, err := fmt.Fprintln(c.Root().Writer, body)
				return err
			}

			gitlabClient, err := gitlabCfg.Configure()
			if err != nil {
				return err
			}

			commentUC := usecase.NewComment(gitlabClient,
				types.ProjectID(gitlabCfg.ProjectID),
				types.MergeRequestIID(gitlabCfg.MergeRequestIID),
			)
			note, err := commentUC.Upsert(ctx, body)
			if err != nil {
				return goerr.Wrap(err, "failed to comment on merge request")
			}

			logger.Info("Merge request comment published",
				slog.Any("note_id", note.ID),
				slog.String("project_id", gitlabCfg.ProjectID),
				slog.Int("mr_iid", gitlabCfg.MergeRequestIID),
			)
			return nil
		},
	}
}
