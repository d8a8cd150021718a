package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aikomment/pkg/domain/interfaces"
	"github.com/secmon-lab/aikomment/pkg/domain/model"
	"github.com/secmon-lab/aikomment/pkg/utils/async"
)

// ScanConfig holds configuration for Scan use case
type ScanConfig struct {
	concurrency int
	policy      *model.ReportPolicy
}

// ScanOption is a functional option for configuring Scan
type ScanOption func(*ScanConfig)

// WithConcurrency sets how many issue exports may run at the same time
func WithConcurrency(n int) ScanOption {
	return func(c *ScanConfig) {
		c.concurrency = n
	}
}

// WithPolicy sets the report policy
func WithPolicy(policy *model.ReportPolicy) ScanOption {
	return func(c *ScanConfig) {
		c.policy = policy
	}
}

// NewScanConfig creates a new ScanConfig with default values and optional settings
func NewScanConfig(opts ...ScanOption) *ScanConfig {
	config := &ScanConfig{
		concurrency: 4,
		policy:      model.NewReportPolicy(),
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

// Scan collects findings of a repository from Aikido
type Scan struct {
	aikido interfaces.Aikido
	config *ScanConfig
}

var _ ScanUseCase = (*Scan)(nil)

// NewScan creates a new Scan instance
func NewScan(aikido interfaces.Aikido, config *ScanConfig) *Scan {
	if config == nil {
		config = NewScanConfig()
	}
	return &Scan{
		aikido: aikido,
		config: config,
	}
}

// Run resolves the Aikido repository of the project, fetches its open issue
// groups and the issues of every group the policy reports.
func (uc *Scan) Run(ctx context.Context, projectName string) (*model.ScanResult, error) {
	logger := ctxlog.From(ctx)

	logger.Info("Getting OAuth token")
	if err := uc.aikido.Authenticate(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to authenticate to Aikido")
	}

	logger.Info("Getting code repositories")
	repos, err := uc.aikido.ListCodeRepositories(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list code repositories")
	}

	repo, err := model.FindRepository(repos, projectName)
	if err != nil {
		return nil, err
	}
	logger.Info("Resolved Aikido repository",
		"project", projectName,
		"repoID", repo.ID,
		"repoName", repo.Name)

	logger.Info("Getting open issue groups")
	groups, err := uc.aikido.ListOpenIssueGroups(ctx, repo.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list open issue groups", goerr.V("repoID", repo.ID))
	}
	logger.Info("Fetched open issue groups", "project", projectName, "count", len(groups))

	// Only group fields decide the policy, so details are fetched for reported groups only
	reported := uc.config.policy.Filter(groups)

	logger.Info("Getting issue details", "groups", len(reported))
	details, err := async.Map(ctx, uc.config.concurrency, reported,
		func(ctx context.Context, group *model.IssueGroup) ([]*model.Issue, error) {
			issues, err := uc.aikido.ExportIssues(ctx, repo.ID, group.ID)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to export issues of group", goerr.V("groupID", group.ID))
			}
			return issues, nil
		})
	if err != nil {
		return nil, err
	}

	for i, group := range reported {
		group.Issues = details[i]
	}

	logger.Info("Filtered issue groups",
		"project", projectName,
		"reported", len(reported),
		"total", len(groups),
		"severities", uc.config.policy.Severities)

	return &model.ScanResult{
		Repository: repo,
		Groups:     reported,
	}, nil
}
