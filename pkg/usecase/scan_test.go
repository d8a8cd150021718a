package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/aikomment/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/aikomment/pkg/domain/model"
	"github.com/secmon-lab/aikomment/pkg/domain/types"
	"github.com/secmon-lab/aikomment/pkg/usecase"
)

func newAikidoMock() *mocks.AikidoMock {
	return &mocks.AikidoMock{
		AuthenticateFunc: func(ctx context.Context) error {
			return nil
		},
		ListCodeRepositoriesFunc: func(ctx context.Context) ([]*model.CodeRepository, error) {
			return []*model.CodeRepository{
				{ID: "10", Name: "group/other"},
				{ID: "20", Name: "group/app"},
			}, nil
		},
		ListOpenIssueGroupsFunc: func(ctx context.Context, repoID types.AikidoID) ([]*model.IssueGroup, error) {
			return []*model.IssueGroup{
				{ID: "1", Type: "open_source", Severity: model.SeverityHigh},
				{ID: "2", Type: "sast", Severity: model.SeverityLow},
				{ID: "3", Type: "sast", Severity: model.SeverityCritical},
				{ID: "4", Type: "leaked_secret", Severity: model.SeverityMedium},
			}, nil
		},
		ExportIssuesFunc: func(ctx context.Context, repoID, groupID types.AikidoID) ([]*model.Issue, error) {
			return []*model.Issue{
				{ID: types.AikidoID("i-" + groupID), GroupID: groupID, AffectedFile: "main.go"},
			}, nil
		},
	}
}

func TestScan_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("reports high and critical groups with their issues", func(t *testing.T) {
		aikido := newAikidoMock()
		uc := usecase.NewScan(aikido, usecase.NewScanConfig(usecase.WithConcurrency(2)))

		result, err := uc.Run(ctx, "app")
		gt.NoError(t, err).Required()

		gt.Equal(t, types.AikidoID("20"), result.Repository.ID)
		gt.Equal(t, 2, result.Count())
		gt.Equal(t, types.AikidoID("3"), result.Groups[0].ID)
		gt.Equal(t, types.AikidoID("1"), result.Groups[1].ID)
		for _, g := range result.Groups {
			gt.A(t, g.Issues).Length(1)
			gt.Equal(t, g.ID, g.Issues[0].GroupID)
		}

		gt.A(t, aikido.AuthenticateCalls()).Length(1)
		gt.Equal(t, types.AikidoID("20"), aikido.ListOpenIssueGroupsCalls()[0].RepoID)

		// issues are exported only for reported groups
		calls := aikido.ExportIssuesCalls()
		gt.A(t, calls).Length(2)
		for _, c := range calls {
			gt.Equal(t, types.AikidoID("20"), c.RepoID)
			gt.True(t, c.GroupID == "1" || c.GroupID == "3")
		}
	})

	t.Run("custom policy", func(t *testing.T) {
		aikido := newAikidoMock()
		policy := &model.ReportPolicy{
			Severities:   []model.Severity{model.SeverityMedium, model.SeverityLow},
			ExcludeTypes: []string{"leaked_secret"},
		}
		uc := usecase.NewScan(aikido, usecase.NewScanConfig(usecase.WithPolicy(policy)))

		result, err := uc.Run(ctx, "group/app")
		gt.NoError(t, err).Required()
		gt.Equal(t, 1, result.Count())
		gt.Equal(t, types.AikidoID("2"), result.Groups[0].ID)
	})

	t.Run("no reported group", func(t *testing.T) {
		aikido := newAikidoMock()
		aikido.ListOpenIssueGroupsFunc = func(ctx context.Context, repoID types.AikidoID) ([]*model.IssueGroup, error) {
			return nil, nil
		}
		uc := usecase.NewScan(aikido, nil)

		result, err := uc.Run(ctx, "app")
		gt.NoError(t, err).Required()
		gt.Equal(t, 0, result.Count())
		gt.A(t, aikido.ExportIssuesCalls()).Length(0)
	})

	t.Run("authentication failure", func(t *testing.T) {
		aikido := newAikidoMock()
		aikido.AuthenticateFunc = func(ctx context.Context) error {
			return goerr.New("unable to retrieve access token")
		}
		uc := usecase.NewScan(aikido, nil)

		_, err := uc.Run(ctx, "app")
		gt.Error(t, err)
		gt.A(t, aikido.ListCodeRepositoriesCalls()).Length(0)
	})

	t.Run("repository not found", func(t *testing.T) {
		aikido := newAikidoMock()
		uc := usecase.NewScan(aikido, nil)

		_, err := uc.Run(ctx, "unknown-project")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrRepositoryNotFound))
		gt.A(t, aikido.ListOpenIssueGroupsCalls()).Length(0)
	})

	t.Run("issue export failure", func(t *testing.T) {
		aikido := newAikidoMock()
		aikido.ExportIssuesFunc = func(ctx context.Context, repoID, groupID types.AikidoID) ([]*model.Issue, error) {
			if groupID == "3" {
				return nil, goerr.New("Failed to export issues")
			}
			return nil, nil
		}
		uc := usecase.NewScan(aikido, nil)

		_, err := uc.Run(ctx, "app")
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("failed to export issues of group")
	})
}
