package interfaces

//go:generate moq -out mocks/aikido_mock.go -pkg mocks . Aikido

import (
	"context"

	"github.com/secmon-lab/aikomment/pkg/domain/model"
	"github.com/secmon-lab/aikomment/pkg/domain/types"
)

// Aikido defines the read-only operations against the Aikido public API
type Aikido interface {
	// Authenticate obtains an access token with the configured credentials
	Authenticate(ctx context.Context) error

	// ListCodeRepositories returns every code repository visible to the client
	ListCodeRepositories(ctx context.Context) ([]*model.CodeRepository, error)

	// ListOpenIssueGroups returns the open issue groups of a repository
	ListOpenIssueGroups(ctx context.Context, repoID types.AikidoID) ([]*model.IssueGroup, error)

	// ExportIssues returns the open issues of an issue group in a repository
	ExportIssues(ctx context.Context, repoID, groupID types.AikidoID) ([]*model.Issue, error)
}
