package interfaces

//go:generate moq -out mocks/gitlab_mock.go -pkg mocks . GitLab

import (
	"context"

	"github.com/secmon-lab/aikomment/pkg/domain/model"
	"github.com/secmon-lab/aikomment/pkg/domain/types"
)

// GitLab defines the merge request note operations
type GitLab interface {
	ListMergeRequestNotes(ctx context.Context, projectID types.ProjectID, mrIID types.MergeRequestIID) ([]*model.Note, error)
	CreateMergeRequestNote(ctx context.Context, projectID types.ProjectID, mrIID types.MergeRequestIID, body string) (*model.Note, error)
	UpdateMergeRequestNote(ctx context.Context, projectID types.ProjectID, mrIID types.MergeRequestIID, noteID types.NoteID, body string) (*model.Note, error)
}
