package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aikomment/pkg/domain/interfaces"
	"github.com/secmon-lab/aikomment/pkg/domain/model"
	"github.com/secmon-lab/aikomment/pkg/domain/types"
	"github.com/secmon-lab/aikomment/pkg/service/report"
)

// Comment publishes the scan comment on a merge request
type Comment struct {
	gitlab    interfaces.GitLab
	projectID types.ProjectID
	mrIID     types.MergeRequestIID
}

var _ CommentUseCase = (*Comment)(nil)

// NewComment creates a new Comment instance
func NewComment(gitlab interfaces.GitLab, projectID types.ProjectID, mrIID types.MergeRequestIID) *Comment {
	return &Comment{
		gitlab:    gitlab,
		projectID: projectID,
		mrIID:     mrIID,
	}
}

// Upsert updates the note carrying the scan marker, or adds a new note when
// the merge request has none. A failure to list notes falls back to adding
// a new note.
func (uc *Comment) Upsert(ctx context.Context, body string) (*model.Note, error) {
	logger := ctxlog.From(ctx)

	notes, err := uc.gitlab.ListMergeRequestNotes(ctx, uc.projectID, uc.mrIID)
	if err != nil {
		logger.Warn("Failed to get notes of merge request, adding a new note",
			"error", err,
			"projectID", uc.projectID,
			"mrIID", uc.mrIID)
	}

	if existing := model.FindNote(notes, report.CommentMarker); existing != nil {
		note, err := uc.gitlab.UpdateMergeRequestNote(ctx, uc.projectID, uc.mrIID, existing.ID, body)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to update scan comment", goerr.V("noteID", existing.ID))
		}
		logger.Info("Updated note", "noteID", note.ID, "mrIID", uc.mrIID)
		return note, nil
	}

	logger.Info("No note found, adding a new one", "mrIID", uc.mrIID)
	note, err := uc.gitlab.CreateMergeRequestNote(ctx, uc.projectID, uc.mrIID, body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to add scan comment")
	}
	logger.Info("Added note", "noteID", note.ID, "mrIID", uc.mrIID)
	return note, nil
}
