package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/aikomment/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/aikomment/pkg/domain/model"
	"github.com/secmon-lab/aikomment/pkg/domain/types"
	"github.com/secmon-lab/aikomment/pkg/usecase"
)

func newGitLabMock(notes []*model.Note) *mocks.GitLabMock {
	return &mocks.GitLabMock{
		ListMergeRequestNotesFunc: func(ctx context.Context, projectID types.ProjectID, mrIID types.MergeRequestIID) ([]*model.Note, error) {
			return notes, nil
		},
		CreateMergeRequestNoteFunc: func(ctx context.Context, projectID types.ProjectID, mrIID types.MergeRequestIID, body string) (*model.Note, error) {
			return &model.Note{ID: 500, Body: body}, nil
		},
		UpdateMergeRequestNoteFunc: func(ctx context.Context, projectID types.ProjectID, mrIID types.MergeRequestIID, noteID types.NoteID, body string) (*model.Note, error) {
			return &model.Note{ID: noteID, Body: body}, nil
		},
	}
}

func TestComment_Upsert(t *testing.T) {
	ctx := context.Background()
	body := "# Security tooling scan results\nnew"

	t.Run("creates a note when none exists", func(t *testing.T) {
		gitlab := newGitLabMock([]*model.Note{
			{ID: 1, Body: "LGTM"},
		})
		uc := usecase.NewComment(gitlab, "42", 7)

		note, err := uc.Upsert(ctx, body)
		gt.NoError(t, err).Required()
		gt.Equal(t, types.NoteID(500), note.ID)

		calls := gitlab.CreateMergeRequestNoteCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, types.ProjectID("42"), calls[0].ProjectID)
		gt.Equal(t, types.MergeRequestIID(7), calls[0].MrIID)
		gt.Equal(t, body, calls[0].Body)
		gt.A(t, gitlab.UpdateMergeRequestNoteCalls()).Length(0)
	})

	t.Run("updates the existing scan note", func(t *testing.T) {
		gitlab := newGitLabMock([]*model.Note{
			{ID: 1, Body: "LGTM"},
			{ID: 2, Body: "# Security tooling scan results\nold"},
			{ID: 3, Body: "# Security tooling scan results\nolder duplicate"},
		})
		uc := usecase.NewComment(gitlab, "42", 7)

		note, err := uc.Upsert(ctx, body)
		gt.NoError(t, err).Required()
		gt.Equal(t, types.NoteID(2), note.ID)

		calls := gitlab.UpdateMergeRequestNoteCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, types.NoteID(2), calls[0].NoteID)
		gt.Equal(t, body, calls[0].Body)
		gt.A(t, gitlab.CreateMergeRequestNoteCalls()).Length(0)
	})

	t.Run("system notes are ignored", func(t *testing.T) {
		gitlab := newGitLabMock([]*model.Note{
			{ID: 9, Body: "changed the description: Security tooling scan results", System: true},
		})
		uc := usecase.NewComment(gitlab, "42", 7)

		_, err := uc.Upsert(ctx, body)
		gt.NoError(t, err)
		gt.A(t, gitlab.CreateMergeRequestNoteCalls()).Length(1)
	})

	t.Run("falls back to create when listing fails", func(t *testing.T) {
		gitlab := newGitLabMock(nil)
		gitlab.ListMergeRequestNotesFunc = func(ctx context.Context, projectID types.ProjectID, mrIID types.MergeRequestIID) ([]*model.Note, error) {
			return nil, goerr.New("403 Forbidden")
		}
		uc := usecase.NewComment(gitlab, "42", 7)

		_, err := uc.Upsert(ctx, body)
		gt.NoError(t, err)
		gt.A(t, gitlab.CreateMergeRequestNoteCalls()).Length(1)
	})

	t.Run("create failure is returned", func(t *testing.T) {
		gitlab := newGitLabMock(nil)
		gitlab.CreateMergeRequestNoteFunc = func(ctx context.Context, projectID types.ProjectID, mrIID types.MergeRequestIID, body string) (*model.Note, error) {
			return nil, goerr.New("401 Unauthorized")
		}
		uc := usecase.NewComment(gitlab, "42", 7)

		_, err := uc.Upsert(ctx, body)
		gt.Error(t, err)
	})
}
