package usecase

import (
	"context"

	"github.com/secmon-lab/aikomment/pkg/domain/model"
)

// ScanUseCase defines the interface for collecting findings
type ScanUseCase interface {
	// Run collects the reported issue groups of the Aikido repository matching projectName
	Run(ctx context.Context, projectName string) (*model.ScanResult, error)
}

// CommentUseCase defines the interface for publishing the merge request comment
type CommentUseCase interface {
	// Upsert updates the existing scan comment or creates a new one
	Upsert(ctx context.Context, body string) (*model.Note, error)
}
