package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/aikomment/pkg/domain/model"
	"github.com/secmon-lab/aikomment/pkg/service/report"
	"github.com/secmon-lab/aikomment/pkg/utils/apperr"
)

// Report builds the merge request comment for a pipeline
type Report struct {
	scan      ScanUseCase
	pipeline  *model.PipelineContext
	aikidoURL string
}

// NewReport creates a new Report instance
func NewReport(scan ScanUseCase, pipeline *model.PipelineContext, aikidoURL string) *Report {
	return &Report{
		scan:      scan,
		pipeline:  pipeline,
		aikidoURL: aikidoURL,
	}
}

// Build runs the scan and renders the comment. A failed scan is logged and
// rendered as a failure section so the merge request still gets a comment.
func (uc *Report) Build(ctx context.Context) string {
	ctxlog.From(ctx).Info("Generating Aikido scan results table")

	result, err := uc.scan.Run(ctx, uc.pipeline.ProjectName)
	if err != nil {
		apperr.Handle(ctx, err)
		return report.RenderComment(uc.pipeline, report.RenderScanFailure())
	}

	return report.RenderComment(uc.pipeline, report.RenderScanSection(uc.pipeline, result, uc.aikidoURL))
}
