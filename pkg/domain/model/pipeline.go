package model

import (
	"net/url"
	"strings"
)

// PipelineContext describes the GitLab pipeline that triggered the scan
type PipelineContext struct {
	ProjectName string
	ProjectURL  string
	RefName     string
	PipelineID  string
	PipelineURL string
	CommitSHA   string
}

// BlobURL returns the link to a file of the project at the pipeline's ref
func (p *PipelineContext) BlobURL(path string) string {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return strings.TrimSuffix(p.ProjectURL, "/") + "/-/blob/" + p.RefName + "/" + strings.Join(segments, "/")
}
