package model

import (
	"github.com/secmon-lab/aikomment/pkg/domain/types"
)

// AttackSurfaceDockerContainer marks findings in the container image rather than a source file
const AttackSurfaceDockerContainer = "docker_container"

// CodeRepository is a code repository registered in Aikido
type CodeRepository struct {
	ID             types.AikidoID `json:"id"`
	Name           string         `json:"name"`
	Provider       string         `json:"provider"`
	ExternalRepoID string         `json:"external_repo_id"`
	Active         bool           `json:"active"`
}

// IssueGroup is a batch of findings that share a root cause
type IssueGroup struct {
	ID            types.AikidoID `json:"id"`
	Type          string         `json:"type"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Severity      Severity       `json:"severity"`
	SeverityScore int            `json:"severity_score"`
	Status        string         `json:"status"`

	// Issues is filled from the issue export, not by the issue group API
	Issues []*Issue `json:"-"`
}

// Issue is a single finding belonging to an issue group
type Issue struct {
	ID              types.AikidoID `json:"id"`
	GroupID         types.AikidoID `json:"group_id"`
	Type            string         `json:"type"`
	Rule            string         `json:"rule"`
	Severity        Severity       `json:"severity"`
	SeverityScore   int            `json:"severity_score"`
	AttackSurface   string         `json:"attack_surface"`
	AffectedPackage string         `json:"affected_package"`
	AffectedFile    string         `json:"affected_file"`
	StartLine       int            `json:"start_line"`
	EndLine         int            `json:"end_line"`
	CVEID           string         `json:"cve_id"`
	Status          string         `json:"status"`
}

// ScanResult holds the findings of one repository after the report policy has been applied
type ScanResult struct {
	Repository *CodeRepository
	Groups     []*IssueGroup
}

// Count returns the number of reported issue groups
func (r *ScanResult) Count() int {
	if r == nil {
		return 0
	}
	return len(r.Groups)
}
