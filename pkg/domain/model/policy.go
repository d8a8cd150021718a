package model

import (
	"slices"
	"sort"

	"github.com/m-mizutani/goerr/v2"
)

// ReportPolicy decides which issue groups end up in the merge request comment
type ReportPolicy struct {
	Severities   []Severity `yaml:"severities"`
	ExcludeTypes []string   `yaml:"exclude_types,omitempty"`
}

// NewReportPolicy creates a policy reporting high and critical issue groups
func NewReportPolicy() *ReportPolicy {
	return &ReportPolicy{
		Severities: slices.Clone(DefaultSeverities),
	}
}

// Validate validates the report policy
func (p *ReportPolicy) Validate() error {
	if len(p.Severities) == 0 {
		return goerr.New("at least one severity is required")
	}

	for i, sev := range p.Severities {
		if !sev.Normalize().IsValid() {
			return goerr.New("invalid severity in report policy",
				goerr.V("index", i),
				goerr.V("severity", sev))
		}
	}

	for i, typ := range p.ExcludeTypes {
		if typ == "" {
			return goerr.New("empty issue type in report policy", goerr.V("index", i))
		}
	}

	return nil
}

// Allows returns true if the issue group should be reported
func (p *ReportPolicy) Allows(group *IssueGroup) bool {
	if group == nil {
		return false
	}
	if slices.Contains(p.ExcludeTypes, group.Type) {
		return false
	}

	sev := group.Severity.Normalize()
	for _, allowed := range p.Severities {
		if allowed.Normalize() == sev {
			return true
		}
	}
	return false
}

// Filter returns the issue groups allowed by the policy, most severe first.
// Groups with the same severity keep their original order.
func (p *ReportPolicy) Filter(groups []*IssueGroup) []*IssueGroup {
	result := make([]*IssueGroup, 0, len(groups))
	for _, group := range groups {
		if p.Allows(group) {
			result = append(result, group)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Severity.Rank() > result[j].Severity.Rank()
	})

	return result
}
