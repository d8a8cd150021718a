package report

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/secmon-lab/aikomment/pkg/domain/model"
)

// CommentMarker identifies the merge request note owned by this tool
const CommentMarker = "Security tooling scan results"

// filesBeforeFold is the number of affected files shown before the rest is collapsed
const filesBeforeFold = 2

// RenderComment builds the full merge request comment around a scan section
func RenderComment(pipeline *model.PipelineContext, section string) string {
	var b strings.Builder

	b.WriteString("# " + CommentMarker + "\n\n")
	b.WriteString("|   |   |\n|---|---|\n")
	fmt.Fprintf(&b, "|Pipeline ID|[%s](%s)|\n", pipeline.PipelineID, pipeline.PipelineURL)
	fmt.Fprintf(&b, "|Commit sha1|%s|\n\n", pipeline.CommitSHA)
	b.WriteString("\n\n")
	b.WriteString(section)

	return b.String()
}

// RenderScanFailure is the section used when findings could not be collected
func RenderScanFailure() string {
	return "\nFailed to generate Aikido table\n"
}

// RenderScanSection renders the SAST section for the reported issue groups.
// aikidoURL is the base URL of the Aikido web application.
func RenderScanSection(pipeline *model.PipelineContext, result *model.ScanResult, aikidoURL string) string {
	if result.Count() == 0 {
		return "\n# SAST scan results\nNo high or critical issues found in codebase ✅"
	}

	var table strings.Builder
	table.WriteString("|Issue description|File location or affected package|Severity|Link|\n|---|---|---|---|\n")

	for _, group := range result.Groups {
		fmt.Fprintf(&table, "|%s|%s|%s|%s|\n",
			escapeCell(describe(group)),
			fileCell(pipeline, group),
			severityBadge(group.Severity),
			issueLink(aikidoURL, result.Repository, group),
		)
	}

	return fmt.Sprintf("\n# SAST scan results\n%d issues found in codebase❗\n<details><summary>SAST scan results</summary>\n\n%s\n</details>",
		result.Count(), table.String())
}

func describe(group *model.IssueGroup) string {
	if group.Description != "" {
		return group.Description
	}
	if group.Title != "" {
		return group.Title
	}
	for _, issue := range group.Issues {
		if issue.AffectedPackage != "" {
			return issue.AffectedPackage
		}
	}
	return ""
}

func fileCell(pipeline *model.PipelineContext, group *model.IssueGroup) string {
	var b strings.Builder
	seenPackages := map[string]bool{}
	seenFiles := map[string]bool{}
	files := 0

	for _, issue := range group.Issues {
		if issue.AffectedFile == "" {
			if issue.AttackSurface == model.AttackSurfaceDockerContainer {
				fmt.Fprintf(&b, "[Dockerfile](%s)", pipeline.BlobURL("Dockerfile"))
				break
			}
			if issue.AffectedPackage == "" || seenPackages[issue.AffectedPackage] {
				continue
			}
			seenPackages[issue.AffectedPackage] = true
			fmt.Fprintf(&b, "Package: `%s`<br>", issue.AffectedPackage)
			continue
		}

		if seenFiles[issue.AffectedFile] {
			continue
		}
		seenFiles[issue.AffectedFile] = true

		if files == filesBeforeFold {
			b.WriteString("<details><summary>view more files</summary>")
		}
		fmt.Fprintf(&b, "[%s](%s)<br>", escapeCell(issue.AffectedFile), pipeline.BlobURL(issue.AffectedFile))
		files++
	}

	if files > filesBeforeFold {
		b.WriteString("</details>")
	}

	return b.String()
}

func severityBadge(sev model.Severity) string {
	switch sev.Normalize() {
	case model.SeverityCritical:
		return "$`\\textcolor{red}{\\text{critical}}`$"
	case model.SeverityHigh:
		return "$`\\textcolor{orange}{\\text{high}}`$"
	case model.SeverityMedium:
		return "$`\\textcolor{yellow}{\\text{medium}}`$"
	default:
		return string(sev)
	}
}

func issueLink(aikidoURL string, repo *model.CodeRepository, group *model.IssueGroup) string {
	var repoID string
	if repo != nil {
		repoID = repo.ID.String()
	}
	return fmt.Sprintf("%s/repositories/%s?sidebarIssue=%s",
		strings.TrimSuffix(aikidoURL, "/"),
		url.PathEscape(repoID),
		url.QueryEscape(group.ID.String()))
}

// escapeCell keeps free text from breaking the markdown table
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\r\n", "<br>")
	return strings.ReplaceAll(s, "\n", "<br>")
}
