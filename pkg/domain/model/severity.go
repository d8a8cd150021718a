package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Severity represents the severity level reported by Aikido
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// DefaultSeverities is the allow-list used when nothing else is configured
var DefaultSeverities = []Severity{SeverityHigh, SeverityCritical}

// ParseSeverity parses a severity name case-insensitively
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(strings.ToLower(strings.TrimSpace(s)))
	if !sev.IsValid() {
		return "", goerr.New("invalid severity", goerr.V("severity", s))
	}
	return sev, nil
}

// String returns the string representation
func (s Severity) String() string {
	return string(s)
}

// Normalize returns the lower-cased severity. Aikido sends lower-case values
// but this keeps comparisons robust against casing differences.
func (s Severity) Normalize() Severity {
	return Severity(strings.ToLower(string(s)))
}

// IsValid checks if the severity is one of the known levels
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	default:
		return false
	}
}

// Rank returns the importance of the severity, higher is more severe.
// Unknown severities rank 0.
func (s Severity) Rank() int {
	switch s.Normalize() {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}
