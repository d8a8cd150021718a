package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aikomment/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Policy holds the report policy configuration
type Policy struct {
	File         string
	Severities   []string
	ExcludeTypes []string
}

// Flags returns CLI flags for the report policy
func (p *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "policy-file",
			Usage:       "YAML file with the report policy",
			Category:    "Policy",
			Sources:     cli.EnvVars("AIKOMMENT_POLICY_FILE"),
			Destination: &p.File,
		},
		&cli.StringSliceFlag{
			Name:        "severity",
			Usage:       "Severity to report, repeatable (default: high, critical)",
			Category:    "Policy",
			Sources:     cli.EnvVars("AIKOMMENT_SEVERITIES"),
			Destination: &p.Severities,
		},
		&cli.StringSliceFlag{
			Name:        "exclude-type",
			Usage:       "Issue type left out of the report, repeatable",
			Category:    "Policy",
			Sources:     cli.EnvVars("AIKOMMENT_EXCLUDE_TYPES"),
			Destination: &p.ExcludeTypes,
		},
	}
}

// Configure builds the report policy. Flags override the policy file, and
// the policy file overrides the defaults.
func (p *Policy) Configure() (*model.ReportPolicy, error) {
	policy := model.NewReportPolicy()
	if p.File != "" {
		loaded, err := LoadPolicyFromFile(p.File)
		if err != nil {
			return nil, err
		}
		policy = loaded
	}

	if len(p.Severities) > 0 {
		policy.Severities = make([]model.Severity, 0, len(p.Severities))
		for _, s := range p.Severities {
			sev, err := model.ParseSeverity(s)
			if err != nil {
				return nil, goerr.Wrap(err, "invalid severity flag", goerr.V("severity", s))
			}
			policy.Severities = append(policy.Severities, sev)
		}
	}
	if len(p.ExcludeTypes) > 0 {
		policy.ExcludeTypes = p.ExcludeTypes
	}

	if err := policy.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid report policy")
	}
	return policy, nil
}

// LogValue returns structured log value
func (p Policy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("file", p.File),
		slog.Any("severities", p.Severities),
		slog.Any("exclude_types", p.ExcludeTypes),
	)
}

// LoadPolicyFromFile loads a report policy from YAML file
func LoadPolicyFromFile(path string) (*model.ReportPolicy, error) {
	if path == "" {
		return nil, goerr.New("policy file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "policy file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read policy file",
			goerr.V("path", path))
	}

	policy := model.NewReportPolicy()
	if err := yaml.Unmarshal(data, policy); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML policy",
			goerr.V("path", path))
	}

	for i, sev := range policy.Severities {
		policy.Severities[i] = sev.Normalize()
	}

	if err := policy.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid policy",
			goerr.V("path", path))
	}

	return policy, nil
}
