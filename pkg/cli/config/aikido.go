package config

import (
	"log/slog"

	"github.com/secmon-lab/aikomment/pkg/service/aikido"
	"github.com/urfave/cli/v3"
)

// Aikido holds Aikido API configuration
type Aikido struct {
	ClientID     string
	ClientSecret string
	URL          string
	Concurrency  int
}

// Flags returns CLI flags for Aikido configuration
func (a *Aikido) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "aikido-client-id",
			Usage:       "Aikido API client ID",
			Category:    "Aikido",
			Sources:     cli.EnvVars("AIKIDO_CLIENT_ID"),
			Destination: &a.ClientID,
		},
		&cli.StringFlag{
			Name:        "aikido-client-secret",
			Usage:       "Aikido API client secret",
			Category:    "Aikido",
			Sources:     cli.EnvVars("AIKIDO_CLIENT_SECRET"),
			Destination: &a.ClientSecret,
		},
		&cli.StringFlag{
			Name:        "aikido-url",
			Usage:       "Aikido base URL",
			Category:    "Aikido",
			Value:       aikido.DefaultBaseURL,
			Sources:     cli.EnvVars("AIKIDO_URL"),
			Destination: &a.URL,
		},
		&cli.IntFlag{
			Name:        "aikido-concurrency",
			Usage:       "Number of issue groups exported in parallel",
			Category:    "Aikido",
			Value:       4,
			Sources:     cli.EnvVars("AIKIDO_CONCURRENCY"),
			Destination: &a.Concurrency,
		},
	}
}

// Configure creates an Aikido client
func (a *Aikido) Configure() *aikido.Client {
	return aikido.New(a.ClientID, a.ClientSecret, aikido.WithBaseURL(a.URL))
}

// Missing returns the names of required settings that are not set
func (a *Aikido) Missing() []string {
	var missing []string
	if a.ClientID == "" {
		missing = append(missing, "aikido-client-id")
	}
	if a.ClientSecret == "" {
		missing = append(missing, "aikido-client-secret")
	}
	return missing
}

// LogValue returns structured log value
func (a Aikido) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_client_id", a.ClientID != ""),
		slog.Bool("has_client_secret", a.ClientSecret != ""),
		slog.String("url", a.URL),
		slog.Int("concurrency", a.Concurrency),
	)
}
