package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kataras/stitch-extractor/pkg/config"
	"github.com/kataras/stitch-extractor/pkg/stitch"
)

const version = stitch.Version

var (
	configPath   string
	apiKey       string
	accessToken  string
	quotaProject string
	baseURL      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stitch-extractor",
		Short: "Extract design systems from Google Stitch screens",
		Long:  "A tool to extract colors, typography, spacing and layout patterns from screens generated by Google Stitch, and to expose Stitch as MCP tools",
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ~/.stitch-extractor/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&apiKey, "api-key", "k", "", "Stitch API key (or STITCH_API_KEY)")
	rootCmd.PersistentFlags().StringVarP(&accessToken, "token", "t", "", "OAuth access token (or STITCH_ACCESS_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&quotaProject, "quota-project", "", "Google Cloud project billed for requests (or GOOGLE_CLOUD_PROJECT)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Stitch API base URL (or STITCH_BASE_URL)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("stitch-extractor version %s\n", version)
		},
	}

	rootCmd.AddCommand(
		newExtractCmd(),
		newProjectsCmd(),
		newScreensCmd(),
		newGenerateCmd(),
		newServeCmd(),
		newConfigCmd(),
		versionCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, then the environment, then the global flags,
// each layer overriding the previous one.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if accessToken != "" {
		cfg.AccessToken = accessToken
	}
	if quotaProject != "" {
		cfg.QuotaProject = quotaProject
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return cfg, nil
}

// newClient loads and validates the configuration and returns a Stitch client for it.
func newClient() (*stitch.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return stitch.NewClient(*cfg), cfg, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func fail(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// cliLogger implements stitchextractor.Logger with colored terminal output.
type cliLogger struct {
	w io.Writer
}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.w, format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.w, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(l.w, "✗ "+format+"\n", args...)
}
