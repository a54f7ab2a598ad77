package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/mark3labs/htmlpack/internal/config"
	"github.com/mark3labs/htmlpack/internal/logger"
	"github.com/mark3labs/htmlpack/internal/tui/theme"
)

const (
	logoText1 = "█ █ ▀█▀ █▀▄▀█ █   █▀█ ▄▀█ █▀▀ █▄▀"
	logoText2 = "█▀█  █  █ ▀ █ █▄▄ █▀▀ █▀█ █▄▄ █ █"
)

// Version set via ldflags during build
var version = "dev"

// cfg is loaded before any subcommand runs.
var cfg = config.Default()

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "htmlpack",
	Short:             "Package a web app into a single HTML file",
	PersistentPreRunE: loadConfig,
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	logger.Debug("htmlpack %s: output_dir=%s overwrite=%v", version, cfg.OutputDir, cfg.Overwrite)
	return nil
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

htmlpack turns a website URL, a pasted HTML document or a multi-page bundle
into one self-contained HTML file. Run "htmlpack build" for the interactive
wizard, or pass a manifest or flags to build without prompts.`

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(mcpCmd)
}
