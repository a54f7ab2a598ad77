package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mark3labs/htmlpack/internal/mcpserver"
	"github.com/mark3labs/htmlpack/internal/packager"
)

var mcpFlags struct {
	http      bool
	outputDir string
	force     bool
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the packager as MCP tools",
	Long: `Serve the validate-app and export-app tools over the Model Context Protocol.

By default the server speaks MCP over stdin/stdout. Use --http to serve the
streamable HTTP transport on a random localhost port instead.`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().BoolVar(&mcpFlags.http, "http", false, "Serve streamable HTTP instead of stdio")
	mcpCmd.Flags().StringVarP(&mcpFlags.outputDir, "output-dir", "o", "", "Default directory for written exports (default: config output_dir)")
	mcpCmd.Flags().BoolVarP(&mcpFlags.force, "force", "f", false, "Allow exports to overwrite existing files")
}

func runMCP(cmd *cobra.Command, args []string) error {
	p, err := packager.NewFromFiles(cfg.WrapperTemplate, cfg.ShellTemplate)
	if err != nil {
		return err
	}

	outputDir := cfg.OutputDir
	if mcpFlags.outputDir != "" {
		outputDir = mcpFlags.outputDir
	}

	srv := mcpserver.New(mcpserver.Config{
		Packager:  p,
		Fs:        afero.NewOsFs(),
		OutputDir: outputDir,
		Overwrite: cfg.Overwrite || mcpFlags.force,
		Version:   version,
	})

	if !mcpFlags.http {
		return srv.ServeStdio()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := srv.Start(ctx); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on %s (ctrl+c to stop)\n", srv.URL())

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
