package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mark3labs/htmlpack/internal/app"
	"github.com/mark3labs/htmlpack/internal/logger"
	"github.com/mark3labs/htmlpack/internal/output"
	"github.com/mark3labs/htmlpack/internal/packager"
	"github.com/mark3labs/htmlpack/internal/tui/theme"
	"github.com/mark3labs/htmlpack/internal/tui/wizard"
)

var buildFlags struct {
	app         appFlags
	outputDir   string
	force       bool
	stdout      bool
	diff        bool
	interactive bool
}

var buildCmd = &cobra.Command{
	Use:   "build [manifest]",
	Short: "Package an app into a single HTML file",
	Long: `Package an app into a single HTML file.

Without a manifest or app flags, build opens the interactive wizard. With a
manifest (see "htmlpack init") or flags it builds without prompts; use
--interactive to review the result in the wizard first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildFlags.app.register(buildCmd.Flags())
	buildCmd.Flags().StringVarP(&buildFlags.outputDir, "output-dir", "o", "", "Directory to write into (default: config output_dir)")
	buildCmd.Flags().BoolVarP(&buildFlags.force, "force", "f", false, "Overwrite an existing output file")
	buildCmd.Flags().BoolVar(&buildFlags.stdout, "stdout", false, "Print the document instead of writing a file")
	buildCmd.Flags().BoolVar(&buildFlags.diff, "diff", false, "Show what ad injection changed (on stderr)")
	buildCmd.Flags().BoolVarP(&buildFlags.interactive, "interactive", "i", false, "Open the wizard prefilled from the manifest and flags")
}

// buildOptions are the resolved inputs of a build.
type buildOptions struct {
	outputDir string
	overwrite bool
	stdout    bool
	diff      bool
}

func runBuild(cmd *cobra.Command, args []string) error {
	fsys := afero.NewOsFs()

	p, err := packager.NewFromFiles(cfg.WrapperTemplate, cfg.ShellTemplate)
	if err != nil {
		return err
	}

	opts := buildOptions{
		outputDir: cfg.OutputDir,
		overwrite: cfg.Overwrite || buildFlags.force,
		stdout:    buildFlags.stdout,
		diff:      buildFlags.diff,
	}
	if buildFlags.outputDir != "" {
		opts.outputDir = buildFlags.outputDir
	}

	manifestPath := ""
	if len(args) == 1 {
		manifestPath = args[0]
	}
	state, err := buildFlags.app.loadState(fsys, manifestPath, cfg.LogoMaxSize)
	if err != nil {
		return err
	}

	headless := manifestPath != "" || buildFlags.app.any()
	if !headless || buildFlags.interactive {
		if !term.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("the wizard needs a terminal; pass a manifest or --url, --html-file or --files")
		}
		return runWizard(cmd.OutOrStdout(), fsys, p, state, opts)
	}

	return buildHeadless(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), fsys, p, state, opts)
}

func runWizard(w io.Writer, fsys afero.Fs, p *packager.Packager, state *app.State, opts buildOptions) error {
	res, err := wizard.Run(wizard.Options{
		Packager:    p,
		Fs:          fsys,
		OutputDir:   opts.outputDir,
		Overwrite:   opts.overwrite,
		LogoMaxSize: cfg.LogoMaxSize,
		State:       state,
	})
	if errors.Is(err, wizard.ErrCancelled) {
		_, _ = fmt.Fprintln(w, "Cancelled.")
		return nil
	}
	if err != nil {
		return err
	}
	printWritten(w, res.Path, len(res.Artifact.Content))
	return nil
}

// buildHeadless exports state without prompts.
func buildHeadless(ctx context.Context, stdout, stderr io.Writer, fsys afero.Fs, p *packager.Packager, state *app.State, opts buildOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := validate(state); err != nil {
		return err
	}

	art, err := p.Export(ctx, state)
	if err != nil {
		if errors.Is(err, packager.ErrMissingIndexFile) {
			return fmt.Errorf("export failed: %w; include an index.html file", err)
		}
		return fmt.Errorf("export failed: %w", err)
	}

	if opts.diff {
		doc, err := p.Document(ctx, state)
		if err != nil {
			return err
		}
		diff := packager.InjectionDiff(art.Filename, doc, string(art.Content))
		if diff == "" {
			_, _ = fmt.Fprintln(stderr, "No ad script injected.")
		} else {
			_, _ = fmt.Fprintln(stderr, colorizeDiff(diff))
		}
	}

	if opts.stdout {
		_, err := stdout.Write(art.Content)
		return err
	}

	path, err := output.Write(fsys, opts.outputDir, art, opts.overwrite)
	if err != nil {
		return err
	}
	printWritten(stdout, path, len(art.Content))
	return nil
}

func printWritten(w io.Writer, path string, size int) {
	s := theme.NewCatppuccinMocha().S()
	_, _ = fmt.Fprintf(w, "%s %s %s\n", s.Success.Render("✓ Wrote"), path, s.Muted.Render(fmt.Sprintf("(%d bytes)", size)))
	logger.Info("Build finished: %s", path)
}

// colorizeDiff styles a unified diff line by line.
func colorizeDiff(diff string) string {
	s := theme.NewCatppuccinMocha().S()
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			lines[i] = s.DiffHeader.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = s.DiffHunk.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = s.DiffInsert.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = s.DiffDelete.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
