package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mark3labs/htmlpack/internal/app"
	"github.com/mark3labs/htmlpack/internal/tui/theme"
)

var previewFlags struct {
	app appFlags
}

var previewCmd = &cobra.Command{
	Use:   "preview [manifest]",
	Short: "Show step validity and the live preview for an app",
	Long: `Show which wizard steps an app satisfies and the preview the wizard would
display: the wrapped URL, or the HTML with scripts and event handlers removed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	previewFlags.app.register(previewCmd.Flags())
}

func runPreview(cmd *cobra.Command, args []string) error {
	manifestPath := ""
	if len(args) == 1 {
		manifestPath = args[0]
	}
	state, err := previewFlags.app.loadState(afero.NewOsFs(), manifestPath, cfg.LogoMaxSize)
	if err != nil {
		return err
	}
	printPreview(cmd.OutOrStdout(), state)
	return nil
}

func printPreview(w io.Writer, s *app.State) {
	st := theme.NewCatppuccinMocha().S()
	mark := func(ok bool) string {
		if ok {
			return st.Success.Render("✓")
		}
		return st.Error.Render("✗")
	}

	v := s.Validity()
	_, _ = fmt.Fprintln(w, st.Title.Render(s.AppName()))
	_, _ = fmt.Fprintf(w, "%s %s\n", mark(v.Details), app.StepDetails)
	_, _ = fmt.Fprintf(w, "%s %s (%s)\n", mark(v.Source), app.StepSource, s.SourceType())
	_, _ = fmt.Fprintf(w, "%s %s\n", mark(v.Publish), app.StepPublish)
	_, _ = fmt.Fprintln(w)

	p := s.Preview()
	switch p.Kind {
	case app.PreviewURL:
		_, _ = fmt.Fprintf(w, "%s %s\n", st.Muted.Render("iframe →"), p.Content)
	case app.PreviewHTML:
		if heading, excerpt := p.Summary(); heading != "" || excerpt != "" {
			if heading != "" {
				_, _ = fmt.Fprintln(w, st.Title.Render(heading))
			}
			if excerpt != "" {
				_, _ = fmt.Fprintln(w, st.Muted.Render(excerpt))
			}
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintln(w, p.Content)
	default:
		_, _ = fmt.Fprintln(w, st.Muted.Render("Nothing to preview"))
	}
}
