// Package wizard is the interactive three-step packaging wizard.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/afero"

	"github.com/mark3labs/htmlpack/internal/app"
	"github.com/mark3labs/htmlpack/internal/logger"
	"github.com/mark3labs/htmlpack/internal/output"
	"github.com/mark3labs/htmlpack/internal/packager"
)

// ErrCancelled is returned by Run when the user leaves the wizard.
var ErrCancelled = errors.New("wizard cancelled by user")

// Options configure a wizard run.
type Options struct {
	Packager    *packager.Packager
	Fs          afero.Fs
	OutputDir   string
	Overwrite   bool
	LogoMaxSize int
	// State seeds the session, e.g. from a manifest. A fresh one is used when nil.
	State *app.State
}

// Result is what a completed wizard produced.
type Result struct {
	Path     string
	Artifact *packager.Artifact
}

// step is one page of the wizard.
type step interface {
	Focus() tea.Cmd
	Blur()
	// Commit applies input that is only read on leaving a field, such as paths.
	Commit()
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	Hints() []string
}

// advanceMsg asks the wizard to move past the current step.
type advanceMsg struct{}

func advance() tea.Msg { return advanceMsg{} }

type exportDoneMsg struct {
	path     string
	artifact *packager.Artifact
}

type exportFailedMsg struct {
	err error
}

// Model is the bubbletea model driving the session.
type Model struct {
	opts      Options
	state     *app.State
	steps     map[app.Step]step
	publish   *PublishStep
	exporting bool
	cancelled bool
	result    *Result
	width     int
	height    int
}

// New builds the wizard model.
func New(opts Options) *Model {
	if opts.Packager == nil {
		opts.Packager = packager.New(packager.Options{})
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	state := opts.State
	if state == nil {
		state = app.New()
	}

	publish := NewPublishStep(state, opts.OutputDir)
	return &Model{
		opts:  opts,
		state: state,
		steps: map[app.Step]step{
			app.StepDetails: NewDetailsStep(state, opts.Fs, opts.LogoMaxSize),
			app.StepSource:  NewSourceStep(state, opts.Fs),
			app.StepPublish: publish,
		},
		publish: publish,
		width:   80,
		height:  24,
	}
}

// Run starts a standalone program and blocks until the user exports or quits.
func Run(opts Options) (*Result, error) {
	m := New(opts)
	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}
	wiz, ok := finalModel.(*Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if wiz.cancelled || wiz.result == nil {
		return nil, ErrCancelled
	}
	return wiz.result, nil
}

// State exposes the session being edited.
func (m *Model) State() *app.State { return m.state }

// Result is set once an export succeeded.
func (m *Model) Result() *Result { return m.result }

// Cancelled reports whether the user quit without exporting.
func (m *Model) Cancelled() bool { return m.cancelled }

func (m *Model) current() step {
	return m.steps[m.state.Step()]
}

func (m *Model) Init() tea.Cmd {
	m.updateSizes()
	return m.current().Focus()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if m.exporting && msg.String() != "ctrl+c" {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "esc":
			if m.state.Step() == app.FirstStep {
				m.cancelled = true
				return m, tea.Quit
			}
			return m, m.back()
		case "ctrl+n":
			return m, m.next()
		case "ctrl+b":
			return m, m.back()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case advanceMsg:
		return m, m.next()

	case exportDoneMsg:
		m.exporting = false
		m.result = &Result{Path: msg.path, Artifact: msg.artifact}
		return m, tea.Quit

	case exportFailedMsg:
		m.exporting = false
		m.publish.SetExportError(msg.err)
		return m, nil
	}

	return m, m.current().Update(msg)
}

// next advances when the current step is valid; on the last step it exports.
func (m *Model) next() tea.Cmd {
	m.current().Commit()
	if !m.state.CurrentStepValid() {
		return nil
	}
	if m.state.Step() == app.LastStep {
		return m.export()
	}
	m.current().Blur()
	m.state.NextStep()
	return m.current().Focus()
}

func (m *Model) back() tea.Cmd {
	if m.state.Step() == app.FirstStep {
		return nil
	}
	m.current().Blur()
	m.state.PrevStep()
	return m.current().Focus()
}

func (m *Model) export() tea.Cmd {
	if m.exporting {
		return nil
	}
	m.exporting = true
	m.publish.SetExportError(nil)

	// The artifact is built here so the state is only read on the update
	// goroutine. The command does file I/O only.
	art, err := m.opts.Packager.Export(context.Background(), m.state)
	if err != nil {
		if errors.Is(err, packager.ErrMissingIndexFile) {
			err = fmt.Errorf("%w. Please include an index.html file", err)
		}
		logger.Warn("Export failed: %v", err)
		return func() tea.Msg { return exportFailedMsg{err: err} }
	}

	fsys, dir, overwrite := m.opts.Fs, m.opts.OutputDir, m.opts.Overwrite
	return func() tea.Msg {
		path, err := output.Write(fsys, dir, art, overwrite)
		if err != nil {
			return exportFailedMsg{err: err}
		}
		return exportDoneMsg{path: path, artifact: art}
	}
}

func (m *Model) contentSize() (int, int) {
	w := min(max(m.width-10, 40), 96)
	h := max(m.height-10, 10)
	return w, h
}

func (m *Model) updateSizes() {
	w, h := m.contentSize()
	for _, s := range m.steps {
		s.SetSize(w, h)
	}
}

func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	content := m.renderModal(m.current().View())

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(content).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})
	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// renderModal frames the step with its title, buttons and key hints.
func (m *Model) renderModal(stepContent string) string {
	w, _ := m.contentSize()
	cur := m.state.Step()

	title := fmt.Sprintf("htmlpack - Step %d of %d: %s", int(cur), int(app.LastStep), cur)

	nextLabel := "Next →"
	if cur == app.LastStep {
		nextLabel = "Export"
		if m.exporting {
			nextLabel = "Exporting…"
		}
	}
	var buttons []Button
	if cur == app.FirstStep {
		buttons = CreateCancelNextButtons(m.state.CurrentStepValid(), nextLabel)
	} else {
		buttons = CreateBackNextButtons(true, m.state.CurrentStepValid() && !m.exporting, nextLabel)
	}
	bar := NewButtonBar(buttons)
	bar.SetWidth(w)

	sections := []string{
		styleModalTitle.Width(w).Render(title),
		"",
		stepContent,
		"",
		bar.Render(),
		renderHintBar(m.current().Hints()...),
	}

	modal := styleModalContainer.Width(w + 6).Render(strings.Join(sections, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
