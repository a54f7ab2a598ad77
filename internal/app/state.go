// Package app holds the wizard state machine: the fields a user enters while
// assembling an app, the step they are on, and the views derived from them.
//
// State is owned by a single controller and mutated one input event at a time;
// it is not safe for concurrent use.
package app

import (
	"fmt"
	"strings"
)

// DefaultAppName is the name a new session starts with.
const DefaultAppName = "My App"

// Step identifies one page of the wizard.
type Step int

const (
	StepDetails Step = iota + 1 // name and logo
	StepSource                  // content source
	StepPublish                 // ads and export

	FirstStep = StepDetails
	LastStep  = StepPublish
)

func (s Step) String() string {
	switch s {
	case StepDetails:
		return "App Details"
	case StepSource:
		return "Content Source"
	case StepPublish:
		return "Ads & Export"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// SourceType selects where the exported document comes from.
type SourceType string

const (
	SourceURL       SourceType = "url"
	SourceHTML      SourceType = "html"
	SourceMultiPage SourceType = "multipage"
)

// SourceTypes lists the source types in display order.
var SourceTypes = []SourceType{SourceURL, SourceHTML, SourceMultiPage}

// ParseSourceType parses a user-supplied source type, case-insensitively.
func ParseSourceType(s string) (SourceType, error) {
	switch SourceType(strings.ToLower(strings.TrimSpace(s))) {
	case SourceURL:
		return SourceURL, nil
	case SourceHTML:
		return SourceHTML, nil
	case SourceMultiPage, "multi-page", "bundle":
		return SourceMultiPage, nil
	default:
		return "", fmt.Errorf("unknown source type %q (want url, html or multipage)", s)
	}
}

// State is the wizard's session state.
type State struct {
	step        Step
	appName     string
	appLogo     string
	sourceType  SourceType
	appURL      string
	htmlContent string
	files       []BundleFile
	enableAds   bool
	adScript    string

	preview Preview
}

// New returns a session at step 1 with default values.
func New() *State {
	s := &State{
		step:       FirstStep,
		appName:    DefaultAppName,
		sourceType: SourceURL,
	}
	s.refreshPreview()
	return s
}

// Navigation. Bounds are enforced here; validity gating is left to callers.

// NextStep advances one step unless already on the last step.
func (s *State) NextStep() {
	if s.step < LastStep {
		s.step++
	}
}

// PrevStep goes back one step unless already on the first step.
func (s *State) PrevStep() {
	if s.step > FirstStep {
		s.step--
	}
}

// Input handlers.

func (s *State) SetAppName(name string) { s.appName = name }

// SetLogo stores an already-encoded data URI. An empty string clears the logo.
func (s *State) SetLogo(dataURI string) { s.appLogo = dataURI }

func (s *State) ClearLogo() { s.appLogo = "" }

func (s *State) SelectSourceType(t SourceType) {
	s.sourceType = t
	s.refreshPreview()
}

func (s *State) SetURL(u string) {
	s.appURL = u
	s.refreshPreview()
}

func (s *State) SetHTML(content string) {
	s.htmlContent = content
	s.refreshPreview()
}

// SetFiles replaces the bundle. The slice is copied.
func (s *State) SetFiles(files []BundleFile) {
	s.files = append([]BundleFile(nil), files...)
	s.refreshPreview()
}

func (s *State) ToggleAds()            { s.enableAds = !s.enableAds }
func (s *State) SetAds(enabled bool)   { s.enableAds = enabled }
func (s *State) SetAdScript(sc string) { s.adScript = sc }

// Accessors.

func (s *State) Step() Step             { return s.step }
func (s *State) AppName() string        { return s.appName }
func (s *State) AppLogo() string        { return s.appLogo }
func (s *State) HasLogo() bool          { return s.appLogo != "" }
func (s *State) SourceType() SourceType { return s.sourceType }
func (s *State) AppURL() string         { return s.appURL }
func (s *State) HTMLContent() string    { return s.htmlContent }
func (s *State) AdsEnabled() bool       { return s.enableAds }
func (s *State) AdScript() string       { return s.adScript }

// Files returns a copy of the bundle.
func (s *State) Files() []BundleFile {
	return append([]BundleFile(nil), s.files...)
}

// FilesSummary describes the bundle selection for display.
func (s *State) FilesSummary() string {
	switch len(s.files) {
	case 0:
		return "No files selected"
	case 1:
		return s.files[0].Name
	default:
		return fmt.Sprintf("%d files selected", len(s.files))
	}
}

// Preview returns the preview computed after the latest mutation.
func (s *State) Preview() Preview { return s.preview }
