package app

import (
	"errors"
	"net/url"
	"strings"
)

// Schemes whose URLs are meaningless without a host.
var hostSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
	"ftp":   true,
}

// IsAbsoluteURL reports whether s, ignoring surrounding whitespace, is a
// well-formed absolute URL.
func IsAbsoluteURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	var escErr url.EscapeError
	if errors.As(err, &escErr) {
		// A stray percent sign is not a reason to reject an address.
		u, err = url.Parse(strings.ReplaceAll(s, "%", "%25"))
	}
	if err != nil || u.Scheme == "" {
		return false
	}
	if hostSchemes[strings.ToLower(u.Scheme)] && u.Host == "" {
		return false
	}
	return true
}

// StepValid reports whether the fields of the given step are acceptable.
// Steps outside the wizard are never valid.
func (s *State) StepValid(step Step) bool {
	switch step {
	case StepDetails:
		return strings.TrimSpace(s.appName) != ""
	case StepSource:
		return s.sourceValid()
	case StepPublish:
		return true
	default:
		return false
	}
}

func (s *State) sourceValid() bool {
	switch s.sourceType {
	case SourceURL:
		return IsAbsoluteURL(s.appURL)
	case SourceHTML:
		return strings.TrimSpace(s.htmlContent) != ""
	case SourceMultiPage:
		return len(s.files) > 0
	default:
		return false
	}
}

// CurrentStepValid reports validity of the step the session is on.
func (s *State) CurrentStepValid() bool { return s.StepValid(s.step) }

// Validity is a snapshot of per-step validity.
type Validity struct {
	Details bool `json:"details"`
	Source  bool `json:"source"`
	Publish bool `json:"publish"`
}

// Complete reports whether every step is valid.
func (v Validity) Complete() bool { return v.Details && v.Source && v.Publish }

// Validity computes the current per-step validity.
func (s *State) Validity() Validity {
	return Validity{
		Details: s.StepValid(StepDetails),
		Source:  s.StepValid(StepSource),
		Publish: s.StepValid(StepPublish),
	}
}
