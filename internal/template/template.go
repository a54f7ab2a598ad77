package template

import (
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/htmlpack/internal/logger"
)

// Variables holds the data to be injected into template placeholders.
// Values are inserted as given; callers escape them for their context.
type Variables struct {
	Title  string // Document title
	URL    string // iframe source
	Icon   string // Full <link rel="icon"> line, or empty
	Script string // Ad script markup
	Body   string // Original document for the shell template
}

// Render replaces {{variable}} placeholders in template with actual values.
// Supports the following variables:
// - {{title}} - Document title
// - {{url}} - iframe source URL
// - {{icon}} - Favicon link line (empty if no logo)
// - {{script}} - Injected script markup
// - {{body}} - Original document content
//
// Substitution is a single left-to-right pass: text coming from a value is
// never scanned for further placeholders.
func Render(template string, vars Variables) string {
	r := strings.NewReplacer(
		"{{title}}", vars.Title,
		"{{url}}", vars.URL,
		"{{icon}}", vars.Icon,
		"{{script}}", vars.Script,
		"{{body}}", vars.Body,
	)
	return r.Replace(template)
}

// LoadFromFile loads a template from a file.
func LoadFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template file %s: %w", path, err)
	}
	return string(data), nil
}

// GetTemplate returns the template at customPath, or fallback when
// customPath is empty.
func GetTemplate(customPath, fallback string) (string, error) {
	if customPath == "" {
		return fallback, nil
	}
	logger.Debug("Using custom template: %s", customPath)
	return LoadFromFile(customPath)
}
