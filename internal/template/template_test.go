package template

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		vars     Variables
		want     string
	}{
		{
			name:     "simple substitution",
			template: "<title>{{title}}</title><iframe src=\"{{url}}\">",
			vars: Variables{
				Title: "Test App",
				URL:   "https://x.com",
			},
			want: "<title>Test App</title><iframe src=\"https://x.com\">",
		},
		{
			name:     "empty values",
			template: "{{icon}}<head>{{script}}</head>",
			vars:     Variables{},
			want:     "<head></head>",
		},
		{
			name:     "repeated placeholder",
			template: "{{title}}|{{title}}",
			vars:     Variables{Title: "A"},
			want:     "A|A",
		},
		{
			name:     "placeholder not replaced if variable unknown",
			template: "{{title}} {{unknown}}",
			vars:     Variables{Title: "t"},
			want:     "t {{unknown}}",
		},
		{
			name:     "values are not rescanned",
			template: "<title>{{title}}</title><body>{{body}}</body>",
			vars: Variables{
				Title: "Shell",
				Body:  "literal {{title}} and {{script}}",
			},
			want: "<title>Shell</title><body>literal {{title}} and {{script}}</body>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.template, tt.vars)
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultWrapper(t *testing.T) {
	if !strings.HasPrefix(DefaultWrapper, "<!DOCTYPE html>") {
		t.Error("wrapper should start with an HTML5 doctype")
	}
	for _, placeholder := range []string{"{{title}}", "{{url}}", "{{icon}}"} {
		if !strings.Contains(DefaultWrapper, placeholder) {
			t.Errorf("wrapper missing %s", placeholder)
		}
	}
	if !strings.Contains(DefaultWrapper, "border: none") || !strings.Contains(DefaultWrapper, "margin: 0") {
		t.Error("wrapper iframe should be full-bleed")
	}
}

func TestDefaultShell(t *testing.T) {
	for _, placeholder := range []string{"{{title}}", "{{script}}", "{{body}}"} {
		if !strings.Contains(DefaultShell, placeholder) {
			t.Errorf("shell missing %s", placeholder)
		}
	}
	if strings.Index(DefaultShell, "{{script}}") > strings.Index(DefaultShell, "</head>") {
		t.Error("script placeholder should sit inside head")
	}
}

func TestGetTemplate(t *testing.T) {
	t.Run("fallback when no path", func(t *testing.T) {
		got, err := GetTemplate("", "fallback")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "fallback" {
			t.Errorf("GetTemplate() = %q, want fallback", got)
		}
	})

	t.Run("custom file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wrapper.html")
		if err := os.WriteFile(path, []byte("<p>{{title}}</p>"), 0644); err != nil {
			t.Fatalf("failed to write template: %v", err)
		}
		got, err := GetTemplate(path, "fallback")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "<p>{{title}}</p>" {
			t.Errorf("GetTemplate() = %q", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := GetTemplate(filepath.Join(t.TempDir(), "nope.html"), "fallback")
		if err == nil {
			t.Error("expected error for missing template file")
		}
	})
}
