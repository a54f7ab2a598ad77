package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	s := New()

	assert.Equal(t, StepDetails, s.Step())
	assert.Equal(t, "My App", s.AppName())
	assert.Equal(t, SourceURL, s.SourceType())
	assert.False(t, s.HasLogo())
	assert.False(t, s.AdsEnabled())
	assert.Empty(t, s.Files())
	assert.True(t, s.Preview().IsEmpty())
}

func TestNavigation_StaysInBounds(t *testing.T) {
	s := New()

	s.PrevStep()
	assert.Equal(t, StepDetails, s.Step(), "prev on first step is a no-op")

	s.NextStep()
	assert.Equal(t, StepSource, s.Step())
	s.NextStep()
	assert.Equal(t, StepPublish, s.Step())
	s.NextStep()
	assert.Equal(t, StepPublish, s.Step(), "next on last step is a no-op")

	s.PrevStep()
	assert.Equal(t, StepSource, s.Step())
}

func TestNavigation_NotGatedByValidity(t *testing.T) {
	s := New()
	s.SetAppName("   ")
	require.False(t, s.CurrentStepValid())

	s.NextStep()
	assert.Equal(t, StepSource, s.Step())
}

func TestParseSourceType(t *testing.T) {
	tests := []struct {
		in      string
		want    SourceType
		wantErr bool
	}{
		{"url", SourceURL, false},
		{"HTML", SourceHTML, false},
		{" multipage ", SourceMultiPage, false},
		{"multi-page", SourceMultiPage, false},
		{"bundle", SourceMultiPage, false},
		{"ftp", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSourceType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "App Details", StepDetails.String())
	assert.Equal(t, "Content Source", StepSource.String())
	assert.Equal(t, "Ads & Export", StepPublish.String())
	assert.Equal(t, "Step(7)", Step(7).String())
}

func TestFilesSummary(t *testing.T) {
	s := New()
	assert.Equal(t, "No files selected", s.FilesSummary())

	s.SetFiles([]BundleFile{MemFile("index.html", "")})
	assert.Equal(t, "index.html", s.FilesSummary())

	s.SetFiles([]BundleFile{MemFile("index.html", ""), MemFile("style.css", ""), MemFile("app.js", "")})
	assert.Equal(t, "3 files selected", s.FilesSummary())
}

func TestSetFiles_CopiesInput(t *testing.T) {
	files := []BundleFile{MemFile("index.html", "a")}
	s := New()
	s.SetFiles(files)

	files[0] = MemFile("other.html", "b")
	assert.Equal(t, "index.html", s.Files()[0].Name)
}

func TestAds(t *testing.T) {
	s := New()
	s.ToggleAds()
	assert.True(t, s.AdsEnabled())
	s.ToggleAds()
	assert.False(t, s.AdsEnabled())

	s.SetAds(true)
	s.SetAdScript("<script>ping()</script>")
	assert.True(t, s.AdsEnabled())
	assert.Equal(t, "<script>ping()</script>", s.AdScript())
}
