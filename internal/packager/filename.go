package packager

import (
	"strings"
	"unicode"
)

// FallbackFilename is used when the app name yields an empty stem.
const FallbackFilename = "my-app.html"

// Filename derives the download name from an app name: every run of
// whitespace becomes a single hyphen and ".html" is appended. Case and all
// other characters are kept.
func Filename(appName string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range appName {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return FallbackFilename
	}
	return b.String() + ".html"
}
