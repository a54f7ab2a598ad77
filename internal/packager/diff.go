package packager

import (
	"github.com/aymanbagabas/go-udiff"
)

// InjectionDiff returns a unified diff of what ad injection changed, or ""
// when nothing changed.
func InjectionDiff(name, before, after string) string {
	if before == after {
		return ""
	}
	return udiff.Unified(name+" (source)", name+" (exported)", before, after)
}
