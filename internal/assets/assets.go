package assets

import (
	"embed"
	"fmt"
)

//go:embed release_notes.md
var releaseNotesContent embed.FS

// ReleaseNotesTemplate loads the embedded release_notes.md as a string.
// Slots: {{CHANGELOG}}, {{REPO}}, {{PREVIOUS}}, {{CURRENT}}.
func ReleaseNotesTemplate() string {
	data, err := releaseNotesContent.ReadFile("release_notes.md")
	if err != nil {
		// fail-safe: keep the heading so the release body is never blank
		return fmt.Sprintf("## What's Changed\n\n(error reading release_notes.md: %v)", err)
	}
	return string(data)
}
