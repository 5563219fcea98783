package assembler

import (
	"strings"

	"scribeci/internal/assets"
	"scribeci/internal/tag"
)

// renderBody fills the release-notes template. The changelog text itself is
// an external collaborator's job; this only owns the template slots.
func (a Assembler) renderBody(in Input) (string, error) {
	notes := strings.TrimSpace(in.Notes)
	if notes == "" {
		notes = "_Changelog pending._"
	}

	previous := "v0.0.0"
	var listErr error
	if a.Tags != nil {
		names, err := a.Tags.ListTagNames()
		if err != nil {
			listErr = err
		} else if prev, ok := tag.LatestBefore(names, in.Tag); ok {
			previous = prev.Raw
		}
	}

	body := assets.ReleaseNotesTemplate()
	body = strings.ReplaceAll(body, "{{CHANGELOG}}", notes)
	body = strings.ReplaceAll(body, "{{REPO}}", a.Repo)
	body = strings.ReplaceAll(body, "{{PREVIOUS}}", previous)
	body = strings.ReplaceAll(body, "{{CURRENT}}", in.Tag.Raw)

	return body, listErr
}
