// internal/assembler/assembler.go
//
// The assembler is the single downstream actor of the pipeline: it runs
// after every build job has reported in, verifies the artifact set is
// complete, classifies the tag, and publishes exactly one release with
// exactly those assets attached. It fails closed — a missing artifact or a
// failed upload means no release becomes visible.
//
// Publish is create-draft, upload-all, flip-to-published. A draft that
// loses an asset upload partway is deleted, so consumers never observe a
// release with a partial asset list.

package assembler

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"scribeci/internal/artifact"
	"scribeci/internal/tag"
	"scribeci/pkg/github"
)

type Assembler struct {
	Releases github.ReleasesService
	Tags     github.TagsService
	Repo     string // owner/name, for the compare link
}

// Input is everything one publish needs. Notes, when set, is used verbatim
// as the changelog slot; otherwise the slot carries a pointer to the
// external changelog generator's output location.
type Input struct {
	Tag       tag.Tag
	Artifacts []artifact.Artifact
	Notes     string
}

// ErrIncompleteArtifacts is returned when the expected artifact set is not
// fully present. Nothing is published in that case.
var ErrIncompleteArtifacts = errors.New("incomplete artifact set")

// Publish creates the release for one tag. Re-running for a tag that
// already has a release fails deterministically with ErrReleaseExists from
// the API layer; nothing is overwritten.
func (a Assembler) Publish(in Input) (github.Release, error) {
	if err := a.verify(in.Artifacts); err != nil {
		return github.Release{}, err
	}

	body, err := a.renderBody(in)
	if err != nil {
		// body rendering falls back internally; an error here is a tag
		// listing failure, which must not block the release
		log.Warnf("[assemble] compare link unavailable: %v", err)
	}

	prerelease := in.Tag.Prerelease()
	log.Infof("[assemble] tag %s classified as %s (prerelease=%t)", in.Tag.Raw, in.Tag.Channel, prerelease)

	draft, err := a.Releases.CreateRelease(github.ReleasePayload{
		TagName:    in.Tag.Raw,
		Name:       in.Tag.Raw,
		Body:       body,
		Draft:      true,
		Prerelease: prerelease,
	})
	if err != nil {
		return github.Release{}, fmt.Errorf("create release: %w", err)
	}

	for _, art := range in.Artifacts {
		log.Infof("[assemble] uploading %s", art.Name)
		if _, err := a.Releases.UploadAsset(draft.ID, art.Name, art.Path); err != nil {
			// fail closed: never leave a half-assembled draft behind
			if derr := a.Releases.DeleteRelease(draft.ID); derr != nil {
				log.Warnf("[assemble] cleanup of draft %d failed: %v", draft.ID, derr)
			}
			return github.Release{}, fmt.Errorf("upload %s: %w", art.Name, err)
		}
	}

	rel, err := a.Releases.PublishRelease(draft.ID)
	if err != nil {
		return github.Release{}, fmt.Errorf("publish release: %w", err)
	}

	log.Infof("[assemble] published %s with %d assets", rel.TagName, len(in.Artifacts))
	return rel, nil
}

// verify checks the collected set against the expected targets. Identity is
// the canonical name; duplicates and absences both fail.
func (a Assembler) verify(arts []artifact.Artifact) error {
	byName := make(map[string]bool, len(arts))
	for _, art := range arts {
		if byName[art.Name] {
			return fmt.Errorf("%w: duplicate artifact %s", ErrIncompleteArtifacts, art.Name)
		}
		byName[art.Name] = true
	}

	for _, target := range artifact.All() {
		if !byName[target.CanonicalName()] {
			return fmt.Errorf("%w: missing %s", ErrIncompleteArtifacts, target.CanonicalName())
		}
	}
	return nil
}
