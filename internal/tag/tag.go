package tag

import (
	"fmt"
	"strconv"
	"strings"
)

// Channel is the release channel a tag belongs to. It is derived from the
// shape of the tag string and nothing else.
type Channel string

const (
	Stable           Channel = "Stable"
	Alpha            Channel = "Alpha"
	ReleaseCandidate Channel = "ReleaseCandidate"
)

func (c Channel) String() string {
	return string(c)
}

type Version struct {
	Major int
	Minor int
	Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ParseVersion parses a version core in the format "X.Y.Z".
func ParseVersion(versionStr string) (Version, error) {
	parts := strings.Split(versionStr, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version format: expected X.Y.Z, got %s", versionStr)
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, fmt.Errorf("invalid major version: %w", err)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return Version{}, fmt.Errorf("invalid minor version: %w", err)
	}
	patch, err := strconv.Atoi(parts[2])
	if err != nil {
		return Version{}, fmt.Errorf("invalid patch version: %w", err)
	}

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

func (v Version) LessThan(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

// Tag is a parsed release tag. Three shapes are accepted:
//
//	vX.Y.Z        -> Stable
//	vX.Y.Z.alpha  -> Alpha
//	vX.Y.Z-RC<n>  -> ReleaseCandidate
//
// The raw string is kept verbatim because it is the identity used by the
// release pipeline (git tag name, release tag_name, compare links).
type Tag struct {
	Raw     string
	Version Version
	Channel Channel
	RC      int // candidate number, only set for ReleaseCandidate
}

func (t Tag) String() string {
	return t.Raw
}

// Prerelease reports whether a release for this tag must carry the
// prerelease flag. This is the single authoritative classification used by
// every component; nothing else re-derives it.
func (t Tag) Prerelease() bool {
	return t.Channel != Stable
}

// LessThan orders tags by version core only. Channel is ignored: the
// pipeline never publishes two channels of the same X.Y.Z, so the core is
// enough to find the previous tag for a compare link.
func (t Tag) LessThan(other Tag) bool {
	return t.Version.LessThan(other.Version)
}

// Parse parses a release tag string into its version core and channel.
func Parse(raw string) (Tag, error) {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "v") {
		return Tag{}, fmt.Errorf("invalid tag %q: missing v prefix", raw)
	}
	core := strings.TrimPrefix(s, "v")

	t := Tag{Raw: s, Channel: Stable}

	if strings.HasSuffix(core, ".alpha") {
		t.Channel = Alpha
		core = strings.TrimSuffix(core, ".alpha")
	} else if idx := strings.Index(core, "-RC"); idx >= 0 {
		n, err := strconv.Atoi(core[idx+len("-RC"):])
		if err != nil || n < 1 {
			return Tag{}, fmt.Errorf("invalid tag %q: malformed RC number", raw)
		}
		t.Channel = ReleaseCandidate
		t.RC = n
		core = core[:idx]
	}

	v, err := ParseVersion(core)
	if err != nil {
		return Tag{}, fmt.Errorf("invalid tag %q: %w", raw, err)
	}
	t.Version = v
	return t, nil
}

// Latest returns the highest tag in the slice by version core, skipping
// entries that do not parse as release tags. ok is false when nothing in
// the slice is a valid release tag.
func Latest(raw []string) (Tag, bool) {
	var best Tag
	found := false
	for _, r := range raw {
		t, err := Parse(r)
		if err != nil {
			continue
		}
		if !found || best.LessThan(t) {
			best = t
			found = true
		}
	}
	return best, found
}

// LatestBefore returns the highest parsed tag strictly below current, for
// building the previous-tag side of a compare link.
func LatestBefore(raw []string, current Tag) (Tag, bool) {
	var best Tag
	found := false
	for _, r := range raw {
		t, err := Parse(r)
		if err != nil {
			continue
		}
		if !t.LessThan(current) {
			continue
		}
		if !found || best.LessThan(t) {
			best = t
			found = true
		}
	}
	return best, found
}
