package tag

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Tag
		expectErr bool
	}{
		{
			name:  "Stable tag",
			input: "v2.0.0",
			want:  Tag{Raw: "v2.0.0", Version: Version{2, 0, 0}, Channel: Stable},
		},
		{
			name:  "Alpha tag",
			input: "v1.2.3.alpha",
			want:  Tag{Raw: "v1.2.3.alpha", Version: Version{1, 2, 3}, Channel: Alpha},
		},
		{
			name:  "Release candidate tag",
			input: "v1.2.3-RC1",
			want:  Tag{Raw: "v1.2.3-RC1", Version: Version{1, 2, 3}, Channel: ReleaseCandidate, RC: 1},
		},
		{
			name:  "Release candidate with multi-digit number",
			input: "v0.9.0-RC12",
			want:  Tag{Raw: "v0.9.0-RC12", Version: Version{0, 9, 0}, Channel: ReleaseCandidate, RC: 12},
		},
		{
			name:      "Missing v prefix",
			input:     "1.2.3",
			expectErr: true,
		},
		{
			name:      "Missing patch",
			input:     "v1.2",
			expectErr: true,
		},
		{
			name:      "Too many segments",
			input:     "v1.2.3.4",
			expectErr: true,
		},
		{
			name:      "Non-numeric parts",
			input:     "va.b.c",
			expectErr: true,
		},
		{
			name:      "RC without number",
			input:     "v1.2.3-RC",
			expectErr: true,
		},
		{
			name:      "RC zero",
			input:     "v1.2.3-RC0",
			expectErr: true,
		},
		{
			name:      "Empty string",
			input:     "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)

			if tt.expectErr {
				if err == nil {
					t.Errorf("expected error but got none for input %q", tt.input)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error for input %q: %v", tt.input, err)
				}
				if got != tt.want {
					t.Errorf("expected %+v, got %+v", tt.want, got)
				}
			}
		})
	}
}

func TestPrerelease(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"v2.0.0", false},
		{"v1.2.3", false},
		{"v1.2.3.alpha", true},
		{"v1.2.3-RC1", true},
		{"v10.0.1-RC3", true},
		{"v0.0.1.alpha", true},
	}

	for _, tt := range tests {
		parsed, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
		}
		if got := parsed.Prerelease(); got != tt.want {
			t.Errorf("Prerelease(%q) = %v; want %v", tt.input, got, tt.want)
		}
	}
}

func TestVersionLessThan(t *testing.T) {
	tests := []struct {
		a, b Version
		want bool
	}{
		{Version{1, 0, 0}, Version{1, 0, 1}, true},
		{Version{1, 2, 0}, Version{1, 3, 0}, true},
		{Version{1, 2, 3}, Version{2, 0, 0}, true},
		{Version{2, 0, 0}, Version{1, 2, 3}, false},
		{Version{1, 2, 3}, Version{1, 2, 3}, false},
	}

	for _, tt := range tests {
		got := tt.a.LessThan(tt.b)
		if got != tt.want {
			t.Errorf("LessThan(%v, %v) = %v; want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLatest(t *testing.T) {
	tags := []string{"v1.0.0", "not-a-tag", "v1.2.0-RC2", "v1.1.4", "release-5"}

	got, ok := Latest(tags)
	if !ok {
		t.Fatal("expected a latest tag, got none")
	}
	if got.Raw != "v1.2.0-RC2" {
		t.Errorf("Latest = %s; want v1.2.0-RC2", got.Raw)
	}

	if _, ok := Latest([]string{"nope", "also-nope"}); ok {
		t.Error("expected no latest tag for garbage input")
	}
}

func TestLatestBefore(t *testing.T) {
	tags := []string{"v1.0.0", "v1.1.0", "v1.2.0", "v2.0.0", "junk"}

	current, err := Parse("v1.2.0")
	if err != nil {
		t.Fatal(err)
	}

	got, ok := LatestBefore(tags, current)
	if !ok {
		t.Fatal("expected a previous tag, got none")
	}
	if got.Raw != "v1.1.0" {
		t.Errorf("LatestBefore = %s; want v1.1.0", got.Raw)
	}

	first, err := Parse("v1.0.0")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := LatestBefore(tags, first); ok {
		t.Error("expected no previous tag before the first release")
	}
}
