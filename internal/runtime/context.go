package runtime

import (
	"fmt"
	"os"

	"scribeci/internal/tag"
)

// Context captures the relevant CI environment state for scribeci.
// This assumes execution inside GitHub Actions.
type Context struct {
	EventName  string
	RefName    string
	RefType    string
	SHA        string
	ShortSHA   string
	Repository string
	RunID      string
	RunnerOS   string
	RunnerArch string

	// Derived booleans
	IsTag  bool
	DryRun bool

	// Release metadata, populated only on tag pipelines
	Tag       tag.Tag
	TagParsed bool
}

// LoadContext constructs a CI Context by reading GitHub Actions environment
// variables. A malformed release tag is an error: the pipeline only triggers
// on the three accepted tag shapes, so anything else means a misconfigured
// trigger and we want to fail before any job runs.
func LoadContext() (Context, error) {
	refName := os.Getenv("GITHUB_REF_NAME")
	refType := os.Getenv("GITHUB_REF_TYPE")

	// Ensure ShortSHA is populated
	sha := os.Getenv("GITHUB_SHA")
	short := sha
	if len(sha) >= 8 {
		short = sha[:8]
	}

	ctx := Context{
		EventName:  os.Getenv("GITHUB_EVENT_NAME"),
		RefName:    refName,
		RefType:    refType,
		SHA:        sha,
		ShortSHA:   short,
		Repository: os.Getenv("GITHUB_REPOSITORY"),
		RunID:      os.Getenv("GITHUB_RUN_ID"),
		RunnerOS:   os.Getenv("RUNNER_OS"),
		RunnerArch: os.Getenv("RUNNER_ARCH"),
		IsTag:      refType == "tag",
		DryRun:     os.Getenv("SCRIBECI_DRY_RUN") == "true",
	}

	if ctx.IsTag {
		t, err := tag.Parse(refName)
		if err != nil {
			return Context{}, fmt.Errorf("tag pipeline with unusable ref: %w", err)
		}
		ctx.Tag = t
		ctx.TagParsed = true
	}

	return ctx, nil
}

// PrintSummary emits a scannable CI context report with logical sections.
func (c *Context) PrintSummary() {
	fmt.Println("CI Environment Summary")
	fmt.Println("----------------------")

	fmt.Println("Pipeline")
	fmt.Printf("  Context               : %s\n", c.describeContext())
	fmt.Printf("  Event                 : %s\n", formatOrNone(c.EventName))
	fmt.Printf("  Run ID                : %s\n", formatOrNone(c.RunID))
	fmt.Println()

	fmt.Println("Ref / Commit")
	fmt.Printf("  Ref Name              : %s\n", formatOrNone(c.RefName))
	fmt.Printf("  Ref Type              : %s\n", formatOrNone(c.RefType))
	fmt.Printf("  Commit SHA            : %s\n", formatOrNone(c.SHA))
	fmt.Printf("  Commit Short SHA      : %s\n", formatOrNone(c.ShortSHA))
	fmt.Println()

	fmt.Println("Runner")
	fmt.Printf("  Repository            : %s\n", formatOrNone(c.Repository))
	fmt.Printf("  Runner OS             : %s\n", formatOrNone(c.RunnerOS))
	fmt.Printf("  Runner Arch           : %s\n", formatOrNone(c.RunnerArch))
	fmt.Println()

	fmt.Println("Derived")
	fmt.Printf("  Is Tag Build          : %s\n", emoji(c.IsTag))
	fmt.Printf("  Dry Run Mode          : %s\n", emoji(c.DryRun))
	if c.TagParsed {
		fmt.Printf("  Release Tag           : %s\n", c.Tag.Raw)
		fmt.Printf("  Channel               : %s\n", c.Tag.Channel)
		fmt.Printf("  Prerelease            : %s\n", emoji(c.Tag.Prerelease()))
	}
	fmt.Println()
}

func (c Context) describeContext() string {
	switch {
	case c.IsTag:
		return fmt.Sprintf("Tag push (%s)", c.RefName)
	case c.RefName != "":
		return fmt.Sprintf("Branch push (%s)", c.RefName)
	}
	return fmt.Sprintf("Event: %s", c.EventName)
}
