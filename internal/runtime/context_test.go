package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scribeci/internal/tag"
)

func setTagEnv(t *testing.T, refName string) {
	t.Helper()
	t.Setenv("GITHUB_REF_NAME", refName)
	t.Setenv("GITHUB_REF_TYPE", "tag")
	t.Setenv("GITHUB_SHA", "0123456789abcdef0123456789abcdef01234567")
	t.Setenv("GITHUB_REPOSITORY", "ClinicianFOCUS/FreeScribe")
	t.Setenv("GITHUB_EVENT_NAME", "push")
	t.Setenv("SCRIBECI_DRY_RUN", "")
}

func TestLoadContextTagPush(t *testing.T) {
	setTagEnv(t, "v1.2.3-RC1")

	ctx, err := LoadContext()
	require.NoError(t, err)

	assert.True(t, ctx.IsTag)
	assert.True(t, ctx.TagParsed)
	assert.Equal(t, tag.ReleaseCandidate, ctx.Tag.Channel)
	assert.Equal(t, "01234567", ctx.ShortSHA)
	assert.Equal(t, "ClinicianFOCUS/FreeScribe", ctx.Repository)
}

func TestLoadContextRejectsMalformedTag(t *testing.T) {
	setTagEnv(t, "nightly-build-7")

	_, err := LoadContext()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unusable ref")
}

func TestLoadContextBranchPush(t *testing.T) {
	t.Setenv("GITHUB_REF_NAME", "main")
	t.Setenv("GITHUB_REF_TYPE", "branch")
	t.Setenv("GITHUB_SHA", "feedface")
	t.Setenv("SCRIBECI_DRY_RUN", "true")

	ctx, err := LoadContext()
	require.NoError(t, err)

	assert.False(t, ctx.IsTag)
	assert.False(t, ctx.TagParsed)
	assert.True(t, ctx.DryRun)
}

func TestResolveFlow(t *testing.T) {
	tagCtx := Context{IsTag: true}
	branchCtx := Context{IsTag: false}

	assert.Equal(t, FlowRelease, ResolveFlow(tagCtx, FlowAuto))
	assert.Equal(t, FlowSnapshot, ResolveFlow(branchCtx, FlowAuto))
	assert.Equal(t, FlowSnapshot, ResolveFlow(tagCtx, FlowSnapshot))
	assert.Equal(t, FlowRelease, ResolveFlow(branchCtx, FlowRelease))
}
