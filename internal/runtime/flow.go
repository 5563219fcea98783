package runtime

type Flow string

const (
	FlowAuto     Flow = "auto"
	FlowSnapshot Flow = "snapshot" // build only, nothing published
	FlowRelease  Flow = "release"  // build + assemble + publish
)

// ResolveFlow decides what the pipeline does with its artifacts. Only tag
// pushes publish; everything else builds and stops.
func ResolveFlow(ctx Context, forced Flow) Flow {
	if forced != FlowAuto {
		return forced
	}
	if ctx.IsTag {
		return FlowRelease
	}
	return FlowSnapshot
}
