package artifact

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Collector gathers the expected artifact set from a directory after the
// build jobs have run. The release assembler refuses to publish unless the
// set is complete, so Collect fails closed on anything missing.
type Collector struct {
	Dir      string
	Expected []Target
}

func NewCollector(dir string) *Collector {
	return &Collector{Dir: dir, Expected: All()}
}

// Missing returns the canonical names not present in the directory.
func (c *Collector) Missing() []string {
	var missing []string
	for _, t := range c.Expected {
		if _, ok := c.lookup(t); !ok {
			missing = append(missing, t.CanonicalName())
		}
	}
	return missing
}

// Collect returns every expected artifact, or an error naming everything
// absent. A partial set is never returned.
func (c *Collector) Collect() ([]Artifact, error) {
	if missing := c.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("missing artifacts in %s: %s", c.Dir, strings.Join(missing, ", "))
	}

	out := make([]Artifact, 0, len(c.Expected))
	for _, t := range c.Expected {
		a, _ := c.lookup(t)
		out = append(out, a)
	}
	return out, nil
}

func (c *Collector) lookup(t Target) (Artifact, bool) {
	path := filepath.Join(c.Dir, t.CanonicalName())
	if !fileExists(path) {
		return Artifact{}, false
	}
	return Artifact{Target: t, Name: t.CanonicalName(), Path: path}, true
}
