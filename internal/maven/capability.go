package maven

import (
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/singleflight"
)

var (
	probeGroup   singleflight.Group
	commandCache sync.Map // project root -> command name
)

// Command returns the Maven command to use for a project: the project's own
// wrapper script when present and executable, the system mvn otherwise. The
// probe runs at most once per root; concurrent first callers share a single
// in-flight probe.
func Command(root string) string {
	if v, ok := commandCache.Load(root); ok {
		return v.(string)
	}
	v, _, _ := probeGroup.Do(root, func() (interface{}, error) {
		cmd := probeCommand(root)
		commandCache.Store(root, cmd)
		return cmd, nil
	})
	return v.(string)
}

func probeCommand(root string) string {
	wrapper := filepath.Join(root, "mvnw")
	if info, err := os.Stat(wrapper); err == nil && !info.IsDir() && info.Mode()&0o111 != 0 {
		return wrapper
	}
	return "mvn"
}
