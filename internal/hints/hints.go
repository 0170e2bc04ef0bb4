// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-novelsite/internal/fileutil"
)

// ForInputDirectory returns hints for an unreadable chapter directory.
func ForInputDirectory(path string) string {
	if path != "" && fileutil.FileExists(path) {
		return format("input must be a directory of NN-title.md files, not a file")
	}
	return format("pass the chapters directory as an argument or set input.dir in the config")
}

// ForOutputDirectory returns hints for output directory write errors.
// The generator never creates the output directory itself.
func ForOutputDirectory(path string) string {
	if path != "" && !fileutil.DirExists(path) {
		return format("output directory does not exist; create it first (mkdir -p " + path + ")")
	}
	return format("check the output directory is writable")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-novelsite/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/site.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-novelsite") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForLinkPolicy lists the accepted navigation link policies.
func ForLinkPolicy(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
