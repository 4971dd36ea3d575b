package nag

import (
	"os"
	"path/filepath"

	"github.com/galtzo-floss/floss-funding-go/funding/constants"
)

// lockDir is the directory created under the project root for lockfiles.
const lockDir = ".floss-funding"

// rootMarkers are the files whose presence identifies a project root.
var rootMarkers = []string{"go.mod", ".git", "Gemfile"}

// DiscoverRoot walks up from startDir until a directory containing a root
// marker is found. An empty startDir means the working directory. Returns
// constants.ErrNoProjectRoot when the filesystem root is reached without a
// match; callers degrade to NopStore.
func DiscoverRoot(startDir string) (string, error) {
	dir := startDir

	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", constants.ErrNoProjectRoot
		}

		dir = wd
	}

	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", constants.ErrNoProjectRoot
	}

	for {
		for _, marker := range rootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", constants.ErrNoProjectRoot
		}

		dir = parent
	}
}

// PathFor returns the lockfile path for a kind under a project root.
func PathFor(root string, kind Kind) string {
	return filepath.Join(root, lockDir, "nags."+string(kind)+".yml")
}
