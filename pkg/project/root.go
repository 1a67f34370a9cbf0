// Package project locates the host project the generator targets.
package project

import (
	"path/filepath"

	"github.com/arthur-debert/langgen/pkg/errors"
	"github.com/arthur-debert/langgen/pkg/logging"
	"github.com/arthur-debert/langgen/pkg/types"
)

// MarkerFile identifies a host project root. The generator refuses to
// run anywhere it cannot find one; this is the fail-fast gate before
// any filesystem mutation.
const MarkerFile = "CMakeLists.txt"

// FindRoot walks upward from startDir until it finds a directory
// containing the project marker file. It returns the absolute root
// path or an ErrRootNotFound error.
func FindRoot(fs types.FS, startDir string) (string, error) {
	logger := logging.GetLogger("project")

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRootNotFound, "cannot resolve start directory %q", startDir)
	}

	for {
		marker := filepath.Join(dir, MarkerFile)
		if info, err := fs.Stat(marker); err == nil && !info.IsDir() {
			logger.Debug().Str("root", dir).Msg("Found project root")
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Newf(errors.ErrRootNotFound,
				"no project root found: no %s in %s or any parent directory", MarkerFile, startDir)
		}
		dir = parent
	}
}

// VerifyRoot checks that an explicitly supplied root directory carries
// the project marker file.
func VerifyRoot(fs types.FS, root string) (string, error) {
	dir, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRootNotFound, "cannot resolve root %q", root)
	}
	if info, err := fs.Stat(filepath.Join(dir, MarkerFile)); err != nil || info.IsDir() {
		return "", errors.Newf(errors.ErrRootNotFound, "%s is not a project root: no %s found", root, MarkerFile)
	}
	return dir, nil
}
