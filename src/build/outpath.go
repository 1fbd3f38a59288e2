package build

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputDir returns the build output directory for one platform,
// <root>/dist/<name>-<version>-<platform>, creating it and any intermediate
// directories as needed. Pre-existing directories are reused without error;
// calling this twice with identical inputs yields the same path.
func OutputDir(root, name, version, platform string) (string, error) {
	dir := filepath.Join(root, "dist", fmt.Sprintf("%s-%s-%s", name, version, platform))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}
	return dir, nil
}

// ArtifactName returns the executable file name for a native build on the
// given platform. Windows-family platforms get an .exe suffix.
func ArtifactName(project, platform string) string {
	if strings.HasPrefix(platform, "windows") {
		return project + ".exe"
	}
	return project
}
