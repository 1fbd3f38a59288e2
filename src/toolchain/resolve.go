package toolchain

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrCompilerNotFound marks a toolchain that could not be located on the
// host. Recovered per-platform at the orchestrator boundary.
var ErrCompilerNotFound = errors.New("compiler not found")

// Resolve determines which executable serves the declared toolchain.
//
// An explicit path override is probed first and never substituted: if it is
// absent from the host search path, resolution fails even when registry
// candidates would match. Otherwise the catalog candidates for kind are
// probed in listed order, and finally the kind string itself, so unknown
// kinds still work when an executable of that name exists.
//
// The declared name is returned verbatim, not the absolute path LookPath
// found; later invocation resolves it against PATH again.
func Resolve(kind, path string) (string, error) {
	if path != "" {
		if _, err := exec.LookPath(path); err != nil {
			return "", fmt.Errorf("%w: not found at specified path: %s", ErrCompilerNotFound, path)
		}
		return path, nil
	}

	if d, ok := descriptors[kind]; ok {
		for _, name := range d.Executables {
			if _, err := exec.LookPath(name); err == nil {
				return name, nil
			}
		}
	}

	// Best effort for unknown or exhausted kinds: the kind itself may name
	// an executable.
	if _, err := exec.LookPath(kind); err == nil {
		return kind, nil
	}

	return "", fmt.Errorf("%w: no available executable for kind %q", ErrCompilerNotFound, kind)
}
