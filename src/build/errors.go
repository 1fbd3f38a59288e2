package build

import "errors"

var (
	// ErrExec marks an external toolchain invocation that failed or
	// returned non-zero. Carries the captured error stream as payload.
	ErrExec = errors.New("toolchain invocation failed")

	// ErrCopy marks a filesystem failure while staging files.
	ErrCopy = errors.New("copy failed")
)
