package build

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

func init() {
	Register("native", func() Strategy { return &nativeStrategy{} })
}

// nativeStrategy invokes an external compiler to produce a binary artifact.
type nativeStrategy struct{}

func (n *nativeStrategy) Name() string { return "native" }

func (n *nativeStrategy) NeedsToolchain() bool { return true }

// Build runs the resolved compiler over the entry file and every declared
// source that exists on disk, with the spec's base directory as working
// directory and all output captured. A zero exit status yields the computed
// output path without re-checking that the file was written; the compiler's
// exit code is trusted.
func (n *nativeStrategy) Build(ctx context.Context, req *Request) (string, error) {
	outFile := filepath.Join(req.OutputDir, ArtifactName(req.Spec.Project.Name, req.Platform))
	args := compileArgs(req, outFile)

	if req.Trace != nil {
		fmt.Fprintf(req.Trace, "exec: %s %s\n", req.Executable, strings.Join(args, " "))
	}

	cmd := exec.CommandContext(ctx, req.Executable, args...)
	cmd.Dir = req.Spec.BaseDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("%w: compilation failed:\n%s", ErrExec, stderr.String())
		}
		return "", fmt.Errorf("%w: running %s: %v", ErrExec, req.Executable, err)
	}

	return outFile, nil
}

// compileArgs assembles the compiler argument list: declared flags, the
// entry file, every existing extra source, then the output specification.
// Declared sources missing from disk are skipped, not errored.
func compileArgs(req *Request, outFile string) []string {
	args := append([]string{}, req.Spec.Compiler.Flags...)
	args = append(args, req.Spec.MainEntry)

	for _, src := range req.Spec.Sources {
		if _, err := os.Stat(filepath.Join(req.Spec.BaseDir, src)); err == nil {
			args = append(args, src)
		}
	}

	return append(args, "-o", outFile)
}
