// Package output formats portforge's terminal reporting: framed sections,
// catalog tables, build result rows, and color/CI environment handling.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/portforge/portforge/src/build"
	"github.com/portforge/portforge/src/toolchain"
)

const colorYellow = "\033[33m"
const colorReset = "\033[0m"

// Warning prints a non-fatal warning line.
func Warning(w io.Writer, color bool, format string, args ...any) {
	label := "Warning:"
	if color {
		label = colorYellow + label + colorReset
	}
	fmt.Fprintf(w, "%s %s\n", label, fmt.Sprintf(format, args...))
}

// PlatformTable writes the platform catalog inside a section.
func PlatformTable(sec *Section, platforms []toolchain.Platform) {
	sec.Row("%-18s%-10s%-10s%s", "platform", "os", "arch", "description")
	for _, p := range platforms {
		sec.Row("%-18s%-10s%-10s%s", p.ID, p.OS, p.Arch, p.Description)
	}
}

// ToolchainTable writes the toolchain catalog inside a section.
func ToolchainTable(sec *Section, descriptors []toolchain.Descriptor) {
	sec.Row("%-10s%-28s%s", "kind", "description", "executables")
	for _, d := range descriptors {
		execs := ""
		for i, e := range d.Executables {
			if i > 0 {
				execs += ", "
			}
			execs += e
		}
		sec.Row("%-10s%-28s%s", d.Kind, d.Description, execs)
	}
}

// ResultRows writes per-platform build outcomes inside a section: artifact
// paths for successes, error messages for failures.
func ResultRows(sec *Section, platforms []string, res *build.Result, color bool) {
	failures := make(map[string]error, len(res.Failures))
	for _, f := range res.Failures {
		failures[f.Platform] = f.Err
	}

	for _, p := range platforms {
		if artifact, ok := res.Artifacts[p]; ok {
			sec.Row("%-18s%s  %s", p, StatusIcon("success", color), artifact)
			continue
		}
		sec.Row("%-18s%s  %v", p, StatusIcon("failed", color), failures[p])
	}
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// UseColor returns true if colored output should be used.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal() || IsCI()
}
