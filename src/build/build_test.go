package build

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/portforge/portforge/src/spec"
)

// testProject lays out a project tree and returns a spec for it.
func testProject(t *testing.T, compiler spec.Compiler, entry string, sources []string) *spec.Spec {
	t.Helper()

	dir := t.TempDir()
	for _, f := range append([]string{entry}, sources...) {
		path := filepath.Join(dir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("// stub\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", f, err)
		}
	}

	return &spec.Spec{
		Project:   spec.Project{Name: "demo", Version: "2.0.0"},
		Compiler:  compiler,
		MainEntry: entry,
		Sources:   sources,
		BaseDir:   dir,
	}
}

// fakeCompiler installs a stub compiler script on PATH. The script records
// its arguments to args.txt in the project dir and fails whenever the
// argument list mentions failOn.
func fakeCompiler(t *testing.T, name, failOn string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub executables require a POSIX host")
	}

	dir := t.TempDir()
	script := "#!/bin/sh\n"
	if failOn != "" {
		script += "case \"$*\" in *" + failOn + "*) echo 'stub compiler: unsupported target' >&2; exit 1;; esac\n"
	}
	script += "printf '%s\\n' \"$@\" > args.txt\nexit 0\n"

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", dir)
}

func TestOutputDirIdempotent(t *testing.T) {
	root := t.TempDir()

	first, err := OutputDir(root, "demo", "2.0.0", "linux-x86_64")
	if err != nil {
		t.Fatalf("OutputDir: %v", err)
	}
	want := filepath.Join(root, "dist", "demo-2.0.0-linux-x86_64")
	if first != want {
		t.Errorf("dir = %q, want %q", first, want)
	}

	// Prior contents must survive a second call.
	if err := os.WriteFile(filepath.Join(first, "leftover"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write leftover: %v", err)
	}
	second, err := OutputDir(root, "demo", "2.0.0", "linux-x86_64")
	if err != nil {
		t.Fatalf("second OutputDir: %v", err)
	}
	if second != first {
		t.Errorf("second dir = %q, want %q", second, first)
	}
	if _, err := os.Stat(filepath.Join(first, "leftover")); err != nil {
		t.Errorf("prior contents lost: %v", err)
	}
}

func TestArtifactName(t *testing.T) {
	cases := []struct {
		platform string
		want     string
	}{
		{"linux-x86_64", "demo"},
		{"macos-arm64", "demo"},
		{"windows-x86_64", "demo.exe"},
		{"windows-x86", "demo.exe"},
	}
	for _, tc := range cases {
		if got := ArtifactName("demo", tc.platform); got != tc.want {
			t.Errorf("ArtifactName(demo, %s) = %q, want %q", tc.platform, got, tc.want)
		}
	}
}

func TestNativeBuildInvocation(t *testing.T) {
	fakeCompiler(t, "gcc", "")
	sp := testProject(t,
		spec.Compiler{Kind: "gcc", Flags: []string{"-O2", "-Wall"}},
		"src/main.c",
		[]string{"src/utils.c"},
	)
	// Declared but absent source must be skipped, not passed or errored.
	sp.Sources = append(sp.Sources, "src/ghost.c")

	orch := &Orchestrator{Spec: sp}
	res := orch.Build(context.Background(), []string{"linux-x86_64"})

	if len(res.Failures) != 0 {
		t.Fatalf("failures: %+v", res.Failures)
	}
	want := filepath.Join(sp.BaseDir, "dist", "demo-2.0.0-linux-x86_64", "demo")
	if got := res.Artifacts["linux-x86_64"]; got != want {
		t.Errorf("artifact = %q, want %q", got, want)
	}

	// The stub ran with the project dir as cwd and recorded its args.
	data, err := os.ReadFile(filepath.Join(sp.BaseDir, "args.txt"))
	if err != nil {
		t.Fatalf("stub did not run in base dir: %v", err)
	}
	args := strings.Split(strings.TrimSpace(string(data)), "\n")
	wantArgs := []string{"-O2", "-Wall", "src/main.c", "src/utils.c", "-o", want}
	if len(args) != len(wantArgs) {
		t.Fatalf("args = %v, want %v", args, wantArgs)
	}
	for i := range args {
		if args[i] != wantArgs[i] {
			t.Errorf("arg[%d] = %q, want %q", i, args[i], wantArgs[i])
		}
	}
}

func TestNativeBuildFailureCarriesStderr(t *testing.T) {
	fakeCompiler(t, "gcc", "linux-x86_64")
	sp := testProject(t, spec.Compiler{Kind: "gcc"}, "src/main.c", nil)

	orch := &Orchestrator{Spec: sp}
	res := orch.Build(context.Background(), []string{"linux-x86_64"})

	if !res.AllFailed() {
		t.Fatalf("artifacts = %v, want none", res.Artifacts)
	}
	if len(res.Failures) != 1 {
		t.Fatalf("failures = %+v", res.Failures)
	}
	f := res.Failures[0]
	if !errors.Is(f.Err, ErrExec) {
		t.Errorf("err = %v, want ErrExec", f.Err)
	}
	if !strings.Contains(f.Err.Error(), "unsupported target") {
		t.Errorf("err = %v, want captured stderr payload", f.Err)
	}
}

func TestPerPlatformIsolation(t *testing.T) {
	// One platform fails, the rest of the batch keeps building.
	fakeCompiler(t, "gcc", "linux-armv7")
	sp := testProject(t, spec.Compiler{Kind: "gcc"}, "src/main.c", nil)

	orch := &Orchestrator{Spec: sp}
	platforms := []string{"linux-x86_64", "linux-armv7", "linux-arm64"}
	res := orch.Build(context.Background(), platforms)

	if len(res.Artifacts) != 2 {
		t.Errorf("artifacts = %v, want 2 entries", res.Artifacts)
	}
	if _, ok := res.Artifacts["linux-armv7"]; ok {
		t.Error("failed platform present in artifact map")
	}
	if len(res.Failures) != 1 || res.Failures[0].Platform != "linux-armv7" {
		t.Errorf("failures = %+v", res.Failures)
	}
}

func TestMissingToolchainFailsBatchWithoutRaising(t *testing.T) {
	fakeCompiler(t, "unrelated", "") // PATH has no gcc at all
	sp := testProject(t, spec.Compiler{Kind: "gcc"}, "src/main.c", nil)

	orch := &Orchestrator{Spec: sp}
	res := orch.Build(context.Background(), []string{"linux-x86_64", "linux-arm64"})

	if !res.AllFailed() {
		t.Fatalf("artifacts = %v, want none", res.Artifacts)
	}
	if len(res.Failures) != 2 {
		t.Fatalf("failures = %+v, want one per platform", res.Failures)
	}
	// A missing toolchain must leave no output directories behind.
	if _, err := os.Stat(filepath.Join(sp.BaseDir, "dist")); !os.IsNotExist(err) {
		t.Error("dist tree created despite missing toolchain")
	}
}

func TestUnknownPlatformWarns(t *testing.T) {
	fakeCompiler(t, "gcc", "")
	sp := testProject(t, spec.Compiler{Kind: "gcc"}, "src/main.c", nil)

	var warnings []string
	orch := &Orchestrator{
		Spec:  sp,
		Warnf: func(format string, args ...any) { warnings = append(warnings, format) },
	}
	orch.Build(context.Background(), []string{"dos-8086"})

	if len(warnings) != 1 {
		t.Errorf("warnings = %v, want exactly one", warnings)
	}
}

func TestPackagingBuild(t *testing.T) {
	sp := testProject(t,
		spec.Compiler{Kind: "python"},
		"src/main.py",
		[]string{"src/utils.py"},
	)
	// Directory source with a nested file; merges into the destination.
	sp.Sources = append(sp.Sources, "assets")
	if err := os.MkdirAll(filepath.Join(sp.BaseDir, "assets", "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sp.BaseDir, "assets", "sub", "data.txt"), []byte("d"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sp.BaseDir, "requirements.txt"), []byte("requests\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	sp.Sources = append(sp.Sources, "src/ghost.py") // absent, skipped

	orch := &Orchestrator{Spec: sp}
	res := orch.Build(context.Background(), []string{"linux-x86_64"})

	if len(res.Failures) != 0 {
		t.Fatalf("failures: %+v", res.Failures)
	}

	outDir := filepath.Join(sp.BaseDir, "dist", "demo-2.0.0-linux-x86_64")
	if got := res.Artifacts["linux-x86_64"]; got != filepath.Join(outDir, "main.py") {
		t.Errorf("artifact = %q", got)
	}
	for _, f := range []string{"main.py", "utils.py", "requirements.txt", filepath.Join("assets", "sub", "data.txt")} {
		if _, err := os.Stat(filepath.Join(outDir, f)); err != nil {
			t.Errorf("staged file missing: %s", f)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "ghost.py")); !os.IsNotExist(err) {
		t.Error("absent source was staged")
	}
}

func TestPackagingInvokesNoToolchain(t *testing.T) {
	// Empty PATH: packaging must still succeed since it resolves nothing.
	t.Setenv("PATH", t.TempDir())
	sp := testProject(t, spec.Compiler{Kind: "python"}, "src/main.py", nil)

	orch := &Orchestrator{Spec: sp}
	res := orch.Build(context.Background(), []string{"linux-x86_64"})

	if len(res.Failures) != 0 {
		t.Fatalf("failures: %+v", res.Failures)
	}
}

func TestBoundedConcurrency(t *testing.T) {
	sp := testProject(t, spec.Compiler{Kind: "python"}, "src/main.py", nil)

	orch := &Orchestrator{Spec: sp, Jobs: 3}
	platforms := []string{"linux-x86_64", "linux-arm64", "macos-x86_64", "macos-arm64"}
	res := orch.Build(context.Background(), platforms)

	if len(res.Artifacts) != len(platforms) {
		t.Errorf("artifacts = %v, want %d entries", res.Artifacts, len(platforms))
	}
	if len(res.Failures) != 0 {
		t.Errorf("failures: %+v", res.Failures)
	}
}

func TestStrategyRegistry(t *testing.T) {
	names := All()
	if len(names) != 2 || names[0] != "native" || names[1] != "packaging" {
		t.Errorf("registered strategies = %v", names)
	}
	if _, err := Get("jit"); err == nil {
		t.Error("Get(jit) should fail")
	}
}
