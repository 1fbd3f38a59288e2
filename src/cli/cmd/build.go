package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/portforge/portforge/src/build"
	"github.com/portforge/portforge/src/gitver"
	"github.com/portforge/portforge/src/output"
	"github.com/portforge/portforge/src/spec"
	"github.com/portforge/portforge/src/toolchain"
)

var (
	bSpecFile string
	bJobs     int
	bDryRun   bool
)

var buildCmd = &cobra.Command{
	Use:   "build [platforms...]",
	Short: "Build the project for target platforms",
	Long: `Build the project for the requested target platforms.

Platforms given as arguments override the spec's build.platforms list.
Each platform builds independently; one failure does not abort the rest.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&bSpecFile, "spec", "s", "", "path to spec file (default: spec.toml)")
	buildCmd.Flags().IntVar(&bJobs, "jobs", 0, "max concurrent platform builds (default: 1, sequential)")
	buildCmd.Flags().BoolVar(&bDryRun, "dry-run", false, "show the plan without executing")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	color := useColor()
	w := os.Stdout

	specPath := bSpecFile
	if specPath == "" {
		specPath = cfg.SpecFile
	}

	sp, err := spec.Load(specPath)
	if err != nil {
		return err
	}
	for _, warning := range sp.Warnings {
		output.Warning(os.Stderr, color, "%s", warning)
	}

	platforms := args
	if len(platforms) == 0 {
		platforms = sp.Build.Platforms
	}
	if len(platforms) == 0 {
		platforms = []string{"linux-x86_64"}
	}

	output.ContextBlock(w, buildContextKV(sp, platforms))

	if bDryRun {
		sec := output.NewSection(w, "Plan", 0, color)
		strategy := toolchain.StrategyFor(sp.Compiler.Kind)
		for _, p := range platforms {
			dir := filepath.Join("dist", fmt.Sprintf("%s-%s-%s", sp.Project.Name, sp.Project.Version, p))
			sec.Row("%-18s%-10s→ %s", p, strategy, filepath.Join(dir, build.ArtifactName(sp.Project.Name, p)))
		}
		sec.Close()
		return nil
	}

	jobs := bJobs
	if jobs == 0 {
		jobs = cfg.Jobs
	}

	orch := &build.Orchestrator{
		Spec: sp,
		Jobs: jobs,
		Warnf: func(format string, fargs ...any) {
			output.Warning(os.Stderr, color, format, fargs...)
		},
	}
	if verbose {
		orch.Trace = os.Stderr
	}

	output.SectionStart(w, "pf_build", "Build")
	res := orch.Build(context.Background(), platforms)

	sec := output.NewSection(w, "Build Results", res.Duration, color)
	output.ResultRows(sec, platforms, res, color)
	sec.Separator()
	sec.Row("%d built, %d failed", len(res.Artifacts), len(res.Failures))
	sec.Close()
	output.SectionEnd(w, "pf_build")

	if res.AllFailed() {
		return fmt.Errorf("all builds failed")
	}
	return nil
}

// buildContextKV returns key-value pairs for the run context block.
func buildContextKV(sp *spec.Spec, platforms []string) []output.KV {
	kv := []output.KV{
		{Key: "Project", Value: fmt.Sprintf("%s v%s", sp.Project.Name, sp.Project.Version)},
		{Key: "Compiler", Value: sp.Compiler.Kind},
	}
	if sp.Project.Author != "" {
		kv = append(kv, output.KV{Key: "Author", Value: sp.Project.Author})
	}
	kv = append(kv, output.KV{Key: "Platforms", Value: strings.Join(platforms, ", ")})

	// Best-effort git context; projects outside version control skip it.
	if info, err := gitver.Detect(sp.BaseDir); err == nil {
		kv = append(kv, output.KV{Key: "Commit", Value: info.SHA})
		if info.Branch != "" {
			kv = append(kv, output.KV{Key: "Branch", Value: info.Branch})
		}
		if info.Tag != "" {
			kv = append(kv, output.KV{Key: "Tag", Value: info.Tag})
		}
	}

	return kv
}
