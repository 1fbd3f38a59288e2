package build

import (
	"context"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/portforge/portforge/src/spec"
	"github.com/portforge/portforge/src/toolchain"
)

// Orchestrator runs the requested platform builds for one loaded spec.
// One platform's failure never aborts the batch: it is recorded and the
// remaining platforms keep building.
type Orchestrator struct {
	Spec *spec.Spec

	// Jobs bounds concurrent platform builds. Values below 2 keep the
	// default strictly sequential, in-request-order execution.
	Jobs int

	// Trace receives toolchain invocation lines when non-nil.
	Trace io.Writer

	// Warnf receives non-fatal warnings (unrecognized platform identifiers).
	// May be nil.
	Warnf func(format string, args ...any)
}

// Build builds every requested platform independently and returns the
// aggregate result. It never fails as a whole: when all platforms fail the
// artifact map is empty and the caller decides what that means.
func (o *Orchestrator) Build(ctx context.Context, platforms []string) *Result {
	start := time.Now()
	res := &Result{Artifacts: make(map[string]string, len(platforms))}

	jobs := int64(o.Jobs)
	if jobs < 1 {
		jobs = 1
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	sem := semaphore.NewWeighted(jobs)

	for _, platform := range platforms {
		if !toolchain.KnownPlatform(platform) {
			o.warnf("platform %q not in supported list, but will attempt to build", platform)
		}

		// Acquiring before spawning keeps jobs=1 runs sequential in
		// request order.
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			res.Failures = append(res.Failures, Failure{Platform: platform, Err: err})
			mu.Unlock()
			continue
		}

		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			defer sem.Release(1)

			artifact, err := o.buildPlatform(ctx, p)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				res.Failures = append(res.Failures, Failure{Platform: p, Err: err})
				return
			}
			res.Artifacts[p] = artifact
		}(platform)
	}

	wg.Wait()
	res.Duration = time.Since(start)
	return res
}

// buildPlatform resolves the toolchain, allocates the output directory, and
// executes the matching strategy for one platform. Resolution runs before
// any filesystem side effect so a missing toolchain leaves no trace.
func (o *Orchestrator) buildPlatform(ctx context.Context, platform string) (string, error) {
	sp := o.Spec

	strat, err := Get(toolchain.StrategyFor(sp.Compiler.Kind))
	if err != nil {
		return "", err
	}

	req := &Request{Spec: sp, Platform: platform, Trace: o.Trace}

	if strat.NeedsToolchain() {
		exe, err := toolchain.Resolve(sp.Compiler.Kind, sp.Compiler.Path)
		if err != nil {
			return "", err
		}
		req.Executable = exe
	}

	outDir, err := OutputDir(sp.BaseDir, sp.Project.Name, sp.Project.Version, platform)
	if err != nil {
		return "", err
	}
	req.OutputDir = outDir

	return strat.Build(ctx, req)
}

func (o *Orchestrator) warnf(format string, args ...any) {
	if o.Warnf != nil {
		o.Warnf(format, args...)
	}
}
