// Package build executes per-platform builds for a loaded spec: it maps
// (project, version, platform) to an output directory, dispatches to the
// strategy the toolchain kind selects, and aggregates per-platform results
// with failures isolated to their own platform.
package build

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/portforge/portforge/src/spec"
)

// Request carries everything a strategy needs for one platform build.
type Request struct {
	Spec       *spec.Spec
	Platform   string
	Executable string // resolved toolchain executable; empty for strategies that invoke none
	OutputDir  string
	Trace      io.Writer // when non-nil, strategies write invocation traces here
}

// Strategy is the interface every build strategy implements.
type Strategy interface {
	Name() string
	// NeedsToolchain reports whether the strategy invokes an external
	// executable and therefore requires toolchain resolution.
	NeedsToolchain() bool
	// Build produces the platform artifact and returns its path.
	Build(ctx context.Context, req *Request) (string, error)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]func() Strategy{}
)

// Register adds a strategy constructor to the global registry.
// Called from init() in each strategy file.
func Register(name string, constructor func() Strategy) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("build: duplicate strategy registration: %s", name))
	}
	registry[name] = constructor
}

// Get returns a new instance of the named strategy.
func Get(name string) (Strategy, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("build: unknown strategy: %s", name)
	}
	return ctor(), nil
}

// All returns sorted names of all registered strategies.
func All() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
