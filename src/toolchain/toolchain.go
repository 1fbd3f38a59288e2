// Package toolchain holds the static catalogs of known toolchain kinds and
// target platforms, and resolves a spec's compiler declaration to a concrete
// executable present on the host. The catalogs are process-wide constants;
// nothing mutates them at runtime.
package toolchain

import "sort"

// Strategy names selected by a toolchain kind.
const (
	StrategyNative    = "native"
	StrategyPackaging = "packaging"
)

// Descriptor is a catalog entry for one toolchain kind.
type Descriptor struct {
	Kind        string
	Description string
	// Executables are candidate names probed in order; the first one found
	// on the host wins.
	Executables []string
	// Platforms this kind nominally targets. Informational only; the build
	// algorithm does not gate on it.
	Platforms []string
	// Strategy names the build strategy this kind selects. Empty means
	// StrategyNative.
	Strategy string
}

var descriptors = map[string]Descriptor{
	"gcc": {
		Kind:        "gcc",
		Description: "GNU Compiler Collection",
		Executables: []string{"gcc", "g++"},
		Platforms:   []string{"linux-x86_64", "linux-arm64", "linux-armv7"},
	},
	"clang": {
		Kind:        "clang",
		Description: "LLVM Clang Compiler",
		Executables: []string{"clang", "clang++"},
		Platforms:   []string{"linux-x86_64", "macos-x86_64", "macos-arm64"},
	},
	"msvc": {
		Kind:        "msvc",
		Description: "Microsoft Visual C++",
		Executables: []string{"cl.exe"},
		Platforms:   []string{"windows-x86_64", "windows-x86"},
	},
	"mingw": {
		Kind:        "mingw",
		Description: "MinGW Windows Compiler",
		Executables: []string{"mingw32-gcc", "x86_64-w64-mingw32-gcc"},
		Platforms:   []string{"windows-x86_64", "windows-x86"},
	},
	"arm-gcc": {
		Kind:        "arm-gcc",
		Description: "ARM Cross Compiler",
		Executables: []string{"arm-none-eabi-gcc", "aarch64-linux-gnu-gcc"},
		Platforms:   []string{"embedded-arm", "linux-arm64", "android-arm64"},
	},
	"python": {
		Kind:        "python",
		Description: "Python Interpreter",
		Executables: []string{"python", "python3"},
		Platforms:   []string{"linux-x86_64", "windows-x86_64", "macos-x86_64", "macos-arm64"},
		Strategy:    StrategyPackaging,
	},
	"node": {
		Kind:        "node",
		Description: "Node.js Runtime",
		Executables: []string{"node", "npm"},
		Platforms:   []string{"linux-x86_64", "windows-x86_64", "macos-x86_64", "web-js"},
	},
	"go": {
		Kind:        "go",
		Description: "Go Programming Language",
		Executables: []string{"go"},
		Platforms:   []string{"linux-x86_64", "windows-x86_64", "macos-x86_64", "web-wasm"},
	},
	"rust": {
		Kind:        "rust",
		Description: "Rust Programming Language",
		Executables: []string{"rustc", "cargo"},
		Platforms:   []string{"linux-x86_64", "windows-x86_64", "macos-x86_64", "web-wasm"},
	},
	"zig": {
		Kind:        "zig",
		Description: "Zig Programming Language",
		Executables: []string{"zig"},
		Platforms:   []string{"linux-x86_64", "windows-x86_64", "macos-x86_64", "web-wasm"},
	},
}

// Known reports whether kind is in the catalog.
func Known(kind string) bool {
	_, ok := descriptors[kind]
	return ok
}

// Lookup returns the descriptor for kind.
func Lookup(kind string) (Descriptor, bool) {
	d, ok := descriptors[kind]
	return d, ok
}

// All returns the catalog entries sorted by kind.
func All() []Descriptor {
	out := make([]Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// StrategyFor returns the build strategy a kind selects. Kinds absent from
// the catalog get the native strategy, same as catalogued compilers.
func StrategyFor(kind string) string {
	if d, ok := descriptors[kind]; ok && d.Strategy != "" {
		return d.Strategy
	}
	return StrategyNative
}
