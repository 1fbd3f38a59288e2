// Package spec loads and validates portforge project specifications.
// A spec is a TOML document describing the project identity, the toolchain
// used to build it, and the platforms it targets. Validation happens once,
// eagerly, at load time; a loaded Spec is read-only for the rest of a run.
package spec

// Project is the project identity block of a spec.
type Project struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	Description string `toml:"description"`
	Author      string `toml:"author"`
}

// Compiler is the normalized compiler declaration. The TOML form accepts
// either a bare kind string or a {type, path, flags} table; both normalize
// to this struct.
type Compiler struct {
	Kind  string
	Path  string // explicit executable override; never substituted when set
	Flags []string
}

// Build holds the default build settings of a spec.
type Build struct {
	Platforms []string `toml:"platforms"`
}

// Spec is a validated project specification.
type Spec struct {
	Project   Project
	Compiler  Compiler
	MainEntry string
	Sources   []string
	Build     Build

	// BaseDir is the directory containing the spec file. Entry and source
	// paths resolve relative to it, and build output lands under it.
	BaseDir string

	// Warnings collects non-fatal validation findings (unknown toolchain
	// kind, non-semver version) for the caller to display.
	Warnings []string
}
