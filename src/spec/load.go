package spec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/portforge/portforge/src/toolchain"
)

// DefaultVersion is used when a spec omits project.version.
const DefaultVersion = "1.0.0"

// rawSpec is the wire shape of a spec document. Pointer fields distinguish
// "absent" from "present but empty" so required-field checks work; the
// compiler value stays untyped until normalization because it may be a bare
// string or a table.
type rawSpec struct {
	Project   *Project `toml:"project"`
	Compiler  any      `toml:"compiler"`
	MainEntry string   `toml:"main_entry"`
	Sources   []string `toml:"sources"`
	Build     *Build   `toml:"build"`
}

// Load reads, parses, and validates a spec file. All validation happens
// here; the returned Spec is immutable for the rest of the run. Errors wrap
// ErrSpecFile.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: spec file not found: %s", ErrSpecFile, path)
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrSpecFile, path, err)
	}

	var raw rawSpec
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: invalid TOML in %s: %v", ErrSpecFile, path, err)
	}

	if raw.Project == nil {
		return nil, fmt.Errorf("%w: missing required field: project", ErrSpecFile)
	}
	if raw.Compiler == nil {
		return nil, fmt.Errorf("%w: missing required field: compiler", ErrSpecFile)
	}
	if raw.MainEntry == "" {
		return nil, fmt.Errorf("%w: missing required field: main_entry", ErrSpecFile)
	}
	if raw.Project.Name == "" {
		return nil, fmt.Errorf("%w: project.name must not be empty", ErrSpecFile)
	}

	compiler, err := normalizeCompiler(raw.Compiler)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpecFile, err)
	}

	s := &Spec{
		Project:   *raw.Project,
		Compiler:  compiler,
		MainEntry: raw.MainEntry,
		Sources:   raw.Sources,
		BaseDir:   filepath.Dir(path),
	}
	if raw.Build != nil {
		s.Build = *raw.Build
	}
	if s.Project.Version == "" {
		s.Project.Version = DefaultVersion
	}

	// main_entry must exist now; sources are only probed at build time.
	entry := filepath.Join(s.BaseDir, s.MainEntry)
	if _, err := os.Stat(entry); err != nil {
		return nil, fmt.Errorf("%w: main entry file not found: %s", ErrSpecFile, entry)
	}

	// Unknown toolchain kinds are a supported escape hatch — warn, don't fail.
	if !toolchain.Known(s.Compiler.Kind) {
		s.Warnings = append(s.Warnings,
			fmt.Sprintf("compiler %q not in supported list, but will attempt to use it", s.Compiler.Kind))
	}
	if _, err := semver.NewVersion(s.Project.Version); err != nil {
		s.Warnings = append(s.Warnings,
			fmt.Sprintf("project.version %q is not valid semver", s.Project.Version))
	}

	return s, nil
}

// normalizeCompiler converts the untyped compiler value into a Compiler.
func normalizeCompiler(v any) (Compiler, error) {
	switch decl := v.(type) {
	case string:
		if decl == "" {
			return Compiler{}, fmt.Errorf("compiler must not be empty")
		}
		return Compiler{Kind: decl}, nil
	case map[string]any:
		c := Compiler{}
		if kind, ok := decl["type"].(string); ok {
			c.Kind = kind
		}
		if c.Kind == "" {
			return Compiler{}, fmt.Errorf("compiler.type is required")
		}
		if path, ok := decl["path"].(string); ok {
			c.Path = path
		}
		flags, err := normalizeFlags(decl["flags"])
		if err != nil {
			return Compiler{}, err
		}
		c.Flags = flags
		return c, nil
	default:
		return Compiler{}, fmt.Errorf("compiler must be a string or a table, got %T", v)
	}
}

// normalizeFlags accepts either a whitespace-delimited string or an ordered
// list of strings, producing the same argument list for both.
func normalizeFlags(v any) ([]string, error) {
	switch flags := v.(type) {
	case nil:
		return nil, nil
	case string:
		return strings.Fields(flags), nil
	case []any:
		out := make([]string, 0, len(flags))
		for _, f := range flags {
			s, ok := f.(string)
			if !ok {
				return nil, fmt.Errorf("compiler.flags entries must be strings, got %T", f)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("compiler.flags must be a string or a list, got %T", v)
	}
}
