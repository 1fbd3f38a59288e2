package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// dependencyManifest is copied beside the staged sources when present.
const dependencyManifest = "requirements.txt"

func init() {
	Register("packaging", func() Strategy { return &packagingStrategy{} })
}

// packagingStrategy stages interpreted-language sources into the output
// directory for direct execution by a runtime. No child process is invoked;
// only filesystem errors can fail it.
type packagingStrategy struct{}

func (p *packagingStrategy) Name() string { return "packaging" }

func (p *packagingStrategy) NeedsToolchain() bool { return false }

// Build copies the entry file, every existing declared source (files
// individually, directories recursively with merge into an existing
// destination), and the dependency manifest if one sits beside the spec.
// The artifact is the copied entry file's new location.
func (p *packagingStrategy) Build(ctx context.Context, req *Request) (string, error) {
	base := req.Spec.BaseDir

	entry := filepath.Join(base, req.Spec.MainEntry)
	artifact := filepath.Join(req.OutputDir, filepath.Base(entry))
	if err := copyFile(entry, artifact); err != nil {
		return "", fmt.Errorf("%w: staging entry: %v", ErrCopy, err)
	}

	for _, src := range req.Spec.Sources {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		srcPath := filepath.Join(base, src)
		info, err := os.Stat(srcPath)
		if err != nil {
			continue // declared but absent sources are skipped
		}

		dest := filepath.Join(req.OutputDir, filepath.Base(srcPath))
		if info.IsDir() {
			err = copyTree(srcPath, dest)
		} else {
			err = copyFile(srcPath, dest)
		}
		if err != nil {
			return "", fmt.Errorf("%w: staging %s: %v", ErrCopy, src, err)
		}
	}

	manifest := filepath.Join(base, dependencyManifest)
	if _, err := os.Stat(manifest); err == nil {
		if err := copyFile(manifest, filepath.Join(req.OutputDir, dependencyManifest)); err != nil {
			return "", fmt.Errorf("%w: staging %s: %v", ErrCopy, dependencyManifest, err)
		}
	}

	return artifact, nil
}
