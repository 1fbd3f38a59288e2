// Package gitver inspects the git repository around a project root for
// build reporting: current commit, branch, and the highest semver tag.
// Everything here is best-effort; a project outside version control simply
// yields no info.
package gitver

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Info holds repository metadata for one project root.
type Info struct {
	SHA    string // short commit hash of HEAD
	Branch string // current branch name, "" when detached
	Tag    string // highest semver tag, "" when none parse
}

// Detect opens the repository at rootDir and collects commit, branch, and
// tag info. Returns an error only when rootDir is not inside a repository
// or HEAD cannot be read.
func Detect(rootDir string) (*Info, error) {
	repo, err := git.PlainOpenWithOptions(rootDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if err != nil {
		return nil, err
	}

	info := &Info{SHA: head.Hash().String()[:7]}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}
	info.Tag = highestTag(repo)

	return info, nil
}

// highestTag returns the largest semver-parseable tag name, or "".
func highestTag(repo *git.Repository) string {
	tags, err := repo.Tags()
	if err != nil {
		return ""
	}
	defer tags.Close()

	var (
		best     *semver.Version
		bestName string
	)
	tags.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		v, err := semver.NewVersion(strings.TrimPrefix(name, "v"))
		if err != nil {
			return nil // non-semver tags are ignored
		}
		if best == nil || v.GreaterThan(best) {
			best = v
			bestName = name
		}
		return nil
	})

	return bestName
}
