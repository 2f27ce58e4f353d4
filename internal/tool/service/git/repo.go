package git

import (
	"context"
	"path/filepath"
	"sort"

	gogit "github.com/go-git/go-git/v5"
)

// RepoDiffer lists changed files by reading the repository in-process with
// go-git. Paths are absolute, rooted at the worktree.
type RepoDiffer struct {
	dir string

	root   string
	status gogit.Status
}

// NewRepoDiffer creates a RepoDiffer for the repository containing dir.
func NewRepoDiffer(dir string) *RepoDiffer {
	return &RepoDiffer{dir: dir}
}

// Staged lists files whose index entry differs from HEAD.
func (d *RepoDiffer) Staged(ctx context.Context) ([]string, error) {
	if err := d.load(ctx); err != nil {
		return nil, err
	}
	return d.collect(func(s *gogit.FileStatus) gogit.StatusCode { return s.Staging }), nil
}

// Unstaged lists tracked files whose worktree content differs from the index.
func (d *RepoDiffer) Unstaged(ctx context.Context) ([]string, error) {
	if err := d.load(ctx); err != nil {
		return nil, err
	}
	return d.collect(func(s *gogit.FileStatus) gogit.StatusCode { return s.Worktree }), nil
}

// load reads worktree status once per differ.
func (d *RepoDiffer) load(ctx context.Context) error {
	if d.status != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := d.dir
	if dir == "" {
		dir = "."
	}

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return &RepositoryError{Path: dir, Cause: err}
	}
	wt, err := repo.Worktree()
	if err != nil {
		return &RepositoryError{Path: dir, Cause: err}
	}
	status, err := wt.Status()
	if err != nil {
		return &DiffError{Query: "status", Cause: err}
	}

	d.root = wt.Filesystem.Root()
	d.status = status
	return nil
}

// collect returns sorted absolute paths whose selected code shows a change
// to a tracked file. Untracked files are never reported.
func (d *RepoDiffer) collect(code func(*gogit.FileStatus) gogit.StatusCode) []string {
	var paths []string
	for path, fs := range d.status {
		switch code(fs) {
		case gogit.Unmodified, gogit.Untracked:
			continue
		}
		paths = append(paths, filepath.Join(d.root, filepath.FromSlash(path)))
	}
	sort.Strings(paths)
	return paths
}
