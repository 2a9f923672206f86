package rules

import (
	"context"
	"time"

	"owaspcheck/internal/source"
)

// fakeRepo is a map-backed source.Repo for rule tests.
type fakeRepo struct {
	owner    string
	files    map[string]string
	dirs     map[string]bool
	entries  []source.Entry
	overview string
	noReadme bool

	license     string
	openIssues  int
	updatedAt   time.Time
	pushedAt    time.Time
	wiki        bool
	discussions bool

	collaborators int
	milestones    int
	releases      int
	tags          int
	commits       int

	collaboratorErr error
	milestoneErr    error
	releaseErr      error
	tagErr          error
	commitErr       error
	contentsErr     error
}

func (f *fakeRepo) Owner() string    { return f.owner }
func (f *fakeRepo) FullName() string { return f.owner + "/repo" }

func (f *fakeRepo) Overview(ctx context.Context) (string, error) {
	if f.noReadme {
		return "", source.ErrNotFound
	}
	return f.overview, nil
}

func (f *fakeRepo) FileExists(ctx context.Context, path string) (bool, error) {
	if f.contentsErr != nil {
		return false, f.contentsErr
	}
	_, ok := f.files[path]
	return ok, nil
}

func (f *fakeRepo) DirExists(ctx context.Context, path string) (bool, error) {
	if f.contentsErr != nil {
		return false, f.contentsErr
	}
	return f.dirs[path], nil
}

func (f *fakeRepo) RootEntries(ctx context.Context) ([]source.Entry, error) {
	if f.contentsErr != nil {
		return nil, f.contentsErr
	}
	return f.entries, nil
}

func (f *fakeRepo) ReadFile(ctx context.Context, path string) (string, error) {
	if f.contentsErr != nil {
		return "", f.contentsErr
	}
	content, ok := f.files[path]
	if !ok {
		return "", source.ErrNotFound
	}
	return content, nil
}

func (f *fakeRepo) License() (string, bool) { return f.license, f.license != "" }
func (f *fakeRepo) OpenIssueCount() int     { return f.openIssues }

func (f *fakeRepo) LastUpdatedAt() (time.Time, bool) { return f.updatedAt, !f.updatedAt.IsZero() }
func (f *fakeRepo) LastPushedAt() (time.Time, bool)  { return f.pushedAt, !f.pushedAt.IsZero() }
func (f *fakeRepo) WikiEnabled() bool                { return f.wiki }
func (f *fakeRepo) DiscussionsEnabled() bool         { return f.discussions }

func (f *fakeRepo) CollaboratorCount(ctx context.Context) (int, error) {
	return f.collaborators, f.collaboratorErr
}

func (f *fakeRepo) MilestoneCount(ctx context.Context) (int, error) {
	return f.milestones, f.milestoneErr
}

func (f *fakeRepo) ReleaseCount(ctx context.Context) (int, error) {
	return f.releases, f.releaseErr
}

func (f *fakeRepo) TagCount(ctx context.Context) (int, error) {
	return f.tags, f.tagErr
}

func (f *fakeRepo) RecentCommitCount(ctx context.Context, limit int) (int, error) {
	return f.commits, f.commitErr
}
