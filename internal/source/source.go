package source

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors the engine distinguishes when resolution fails.
var (
	// ErrNotFound indicates the requested repository or path does not exist.
	ErrNotFound = errors.New("not found")
	// ErrRateLimited indicates the hosting API refused the request due to
	// rate limiting or missing authorization.
	ErrRateLimited = errors.New("rate limited or forbidden")
)

// Entry is one item in a repository's root listing.
type Entry struct {
	Name  string
	IsDir bool
}

// Source resolves repositories on the hosting service.
type Source interface {
	Resolve(ctx context.Context, owner, name string) (Repo, error)
}

// Repo supplies the facts rules need about a resolved repository.
//
// Methods that hit the network take a context and return an error; rules
// treat those errors as recoverable and fail closed. Plain getters read from
// the metadata captured at resolve time.
type Repo interface {
	Owner() string
	FullName() string

	// Overview returns the repository's top-level readable overview document
	// (the README), or ErrNotFound when none exists.
	Overview(ctx context.Context) (string, error)
	FileExists(ctx context.Context, path string) (bool, error)
	DirExists(ctx context.Context, path string) (bool, error)
	RootEntries(ctx context.Context) ([]Entry, error)
	ReadFile(ctx context.Context, path string) (string, error)

	// License returns the license name and whether one is present.
	License() (string, bool)
	OpenIssueCount() int
	LastUpdatedAt() (time.Time, bool)
	LastPushedAt() (time.Time, bool)
	WikiEnabled() bool
	DiscussionsEnabled() bool

	CollaboratorCount(ctx context.Context) (int, error)
	MilestoneCount(ctx context.Context) (int, error)
	ReleaseCount(ctx context.Context) (int, error)
	TagCount(ctx context.Context) (int, error)
	RecentCommitCount(ctx context.Context, limit int) (int, error)
}

// PageFetcher retrieves the plain text of a web page for website targets.
type PageFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}
