package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/go-github/v81/github"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	gh "owaspcheck/internal/github"
)

const (
	defaultCallTimeout = 10 * time.Second
	cacheTTL           = 5 * time.Minute
)

// GitHubSource resolves repositories via the GitHub API.
//
// Outbound calls are paced by a rate limiter and bounded by a per-call
// timeout; a timed-out call surfaces as an error local to the caller, never
// as a whole-run abort.
type GitHubSource struct {
	client      *gh.Client
	limiter     *rate.Limiter
	callTimeout time.Duration
}

// GitHubOption customizes a GitHubSource.
type GitHubOption func(*GitHubSource)

// WithCallTimeout overrides the per-call timeout applied to each API request.
func WithCallTimeout(d time.Duration) GitHubOption {
	return func(s *GitHubSource) {
		if d > 0 {
			s.callTimeout = d
		}
	}
}

// WithRateLimit overrides the outbound request pacing.
func WithRateLimit(l *rate.Limiter) GitHubOption {
	return func(s *GitHubSource) {
		if l != nil {
			s.limiter = l
		}
	}
}

func NewGitHub(client *gh.Client, opts ...GitHubOption) (*GitHubSource, error) {
	if client == nil || client.Client == nil {
		return nil, errors.New("github source: nil client")
	}
	s := &GitHubSource{
		client: client,
		// Unauthenticated GitHub API quota is 60 requests/hour; authenticated
		// 5000/hour. 5 req/s with a small burst stays well inside the
		// secondary (abuse) limits either way.
		limiter:     rate.NewLimiter(rate.Limit(5), 5),
		callTimeout: defaultCallTimeout,
	}
	for _, apply := range opts {
		if apply != nil {
			apply(s)
		}
	}
	return s, nil
}

// begin paces the call and applies the per-call timeout.
func (s *GitHubSource) begin(ctx context.Context) (context.Context, context.CancelFunc, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, nil, err
	}
	cctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	return cctx, cancel, nil
}

func (s *GitHubSource) Resolve(ctx context.Context, owner, name string) (Repo, error) {
	if owner == "" || name == "" {
		return nil, fmt.Errorf("resolve: owner and name are required")
	}

	cctx, cancel, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	meta, resp, err := s.client.Client.Repositories.Get(cctx, owner, name)
	if err != nil {
		return nil, classifyResolveError(resp, err)
	}

	return &githubRepo{
		src:   s,
		owner: owner,
		name:  name,
		meta:  meta,
		memo:  gocache.New(cacheTTL, cacheTTL),
	}, nil
}

// classifyResolveError maps a failed repository lookup onto the sentinel
// errors the engine distinguishes.
func classifyResolveError(resp *github.Response, err error) error {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	if resp != nil {
		switch resp.StatusCode {
		case 403, 429:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		case 404:
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}
	}
	return err
}

// githubRepo implements Repo on top of the GitHub API.
//
// Several rules probe the same paths (SECURITY.md is read by four rules, the
// README by three), so network lookups are memoized for the life of the run.
type githubRepo struct {
	src   *GitHubSource
	owner string
	name  string
	meta  *github.Repository
	memo  *gocache.Cache
}

func (r *githubRepo) Owner() string    { return r.owner }
func (r *githubRepo) FullName() string { return r.owner + "/" + r.name }

func (r *githubRepo) License() (string, bool) {
	lic := r.meta.GetLicense()
	if lic == nil {
		return "", false
	}
	return lic.GetName(), true
}

func (r *githubRepo) OpenIssueCount() int { return r.meta.GetOpenIssuesCount() }

func (r *githubRepo) LastUpdatedAt() (time.Time, bool) {
	if r.meta.UpdatedAt == nil {
		return time.Time{}, false
	}
	return r.meta.UpdatedAt.Time, true
}

func (r *githubRepo) LastPushedAt() (time.Time, bool) {
	if r.meta.PushedAt == nil {
		return time.Time{}, false
	}
	return r.meta.PushedAt.Time, true
}

func (r *githubRepo) WikiEnabled() bool        { return r.meta.GetHasWiki() }
func (r *githubRepo) DiscussionsEnabled() bool { return r.meta.GetHasDiscussions() }

func (r *githubRepo) Overview(ctx context.Context) (string, error) {
	const key = "overview"
	if v, ok := r.memo.Get(key); ok {
		if text, ok := v.(string); ok {
			return text, nil
		}
		return "", ErrNotFound
	}

	cctx, cancel, err := r.src.begin(ctx)
	if err != nil {
		return "", err
	}
	defer cancel()

	content, resp, err := r.src.client.Client.Repositories.GetReadme(cctx, r.owner, r.name, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			r.memo.SetDefault(key, ErrNotFound)
			return "", ErrNotFound
		}
		return "", err
	}

	text, err := content.GetContent()
	if err != nil {
		return "", fmt.Errorf("decode readme: %w", err)
	}
	r.memo.SetDefault(key, text)
	return text, nil
}

// contents looks up a path via the contents API and memoizes the result.
// Returns the file content (nil for directories), the directory listing
// (nil for files), and whether the path exists at all.
type contentsResult struct {
	file *github.RepositoryContent
	dir  []*github.RepositoryContent
}

func (r *githubRepo) contents(ctx context.Context, path string) (*contentsResult, bool, error) {
	key := "contents:" + path
	if v, ok := r.memo.Get(key); ok {
		if res, ok := v.(*contentsResult); ok {
			return res, true, nil
		}
		return nil, false, nil
	}

	cctx, cancel, err := r.src.begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer cancel()

	file, dir, resp, err := r.src.client.Client.Repositories.GetContents(cctx, r.owner, r.name, path, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			r.memo.SetDefault(key, ErrNotFound)
			return nil, false, nil
		}
		return nil, false, err
	}

	res := &contentsResult{file: file, dir: dir}
	r.memo.SetDefault(key, res)
	return res, true, nil
}

func (r *githubRepo) FileExists(ctx context.Context, path string) (bool, error) {
	res, found, err := r.contents(ctx, path)
	if err != nil || !found {
		return false, err
	}
	return res.file != nil, nil
}

func (r *githubRepo) DirExists(ctx context.Context, path string) (bool, error) {
	res, found, err := r.contents(ctx, path)
	if err != nil || !found {
		return false, err
	}
	return res.dir != nil, nil
}

func (r *githubRepo) RootEntries(ctx context.Context) ([]Entry, error) {
	res, found, err := r.contents(ctx, "")
	if err != nil {
		return nil, err
	}
	if !found || res.dir == nil {
		return nil, ErrNotFound
	}
	entries := make([]Entry, 0, len(res.dir))
	for _, item := range res.dir {
		entries = append(entries, Entry{
			Name:  item.GetName(),
			IsDir: item.GetType() == "dir",
		})
	}
	return entries, nil
}

func (r *githubRepo) ReadFile(ctx context.Context, path string) (string, error) {
	res, found, err := r.contents(ctx, path)
	if err != nil {
		return "", err
	}
	if !found || res.file == nil {
		return "", ErrNotFound
	}
	text, err := res.file.GetContent()
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}
	return text, nil
}

// count memoizes a paginated count obtained via the last-page trick: request
// one item per page and read the total from the pagination trailer.
func (r *githubRepo) count(ctx context.Context, key string, fetch func(ctx context.Context) (int, *github.Response, error)) (int, error) {
	if v, ok := r.memo.Get(key); ok {
		if n, ok := v.(int); ok {
			return n, nil
		}
	}

	cctx, cancel, err := r.src.begin(ctx)
	if err != nil {
		return 0, err
	}
	defer cancel()

	pageLen, resp, err := fetch(cctx)
	if err != nil {
		return 0, err
	}
	n := pageLen
	if resp != nil && resp.LastPage > 0 {
		n = resp.LastPage
	}
	r.memo.SetDefault(key, n)
	return n, nil
}

var onePerPage = github.ListOptions{PerPage: 1}

func (r *githubRepo) CollaboratorCount(ctx context.Context) (int, error) {
	return r.count(ctx, "count:collaborators", func(ctx context.Context) (int, *github.Response, error) {
		users, resp, err := r.src.client.Client.Repositories.ListCollaborators(ctx, r.owner, r.name,
			&github.ListCollaboratorsOptions{ListOptions: onePerPage})
		return len(users), resp, err
	})
}

func (r *githubRepo) MilestoneCount(ctx context.Context) (int, error) {
	return r.count(ctx, "count:milestones", func(ctx context.Context) (int, *github.Response, error) {
		ms, resp, err := r.src.client.Client.Issues.ListMilestones(ctx, r.owner, r.name,
			&github.MilestoneListOptions{ListOptions: onePerPage})
		return len(ms), resp, err
	})
}

func (r *githubRepo) ReleaseCount(ctx context.Context) (int, error) {
	return r.count(ctx, "count:releases", func(ctx context.Context) (int, *github.Response, error) {
		rels, resp, err := r.src.client.Client.Repositories.ListReleases(ctx, r.owner, r.name, &onePerPage)
		return len(rels), resp, err
	})
}

func (r *githubRepo) TagCount(ctx context.Context) (int, error) {
	return r.count(ctx, "count:tags", func(ctx context.Context) (int, *github.Response, error) {
		tags, resp, err := r.src.client.Client.Repositories.ListTags(ctx, r.owner, r.name, &onePerPage)
		return len(tags), resp, err
	})
}

func (r *githubRepo) RecentCommitCount(ctx context.Context, limit int) (int, error) {
	if limit <= 0 {
		limit = 10
	}
	key := fmt.Sprintf("count:commits:%d", limit)
	if v, ok := r.memo.Get(key); ok {
		if n, ok := v.(int); ok {
			return n, nil
		}
	}

	cctx, cancel, err := r.src.begin(ctx)
	if err != nil {
		return 0, err
	}
	defer cancel()

	commits, _, err := r.src.client.Client.Repositories.ListCommits(cctx, r.owner, r.name,
		&github.CommitsListOptions{ListOptions: github.ListOptions{PerPage: limit}})
	if err != nil {
		return 0, err
	}
	r.memo.SetDefault(key, len(commits))
	return len(commits), nil
}
