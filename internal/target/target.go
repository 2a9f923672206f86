// Package target classifies the URL being evaluated.
package target

import (
	"fmt"
	"net/url"
	"strings"
)

type Kind string

const (
	KindRepo    Kind = "repo"
	KindWebsite Kind = "website"
)

// Target identifies what is being evaluated. Immutable once parsed.
type Target struct {
	Kind  Kind
	URL   string
	Owner string
	Name  string
}

// Parse classifies a raw URL as a GitHub repository or a generic website.
//
// Only an exact host match on github.com (optionally with a www. prefix,
// case-insensitive) counts as a repository target; subdomains and lookalike
// hosts are treated as plain websites. Owner and name come from the first two
// non-empty path segments.
func Parse(rawURL string) (Target, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return Target{}, fmt.Errorf("target URL is empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Target{}, fmt.Errorf("invalid URL: %w", err)
	}

	host := strings.ToLower(u.Hostname())
	if host != "github.com" && host != "www.github.com" {
		return Target{Kind: KindWebsite, URL: rawURL}, nil
	}

	var segments []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) < 2 {
		return Target{}, fmt.Errorf("repository URL must include owner and name: %s", rawURL)
	}

	return Target{
		Kind:  KindRepo,
		URL:   rawURL,
		Owner: segments[0],
		Name:  segments[1],
	}, nil
}
