// Package gitinfo infers the owner/repo pair from the origin remote of the
// enclosing git working tree.
package gitinfo

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
)

// Origin opens the repository containing dir and parses its origin remote
// into an owner and repository name.
func Origin(dir string) (owner, repo string, err error) {
	r, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", "", fmt.Errorf("opening git repository: %w", err)
	}
	remote, err := r.Remote("origin")
	if err != nil {
		return "", "", fmt.Errorf("resolving origin remote: %w", err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", "", fmt.Errorf("origin remote has no URL")
	}
	return ParseRemoteURL(urls[0])
}

// ParseRemoteURL extracts owner and repository from an HTTPS or SSH remote
// URL, e.g. https://github.com/octocat/hello.git or
// git@github.com:octocat/hello.git.
func ParseRemoteURL(url string) (owner, repo string, err error) {
	path := url
	switch {
	case strings.Contains(path, "://"):
		// https://host/owner/repo(.git)
		path = path[strings.Index(path, "://")+3:]
		if i := strings.IndexByte(path, '/'); i >= 0 {
			path = path[i+1:]
		} else {
			path = ""
		}
	case strings.Contains(path, ":"):
		// git@host:owner/repo(.git)
		path = path[strings.LastIndex(path, ":")+1:]
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("cannot parse owner/repo from remote URL %q", url)
	}
	return parts[0], parts[1], nil
}
