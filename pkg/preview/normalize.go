package preview

import (
	"fmt"
	"net"
	"net/url"
	"path"
	"sort"
	"strings"
)

// NormalizeURL returns the key previews of raw are shared under, so that
// spellings of the same page wait on a single fetch:
//   - scheme and host are lower-cased
//   - an empty path becomes "/" and dot-segments are resolved, keeping a trailing slash
//   - default ports (http:80, https:443) are dropped
//   - query parameters are sorted by key and value
//   - the fragment is removed
//
// Backslashes are dropped first, the way JSON-escaped links ("https:\/\/...")
// are cleaned before classification.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.ReplaceAll(raw, `\`, ""))
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %w", err)
	}

	u.Scheme = strings.ToLower(u.Scheme)

	if u.Path == "" {
		u.Path = "/"
	}
	trailing := strings.HasSuffix(u.Path, "/")
	cleaned := path.Clean(u.Path)
	if !strings.HasPrefix(cleaned, "/") {
		cleaned = "/" + cleaned
	}
	if trailing && cleaned != "/" {
		cleaned += "/"
	}
	u.Path = cleaned
	u.RawPath = ""

	host := strings.ToLower(u.Host)
	if h, port, err := net.SplitHostPort(host); err == nil {
		if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
			host = h
			if strings.Contains(h, ":") {
				host = "[" + h + "]"
			}
		}
	}
	u.Host = host

	if u.RawQuery != "" {
		q := u.Query()
		for k := range q {
			sort.Strings(q[k])
		}
		u.RawQuery = q.Encode()
	}

	u.Fragment = ""
	u.RawFragment = ""

	return u.String(), nil
}

// CacheKey is NormalizeURL falling back to raw when it does not parse.
func CacheKey(raw string) string {
	key, err := NormalizeURL(raw)
	if err != nil {
		return raw
	}

	return key
}
