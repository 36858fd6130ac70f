// Package linkparser classifies URLs and shorthand references (@user, #tag)
// into in-app destinations.
//
// Classification is a pure function of the input. It never fails: anything
// that cannot be parsed or matched is reported as a browser destination so the
// caller can open it externally.
package linkparser

import (
	"net/url"
	"strings"

	"linkrouter/pkg/domain"
)

const (
	// ProfilePrefix marks a shorthand profile reference, e.g. "@login".
	ProfilePrefix = '@'
	// TagPrefix marks a shorthand tag reference, e.g. "#tag".
	TagPrefix = '#'
)

// rule pairs a domain label matcher with the extractor that handles it.
type rule struct {
	name    string
	matches func(label string) bool
	extract func(u *url.URL, raw string) (domain.Destination, bool)
}

// rules is evaluated top to bottom; the first matching label wins.
var rules = []rule{ //nolint: gochecknoglobals
	{
		name:    "wykop",
		matches: labelIn(PlatformLabel),
		extract: extractPlatform,
	},
	{
		name:    "embed",
		matches: labelIn("gfycat", "streamable", "coub"),
		extract: func(_ *url.URL, raw string) (domain.Destination, bool) {
			return domain.Destination{Kind: domain.DestinationEmbed, URL: raw}, true
		},
	},
	{
		name:    "youtube",
		matches: labelIn("youtu", "youtube"),
		extract: func(u *url.URL, raw string) (domain.Destination, bool) {
			if _, ok := YouTubeVideoID(u); !ok {
				return domain.Destination{}, false
			}

			return domain.Destination{Kind: domain.DestinationEmbed, URL: raw}, true
		},
	},
}

func labelIn(labels ...string) func(string) bool {
	return func(label string) bool {
		for _, l := range labels {
			if l == label {
				return true
			}
		}

		return false
	}
}

// Classify maps raw to exactly one destination.
func Classify(raw string) domain.Destination {
	if raw == "" {
		return domain.Destination{Kind: domain.DestinationNone}
	}

	switch raw[0] {
	case ProfilePrefix:
		return domain.Destination{Kind: domain.DestinationProfile, User: raw[1:]}
	case TagPrefix:
		return domain.Destination{Kind: domain.DestinationTag, Tag: raw[1:]}
	}

	browser := domain.Destination{Kind: domain.DestinationBrowser, URL: raw}

	u, ok := ParseURI(raw)
	if !ok || !serverHost(u.Hostname()) {
		return browser
	}

	label := DomainLabel(u.Hostname())
	for _, r := range rules {
		if !r.matches(label) {
			continue
		}
		if d, ok := r.extract(u, raw); ok {
			return d
		}

		return browser
	}

	return browser
}

// ParseURI parses raw as a strict RFC 3986 URI. Backslashes are always
// removed; if the result is still invalid, square brackets are removed too and
// the parse is retried once.
func ParseURI(raw string) (*url.URL, bool) {
	cleaned := strings.ReplaceAll(raw, `\`, "")
	if u, ok := parseStrict(cleaned); ok {
		return u, true
	}

	cleaned = strings.NewReplacer("[", "", "]", "").Replace(cleaned)

	return parseStrict(cleaned)
}

func parseStrict(s string) (*url.URL, bool) {
	if !validURIChars(s) {
		return nil, false
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, false
	}

	return u, true
}

const reservedChars = ":/?#[]@!$&'()*+,;="

// validURIChars rejects characters a strict URI parser refuses: anything
// outside the unreserved/reserved sets, broken percent escapes, and square
// brackets outside the authority component. Non-ASCII runes are allowed.
func validURIChars(s string) bool {
	authStart, authEnd := authority(s)

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 0x80:
		case c == '%':
			if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
				return false
			}
			i += 2
		case c == '[' || c == ']':
			if i < authStart || i >= authEnd {
				return false
			}
		case isUnreserved(c) || strings.IndexByte(reservedChars, c) >= 0:
		default:
			return false
		}
	}

	return true
}

// authority returns the byte range of the "//host" component, or an empty
// range when s has none.
func authority(s string) (int, int) {
	i := strings.Index(s, "//")
	if i < 0 {
		return 0, 0
	}
	if q := strings.IndexAny(s, "?#"); q >= 0 && q < i {
		return 0, 0
	}

	start := i + 2
	end := len(s)
	if j := strings.IndexAny(s[start:], "/?#"); j >= 0 {
		end = start + j
	}

	return start, end
}

// serverHost reports whether h is usable as a server host. Names made of
// anything but letters, digits, '-' and '.' (e.g. "some_host") count as no
// host at all. IPv6 literals are accepted as is.
func serverHost(h string) bool {
	if h == "" {
		return false
	}
	if strings.IndexByte(h, ':') >= 0 {
		return true
	}
	for i := 0; i < len(h); i++ {
		c := h[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' || c == '.') {
			return false
		}
	}

	return true
}

func isUnreserved(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// DomainLabel extracts the registrable label from host: every "www." is
// removed, then the label before the final dot is taken, so "m.wykop.pl"
// yields "wykop" and "youtu.be" yields "youtu". Multi-part public suffixes
// such as "co.uk" are not special-cased.
func DomainLabel(host string) string {
	h := strings.ReplaceAll(strings.ToLower(host), "www.", "")
	if i := strings.LastIndexByte(h, '.'); i >= 0 {
		h = h[:i]
	}
	if i := strings.LastIndexByte(h, '.'); i >= 0 {
		h = h[i+1:]
	}

	return h
}

// pathSegments splits the escaped path of u into unescaped, non-empty segments.
// Splitting before unescaping keeps "%2F" inside a segment.
func pathSegments(u *url.URL) []string {
	parts := strings.Split(u.EscapedPath(), "/")
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if unescaped, err := url.PathUnescape(p); err == nil {
			p = unescaped
		}
		segs = append(segs, p)
	}

	return segs
}
