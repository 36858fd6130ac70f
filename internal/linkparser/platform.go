package linkparser

import (
	"net/url"
	"strconv"
	"strings"

	"linkrouter/pkg/domain"
)

// PlatformLabel is the domain label of the platform's own hosts.
const PlatformLabel = "wykop"

// First path segments recognised on platform hosts.
const (
	EntryMatcher        = "wpis"
	LinkMatcher         = "link"
	ProfileMatcher      = "ludzie"
	TagMatcher          = "tag"
	ConversationMatcher = "wiadomosc-prywatna"
)

type extractor func(u *url.URL, segs []string) (domain.Destination, bool)

// platformRules maps the first path segment to its extractor, in priority order.
var platformRules = []struct { //nolint: gochecknoglobals
	segment string
	extract extractor
}{
	{EntryMatcher, extractEntry},
	{TagMatcher, extractTag},
	{ConversationMatcher, extractConversation},
	{ProfileMatcher, extractProfile},
	{LinkMatcher, extractLink},
}

func extractPlatform(u *url.URL, _ string) (domain.Destination, bool) {
	segs := pathSegments(u)
	if len(segs) == 0 {
		return domain.Destination{}, false
	}

	for _, r := range platformRules {
		if r.segment == segs[0] {
			return r.extract(u, segs)
		}
	}

	return domain.Destination{}, false
}

// extractEntry handles /wpis/{id}[/slug] with an optional #comment-{id} fragment.
func extractEntry(u *url.URL, segs []string) (domain.Destination, bool) {
	id, ok := parseID(segs, 1)
	if !ok {
		return domain.Destination{}, false
	}

	return domain.Destination{
		Kind:      domain.DestinationEntry,
		EntryID:   id,
		CommentID: fragmentCommentID(u),
	}, true
}

// extractLink handles /link/{id}[/slug]. A comment is addressed either by a
// "comment/{id}" path pair or by a #comment-{id} fragment.
func extractLink(u *url.URL, segs []string) (domain.Destination, bool) {
	id, ok := parseID(segs, 1)
	if !ok {
		return domain.Destination{}, false
	}

	commentID := int64(0)
	for i := 2; i < len(segs)-1; i++ {
		if segs[i] != "comment" {
			continue
		}
		if cid, ok := parseID(segs, i+1); ok {
			commentID = cid

			break
		}
	}
	if commentID == 0 {
		commentID = fragmentCommentID(u)
	}

	return domain.Destination{
		Kind:      domain.DestinationLink,
		LinkID:    id,
		CommentID: commentID,
	}, true
}

// tagListings are sub-pages of a tag that list only one content type.
var tagListings = map[string]bool{"wpisy": true, "znaleziska": true, "linki": true} //nolint: gochecknoglobals

func extractTag(_ *url.URL, segs []string) (domain.Destination, bool) {
	name := segmentAt(segs, 1)
	if tagListings[name] && len(segs) > 2 {
		name = segs[2]
	}
	// a parsed path only carries '#' escaped, so it is part of the name
	if name == "" {
		return domain.Destination{}, false
	}

	return domain.Destination{Kind: domain.DestinationTag, Tag: name}, true
}

func extractProfile(_ *url.URL, segs []string) (domain.Destination, bool) {
	login := segmentAt(segs, 1)
	if login == "" {
		return domain.Destination{}, false
	}

	return domain.Destination{Kind: domain.DestinationProfile, User: login}, true
}

// extractConversation handles /wiadomosc-prywatna/konwersacja/{login} and the
// short /wiadomosc-prywatna/{login} form.
func extractConversation(_ *url.URL, segs []string) (domain.Destination, bool) {
	login := segmentAt(segs, 1)
	if login == "konwersacja" {
		login = segmentAt(segs, 2)
	}
	if login == "" {
		return domain.Destination{}, false
	}

	return domain.Destination{Kind: domain.DestinationConversation, User: login}, true
}

func segmentAt(segs []string, i int) string {
	if i >= len(segs) {
		return ""
	}

	return segs[i]
}

// parseID reads a positive numeric identifier from segs[i].
func parseID(segs []string, i int) (int64, bool) {
	id, err := strconv.ParseInt(segmentAt(segs, i), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// fragmentCommentID reads "comment-{id}" or a bare "{id}" from the fragment.
func fragmentCommentID(u *url.URL) int64 {
	frag := strings.TrimPrefix(u.Fragment, "comment-")
	id, err := strconv.ParseInt(frag, 10, 64)
	if err != nil || id <= 0 {
		return 0
	}

	return id
}
