package linkparser

import (
	"fmt"
	"net/url"

	"linkrouter/pkg/domain"
)

// BaseURL is the canonical origin used when building platform URLs.
const BaseURL = "https://www.wykop.pl"

// BuildURL renders the canonical URL of d. Classifying the result yields d
// again for every in-app and embed destination.
func BuildURL(d domain.Destination) string {
	switch d.Kind {
	case domain.DestinationEntry:
		return withComment(fmt.Sprintf("%s/%s/%d/", BaseURL, EntryMatcher, d.EntryID), d.CommentID)
	case domain.DestinationLink:
		return withComment(fmt.Sprintf("%s/%s/%d/", BaseURL, LinkMatcher, d.LinkID), d.CommentID)
	case domain.DestinationTag:
		return fmt.Sprintf("%s/%s/%s/", BaseURL, TagMatcher, url.PathEscape(d.Tag))
	case domain.DestinationProfile:
		return fmt.Sprintf("%s/%s/%s/", BaseURL, ProfileMatcher, url.PathEscape(d.User))
	case domain.DestinationConversation:
		return fmt.Sprintf("%s/%s/konwersacja/%s/", BaseURL, ConversationMatcher, url.PathEscape(d.User))
	case domain.DestinationEmbed, domain.DestinationBrowser:
		return d.URL
	default:
		return ""
	}
}

func withComment(u string, commentID int64) string {
	if commentID <= 0 {
		return u
	}

	return fmt.Sprintf("%s#comment-%d", u, commentID)
}

// Shorthand renders the @login / #tag form of profile and tag destinations,
// or "" for any other kind.
func Shorthand(d domain.Destination) string {
	switch d.Kind {
	case domain.DestinationProfile:
		return string(ProfilePrefix) + d.User
	case domain.DestinationTag:
		return string(TagPrefix) + d.Tag
	default:
		return ""
	}
}
