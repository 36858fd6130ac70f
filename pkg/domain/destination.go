package domain

// DestinationKind names the in-app screen (or external fallback) a link leads to.
type DestinationKind string

const (
	// DestinationNone is returned for empty input; there is nothing to open.
	DestinationNone DestinationKind = "none"
	// DestinationConversation is a private message thread with another user.
	DestinationConversation DestinationKind = "conversation"
	// DestinationEntry is a microblog entry, optionally focused on one of its comments.
	DestinationEntry DestinationKind = "entry"
	// DestinationLink is a submitted link, optionally focused on one of its comments.
	DestinationLink DestinationKind = "link"
	// DestinationProfile is a user profile.
	DestinationProfile DestinationKind = "profile"
	// DestinationTag is a tag stream.
	DestinationTag DestinationKind = "tag"
	// DestinationEmbed is externally hosted media that can be played inline.
	DestinationEmbed DestinationKind = "embed"
	// DestinationBrowser means no pattern matched and the URL should be opened externally.
	DestinationBrowser DestinationKind = "browser"
)

// DestinationKinds lists every kind in a stable order.
var DestinationKinds = []DestinationKind{ //nolint: gochecknoglobals
	DestinationNone,
	DestinationConversation,
	DestinationEntry,
	DestinationLink,
	DestinationProfile,
	DestinationTag,
	DestinationEmbed,
	DestinationBrowser,
}

// Valid reports whether k is one of the known kinds.
func (k DestinationKind) Valid() bool {
	for _, known := range DestinationKinds {
		if k == known {
			return true
		}
	}

	return false
}

// External reports whether the destination is opened outside the app screens
// and therefore has a web page worth previewing.
func (k DestinationKind) External() bool {
	return k == DestinationEmbed || k == DestinationBrowser
}

// Destination is the result of classifying a URL or shorthand reference.
// Only the fields relevant to Kind are set.
type Destination struct {
	Kind DestinationKind `json:"kind" yaml:"kind"`

	// EntryID is set for entries.
	EntryID int64 `json:"entryId,omitempty" yaml:"entryId,omitempty"`
	// LinkID is set for links.
	LinkID int64 `json:"linkId,omitempty" yaml:"linkId,omitempty"`
	// CommentID optionally narrows an entry or link to one comment. Zero means none.
	CommentID int64 `json:"commentId,omitempty" yaml:"commentId,omitempty"`
	// User is the login for profiles and conversations.
	User string `json:"user,omitempty" yaml:"user,omitempty"`
	// Tag is the tag name, without the leading '#'.
	Tag string `json:"tag,omitempty" yaml:"tag,omitempty"`
	// URL is the input URL for embeds and browser fallbacks.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Matched reports whether the destination is an in-app screen.
func (d Destination) Matched() bool {
	return d.Kind != DestinationNone && d.Kind != DestinationBrowser
}
