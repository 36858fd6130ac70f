package linkparser

import (
	"net/url"
	"regexp"
)

var youTubeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`) //nolint: gochecknoglobals

// youTubePathPrefixes are the path forms that carry the video id as the next segment.
var youTubePathPrefixes = map[string]bool{"embed": true, "v": true, "shorts": true, "live": true} //nolint: gochecknoglobals

// YouTubeVideoID returns the video id addressed by u. Supported forms:
//   - https://youtu.be/VIDEO_ID
//   - https://www.youtube.com/watch?v=VIDEO_ID
//   - https://www.youtube.com/{embed,v,shorts,live}/VIDEO_ID
func YouTubeVideoID(u *url.URL) (string, bool) {
	segs := pathSegments(u)

	var id string
	switch DomainLabel(u.Hostname()) {
	case "youtu":
		id = segmentAt(segs, 0)
	case "youtube":
		switch {
		case segmentAt(segs, 0) == "watch":
			id = u.Query().Get("v")
		case youTubePathPrefixes[segmentAt(segs, 0)]:
			id = segmentAt(segs, 1)
		}
	}

	if !youTubeIDPattern.MatchString(id) {
		return "", false
	}

	return id, true
}

// IsYouTubeVideoURL reports whether raw is a parseable YouTube video URL.
func IsYouTubeVideoURL(raw string) bool {
	u, ok := ParseURI(raw)
	if !ok {
		return false
	}
	_, ok = YouTubeVideoID(u)

	return ok
}
