package linkparser_test

import (
	"testing"

	"linkrouter/internal/linkparser"
)

func TestIsYouTubeVideoURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLAYLIST_ID", true},
		{"https://m.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ?t=10", true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", true},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ", true},
		{"https://www.youtube.com/live/dQw4w9WgXcQ", true},
		{"https://www.youtube.com/v/dQw4w9WgXcQ", true},
		{"https://www.youtube.com/playlist?list=PLAYLIST_ID", false},
		{"https://www.youtube.com/watch?v=short", false},
		{"https://www.youtube.com/", false},
		{"https://youtu.be/", false},
		{"https://example.com/watch?v=dQw4w9WgXcQ", false},
		{"not a url", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := linkparser.IsYouTubeVideoURL(tt.url); got != tt.want {
				t.Errorf("IsYouTubeVideoURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}
