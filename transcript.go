package main

import (
	"fmt"
	"regexp"
)

// extractVideoID pulls the 11-character video ID from various YouTube URL formats
// Supported formats:
//   - youtube.com/watch?v=VIDEO_ID
//   - youtu.be/VIDEO_ID
//   - youtube.com/embed/VIDEO_ID
//   - youtube.com/v/VIDEO_ID
//   - youtube.com/shorts/VIDEO_ID
//   - youtube.com/live/VIDEO_ID
//   - m.youtube.com/watch?v=VIDEO_ID
//   - With extra params: ?v=VIDEO_ID&t=123
func extractVideoID(url string) (string, error) {
	patterns := []string{
		// Standard watch URL (including mobile)
		`(?:m\.)?youtube\.com/watch\?v=([a-zA-Z0-9_-]{11})`,
		// Short URL
		`youtu\.be/([a-zA-Z0-9_-]{11})`,
		// Embed and legacy URLs
		`youtube\.com/(?:embed|v)/([a-zA-Z0-9_-]{11})`,
		// Shorts
		`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`,
		// Live streams
		`youtube\.com/live/([a-zA-Z0-9_-]{11})`,
	}

	for _, pattern := range patterns {
		re := regexp.MustCompile(pattern)
		matches := re.FindStringSubmatch(url)
		if len(matches) > 1 {
			return matches[1], nil
		}
	}

	// Check if it's already just a video ID
	if matched, _ := regexp.MatchString(`^[a-zA-Z0-9_-]{11}$`, url); matched {
		return url, nil
	}

	return "", fmt.Errorf("%w: could not find a video ID in %q", ErrInvalidURL, url)
}
