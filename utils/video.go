package utils

import (
	"regexp"
	"strings"
)

type VideoPlatform string

const (
	PlatformYouTube VideoPlatform = "youtube"
	PlatformVimeo   VideoPlatform = "vimeo"
	PlatformOther   VideoPlatform = "other"
)

var youtubeIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
}

var vimeoIDPattern = regexp.MustCompile(`vimeo\.com/(?:.*/)?(\d+)`)

// DetectVideoPlatform classifies a video URL by host fragment. The match is
// case-sensitive; uppercase hosts fall through to "other".
func DetectVideoPlatform(url string) VideoPlatform {
	if strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be") {
		return PlatformYouTube
	}
	if strings.Contains(url, "vimeo.com") {
		return PlatformVimeo
	}
	return PlatformOther
}

// ExtractYouTubeID pulls the video id out of watch, short and embed URL
// shapes. Returns "" when the URL matches none of them.
func ExtractYouTubeID(url string) string {
	for _, pattern := range youtubeIDPatterns {
		if match := pattern.FindStringSubmatch(url); match != nil {
			return match[1]
		}
	}
	return ""
}

// ExtractVimeoID pulls the numeric video id from a Vimeo URL, including
// channel and showcase paths. Returns "" when there is no match.
func ExtractVimeoID(url string) string {
	if match := vimeoIDPattern.FindStringSubmatch(url); match != nil {
		return match[1]
	}
	return ""
}
