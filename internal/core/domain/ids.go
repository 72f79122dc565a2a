package domain

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	videoIDRE    = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	playlistIDRE = regexp.MustCompile(`^[A-Za-z0-9_-]{2,}$`)
)

// ValidateVideoID reports whether s has the shape of a YouTube video id.
func ValidateVideoID(s string) bool {
	return videoIDRE.MatchString(s)
}

// ParseVideoID accepts a bare id or a youtube.com/watch, youtu.be, embed,
// shorts or /v/ URL.
func ParseVideoID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if ValidateVideoID(s) {
		return s, true
	}

	u, err := parseURL(s)
	if err != nil {
		return "", false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")

	var candidate string
	switch host {
	case "youtu.be":
		candidate = strings.Trim(u.Path, "/")
	case "youtube.com", "music.youtube.com", "youtube-nocookie.com":
		if v := u.Query().Get("v"); v != "" {
			candidate = v
			break
		}
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) == 2 {
			switch parts[0] {
			case "embed", "shorts", "v", "live":
				candidate = parts[1]
			}
		}
	}

	if !ValidateVideoID(candidate) {
		return "", false
	}
	return candidate, true
}

// ParsePlaylistID accepts a bare id or any URL carrying a list parameter.
func ParsePlaylistID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "/") && !strings.Contains(s, "?") {
		if playlistIDRE.MatchString(s) && !ValidateVideoID(s) {
			return s, true
		}
		return "", false
	}

	u, err := parseURL(s)
	if err != nil {
		return "", false
	}
	id := u.Query().Get("list")
	if !playlistIDRE.MatchString(id) {
		return "", false
	}
	return id, true
}

func parseURL(s string) (*url.URL, error) {
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	return url.Parse(s)
}
