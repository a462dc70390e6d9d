// Package media builds the ordered gallery of a property listing from its
// image list and labelled video channels.
package media

import (
	"net/url"
	"strings"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/models"
)

// Labels applied to gallery videos.
const (
	LabelInline      = "Mansa Luxe Realty"
	LabelDrone       = "Drone Footage"
	LabelWalkthrough = "Virtual Walkthrough"
	LabelGeneral     = "Property Video"
)

var videoMarkers = []string{".mp4", ".mov", ".avi", "webm", "youtube", "youtu.be", "vimeo"}

// IsVideoURL reports whether raw looks like a video link. Matching is
// case-insensitive and substring based; legacy listings store videos in the
// image list.
func IsVideoURL(raw string) bool {
	lower := strings.ToLower(raw)
	for _, m := range videoMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// EmbedURL returns the player URL for YouTube and Vimeo links, or "" for
// other hosts and for links it cannot parse.
func EmbedURL(raw string) string {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "youtube") || strings.Contains(lower, "youtu.be"):
		if id := youTubeID(raw); id != "" {
			return "https://www.youtube.com/embed/" + id
		}
	case strings.Contains(lower, "vimeo"):
		if id := vimeoID(raw); id != "" {
			return "https://player.vimeo.com/video/" + id
		}
	}
	return ""
}

func youTubeID(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if v := u.Query().Get("v"); v != "" {
		return v
	}
	if strings.EqualFold(u.Hostname(), "youtu.be") {
		id, _, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		return id
	}
	return ""
}

// vimeoID is the first run of digits in the path.
func vimeoID(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	path := u.Path
	start := strings.IndexFunc(path, isDigit)
	if start < 0 {
		return ""
	}
	end := start
	for end < len(path) && isDigit(rune(path[end])) {
		end++
	}
	return path[start:end]
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// BuildMediaItems lists every image entry in order, then the drone,
// walkthrough and general channels when set. Each input produces exactly
// one item.
func BuildMediaItems(p *models.Property) []models.MediaItem {
	if p == nil {
		return []models.MediaItem{}
	}

	items := make([]models.MediaItem, 0, len(p.Images)+3)
	for _, raw := range p.Images {
		if IsVideoURL(raw) {
			items = append(items, video(raw, LabelInline))
			continue
		}
		items = append(items, models.MediaItem{Type: models.MediaImage, URL: raw})
	}

	if v := p.Videos; v != nil {
		for _, ch := range []struct{ url, label string }{
			{v.Drone, LabelDrone},
			{v.Walkthrough, LabelWalkthrough},
			{v.General, LabelGeneral},
		} {
			if ch.url != "" {
				items = append(items, video(ch.url, ch.label))
			}
		}
	}
	return items
}

func video(raw, label string) models.MediaItem {
	return models.MediaItem{
		Type:     models.MediaVideo,
		URL:      raw,
		Label:    label,
		EmbedURL: EmbedURL(raw),
	}
}
