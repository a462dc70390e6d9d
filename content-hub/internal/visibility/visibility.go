// Package visibility decides which sites an entity appears on.
package visibility

import (
	"slices"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/models"
)

// Item is satisfied by every content entity through models.ContentMeta.
type Item interface {
	IsPublished() bool
	SourceTags() []models.SiteID
}

// Options tunes IsVisibleOn. Public sites leave IncludeDrafts false; the
// admin console sets it.
type Options struct {
	IncludeDrafts bool
}

// VisibleSources returns the item's site tags, or every site when it has
// none. Untagged content is shared, never hidden.
func VisibleSources(item Item) []models.SiteID {
	if tags := item.SourceTags(); len(tags) > 0 {
		return tags
	}
	return models.AllSites()
}

// IsVisibleOn reports whether item should be shown on site. SiteAll matches
// any item, which is how the admin console lists across sites.
func IsVisibleOn(item Item, site models.SiteID, opts Options) bool {
	if !item.IsPublished() && !opts.IncludeDrafts {
		return false
	}
	if site == models.SiteAll {
		return true
	}
	return slices.Contains(VisibleSources(item), site)
}

// Filter keeps the items visible on site, preserving order.
func Filter[T Item](items []T, site models.SiteID, opts Options) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if IsVisibleOn(item, site, opts) {
			out = append(out, item)
		}
	}
	return out
}
