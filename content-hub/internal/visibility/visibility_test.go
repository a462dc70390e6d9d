package visibility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/models"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/normalize"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/visibility"
)

func meta(published bool, sources ...models.SiteID) models.ContentMeta {
	return models.ContentMeta{Published: published, Sources: sources}
}

func TestVisibleSources(t *testing.T) {
	t.Parallel()

	assert.Equal(t, models.AllSites(), visibility.VisibleSources(meta(true)))
	assert.Equal(t, []models.SiteID{models.SiteGroup}, visibility.VisibleSources(meta(true, models.SiteGroup)))
}

func TestIsVisibleOn(t *testing.T) {
	t.Parallel()

	public := visibility.Options{}
	admin := visibility.Options{IncludeDrafts: true}

	tests := []struct {
		name string
		item models.ContentMeta
		site models.SiteID
		opts visibility.Options
		want bool
	}{
		{"untagged published is everywhere", meta(true), models.SiteConstruction, public, true},
		{"untagged published on realty", meta(true), models.SiteRealty, public, true},
		{"untagged draft hidden publicly", meta(false), models.SiteGroup, public, false},
		{"untagged draft shown to admin", meta(false), models.SiteGroup, admin, true},
		{"tagged on its site", meta(true, models.SiteRealty), models.SiteRealty, public, true},
		{"tagged elsewhere", meta(true, models.SiteRealty), models.SiteGroup, public, false},
		{"drafts do not widen sites", meta(false, models.SiteRealty), models.SiteGroup, admin, false},
		{"all matches tagged items", meta(true, models.SiteEntertainment), models.SiteAll, public, true},
		{"all still hides drafts publicly", meta(false), models.SiteAll, public, false},
		{"unknown tag only is hidden", meta(true, "realty"), models.SiteRealty, public, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, visibility.IsVisibleOn(tt.item, tt.site, tt.opts))
		})
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	items := []models.Property{
		{ContentMeta: models.ContentMeta{ID: "1", Published: true}},
		{ContentMeta: models.ContentMeta{ID: "2", Published: true, Sources: []models.SiteID{models.SiteGroup}}},
		{ContentMeta: models.ContentMeta{ID: "3", Published: false}},
		{ContentMeta: models.ContentMeta{ID: "4", Published: true, Sources: []models.SiteID{models.SiteRealty}}},
	}

	got := visibility.Filter(items, models.SiteRealty, visibility.Options{})
	ids := make([]string, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"1", "4"}, ids)
}

func TestIsVisibleOn_DecodedUnknownTag(t *testing.T) {
	t.Parallel()

	p, err := normalize.Decode[models.Property](normalize.Property, map[string]any{
		"id":        "p1",
		"published": true,
		"sources":   []any{"realty"},
	})
	require.NoError(t, err)

	for _, site := range models.AllSites() {
		assert.False(t, visibility.IsVisibleOn(p, site, visibility.Options{}), site)
	}
	assert.True(t, visibility.IsVisibleOn(p, models.SiteAll, visibility.Options{}))
}
