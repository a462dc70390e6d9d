package normalize_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/models"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/normalize"
)

func ptr[T any](v T) *T { return &v }

func TestParseCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"₦1,250,000.50", 1250000.50, true},
		{"$ 99", 99, true},
		{"1.2.3", 1.2, true},
		{"12.", 12, true},
		{".5", 0.5, true},
		{"-300", 300, true},
		{"call for price", 0, false},
		{"", 0, false},
		{".", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := normalize.ParseCurrency(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPropertyToWire_Create(t *testing.T) {
	t.Parallel()

	wire, err := normalize.Encode(normalize.Property, models.PropertyDraft{
		DraftMeta:      models.DraftMeta{Sources: []models.SiteID{models.SiteAll, models.SiteRealty}},
		Title:          ptr("Lekki duplex"),
		Price:          ptr("₦1,250,000.50"),
		Type:           ptr("duplex"),
		PropertyType:   ptr("villa"),
		Area:           ptr("1,200 sqft"),
		VirtualTourURL: ptr("https://tour.example/1"),
		Images:         []string{"a.jpg"},
	}, normalize.Create)
	require.NoError(t, err)

	assert.InDelta(t, 1250000.50, wire["price"], 1e-9)
	assert.Equal(t, models.StatusAvailable, wire["status"])
	assert.Equal(t, models.ListingSale, wire["listing_type"])
	assert.Equal(t, "duplex", wire["property_type"])
	assert.InDelta(t, 1200.0, wire["square_feet"], 1e-9)
	assert.Equal(t, map[string]any{"virtual_tour_url": "https://tour.example/1"}, wire["agent"])
	assert.Equal(t, []string{string(models.SiteRealty)}, wire["sources"])
	assert.Equal(t, []string{"a.jpg"}, wire["images"])

	assert.NotContains(t, wire, "videos")
	assert.NotContains(t, wire, "type")
	assert.NotContains(t, wire, "area")
	assert.NotContains(t, wire, "virtual_tour_url")
}

func TestPropertyToWire_Rules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    map[string]any
		mode  normalize.Mode
		check func(t *testing.T, wire map[string]any)
	}{
		{
			name: "unparseable price becomes zero",
			in:   map[string]any{"price": "on request"},
			mode: normalize.Update,
			check: func(t *testing.T, wire map[string]any) {
				assert.Equal(t, 0.0, wire["price"])
			},
		},
		{
			name: "numeric price passes through",
			in:   map[string]any{"price": 450000.0},
			mode: normalize.Update,
			check: func(t *testing.T, wire map[string]any) {
				assert.Equal(t, 450000.0, wire["price"])
			},
		},
		{
			name: "update writes only provided fields",
			in:   map[string]any{"title": "New title"},
			mode: normalize.Update,
			check: func(t *testing.T, wire map[string]any) {
				assert.Equal(t, map[string]any{"title": "New title"}, wire)
			},
		},
		{
			name: "property_type used when type is empty",
			in:   map[string]any{"type": "", "property_type": "bungalow"},
			mode: normalize.Update,
			check: func(t *testing.T, wire map[string]any) {
				assert.Equal(t, "bungalow", wire["property_type"])
			},
		},
		{
			name: "explicit square_feet wins over area",
			in:   map[string]any{"square_feet": 900.0, "area": "1200"},
			mode: normalize.Update,
			check: func(t *testing.T, wire map[string]any) {
				assert.Equal(t, 900.0, wire["square_feet"])
			},
		},
		{
			name: "area without digits is ignored",
			in:   map[string]any{"area": "large"},
			mode: normalize.Update,
			check: func(t *testing.T, wire map[string]any) {
				assert.NotContains(t, wire, "square_feet")
			},
		},
		{
			name: "agent omitted when no links",
			in:   map[string]any{"virtual_tour_url": "", "title": "x"},
			mode: normalize.Update,
			check: func(t *testing.T, wire map[string]any) {
				assert.NotContains(t, wire, "agent")
			},
		},
		{
			name: "both agent links folded",
			in:   map[string]any{"virtual_tour_url": "https://t", "video_url": "https://v"},
			mode: normalize.Update,
			check: func(t *testing.T, wire map[string]any) {
				assert.Equal(t, map[string]any{"virtual_tour_url": "https://t", "video_url": "https://v"}, wire["agent"])
			},
		},
		{
			name: "videos passed through",
			in:   map[string]any{"videos": map[string]any{"drone": "https://d.mp4"}},
			mode: normalize.Update,
			check: func(t *testing.T, wire map[string]any) {
				assert.Equal(t, map[string]any{"drone": "https://d.mp4"}, wire["videos"])
			},
		},
		{
			name: "invalid listing type falls back to default on create",
			in:   map[string]any{"listing_type": "lease"},
			mode: normalize.Create,
			check: func(t *testing.T, wire map[string]any) {
				assert.Equal(t, models.ListingSale, wire["listing_type"])
			},
		},
		{
			name: "invalid status dropped on update",
			in:   map[string]any{"status": "archived"},
			mode: normalize.Update,
			check: func(t *testing.T, wire map[string]any) {
				assert.NotContains(t, wire, "status")
			},
		},
		{
			name: "read-only and unknown keys are not written",
			in:   map[string]any{"id": "p1", "created_at": "2024-01-01T00:00:00Z", "bogus": true},
			mode: normalize.Update,
			check: func(t *testing.T, wire map[string]any) {
				assert.Empty(t, wire)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, normalize.Property.ToWire(tt.in, tt.mode))
		})
	}
}

func TestPropertyFromWire_Coercion(t *testing.T) {
	t.Parallel()

	got := normalize.Property.FromWire(map[string]any{
		"id":           42.0,
		"price":        "350000",
		"bedrooms":     "3",
		"bathrooms":    nil,
		"lot_size":     "n/a",
		"latitude":     "6.45",
		"images":       "not-a-list",
		"amenities":    []any{"pool", 7, "", "gym"},
		"listing_type": "lease",
		"status":       "sold",
		"videos":       nil,
		"sources":      []any{"group", "all", "nowhere", "group"},
		"created_at":   "2024-03-01T10:00:00Z",
		"extra":        "dropped",
	})

	assert.Equal(t, "42", got["id"])
	assert.Equal(t, 350000.0, got["price"])
	assert.Equal(t, 3.0, got["bedrooms"])
	assert.Equal(t, 6.45, got["latitude"])
	assert.NotContains(t, got, "bathrooms")
	assert.NotContains(t, got, "lot_size")
	assert.Equal(t, []string{}, got["images"])
	assert.Equal(t, []string{"pool", "gym"}, got["amenities"])
	assert.Equal(t, []string{}, got["features"])
	assert.NotContains(t, got, "listing_type")
	assert.Equal(t, "sold", got["status"])
	assert.NotContains(t, got, "videos")
	assert.Equal(t, []string{"group", "nowhere"}, got["sources"])
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), got["created_at"])
	assert.NotContains(t, got, "extra")
}

func TestPropertyFromWire_VideosMustBeObject(t *testing.T) {
	t.Parallel()

	assert.NotContains(t, normalize.Property.FromWire(map[string]any{"videos": "https://x.mp4"}), "videos")
	assert.Equal(t,
		map[string]any{"general": "https://x.mp4"},
		normalize.Property.FromWire(map[string]any{"videos": map[string]any{"general": "https://x.mp4"}})["videos"],
	)
}

func TestDecodeProperty_BadVideoChannel(t *testing.T) {
	t.Parallel()

	p, err := normalize.Decode[models.Property](normalize.Property, map[string]any{
		"id": "p1",
		"videos": map[string]any{
			"drone":       []any{"https://youtu.be/abc"},
			"walkthrough": 5.0,
			"general":     "https://vimeo.com/1",
		},
	})
	require.NoError(t, err)

	require.NotNil(t, p.Videos)
	assert.Empty(t, p.Videos.Drone)
	assert.Equal(t, "5", p.Videos.Walkthrough)
	assert.Equal(t, "https://vimeo.com/1", p.Videos.General)
}

func TestDecodeProperty_NullPriceIsAbsent(t *testing.T) {
	t.Parallel()

	p, err := normalize.Decode[models.Property](normalize.Property, map[string]any{"id": "p1", "price": nil})
	require.NoError(t, err)
	assert.Nil(t, p.Price)

	wire, err := normalize.Encode(normalize.Property, map[string]any{"title": "Plot"}, normalize.Create)
	require.NoError(t, err)
	assert.Equal(t, 0.0, wire["price"])
}

func TestDecodeProperty_KeepsUnknownSourceTags(t *testing.T) {
	t.Parallel()

	p, err := normalize.Decode[models.Property](normalize.Property, map[string]any{
		"id":      "p1",
		"sources": []any{"realty", "all", " "},
	})
	require.NoError(t, err)
	assert.Equal(t, []models.SiteID{"realty"}, p.Sources)

	wire := normalize.Property.ToWire(map[string]any{"sources": []any{"realty", "group"}}, normalize.Update)
	assert.Equal(t, []string{"group"}, wire["sources"])
}

func TestDecodeProperty(t *testing.T) {
	t.Parallel()

	p, err := normalize.Decode[models.Property](normalize.Property, map[string]any{
		"id":           "p1",
		"created_at":   "2024-03-01T10:00:00Z",
		"updated_at":   "2024-03-02T10:00:00Z",
		"published":    true,
		"sources":      []any{"mansaluxe-realty"},
		"title":        "Ikoyi penthouse",
		"price":        "₦2,000,000",
		"year_built":   "2019",
		"bedrooms":     4.0,
		"images":       []any{"a.jpg", "tour.mp4"},
		"videos":       map[string]any{"drone": "https://youtu.be/abc"},
		"agent":        map[string]any{"video_url": "https://v"},
		"listing_type": "rent",
	})
	require.NoError(t, err)

	assert.Equal(t, "p1", p.ID)
	assert.True(t, p.Published)
	assert.Equal(t, []models.SiteID{models.SiteRealty}, p.Sources)
	require.NotNil(t, p.Price)
	assert.Equal(t, 2000000.0, *p.Price)
	require.NotNil(t, p.YearBuilt)
	assert.Equal(t, 2019, *p.YearBuilt)
	require.NotNil(t, p.Bedrooms)
	assert.Equal(t, 4, *p.Bedrooms)
	assert.Nil(t, p.Bathrooms)
	assert.Equal(t, []string{"a.jpg", "tour.mp4"}, p.Images)
	assert.Equal(t, []string{}, p.Amenities)
	require.NotNil(t, p.Videos)
	assert.Equal(t, "https://youtu.be/abc", p.Videos.Drone)
	require.NotNil(t, p.Agent)
	assert.Equal(t, "https://v", p.Agent.VideoURL)
	assert.Equal(t, models.ListingRent, p.ListingType)
	assert.False(t, p.UpdatedAt.Before(p.CreatedAt))
}

// A payload produced for the backend must read back as a valid entity.
func TestRoundTripIsShapeValid(t *testing.T) {
	t.Parallel()

	drafts := []any{
		models.PropertyDraft{Price: ptr("garbage"), Area: ptr("n/a"), Images: []string{"x.mov"}},
		models.PropertyDraft{
			Title: ptr("t"), Price: ptr("₦5"), Status: ptr("pending"), ListingType: ptr("new_development"),
			Videos: &models.PropertyVideos{Walkthrough: "https://vimeo.com/1"}, VideoURL: ptr("https://v"),
		},
		map[string]any{"bedrooms": "many", "sources": "group", "videos": []any{}},
	}

	for _, d := range drafts {
		wire, err := normalize.Encode(normalize.Property, d, normalize.Create)
		require.NoError(t, err)

		back := normalize.Property.FromWire(wire)
		for _, key := range []string{"images", "amenities", "features", "sources"} {
			assert.IsType(t, []string{}, back[key], key)
		}
		assert.IsType(t, 0.0, back["price"])
		assert.Contains(t, []any{models.ListingSale, models.ListingRent, models.ListingNewDevelopment}, back["listing_type"])

		_, err = normalize.Decode[models.Property](normalize.Property, wire)
		require.NoError(t, err)
	}
}

func TestOtherSchemas(t *testing.T) {
	t.Parallel()

	t.Run("job posting", func(t *testing.T) {
		t.Parallel()
		wire, err := normalize.Encode(normalize.JobPosting, models.JobPostingDraft{
			Title:    ptr("Site engineer"),
			Deadline: ptr("2025-06-30"),
		}, normalize.Create)
		require.NoError(t, err)
		assert.Equal(t, models.EmploymentFullTime, wire["employment_type"])
		assert.Equal(t, "2025-06-30T00:00:00Z", wire["deadline"])

		job, err := normalize.Decode[models.JobPosting](normalize.JobPosting, map[string]any{
			"title": "x", "requirements": nil, "deadline": "not a date",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{}, job.Requirements)
		assert.Nil(t, job.Deadline)
	})

	t.Run("product budget and stock", func(t *testing.T) {
		t.Parallel()
		wire := normalize.Product.ToWire(map[string]any{"price": "₦12,500"}, normalize.Create)
		assert.Equal(t, 12500.0, wire["price"])
		assert.Equal(t, true, wire["in_stock"])
	})

	t.Run("testimonial rating", func(t *testing.T) {
		t.Parallel()
		tm, err := normalize.Decode[models.Testimonial](normalize.Testimonial, map[string]any{"rating": "5"})
		require.NoError(t, err)
		require.NotNil(t, tm.Rating)
		assert.Equal(t, 5, *tm.Rating)
	})

	t.Run("construction budget", func(t *testing.T) {
		t.Parallel()
		wire := normalize.ConstructionProject.ToWire(map[string]any{"budget": "₦ 3.5"}, normalize.Update)
		assert.Equal(t, 3.5, wire["budget"])
	})
}
