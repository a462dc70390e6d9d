package normalize

import "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/models"

// metaFields are shared by every content entity.
var metaFields = []Field{
	{Name: "id", Kind: KindString, ReadOnly: true},
	{Name: "created_at", Kind: KindTime, ReadOnly: true},
	{Name: "updated_at", Kind: KindTime, ReadOnly: true},
	{Name: "published", Kind: KindBool},
	{Name: "sources", Kind: KindSites},
}

func withMeta(fields ...Field) []Field {
	return append(append([]Field{}, metaFields...), fields...)
}

// Property is the real-estate listing schema.
var Property = &Schema{
	Entity: "property",
	Fields: withMeta(
		Field{Name: "title", Kind: KindString},
		Field{Name: "description", Kind: KindString},
		Field{Name: "price", Kind: KindNumber, Currency: true, Default: 0.0},
		Field{Name: "location", Kind: KindString},
		Field{
			Name:    "status",
			Kind:    KindEnum,
			Enum:    []string{models.StatusAvailable, models.StatusSold, models.StatusPending},
			Default: models.StatusAvailable,
		},
		Field{
			Name:    "listing_type",
			Kind:    KindEnum,
			Enum:    []string{models.ListingSale, models.ListingRent, models.ListingNewDevelopment},
			Default: models.ListingSale,
		},
		Field{Name: "property_type", Kind: KindString, Aliases: []string{"type"}},
		Field{Name: "latitude", Kind: KindNumber},
		Field{Name: "longitude", Kind: KindNumber},
		Field{Name: "images", Kind: KindStrings},
		Field{Name: "videos", Kind: KindObject, Fields: []Field{
			{Name: "drone", Kind: KindString},
			{Name: "walkthrough", Kind: KindString},
			{Name: "general", Kind: KindString},
		}},
		Field{Name: "amenities", Kind: KindStrings},
		Field{Name: "features", Kind: KindStrings},
		Field{Name: "lot_size", Kind: KindNumber},
		Field{Name: "year_built", Kind: KindNumber},
		Field{Name: "bedrooms", Kind: KindNumber},
		Field{Name: "bathrooms", Kind: KindNumber},
		Field{Name: "square_feet", Kind: KindNumber, DigitsFrom: "area"},
		Field{Name: "featured", Kind: KindBool},
		Field{Name: "agent", Kind: KindObject, Fields: []Field{
			{Name: "virtual_tour_url", Kind: KindString},
			{Name: "video_url", Kind: KindString},
		}},
	),
	Folds: []Fold{{Into: "agent", From: []string{"virtual_tour_url", "video_url"}}},
}

var BlogPost = &Schema{
	Entity: "blog post",
	Fields: withMeta(
		Field{Name: "title", Kind: KindString},
		Field{Name: "slug", Kind: KindString},
		Field{Name: "excerpt", Kind: KindString},
		Field{Name: "content", Kind: KindString},
		Field{Name: "author", Kind: KindString},
		Field{Name: "category", Kind: KindString},
		Field{Name: "tags", Kind: KindStrings},
		Field{Name: "featured_image", Kind: KindString, Aliases: []string{"image_url"}},
		Field{Name: "featured", Kind: KindBool},
		Field{Name: "published_at", Kind: KindTime},
	),
}

var Testimonial = &Schema{
	Entity: "testimonial",
	Fields: withMeta(
		Field{Name: "name", Kind: KindString},
		Field{Name: "role", Kind: KindString},
		Field{Name: "company", Kind: KindString},
		Field{Name: "content", Kind: KindString},
		Field{Name: "rating", Kind: KindNumber},
		Field{Name: "avatar_url", Kind: KindString},
		Field{Name: "featured", Kind: KindBool},
	),
}

var JobPosting = &Schema{
	Entity: "job posting",
	Fields: withMeta(
		Field{Name: "title", Kind: KindString},
		Field{Name: "department", Kind: KindString},
		Field{Name: "location", Kind: KindString},
		Field{
			Name: "employment_type",
			Kind: KindEnum,
			Enum: []string{
				models.EmploymentFullTime, models.EmploymentPartTime,
				models.EmploymentContract, models.EmploymentInternship,
			},
			Default: models.EmploymentFullTime,
		},
		Field{Name: "description", Kind: KindString},
		Field{Name: "requirements", Kind: KindStrings},
		Field{Name: "responsibilities", Kind: KindStrings},
		Field{Name: "salary_range", Kind: KindString},
		Field{Name: "deadline", Kind: KindTime},
	),
}

var Product = &Schema{
	Entity: "product",
	Fields: withMeta(
		Field{Name: "name", Kind: KindString},
		Field{Name: "description", Kind: KindString},
		Field{Name: "price", Kind: KindNumber, Currency: true},
		Field{Name: "category", Kind: KindString},
		Field{Name: "images", Kind: KindStrings},
		Field{Name: "in_stock", Kind: KindBool, Default: true},
		Field{Name: "featured", Kind: KindBool},
	),
}

var ConstructionProject = &Schema{
	Entity: "construction project",
	Fields: withMeta(
		Field{Name: "title", Kind: KindString},
		Field{Name: "description", Kind: KindString},
		Field{Name: "location", Kind: KindString},
		Field{Name: "client", Kind: KindString},
		Field{
			Name:    "status",
			Kind:    KindEnum,
			Enum:    []string{models.ProjectPlanning, models.ProjectOngoing, models.ProjectCompleted},
			Default: models.ProjectPlanning,
		},
		Field{Name: "start_date", Kind: KindTime},
		Field{Name: "completion_date", Kind: KindTime},
		Field{Name: "budget", Kind: KindNumber, Currency: true},
		Field{Name: "images", Kind: KindStrings},
		Field{Name: "featured", Kind: KindBool},
	),
}

var PortfolioItem = &Schema{
	Entity: "portfolio item",
	Fields: withMeta(
		Field{Name: "title", Kind: KindString},
		Field{Name: "description", Kind: KindString},
		Field{Name: "category", Kind: KindString},
		Field{Name: "client", Kind: KindString},
		Field{Name: "images", Kind: KindStrings},
		Field{Name: "video_url", Kind: KindString},
		Field{Name: "project_url", Kind: KindString},
		Field{Name: "featured", Kind: KindBool},
	),
}
