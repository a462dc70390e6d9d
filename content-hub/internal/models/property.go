package models

// Property statuses.
const (
	StatusAvailable = "available"
	StatusSold      = "sold"
	StatusPending   = "pending"
)

// Listing types. ListingSale applies when a listing carries none.
const (
	ListingSale           = "sale"
	ListingRent           = "rent"
	ListingNewDevelopment = "new_development"
)

// Property is a real-estate listing in canonical form. Price is a plain
// non-negative number when set; a null wire price reads as nil. Images may contain legacy inline video URLs;
// see media.BuildMediaItems.
type Property struct {
	ContentMeta
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Price        *float64        `json:"price,omitempty"`
	Location     string          `json:"location,omitempty"`
	Status       string          `json:"status,omitempty"`
	ListingType  string          `json:"listing_type,omitempty"`
	PropertyType string          `json:"property_type,omitempty"`
	Latitude     *float64        `json:"latitude,omitempty"`
	Longitude    *float64        `json:"longitude,omitempty"`
	Images       []string        `json:"images"`
	Videos       *PropertyVideos `json:"videos,omitempty"`
	Amenities    []string        `json:"amenities"`
	Features     []string        `json:"features"`
	LotSize      *float64        `json:"lot_size,omitempty"`
	YearBuilt    *int            `json:"year_built,omitempty"`
	Bedrooms     *int            `json:"bedrooms,omitempty"`
	Bathrooms    *float64        `json:"bathrooms,omitempty"`
	SquareFeet   *float64        `json:"square_feet,omitempty"`
	Featured     bool            `json:"featured"`
	Agent        *AgentLinks     `json:"agent,omitempty"`
}

// EffectiveListingType is ListingType, or ListingSale when unset.
func (p *Property) EffectiveListingType() string {
	if p.ListingType == "" {
		return ListingSale
	}
	return p.ListingType
}

// HasCoordinates reports whether both latitude and longitude are set.
func (p *Property) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// PropertyVideos holds the labelled video channels of a listing.
type PropertyVideos struct {
	Drone       string `json:"drone,omitempty"`
	Walkthrough string `json:"walkthrough,omitempty"`
	General     string `json:"general,omitempty"`
}

// AgentLinks is the nested form of a listing's tour and video links.
type AgentLinks struct {
	VirtualTourURL string `json:"virtual_tour_url,omitempty"`
	VideoURL       string `json:"video_url,omitempty"`
}

// PropertyDraft is the editable form of a Property. Price is free text as
// typed by an editor ("₦1,250,000"). Type and PropertyType are
// interchangeable; Area feeds square_feet when SquareFeet is unset.
type PropertyDraft struct {
	DraftMeta
	Title          *string         `json:"title,omitempty"`
	Description    *string         `json:"description,omitempty"`
	Price          *string         `json:"price,omitempty"`
	Location       *string         `json:"location,omitempty"`
	Status         *string         `json:"status,omitempty"`
	ListingType    *string         `json:"listing_type,omitempty"`
	Type           *string         `json:"type,omitempty"`
	PropertyType   *string         `json:"property_type,omitempty"`
	Latitude       *float64        `json:"latitude,omitempty"`
	Longitude      *float64        `json:"longitude,omitempty"`
	Images         []string        `json:"images,omitempty"`
	Videos         *PropertyVideos `json:"videos,omitempty"`
	Amenities      []string        `json:"amenities,omitempty"`
	Features       []string        `json:"features,omitempty"`
	LotSize        *float64        `json:"lot_size,omitempty"`
	YearBuilt      *int            `json:"year_built,omitempty"`
	Bedrooms       *int            `json:"bedrooms,omitempty"`
	Bathrooms      *float64        `json:"bathrooms,omitempty"`
	SquareFeet     *float64        `json:"square_feet,omitempty"`
	Area           *string         `json:"area,omitempty"`
	Featured       *bool           `json:"featured,omitempty"`
	VirtualTourURL *string         `json:"virtual_tour_url,omitempty"`
	VideoURL       *string         `json:"video_url,omitempty"`
}

// MediaType discriminates gallery entries.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// MediaItem is one entry of a listing's unified gallery. For videos URL is
// the raw link (usable as a native <video> source) and EmbedURL is set for
// recognised hosts.
type MediaItem struct {
	Type     MediaType `json:"type"`
	URL      string    `json:"url"`
	Label    string    `json:"label,omitempty"`
	EmbedURL string    `json:"embed_url,omitempty"`
}
