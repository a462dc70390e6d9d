package models

import "time"

// ContentMeta is carried by every publishable entity.
//
// An empty Sources set means the entity belongs to every site.
type ContentMeta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
	Published bool      `json:"published"`
	Sources   []SiteID  `json:"sources"`
}

func (m ContentMeta) Identity() string       { return m.ID }
func (m ContentMeta) IsPublished() bool      { return m.Published }
func (m ContentMeta) SourceTags() []SiteID   { return m.Sources }
func (m ContentMeta) CreatedTime() time.Time { return m.CreatedAt }

// DraftMeta holds the publishing fields shared by create and update drafts.
// Sources may contain SiteAll, which is stripped before sending.
type DraftMeta struct {
	Published *bool    `json:"published,omitempty"`
	Sources   []SiteID `json:"sources,omitempty"`
}

type BlogPost struct {
	ContentMeta
	Title         string     `json:"title"`
	Slug          string     `json:"slug,omitempty"`
	Excerpt       string     `json:"excerpt,omitempty"`
	Content       string     `json:"content"`
	Author        string     `json:"author,omitempty"`
	Category      string     `json:"category,omitempty"`
	Tags          []string   `json:"tags"`
	FeaturedImage string     `json:"featured_image,omitempty"`
	Featured      bool       `json:"featured"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
}

type BlogPostDraft struct {
	DraftMeta
	Title         *string  `json:"title,omitempty"`
	Slug          *string  `json:"slug,omitempty"`
	Excerpt       *string  `json:"excerpt,omitempty"`
	Content       *string  `json:"content,omitempty"`
	Author        *string  `json:"author,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	FeaturedImage *string  `json:"featured_image,omitempty"`
	Featured      *bool    `json:"featured,omitempty"`
	PublishedAt   *string  `json:"published_at,omitempty"`
}

type Testimonial struct {
	ContentMeta
	Name      string `json:"name"`
	Role      string `json:"role,omitempty"`
	Company   string `json:"company,omitempty"`
	Content   string `json:"content"`
	Rating    *int   `json:"rating,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Featured  bool   `json:"featured"`
}

type TestimonialDraft struct {
	DraftMeta
	Name      *string `json:"name,omitempty"`
	Role      *string `json:"role,omitempty"`
	Company   *string `json:"company,omitempty"`
	Content   *string `json:"content,omitempty"`
	Rating    *int    `json:"rating,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Featured  *bool   `json:"featured,omitempty"`
}

// Employment types accepted for job postings.
const (
	EmploymentFullTime   = "full-time"
	EmploymentPartTime   = "part-time"
	EmploymentContract   = "contract"
	EmploymentInternship = "internship"
)

type JobPosting struct {
	ContentMeta
	Title            string     `json:"title"`
	Department       string     `json:"department,omitempty"`
	Location         string     `json:"location,omitempty"`
	EmploymentType   string     `json:"employment_type,omitempty"`
	Description      string     `json:"description"`
	Requirements     []string   `json:"requirements"`
	Responsibilities []string   `json:"responsibilities"`
	SalaryRange      string     `json:"salary_range,omitempty"`
	Deadline         *time.Time `json:"deadline,omitempty"`
}

type JobPostingDraft struct {
	DraftMeta
	Title            *string  `json:"title,omitempty"`
	Department       *string  `json:"department,omitempty"`
	Location         *string  `json:"location,omitempty"`
	EmploymentType   *string  `json:"employment_type,omitempty"`
	Description      *string  `json:"description,omitempty"`
	Requirements     []string `json:"requirements,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	SalaryRange      *string  `json:"salary_range,omitempty"`
	Deadline         *string  `json:"deadline,omitempty"`
}

type Product struct {
	ContentMeta
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    string   `json:"category,omitempty"`
	Images      []string `json:"images"`
	InStock     bool     `json:"in_stock"`
	Featured    bool     `json:"featured"`
}

type ProductDraft struct {
	DraftMeta
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *string  `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Images      []string `json:"images,omitempty"`
	InStock     *bool    `json:"in_stock,omitempty"`
	Featured    *bool    `json:"featured,omitempty"`
}

// Construction project phases.
const (
	ProjectPlanning  = "planning"
	ProjectOngoing   = "ongoing"
	ProjectCompleted = "completed"
)

type ConstructionProject struct {
	ContentMeta
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Location       string     `json:"location,omitempty"`
	Client         string     `json:"client,omitempty"`
	Status         string     `json:"status,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	Budget         *float64   `json:"budget,omitempty"`
	Images         []string   `json:"images"`
	Featured       bool       `json:"featured"`
}

type ConstructionProjectDraft struct {
	DraftMeta
	Title          *string  `json:"title,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Location       *string  `json:"location,omitempty"`
	Client         *string  `json:"client,omitempty"`
	Status         *string  `json:"status,omitempty"`
	StartDate      *string  `json:"start_date,omitempty"`
	CompletionDate *string  `json:"completion_date,omitempty"`
	Budget         *string  `json:"budget,omitempty"`
	Images         []string `json:"images,omitempty"`
	Featured       *bool    `json:"featured,omitempty"`
}

type PortfolioItem struct {
	ContentMeta
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Client      string   `json:"client,omitempty"`
	Images      []string `json:"images"`
	VideoURL    string   `json:"video_url,omitempty"`
	ProjectURL  string   `json:"project_url,omitempty"`
	Featured    bool     `json:"featured"`
}

type PortfolioItemDraft struct {
	DraftMeta
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Client      *string  `json:"client,omitempty"`
	Images      []string `json:"images,omitempty"`
	VideoURL    *string  `json:"video_url,omitempty"`
	ProjectURL  *string  `json:"project_url,omitempty"`
	Featured    *bool    `json:"featured,omitempty"`
}
