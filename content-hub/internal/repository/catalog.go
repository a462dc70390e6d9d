package repository

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/models"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/normalize"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/visibility"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/logger"
)

// Public resource names.
const (
	ResourceProperties           = "properties"
	ResourceTestimonials         = "testimonials"
	ResourceBlog                 = "blog"
	ResourceJobs                 = "jobs"
	ResourceProducts             = "products"
	ResourceConstructionProjects = "construction-projects"
	ResourcePortfolio            = "portfolio"
)

// Resource is the type-erased view of a facade used by the HTTP API and the
// CLI.
type Resource interface {
	Name() string
	ListItems(ctx context.Context, opts ListOptions) ([]any, error)
	GetItem(ctx context.Context, id string) (any, error)
	GetVisibleItem(ctx context.Context, id string, site models.SiteID, opts visibility.Options) (any, error)
	CreateItem(ctx context.Context, input map[string]any) (any, error)
	UpdateItem(ctx context.Context, id string, input map[string]any) (any, error)
	Delete(ctx context.Context, id string) error
}

// Catalog holds every facade over one transport.
type Catalog struct {
	Properties           *Facade[models.Property, models.PropertyDraft]
	Testimonials         *Facade[models.Testimonial, models.TestimonialDraft]
	Blog                 *Facade[models.BlogPost, models.BlogPostDraft]
	Jobs                 *Facade[models.JobPosting, models.JobPostingDraft]
	Products             *Facade[models.Product, models.ProductDraft]
	ConstructionProjects *Facade[models.ConstructionProject, models.ConstructionProjectDraft]
	Portfolio            *Facade[models.PortfolioItem, models.PortfolioItemDraft]
	Forms                *Forms

	transport Transport
	resources map[string]Resource
}

// NewCatalog wires every facade to transport. notifier may be nil.
func NewCatalog(transport Transport, notifier Notifier, log logger.Logger) *Catalog {
	c := &Catalog{
		Properties: NewFacade[models.Property, models.PropertyDraft](
			ResourceProperties, "/api/properties", normalize.Property, transport, notifier, log),
		Testimonials: NewFacade[models.Testimonial, models.TestimonialDraft](
			ResourceTestimonials, "/api/testimonials", normalize.Testimonial, transport, notifier, log),
		Blog: NewFacade[models.BlogPost, models.BlogPostDraft](
			ResourceBlog, "/api/blog", normalize.BlogPost, transport, notifier, log),
		Jobs: NewFacade[models.JobPosting, models.JobPostingDraft](
			ResourceJobs, "/api/jobs", normalize.JobPosting, transport, notifier, log),
		Products: NewFacade[models.Product, models.ProductDraft](
			ResourceProducts, "/api/products", normalize.Product, transport, notifier, log),
		ConstructionProjects: NewFacade[models.ConstructionProject, models.ConstructionProjectDraft](
			ResourceConstructionProjects, "/api/construction/projects", normalize.ConstructionProject, transport, notifier, log),
		Portfolio: NewFacade[models.PortfolioItem, models.PortfolioItemDraft](
			ResourcePortfolio, "/api/portfolio", normalize.PortfolioItem, transport, notifier, log),
		Forms:     NewForms(transport, log),
		transport: transport,
	}

	c.resources = make(map[string]Resource)
	for _, r := range []Resource{
		c.Properties, c.Testimonials, c.Blog, c.Jobs, c.Products, c.ConstructionProjects, c.Portfolio,
	} {
		c.resources[r.Name()] = r
	}
	return c
}

// Resource looks a facade up by its public name.
func (c *Catalog) Resource(name string) (Resource, error) {
	r, ok := c.resources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownResource, name)
	}
	return r, nil
}

// ResourceNames lists the public names in sorted order.
func (c *Catalog) ResourceNames() []string {
	names := make([]string, 0, len(c.resources))
	for name := range c.resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Upload stores file in bucket through the transport's upload collaborator.
func (c *Catalog) Upload(ctx context.Context, bucket, filename string, file io.Reader) (string, error) {
	link, err := c.transport.Upload(ctx, bucket, filename, file)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	return link, nil
}

func (f *Facade[T, D]) ListItems(ctx context.Context, opts ListOptions) ([]any, error) {
	items, err := f.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(items))
	for i := range items {
		out[i] = items[i]
	}
	return out, nil
}

func (f *Facade[T, D]) GetItem(ctx context.Context, id string) (any, error) {
	return f.Get(ctx, id)
}

func (f *Facade[T, D]) GetVisibleItem(ctx context.Context, id string, site models.SiteID, opts visibility.Options) (any, error) {
	return f.GetVisible(ctx, id, site, opts)
}

func (f *Facade[T, D]) CreateItem(ctx context.Context, input map[string]any) (any, error) {
	return f.CreateFrom(ctx, input)
}

func (f *Facade[T, D]) UpdateItem(ctx context.Context, id string, input map[string]any) (any, error) {
	return f.UpdateFrom(ctx, id, input)
}
