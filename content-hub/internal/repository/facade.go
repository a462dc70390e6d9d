package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/models"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/normalize"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/visibility"
	infraerrors "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/errors"
	infraevents "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/events"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/logger"
)

// Entity is what every facade element satisfies.
type Entity interface {
	visibility.Item
	Identity() string
}

// Notifier receives lifecycle events after successful writes.
type Notifier interface {
	Notify(ctx context.Context, evt infraevents.ContentEvent)
}

// ListOptions selects a per-site view. An empty Site or models.SiteAll lists
// across sites.
type ListOptions struct {
	Site          models.SiteID
	IncludeDrafts bool
}

// Facade is the CRUD surface for one entity type T with draft type D.
type Facade[T Entity, D any] struct {
	name       string
	collection string
	schema     *normalize.Schema
	transport  Transport
	notifier   Notifier
	log        logger.Logger
}

// NewFacade binds name (the public resource name) to a backend collection.
// notifier may be nil.
func NewFacade[T Entity, D any](
	name, collection string,
	schema *normalize.Schema,
	transport Transport,
	notifier Notifier,
	log logger.Logger,
) *Facade[T, D] {
	return &Facade[T, D]{
		name:       name,
		collection: collection,
		schema:     schema,
		transport:  transport,
		notifier:   notifier,
		log:        log.With(logger.String("resource", name)),
	}
}

func (f *Facade[T, D]) Name() string { return f.name }

// List pushes the site and publication filters down as the source and
// published query parameters, then re-applies the visibility rule to what
// comes back.
func (f *Facade[T, D]) List(ctx context.Context, opts ListOptions) ([]T, error) {
	query := url.Values{}
	site := opts.Site
	if site == "" {
		site = models.SiteAll
	}
	if site != models.SiteAll {
		query.Set("source", string(site))
	}
	query.Set("published", strconv.FormatBool(!opts.IncludeDrafts))

	rows, err := f.transport.List(ctx, f.collection, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", f.name, err)
	}

	items := make([]T, 0, len(rows))
	for _, row := range rows {
		item, decodeErr := normalize.Decode[T](f.schema, row)
		if decodeErr != nil {
			f.log.Warn("Skipping undecodable row", logger.Error(decodeErr))
			continue
		}
		items = append(items, item)
	}
	return visibility.Filter(items, site, visibility.Options{IncludeDrafts: opts.IncludeDrafts}), nil
}

// Get fetches one entity regardless of site or publication state. A missing
// entity yields an error matching models.ErrNotFound.
func (f *Facade[T, D]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	row, err := f.transport.Get(ctx, f.collection, id)
	if err != nil {
		return zero, f.wrap("get", id, err)
	}
	return normalize.Decode[T](f.schema, row)
}

// GetVisible is Get restricted to what site may show; anything else is
// reported as not found.
func (f *Facade[T, D]) GetVisible(ctx context.Context, id string, site models.SiteID, opts visibility.Options) (T, error) {
	item, err := f.Get(ctx, id)
	if err != nil {
		return item, err
	}
	if !visibility.IsVisibleOn(item, site, opts) {
		var zero T
		return zero, fmt.Errorf("get %s %s on %s: %w", f.name, id, site, models.ErrNotFound)
	}
	return item, nil
}

// Create normalizes a full draft, applying defaults.
func (f *Facade[T, D]) Create(ctx context.Context, draft D) (T, error) {
	return f.CreateFrom(ctx, draft)
}

// CreateFrom accepts a draft struct or a loose map, as posted by the admin
// console.
func (f *Facade[T, D]) CreateFrom(ctx context.Context, input any) (T, error) {
	var zero T
	payload, err := normalize.Encode(f.schema, input, normalize.Create)
	if err != nil {
		return zero, err
	}

	row, err := f.transport.Create(ctx, f.collection, payload)
	if err != nil {
		return zero, fmt.Errorf("create %s: %w", f.name, err)
	}
	item, err := normalize.Decode[T](f.schema, row)
	if err != nil {
		return zero, err
	}

	f.notify(ctx, infraevents.ContentCreated, item.Identity(), item.SourceTags())
	return item, nil
}

// Update normalizes only the fields set on patch.
func (f *Facade[T, D]) Update(ctx context.Context, id string, patch D) (T, error) {
	return f.UpdateFrom(ctx, id, patch)
}

func (f *Facade[T, D]) UpdateFrom(ctx context.Context, id string, input any) (T, error) {
	var zero T
	payload, err := normalize.Encode(f.schema, input, normalize.Update)
	if err != nil {
		return zero, err
	}
	if len(payload) == 0 {
		return zero, models.ErrNoFieldsToUpdate
	}

	row, err := f.transport.Update(ctx, f.collection, id, payload)
	if err != nil {
		return zero, f.wrap("update", id, err)
	}
	item, err := normalize.Decode[T](f.schema, row)
	if err != nil {
		return zero, err
	}

	f.notify(ctx, infraevents.ContentUpdated, id, item.SourceTags())
	return item, nil
}

func (f *Facade[T, D]) Delete(ctx context.Context, id string) error {
	if err := f.transport.Delete(ctx, f.collection, id); err != nil {
		return f.wrap("delete", id, err)
	}
	f.notify(ctx, infraevents.ContentDeleted, id, nil)
	return nil
}

// wrap maps a backend 404 onto models.ErrNotFound while keeping the
// RequestError reachable.
func (f *Facade[T, D]) wrap(op, id string, err error) error {
	if infraerrors.StatusCode(err) == http.StatusNotFound && !errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%s %s %s: %w: %w", op, f.name, id, models.ErrNotFound, err)
	}
	return fmt.Errorf("%s %s %s: %w", op, f.name, id, err)
}

func (f *Facade[T, D]) notify(ctx context.Context, kind infraevents.EventType, id string, sources []models.SiteID) {
	if f.notifier == nil {
		return
	}
	tags := make([]string, 0, len(sources))
	for _, s := range sources {
		tags = append(tags, string(s))
	}
	f.notifier.Notify(ctx, infraevents.New(kind, f.name, id, tags))
}
