// Package offline answers content-hub's repository calls when no backend is
// configured. Reads come back empty and writes are echoed with a synthetic
// identity, so callers see the same shapes as in live mode.
package offline

import (
	"context"
	"fmt"
	"io"
	"maps"
	"net/url"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/models"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/logger"
)

// UploadPrefix is the path synthetic upload URLs are rooted at.
const UploadPrefix = "/uploads"

// Synthesizer is a stateless stand-in for the backend. Nothing written to it
// can be read back.
type Synthesizer struct {
	log   logger.Logger
	now   func() time.Time
	newID func() string
}

type Option func(*Synthesizer)

// WithClock fixes the time used for synthetic timestamps.
func WithClock(now func() time.Time) Option { return func(s *Synthesizer) { s.now = now } }

// WithIDs replaces uuid generation.
func WithIDs(newID func() string) Option { return func(s *Synthesizer) { s.newID = newID } }

func New(log logger.Logger, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Synthesizer) List(_ context.Context, collection string, _ url.Values) ([]map[string]any, error) {
	s.log.Debug("Offline list", logger.String("collection", collection))
	return []map[string]any{}, nil
}

func (s *Synthesizer) Get(_ context.Context, collection, id string) (map[string]any, error) {
	return nil, fmt.Errorf("%s/%s: %w", collection, id, models.ErrNotFound)
}

// Create echoes payload with a generated id and equal created/updated
// timestamps.
func (s *Synthesizer) Create(_ context.Context, collection string, payload map[string]any) (map[string]any, error) {
	out := maps.Clone(payload)
	if out == nil {
		out = map[string]any{}
	}
	stamp := s.now().UTC().Format(time.RFC3339)
	out["id"] = s.newID()
	out["created_at"] = stamp
	out["updated_at"] = stamp

	s.log.Info("Offline create synthesized",
		logger.String("collection", collection),
		logger.String("id", out["id"].(string)),
	)
	return out, nil
}

// Update accepts any patch and echoes it under id.
func (s *Synthesizer) Update(_ context.Context, collection, id string, payload map[string]any) (map[string]any, error) {
	out := maps.Clone(payload)
	if out == nil {
		out = map[string]any{}
	}
	out["id"] = id
	s.log.Debug("Offline update accepted", logger.String("collection", collection), logger.String("id", id))
	return out, nil
}

func (s *Synthesizer) Delete(_ context.Context, collection, id string) error {
	s.log.Debug("Offline delete accepted", logger.String("collection", collection), logger.String("id", id))
	return nil
}

// Fetch returns an empty document for aggregate endpoints such as the
// dashboard.
func (s *Synthesizer) Fetch(context.Context, string) (map[string]any, error) {
	return map[string]any{}, nil
}

// Submit acknowledges a form post as Create does.
func (s *Synthesizer) Submit(ctx context.Context, endpoint string, payload map[string]any) (map[string]any, error) {
	return s.Create(ctx, endpoint, payload)
}

// Upload drains file and returns a synthetic URL under UploadPrefix.
func (s *Synthesizer) Upload(_ context.Context, bucket, filename string, file io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, file); err != nil {
		return "", fmt.Errorf("read upload %s: %w", filename, err)
	}
	return path.Join(UploadPrefix, bucket, s.newID()+"-"+path.Base(filename)), nil
}
