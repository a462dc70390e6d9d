// Package repository exposes one facade per content entity over a swappable
// Transport: live (the backend REST API through the gateway) or offline (the
// synthesizer). The transport is chosen once at startup.
package repository

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/gateway"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/logger"
)

// Transport moves wire maps to and from a backend. Collection is a backend
// path such as "/api/properties".
type Transport interface {
	List(ctx context.Context, collection string, query url.Values) ([]map[string]any, error)
	Get(ctx context.Context, collection, id string) (map[string]any, error)
	Create(ctx context.Context, collection string, payload map[string]any) (map[string]any, error)
	Update(ctx context.Context, collection, id string, payload map[string]any) (map[string]any, error)
	Delete(ctx context.Context, collection, id string) error
	Fetch(ctx context.Context, endpoint string) (map[string]any, error)
	Submit(ctx context.Context, endpoint string, payload map[string]any) (map[string]any, error)
	Upload(ctx context.Context, bucket, filename string, file io.Reader) (string, error)
}

// Caller is the part of *gateway.Client LiveTransport uses.
type Caller interface {
	Call(ctx context.Context, path string, opts gateway.CallOptions) (any, error)
	Upload(ctx context.Context, bucket, filename string, file io.Reader) (string, error)
}

// LiveTransport talks to the backend through a gateway.
type LiveTransport struct {
	gw  Caller
	log logger.Logger
}

func NewLiveTransport(gw Caller, log logger.Logger) *LiveTransport {
	return &LiveTransport{gw: gw, log: log}
}

// List accepts either a bare array or {"data": [...]}. Rows that are not
// objects are skipped.
func (t *LiveTransport) List(ctx context.Context, collection string, query url.Values) ([]map[string]any, error) {
	res, err := t.gw.Call(ctx, collection, gateway.CallOptions{Query: query})
	if err != nil {
		return nil, err
	}

	var raw []any
	switch v := res.(type) {
	case []any:
		raw = v
	case map[string]any:
		raw, _ = v["data"].([]any)
	}

	rows := make([]map[string]any, 0, len(raw))
	for i, item := range raw {
		row, ok := item.(map[string]any)
		if !ok {
			t.log.Warn("Skipping malformed list row",
				logger.String("collection", collection),
				logger.Int("index", i),
			)
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (t *LiveTransport) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	res, err := t.gw.Call(ctx, itemPath(collection, id), gateway.CallOptions{})
	if err != nil {
		return nil, err
	}
	return asObject(res), nil
}

func (t *LiveTransport) Create(ctx context.Context, collection string, payload map[string]any) (map[string]any, error) {
	res, err := t.gw.Call(ctx, collection, gateway.CallOptions{Method: http.MethodPost, Body: payload})
	if err != nil {
		return nil, err
	}
	return asObject(res), nil
}

func (t *LiveTransport) Update(ctx context.Context, collection, id string, payload map[string]any) (map[string]any, error) {
	res, err := t.gw.Call(ctx, itemPath(collection, id), gateway.CallOptions{Method: http.MethodPut, Body: payload})
	if err != nil {
		return nil, err
	}
	return asObject(res), nil
}

func (t *LiveTransport) Delete(ctx context.Context, collection, id string) error {
	_, err := t.gw.Call(ctx, itemPath(collection, id), gateway.CallOptions{Method: http.MethodDelete})
	return err
}

func (t *LiveTransport) Fetch(ctx context.Context, endpoint string) (map[string]any, error) {
	res, err := t.gw.Call(ctx, endpoint, gateway.CallOptions{})
	if err != nil {
		return nil, err
	}
	return asObject(res), nil
}

func (t *LiveTransport) Submit(ctx context.Context, endpoint string, payload map[string]any) (map[string]any, error) {
	res, err := t.gw.Call(ctx, endpoint, gateway.CallOptions{Method: http.MethodPost, Body: payload})
	if err != nil {
		return nil, err
	}
	return asObject(res), nil
}

func (t *LiveTransport) Upload(ctx context.Context, bucket, filename string, file io.Reader) (string, error) {
	return t.gw.Upload(ctx, bucket, filename, file)
}

func itemPath(collection, id string) string {
	return collection + "/" + url.PathEscape(id)
}

// asObject unwraps {"data": {...}} envelopes and maps anything that is not
// an object (including a 204's nil) to an empty map.
func asObject(v any) map[string]any {
	m, ok := v.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	if inner, ok := m["data"].(map[string]any); ok && len(m) == 1 {
		return inner
	}
	return m
}
