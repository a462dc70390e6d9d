// Package gateway is the single path from content-hub to the content
// backend's REST API. Every call is one attempt: there are no retries and no
// caching, and callers bound it with their context.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	infraerrors "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/errors"
	infrahttp "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/http"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/logger"
)

const tracerName = "content-hub/gateway"

// ErrNoBaseURL is returned by calls on a client built without a base URL.
var ErrNoBaseURL = errors.New("gateway: no backend base URL configured")

// CallOptions describes one request. Method defaults to GET. Headers are
// applied after the defaults and may override them.
type CallOptions struct {
	Method  string
	Body    any
	Headers map[string]string
	Query   url.Values
}

// Client issues backend calls on behalf of a Session.
type Client struct {
	baseURL    string
	session    Session
	httpClient *http.Client
	log        logger.Logger
	metrics    *Metrics
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.httpClient = hc } }
func WithLogger(log logger.Logger) Option   { return func(c *Client) { c.log = log } }
func WithMetrics(m *Metrics) Option         { return func(c *Client) { c.metrics = m } }
func WithTracer(t trace.Tracer) Option      { return func(c *Client) { c.tracer = t } }

// WithPropagator overrides the global propagator used to stamp trace context
// on outbound requests.
func WithPropagator(p propagation.TextMapPropagator) Option {
	return func(c *Client) { c.propagator = p }
}

// New returns a client for baseURL (scheme and host, optionally a path
// prefix). The session is captured by value.
func New(baseURL string, session Session, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		session:    session,
		log:        logger.NewNop(),
		tracer:     otel.Tracer(tracerName),
		propagator: otel.GetTextMapPropagator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = infrahttp.NewClient(infrahttp.ClientConfig{})
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// Call sends one request and decodes the JSON response.
//
// A 204 yields (nil, nil) without reading the body. Any other 2xx yields the
// decoded JSON value, or an empty map when the body is not valid JSON. A
// non-2xx yields a *errors.RequestError. Transport failures, including
// context cancellation, are returned wrapped.
func (c *Client) Call(ctx context.Context, path string, opts CallOptions) (any, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	ctx, span := c.tracer.Start(ctx, "gateway.call", trace.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("content.resource", resourceLabel(path)),
	))
	defer span.End()

	req, err := c.newRequest(ctx, method, path, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.observe(method, path, 0, elapsed)
		c.log.Warn("Backend call failed",
			logger.String("method", method),
			logger.String("path", path),
			logger.Duration("duration", elapsed),
			logger.Error(err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.metrics.observe(method, path, resp.StatusCode, elapsed)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if reqErr := infraerrors.ParseRequestError(resp); reqErr != nil {
		c.log.Warn("Backend rejected call",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", resp.StatusCode),
			logger.Duration("duration", elapsed),
			logger.Error(reqErr),
		)
		span.SetStatus(codes.Error, reqErr.Error())
		return nil, reqErr
	}

	c.log.Debug("Backend call",
		logger.String("method", method),
		logger.String("path", path),
		logger.Int("status", resp.StatusCode),
		logger.Duration("duration", elapsed),
	)

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	return decodeBody(resp.Body), nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, opts CallOptions) (*http.Request, error) {
	target, err := c.resolve(path, opts.Query)
	if err != nil {
		return nil, err
	}

	var body io.Reader = http.NoBody
	if opts.Body != nil {
		data, marshalErr := json.Marshal(opts.Body)
		if marshalErr != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, marshalErr)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))
	c.authorize(req)
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.session.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+c.session.Token())
	}
}

func (c *Client) resolve(path string, query url.Values) (string, error) {
	if c.baseURL == "" {
		return "", ErrNoBaseURL
	}
	u, err := url.Parse(c.baseURL + "/" + strings.TrimLeft(path, "/"))
	if err != nil {
		return "", fmt.Errorf("parse url for %s: %w", path, err)
	}
	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// decodeBody parses JSON leniently: anything unreadable becomes {}.
func decodeBody(r io.Reader) any {
	data, err := io.ReadAll(r)
	if err != nil {
		return map[string]any{}
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil || v == nil {
		return map[string]any{}
	}
	return v
}

// Upload posts file to the upload collaborator as multipart/form-data and
// returns the stored file's URL.
func (c *Client) Upload(ctx context.Context, bucket, filename string, file io.Reader) (string, error) {
	path := "/api/upload/" + url.PathEscape(bucket)

	ctx, span := c.tracer.Start(ctx, "gateway.upload", trace.WithAttributes(
		attribute.String("upload.bucket", bucket),
	))
	defer span.End()

	target, err := c.resolve(path, nil)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("read upload %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, &buf)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))
	c.authorize(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(http.MethodPost, path, 0, time.Since(start))
		span.RecordError(err)
		return "", fmt.Errorf("upload %s to %s: %w", filename, bucket, err)
	}
	defer resp.Body.Close()
	c.metrics.observe(http.MethodPost, path, resp.StatusCode, time.Since(start))

	if reqErr := infraerrors.ParseRequestError(resp); reqErr != nil {
		span.SetStatus(codes.Error, reqErr.Error())
		return "", reqErr
	}

	body, _ := decodeBody(resp.Body).(map[string]any)
	link, _ := body["url"].(string)
	if link == "" {
		return "", fmt.Errorf("upload %s to %s: response has no url", filename, bucket)
	}
	c.log.Info("Uploaded file",
		logger.String("bucket", bucket),
		logger.String("filename", filename),
		logger.String("url", link),
	)
	return link, nil
}
