// Package gateway adapts the primary node and the archival store behind one backend contract
// that never reports transport errors to its callers.
package gateway

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultTimeout bounds every backend call.
const DefaultTimeout = 20 * time.Second

const tracerName = "github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/gateway"

// Kind tells the two backend variants apart.
type Kind string

const (
	KindPrimary  Kind = "primary"
	KindArchival Kind = "archival"
)

// ResolveOutcome is a backend's answer to a hash lookup.
type ResolveOutcome struct {
	Hashes []string
	// Cursor continues an archival page; empty when exhausted or for the primary node.
	Cursor string
	// Positions holds the archival keyset position of every hash, in page order.
	Positions []model.Cursor
	// TooMany is set when the backend truncated its answer.
	TooMany bool
	// Available is false when the backend could not be reached.
	Available bool
}

// Backend is the error-free contract used by the resolver and the fetcher.
type Backend interface {
	Kind() Kind
	Resolve(ctx context.Context, criteria model.Criteria, cursor string, limit int) ResolveOutcome
	FetchPayloads(ctx context.Context, hashes []string) map[string]model.BackendPayload
}

// Gateway guards an Adapter with a timeout and converts its failures into absent data.
type Gateway struct {
	kind    Kind
	network model.Network
	adapter Adapter
	timeout time.Duration
	metrics Metrics
	logger  *zap.Logger
	tracer  trace.Tracer
}

// New wraps adapter. A non-positive timeout selects DefaultTimeout.
func New(kind Kind, network model.Network, adapter Adapter, timeout time.Duration, metrics Metrics, logger *zap.Logger) *Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{
		kind:    kind,
		network: network,
		adapter: adapter,
		timeout: timeout,
		metrics: metrics,
		logger:  logger.Named(string(kind)).With(zap.String("network", string(network))),
		tracer:  otel.Tracer(tracerName),
	}
}

// Kind returns the backend variant.
func (g *Gateway) Kind() Kind {
	return g.kind
}

// Resolve looks criteria up. A positive limit caps the hashes a paging backend reads.
// Failures yield an unavailable, empty outcome.
func (g *Gateway) Resolve(ctx context.Context, criteria model.Criteria, cursor string, limit int) ResolveOutcome {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	ctx, span := g.startSpan(ctx, "resolve",
		attribute.String("criteria.type", string(criteria.Type)),
		attribute.Bool("cursor", cursor != ""),
		attribute.Int("limit", limit),
	)
	defer span.End()

	started := time.Now()
	out, err := g.adapter.Resolve(ctx, criteria, cursor, limit)
	g.metrics.Observe("resolve", err, started)
	if err != nil {
		g.fail(span, "backend resolve failed", err, zap.String("criteria", criteria.Key()))
		return ResolveOutcome{}
	}

	out.Available = true
	if out.TooMany {
		g.metrics.ObserveTooMany()
	}
	span.SetAttributes(attribute.Int("hashes", len(out.Hashes)), attribute.Bool("too_many", out.TooMany))
	return out
}

// FetchPayloads returns payloads for the hashes the backend knows. Hashes it does not know,
// or that failed to load, are absent from the map.
func (g *Gateway) FetchPayloads(ctx context.Context, hashes []string) map[string]model.BackendPayload {
	if len(hashes) == 0 {
		return map[string]model.BackendPayload{}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	ctx, span := g.startSpan(ctx, "fetch_payloads", attribute.Int("requested", len(hashes)))
	defer span.End()

	started := time.Now()
	payloads, err := g.adapter.FetchPayloads(ctx, hashes)
	g.metrics.Observe("fetch_payloads", err, started)
	if err != nil {
		g.fail(span, "backend fetch failed", err, zap.Int("requested", len(hashes)), zap.Int("recovered", len(payloads)))
	}
	if payloads == nil {
		payloads = map[string]model.BackendPayload{}
	}
	span.SetAttributes(attribute.Int("found", len(payloads)))
	return payloads
}

func (g *Gateway) startSpan(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs,
		attribute.String("backend", string(g.kind)),
		attribute.String("network", string(g.network)),
	)
	return g.tracer.Start(ctx, "gateway."+operation, trace.WithAttributes(attrs...))
}

func (g *Gateway) fail(span trace.Span, msg string, err error, fields ...zap.Field) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	g.logger.Warn(msg, append(fields, zap.Error(err))...)
}
