// Package service implements hash resolution, payload fetching and bundle reconstruction over the
// cached tangle backends.
package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/clock"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/cache"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/gateway"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/network"
	"go.uber.org/zap"
)

// Explorer is the entry point used by the route handlers.
type Explorer struct {
	resolver      *HashResolver
	fetcher       *PayloadFetcher
	reconstructor *BundleReconstructor
	metrics       Metrics
}

// NewExplorer wires the resolver, fetcher and reconstructor around one cache registry.
// archive may be nil.
func NewExplorer(
	networks *network.Registry,
	backends *gateway.Registry,
	caches *cache.Registry,
	archive Archive,
	clk clock.Clock,
	metrics Metrics,
	logger *zap.Logger,
) *Explorer {
	logger = logger.Named("explorer")
	fetcher := NewPayloadFetcher(backends, caches.Payloads, archive, clk, logger)
	resolver := NewHashResolver(networks, backends, caches.Hashes, fetcher, clk, logger)
	return &Explorer{
		resolver:      resolver,
		fetcher:       fetcher,
		reconstructor: NewBundleReconstructor(networks, resolver, fetcher, logger),
		metrics:       metrics,
	}
}

// Resolve looks up the hashes matching value.
func (e *Explorer) Resolve(
	ctx context.Context,
	net model.Network,
	criteriaType model.CriteriaType,
	value string,
	limit int,
	cursor string,
) (model.ResolveResult, error) {
	started := time.Now()
	res, err := e.resolver.Resolve(ctx, net, criteriaType, value, limit, cursor)
	e.metrics.Observe("resolve", net, err, len(res.Hashes), started)
	return res, err
}

// FetchPayloads returns the payloads of hashes.
func (e *Explorer) FetchPayloads(ctx context.Context, net model.Network, hashes []string) ([]model.CachedPayload, error) {
	started := time.Now()
	payloads, err := e.fetcher.FetchMany(ctx, net, hashes)
	e.metrics.Observe("fetch_payloads", net, err, len(payloads), started)
	return payloads, err
}

// ReconstructBundle returns the classified group containing seed.
func (e *Explorer) ReconstructBundle(ctx context.Context, net model.Network, seed model.CachedPayload) (model.BundleGroup, error) {
	started := time.Now()
	group, err := e.reconstructor.Reconstruct(ctx, net, seed)
	e.metrics.Observe("reconstruct_bundle", net, err, len(group.Elements), started)
	return group, err
}
