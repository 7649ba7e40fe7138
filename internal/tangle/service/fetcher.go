package service

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/clock"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/cache"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/gateway"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/trinary"
	"go.uber.org/zap"
)

// PayloadFetcher loads transaction payloads through the payload cache, the archive and the node, in that order.
type PayloadFetcher struct {
	backends *gateway.Registry
	payloads *cache.PayloadStore
	archive  Archive
	clock    clock.Clock
	logger   *zap.Logger
}

// NewPayloadFetcher builds a PayloadFetcher. archive may be nil to disable write-through archiving.
func NewPayloadFetcher(
	backends *gateway.Registry,
	payloads *cache.PayloadStore,
	archive Archive,
	clk clock.Clock,
	logger *zap.Logger,
) *PayloadFetcher {
	return &PayloadFetcher{
		backends: backends,
		payloads: payloads,
		archive:  archive,
		clock:    clk,
		logger:   logger.Named("fetcher"),
	}
}

// FetchMany returns one record per distinct hash, in request order. Hashes no backend knows come back
// as Unknown records carrying the empty payload.
func (f *PayloadFetcher) FetchMany(ctx context.Context, net model.Network, hashes []string) ([]model.CachedPayload, error) {
	set, err := f.backends.Backends(net)
	if err != nil {
		return nil, err
	}
	for _, h := range hashes {
		if !trinary.ValidHash(h) {
			return nil, fmt.Errorf("%w: transaction hash %q", model.ErrMalformedCriteria, h)
		}
	}

	unique := mergeHashes(hashes, nil)
	now := f.clock.Now()
	records := make(map[string]model.CachedPayload, len(unique))
	missing := make([]string, 0, len(unique))
	for _, h := range unique {
		if p, ok := f.payloads.Get(net, h); ok && servable(p, now) {
			p.CachedAt = now
			records[h] = p
			continue
		}
		missing = append(missing, h)
	}

	if len(missing) > 0 {
		f.load(ctx, net, set, missing, records)
	}

	out := make([]model.CachedPayload, 0, len(unique))
	for _, h := range unique {
		out = append(out, f.payloads.Merge(net, records[h]))
	}
	return out, nil
}

func (f *PayloadFetcher) load(
	ctx context.Context,
	net model.Network,
	set gateway.Set,
	missing []string,
	records map[string]model.CachedPayload,
) {
	found := make(map[string]model.BackendPayload, len(missing))
	if set.HasArchival() {
		for h, p := range set.Archival.FetchPayloads(ctx, missing) {
			found[h] = p
		}
	}

	unresolved := make([]string, 0, len(missing))
	for _, h := range missing {
		if _, ok := found[h]; !ok {
			unresolved = append(unresolved, h)
		}
	}
	fromPrimary := make(map[string]struct{}, len(unresolved))
	if len(unresolved) > 0 {
		for h, p := range set.Primary.FetchPayloads(ctx, unresolved) {
			found[h] = p
			fromPrimary[h] = struct{}{}
		}
	}

	now := f.clock.Now()
	var toArchive []model.CachedPayload
	for _, h := range missing {
		p, ok := found[h]
		if !ok {
			records[h] = model.UnknownPayload(h, now)
			continue
		}
		record := model.NewCachedPayload(h, p, now)
		records[h] = record
		if _, primaryOnly := fromPrimary[h]; primaryOnly && !record.IsEmpty() {
			toArchive = append(toArchive, record)
		}
	}

	if len(toArchive) > 0 && set.HasArchival() && f.archive != nil {
		f.archive.Submit(net, toArchive)
	}
	if unknown := len(missing) - len(found); unknown > 0 {
		f.logger.Debug("payloads not found on any backend",
			zap.String("network", string(net)),
			zap.Int("requested", len(missing)),
			zap.Int("unknown", unknown),
		)
	}
}

// servable reports whether a cached record may be returned without asking a backend.
func servable(p model.CachedPayload, now time.Time) bool {
	return cache.Fresh(p.CachedAt, now) && !p.IsEmpty() && p.State != model.StateUnknown
}
