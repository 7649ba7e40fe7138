package service

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/clock"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/cache"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/gateway"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/network"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// HashResolver turns lookup criteria into the merged set of matching transaction hashes.
type HashResolver struct {
	networks *network.Registry
	backends *gateway.Registry
	hashes   *cache.HashIndex
	fetcher  *PayloadFetcher
	clock    clock.Clock
	logger   *zap.Logger
	inflight singleflight.Group
}

// NewHashResolver builds a HashResolver. Transaction lookups are answered through fetcher.
func NewHashResolver(
	networks *network.Registry,
	backends *gateway.Registry,
	hashes *cache.HashIndex,
	fetcher *PayloadFetcher,
	clk clock.Clock,
	logger *zap.Logger,
) *HashResolver {
	return &HashResolver{
		networks: networks,
		backends: backends,
		hashes:   hashes,
		fetcher:  fetcher,
		clock:    clk,
		logger:   logger.Named("resolver"),
	}
}

// Resolve returns the hashes matching value interpreted as criteriaType. A zero limit returns
// every hash; a non-empty cursor continues a previous archival page. When limit cuts the result,
// the returned cursor continues right after the last archival hash that was returned.
func (r *HashResolver) Resolve(
	ctx context.Context,
	net model.Network,
	criteriaType model.CriteriaType,
	value string,
	limit int,
	cursor string,
) (model.ResolveResult, error) {
	cfg, err := r.networks.Get(net)
	if err != nil {
		return model.ResolveResult{}, err
	}
	set, err := r.backends.Backends(net)
	if err != nil {
		return model.ResolveResult{}, err
	}
	if limit < 0 {
		return model.ResolveResult{}, fmt.Errorf("%w: negative limit %d", model.ErrMalformedCriteria, limit)
	}
	criteria, err := model.NormalizeCriteria(criteriaType, value)
	if err != nil {
		return model.ResolveResult{}, err
	}

	if cursor != "" {
		return r.continuePage(ctx, net, set, criteria, limit, cursor)
	}
	if criteria.Type == model.CriteriaTransaction {
		return r.resolveTransaction(ctx, net, criteria.Value)
	}

	resolved := r.resolveSet(ctx, net, cfg, set, criteria)
	if len(resolved.Hashes) == 0 && criteria.LooksLikeTransactionHash() {
		res, err := r.resolveTransaction(ctx, net, criteria.Value)
		if err != nil {
			return model.ResolveResult{}, err
		}
		if len(res.Hashes) > 0 {
			return res, nil
		}
	}
	return present(resolved, criteria.Type, limit), nil
}

func (r *HashResolver) continuePage(
	ctx context.Context,
	net model.Network,
	set gateway.Set,
	criteria model.Criteria,
	limit int,
	cursor string,
) (model.ResolveResult, error) {
	if _, err := model.ParseCursor(cursor); err != nil {
		return model.ResolveResult{}, err
	}
	if criteria.Type == model.CriteriaTransaction {
		return model.ResolveResult{}, fmt.Errorf("%w: transaction lookups are not paged", model.ErrMalformedCursor)
	}
	if !set.HasArchival() {
		return model.ResolveResult{}, fmt.Errorf("%w: network %q has no archive", model.ErrMalformedCursor, net)
	}

	out := set.Archival.Resolve(ctx, criteria, cursor, limit)
	hashes := mergeHashes(out.Hashes, nil)
	return present(model.ResolvedSet{
		Hashes:     hashes,
		TotalCount: len(hashes),
		Cursor:     out.Cursor,
		Positions:  out.Positions,
		TooMany:    out.TooMany,
		CachedAt:   r.clock.Now(),
	}, criteria.Type, limit), nil
}

// searchBundle returns every hash filed under bundle. The value is never reinterpreted as a
// transaction hash.
func (r *HashResolver) searchBundle(ctx context.Context, net model.Network, bundle string) ([]string, error) {
	cfg, err := r.networks.Get(net)
	if err != nil {
		return nil, err
	}
	set, err := r.backends.Backends(net)
	if err != nil {
		return nil, err
	}
	criteria, err := model.NormalizeCriteria(model.CriteriaBundle, bundle)
	if err != nil {
		return nil, err
	}
	return r.resolveSet(ctx, net, cfg, set, criteria).Hashes, nil
}

func (r *HashResolver) resolveTransaction(ctx context.Context, net model.Network, hash string) (model.ResolveResult, error) {
	payloads, err := r.fetcher.FetchMany(ctx, net, []string{hash})
	if err != nil {
		return model.ResolveResult{}, err
	}
	res := model.ResolveResult{Hashes: []string{}, HashType: model.CriteriaTransaction}
	if len(payloads) == 1 && !payloads[0].IsEmpty() {
		res.Hashes = []string{hash}
		res.TotalCount = 1
	}
	return res, nil
}

func (r *HashResolver) resolveSet(
	ctx context.Context,
	net model.Network,
	cfg model.NetworkConfig,
	set gateway.Set,
	criteria model.Criteria,
) model.ResolvedSet {
	if cached, ok := r.hashes.Get(net, criteria); ok && cache.Fresh(cached.CachedAt, r.clock.Now()) {
		return cached
	}

	// Shared work must not be aborted by whichever caller started it; backend timeouts still apply.
	shared := context.WithoutCancel(ctx)
	v, _, _ := r.inflight.Do(string(net)+"/"+criteria.Key(), func() (any, error) {
		return r.query(shared, net, cfg, set, criteria), nil
	})
	return v.(model.ResolvedSet)
}

func (r *HashResolver) query(
	ctx context.Context,
	net model.Network,
	cfg model.NetworkConfig,
	set gateway.Set,
	criteria model.Criteria,
) model.ResolvedSet {
	var (
		primary  gateway.ResolveOutcome
		archival gateway.ResolveOutcome
		g        errgroup.Group
	)
	g.Go(func() error {
		primary = set.Primary.Resolve(ctx, criteria, "", 0)
		return nil
	})
	if set.HasArchival() {
		g.Go(func() error {
			archival = set.Archival.Resolve(ctx, criteria, "", 0)
			return nil
		})
	}
	_ = g.Wait()

	hashes := mergeHashes(primary.Hashes, archival.Hashes)
	resolved := model.ResolvedSet{
		Hashes:     hashes,
		TotalCount: len(hashes),
		Cursor:     archival.Cursor,
		Positions:  archival.Positions,
		TooMany:    primary.TooMany || archival.TooMany || len(hashes) >= cfg.Window,
		CachedAt:   r.clock.Now(),
	}

	if !primary.Available && !archival.Available {
		r.logger.Warn("no backend answered",
			zap.String("network", string(net)),
			zap.String("criteria", criteria.Key()),
		)
		return resolved
	}
	r.hashes.Put(net, criteria, resolved)
	return resolved
}

// mergeHashes appends the hashes of later that are not in first, keeping first-seen order.
func mergeHashes(first, later []string) []string {
	out := make([]string, 0, len(first)+len(later))
	seen := make(map[string]struct{}, len(first)+len(later))
	for _, list := range [][]string{first, later} {
		for _, h := range list {
			if _, ok := seen[h]; ok {
				continue
			}
			seen[h] = struct{}{}
			out = append(out, h)
		}
	}
	return out
}

func present(set model.ResolvedSet, hashType model.CriteriaType, limit int) model.ResolveResult {
	res := model.ResolveResult{
		Hashes:        append([]string{}, set.Hashes...),
		TotalCount:    set.TotalCount,
		HashType:      hashType,
		LimitExceeded: set.TooMany,
		Cursor:        set.Cursor,
	}
	if limit <= 0 || len(res.Hashes) <= limit {
		return res
	}
	res.Hashes = res.Hashes[:limit]
	res.LimitExceeded = true
	if len(set.Positions) > 0 {
		res.Cursor = resumeAfter(set.Positions, res.Hashes, set.Cursor)
	}
	return res
}

// resumeAfter returns the cursor continuing after the longest run of archival positions whose hashes
// were all returned. An archival page returned in full keeps its own cursor; one returned not at all
// restarts from the first archival page.
func resumeAfter(positions []model.Cursor, returned []string, pageCursor string) string {
	kept := make(map[string]struct{}, len(returned))
	for _, h := range returned {
		kept[h] = struct{}{}
	}
	last := -1
	for i, pos := range positions {
		if _, ok := kept[pos.Hash]; !ok {
			break
		}
		last = i
	}
	switch last {
	case len(positions) - 1:
		return pageCursor
	case -1:
		return model.Cursor{}.Encode()
	default:
		return positions[last].Encode()
	}
}
