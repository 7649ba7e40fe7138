package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/network"
	"go.uber.org/zap"
)

// BundleReconstructor reassembles the bundle group a transaction belongs to and classifies it
// against its sibling attachments.
type BundleReconstructor struct {
	networks *network.Registry
	resolver *HashResolver
	fetcher  *PayloadFetcher
	logger   *zap.Logger
}

// NewBundleReconstructor builds a BundleReconstructor.
func NewBundleReconstructor(
	networks *network.Registry,
	resolver *HashResolver,
	fetcher *PayloadFetcher,
	logger *zap.Logger,
) *BundleReconstructor {
	return &BundleReconstructor{
		networks: networks,
		resolver: resolver,
		fetcher:  fetcher,
		logger:   logger.Named("reconstructor"),
	}
}

// arena holds the decoded payloads of one reconstruction, keyed by hash.
type arena map[string]model.BundleElement

// Reconstruct returns the group containing seed. A group whose trunk walk could not be completed
// is returned with Complete set to false.
func (b *BundleReconstructor) Reconstruct(ctx context.Context, net model.Network, seed model.CachedPayload) (model.BundleGroup, error) {
	cfg, err := b.networks.Get(net)
	if err != nil {
		return model.BundleGroup{}, err
	}
	tx, err := model.ParseTransaction(seed.Hash, seed.Payload)
	if err != nil {
		return model.BundleGroup{}, fmt.Errorf("%w: seed: %w", model.ErrMalformedCriteria, err)
	}

	seedElement := model.BundleElement{CachedPayload: seed, Transaction: tx, EffectiveState: seed.State}
	if tx.LastIndex == 0 {
		return classify(cfg.CoordinatorAddress, buildGroups(tx.Bundle, [][]model.BundleElement{{seedElement}}))[0], nil
	}

	siblings, err := b.resolver.searchBundle(ctx, net, tx.Bundle)
	if err != nil {
		return model.BundleGroup{}, fmt.Errorf("resolve bundle %s: %w", tx.Bundle, err)
	}
	payloads, err := b.fetcher.FetchMany(ctx, net, siblings)
	if err != nil {
		return model.BundleGroup{}, fmt.Errorf("fetch bundle %s: %w", tx.Bundle, err)
	}

	elements := make(arena, len(payloads)+1)
	for _, p := range payloads {
		if el, ok := decode(p); ok && el.Transaction.Bundle == tx.Bundle {
			elements[el.Hash] = el
		}
	}
	if _, ok := elements[seed.Hash]; !ok {
		elements[seed.Hash] = seedElement
	}

	walks := b.partition(ctx, net, elements)
	target := -1
	for i, w := range walks {
		if containsHash(w, seed.Hash) {
			target = i
			break
		}
	}
	if target < 0 {
		b.logger.Debug("seed not reachable from any group head",
			zap.String("network", string(net)),
			zap.String("hash", seed.Hash),
			zap.Uint64("current_index", tx.CurrentIndex),
		)
		walks = append(walks, b.walk(ctx, net, elements, elements[seed.Hash], map[string]struct{}{}))
		target = len(walks) - 1
	}

	groups := classify(cfg.CoordinatorAddress, buildGroups(tx.Bundle, walks))
	return groups[target], nil
}

// partition walks the trunk chain of every group head in attachment order. Each element joins at most one group.
func (b *BundleReconstructor) partition(ctx context.Context, net model.Network, elements arena) [][]model.BundleElement {
	heads := make([]model.BundleElement, 0)
	for _, el := range elements {
		if el.Transaction.CurrentIndex == 0 {
			heads = append(heads, el)
		}
	}
	sort.Slice(heads, func(i, j int) bool {
		a, c := heads[i].Transaction, heads[j].Transaction
		if a.AttachmentTimestamp != c.AttachmentTimestamp {
			return a.AttachmentTimestamp < c.AttachmentTimestamp
		}
		if a.Timestamp != c.Timestamp {
			return a.Timestamp < c.Timestamp
		}
		return a.Hash < c.Hash
	})

	assigned := make(map[string]struct{}, len(elements))
	walks := make([][]model.BundleElement, 0, len(heads))
	for _, head := range heads {
		if _, ok := assigned[head.Hash]; ok {
			continue
		}
		walks = append(walks, b.walk(ctx, net, elements, head, assigned))
	}
	return walks
}

// walk follows trunk pointers from start for at most LastIndex+1 elements. It stops at the first pointer
// that cannot be loaded, leaves the bundle, skips an index or reaches an already assigned element.
func (b *BundleReconstructor) walk(
	ctx context.Context,
	net model.Network,
	elements arena,
	start model.BundleElement,
	assigned map[string]struct{},
) []model.BundleElement {
	out := []model.BundleElement{start}
	assigned[start.Hash] = struct{}{}

	current := start
	for i := uint64(0); i < start.Transaction.LastIndex && current.Transaction.CurrentIndex < start.Transaction.LastIndex; i++ {
		next, ok := b.lookup(ctx, net, elements, current.Transaction.TrunkTransaction)
		if !ok {
			break
		}
		if _, taken := assigned[next.Hash]; taken {
			break
		}
		if next.Transaction.Bundle != start.Transaction.Bundle ||
			next.Transaction.LastIndex != start.Transaction.LastIndex ||
			next.Transaction.CurrentIndex != current.Transaction.CurrentIndex+1 {
			break
		}
		out = append(out, next)
		assigned[next.Hash] = struct{}{}
		current = next
	}
	return out
}

// lookup returns the element for hash, fetching it when the bundle search did not return it.
func (b *BundleReconstructor) lookup(ctx context.Context, net model.Network, elements arena, hash string) (model.BundleElement, bool) {
	if el, ok := elements[hash]; ok {
		return el, true
	}
	payloads, err := b.fetcher.FetchMany(ctx, net, []string{hash})
	if err != nil || len(payloads) != 1 {
		return model.BundleElement{}, false
	}
	el, ok := decode(payloads[0])
	if !ok {
		return model.BundleElement{}, false
	}
	elements[hash] = el
	return el, true
}

func decode(p model.CachedPayload) (model.BundleElement, bool) {
	if p.IsEmpty() {
		return model.BundleElement{}, false
	}
	tx, err := model.ParseTransaction(p.Hash, p.Payload)
	if err != nil {
		return model.BundleElement{}, false
	}
	return model.BundleElement{CachedPayload: p, Transaction: tx, EffectiveState: p.State}, true
}

func containsHash(elements []model.BundleElement, hash string) bool {
	for _, el := range elements {
		if el.Hash == hash {
			return true
		}
	}
	return false
}
