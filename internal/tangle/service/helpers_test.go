package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/cache"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/gateway"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/network"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/trinary"
	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testNet model.Network = "testnet"

var coordinator = hashOf("COORDINATOR")

func hashOf(seed string) string {
	return string(trinary.Pad(trinary.Trytes(seed), trinary.HashTrytes))
}

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFixedClock() *fixedClock {
	return &fixedClock{now: time.Unix(1_700_000_000, 0)}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type nopMetrics struct{}

func (nopMetrics) Observe(string, model.Network, error, int, time.Time) {}

type harnessOptions struct {
	archival bool
	archive  bool
	window   int
}

type harness struct {
	ctrl     *gomock.Controller
	primary  *MockBackend
	archival *MockBackend
	archive  *MockArchive
	caches   *cache.Registry
	clock    *fixedClock
	explorer *Explorer
}

func newHarness(t *testing.T, opts harnessOptions) *harness {
	t.Helper()
	if opts.window == 0 {
		opts.window = network.DefaultWindow
	}

	ctrl := gomock.NewController(t)
	networks, err := network.NewRegistry([]model.NetworkConfig{{
		ID:                 testNet,
		NodeURL:            "http://node.local:14265",
		ArchiveEnabled:     opts.archival,
		CoordinatorAddress: coordinator,
		Window:             opts.window,
		ArchivalPageSize:   network.DefaultArchivalPageSize,
		ArchivalChunkSize:  network.DefaultArchivalChunkSize,
	}})
	require.NoError(t, err)

	h := &harness{
		ctrl:    ctrl,
		primary: NewMockBackend(ctrl),
		caches:  cache.NewRegistry(networks.List(), nil),
		clock:   newFixedClock(),
	}

	set := gateway.Set{Primary: h.primary}
	if opts.archival {
		h.archival = NewMockBackend(ctrl)
		set.Archival = h.archival
	}
	backends := gateway.NewRegistry()
	require.NoError(t, backends.Register(testNet, set))

	var archive Archive
	if opts.archive {
		h.archive = NewMockArchive(ctrl)
		archive = h.archive
	}

	h.explorer = NewExplorer(networks, backends, h.caches, archive, h.clock, nopMetrics{}, zap.NewNop())
	return h
}

func (h *harness) resolver() *HashResolver {
	return h.explorer.resolver
}

func (h *harness) fetcher() *PayloadFetcher {
	return h.explorer.fetcher
}

func (h *harness) reconstructor() *BundleReconstructor {
	return h.explorer.reconstructor
}

func encode(t *testing.T, tx model.Transaction) trinary.Trytes {
	t.Helper()
	raw, err := tx.Trytes()
	require.NoError(t, err)
	return raw
}

// attachment builds one attachment of bundle whose elements are chained by trunk pointers.
// Hashes are derived from prefix so sibling attachments never collide.
func attachment(prefix, bundle string, attachedAt int64, values ...int64) []model.Transaction {
	txs := make([]model.Transaction, len(values))
	last := uint64(len(values) - 1)
	for i, v := range values {
		letter := string(rune('A' + i))
		txs[i] = model.Transaction{
			Hash:                hashOf(prefix + letter),
			Address:             hashOf("ADDRESS" + letter),
			Value:               v,
			Timestamp:           1_700_000_000,
			CurrentIndex:        uint64(i),
			LastIndex:           last,
			Bundle:              bundle,
			BranchTransaction:   hashOf("BRANCH"),
			Tag:                 "TANGLEINSIGHT",
			AttachmentTimestamp: attachedAt,
		}
	}
	for i := 0; i < len(txs)-1; i++ {
		txs[i].TrunkTransaction = txs[i+1].Hash
	}
	txs[len(txs)-1].TrunkTransaction = hashOf("TIP")
	return txs
}

// ledger serves transactions through a mocked backend.
type ledger struct {
	t        *testing.T
	payloads map[string]model.BackendPayload
	bundles  map[string][]string
}

func newLedger(t *testing.T) *ledger {
	return &ledger{
		t:        t,
		payloads: map[string]model.BackendPayload{},
		bundles:  map[string][]string{},
	}
}

// add stores txs; a non-zero milestone marks them confirmed at that index.
func (l *ledger) add(milestone uint64, txs ...model.Transaction) {
	for _, tx := range txs {
		p := model.BackendPayload{Payload: encode(l.t, tx), ConfirmationIndex: optional.None[uint64]()}
		if milestone > 0 {
			p.ConfirmationIndex = optional.Some(milestone)
		}
		l.payloads[tx.Hash] = p
		l.bundles[tx.Bundle] = append(l.bundles[tx.Bundle], tx.Hash)
	}
}

// hide keeps the transaction fetchable by hash but out of bundle search results.
func (l *ledger) hide(hash string) {
	for bundle, hashes := range l.bundles {
		kept := hashes[:0]
		for _, h := range hashes {
			if h != hash {
				kept = append(kept, h)
			}
		}
		l.bundles[bundle] = kept
	}
}

func (l *ledger) drop(hash string) {
	delete(l.payloads, hash)
	l.hide(hash)
}

func (l *ledger) serve(b *MockBackend) {
	b.EXPECT().Resolve(gomock.Any(), gomock.Any(), "", 0).DoAndReturn(
		func(_ context.Context, c model.Criteria, _ string, _ int) gateway.ResolveOutcome {
			return gateway.ResolveOutcome{Hashes: append([]string(nil), l.bundles[c.Value]...), Available: true}
		}).AnyTimes()
	b.EXPECT().FetchPayloads(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, hashes []string) map[string]model.BackendPayload {
			out := map[string]model.BackendPayload{}
			for _, h := range hashes {
				if p, ok := l.payloads[h]; ok {
					out[h] = p
				}
			}
			return out
		}).AnyTimes()
}

func (l *ledger) seed(hash string, now time.Time) model.CachedPayload {
	p, ok := l.payloads[hash]
	require.True(l.t, ok, "unknown seed %s", hash)
	return model.NewCachedPayload(hash, p, now)
}
