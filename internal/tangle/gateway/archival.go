package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/trinary"
	"github.com/goodnatureofminers/tangleinsight-backend/pkg/workerpool"
	"github.com/moznion/go-optional"
)

// DefaultArchivalWorkers bounds concurrent chunk requests of one FetchPayloads call.
const DefaultArchivalWorkers = 4

// Archival adapts the archival store, which pages by keyset cursor and caps lookups at chunkSize hashes.
type Archival struct {
	network   model.Network
	repo      ArchiveRepository
	pageSize  int
	chunkSize int
	workers   int
}

// NewArchival creates the archival adapter for network.
func NewArchival(network model.Network, repo ArchiveRepository, pageSize, chunkSize int) *Archival {
	return &Archival{
		network:   network,
		repo:      repo,
		pageSize:  pageSize,
		chunkSize: chunkSize,
		workers:   DefaultArchivalWorkers,
	}
}

// Resolve reads one page after cursor. A positive limit below the configured page size shrinks the page.
// A following page is reported through Cursor and TooMany.
func (a *Archival) Resolve(ctx context.Context, criteria model.Criteria, cursor string, limit int) (ResolveOutcome, error) {
	after := optional.None[model.Cursor]()
	if cursor != "" {
		c, err := model.ParseCursor(cursor)
		if err != nil {
			return ResolveOutcome{}, err
		}
		if !c.IsStart() {
			after = optional.Some(c)
		}
	}

	pageSize := a.pageSize
	if limit > 0 && limit < pageSize {
		pageSize = limit
	}
	page, err := a.repo.FindTransactionHashes(ctx, a.network, criteria, after, pageSize)
	if err != nil {
		return ResolveOutcome{}, fmt.Errorf("find archived hashes: %w", err)
	}

	out := ResolveOutcome{Hashes: page.Hashes, Positions: page.Positions}
	if next, err := page.Next.Take(); err == nil {
		out.Cursor = next.Encode()
		out.TooMany = true
	}
	return out, nil
}

// FetchPayloads loads hashes in chunks. A failing chunk leaves its hashes absent and does not affect the
// other chunks; the chunk errors are returned joined alongside the partial result.
func (a *Archival) FetchPayloads(ctx context.Context, hashes []string) (map[string]model.BackendPayload, error) {
	chunks := chunk(hashes, a.chunkSize)

	var mu sync.Mutex
	result := make(map[string]model.BackendPayload, len(hashes))
	errs := workerpool.Each(ctx, a.workers, chunks, func(ctx context.Context, c []string) error {
		payloads, err := a.repo.TransactionsByHashes(ctx, a.network, c)
		if err != nil {
			return fmt.Errorf("chunk of %d: %w", len(c), err)
		}
		mu.Lock()
		defer mu.Unlock()
		for hash, p := range payloads {
			if trinary.IsNull(p.Payload) {
				continue
			}
			result[hash] = p
		}
		return nil
	})

	return result, errors.Join(errs...)
}

func chunk(items []string, size int) [][]string {
	if len(items) == 0 {
		return nil
	}
	if size <= 0 {
		size = len(items)
	}
	chunks := make([][]string, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
