package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/gateway"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Backend is one guarded backend of a network.
	Backend interface {
		Kind() gateway.Kind
		Resolve(ctx context.Context, criteria model.Criteria, cursor string, limit int) gateway.ResolveOutcome
		FetchPayloads(ctx context.Context, hashes []string) map[string]model.BackendPayload
	}

	Metrics interface {
		Observe(operation string, network model.Network, err error, items int, started time.Time)
	}

	ArchiveRepository interface {
		InsertTransactions(ctx context.Context, network model.Network, txs []model.ArchivedTransaction) error
	}

	ArchiverMetrics interface {
		ObserveFlush(err error, size int, started time.Time)
		ObserveDropped(n int)
	}

	// Archive accepts payloads that only the primary node returned.
	Archive interface {
		Submit(network model.Network, payloads []model.CachedPayload)
	}
)
