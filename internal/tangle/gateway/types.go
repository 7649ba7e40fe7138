package gateway

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/iri"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/trinary"
	"github.com/moznion/go-optional"
)

type (
	// Metrics records backend call outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveTooMany()
	}

	// NodeClient is the node API used by the primary adapter.
	NodeClient interface {
		FindTransactions(ctx context.Context, q iri.FindTransactionsQuery) ([]string, error)
		GetTrytes(ctx context.Context, hashes []string) ([]trinary.Trytes, error)
		GetNodeInfo(ctx context.Context) (iri.NodeInfo, error)
		GetInclusionStates(ctx context.Context, hashes, tips []string) ([]bool, error)
	}

	// ArchiveRepository is the archival store read by the archival adapter.
	ArchiveRepository interface {
		FindTransactionHashes(
			ctx context.Context,
			network model.Network,
			criteria model.Criteria,
			after optional.Option[model.Cursor],
			pageSize int,
		) (model.ArchivedPage, error)
		TransactionsByHashes(ctx context.Context, network model.Network, hashes []string) (map[string]model.BackendPayload, error)
	}

	// Adapter talks to one kind of backend and reports transport errors. A non-nil error may accompany
	// partial results.
	Adapter interface {
		Resolve(ctx context.Context, criteria model.Criteria, cursor string, limit int) (ResolveOutcome, error)
		FetchPayloads(ctx context.Context, hashes []string) (map[string]model.BackendPayload, error)
	}
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
