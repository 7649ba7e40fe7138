package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/trinary"
	"github.com/moznion/go-optional"
)

// TransactionsByHashes returns the archived payloads of the given hashes. Hashes without a row are absent.
func (r *Repository) TransactionsByHashes(ctx context.Context, network model.Network, hashes []string) (result map[string]model.BackendPayload, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transactions_by_hashes", network, err, start)
	}()

	result = make(map[string]model.BackendPayload, len(hashes))
	if len(hashes) == 0 {
		return result, nil
	}

	rows, err := r.conn.Query(ctx, transactionsByHashesQuery, string(network), hashes)
	if err != nil {
		return nil, fmt.Errorf("query transactions by hashes: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var (
			hash      string
			trytes    string
			milestone *uint64
		)
		if err = rows.Scan(&hash, &trytes, &milestone); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		result[hash] = model.BackendPayload{
			Payload:           trinary.Trytes(trytes),
			ConfirmationIndex: optional.FromNillable(milestone),
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return result, nil
}

const transactionsByHashesQuery = `
SELECT
	hash,
	trytes,
	milestone_index
FROM tangle_transactions FINAL
WHERE network = ? AND hash IN ?`
