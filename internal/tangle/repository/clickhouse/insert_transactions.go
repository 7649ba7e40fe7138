package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
)

// InsertTransactions stores transactions in ClickHouse. Rows for an existing hash replace the older version.
func (r *Repository) InsertTransactions(ctx context.Context, network model.Network, txs []model.ArchivedTransaction) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_transactions", network, err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		var milestone *uint64
		if index, terr := tx.ConfirmationIndex.Take(); terr == nil {
			milestone = &index
		}
		if err = batch.Append(
			string(network),
			tx.Transaction.Hash,
			tx.Transaction.Address,
			tx.Transaction.Bundle,
			string(tx.Transaction.Tag),
			tx.Transaction.Timestamp,
			tx.Transaction.CurrentIndex,
			tx.Transaction.LastIndex,
			tx.Transaction.Value,
			string(tx.Trytes),
			milestone,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}

const insertTransactionsQuery = `
INSERT INTO tangle_transactions (
	network,
	hash,
	address,
	bundle,
	tag,
	timestamp,
	current_index,
	last_index,
	value,
	trytes,
	milestone_index
) VALUES`
