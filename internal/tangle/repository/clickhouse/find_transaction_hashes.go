package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/moznion/go-optional"
)

// FindTransactionHashes returns one keyset page of hashes matching criteria, newest first.
// Rows strictly after the after cursor are returned; pageSize+1 rows are read to detect a following page.
func (r *Repository) FindTransactionHashes(
	ctx context.Context,
	network model.Network,
	criteria model.Criteria,
	after optional.Option[model.Cursor],
	pageSize int,
) (page model.ArchivedPage, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("find_transaction_hashes", network, err, start)
	}()

	if pageSize <= 0 {
		return model.ArchivedPage{}, fmt.Errorf("page size must be positive, got %d", pageSize)
	}
	column, err := criteriaColumn(criteria.Type)
	if err != nil {
		return model.ArchivedPage{}, err
	}

	args := []any{string(network), criteria.Value}
	cursor, takeErr := after.Take()
	withCursor := takeErr == nil
	if withCursor {
		args = append(args, cursor.Timestamp, cursor.Hash)
	}
	args = append(args, pageSize+1)

	rows, err := r.conn.Query(ctx, findTransactionHashesQuery(column, withCursor), args...)
	if err != nil {
		return model.ArchivedPage{}, fmt.Errorf("query transaction hashes: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var positions []model.Cursor
	for rows.Next() {
		var pos model.Cursor
		if err = rows.Scan(&pos.Hash, &pos.Timestamp); err != nil {
			return model.ArchivedPage{}, fmt.Errorf("scan transaction hash: %w", err)
		}
		positions = append(positions, pos)
	}
	if err = rows.Err(); err != nil {
		return model.ArchivedPage{}, fmt.Errorf("iterate transaction hashes: %w", err)
	}

	page.Next = optional.None[model.Cursor]()
	if len(positions) > pageSize {
		positions = positions[:pageSize]
		page.Next = optional.Some(positions[pageSize-1])
	}
	page.Positions = positions
	page.Hashes = make([]string, 0, len(positions))
	for _, pos := range positions {
		page.Hashes = append(page.Hashes, pos.Hash)
	}
	return page, nil
}

func criteriaColumn(t model.CriteriaType) (string, error) {
	switch t {
	case model.CriteriaAddress:
		return "address", nil
	case model.CriteriaTag:
		return "tag", nil
	case model.CriteriaBundle:
		return "bundle", nil
	case model.CriteriaTransaction:
		return "hash", nil
	default:
		return "", fmt.Errorf("%w: unsupported criteria type %q", model.ErrMalformedCriteria, t)
	}
}

func findTransactionHashesQuery(column string, withCursor bool) string {
	keyset := ""
	if withCursor {
		keyset = "\n\tAND (timestamp, hash) < (?, ?)"
	}
	return fmt.Sprintf(`
SELECT
	hash,
	timestamp
FROM tangle_transactions FINAL
WHERE network = ?
	AND %s = ?%s
ORDER BY timestamp DESC, hash DESC
LIMIT ?`, column, keyset)
}
