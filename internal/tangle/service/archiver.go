package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/goodnatureofminers/tangleinsight-backend/pkg/batcher"
	"go.uber.org/zap"
)

// Archiver writes payloads served by the primary node into the archival store in the background.
type Archiver struct {
	repo   ArchiveRepository
	logger *zap.Logger
	cfg    batcher.Config
	queues map[model.Network]*archiveQueue
}

type archiveQueue struct {
	batcher *batcher.Batcher[model.ArchivedTransaction]
	metrics ArchiverMetrics
}

// NewArchiver builds an Archiver without networks. Register them with AddNetwork before Start.
func NewArchiver(repo ArchiveRepository, logger *zap.Logger) *Archiver {
	return &Archiver{
		repo:   repo,
		logger: logger.Named("archiver"),
		cfg: batcher.Config{
			FlushSize:     archiveFlushSize,
			FlushInterval: archiveFlushInterval,
			QueueSize:     archiveQueueSize,
			RPS:           archiveFlushRPS,
		},
		queues: make(map[model.Network]*archiveQueue),
	}
}

// AddNetwork enables archiving for net.
func (a *Archiver) AddNetwork(net model.Network, metrics ArchiverMetrics) {
	logger := a.logger.With(zap.String("network", string(net)))
	a.queues[net] = &archiveQueue{
		metrics: metrics,
		batcher: batcher.New[model.ArchivedTransaction](
			logger,
			func(ctx context.Context, txs []model.ArchivedTransaction) error {
				started := time.Now()
				err := a.repo.InsertTransactions(ctx, net, txs)
				metrics.ObserveFlush(err, len(txs), started)
				return err
			},
			a.cfg,
		),
	}
}

// Start begins flushing every network queue.
func (a *Archiver) Start(ctx context.Context) {
	for _, q := range a.queues {
		q.batcher.Start(ctx)
	}
}

// Stop flushes what is queued and stops the background writers.
func (a *Archiver) Stop() {
	for _, q := range a.queues {
		q.batcher.Stop()
	}
}

// Submit queues payloads for archiving without blocking. Payloads that do not decode are skipped,
// and payloads that do not fit into the queue are dropped.
func (a *Archiver) Submit(net model.Network, payloads []model.CachedPayload) {
	q, ok := a.queues[net]
	if !ok {
		return
	}

	dropped := 0
	for _, p := range payloads {
		tx, err := model.ParseTransaction(p.Hash, p.Payload)
		if err != nil {
			a.logger.Debug("skip undecodable payload", zap.String("hash", p.Hash), zap.Error(err))
			continue
		}
		if !q.batcher.TryAdd(model.ArchivedTransaction{
			Transaction:       tx,
			Trytes:            p.Payload,
			ConfirmationIndex: p.ConfirmationIndex,
		}) {
			dropped++
		}
	}
	if dropped > 0 {
		q.metrics.ObserveDropped(dropped)
		a.logger.Warn("archive queue full, dropped payloads",
			zap.String("network", string(net)),
			zap.Int("dropped", dropped),
		)
	}
}
