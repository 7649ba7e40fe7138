package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/clock"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/cache"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/trinary"
	"go.uber.org/zap"
)

// ConfirmedTopic is the node feed topic announcing a newly confirmed transaction.
const ConfirmedTopic = "sn"

// ErrMalformedMessage is returned for feed messages that cannot be parsed.
var ErrMalformedMessage = errors.New("malformed feed message")

// ConfirmationListener upgrades cached payloads when the node announces their confirmation.
type ConfirmationListener struct {
	payloads *cache.PayloadStore
	clock    clock.Clock
	logger   *zap.Logger
}

// NewConfirmationListener builds a ConfirmationListener.
func NewConfirmationListener(payloads *cache.PayloadStore, clk clock.Clock, logger *zap.Logger) *ConfirmationListener {
	return &ConfirmationListener{
		payloads: payloads,
		clock:    clk,
		logger:   logger.Named("confirmations"),
	}
}

// Handle applies one feed message of the form "sn <milestone index> <hash> ...". Other topics are ignored.
func (l *ConfirmationListener) Handle(net model.Network, msg string) error {
	fields := strings.Fields(msg)
	if len(fields) == 0 || fields[0] != ConfirmedTopic {
		return nil
	}
	if len(fields) < 3 {
		return fmt.Errorf("%w: %q", ErrMalformedMessage, msg)
	}
	index, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: milestone index %q: %v", ErrMalformedMessage, fields[1], err)
	}
	hash := fields[2]
	if !trinary.ValidHash(hash) {
		return fmt.Errorf("%w: hash %q", ErrMalformedMessage, hash)
	}

	if l.payloads.MarkConfirmed(net, hash, index, l.clock.Now()) {
		l.logger.Debug("payload confirmed",
			zap.String("network", string(net)),
			zap.String("hash", hash),
			zap.Uint64("milestone", index),
		)
	}
	return nil
}
