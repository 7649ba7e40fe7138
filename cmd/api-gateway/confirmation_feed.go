//go:build !zmq

package main

import (
	"context"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/service"
	"go.uber.org/zap"
)

// startConfirmationFeed is a no-op without the zmq build tag; cached payloads then only
// learn about confirmations when they are refetched.
func startConfirmationFeed(
	_ context.Context,
	addr string,
	net model.Network,
	_ *service.ConfirmationListener,
	logger *zap.Logger,
) error {
	if addr != "" {
		logger.Warn("zmq_addr ignored, binary built without zmq support", zap.String("network", string(net)))
	}
	return nil
}
