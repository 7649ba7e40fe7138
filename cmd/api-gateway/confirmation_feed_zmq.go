//go:build zmq

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/clock"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/service"
	"github.com/pebbe/zmq4"
	"go.uber.org/zap"
)

// startConfirmationFeed subscribes to the node's confirmation topic and feeds each message to listener.
func startConfirmationFeed(
	ctx context.Context,
	addr string,
	net model.Network,
	listener *service.ConfirmationListener,
	logger *zap.Logger,
) error {
	if addr == "" {
		return nil
	}

	sub, err := newSubscriber(addr, service.ConfirmedTopic)
	if err != nil {
		return fmt.Errorf("connect zmq: %w", err)
	}
	logger = logger.With(zap.String("network", string(net)), zap.String("zmq", addr))

	go func() {
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			msg, err := sub.Recv(0)
			if err != nil {
				logger.Warn("zmq recv failed", zap.Error(err))
				if err := clock.SleepWithContext(ctx, time.Second); err != nil {
					return
				}
				continue
			}
			if err := listener.Handle(net, msg); err != nil {
				logger.Warn("skip malformed zmq message", zap.Error(err))
			}
		}
	}()

	return nil
}

func newSubscriber(addr string, topics ...string) (*zmq4.Socket, error) {
	sub, err := zmq4.NewSocket(zmq4.SUB)
	if err != nil {
		return nil, err
	}

	for _, topic := range topics {
		if err := sub.SetSubscribe(topic); err != nil {
			sub.Close()
			return nil, err
		}
	}

	if err := sub.Connect(addr); err != nil {
		sub.Close()
		return nil, err
	}
	return sub, nil
}
