package transport

import (
	"context"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Explorer interface {
		Resolve(
			ctx context.Context,
			network model.Network,
			criteriaType model.CriteriaType,
			value string,
			limit int,
			cursor string,
		) (model.ResolveResult, error)
		FetchPayloads(ctx context.Context, network model.Network, hashes []string) ([]model.CachedPayload, error)
		ReconstructBundle(ctx context.Context, network model.Network, seed model.CachedPayload) (model.BundleGroup, error)
	}
)
