package gateway

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/iri"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/trinary"
	"github.com/moznion/go-optional"
)

// PrimaryNode adapts a live node. Its findTransactions answer is capped at window hashes.
type PrimaryNode struct {
	client NodeClient
	window int
}

// NewPrimaryNode creates the primary adapter.
func NewPrimaryNode(client NodeClient, window int) *PrimaryNode {
	return &PrimaryNode{client: client, window: window}
}

// Resolve queries the node. The node cannot continue or cap a query, so cursor and limit are ignored.
// A result of exactly window hashes is reported as TooMany; a true result of that size is misreported.
func (p *PrimaryNode) Resolve(ctx context.Context, criteria model.Criteria, _ string, _ int) (ResolveOutcome, error) {
	if criteria.Type == model.CriteriaTransaction {
		return p.resolveTransaction(ctx, criteria.Value)
	}

	var q iri.FindTransactionsQuery
	switch criteria.Type {
	case model.CriteriaAddress:
		q.Addresses = []string{criteria.Value}
	case model.CriteriaTag:
		q.Tags = []string{criteria.Value}
	case model.CriteriaBundle:
		q.Bundles = []string{criteria.Value}
	default:
		return ResolveOutcome{}, fmt.Errorf("%w: unsupported criteria type %q", model.ErrMalformedCriteria, criteria.Type)
	}

	hashes, err := p.client.FindTransactions(ctx, q)
	if err != nil {
		return ResolveOutcome{}, fmt.Errorf("find transactions: %w", err)
	}
	return ResolveOutcome{
		Hashes:  hashes,
		TooMany: p.window > 0 && len(hashes) >= p.window,
	}, nil
}

func (p *PrimaryNode) resolveTransaction(ctx context.Context, hash string) (ResolveOutcome, error) {
	trytes, err := p.client.GetTrytes(ctx, []string{hash})
	if err != nil {
		return ResolveOutcome{}, fmt.Errorf("get trytes: %w", err)
	}
	if len(trytes) == 0 || trinary.IsNull(trytes[0]) {
		return ResolveOutcome{}, nil
	}
	return ResolveOutcome{Hashes: []string{hash}}, nil
}

// FetchPayloads loads trytes and marks the hashes referenced by the latest solid milestone as confirmed
// at that milestone's index. If the confirmation lookup fails the payloads are returned unconfirmed
// together with the error.
func (p *PrimaryNode) FetchPayloads(ctx context.Context, hashes []string) (map[string]model.BackendPayload, error) {
	trytes, err := p.client.GetTrytes(ctx, hashes)
	if err != nil {
		return nil, fmt.Errorf("get trytes: %w", err)
	}

	result := make(map[string]model.BackendPayload, len(hashes))
	found := make([]string, 0, len(hashes))
	for i, raw := range trytes {
		if trinary.IsNull(raw) {
			continue
		}
		result[hashes[i]] = model.BackendPayload{Payload: raw, ConfirmationIndex: optional.None[uint64]()}
		found = append(found, hashes[i])
	}
	if len(found) == 0 {
		return result, nil
	}

	info, err := p.client.GetNodeInfo(ctx)
	if err != nil {
		return result, fmt.Errorf("get node info: %w", err)
	}
	states, err := p.client.GetInclusionStates(ctx, found, []string{info.LatestSolidSubtangleMilestone})
	if err != nil {
		return result, fmt.Errorf("get inclusion states: %w", err)
	}
	for i, included := range states {
		if !included {
			continue
		}
		payload := result[found[i]]
		payload.ConfirmationIndex = optional.Some(info.LatestSolidSubtangleMilestoneIndex)
		result[found[i]] = payload
	}
	return result, nil
}
