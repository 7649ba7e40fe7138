package transport

import (
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/moznion/go-optional"
)

type searchResponse struct {
	Hashes        []string `json:"hashes"`
	TotalCount    int      `json:"total_count"`
	HashType      string   `json:"hash_type"`
	LimitExceeded bool     `json:"limit_exceeded"`
	Cursor        string   `json:"cursor,omitempty"`
}

type transactionsRequest struct {
	Hashes []string `json:"hashes"`
}

type transactionsResponse struct {
	Transactions []payloadResponse `json:"transactions"`
}

type payloadResponse struct {
	Hash              string    `json:"hash"`
	Trytes            string    `json:"trytes"`
	State             string    `json:"state"`
	ConfirmationIndex *uint64   `json:"confirmation_index,omitempty"`
	CachedAt          time.Time `json:"cached_at"`
}

type elementResponse struct {
	payloadResponse
	EffectiveState string `json:"effective_state"`
	Address        string `json:"address"`
	Value          int64  `json:"value"`
	CurrentIndex   uint64 `json:"current_index"`
	Trunk          string `json:"trunk"`
	Branch         string `json:"branch"`
	Tag            string `json:"tag"`
}

type bundleResponse struct {
	Bundle       string            `json:"bundle"`
	Elements     []elementResponse `json:"elements"`
	LastIndex    uint64            `json:"last_index"`
	Complete     bool              `json:"complete"`
	Consistent   bool              `json:"consistent"`
	ValueSum     int64             `json:"value_sum"`
	State        string            `json:"state"`
	GroupIndex   int               `json:"group_index"`
	SiblingCount int               `json:"sibling_count"`
	Milestone    *uint64           `json:"milestone,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toSearchResponse(res model.ResolveResult) searchResponse {
	hashes := res.Hashes
	if hashes == nil {
		hashes = []string{}
	}
	return searchResponse{
		Hashes:        hashes,
		TotalCount:    res.TotalCount,
		HashType:      string(res.HashType),
		LimitExceeded: res.LimitExceeded,
		Cursor:        res.Cursor,
	}
}

func toPayloadResponse(p model.CachedPayload) payloadResponse {
	return payloadResponse{
		Hash:              p.Hash,
		Trytes:            string(p.Payload),
		State:             string(p.State),
		ConfirmationIndex: pointerOf(p.ConfirmationIndex),
		CachedAt:          p.CachedAt,
	}
}

func toBundleResponse(g model.BundleGroup) bundleResponse {
	elements := make([]elementResponse, 0, len(g.Elements))
	for _, el := range g.Elements {
		elements = append(elements, elementResponse{
			payloadResponse: toPayloadResponse(el.CachedPayload),
			EffectiveState:  string(el.EffectiveState),
			Address:         el.Transaction.Address,
			Value:           el.Transaction.Value,
			CurrentIndex:    el.Transaction.CurrentIndex,
			Trunk:           el.Transaction.TrunkTransaction,
			Branch:          el.Transaction.BranchTransaction,
			Tag:             string(el.Transaction.Tag),
		})
	}
	return bundleResponse{
		Bundle:       g.Bundle,
		Elements:     elements,
		LastIndex:    g.LastIndex,
		Complete:     g.Complete,
		Consistent:   g.Consistent,
		ValueSum:     g.ValueSum,
		State:        string(g.State),
		GroupIndex:   g.GroupIndex,
		SiblingCount: g.SiblingCount,
		Milestone:    pointerOf(g.Milestone),
	}
}

func pointerOf(o optional.Option[uint64]) *uint64 {
	v, err := o.Take()
	if err != nil {
		return nil
	}
	return &v
}
