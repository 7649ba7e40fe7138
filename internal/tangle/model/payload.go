package model

import (
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/trinary"
	"github.com/moznion/go-optional"
)

// ConfirmationState classifies a transaction payload.
type ConfirmationState string

var (
	// StateUnknown means no backend returned a payload.
	StateUnknown ConfirmationState = "unknown"
	// StatePending means a payload exists without a confirmation index.
	StatePending ConfirmationState = "pending"
	// StateConfirmed means a backend reported the confirming milestone index.
	StateConfirmed ConfirmationState = "confirmed"
	// StateReattachment marks a pending attachment superseded by a confirmed sibling.
	StateReattachment ConfirmationState = "reattachment"
	// StateConsistency marks members of a group whose values do not sum to zero.
	StateConsistency ConfirmationState = "consistency"
)

// BackendPayload is what a backend reports for one identifier.
type BackendPayload struct {
	Payload           trinary.Trytes
	ConfirmationIndex optional.Option[uint64]
}

// CachedPayload is a resolved payload together with its confirmation metadata.
type CachedPayload struct {
	Hash              string
	Payload           trinary.Trytes
	ConfirmationIndex optional.Option[uint64]
	State             ConfirmationState
	CachedAt          time.Time
}

// IsEmpty reports whether the payload is the empty sentinel.
func (p CachedPayload) IsEmpty() bool {
	return trinary.IsNull(p.Payload)
}

// UnknownPayload returns the record reported when neither backend knows the hash.
func UnknownPayload(hash string, now time.Time) CachedPayload {
	return CachedPayload{
		Hash:              hash,
		Payload:           trinary.NullTransaction,
		ConfirmationIndex: optional.None[uint64](),
		State:             StateUnknown,
		CachedAt:          now,
	}
}

// NewCachedPayload derives the confirmation state of a payload returned by a backend.
func NewCachedPayload(hash string, p BackendPayload, now time.Time) CachedPayload {
	if trinary.IsNull(p.Payload) {
		return UnknownPayload(hash, now)
	}
	state := StatePending
	if p.ConfirmationIndex.IsSome() {
		state = StateConfirmed
	}
	return CachedPayload{
		Hash:              hash,
		Payload:           p.Payload,
		ConfirmationIndex: p.ConfirmationIndex,
		State:             state,
		CachedAt:          now,
	}
}
