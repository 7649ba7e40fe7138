package model

import "errors"

var (
	// ErrMalformedCriteria rejects a criteria value that fails type-specific normalization.
	ErrMalformedCriteria = errors.New("malformed criteria")
	// ErrMalformedCursor rejects a continuation token that cannot be decoded.
	ErrMalformedCursor = errors.New("malformed cursor")
	// ErrUnknownNetwork is returned for a network that was not configured at startup.
	ErrUnknownNetwork = errors.New("unknown network")
	// ErrMalformedTransaction is returned when trytes do not decode into a transaction.
	ErrMalformedTransaction = errors.New("malformed transaction")
)
