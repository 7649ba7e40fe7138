package model

import "time"

// ResolvedSet is the merged outcome of a hash lookup across backends.
type ResolvedSet struct {
	// Hashes holds unique identifiers in discovery order, primary node results first.
	Hashes     []string
	TotalCount int
	Cursor     string
	// Positions lists the archival hashes of the set with their keyset positions, in archival order.
	Positions []Cursor
	TooMany   bool
	CachedAt  time.Time
}

// ResolveResult is returned to callers of the resolver.
type ResolveResult struct {
	Hashes        []string
	TotalCount    int
	HashType      CriteriaType
	LimitExceeded bool
	Cursor        string
}
