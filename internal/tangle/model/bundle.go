package model

import "github.com/moznion/go-optional"

// BundleElement is one member of a reconstructed bundle group.
type BundleElement struct {
	CachedPayload
	Transaction Transaction
	// EffectiveState is the confirmation state after group-level classification.
	EffectiveState ConfirmationState
}

// BundleGroup is one attachment of a bundle, ordered by current index.
type BundleGroup struct {
	Bundle    string
	Elements  []BundleElement
	LastIndex uint64
	// Complete is false when the trunk walk stopped before LastIndex+1 elements were collected.
	Complete   bool
	Consistent bool
	ValueSum   int64
	State      ConfirmationState
	// GroupIndex is the position of this group among the attachments sharing the bundle hash.
	GroupIndex   int
	SiblingCount int
	Milestone    optional.Option[uint64]
}

// Hashes returns the element identifiers in group order.
func (g BundleGroup) Hashes() []string {
	out := make([]string, 0, len(g.Elements))
	for _, e := range g.Elements {
		out = append(out, e.Hash)
	}
	return out
}

// Contains reports whether hash belongs to the group.
func (g BundleGroup) Contains(hash string) bool {
	for _, e := range g.Elements {
		if e.Hash == hash {
			return true
		}
	}
	return false
}

// IsMilestone reports whether the group was classified as a milestone record.
func (g BundleGroup) IsMilestone() bool {
	return g.Milestone.IsSome()
}
