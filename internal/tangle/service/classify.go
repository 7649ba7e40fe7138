package service

import (
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/trinary"
	"github.com/goodnatureofminers/tangleinsight-backend/pkg/safe"
	"github.com/moznion/go-optional"
)

// milestoneElements is the size of a milestone bundle: the signed coordinator entry and its empty tail.
const milestoneElements = 2

// buildGroups turns trunk walks into groups carrying their own value sum and confirmation state.
func buildGroups(bundle string, walks [][]model.BundleElement) []model.BundleGroup {
	groups := make([]model.BundleGroup, 0, len(walks))
	for i, elements := range walks {
		groups = append(groups, newGroup(bundle, elements, i, len(walks)))
	}
	return groups
}

func newGroup(bundle string, elements []model.BundleElement, index, siblings int) model.BundleGroup {
	g := model.BundleGroup{
		Bundle:       bundle,
		Elements:     append([]model.BundleElement(nil), elements...),
		GroupIndex:   index,
		SiblingCount: siblings,
		State:        model.StateConfirmed,
		Milestone:    optional.None[uint64](),
	}
	if len(elements) == 0 {
		g.State = model.StatePending
		return g
	}

	g.LastIndex = elements[0].Transaction.LastIndex
	g.Complete = elements[0].Transaction.CurrentIndex == 0 && uint64(len(elements)) == g.LastIndex+1
	for _, el := range elements {
		g.ValueSum += el.Transaction.Value
		if el.State != model.StateConfirmed {
			g.State = model.StatePending
		}
	}
	g.Consistent = g.Complete && g.ValueSum == 0
	return g
}

// classify applies the group-level states. A complete group whose values do not cancel out is
// Consistency; an unconfirmed group with a confirmed sibling is Reattachment.
func classify(coordinator string, groups []model.BundleGroup) []model.BundleGroup {
	confirmed := -1
	for i, g := range groups {
		if g.State == model.StateConfirmed {
			confirmed = i
			break
		}
	}

	for i := range groups {
		g := &groups[i]
		switch {
		case g.Complete && !g.Consistent:
			g.State = model.StateConsistency
			setEffectiveState(g, model.StateConsistency)
		case g.State != model.StateConfirmed && confirmed >= 0 && confirmed != i:
			g.State = model.StateReattachment
			setEffectiveState(g, model.StateReattachment)
		default:
			for j := range g.Elements {
				g.Elements[j].EffectiveState = g.Elements[j].State
			}
		}
		g.Milestone = milestoneIndex(coordinator, *g)
	}
	return groups
}

func setEffectiveState(g *model.BundleGroup, state model.ConfirmationState) {
	for j := range g.Elements {
		g.Elements[j].EffectiveState = state
	}
}

// milestoneIndex reports the index a coordinator milestone group carries in its first tag.
func milestoneIndex(coordinator string, g model.BundleGroup) optional.Option[uint64] {
	if coordinator == "" || len(g.Elements) != milestoneElements {
		return optional.None[uint64]()
	}
	head, tail := g.Elements[0].Transaction, g.Elements[1].Transaction
	if head.Address != coordinator || tail.Address != string(trinary.NullHash) {
		return optional.None[uint64]()
	}
	v, err := trinary.ToInt64(head.Tag)
	if err != nil {
		return optional.None[uint64]()
	}
	index, err := safe.Uint64(v)
	if err != nil {
		return optional.None[uint64]()
	}
	return optional.Some(index)
}
