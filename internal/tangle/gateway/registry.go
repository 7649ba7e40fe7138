package gateway

import (
	"fmt"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
)

// Set holds the backends of one network. Archival is nil when the network has no archive.
type Set struct {
	Primary  Backend
	Archival Backend
}

// HasArchival reports whether the network has an archival backend.
func (s Set) HasArchival() bool {
	return s.Archival != nil
}

// Registry maps networks to their backends. It is populated at startup and read-only afterwards.
type Registry struct {
	sets map[model.Network]Set
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sets: make(map[model.Network]Set)}
}

// Register adds the backends of network.
func (r *Registry) Register(network model.Network, set Set) error {
	if set.Primary == nil {
		return fmt.Errorf("network %q: primary backend is required", network)
	}
	if _, ok := r.sets[network]; ok {
		return fmt.Errorf("network %q already registered", network)
	}
	r.sets[network] = set
	return nil
}

// Backends returns the backends of network or model.ErrUnknownNetwork.
func (r *Registry) Backends(network model.Network) (Set, error) {
	set, ok := r.sets[network]
	if !ok {
		return Set{}, fmt.Errorf("%w: %q", model.ErrUnknownNetwork, network)
	}
	return set, nil
}
