// Package network loads and validates the list of tangle networks served by the process.
package network

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"sort"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/trinary"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWindow            = 5000
	DefaultArchivalPageSize  = 5000
	DefaultArchivalChunkSize = 100
)

var ErrInvalidConfig = errors.New("invalid network config")

type fileConfig struct {
	Networks []entry `yaml:"networks"`
}

type entry struct {
	ID                 string `yaml:"id"`
	NodeURL            string `yaml:"node_url"`
	Archive            bool   `yaml:"archive"`
	CoordinatorAddress string `yaml:"coordinator_address"`
	Window             int    `yaml:"window"`
	ArchivalPageSize   int    `yaml:"archival_page_size"`
	ArchivalChunkSize  int    `yaml:"archival_chunk_size"`
	ZMQAddr            string `yaml:"zmq_addr"`
}

// Load reads the YAML network list at path.
func Load(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read networks file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML network list and applies defaults.
func Parse(raw []byte) (*Registry, error) {
	var cfg fileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	configs := make([]model.NetworkConfig, 0, len(cfg.Networks))
	for _, e := range cfg.Networks {
		configs = append(configs, e.toModel())
	}
	return NewRegistry(configs)
}

func (e entry) toModel() model.NetworkConfig {
	c := model.NetworkConfig{
		ID:                 model.Network(e.ID),
		NodeURL:            e.NodeURL,
		ArchiveEnabled:     e.Archive,
		CoordinatorAddress: e.CoordinatorAddress,
		Window:             e.Window,
		ArchivalPageSize:   e.ArchivalPageSize,
		ArchivalChunkSize:  e.ArchivalChunkSize,
		ZMQAddr:            e.ZMQAddr,
	}
	if c.Window == 0 {
		c.Window = DefaultWindow
	}
	if c.ArchivalPageSize == 0 {
		c.ArchivalPageSize = DefaultArchivalPageSize
	}
	if c.ArchivalChunkSize == 0 {
		c.ArchivalChunkSize = DefaultArchivalChunkSize
	}
	return c
}

// Registry is the immutable set of configured networks.
type Registry struct {
	configs map[model.Network]model.NetworkConfig
	ids     []model.Network
}

// NewRegistry validates configs and indexes them by network.
func NewRegistry(configs []model.NetworkConfig) (*Registry, error) {
	if len(configs) == 0 {
		return nil, fmt.Errorf("%w: no networks configured", ErrInvalidConfig)
	}

	r := &Registry{configs: make(map[model.Network]model.NetworkConfig, len(configs))}
	for _, c := range configs {
		if err := validate(c); err != nil {
			return nil, err
		}
		if _, dup := r.configs[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate network %q", ErrInvalidConfig, c.ID)
		}
		r.configs[c.ID] = c
		r.ids = append(r.ids, c.ID)
	}
	sort.Slice(r.ids, func(i, j int) bool { return r.ids[i] < r.ids[j] })
	return r, nil
}

func validate(c model.NetworkConfig) error {
	if c.ID == "" {
		return fmt.Errorf("%w: network id is required", ErrInvalidConfig)
	}
	u, err := url.Parse(c.NodeURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %s: node_url %q is not an absolute URL", ErrInvalidConfig, c.ID, c.NodeURL)
	}
	if !trinary.ValidHash(c.CoordinatorAddress) {
		return fmt.Errorf("%w: %s: coordinator_address must be %d trytes", ErrInvalidConfig, c.ID, trinary.HashTrytes)
	}
	if c.Window <= 0 || c.ArchivalPageSize <= 0 || c.ArchivalChunkSize <= 0 {
		return fmt.Errorf("%w: %s: window and page sizes must be positive", ErrInvalidConfig, c.ID)
	}
	return nil
}

// List returns the configured network identifiers in sorted order.
func (r *Registry) List() []model.Network {
	return append([]model.Network(nil), r.ids...)
}

// Configs returns every network configuration in List order.
func (r *Registry) Configs() []model.NetworkConfig {
	out := make([]model.NetworkConfig, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.configs[id])
	}
	return out
}

// Get returns the configuration of network or model.ErrUnknownNetwork.
func (r *Registry) Get(network model.Network) (model.NetworkConfig, error) {
	c, ok := r.configs[network]
	if !ok {
		return model.NetworkConfig{}, fmt.Errorf("%w: %q", model.ErrUnknownNetwork, network)
	}
	return c, nil
}
