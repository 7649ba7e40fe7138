package model

// Network identifies one configured tangle network, e.g. "mainnet" or "devnet".
type Network string

var (
	Mainnet Network = "mainnet"
	Devnet  Network = "devnet"
)

// NetworkConfig describes the backends and constants of a network.
type NetworkConfig struct {
	ID                 Network
	NodeURL            string
	ArchiveEnabled     bool
	CoordinatorAddress string
	// Window is the primary node result cap; a result of exactly this size is treated as truncated.
	Window            int
	ArchivalPageSize  int
	ArchivalChunkSize int
	ZMQAddr           string
}

// HasArchival reports whether an archival backend serves this network.
func (c NetworkConfig) HasArchival() bool {
	return c.ArchiveEnabled
}
