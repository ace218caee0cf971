package domain

import "slices"

// Network names one blockchain whose balance endpoint is queried
// independently, e.g. "eth-mainnet". The set of networks is fixed
// configuration, never discovered at runtime.
type Network string

// defaultNetworks is unexported to prevent external mutation.
var defaultNetworks = []Network{
	"eth-mainnet",
	"matic-mainnet",
	"bsc-mainnet",
	"arbitrum-mainnet",
	"optimism-mainnet",
	"base-mainnet",
	"avalanche-mainnet",
}

// DefaultNetworks returns the networks queried when no override is configured.
func DefaultNetworks() []Network {
	return slices.Clone(defaultNetworks)
}
