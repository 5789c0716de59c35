package ethereum

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Config holds the connection settings of a registry client
type Config struct {
	// RPCURL is the registry's JSON-RPC endpoint, e.g. http://localhost:8080/rpc
	RPCURL          string
	Registry        common.Address
	PollingInterval time.Duration
	// MaxBlockRange bounds the blocks covered by one eth_getLogs call made by
	// WatchVoteEvents. A block holds at most two registry logs.
	MaxBlockRange uint64
}

// VoteEvent represents a Voted log read from the registry
type VoteEvent struct {
	Voter       common.Address
	DNI         string
	BlockNumber uint64
	TxHash      common.Hash
	LogIndex    uint
}

// Deadlines holds the registry's immutable deadlines in unix seconds
type Deadlines struct {
	Registration uint64
	Voting       uint64
}
