package ethrpc

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/democracychain/democracy-chain/pkg/election"
)

// CallArgs represents the arguments to eth_call
type CallArgs struct {
	From  *common.Address `json:"from"`
	To    *common.Address `json:"to"`
	Gas   *hexutil.Uint64 `json:"gas"`
	Value *hexutil.Big    `json:"value"`
	Data  *hexutil.Bytes  `json:"data"`
	Input *hexutil.Bytes  `json:"input"`
}

// GetData returns the input data, preferring 'input' over 'data'
func (args *CallArgs) GetData() []byte {
	if args.Input != nil {
		return *args.Input
	}
	if args.Data != nil {
		return *args.Data
	}
	return nil
}

// FilterQuery represents the filter for eth_getLogs
type FilterQuery struct {
	BlockHash *common.Hash     `json:"blockHash,omitempty"`
	FromBlock *rpc.BlockNumber `json:"fromBlock,omitempty"`
	ToBlock   *rpc.BlockNumber `json:"toBlock,omitempty"`
	Address   interface{}      `json:"address,omitempty"` // single address or array
	Topics    []interface{}    `json:"topics,omitempty"`
}

// LogFilterArgs is the filter accepted by democracy_getLogs
type LogFilterArgs struct {
	FromSeq *hexutil.Uint64 `json:"fromSeq,omitempty"`
	ToSeq   *hexutil.Uint64 `json:"toSeq,omitempty"`
	Event   string          `json:"event,omitempty"`
	Wallet  *common.Address `json:"wallet,omitempty"`
	Limit   int             `json:"limit,omitempty"`
}

// ABI tuple mirrors of the registry structs. Field names follow the ABI
// component names so accounts/abi can pack them.
type abiPerson struct {
	Dni    string
	Name   string
	Wallet common.Address
}

type abiCitizen struct {
	Person     abiPerson
	Registered bool
	Voted      bool
}

type abiCandidate struct {
	Citizen   abiCitizen
	VoteCount *big.Int
}

func toABICitizen(c election.Citizen) abiCitizen {
	return abiCitizen{
		Person: abiPerson{
			Dni:    c.Person.DNI,
			Name:   c.Person.Name,
			Wallet: c.Person.Wallet,
		},
		Registered: c.Registered,
		Voted:      c.Voted,
	}
}

func toABICandidate(c election.Candidate) abiCandidate {
	return abiCandidate{
		Citizen:   toABICitizen(c.Citizen),
		VoteCount: new(big.Int).SetUint64(c.VoteCount),
	}
}
