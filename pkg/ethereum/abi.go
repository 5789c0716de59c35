package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/democracychain/democracy-chain/pkg/election"
)

// Go shapes of the registry's ABI tuples, matched by field name.
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

func fromABICitizen(c abiCitizen) election.Citizen {
	return election.Citizen{
		Person: election.Person{
			DNI:    c.Person.Dni,
			Name:   c.Person.Name,
			Wallet: c.Person.Wallet,
		},
		Registered: c.Registered,
		Voted:      c.Voted,
	}
}

func fromABICandidate(c abiCandidate) *election.Candidate {
	var votes uint64
	if c.VoteCount != nil {
		votes = c.VoteCount.Uint64()
	}
	return &election.Candidate{
		Citizen:   fromABICitizen(c.Citizen),
		VoteCount: votes,
	}
}
