package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/democracychain/democracy-chain/pkg/election"
)

// CitizenRequest is the body of registerCitizen and addCitizenCandidate.
type CitizenRequest struct {
	DNI  string `json:"dni" validate:"required,max=64"`
	Name string `json:"name" validate:"required,max=128"`
}

// VoteRequest is the body of vote.
type VoteRequest struct {
	DNI string `json:"dni" validate:"required,max=64"`
}

// TxResponse describes an accepted registry mutation.
type TxResponse struct {
	TxHash    common.Hash    `json:"tx_hash"`
	Seq       uint64         `json:"seq"`
	Method    string         `json:"method"`
	Caller    common.Address `json:"caller"`
	Timestamp time.Time      `json:"timestamp"`
	Events    []*LogEntry    `json:"events"`
}

// LogEntry is a decoded registry log.
type LogEntry struct {
	Seq       uint64         `json:"seq"`
	TxHash    common.Hash    `json:"tx_hash"`
	LogIndex  uint           `json:"log_index"`
	Address   common.Address `json:"address"`
	Event     string         `json:"event"`
	Method    string         `json:"method,omitempty"`
	Caller    common.Address `json:"caller"`
	Timestamp time.Time      `json:"timestamp"`
	Args      election.Event `json:"args"`
}

// UnmarshalJSON decodes Args into the concrete event type named by Event.
func (e *LogEntry) UnmarshalJSON(data []byte) error {
	type plain LogEntry
	var raw struct {
		plain
		Args json.RawMessage `json:"args"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = LogEntry(raw.plain)

	var err error
	switch e.Event {
	case election.EventCitizenRegistered:
		var ev election.CitizenRegistered
		err = json.Unmarshal(raw.Args, &ev)
		e.Args = ev
	case election.EventCandidateAdded:
		var ev election.CandidateAdded
		err = json.Unmarshal(raw.Args, &ev)
		e.Args = ev
	case election.EventVoted:
		var ev election.Voted
		err = json.Unmarshal(raw.Args, &ev)
		e.Args = ev
	default:
		return fmt.Errorf("unknown event %q", e.Event)
	}
	return err
}

// LogFilter selects logs for Logs. Zero fields do not filter.
type LogFilter struct {
	From   *uint64
	To     *uint64
	Event  string
	Wallet *common.Address
	Limit  int
}

// Info describes the deployed election.
type Info struct {
	Address    common.Address  `json:"address"`
	Network    string          `json:"network"`
	ChainID    uint64          `json:"chain_id"`
	Params     election.Params `json:"params"`
	Phase      string          `json:"phase"`
	Seq        uint64          `json:"seq"`
	Citizens   uint64          `json:"citizens"`
	Candidates uint64          `json:"candidates"`
	Votes      uint64          `json:"votes"`
}

// CandidateResult is one row of the tally.
type CandidateResult struct {
	Position uint64          `json:"position"`
	DNI      string          `json:"dni"`
	Name     string          `json:"name"`
	Wallet   common.Address  `json:"wallet"`
	Votes    uint64          `json:"votes"`
	Share    decimal.Decimal `json:"share"`
}

// Results is the tally in declaration order. Share is a percentage of TotalVotes
// rounded to two decimals.
type Results struct {
	Phase      string            `json:"phase"`
	TotalVotes uint64            `json:"total_votes"`
	Candidates []CandidateResult `json:"candidates"`
}

// Deployment holds the parameters used to create the election on first boot.
type Deployment struct {
	Admin                common.Address
	RegistrationDeadline uint64
	VotingDeadline       uint64
	// Address of the registry. The zero address selects the deployment address
	// derived from Admin.
	Address common.Address
	Network string
	ChainID uint64
}
