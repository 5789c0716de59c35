package election

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var errUnknownEvent = errors.New("unknown registry event")

// Event is a registry event before log encoding.
type Event interface {
	EventName() string
}

// CitizenRegistered is emitted when a wallet registers a citizen.
type CitizenRegistered struct {
	Wallet common.Address `json:"wallet"`
	DNI    string         `json:"dni"`
}

// CandidateAdded is emitted when a registered citizen becomes a candidate.
type CandidateAdded struct {
	DNI    string         `json:"dni"`
	Name   string         `json:"name"`
	Wallet common.Address `json:"wallet"`
}

// Voted is emitted for every accepted vote.
type Voted struct {
	Voter common.Address `json:"voter"`
	DNI   string         `json:"dni"`
}

func (CitizenRegistered) EventName() string { return EventCitizenRegistered }
func (CandidateAdded) EventName() string    { return EventCandidateAdded }
func (Voted) EventName() string             { return EventVoted }

// EventTopic returns topic0 of the named event, or the zero hash if the name is unknown.
func EventTopic(name string) common.Hash {
	ev, ok := registryABI.Events[name]
	if !ok {
		return common.Hash{}
	}
	return ev.ID
}

// EncodeLog encodes ev as an EVM log emitted by address.
func EncodeLog(address common.Address, ev Event) (*types.Log, error) {
	event, ok := registryABI.Events[ev.EventName()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUnknownEvent, ev.EventName())
	}

	var (
		indexed common.Address
		values  []any
	)
	switch e := ev.(type) {
	case CitizenRegistered:
		indexed, values = e.Wallet, []any{e.DNI}
	case CandidateAdded:
		indexed, values = e.Wallet, []any{e.DNI, e.Name}
	case Voted:
		indexed, values = e.Voter, []any{e.DNI}
	default:
		return nil, fmt.Errorf("%w: %T", errUnknownEvent, ev)
	}

	data, err := event.Inputs.NonIndexed().Pack(values...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", event.Name, err)
	}
	return &types.Log{
		Address: address,
		Topics:  []common.Hash{event.ID, common.BytesToHash(indexed.Bytes())},
		Data:    data,
	}, nil
}

// DecodeLog reverses EncodeLog.
func DecodeLog(l types.Log) (Event, error) {
	if len(l.Topics) != 2 {
		return nil, fmt.Errorf("%w: expected 2 topics, got %d", errUnknownEvent, len(l.Topics))
	}
	event, err := registryABI.EventByID(l.Topics[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUnknownEvent, err)
	}
	values, err := event.Inputs.NonIndexed().Unpack(l.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", event.Name, err)
	}
	indexed := common.BytesToAddress(l.Topics[1].Bytes())

	str := func(i int) (string, error) {
		if i >= len(values) {
			return "", fmt.Errorf("%s: missing field %d", event.Name, i)
		}
		s, ok := values[i].(string)
		if !ok {
			return "", fmt.Errorf("%s: field %d is %T, want string", event.Name, i, values[i])
		}
		return s, nil
	}

	switch event.Name {
	case EventCitizenRegistered:
		dni, err := str(0)
		if err != nil {
			return nil, err
		}
		return CitizenRegistered{Wallet: indexed, DNI: dni}, nil
	case EventCandidateAdded:
		dni, err := str(0)
		if err != nil {
			return nil, err
		}
		name, err := str(1)
		if err != nil {
			return nil, err
		}
		return CandidateAdded{DNI: dni, Name: name, Wallet: indexed}, nil
	case EventVoted:
		dni, err := str(0)
		if err != nil {
			return nil, err
		}
		return Voted{Voter: indexed, DNI: dni}, nil
	}
	return nil, fmt.Errorf("%w: %s", errUnknownEvent, event.Name)
}
