// Package election implements the DemocracyChain election registry: citizen
// registration, candidacy declaration and voting gated by two immutable deadlines.
package election

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// HashDNI returns the fixed-width storage key of a national identity string.
// It matches keccak256(bytes(dni)) as computed on-chain.
func HashDNI(dni string) common.Hash {
	return crypto.Keccak256Hash([]byte(dni))
}

// Person is the immutable identity a Citizen is created from.
type Person struct {
	DNI    string         `json:"dni"`
	Name   string         `json:"name"`
	Wallet common.Address `json:"wallet"`
}

// DNIHash returns the storage key of the person's DNI.
func (p Person) DNIHash() common.Hash {
	return HashDNI(p.DNI)
}

// Citizen is a registered person together with the registration and voting latches.
type Citizen struct {
	Person     Person `json:"person"`
	Registered bool   `json:"registered"`
	Voted      bool   `json:"voted"`
}

// Candidate is a citizen who declared candidacy, with the votes received so far.
type Candidate struct {
	Citizen   Citizen `json:"citizen"`
	VoteCount uint64  `json:"vote_count"`
}

// CandidateEntry is the persisted candidacy record: the citizen key, the declaration
// position in the candidate list and the vote counter.
type CandidateEntry struct {
	DNIHash   common.Hash
	Position  uint64
	VoteCount uint64
}

// Params are the election parameters fixed at construction.
type Params struct {
	Admin                common.Address `json:"admin"`
	RegistrationDeadline uint64         `json:"registration_deadline"`
	VotingDeadline       uint64         `json:"voting_deadline"`
}

// RegistrationOpen reports whether registration is still accepted at t.
func (p Params) RegistrationOpen(t time.Time) bool {
	return unixSeconds(t) < p.RegistrationDeadline
}

// VotingOpen reports whether votes are still accepted at t.
func (p Params) VotingOpen(t time.Time) bool {
	return unixSeconds(t) < p.VotingDeadline
}

// Phase names the election phase at t.
func (p Params) Phase(t time.Time) string {
	switch {
	case p.RegistrationOpen(t):
		return PhaseRegistration
	case p.VotingOpen(t):
		return PhaseVoting
	default:
		return PhaseClosed
	}
}

// Election phases as reported by Params.Phase.
const (
	PhaseRegistration = "registration"
	PhaseVoting       = "voting"
	PhaseClosed       = "closed"
)

func unixSeconds(t time.Time) uint64 {
	s := t.Unix()
	if s < 0 {
		return 0
	}
	return uint64(s)
}
