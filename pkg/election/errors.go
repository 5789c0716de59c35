package election

import "errors"

// Error is a registry failure. Name is the ABI error name the on-chain contract
// reverts with, surfaced verbatim to callers.
type Error struct {
	name string
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Name returns the ABI error name.
func (e *Error) Name() string { return e.name }

// Configuration errors, raised at construction.
var (
	ErrInvalidDateRange          = &Error{name: "InvalidDateRange", msg: "registration deadline must be before voting deadline"}
	ErrRegistrationAlreadyClosed = &Error{name: "RegistrationAlreadyClosed", msg: "registration deadline already passed"}
)

// Temporal guard errors.
var (
	ErrRegistrationClosed = &Error{name: "RegistrationClosed", msg: "registration is closed"}
	ErrVotingClosed       = &Error{name: "VotingClosed", msg: "voting is closed"}
)

// Identity and state conflict errors.
var (
	ErrCitizenAlreadyRegistered   = &Error{name: "CitizenAlreadyRegistered", msg: "citizen already registered"}
	ErrCandidateAlreadyRegistered = &Error{name: "CandidateAlreadyRegistered", msg: "candidate already registered"}
	ErrAlreadyVoted               = &Error{name: "AlreadyVoted", msg: "citizen already voted"}
	ErrNotRegistered              = &Error{name: "NotRegistered", msg: "caller is not a registered citizen"}
	ErrNotValidCandidate          = &Error{name: "NotValidCandidate", msg: "not a valid candidate"}
)

var (
	ErrIndexOutOfRange = &Error{name: "IndexOutOfRange", msg: "candidate index out of range"}
	ErrNotAdmin        = &Error{name: "NotAdmin", msg: "caller is not the election admin"}
)

// ErrorName returns the ABI error name carried by err, or "" if err is not a registry error.
func ErrorName(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.name
	}
	return ""
}
