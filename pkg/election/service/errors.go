package service

import (
	"errors"

	apperrors "github.com/democracychain/democracy-chain/pkg/app/errors"
	"github.com/democracychain/democracy-chain/pkg/election"
	"github.com/democracychain/democracy-chain/pkg/electionstore"
)

// mapError converts registry errors into service errors whose message is the
// registry error name, so clients see CitizenAlreadyRegistered and the like.
func mapError(err error) error {
	if errors.Is(err, electionstore.ErrSequenceConflict) {
		return apperrors.ConflictError(err, "registry state changed, retry the request")
	}
	var regErr *election.Error
	if !errors.As(err, &regErr) {
		return apperrors.GeneralError(err)
	}

	name := regErr.Name()
	switch {
	case errors.Is(err, election.ErrRegistrationClosed),
		errors.Is(err, election.ErrVotingClosed),
		errors.Is(err, election.ErrRegistrationAlreadyClosed):
		return apperrors.LockedError(err, name)
	case errors.Is(err, election.ErrCitizenAlreadyRegistered),
		errors.Is(err, election.ErrCandidateAlreadyRegistered),
		errors.Is(err, election.ErrAlreadyVoted):
		return apperrors.ConflictError(err, name)
	case errors.Is(err, election.ErrNotRegistered),
		errors.Is(err, election.ErrNotAdmin):
		return apperrors.ForbiddenError(err, name)
	case errors.Is(err, election.ErrNotValidCandidate),
		errors.Is(err, election.ErrIndexOutOfRange):
		return apperrors.ResourceNotFoundError(err, name)
	case errors.Is(err, election.ErrInvalidDateRange):
		return apperrors.BadRequestError(err, name)
	default:
		return apperrors.GeneralError(err)
	}
}
