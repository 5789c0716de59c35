package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestServiceError_StatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{BadRequestError(nil, "bad"), http.StatusBadRequest},
		{UnAuthorizedError(nil, "who"), http.StatusUnauthorized},
		{ForbiddenError(nil, "no"), http.StatusForbidden},
		{ResourceNotFoundError(nil, "gone"), http.StatusNotFound},
		{ConflictError(nil, "dup"), http.StatusConflict},
		{LockedError(nil, "closed"), http.StatusLocked},
		{DependencyFailureError(nil), http.StatusBadGateway},
		{GeneralError(nil), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		var svcErr *ServiceError
		if !errors.As(tt.err, &svcErr) {
			t.Fatalf("%v is not a ServiceError", tt.err)
		}
		if got := svcErr.StatusCode(); got != tt.want {
			t.Errorf("%s: got status %d, want %d", svcErr.Category, got, tt.want)
		}
	}
}

func TestIsAndCategoryOf(t *testing.T) {
	cause := errors.New("voting is closed")
	err := fmt.Errorf("vote: %w", LockedError(cause, "VotingClosed"))

	if !Is(err, CategoryLocked) {
		t.Error("expected wrapped error to be CategoryLocked")
	}
	if Is(err, CategoryDataConflict) {
		t.Error("did not expect CategoryDataConflict")
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable through Unwrap")
	}
	if got := CategoryOf(err); got != CategoryLocked {
		t.Errorf("CategoryOf() = %s", got)
	}
	if got := CategoryOf(nil); got != CategoryNoError {
		t.Errorf("CategoryOf(nil) = %s", got)
	}
	if got := CategoryOf(errors.New("boom")); got != CategoryGeneralError {
		t.Errorf("CategoryOf(plain) = %s", got)
	}
}

func TestIsInternalError(t *testing.T) {
	if IsInternalError(ConflictError(nil, "dup")) {
		t.Error("conflict is a client error")
	}
	if !IsInternalError(GeneralError(nil)) {
		t.Error("general error is internal")
	}
	if !IsInternalError(errors.New("plain")) {
		t.Error("plain errors are internal")
	}
}

func TestCategory_String(t *testing.T) {
	if got := CategoryLocked.String(); got != "locked" {
		t.Errorf("CategoryLocked.String() = %q", got)
	}
	if got := Category(99).String(); got != "general_error" {
		t.Errorf("unknown category label = %q", got)
	}
	if got := (ServiceError{Category: Category(99)}).StatusCode(); got != http.StatusInternalServerError {
		t.Errorf("unknown category status = %d", got)
	}
}
