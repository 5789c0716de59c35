package auth

import (
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	apperrors "github.com/democracychain/democracy-chain/pkg/app/errors"
	apphttp "github.com/democracychain/democracy-chain/pkg/app/http"
)

const bearerPrefix = "Bearer "

// RequireSession returns chi middleware that rejects requests without a valid
// bearer session and puts the session wallet into the request context.
func RequireSession(sessions *SessionManager, admin common.Address) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "missing bearer token"))
				return
			}

			claims, err := sessions.Validate(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
			if err != nil {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid session"))
				return
			}

			wallet := claims.Wallet()
			ctx := WithWallet(r.Context(), wallet)
			ctx = WithAdmin(ctx, wallet == admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects sessions that do not belong to the election admin.
// It must run after RequireSession.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdminFromContext(r.Context()) {
			apphttp.DefaultErrorHandler(w, apperrors.ForbiddenError(nil, "NotAdmin"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
