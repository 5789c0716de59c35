package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/democracychain/democracy-chain/pkg/app/errors"
	apphttp "github.com/democracychain/democracy-chain/pkg/app/http"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
}

// LoginResponse carries the session token issued on login.
type LoginResponse struct {
	Token     string         `json:"token"`
	Address   common.Address `json:"address"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// HTTP serves the wallet login endpoints
type HTTP struct {
	challenges *ChallengeStore
	sessions   *SessionManager
	logger     *zap.Logger
}

// RegisterRoutes registers the login endpoints on the given chi router
func RegisterRoutes(r chi.Router, challenges *ChallengeStore, sessions *SessionManager, logger *zap.Logger) {
	h := &HTTP{
		challenges: challenges,
		sessions:   sessions,
		logger:     logger,
	}

	r.Get("/auth/nonce", apphttp.HandleError(h.nonce))
	r.Post("/auth/login", apphttp.HandleError(h.login))
}

func (h *HTTP) nonce(w http.ResponseWriter, r *http.Request) error {
	address, err := ParseAddress(r.URL.Query().Get("address"))
	if err != nil {
		return apperrors.BadRequestError(err, "invalid address")
	}
	apphttp.WriteJSON(w, http.StatusOK, h.challenges.Issue(address))
	return nil
}

func (h *HTTP) login(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req LoginRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	address, err := ParseAddress(req.Address)
	if err != nil {
		return apperrors.BadRequestError(err, "invalid address")
	}
	if req.Signature == "" {
		return apperrors.UnAuthorizedError(nil, "signature required")
	}

	if err := h.challenges.Verify(address, req.Signature); err != nil {
		h.logger.Info("Login rejected", zap.String("address", address.Hex()), zap.Error(err))
		return apperrors.UnAuthorizedError(err, "invalid login signature")
	}

	token, expiresAt, err := h.sessions.Issue(address)
	if err != nil {
		return apperrors.GeneralError(err)
	}

	h.logger.Info("Login succeeded", zap.String("address", address.Hex()))
	apphttp.WriteJSON(w, http.StatusOK, &LoginResponse{
		Token:     token,
		Address:   address,
		ExpiresAt: expiresAt,
	})
	return nil
}
