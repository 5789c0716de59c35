// Package http holds the registry's HTTP plumbing: error-returning handlers,
// JSON responses, CORS and the serve/shutdown loop.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	apperrors "github.com/democracychain/democracy-chain/pkg/app/errors"
)

// HandlerFunc is an http.HandlerFunc that reports failures by returning them.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// HandleError adapts h for chi:
//
//	r.Post("/votes", apphttp.HandleError(h.vote))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, err)
		}
	}
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error    string `json:"error"`
	Code     int    `json:"code"`
	Category string `json:"category"`
}

// DefaultErrorHandler writes err as an ErrorResponse. Only the client-facing
// message of a ServiceError is exposed; internal causes go to the global
// zap logger.
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	resp := ErrorResponse{
		Error:    "Unexpected Service Error",
		Code:     http.StatusInternalServerError,
		Category: apperrors.CategoryGeneralError.String(),
	}

	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		resp.Error = svcErr.Message
		resp.Code = svcErr.StatusCode()
		resp.Category = svcErr.Category.String()
	}
	if apperrors.IsInternalError(err) {
		zap.L().Error("request failed", zap.String("category", resp.Category), zap.Error(err))
	}

	WriteJSON(w, resp.Code, &resp)
}

// WriteJSON writes data as a JSON response with the given status
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
