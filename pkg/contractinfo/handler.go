// Package contractinfo implements the contract discovery endpoints that frontends
// use to obtain the registry ABI and its address before talking to it.
package contractinfo

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgABIUnavailable     = "ABI not available yet"
	msgAddressUnavailable = "Address not available yet"
)

// Handler serves the contract discovery endpoints.
type Handler struct {
	abi     json.RawMessage
	address common.Address
	network string
	logger  *zap.Logger
}

// NewHandler creates a discovery handler. An empty abiJSON or a zero address makes
// the corresponding endpoint answer 404 until the contract is deployed.
func NewHandler(abiJSON string, address common.Address, network string, logger *zap.Logger) *Handler {
	h := &Handler{
		address: address,
		network: network,
		logger:  logger,
	}
	if abiJSON != "" {
		h.abi = json.RawMessage(abiJSON)
	}
	return h
}

// AddressResponse is the JSON body returned by GET /address.
type AddressResponse struct {
	Address common.Address `json:"address"`
	Network string         `json:"network"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes registers GET /abi and GET /address on the given chi router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/abi", h.serveABI)
	r.Get("/address", h.serveAddress)
}

func (h *Handler) serveABI(w http.ResponseWriter, _ *http.Request) {
	if len(h.abi) == 0 {
		h.writeError(w, http.StatusNotFound, msgABIUnavailable)
		return
	}
	h.writeJSON(w, http.StatusOK, h.abi)
}

func (h *Handler) serveAddress(w http.ResponseWriter, _ *http.Request) {
	if h.address == (common.Address{}) {
		h.writeError(w, http.StatusNotFound, msgAddressUnavailable)
		return
	}
	h.writeJSON(w, http.StatusOK, AddressResponse{
		Address: h.address,
		Network: h.network,
	})
}

// Checksum returns the hex SHA-256 digest of an ABI document.
func Checksum(abiJSON []byte) string {
	sum := sha256.Sum256(abiJSON)
	return hex.EncodeToString(sum[:])
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("failed to write JSON response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Error: message})
}
