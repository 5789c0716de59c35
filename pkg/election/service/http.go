package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/democracychain/democracy-chain/pkg/app/errors"
	apphttp "github.com/democracychain/democracy-chain/pkg/app/http"
	"github.com/democracychain/democracy-chain/pkg/auth"
)

const maxBodySize = 1 << 20 // 1MB

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the election endpoints on the given chi router.
// session authenticates the caller of mutating and per-caller endpoints.
func RegisterRoutes(r chi.Router, service Service, session func(http.Handler) http.Handler, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/info", apphttp.HandleError(h.info))
	r.Get("/params", apphttp.HandleError(h.params))
	r.Get("/results", apphttp.HandleError(h.results))
	r.Get("/logs", apphttp.HandleError(h.logs))
	r.Get("/citizens/{wallet}", apphttp.HandleError(h.getCitizen))
	r.Get("/wallets/{wallet}/dni", apphttp.HandleError(h.walletToDNI))
	r.Get("/candidates/count", apphttp.HandleError(h.getCandidateCount))
	r.Get("/candidates/index/{index}", apphttp.HandleError(h.getCandidateByIndex))
	r.Get("/candidates", apphttp.HandleError(h.getCandidate))

	r.Group(func(r chi.Router) {
		r.Use(session)
		r.Get("/citizen", apphttp.HandleError(h.getOwnCitizen))
		r.Post("/citizens", apphttp.HandleError(h.registerCitizen))
		r.Post("/candidates", apphttp.HandleError(h.addCitizenCandidate))
		r.Post("/candidates/self", apphttp.HandleError(h.addCandidate))
		r.Post("/votes", apphttp.HandleError(h.vote))
		r.With(auth.RequireAdmin).Get("/admin/citizens", apphttp.HandleError(h.listCitizens))
	})
}

func (h *HTTP) info(w http.ResponseWriter, r *http.Request) error {
	info, err := h.service.Info(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, info)
	return nil
}

func (h *HTTP) params(w http.ResponseWriter, r *http.Request) error {
	info, err := h.service.Info(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, info.Params)
	return nil
}

func (h *HTTP) results(w http.ResponseWriter, r *http.Request) error {
	res, err := h.service.Results(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func (h *HTTP) logs(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	filter := &LogFilter{Event: q.Get("event")}

	var err error
	if filter.From, err = queryUint(q.Get("from")); err != nil {
		return apperrors.BadRequestError(err, "invalid from")
	}
	if filter.To, err = queryUint(q.Get("to")); err != nil {
		return apperrors.BadRequestError(err, "invalid to")
	}
	if s := q.Get("limit"); s != "" {
		if filter.Limit, err = strconv.Atoi(s); err != nil {
			return apperrors.BadRequestError(err, "invalid limit")
		}
	}
	if s := q.Get("wallet"); s != "" {
		wallet, err := auth.ParseAddress(s)
		if err != nil {
			return apperrors.BadRequestError(err, "invalid wallet address")
		}
		filter.Wallet = &wallet
	}

	entries, err := h.service.Logs(r.Context(), filter)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"logs": entries})
	return nil
}

func (h *HTTP) getCitizen(w http.ResponseWriter, r *http.Request) error {
	wallet, err := walletParam(r)
	if err != nil {
		return err
	}
	c, err := h.service.GetCitizen(r.Context(), wallet)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, c)
	return nil
}

func (h *HTTP) getOwnCitizen(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerFrom(r)
	if err != nil {
		return err
	}
	c, err := h.service.GetCitizen(r.Context(), caller)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, c)
	return nil
}

func (h *HTTP) walletToDNI(w http.ResponseWriter, r *http.Request) error {
	wallet, err := walletParam(r)
	if err != nil {
		return err
	}
	dniHash, err := h.service.WalletToDNI(r.Context(), wallet)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"wallet": wallet, "dni_hash": dniHash})
	return nil
}

func (h *HTTP) getCandidateCount(w http.ResponseWriter, r *http.Request) error {
	n, err := h.service.GetCandidateCount(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, map[string]uint64{"count": n})
	return nil
}

func (h *HTTP) getCandidateByIndex(w http.ResponseWriter, r *http.Request) error {
	index, err := strconv.ParseUint(chi.URLParam(r, "index"), 10, 64)
	if err != nil {
		return apperrors.BadRequestError(err, "invalid index")
	}
	c, err := h.service.GetCandidateByIndex(r.Context(), index)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, c)
	return nil
}

// getCandidate reads the dni from the query string: a dni may contain '/' or
// collide with the static count and index segments.
func (h *HTTP) getCandidate(w http.ResponseWriter, r *http.Request) error {
	dni := r.URL.Query().Get("dni")
	if dni == "" {
		return apperrors.BadRequestError(nil, "dni is required")
	}
	c, err := h.service.GetCandidate(r.Context(), dni)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, c)
	return nil
}

func (h *HTTP) registerCitizen(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerFrom(r)
	if err != nil {
		return err
	}
	var req CitizenRequest
	if err := decodeRequest(r, &req); err != nil {
		return err
	}
	resp, err := h.service.RegisterCitizen(r.Context(), caller, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) addCitizenCandidate(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerFrom(r)
	if err != nil {
		return err
	}
	var req CitizenRequest
	if err := decodeRequest(r, &req); err != nil {
		return err
	}
	resp, err := h.service.AddCitizenCandidate(r.Context(), caller, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) addCandidate(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerFrom(r)
	if err != nil {
		return err
	}
	resp, err := h.service.AddCandidate(r.Context(), caller)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) vote(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerFrom(r)
	if err != nil {
		return err
	}
	var req VoteRequest
	if err := decodeRequest(r, &req); err != nil {
		return err
	}
	resp, err := h.service.Vote(r.Context(), caller, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) listCitizens(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerFrom(r)
	if err != nil {
		return err
	}
	citizens, err := h.service.ListCitizens(r.Context(), caller)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"citizens": citizens})
	return nil
}

// decodeRequest reads a JSON body into dst and validates it.
func decodeRequest(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	if err := validate.Struct(dst); err != nil {
		return apperrors.BadRequestError(err, validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func callerFrom(r *http.Request) (common.Address, error) {
	caller, ok := auth.WalletFromContext(r.Context())
	if !ok {
		return common.Address{}, apperrors.UnAuthorizedError(nil, "missing session")
	}
	return caller, nil
}

func walletParam(r *http.Request) (common.Address, error) {
	wallet, err := auth.ParseAddress(chi.URLParam(r, "wallet"))
	if err != nil {
		return common.Address{}, apperrors.BadRequestError(err, "invalid wallet address")
	}
	return wallet, nil
}

func queryUint(s string) (*uint64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
