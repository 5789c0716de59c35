// Package client is a typed HTTP client for the registry server API.
package client

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/democracychain/democracy-chain/pkg/auth"
	"github.com/democracychain/democracy-chain/pkg/contractinfo"
	"github.com/democracychain/democracy-chain/pkg/election"
	"github.com/democracychain/democracy-chain/pkg/election/service"
)

const defaultTimeout = 30 * time.Second

// APIError is a non-2xx response from the server. Registry failures carry the
// registry error name in Message, e.g. AlreadyVoted.
type APIError struct {
	StatusCode int    `json:"code"`
	Message    string `json:"error"`
	Category   string `json:"category"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// IsAPIError reports whether err is an APIError with the given message.
func IsAPIError(err error, message string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Message == message
}

// Client talks to a registry server. Mutations need a session from Login.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sets an existing session token
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a client for the server at baseURL, e.g. http://localhost:8080
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the current session token
func (c *Client) Token() string {
	return c.token
}

// Nonce requests a login challenge for address
func (c *Client) Nonce(ctx context.Context, address common.Address) (*auth.Challenge, error) {
	var challenge auth.Challenge
	path := "/auth/nonce?address=" + url.QueryEscape(address.Hex())
	if err := c.do(ctx, http.MethodGet, path, nil, &challenge); err != nil {
		return nil, err
	}
	return &challenge, nil
}

// Login signs a fresh challenge with key and stores the issued session token
func (c *Client) Login(ctx context.Context, key *ecdsa.PrivateKey) (*auth.LoginResponse, error) {
	address := crypto.PubkeyToAddress(key.PublicKey)

	challenge, err := c.Nonce(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get login challenge: %w", err)
	}
	signature, err := auth.SignEIP191(challenge.Message, key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign login challenge: %w", err)
	}

	var resp auth.LoginResponse
	req := &auth.LoginRequest{Address: address.Hex(), Signature: signature}
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

// RegisterCitizen binds the session wallet to dni
func (c *Client) RegisterCitizen(ctx context.Context, dni, name string) (*service.TxResponse, error) {
	return c.tx(ctx, "/citizens", &service.CitizenRequest{DNI: dni, Name: name})
}

// AddCitizenCandidate registers the session wallet and declares it a candidate
func (c *Client) AddCitizenCandidate(ctx context.Context, dni, name string) (*service.TxResponse, error) {
	return c.tx(ctx, "/candidates", &service.CitizenRequest{DNI: dni, Name: name})
}

// AddCandidate declares the already registered session wallet a candidate
func (c *Client) AddCandidate(ctx context.Context) (*service.TxResponse, error) {
	return c.tx(ctx, "/candidates/self", nil)
}

// Vote casts the session wallet's vote for the candidate registered under dni
func (c *Client) Vote(ctx context.Context, dni string) (*service.TxResponse, error) {
	return c.tx(ctx, "/votes", &service.VoteRequest{DNI: dni})
}

func (c *Client) tx(ctx context.Context, path string, body any) (*service.TxResponse, error) {
	var resp service.TxResponse
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the citizen bound to the session wallet
func (c *Client) Me(ctx context.Context) (*election.Citizen, error) {
	var citizen election.Citizen
	if err := c.do(ctx, http.MethodGet, "/citizen", nil, &citizen); err != nil {
		return nil, err
	}
	return &citizen, nil
}

// GetCitizen returns the citizen bound to wallet
func (c *Client) GetCitizen(ctx context.Context, wallet common.Address) (*election.Citizen, error) {
	var citizen election.Citizen
	if err := c.do(ctx, http.MethodGet, "/citizens/"+wallet.Hex(), nil, &citizen); err != nil {
		return nil, err
	}
	return &citizen, nil
}

// GetCandidate returns the candidate registered under dni
func (c *Client) GetCandidate(ctx context.Context, dni string) (*election.Candidate, error) {
	var candidate election.Candidate
	if err := c.do(ctx, http.MethodGet, "/candidates?"+url.Values{"dni": {dni}}.Encode(), nil, &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// GetCandidateByIndex returns the index-th declared candidate
func (c *Client) GetCandidateByIndex(ctx context.Context, index uint64) (*election.Candidate, error) {
	var candidate election.Candidate
	path := "/candidates/index/" + strconv.FormatUint(index, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// GetCandidateCount returns the number of declared candidates
func (c *Client) GetCandidateCount(ctx context.Context) (uint64, error) {
	var resp struct {
		Count uint64 `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/candidates/count", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// WalletToDNI returns the DNI hash wallet is bound to
func (c *Client) WalletToDNI(ctx context.Context, wallet common.Address) (common.Hash, error) {
	var resp struct {
		DNIHash common.Hash `json:"dni_hash"`
	}
	if err := c.do(ctx, http.MethodGet, "/wallets/"+wallet.Hex()+"/dni", nil, &resp); err != nil {
		return common.Hash{}, err
	}
	return resp.DNIHash, nil
}

// Info returns the deployment and progress of the election
func (c *Client) Info(ctx context.Context) (*service.Info, error) {
	var info service.Info
	if err := c.do(ctx, http.MethodGet, "/info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Results returns the current tally
func (c *Client) Results(ctx context.Context) (*service.Results, error) {
	var results service.Results
	if err := c.do(ctx, http.MethodGet, "/results", nil, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

// Logs returns registry logs, optionally filtered by event name
func (c *Client) Logs(ctx context.Context, event string) ([]*service.LogEntry, error) {
	var resp struct {
		Logs []*service.LogEntry `json:"logs"`
	}
	path := "/logs"
	if event != "" {
		path += "?event=" + url.QueryEscape(event)
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Logs, nil
}

// ListCitizens returns every registered citizen. The session must belong to the admin.
func (c *Client) ListCitizens(ctx context.Context) ([]election.Citizen, error) {
	var resp struct {
		Citizens []election.Citizen `json:"citizens"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/citizens", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Citizens, nil
}

// ABI returns the raw registry ABI JSON
func (c *Client) ABI(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/abi", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Address returns the registry address and network
func (c *Client) Address(ctx context.Context) (*contractinfo.AddressResponse, error) {
	var resp contractinfo.AddressResponse
	if err := c.do(ctx, http.MethodGet, "/address", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if json.Unmarshal(data, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(data))
		}
		apiErr.StatusCode = resp.StatusCode
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
