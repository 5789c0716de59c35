package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/democracychain/democracy-chain/pkg/election"
)

const (
	defaultPollingInterval = 5 * time.Second
	// defaultMaxBlockRange keeps a chunk under the server's 1000-log cap
	defaultMaxBlockRange = 500
)

// Client reads the election registry through its JSON-RPC endpoint the way a
// wallet-backed frontend reads a deployed contract.
type Client struct {
	config   Config
	client   *ethclient.Client
	registry *bind.BoundContract
	logger   *zap.Logger
}

// NewClient dials cfg.RPCURL and binds the registry at cfg.Registry
func NewClient(ctx context.Context, cfg Config, logger *zap.Logger) (*Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to registry RPC: %w", err)
	}
	if cfg.PollingInterval <= 0 {
		cfg.PollingInterval = defaultPollingInterval
	}
	if cfg.MaxBlockRange == 0 {
		cfg.MaxBlockRange = defaultMaxBlockRange
	}

	registry := bind.NewBoundContract(cfg.Registry, election.ABI(), client, client, client)

	logger.Debug("Connected to registry RPC",
		zap.String("rpc_url", cfg.RPCURL),
		zap.String("registry", cfg.Registry.Hex()))

	return &Client{
		config:   cfg,
		client:   client,
		registry: registry,
		logger:   logger,
	}, nil
}

// Close closes the RPC connection
func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

func (c *Client) call(ctx context.Context, from common.Address, method string, params ...any) ([]any, error) {
	var out []any
	opts := &bind.CallOpts{Context: ctx, From: from}
	if err := c.registry.Call(opts, &out, method, params...); err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s returned no values", method)
	}
	return out, nil
}

// Admin returns the registry admin
func (c *Client) Admin(ctx context.Context) (common.Address, error) {
	out, err := c.call(ctx, common.Address{}, "admin")
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// Deadlines returns the registration and voting deadlines
func (c *Client) Deadlines(ctx context.Context) (*Deadlines, error) {
	registration, err := c.uint(ctx, "REGISTRATION_DEADLINE")
	if err != nil {
		return nil, err
	}
	voting, err := c.uint(ctx, "VOTING_DEADLINE")
	if err != nil {
		return nil, err
	}
	return &Deadlines{Registration: registration, Voting: voting}, nil
}

// GetCandidateCount returns the number of declared candidates
func (c *Client) GetCandidateCount(ctx context.Context) (uint64, error) {
	return c.uint(ctx, "getCandidateCount")
}

func (c *Client) uint(ctx context.Context, method string) (uint64, error) {
	out, err := c.call(ctx, common.Address{}, method)
	if err != nil {
		return 0, err
	}
	v := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	if !v.IsUint64() {
		return 0, fmt.Errorf("%s returned %s, which overflows uint64", method, v)
	}
	return v.Uint64(), nil
}

// GetCitizen returns the citizen bound to wallet. The registry reads the
// caller, so the call is sent from wallet.
func (c *Client) GetCitizen(ctx context.Context, wallet common.Address) (*election.Citizen, error) {
	out, err := c.call(ctx, wallet, "getCitizen")
	if err != nil {
		return nil, err
	}
	citizen := fromABICitizen(*abi.ConvertType(out[0], new(abiCitizen)).(*abiCitizen))
	return &citizen, nil
}

// GetCandidate returns the candidate registered under dni, or an empty candidate
func (c *Client) GetCandidate(ctx context.Context, dni string) (*election.Candidate, error) {
	out, err := c.call(ctx, common.Address{}, "getCandidate", dni)
	if err != nil {
		return nil, err
	}
	return fromABICandidate(*abi.ConvertType(out[0], new(abiCandidate)).(*abiCandidate)), nil
}

// GetCandidateByIndex returns the index-th declared candidate
func (c *Client) GetCandidateByIndex(ctx context.Context, index uint64) (*election.Candidate, error) {
	out, err := c.call(ctx, common.Address{}, "getCandidateByIndex", new(big.Int).SetUint64(index))
	if err != nil {
		return nil, err
	}
	return fromABICandidate(*abi.ConvertType(out[0], new(abiCandidate)).(*abiCandidate)), nil
}

// Candidates returns every declared candidate in declaration order
func (c *Client) Candidates(ctx context.Context) ([]election.Candidate, error) {
	count, err := c.GetCandidateCount(ctx)
	if err != nil {
		return nil, err
	}
	candidates := make([]election.Candidate, 0, count)
	for i := uint64(0); i < count; i++ {
		candidate, err := c.GetCandidateByIndex(ctx, i)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *candidate)
	}
	return candidates, nil
}

// WalletToDNI returns the DNI hash wallet is bound to, or the zero hash
func (c *Client) WalletToDNI(ctx context.Context, wallet common.Address) (common.Hash, error) {
	out, err := c.call(ctx, common.Address{}, "walletToDni", wallet)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Hash(*abi.ConvertType(out[0], new([32]byte)).(*[32]byte)), nil
}

// GetLatestBlockNumber returns the sequence number of the last accepted mutation
func (c *Client) GetLatestBlockNumber(ctx context.Context) (uint64, error) {
	n, err := c.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return n, nil
}

// VoteEvents returns the Voted logs between from and to inclusive
func (c *Client) VoteEvents(ctx context.Context, from, to uint64) ([]*VoteEvent, error) {
	logs, err := c.client.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: []common.Address{c.config.Registry},
		Topics:    [][]common.Hash{{election.EventTopic(election.EventVoted)}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to filter vote events: %w", err)
	}

	events := make([]*VoteEvent, 0, len(logs))
	for _, l := range logs {
		ev, err := election.DecodeLog(l)
		if err != nil {
			return nil, fmt.Errorf("failed to decode log %s/%d: %w", l.TxHash.Hex(), l.Index, err)
		}
		voted, ok := ev.(election.Voted)
		if !ok {
			continue
		}
		events = append(events, &VoteEvent{
			Voter:       voted.Voter,
			DNI:         voted.DNI,
			BlockNumber: l.BlockNumber,
			TxHash:      l.TxHash,
			LogIndex:    l.Index,
		})
	}
	return events, nil
}

// WatchVoteEvents polls for Voted logs after fromBlock until ctx is done.
// Each poll walks the new blocks in chunks of at most MaxBlockRange and only
// advances past a chunk once its logs were handed to handler.
func (c *Client) WatchVoteEvents(ctx context.Context, fromBlock uint64, handler func(*VoteEvent) error) error {
	c.logger.Info("Starting vote event poller", zap.Uint64("from_block", fromBlock))

	currentBlock := fromBlock
	ticker := time.NewTicker(c.config.PollingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			latestBlock, err := c.GetLatestBlockNumber(ctx)
			if err != nil {
				c.logger.Warn("Failed to get latest block", zap.Error(err))
				continue
			}
			currentBlock = c.catchUp(ctx, currentBlock, latestBlock, handler)
		}
	}
}

// catchUp delivers the vote events in (current, latest] and returns the last
// block it fully processed.
func (c *Client) catchUp(ctx context.Context, current, latest uint64, handler func(*VoteEvent) error) uint64 {
	for current < latest && ctx.Err() == nil {
		to := min(current+c.config.MaxBlockRange, latest)

		events, err := c.VoteEvents(ctx, current+1, to)
		if err != nil {
			c.logger.Warn("Failed to filter vote events",
				zap.Uint64("from_block", current+1),
				zap.Uint64("to_block", to),
				zap.Error(err))
			return current
		}
		for _, event := range events {
			if err := handler(event); err != nil {
				c.logger.Error("Failed to handle vote event",
					zap.Error(err),
					zap.String("tx_hash", event.TxHash.Hex()))
			}
		}
		current = to
	}
	return current
}
