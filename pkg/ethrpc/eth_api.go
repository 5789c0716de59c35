package ethrpc

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"github.com/democracychain/democracy-chain/pkg/election"
	"github.com/democracychain/democracy-chain/pkg/election/service"
)

// maxGetLogs caps eth_getLogs results. Larger queries fail rather than
// truncate, so pollers never skip logs.
const maxGetLogs = 1000

// EthAPI implements the subset of the eth_* JSON-RPC namespace needed to read
// the registry with standard contract tooling: view calls and logs.
type EthAPI struct {
	server *Server
}

// NewEthAPI creates a new EthAPI instance
func NewEthAPI(server *Server) *EthAPI {
	return &EthAPI{server: server}
}

// ChainId returns the chain ID (EIP-155)
func (api *EthAPI) ChainId() hexutil.Uint64 {
	return hexutil.Uint64(api.server.chainID)
}

// BlockNumber returns the sequence number of the last accepted mutation
func (api *EthAPI) BlockNumber(ctx context.Context) (hexutil.Uint64, error) {
	info, err := api.server.svc.Info(ctx)
	if err != nil {
		api.server.logger.Error("Failed to get block number", zap.Error(err))
		return 0, toRPCError(err)
	}
	return hexutil.Uint64(info.Seq), nil
}

// Call executes a registry view function. The block parameter is accepted for
// compatibility and ignored: only the latest state is served.
func (api *EthAPI) Call(ctx context.Context, args CallArgs, _ *rpc.BlockNumberOrHash) (hexutil.Bytes, error) {
	if args.To == nil || *args.To != api.server.address {
		return nil, fmt.Errorf("unsupported contract")
	}

	input := args.GetData()
	if len(input) < 4 {
		return nil, fmt.Errorf("missing function selector")
	}

	method, err := api.server.abi.MethodById(input[:4])
	if err != nil {
		return nil, fmt.Errorf("unknown method")
	}
	if !method.IsConstant() {
		return nil, fmt.Errorf("%s is not a view function, use the HTTP API to send transactions", method.Name)
	}

	params, err := method.Inputs.Unpack(input[4:])
	if err != nil {
		return nil, invalidParams("invalid %s arguments: %v", method.Name, err)
	}

	api.server.logger.Debug("eth_call",
		zap.String("method", method.Name),
		zap.Int("args", len(params)))

	var from common.Address
	if args.From != nil {
		from = *args.From
	}

	out, err := api.call(ctx, method.Name, from, params)
	if err != nil {
		return nil, err
	}
	return pack(method, out)
}

func (api *EthAPI) call(ctx context.Context, name string, from common.Address, params []interface{}) (any, error) {
	svc := api.server.svc

	switch name {
	case "REGISTRATION_DEADLINE", "VOTING_DEADLINE", "admin":
		info, err := svc.Info(ctx)
		if err != nil {
			return nil, toRPCError(err)
		}
		switch name {
		case "REGISTRATION_DEADLINE":
			return new(big.Int).SetUint64(info.Params.RegistrationDeadline), nil
		case "VOTING_DEADLINE":
			return new(big.Int).SetUint64(info.Params.VotingDeadline), nil
		default:
			return info.Params.Admin, nil
		}

	case "getCitizen":
		c, err := svc.GetCitizen(ctx, from)
		if err != nil {
			return nil, toRPCError(err)
		}
		return toABICitizen(*c), nil

	case "getCandidate":
		dni, ok := params[0].(string)
		if !ok {
			return nil, invalidParams("dni must be a string")
		}
		c, err := svc.GetCandidate(ctx, dni)
		if err != nil {
			return nil, toRPCError(err)
		}
		return toABICandidate(*c), nil

	case "getCandidateByIndex":
		index, ok := params[0].(*big.Int)
		if !ok {
			return nil, invalidParams("index must be a uint256")
		}
		if !index.IsUint64() {
			return nil, api.server.revertError(election.ErrIndexOutOfRange)
		}
		c, err := svc.GetCandidateByIndex(ctx, index.Uint64())
		if err != nil {
			return nil, api.server.revertError(err)
		}
		return toABICandidate(*c), nil

	case "getCandidateCount":
		n, err := svc.GetCandidateCount(ctx)
		if err != nil {
			return nil, toRPCError(err)
		}
		return new(big.Int).SetUint64(n), nil

	case "walletToDni":
		wallet, ok := params[0].(common.Address)
		if !ok {
			return nil, invalidParams("wallet must be an address")
		}
		h, err := svc.WalletToDNI(ctx, wallet)
		if err != nil {
			return nil, toRPCError(err)
		}
		return [32]byte(h), nil

	default:
		return nil, fmt.Errorf("unsupported method: %s", name)
	}
}

func pack(method *abi.Method, v any) (hexutil.Bytes, error) {
	data, err := method.Outputs.Pack(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s result: %w", method.Name, err)
	}
	return data, nil
}

// GetLogs returns registry logs matching the filter criteria
func (api *EthAPI) GetLogs(ctx context.Context, query FilterQuery) ([]*types.Log, error) {
	logs := []*types.Log{}

	if query.BlockHash != nil {
		return nil, invalidParams("blockHash filters are not supported")
	}
	if !api.matchesAddress(query.Address) {
		return logs, nil
	}

	info, err := api.server.svc.Info(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	filter := &service.LogFilter{Limit: maxGetLogs + 1}
	from := resolveBlock(query.FromBlock, 0, info.Seq)
	to := resolveBlock(query.ToBlock, info.Seq, info.Seq)
	filter.From, filter.To = &from, &to

	if len(query.Topics) > 0 && query.Topics[0] != nil {
		topic, err := singleTopic(query.Topics[0])
		if err != nil {
			return nil, err
		}
		event, err := api.server.abi.EventByID(topic)
		if err != nil {
			return logs, nil
		}
		filter.Event = event.Name
	}
	if len(query.Topics) > 1 && query.Topics[1] != nil {
		topic, err := singleTopic(query.Topics[1])
		if err != nil {
			return nil, err
		}
		wallet := common.BytesToAddress(topic.Bytes())
		filter.Wallet = &wallet
	}

	entries, err := api.server.svc.Logs(ctx, filter)
	if err != nil {
		return nil, toRPCError(err)
	}
	if len(entries) > maxGetLogs {
		return nil, &rpcError{
			code: codeLimitExceeded,
			msg:  fmt.Sprintf("query returned more than %d results", maxGetLogs),
		}
	}
	for _, entry := range entries {
		l, err := election.EncodeLog(entry.Address, entry.Args)
		if err != nil {
			return nil, fmt.Errorf("failed to encode log: %w", err)
		}
		l.BlockNumber = entry.Seq
		l.TxHash = entry.TxHash
		l.Index = entry.LogIndex
		logs = append(logs, l)
	}
	return logs, nil
}

// matchesAddress reports whether an address filter (single or array) includes the registry
func (api *EthAPI) matchesAddress(filter interface{}) bool {
	switch addr := filter.(type) {
	case nil:
		return true
	case string:
		return common.HexToAddress(addr) == api.server.address
	case []interface{}:
		if len(addr) == 0 {
			return true
		}
		for _, a := range addr {
			if s, ok := a.(string); ok && common.HexToAddress(s) == api.server.address {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func singleTopic(v interface{}) (common.Hash, error) {
	switch t := v.(type) {
	case string:
		return common.HexToHash(t), nil
	case []interface{}:
		if len(t) == 1 {
			return singleTopic(t[0])
		}
	}
	return common.Hash{}, invalidParams("only single-value topic filters are supported")
}

// resolveBlock maps a block tag to a sequence number
func resolveBlock(bn *rpc.BlockNumber, def, latest uint64) uint64 {
	switch {
	case bn == nil:
		return def
	case *bn == rpc.EarliestBlockNumber:
		return 0
	case *bn < 0:
		return latest
	default:
		return uint64(*bn)
	}
}
