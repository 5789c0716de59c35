package ethrpc

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	apperrors "github.com/democracychain/democracy-chain/pkg/app/errors"
	"github.com/democracychain/democracy-chain/pkg/election"
)

// JSON-RPC error codes used by the facade
const (
	codeServerError   = -32000
	codeInvalidParams = -32602
	// codeLimitExceeded is the EIP-1474 code for requests over a result cap
	codeLimitExceeded = -32005
	// codeReverted is the code execution clients use for reverted eth_calls
	codeReverted = 3
)

// rpcError is an error with a JSON-RPC code and optional data
type rpcError struct {
	code int
	msg  string
	data interface{}
}

func (e *rpcError) Error() string          { return e.msg }
func (e *rpcError) ErrorCode() int         { return e.code }
func (e *rpcError) ErrorData() interface{} { return e.data }

func invalidParams(format string, args ...any) error {
	return &rpcError{code: codeInvalidParams, msg: fmt.Sprintf(format, args...)}
}

// toRPCError converts service errors into JSON-RPC errors carrying the service
// message. Internal errors keep their generic message.
func toRPCError(err error) error {
	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) {
		return &rpcError{code: codeServerError, msg: "internal error"}
	}
	code := codeServerError
	if svcErr.Category == apperrors.CategoryDataError {
		code = codeInvalidParams
	}
	return &rpcError{code: code, msg: svcErr.Message}
}

// revertError reports a registry error the way a reverted eth_call does: the
// data is the ABI selector of the custom error.
func (s *Server) revertError(err error) error {
	name := election.ErrorName(err)
	abiErr, ok := s.abi.Errors[name]
	if name == "" || !ok {
		return toRPCError(err)
	}
	return &rpcError{
		code: codeReverted,
		msg:  "execution reverted: " + name,
		data: hexutil.Encode(abiErr.ID[:4]),
	}
}
