package ethrpc

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// clientVersion follows geth's name/version/os-arch/go layout.
var clientVersion = fmt.Sprintf("democracy-chain/v1.0.0/%s-%s/%s", runtime.GOOS, runtime.GOARCH, runtime.Version())

// NetAPI serves net_*. The facade is a single node with no peers.
type NetAPI struct {
	chainID uint64
}

// Version returns the chain id as a decimal string.
func (api *NetAPI) Version() string {
	return strconv.FormatUint(api.chainID, 10)
}

func (api *NetAPI) Listening() bool { return true }

func (api *NetAPI) PeerCount() hexutil.Uint { return 0 }

// Web3API serves web3_*.
type Web3API struct{}

func (Web3API) ClientVersion() string { return clientVersion }

// Sha3 returns keccak256(input), the hash behind every event topic and
// DNI key in the registry.
func (Web3API) Sha3(input hexutil.Bytes) hexutil.Bytes {
	return crypto.Keccak256(input)
}
