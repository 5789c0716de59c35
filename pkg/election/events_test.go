package election

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTopicsMatchSignatures(t *testing.T) {
	cases := map[string]string{
		EventCitizenRegistered: "CitizenRegistered(address,string)",
		EventCandidateAdded:    "CandidateAdded(string,string,address)",
		EventVoted:             "Voted(address,string)",
	}
	for name, sig := range cases {
		assert.Equal(t, crypto.Keccak256Hash([]byte(sig)), EventTopic(name), name)
	}
	assert.Equal(t, common.Hash{}, EventTopic("Unknown"))
}

func TestEncodeLog_IndexedWalletTopic(t *testing.T) {
	registry := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	wallet := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

	l, err := EncodeLog(registry, CandidateAdded{DNI: "X1234567", Name: "Ana", Wallet: wallet})
	require.NoError(t, err)
	assert.Equal(t, registry, l.Address)
	require.Len(t, l.Topics, 2)
	assert.Equal(t, common.BytesToHash(wallet.Bytes()), l.Topics[1])

	ev, err := DecodeLog(*l)
	require.NoError(t, err)
	assert.Equal(t, CandidateAdded{DNI: "X1234567", Name: "Ana", Wallet: wallet}, ev)
}

func TestDecodeLog_Rejects(t *testing.T) {
	_, err := DecodeLog(types.Log{})
	require.ErrorIs(t, err, errUnknownEvent)

	_, err = DecodeLog(types.Log{Topics: []common.Hash{{0x01}, {}}})
	require.ErrorIs(t, err, errUnknownEvent)

	_, err = DecodeLog(types.Log{Topics: []common.Hash{EventTopic(EventVoted), {}}, Data: []byte{0x01}})
	require.Error(t, err)
}

func TestHashDNIMatchesKeccak(t *testing.T) {
	// keccak256("") is a well-known constant.
	assert.Equal(t,
		common.HexToHash("0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"),
		HashDNI(""))
}

func TestParamsPhase(t *testing.T) {
	p := Params{RegistrationDeadline: 100, VotingDeadline: 200}

	assert.Equal(t, PhaseRegistration, p.Phase(unix(99)))
	assert.Equal(t, PhaseVoting, p.Phase(unix(100)))
	assert.Equal(t, PhaseVoting, p.Phase(unix(199)))
	assert.Equal(t, PhaseClosed, p.Phase(unix(200)))
}

func unix(s int64) time.Time { return time.Unix(s, 0) }
