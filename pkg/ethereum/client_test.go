package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/democracychain/democracy-chain/pkg/election"
	"github.com/democracychain/democracy-chain/pkg/election/service"
	"github.com/democracychain/democracy-chain/pkg/electionstore"
	"github.com/democracychain/democracy-chain/pkg/ethrpc"
)

const start = int64(1_700_000_000)

var (
	admin = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	alice = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	bob   = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

func setupClient(t *testing.T) (*Client, service.Service) {
	t.Helper()
	ctx := context.Background()

	now := func() time.Time { return time.Unix(start, 0) }
	store := electionstore.NewMemStore()
	reg, deployed, err := service.Deploy(ctx, store, service.Deployment{
		Admin:                admin,
		RegistrationDeadline: uint64(start + 3600),
		VotingDeadline:       uint64(start + 7200),
		Network:              "localhost",
		ChainID:              31337,
	}, zap.NewNop(), election.WithClock(now))
	require.NoError(t, err)
	svc := service.NewService(reg, store, deployed, zap.NewNop())

	rpcServer, err := ethrpc.NewServer(svc, deployed.Address, deployed.ChainID, zap.NewNop())
	require.NoError(t, err)
	ts := httptest.NewServer(rpcServer)

	client, err := NewClient(ctx, Config{
		RPCURL:          ts.URL,
		Registry:        deployed.Address,
		PollingInterval: 10 * time.Millisecond,
	}, zap.NewNop())
	require.NoError(t, err)

	t.Cleanup(func() {
		client.Close()
		ts.Close()
		rpcServer.Stop()
	})
	return client, svc
}

func TestClient_Reads(t *testing.T) {
	client, svc := setupClient(t)
	ctx := context.Background()

	_, err := svc.AddCitizenCandidate(ctx, alice, &service.CitizenRequest{DNI: "11111111A", Name: "Alice"})
	require.NoError(t, err)
	_, err = svc.RegisterCitizen(ctx, bob, &service.CitizenRequest{DNI: "22222222B", Name: "Bob"})
	require.NoError(t, err)
	_, err = svc.Vote(ctx, bob, &service.VoteRequest{DNI: "11111111A"})
	require.NoError(t, err)

	owner, err := client.Admin(ctx)
	require.NoError(t, err)
	assert.Equal(t, admin, owner)

	deadlines, err := client.Deadlines(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Deadlines{Registration: uint64(start + 3600), Voting: uint64(start + 7200)}, deadlines)

	citizen, err := client.GetCitizen(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, election.Citizen{
		Person:     election.Person{DNI: "22222222B", Name: "Bob", Wallet: bob},
		Registered: true,
		Voted:      true,
	}, *citizen)

	candidate, err := client.GetCandidate(ctx, "11111111A")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), candidate.VoteCount)
	assert.Equal(t, alice, candidate.Citizen.Person.Wallet)

	candidates, err := client.Candidates(ctx)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Alice", candidates[0].Citizen.Person.Name)

	_, err = client.GetCandidateByIndex(ctx, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IndexOutOfRange")

	h, err := client.WalletToDNI(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, election.HashDNI("11111111A"), h)

	block, err := client.GetLatestBlockNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), block)

	votes, err := client.VoteEvents(ctx, 0, block)
	require.NoError(t, err)
	require.Len(t, votes, 1)
	assert.Equal(t, bob, votes[0].Voter)
	assert.Equal(t, "11111111A", votes[0].DNI)
	assert.Equal(t, uint64(3), votes[0].BlockNumber)
}

func TestClient_WatchVoteEvents(t *testing.T) {
	client, svc := setupClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := svc.AddCitizenCandidate(ctx, alice, &service.CitizenRequest{DNI: "11111111A", Name: "Alice"})
	require.NoError(t, err)

	received := make(chan *VoteEvent, 1)
	done := make(chan error, 1)
	go func() {
		done <- client.WatchVoteEvents(ctx, 1, func(ev *VoteEvent) error {
			received <- ev
			return nil
		})
	}()

	_, err = svc.Vote(ctx, alice, &service.VoteRequest{DNI: "11111111A"})
	require.NoError(t, err)

	select {
	case ev := <-received:
		assert.Equal(t, alice, ev.Voter)
		assert.Equal(t, uint64(2), ev.BlockNumber)
	case <-ctx.Done():
		t.Fatal("timed out waiting for vote event")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

// castVotes registers n voters and has each vote for dni, one block per
// registration and one per vote.
func castVotes(t *testing.T, svc service.Service, n int, dni string) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		voter := common.BigToAddress(big.NewInt(int64(0x10000 + i)))
		_, err := svc.RegisterCitizen(ctx, voter, &service.CitizenRequest{DNI: fmt.Sprintf("V%06d", i), Name: "Voter"})
		require.NoError(t, err)
		_, err = svc.Vote(ctx, voter, &service.VoteRequest{DNI: dni})
		require.NoError(t, err)
	}
}

func TestClient_WatchVoteEventsPastLogCap(t *testing.T) {
	client, svc := setupClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	const voters = 1100
	_, err := svc.AddCitizenCandidate(ctx, alice, &service.CitizenRequest{DNI: "11111111A", Name: "Alice"})
	require.NoError(t, err)
	castVotes(t, svc, voters, "11111111A")

	latest, err := client.GetLatestBlockNumber(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1+2*voters), latest)

	_, err = client.VoteEvents(ctx, 1, latest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than 1000 results")

	received := make(chan *VoteEvent, voters)
	done := make(chan error, 1)
	go func() {
		done <- client.WatchVoteEvents(ctx, 0, func(ev *VoteEvent) error {
			received <- ev
			return nil
		})
	}()

	seen := make(map[common.Address]bool, voters)
	var lastBlock uint64
	for len(seen) < voters {
		select {
		case ev := <-received:
			assert.Greater(t, ev.BlockNumber, lastBlock)
			lastBlock = ev.BlockNumber
			seen[ev.Voter] = true
		case <-ctx.Done():
			t.Fatalf("received %d of %d vote events", len(seen), voters)
		}
	}
	assert.Equal(t, latest, lastBlock)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
