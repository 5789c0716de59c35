package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/democracychain/democracy-chain/pkg/app/errors"
	"github.com/democracychain/democracy-chain/pkg/election"
	"github.com/democracychain/democracy-chain/pkg/election/service"
	"github.com/democracychain/democracy-chain/pkg/electionstore"
	storemocks "github.com/democracychain/democracy-chain/pkg/electionstore/mocks"
)

const (
	start            = int64(1_700_000_000)
	registrationEnds = uint64(start + 3600)
	votingEnds       = uint64(start + 7200)
)

var (
	admin = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	alice = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	bob   = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	carol = common.HexToAddress("0x90F79bf6EB2c4f870365E785982E1f101E93b906")
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(unix uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = time.Unix(int64(unix), 0)
}

func testDeployment() service.Deployment {
	return service.Deployment{
		Admin:                admin,
		RegistrationDeadline: registrationEnds,
		VotingDeadline:       votingEnds,
		Network:              "localhost",
		ChainID:              31337,
	}
}

type fixture struct {
	svc   service.Service
	store electionstore.Store
	clock *testClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clock := &testClock{now: time.Unix(start, 0)}
	store := electionstore.NewMemStore()
	reg, deployed, err := service.Deploy(context.Background(), store, testDeployment(), zap.NewNop(),
		election.WithClock(clock.Now))
	require.NoError(t, err)

	svc := service.NewLog(service.NewService(reg, store, deployed, zap.NewNop()), zap.NewNop())
	return &fixture{svc: svc, store: store, clock: clock}
}

func requireCategory(t *testing.T, err error, category apperrors.Category, message string) {
	t.Helper()
	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, category, svcErr.Category)
	assert.Equal(t, message, svcErr.Message)
}

func TestDeploy_FirstBootAndRestore(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(start, 0)}
	store := electionstore.NewMemStore()

	reg, deployed, err := service.Deploy(ctx, store, testDeployment(), zap.NewNop(), election.WithClock(clock.Now))
	require.NoError(t, err)
	assert.Equal(t, crypto.CreateAddress(admin, 0), deployed.Address)
	assert.Equal(t, deployed.Address, reg.Address())
	assert.Equal(t, service.DeploymentAddress(testDeployment()), deployed.Address)

	_, err = reg.AddCitizenCandidate(ctx, alice, "11111111A", "Alice")
	require.NoError(t, err)
	_, err = reg.RegisterCitizen(ctx, bob, "22222222B", "Bob")
	require.NoError(t, err)

	// a restart with different configuration keeps the deployed election
	changed := testDeployment()
	changed.VotingDeadline = votingEnds + 100
	restored, again, err := service.Deploy(ctx, store, changed, zap.NewNop(), election.WithClock(clock.Now))
	require.NoError(t, err)
	assert.Equal(t, votingEnds, again.VotingDeadline)
	assert.Equal(t, uint64(2), restored.Seq())
	assert.Equal(t, uint64(1), restored.GetCandidateCount())
	assert.Equal(t, "Bob", restored.GetCitizen(bob).Person.Name)

	// the restored registry keeps journaling with the next sequence number
	_, err = restored.AddCandidate(ctx, bob)
	require.NoError(t, err)
	state, err := store.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), state.LastSeq)
}

func TestDeploy_ConfiguredAddress(t *testing.T) {
	d := testDeployment()
	d.Address = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	clock := &testClock{now: time.Unix(start, 0)}

	reg, deployed, err := service.Deploy(context.Background(), electionstore.NewMemStore(), d, zap.NewNop(),
		election.WithClock(clock.Now))
	require.NoError(t, err)
	assert.Equal(t, d.Address, deployed.Address)
	assert.Equal(t, d.Address, reg.Address())
}

func TestDeploy_InvalidConfiguration(t *testing.T) {
	clock := &testClock{now: time.Unix(start, 0)}

	d := testDeployment()
	d.VotingDeadline = d.RegistrationDeadline
	_, _, err := service.Deploy(context.Background(), electionstore.NewMemStore(), d, zap.NewNop(),
		election.WithClock(clock.Now))
	assert.ErrorIs(t, err, election.ErrInvalidDateRange)

	clock.Set(registrationEnds)
	_, _, err = service.Deploy(context.Background(), electionstore.NewMemStore(), testDeployment(), zap.NewNop(),
		election.WithClock(clock.Now))
	assert.ErrorIs(t, err, election.ErrRegistrationAlreadyClosed)
}

func TestDeploy_StoreFailure(t *testing.T) {
	store := storemocks.NewStore(t)
	store.EXPECT().GetElection(mock.Anything).Return(nil, errors.New("connection refused")).Once()

	_, _, err := service.Deploy(context.Background(), store, testDeployment(), zap.NewNop())
	assert.ErrorContains(t, err, "connection refused")
}

func TestDeploy_SaveFailure(t *testing.T) {
	clock := &testClock{now: time.Unix(start, 0)}
	store := storemocks.NewStore(t)
	store.EXPECT().GetElection(mock.Anything).Return(nil, electionstore.ErrElectionNotFound).Once()
	store.EXPECT().SaveElection(mock.Anything, mock.AnythingOfType("*electionstore.Election")).
		Return(errors.New("disk full")).Once()

	_, _, err := service.Deploy(context.Background(), store, testDeployment(), zap.NewNop(),
		election.WithClock(clock.Now))
	assert.ErrorContains(t, err, "disk full")
}

func TestService_FullElection(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	resp, err := f.svc.AddCitizenCandidate(ctx, alice, &service.CitizenRequest{DNI: "11111111A", Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), resp.Seq)
	assert.Equal(t, election.MethodAddCitizenCandidate, resp.Method)
	require.Len(t, resp.Events, 2)
	assert.Equal(t, election.EventCitizenRegistered, resp.Events[0].Event)
	assert.Equal(t, election.CandidateAdded{DNI: "11111111A", Name: "Alice", Wallet: alice}, resp.Events[1].Args)

	_, err = f.svc.RegisterCitizen(ctx, bob, &service.CitizenRequest{DNI: "22222222B", Name: "Bob"})
	require.NoError(t, err)
	_, err = f.svc.RegisterCitizen(ctx, carol, &service.CitizenRequest{DNI: "33333333C", Name: "Carol"})
	require.NoError(t, err)
	_, err = f.svc.AddCandidate(ctx, bob)
	require.NoError(t, err)

	f.clock.Set(registrationEnds)

	for _, voter := range []common.Address{alice, carol} {
		_, err = f.svc.Vote(ctx, voter, &service.VoteRequest{DNI: "11111111A"})
		require.NoError(t, err)
	}
	resp, err = f.svc.Vote(ctx, bob, &service.VoteRequest{DNI: "22222222B"})
	require.NoError(t, err)
	assert.Equal(t, election.Voted{Voter: bob, DNI: "22222222B"}, resp.Events[0].Args)

	res, err := f.svc.Results(ctx)
	require.NoError(t, err)
	assert.Equal(t, election.PhaseVoting, res.Phase)
	assert.Equal(t, uint64(3), res.TotalVotes)
	require.Len(t, res.Candidates, 2)
	assert.Equal(t, "Alice", res.Candidates[0].Name)
	assert.Equal(t, "66.67", res.Candidates[0].Share.String())
	assert.Equal(t, uint64(1), res.Candidates[1].Position)
	assert.Equal(t, "33.33", res.Candidates[1].Share.String())

	info, err := f.svc.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), info.Citizens)
	assert.Equal(t, uint64(2), info.Candidates)
	assert.Equal(t, uint64(3), info.Votes)
	assert.Equal(t, uint64(7), info.Seq)
	assert.Equal(t, "localhost", info.Network)
	assert.Equal(t, admin, info.Params.Admin)

	c, err := f.svc.GetCitizen(ctx, carol)
	require.NoError(t, err)
	assert.True(t, c.Voted)

	cand, err := f.svc.GetCandidateByIndex(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Bob", cand.Citizen.Person.Name)
	assert.True(t, cand.Citizen.Voted)

	n, err := f.svc.GetCandidateCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), n)

	h, err := f.svc.WalletToDNI(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, election.HashDNI("11111111A"), h)
}

func TestService_ErrorMapping(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.RegisterCitizen(ctx, alice, &service.CitizenRequest{DNI: "11111111A", Name: "Alice"})
	require.NoError(t, err)

	_, err = f.svc.RegisterCitizen(ctx, bob, &service.CitizenRequest{DNI: "11111111A", Name: "Mallory"})
	requireCategory(t, err, apperrors.CategoryDataConflict, "CitizenAlreadyRegistered")
	assert.ErrorIs(t, err, election.ErrCitizenAlreadyRegistered)

	_, err = f.svc.AddCandidate(ctx, bob)
	requireCategory(t, err, apperrors.CategoryForbidden, "NotRegistered")

	_, err = f.svc.GetCandidateByIndex(ctx, 0)
	requireCategory(t, err, apperrors.CategoryResourceNotFound, "IndexOutOfRange")

	_, err = f.svc.ListCitizens(ctx, alice)
	requireCategory(t, err, apperrors.CategoryForbidden, "NotAdmin")

	citizens, err := f.svc.ListCitizens(ctx, admin)
	require.NoError(t, err)
	require.Len(t, citizens, 1)

	f.clock.Set(registrationEnds)
	_, err = f.svc.RegisterCitizen(ctx, bob, &service.CitizenRequest{DNI: "22222222B", Name: "Bob"})
	requireCategory(t, err, apperrors.CategoryLocked, "RegistrationClosed")

	_, err = f.svc.Vote(ctx, alice, &service.VoteRequest{DNI: "99999999Z"})
	requireCategory(t, err, apperrors.CategoryResourceNotFound, "NotValidCandidate")

	f.clock.Set(votingEnds)
	_, err = f.svc.Vote(ctx, alice, &service.VoteRequest{DNI: "11111111A"})
	requireCategory(t, err, apperrors.CategoryLocked, "VotingClosed")

	res, err := f.svc.Results(ctx)
	require.NoError(t, err)
	assert.Equal(t, election.PhaseClosed, res.Phase)
	assert.Empty(t, res.Candidates)
}

func TestService_JournalFailureIsInternal(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(start, 0)}

	store := storemocks.NewStore(t)
	store.EXPECT().GetElection(mock.Anything).Return(nil, electionstore.ErrElectionNotFound).Once()
	store.EXPECT().SaveElection(mock.Anything, mock.Anything).Return(nil).Once()
	store.EXPECT().GetElection(mock.Anything).RunAndReturn(func(context.Context) (*electionstore.Election, error) {
		return &electionstore.Election{
			Address:              crypto.CreateAddress(admin, 0),
			Admin:                admin,
			RegistrationDeadline: registrationEnds,
			VotingDeadline:       votingEnds,
			Network:              "localhost",
			ChainID:              31337,
		}, nil
	}).Once()
	store.EXPECT().Commit(mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	reg, deployed, err := service.Deploy(ctx, store, testDeployment(), zap.NewNop(), election.WithClock(clock.Now))
	require.NoError(t, err)
	svc := service.NewService(reg, store, deployed, zap.NewNop())

	_, err = svc.RegisterCitizen(ctx, alice, &service.CitizenRequest{DNI: "11111111A", Name: "Alice"})
	requireCategory(t, err, apperrors.CategoryGeneralError, "Internal Server Error")
	assert.True(t, apperrors.IsInternalError(err))

	c, err := svc.GetCitizen(ctx, alice)
	require.NoError(t, err)
	assert.False(t, c.Registered)
}

func TestService_ReloadsAfterConcurrentWriter(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(start, 0)}
	store := electionstore.NewMemStore()

	instance := func() service.Service {
		reg, deployed, err := service.Deploy(ctx, store, testDeployment(), zap.NewNop(), election.WithClock(clock.Now))
		require.NoError(t, err)
		return service.NewService(reg, store, deployed, zap.NewNop())
	}
	first, second := instance(), instance()

	_, err := first.AddCitizenCandidate(ctx, alice, &service.CitizenRequest{DNI: "11111111A", Name: "Alice"})
	require.NoError(t, err)

	tx, err := second.RegisterCitizen(ctx, bob, &service.CitizenRequest{DNI: "22222222B", Name: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), tx.Seq)
	count, err := second.GetCandidateCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	tx, err = first.Vote(ctx, bob, &service.VoteRequest{DNI: "11111111A"})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), tx.Seq)

	// the guard runs against the reloaded state, not the stale one
	_, err = second.Vote(ctx, bob, &service.VoteRequest{DNI: "11111111A"})
	requireCategory(t, err, apperrors.CategoryDataConflict, "AlreadyVoted")

	c, err := second.GetCandidate(ctx, "11111111A")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), c.VoteCount)

	state, err := store.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), state.LastSeq)
}

func TestService_ReloadFailureIsDependencyFailure(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(start, 0)}

	store := storemocks.NewStore(t)
	store.EXPECT().GetElection(mock.Anything).Return(&electionstore.Election{
		Address:              crypto.CreateAddress(admin, 0),
		Admin:                admin,
		RegistrationDeadline: registrationEnds,
		VotingDeadline:       votingEnds,
	}, nil).Once()
	store.EXPECT().LoadState(mock.Anything).Return(&election.State{}, nil).Once()
	store.EXPECT().Commit(mock.Anything, mock.Anything).Return(electionstore.ErrSequenceConflict).Once()
	store.EXPECT().LoadState(mock.Anything).Return(nil, errors.New("connection reset")).Once()

	reg, deployed, err := service.Deploy(ctx, store, testDeployment(), zap.NewNop(), election.WithClock(clock.Now))
	require.NoError(t, err)
	svc := service.NewService(reg, store, deployed, zap.NewNop())

	_, err = svc.RegisterCitizen(ctx, alice, &service.CitizenRequest{DNI: "11111111A", Name: "Alice"})
	requireCategory(t, err, apperrors.CategoryDependencyFailure, "Dependency Failure")
}

func TestService_Logs(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.AddCitizenCandidate(ctx, alice, &service.CitizenRequest{DNI: "11111111A", Name: "Alice"})
	require.NoError(t, err)
	_, err = f.svc.RegisterCitizen(ctx, bob, &service.CitizenRequest{DNI: "22222222B", Name: "Bob"})
	require.NoError(t, err)
	f.clock.Set(registrationEnds)
	_, err = f.svc.Vote(ctx, bob, &service.VoteRequest{DNI: "11111111A"})
	require.NoError(t, err)

	all, err := f.svc.Logs(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, election.MethodAddCitizenCandidate, all[0].Method)
	assert.Equal(t, uint(1), all[1].LogIndex)
	assert.Equal(t, bob, all[3].Caller)

	votes, err := f.svc.Logs(ctx, &service.LogFilter{Event: election.EventVoted})
	require.NoError(t, err)
	require.Len(t, votes, 1)
	assert.Equal(t, election.Voted{Voter: bob, DNI: "11111111A"}, votes[0].Args)

	from := uint64(2)
	later, err := f.svc.Logs(ctx, &service.LogFilter{From: &from, Limit: 1})
	require.NoError(t, err)
	require.Len(t, later, 1)
	assert.Equal(t, uint64(2), later[0].Seq)

	byAlice, err := f.svc.Logs(ctx, &service.LogFilter{Wallet: &alice})
	require.NoError(t, err)
	assert.Len(t, byAlice, 2)

	_, err = f.svc.Logs(ctx, &service.LogFilter{Event: "Transfer"})
	requireCategory(t, err, apperrors.CategoryDataError, `unknown event "Transfer"`)
}

func TestService_LogsStoreFailure(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(start, 0)}
	mem := electionstore.NewMemStore()
	reg, deployed, err := service.Deploy(ctx, mem, testDeployment(), zap.NewNop(), election.WithClock(clock.Now))
	require.NoError(t, err)

	store := storemocks.NewStore(t)
	store.EXPECT().ListLogs(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout")).Once()

	svc := service.NewService(reg, store, deployed, zap.NewNop())
	_, err = svc.Logs(ctx, &service.LogFilter{})
	requireCategory(t, err, apperrors.CategoryDependencyFailure, "Dependency Failure")
}

func TestInstrumented_PassesThrough(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	svc, err := service.NewInstrumented(ctx, f.svc)
	require.NoError(t, err)

	resp, err := svc.AddCitizenCandidate(ctx, alice, &service.CitizenRequest{DNI: "11111111A", Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), resp.Seq)

	_, err = svc.AddCandidate(ctx, alice)
	requireCategory(t, err, apperrors.CategoryDataConflict, "CandidateAlreadyRegistered")

	c, err := svc.GetCandidate(ctx, "11111111A")
	require.NoError(t, err)
	assert.Equal(t, "Alice", c.Citizen.Person.Name)
}
