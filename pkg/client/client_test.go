package client

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/democracychain/democracy-chain/pkg/app/api"
	"github.com/democracychain/democracy-chain/pkg/auth"
	"github.com/democracychain/democracy-chain/pkg/config"
	"github.com/democracychain/democracy-chain/pkg/contractinfo"
	"github.com/democracychain/democracy-chain/pkg/election"
	"github.com/democracychain/democracy-chain/pkg/election/service"
	"github.com/democracychain/democracy-chain/pkg/electionstore"
	"github.com/democracychain/democracy-chain/pkg/keys"
)

// hardhat development keys
const (
	adminKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	aliceKey = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
	bobKey   = "5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a"
)

func newTestServer(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	adminPriv, err := keys.PrivateKeyFromHex(adminKey)
	require.NoError(t, err)

	store := electionstore.NewMemStore()
	now := time.Now()
	registry, deployed, err := service.Deploy(ctx, store, service.Deployment{
		Admin:                crypto.PubkeyToAddress(adminPriv.PublicKey),
		RegistrationDeadline: uint64(now.Add(time.Hour).Unix()),
		VotingDeadline:       uint64(now.Add(2 * time.Hour).Unix()),
		Network:              "localhost",
		ChainID:              31337,
	}, zap.NewNop())
	require.NoError(t, err)

	sessions, err := auth.NewSessionManager(bytes.Repeat([]byte{1}, 32), "democracy-chain", time.Hour)
	require.NoError(t, err)

	router, closeRouter, err := api.NewRouter(&api.RouterConfig{
		Service:    service.NewService(registry, store, deployed, zap.NewNop()),
		Election:   deployed,
		Sessions:   sessions,
		Challenges: auth.NewChallengeStore(time.Minute),
		Server:     config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
	}, zap.NewNop())
	require.NoError(t, err)

	ts := httptest.NewServer(router)
	t.Cleanup(func() {
		ts.Close()
		closeRouter()
	})
	return ts.URL
}

func login(t *testing.T, baseURL, hexKey string) *Client {
	t.Helper()
	key, err := keys.PrivateKeyFromHex(hexKey)
	require.NoError(t, err)

	c := New(baseURL)
	resp, err := c.Login(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), resp.Address)
	assert.Equal(t, resp.Token, c.Token())
	return c
}

func TestClient_ElectionFlow(t *testing.T) {
	baseURL := newTestServer(t)
	ctx := context.Background()

	alice := login(t, baseURL, aliceKey)
	bob := login(t, baseURL, bobKey)

	tx, err := alice.AddCitizenCandidate(ctx, "11111111A", "Alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), tx.Seq)
	require.Len(t, tx.Events, 2)
	assert.Equal(t, election.EventCandidateAdded, tx.Events[1].Event)

	_, err = bob.RegisterCitizen(ctx, "22222222B", "Bob")
	require.NoError(t, err)

	_, err = bob.Vote(ctx, "11111111A")
	require.NoError(t, err)

	_, err = bob.Vote(ctx, "11111111A")
	require.Error(t, err)
	assert.True(t, IsAPIError(err, "AlreadyVoted"))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)

	_, err = bob.AddCandidate(ctx)
	require.NoError(t, err)

	me, err := bob.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bob", me.Person.Name)
	assert.True(t, me.Voted)

	anon := New(baseURL)
	count, err := anon.GetCandidateCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)

	candidate, err := anon.GetCandidate(ctx, "11111111A")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), candidate.VoteCount)

	second, err := anon.GetCandidateByIndex(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "22222222B", second.Citizen.Person.DNI)

	_, err = anon.GetCandidateByIndex(ctx, 2)
	assert.True(t, IsAPIError(err, "IndexOutOfRange"))

	citizen, err := anon.GetCitizen(ctx, me.Person.Wallet)
	require.NoError(t, err)
	assert.Equal(t, "22222222B", citizen.Person.DNI)

	dniHash, err := anon.WalletToDNI(ctx, me.Person.Wallet)
	require.NoError(t, err)
	assert.Equal(t, election.HashDNI("22222222B"), dniHash)

	results, err := anon.Results(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), results.TotalVotes)
	require.Len(t, results.Candidates, 2)
	assert.Equal(t, "100", results.Candidates[0].Share.String())

	info, err := anon.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), info.Seq)
	assert.Equal(t, election.PhaseRegistration, info.Phase)

	votes, err := anon.Logs(ctx, election.EventVoted)
	require.NoError(t, err)
	require.Len(t, votes, 1)
	assert.Equal(t, election.Voted{Voter: me.Person.Wallet, DNI: "11111111A"}, votes[0].Args)
}

func TestClient_AdminAndDiscovery(t *testing.T) {
	baseURL := newTestServer(t)
	ctx := context.Background()

	alice := login(t, baseURL, aliceKey)
	_, err := alice.RegisterCitizen(ctx, "11111111A", "Alice")
	require.NoError(t, err)

	_, err = alice.ListCitizens(ctx)
	assert.True(t, IsAPIError(err, "NotAdmin"))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "forbidden", apiErr.Category)

	admin := login(t, baseURL, adminKey)
	citizens, err := admin.ListCitizens(ctx)
	require.NoError(t, err)
	require.Len(t, citizens, 1)
	assert.Equal(t, "Alice", citizens[0].Person.Name)

	anon := New(baseURL)
	raw, err := anon.ABI(ctx)
	require.NoError(t, err)
	assert.Len(t, contractinfo.Checksum(raw), 64)

	addr, err := anon.Address(ctx)
	require.NoError(t, err)
	assert.Equal(t, "localhost", addr.Network)
}

func TestClient_Unauthenticated(t *testing.T) {
	baseURL := newTestServer(t)
	ctx := context.Background()

	_, err := New(baseURL).Vote(ctx, "11111111A")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "missing bearer token", apiErr.Message)

	_, err = New(baseURL, WithToken("garbage")).Me(ctx)
	assert.True(t, IsAPIError(err, "invalid session"))
}

func TestClient_ValidationError(t *testing.T) {
	baseURL := newTestServer(t)

	alice := login(t, baseURL, aliceKey)
	_, err := alice.RegisterCitizen(context.Background(), "", "Alice")
	assert.True(t, IsAPIError(err, "dni is required"))
}

func TestClient_GetCandidateWithRouteLikeDNI(t *testing.T) {
	baseURL := newTestServer(t)
	ctx := context.Background()

	alice := login(t, baseURL, aliceKey)
	_, err := alice.AddCitizenCandidate(ctx, "AB/12", "Alice")
	require.NoError(t, err)
	bob := login(t, baseURL, bobKey)
	_, err = bob.AddCitizenCandidate(ctx, "count", "Bob")
	require.NoError(t, err)

	got, err := bob.GetCandidate(ctx, "AB/12")
	require.NoError(t, err)
	assert.Equal(t, "AB/12", got.Citizen.Person.DNI)
	assert.Equal(t, "Alice", got.Citizen.Person.Name)

	got, err = alice.GetCandidate(ctx, "count")
	require.NoError(t, err)
	assert.Equal(t, "count", got.Citizen.Person.DNI)
	assert.Equal(t, "Bob", got.Citizen.Person.Name)

	count, err := alice.GetCandidateCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)
}
