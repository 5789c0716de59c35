package election

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Event names as declared in the registry ABI.
const (
	EventCitizenRegistered = "CitizenRegistered"
	EventCandidateAdded    = "CandidateAdded"
	EventVoted             = "Voted"
)

// ABIJSON is the registry ABI as served to clients.
const ABIJSON = `[
  {"type":"constructor","stateMutability":"nonpayable","inputs":[
    {"name":"registrationDeadline","type":"uint256","internalType":"uint256"},
    {"name":"votingDeadline","type":"uint256","internalType":"uint256"}]},
  {"type":"error","name":"InvalidDateRange","inputs":[]},
  {"type":"error","name":"RegistrationAlreadyClosed","inputs":[]},
  {"type":"error","name":"RegistrationClosed","inputs":[]},
  {"type":"error","name":"VotingClosed","inputs":[]},
  {"type":"error","name":"CitizenAlreadyRegistered","inputs":[]},
  {"type":"error","name":"CandidateAlreadyRegistered","inputs":[]},
  {"type":"error","name":"AlreadyVoted","inputs":[]},
  {"type":"error","name":"NotRegistered","inputs":[]},
  {"type":"error","name":"NotValidCandidate","inputs":[]},
  {"type":"error","name":"IndexOutOfRange","inputs":[]},
  {"type":"error","name":"NotAdmin","inputs":[]},
  {"type":"event","name":"CitizenRegistered","anonymous":false,"inputs":[
    {"name":"wallet","type":"address","indexed":true,"internalType":"address"},
    {"name":"dni","type":"string","indexed":false,"internalType":"string"}]},
  {"type":"event","name":"CandidateAdded","anonymous":false,"inputs":[
    {"name":"dni","type":"string","indexed":false,"internalType":"string"},
    {"name":"name","type":"string","indexed":false,"internalType":"string"},
    {"name":"wallet","type":"address","indexed":true,"internalType":"address"}]},
  {"type":"event","name":"Voted","anonymous":false,"inputs":[
    {"name":"voter","type":"address","indexed":true,"internalType":"address"},
    {"name":"dni","type":"string","indexed":false,"internalType":"string"}]},
  {"type":"function","name":"REGISTRATION_DEADLINE","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"uint256","internalType":"uint256"}]},
  {"type":"function","name":"VOTING_DEADLINE","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"uint256","internalType":"uint256"}]},
  {"type":"function","name":"admin","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"address","internalType":"address"}]},
  {"type":"function","name":"registerCitizen","stateMutability":"nonpayable","inputs":[
    {"name":"dni","type":"string","internalType":"string"},
    {"name":"name","type":"string","internalType":"string"}],"outputs":[]},
  {"type":"function","name":"addCitizenCandidate","stateMutability":"nonpayable","inputs":[
    {"name":"dni","type":"string","internalType":"string"},
    {"name":"name","type":"string","internalType":"string"}],"outputs":[]},
  {"type":"function","name":"addCandidate","stateMutability":"nonpayable","inputs":[],"outputs":[]},
  {"type":"function","name":"vote","stateMutability":"nonpayable","inputs":[
    {"name":"dni","type":"string","internalType":"string"}],"outputs":[]},
  {"type":"function","name":"getCitizen","stateMutability":"view","inputs":[],"outputs":[
    {"name":"","type":"tuple","internalType":"struct DemocracyChain.Citizen","components":[
      {"name":"person","type":"tuple","internalType":"struct DemocracyChain.Person","components":[
        {"name":"dni","type":"string","internalType":"string"},
        {"name":"name","type":"string","internalType":"string"},
        {"name":"wallet","type":"address","internalType":"address"}]},
      {"name":"registered","type":"bool","internalType":"bool"},
      {"name":"voted","type":"bool","internalType":"bool"}]}]},
  {"type":"function","name":"getCandidate","stateMutability":"view","inputs":[
    {"name":"dni","type":"string","internalType":"string"}],"outputs":[
    {"name":"","type":"tuple","internalType":"struct DemocracyChain.Candidate","components":[
      {"name":"citizen","type":"tuple","internalType":"struct DemocracyChain.Citizen","components":[
        {"name":"person","type":"tuple","internalType":"struct DemocracyChain.Person","components":[
          {"name":"dni","type":"string","internalType":"string"},
          {"name":"name","type":"string","internalType":"string"},
          {"name":"wallet","type":"address","internalType":"address"}]},
        {"name":"registered","type":"bool","internalType":"bool"},
        {"name":"voted","type":"bool","internalType":"bool"}]},
      {"name":"voteCount","type":"uint256","internalType":"uint256"}]}]},
  {"type":"function","name":"getCandidateByIndex","stateMutability":"view","inputs":[
    {"name":"index","type":"uint256","internalType":"uint256"}],"outputs":[
    {"name":"","type":"tuple","internalType":"struct DemocracyChain.Candidate","components":[
      {"name":"citizen","type":"tuple","internalType":"struct DemocracyChain.Citizen","components":[
        {"name":"person","type":"tuple","internalType":"struct DemocracyChain.Person","components":[
          {"name":"dni","type":"string","internalType":"string"},
          {"name":"name","type":"string","internalType":"string"},
          {"name":"wallet","type":"address","internalType":"address"}]},
        {"name":"registered","type":"bool","internalType":"bool"},
        {"name":"voted","type":"bool","internalType":"bool"}]},
      {"name":"voteCount","type":"uint256","internalType":"uint256"}]}]},
  {"type":"function","name":"getCandidateCount","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"uint256","internalType":"uint256"}]},
  {"type":"function","name":"walletToDni","stateMutability":"view","inputs":[
    {"name":"","type":"address","internalType":"address"}],
   "outputs":[{"name":"","type":"bytes32","internalType":"bytes32"}]}
]`

var registryABI = mustParseABI(ABIJSON)

// ABI returns the parsed registry ABI.
func ABI() abi.ABI {
	return registryABI
}

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic("election: invalid registry ABI: " + err.Error())
	}
	return parsed
}
