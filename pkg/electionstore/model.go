package electionstore

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/uptrace/bun"

	"github.com/democracychain/democracy-chain/pkg/election"
)

// electionRowID is the id of the single elections row.
const electionRowID = 1

// ElectionDao maps to the singleton 'elections' table.
type ElectionDao struct {
	bun.BaseModel        `bun:"table:elections,alias:e"`
	ID                   int       `bun:"id,pk"`
	Address              string    `bun:"address,notnull,type:varchar(42)"`
	Admin                string    `bun:"admin,notnull,type:varchar(42)"`
	RegistrationDeadline uint64    `bun:"registration_deadline,notnull"`
	VotingDeadline       uint64    `bun:"voting_deadline,notnull"`
	Network              string    `bun:"network,notnull,type:varchar(64)"`
	ChainID              uint64    `bun:"chain_id,notnull"`
	LastSeq              uint64    `bun:"last_seq,notnull,default:0"`
	CreatedAt            time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// CitizenDao maps to the 'citizens' table.
type CitizenDao struct {
	bun.BaseModel `bun:"table:citizens,alias:c"`
	DNIHash       string    `bun:"dni_hash,pk,type:varchar(66)"`
	DNI           string    `bun:"dni,notnull,type:text"`
	Name          string    `bun:"name,notnull,type:text"`
	Wallet        string    `bun:"wallet,unique,notnull,type:varchar(42)"`
	Registered    bool      `bun:"registered,notnull"`
	Voted         bool      `bun:"voted,notnull"`
	RegisteredSeq uint64    `bun:"registered_seq,notnull"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// CandidateDao maps to the 'candidates' table.
type CandidateDao struct {
	bun.BaseModel `bun:"table:candidates,alias:cd"`
	DNIHash       string `bun:"dni_hash,pk,type:varchar(66)"`
	Position      uint64 `bun:"position,unique,notnull"`
	VoteCount     uint64 `bun:"vote_count,notnull,default:0"`
}

// ElectionLogDao maps to the 'election_logs' table.
type ElectionLogDao struct {
	bun.BaseModel `bun:"table:election_logs,alias:l"`
	Seq           uint64    `bun:"seq,pk"`
	LogIndex      int       `bun:"log_index,pk"`
	TxHash        string    `bun:"tx_hash,notnull,type:varchar(66)"`
	Address       string    `bun:"address,notnull,type:varchar(42)"`
	Topic0        string    `bun:"topic0,notnull,type:varchar(66)"`
	Topic1        *string   `bun:"topic1,type:varchar(66)"`
	Data          []byte    `bun:"data,type:bytea"`
	Method        string    `bun:"method,notnull,type:varchar(64)"`
	Caller        string    `bun:"caller,notnull,type:varchar(42)"`
	CreatedAt     time.Time `bun:"created_at,notnull"`
}

func toElectionDao(e *Election) *ElectionDao {
	return &ElectionDao{
		ID:                   electionRowID,
		Address:              e.Address.Hex(),
		Admin:                e.Admin.Hex(),
		RegistrationDeadline: e.RegistrationDeadline,
		VotingDeadline:       e.VotingDeadline,
		Network:              e.Network,
		ChainID:              e.ChainID,
		CreatedAt:            e.CreatedAt,
	}
}

func toElection(dao *ElectionDao) *Election {
	return &Election{
		Address:              common.HexToAddress(dao.Address),
		Admin:                common.HexToAddress(dao.Admin),
		RegistrationDeadline: dao.RegistrationDeadline,
		VotingDeadline:       dao.VotingDeadline,
		Network:              dao.Network,
		ChainID:              dao.ChainID,
		CreatedAt:            dao.CreatedAt,
		LastSeq:              dao.LastSeq,
	}
}

func toCitizenDao(c election.Citizen, seq uint64) *CitizenDao {
	return &CitizenDao{
		DNIHash:       c.Person.DNIHash().Hex(),
		DNI:           c.Person.DNI,
		Name:          c.Person.Name,
		Wallet:        c.Person.Wallet.Hex(),
		Registered:    c.Registered,
		Voted:         c.Voted,
		RegisteredSeq: seq,
	}
}

func toCitizen(dao *CitizenDao) election.Citizen {
	return election.Citizen{
		Person: election.Person{
			DNI:    dao.DNI,
			Name:   dao.Name,
			Wallet: common.HexToAddress(dao.Wallet),
		},
		Registered: dao.Registered,
		Voted:      dao.Voted,
	}
}

func toCandidateDao(e election.CandidateEntry) *CandidateDao {
	return &CandidateDao{
		DNIHash:   e.DNIHash.Hex(),
		Position:  e.Position,
		VoteCount: e.VoteCount,
	}
}

func toCandidateEntry(dao *CandidateDao) election.CandidateEntry {
	return election.CandidateEntry{
		DNIHash:   common.HexToHash(dao.DNIHash),
		Position:  dao.Position,
		VoteCount: dao.VoteCount,
	}
}

func toLogDaos(r *election.Receipt) []ElectionLogDao {
	daos := make([]ElectionLogDao, 0, len(r.Logs))
	for _, l := range r.Logs {
		dao := ElectionLogDao{
			Seq:       l.BlockNumber,
			LogIndex:  int(l.Index),
			TxHash:    l.TxHash.Hex(),
			Address:   l.Address.Hex(),
			Data:      l.Data,
			Method:    r.Method,
			Caller:    r.Caller.Hex(),
			CreatedAt: r.Timestamp,
		}
		if len(l.Topics) > 0 {
			dao.Topic0 = l.Topics[0].Hex()
		}
		if len(l.Topics) > 1 {
			topic1 := l.Topics[1].Hex()
			dao.Topic1 = &topic1
		}
		daos = append(daos, dao)
	}
	return daos
}

func toLogRecord(dao *ElectionLogDao) *LogRecord {
	topics := []common.Hash{common.HexToHash(dao.Topic0)}
	if dao.Topic1 != nil {
		topics = append(topics, common.HexToHash(*dao.Topic1))
	}
	return &LogRecord{
		Log: types.Log{
			Address:     common.HexToAddress(dao.Address),
			Topics:      topics,
			Data:        dao.Data,
			BlockNumber: dao.Seq,
			TxHash:      common.HexToHash(dao.TxHash),
			Index:       uint(dao.LogIndex),
		},
		Method:    dao.Method,
		Caller:    common.HexToAddress(dao.Caller),
		Timestamp: dao.CreatedAt,
	}
}

func walletTopic(wallet common.Address) string {
	return common.BytesToHash(wallet.Bytes()).Hex()
}
