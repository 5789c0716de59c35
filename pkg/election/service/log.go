package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	apperrors "github.com/democracychain/democracy-chain/pkg/app/errors"
	"github.com/democracychain/democracy-chain/pkg/election"
)

const serviceName = "ElectionService"

const dniDisplaySize = 4

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the election Service.
// Mutations are logged at info level with the caller and the resulting sequence;
// reads are logged at debug level. DNIs are redacted.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Info(ctx context.Context) (info *Info, err error) {
	defer ls.done(zapcore.DebugLevel, "Info", time.Now(), &err)
	return ls.svc.Info(ctx)
}

// RegisterCitizen wraps the service method with logging
func (ls *logService) RegisterCitizen(
	ctx context.Context,
	caller common.Address,
	req *CitizenRequest,
) (resp *TxResponse, err error) {
	ls.started("RegisterCitizen", caller, zap.String("dni", redactDNI(req.DNI)))
	defer ls.mutated("RegisterCitizen", time.Now(), &resp, &err)
	return ls.svc.RegisterCitizen(ctx, caller, req)
}

// AddCitizenCandidate wraps the service method with logging
func (ls *logService) AddCitizenCandidate(
	ctx context.Context,
	caller common.Address,
	req *CitizenRequest,
) (resp *TxResponse, err error) {
	ls.started("AddCitizenCandidate", caller, zap.String("dni", redactDNI(req.DNI)))
	defer ls.mutated("AddCitizenCandidate", time.Now(), &resp, &err)
	return ls.svc.AddCitizenCandidate(ctx, caller, req)
}

// AddCandidate wraps the service method with logging
func (ls *logService) AddCandidate(ctx context.Context, caller common.Address) (resp *TxResponse, err error) {
	ls.started("AddCandidate", caller)
	defer ls.mutated("AddCandidate", time.Now(), &resp, &err)
	return ls.svc.AddCandidate(ctx, caller)
}

// Vote wraps the service method with logging. The chosen candidate is not logged.
func (ls *logService) Vote(ctx context.Context, caller common.Address, req *VoteRequest) (resp *TxResponse, err error) {
	ls.started("Vote", caller)
	defer ls.mutated("Vote", time.Now(), &resp, &err)
	return ls.svc.Vote(ctx, caller, req)
}

func (ls *logService) GetCitizen(ctx context.Context, wallet common.Address) (c *election.Citizen, err error) {
	defer ls.done(zapcore.DebugLevel, "GetCitizen", time.Now(), &err, zap.String("wallet", wallet.Hex()))
	return ls.svc.GetCitizen(ctx, wallet)
}

func (ls *logService) GetCandidate(ctx context.Context, dni string) (c *election.Candidate, err error) {
	defer ls.done(zapcore.DebugLevel, "GetCandidate", time.Now(), &err, zap.String("dni", redactDNI(dni)))
	return ls.svc.GetCandidate(ctx, dni)
}

func (ls *logService) GetCandidateByIndex(ctx context.Context, index uint64) (c *election.Candidate, err error) {
	defer ls.done(zapcore.DebugLevel, "GetCandidateByIndex", time.Now(), &err, zap.Uint64("index", index))
	return ls.svc.GetCandidateByIndex(ctx, index)
}

func (ls *logService) GetCandidateCount(ctx context.Context) (n uint64, err error) {
	defer ls.done(zapcore.DebugLevel, "GetCandidateCount", time.Now(), &err)
	return ls.svc.GetCandidateCount(ctx)
}

func (ls *logService) WalletToDNI(ctx context.Context, wallet common.Address) (h common.Hash, err error) {
	defer ls.done(zapcore.DebugLevel, "WalletToDNI", time.Now(), &err, zap.String("wallet", wallet.Hex()))
	return ls.svc.WalletToDNI(ctx, wallet)
}

// ListCitizens wraps the service method with logging
func (ls *logService) ListCitizens(ctx context.Context, caller common.Address) (list []election.Citizen, err error) {
	defer ls.done(zapcore.InfoLevel, "ListCitizens", time.Now(), &err, zap.String("caller", caller.Hex()))
	return ls.svc.ListCitizens(ctx, caller)
}

func (ls *logService) Results(ctx context.Context) (res *Results, err error) {
	defer ls.done(zapcore.DebugLevel, "Results", time.Now(), &err)
	return ls.svc.Results(ctx)
}

func (ls *logService) Logs(ctx context.Context, filter *LogFilter) (entries []*LogEntry, err error) {
	defer ls.done(zapcore.DebugLevel, "Logs", time.Now(), &err)
	return ls.svc.Logs(ctx, filter)
}

func (ls *logService) started(method string, caller common.Address, fields ...zap.Field) {
	ls.logger.Info(method+" started", append([]zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.String("caller", caller.Hex()),
	}, fields...)...)
}

func (ls *logService) mutated(method string, start time.Time, resp **TxResponse, err *error) {
	duration := time.Since(start)

	if *err != nil {
		ls.failed(method, duration, *err)
		return
	}

	ls.logger.Info(method+" completed",
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Uint64("seq", (*resp).Seq),
		zap.String("tx_hash", (*resp).TxHash.Hex()),
		zap.Int("events", len((*resp).Events)),
		zap.Duration("duration", duration),
	)
}

func (ls *logService) done(level zapcore.Level, method string, start time.Time, err *error, fields ...zap.Field) {
	duration := time.Since(start)

	if *err != nil {
		ls.failed(method, duration, *err, fields...)
		return
	}

	ls.logger.Log(level, method+" completed", append([]zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", duration),
	}, fields...)...)
}

// failed logs client errors at warn and everything else at error level.
func (ls *logService) failed(method string, duration time.Duration, err error, fields ...zap.Field) {
	level := zapcore.WarnLevel
	if apperrors.IsInternalError(err) {
		level = zapcore.ErrorLevel
	}
	ls.logger.Log(level, method+" failed", append([]zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", duration),
		zap.Error(err),
	}, fields...)...)
}

// redactDNI keeps only the last few characters of a DNI
func redactDNI(dni string) string {
	if len(dni) <= dniDisplaySize {
		return "***"
	}
	return "***" + dni[len(dni)-dniDisplaySize:]
}
