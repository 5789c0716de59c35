package auth

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// Context keys for authentication data
type contextKey string

const (
	// ContextKeyWallet is the context key for the authenticated wallet
	ContextKeyWallet contextKey = "wallet"
	// ContextKeyAdmin marks a session whose wallet is the election admin
	ContextKeyAdmin contextKey = "admin"
)

// WithWallet adds the authenticated wallet to the context
func WithWallet(ctx context.Context, wallet common.Address) context.Context {
	return context.WithValue(ctx, ContextKeyWallet, wallet)
}

// WalletFromContext retrieves the authenticated wallet from the context
func WalletFromContext(ctx context.Context) (common.Address, bool) {
	wallet, ok := ctx.Value(ContextKeyWallet).(common.Address)
	return wallet, ok
}

// WithAdmin records whether the session belongs to the admin
func WithAdmin(ctx context.Context, admin bool) context.Context {
	return context.WithValue(ctx, ContextKeyAdmin, admin)
}

// IsAdminFromContext reports whether the session belongs to the admin
func IsAdminFromContext(ctx context.Context) bool {
	admin, _ := ctx.Value(ContextKeyAdmin).(bool)
	return admin
}
