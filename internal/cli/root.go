// Package cli implements democracyctl, the command line client of the registry server.
package cli

import (
	"bufio"
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/democracychain/democracy-chain/pkg/client"
	"github.com/democracychain/democracy-chain/pkg/keys"
)

const (
	envServer     = "DEMOCRACY_SERVER"
	envPrivateKey = "DEMOCRACY_PRIVATE_KEY"
	envToken      = "DEMOCRACY_TOKEN"

	defaultServer = "http://localhost:8080"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type options struct {
	server string
	key    string
	token  string
}

// NewRootCommand builds the democracyctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "democracyctl",
		Short:         "Register, run for office and vote in a DemocracyChain election",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.server, "server", envOr(envServer, defaultServer),
		"registry server URL (env "+envServer+")")
	root.PersistentFlags().StringVar(&opts.key, "key", "",
		"hex wallet private key (env "+envPrivateKey+", prompted when unset)")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv(envToken),
		"session token from a previous login (env "+envToken+")")

	root.AddCommand(
		newLoginCommand(opts),
		newRegisterCommand(opts),
		newCandidateCommand(opts),
		newVoteCommand(opts),
		newCitizenCommand(opts),
		newCandidateInfoCommand(opts),
		newCandidatesCommand(opts),
		newResultsCommand(opts),
		newWatchCommand(opts),
		newABICommand(opts),
	)
	return root
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// privateKey resolves the wallet key from --key, the environment or a terminal prompt.
func (o *options) privateKey(cmd *cobra.Command) (*ecdsa.PrivateKey, error) {
	raw := o.key
	if raw == "" {
		raw = os.Getenv(envPrivateKey)
	}
	if raw == "" {
		var err error
		if raw, err = promptKey(cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
			return nil, err
		}
	}
	return keys.PrivateKeyFromHex(raw)
}

func promptKey(in io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, "Enter wallet private key: ")
	defer fmt.Fprintln(w)

	if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd())) {
		key, err := readPassword(int(f.Fd()))
		if err != nil {
			return "", fmt.Errorf("failed to read private key: %w", err)
		}
		return string(key), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read private key: %w", err)
	}
	if line = strings.TrimSpace(line); line == "" {
		return "", errors.New("no private key provided")
	}
	return line, nil
}

// wallet returns the address of the configured key.
func (o *options) wallet(cmd *cobra.Command) (common.Address, error) {
	key, err := o.privateKey(cmd)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// anonymous returns a client without a session.
func (o *options) anonymous() *client.Client {
	return client.New(o.server)
}

// session returns a client holding a session: the --token one, or a fresh
// login with the wallet key.
func (o *options) session(ctx context.Context, cmd *cobra.Command) (*client.Client, error) {
	if o.token != "" {
		return client.New(o.server, client.WithToken(o.token)), nil
	}
	key, err := o.privateKey(cmd)
	if err != nil {
		return nil, err
	}
	c := client.New(o.server)
	if _, err := c.Login(ctx, key); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return c, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
