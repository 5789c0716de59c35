package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/democracychain/democracy-chain/pkg/ethereum"
)

const rpcPath = "/rpc"

// chainClient reads the registry through the server's JSON-RPC endpoint.
func (o *options) chainClient(ctx context.Context, interval time.Duration) (*ethereum.Client, error) {
	addr, err := o.anonymous().Address(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve registry address: %w", err)
	}
	return ethereum.NewClient(ctx, ethereum.Config{
		RPCURL:          strings.TrimRight(o.server, "/") + rpcPath,
		Registry:        addr.Address,
		PollingInterval: interval,
	}, zap.NewNop())
}

func newCandidatesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "candidates",
		Short: "List every candidate with its vote count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			chain, err := opts.chainClient(cmd.Context(), 0)
			if err != nil {
				return err
			}
			defer chain.Close()

			candidates, err := chain.Candidates(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, c := range candidates {
				fmt.Fprintf(out, "%d. %s (%s) %s votes=%d\n",
					i, c.Citizen.Person.Name, c.Citizen.Person.DNI, c.Citizen.Person.Wallet.Hex(), c.VoteCount)
			}
			if len(candidates) == 0 {
				fmt.Fprintln(out, "No candidates yet")
			}
			return nil
		},
	}
}

func newWatchCommand(opts *options) *cobra.Command {
	var (
		interval time.Duration
		from     uint64
	)
	cmd := &cobra.Command{
		Use:   "watch-votes",
		Short: "Print votes as they are cast until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			chain, err := opts.chainClient(ctx, interval)
			if err != nil {
				return err
			}
			defer chain.Close()

			out := cmd.OutOrStdout()
			err = chain.WatchVoteEvents(ctx, from, func(ev *ethereum.VoteEvent) error {
				_, err := fmt.Fprintf(out, "block %d: %s voted for %s\n", ev.BlockNumber, ev.Voter.Hex(), ev.DNI)
				return err
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 5*time.Second, "polling interval")
	cmd.Flags().Uint64Var(&from, "from", 0, "report votes after this block")
	return cmd
}
