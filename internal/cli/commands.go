package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/democracychain/democracy-chain/pkg/auth"
	"github.com/democracychain/democracy-chain/pkg/contractinfo"
	"github.com/democracychain/democracy-chain/pkg/election/service"
)

func newLoginCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign a login challenge and print the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := opts.privateKey(cmd)
			if err != nil {
				return err
			}
			resp, err := opts.anonymous().Login(cmd.Context(), key)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s until %s\n", resp.Address.Hex(), resp.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
			fmt.Fprintf(cmd.OutOrStdout(), "export %s=%s\n", envToken, resp.Token)
			return nil
		},
	}
}

func newRegisterCommand(opts *options) *cobra.Command {
	var dni, name string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register the wallet as a citizen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.session(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			tx, err := c.RegisterCitizen(cmd.Context(), dni, name)
			if err != nil {
				return err
			}
			return printTx(cmd, tx)
		},
	}
	cmd.Flags().StringVar(&dni, "dni", "", "national identity document number")
	cmd.Flags().StringVar(&name, "name", "", "full name")
	_ = cmd.MarkFlagRequired("dni")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newCandidateCommand(opts *options) *cobra.Command {
	var dni, name string
	cmd := &cobra.Command{
		Use:   "candidate",
		Short: "Run for office; with --dni and --name the wallet is registered first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (dni == "") != (name == "") {
				return errors.New("--dni and --name must be given together")
			}
			c, err := opts.session(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			var tx *service.TxResponse
			if dni != "" {
				tx, err = c.AddCitizenCandidate(cmd.Context(), dni, name)
			} else {
				tx, err = c.AddCandidate(cmd.Context())
			}
			if err != nil {
				return err
			}
			return printTx(cmd, tx)
		},
	}
	cmd.Flags().StringVar(&dni, "dni", "", "national identity document number")
	cmd.Flags().StringVar(&name, "name", "", "full name")
	return cmd
}

func newVoteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "vote <candidate-dni>",
		Short: "Vote for the candidate registered under a DNI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.session(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			tx, err := c.Vote(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printTx(cmd, tx)
		},
	}
}

func newCitizenCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "citizen [wallet]",
		Short: "Show the citizen bound to a wallet, by default the configured one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				wallet common.Address
				err    error
			)
			if len(args) == 1 {
				wallet, err = auth.ParseAddress(args[0])
			} else {
				wallet, err = opts.wallet(cmd)
			}
			if err != nil {
				return err
			}
			citizen, err := opts.anonymous().GetCitizen(cmd.Context(), wallet)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), citizen)
		},
	}
}

func newCandidateInfoCommand(opts *options) *cobra.Command {
	var byIndex bool
	cmd := &cobra.Command{
		Use:   "candidate-info <dni|index>",
		Short: "Show a candidate by DNI, or by declaration index with --index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.anonymous()
			if !byIndex {
				candidate, err := c.GetCandidate(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), candidate)
			}

			index, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}
			candidate, err := c.GetCandidateByIndex(cmd.Context(), index)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), candidate)
		},
	}
	cmd.Flags().BoolVar(&byIndex, "index", false, "treat the argument as a declaration index")
	return cmd
}

func newResultsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "results",
		Short: "Show the current tally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, err := opts.anonymous().Results(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Phase: %s  Total votes: %d\n", results.Phase, results.TotalVotes)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tDNI\tNAME\tVOTES\tSHARE")
			for _, c := range results.Candidates {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s%%\n", c.Position, c.DNI, c.Name, c.Votes, c.Share.StringFixed(2))
			}
			return tw.Flush()
		},
	}
}

func newABICommand(opts *options) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "abi",
		Short: "Fetch the registry ABI and print its SHA-256 checksum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := opts.anonymous()
			raw, err := c.ABI(cmd.Context())
			if err != nil {
				return err
			}
			addr, err := c.Address(cmd.Context())
			if err != nil {
				return err
			}
			if outPath != "" {
				if err := os.WriteFile(outPath, raw, 0o644); err != nil {
					return fmt.Errorf("failed to write ABI: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Address:  %s\n", addr.Address.Hex())
			fmt.Fprintf(out, "Network:  %s\n", addr.Network)
			fmt.Fprintf(out, "Checksum: %s\n", contractinfo.Checksum(raw))
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "also write the ABI to this file")
	return cmd
}

func printTx(cmd *cobra.Command, tx *service.TxResponse) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s accepted: tx %s seq %d\n", tx.Method, tx.TxHash.Hex(), tx.Seq)
	for _, ev := range tx.Events {
		fmt.Fprintf(out, "  %s %+v\n", ev.Event, ev.Args)
	}
	return nil
}
