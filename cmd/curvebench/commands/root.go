package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/f3rmion/curvebench/bench"
	"github.com/f3rmion/curvebench/ed25519"
	"github.com/f3rmion/curvebench/group"
	"github.com/f3rmion/curvebench/pallas"
	"github.com/f3rmion/curvebench/ristretto"
	"github.com/f3rmion/curvebench/secp256k1"
	"github.com/f3rmion/curvebench/vesta"
)

// Banner precedes the first group's results.
const Banner = "Ed25519. Point doubling is implemented via addition. " +
	"deser will check if it's prime order and accordingly be significantly slower."

// Target is a group benchmarked by the command, with the heading printed
// before its results.
type Target struct {
	Heading string
	Group   group.Group
}

// Targets returns the benchmarked groups in output order.
func Targets() []Target {
	return []Target{
		{Banner, &ed25519.Ed25519{}},
		{"Ristretto", &ristretto.Ristretto{}},
		{"Pallas", &pallas.Pallas{}},
		{"Vesta", &vesta.Vesta{}},
		{"secp256k1", &secp256k1.Secp256k1{}},
	}
}

// runAll prints each heading and runs the battery for its group. The
// first failure stops the run.
func runAll(w io.Writer, targets []Target, opts ...bench.Option) error {
	runner := bench.New(w, opts...)
	for i, t := range targets {
		if i > 0 {
			// Blank separator line, CRLF as the reference output has it.
			fmt.Fprint(w, "\r\n")
		}
		fmt.Fprintln(w, t.Heading)
		if err := runner.Run(t.Group); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}

func rootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "curvebench",
		Short:         "Time basic group operations across elliptic curve libraries",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr())
			err := runAll(cmd.OutOrStdout(), Targets(), bench.WithLogger(logger))
			if err != nil {
				logger.Error().Err(err).Msg("benchmark aborted")
			}
			return err
		},
	}
}

// Execute runs the root command with os.Args.
func Execute() error {
	root := rootCmd()
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	return root.Execute()
}
