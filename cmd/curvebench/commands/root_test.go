package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f3rmion/curvebench/bench"
)

func TestTargetsOrder(t *testing.T) {
	var names []string
	for _, tgt := range Targets() {
		names = append(names, tgt.Group.Name())
	}
	require.Equal(t, []string{"Ed25519", "Ristretto", "Pallas", "Vesta", "secp256k1"}, names)
	require.Equal(t, Banner, Targets()[0].Heading)
}

func TestRunAll(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runAll(&buf, Targets(), bench.WithRuns(1)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Banner, 7 results, then per group a blank line, a heading and 7 results.
	require.Len(t, lines, 1+7+4*(2+7))
	require.Equal(t, Banner, lines[0])

	for i, heading := range []string{"Ristretto", "Pallas", "Vesta", "secp256k1"} {
		base := 8 + i*9
		require.Equal(t, "\r", lines[base])
		require.Equal(t, heading, lines[base+1])
		for j, label := range bench.Labels {
			require.True(t, strings.HasPrefix(lines[base+2+j], label+": "), lines[base+2+j])
		}
	}
}

func TestLoggerDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf)
	logger.Debug().Msg("battery finished")
	require.Empty(t, buf.String())

	logger.Error().Msg("benchmark aborted")
	require.Contains(t, buf.String(), "benchmark aborted")
}

func TestRootRejectsArgs(t *testing.T) {
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"extra"})
	require.Error(t, cmd.Execute())
	require.Empty(t, out.String())
}
