// Package commands defines the curvebench CLI.
//
// The root command takes no arguments. It prints a banner, then runs the
// benchmark battery for Ed25519, Ristretto, Pallas, Vesta and secp256k1
// in that order, each preceded by a heading line. Results go to stdout;
// the only log output, on stderr, is the error that aborts a run.
//
// The command logs at info level, so the runner's per-battery debug events
// ("battery finished") are discarded. They only appear when a caller
// passes a debug-level logger through [bench.WithLogger].
package commands
