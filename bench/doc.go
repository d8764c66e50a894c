// Package bench runs a fixed battery of timed micro-operations against any
// [group.Group] and reports the wall-clock duration of each.
//
// The battery, in order:
//
//	scalar_add   Runs*100 scalar additions
//	scalar_mul   Runs*100 scalar additions (the same loop as scalar_add)
//	point_dbl    Runs*100 point doublings starting from the generator
//	point_add    Runs*100 additions of the generator to an accumulator
//	point_mul    Runs multiplications of an accumulator by -1
//	point_ser    Runs encodings of the generator
//	point_deser  Runs decodings of the encoded generator
//
// Each item prints one line of the form "<label>: <milliseconds>ms".
// There is no warm-up and no repetition; a single pass is timed.
//
// A decoding failure aborts the run and [Runner.Run] returns an error
// wrapping [ErrDecode].
package bench
