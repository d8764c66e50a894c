package bench

import "github.com/f3rmion/curvebench/group"

// Results of every timed loop are stored here so the compiler cannot
// prove the loops dead.
var (
	sinkScalar group.Scalar
	sinkPoint  group.Point
	sinkBytes  []byte
)

//go:noinline
func observeScalar(s group.Scalar) { sinkScalar = s }

//go:noinline
func observePoint(p group.Point) { sinkPoint = p }

//go:noinline
func observeBytes(b []byte) { sinkBytes = b }
