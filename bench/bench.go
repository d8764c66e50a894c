package bench

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/f3rmion/curvebench/group"
)

// Runs is the base iteration count. The cheap operations run Runs*100
// times, scalar multiplication and (de)serialization run Runs times.
const Runs = 100000

// Battery labels, in the order Run executes them.
const (
	LabelScalarAdd  = "scalar_add"
	LabelScalarMul  = "scalar_mul"
	LabelPointDbl   = "point_dbl"
	LabelPointAdd   = "point_add"
	LabelPointMul   = "point_mul"
	LabelPointSer   = "point_ser"
	LabelPointDeser = "point_deser"
)

// Labels lists the battery labels in execution order.
var Labels = []string{
	LabelScalarAdd,
	LabelScalarMul,
	LabelPointDbl,
	LabelPointAdd,
	LabelPointMul,
	LabelPointSer,
	LabelPointDeser,
}

// ErrDecode is returned by Run when a serialized generator fails to
// decode during the point_deser battery.
var ErrDecode = errors.New("point deserialization failed")

// Runner times the battery of group operations and writes one line per
// battery item to its writer.
type Runner struct {
	w      io.Writer
	runs   int
	logger zerolog.Logger
	now    func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithRuns overrides the base iteration count.
func WithRuns(n int) Option {
	return func(r *Runner) { r.runs = n }
}

// WithLogger sets the logger used for per-battery debug events. Each
// finished battery emits one debug-level "battery finished" event with
// group, op and elapsed fields; a logger above debug level drops them.
// The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// New returns a Runner writing results to w.
func New(w io.Writer, opts ...Option) *Runner {
	r := &Runner{
		w:      w,
		runs:   Runs,
		logger: zerolog.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every battery item against g in order. It stops at the
// first failure; the only operation that can fail is point decoding.
func (r *Runner) Run(g group.Group) error {
	batteries := []struct {
		label string
		fn    func(group.Group) error
	}{
		{LabelScalarAdd, r.scalarAdd},
		// Times the same addition loop as scalar_add.
		{LabelScalarMul, r.scalarAdd},
		{LabelPointDbl, r.pointDbl},
		{LabelPointAdd, r.pointAdd},
		{LabelPointMul, r.pointMul},
		{LabelPointSer, r.pointSer},
		{LabelPointDeser, r.pointDeser},
	}
	for _, b := range batteries {
		fn := b.fn
		if err := r.mark(g.Name(), b.label, func() error { return fn(g) }); err != nil {
			return fmt.Errorf("%s: %s: %w", g.Name(), b.label, err)
		}
	}
	return nil
}

// mark runs f and prints the wall-clock time it took. Nothing is printed
// if f fails.
func (r *Runner) mark(name, label string, f func() error) error {
	start := r.now()
	if err := f(); err != nil {
		return err
	}
	elapsed := r.now().Sub(start)

	r.logger.Debug().
		Str("group", name).
		Str("op", label).
		Dur("elapsed", elapsed).
		Msg("battery finished")

	_, err := fmt.Fprintf(r.w, "%s: %dms\n", label, elapsed.Milliseconds())
	return err
}

func (r *Runner) scalarAdd(g group.Group) error {
	two := g.NewScalar().SetUint64(2)
	sum := g.NewScalar()
	for i := 0; i < r.runs*100; i++ {
		sum.Add(sum, two)
	}
	observeScalar(sum)
	return nil
}

func (r *Runner) pointDbl(g group.Group) error {
	sum := g.Generator()
	for i := 0; i < r.runs*100; i++ {
		sum.Double(sum)
	}
	observePoint(sum)
	return nil
}

func (r *Runner) pointAdd(g group.Group) error {
	gen := g.Generator()
	sum := g.NewPoint()
	for i := 0; i < r.runs*100; i++ {
		sum.Add(sum, gen)
	}
	observePoint(sum)
	return nil
}

func (r *Runner) pointMul(g group.Group) error {
	scalar := g.NewScalar().Sub(g.NewScalar(), g.NewScalar().SetUint64(1))
	sum := g.Generator()
	for i := 0; i < r.runs; i++ {
		sum.ScalarMult(scalar, sum)
	}
	observePoint(sum)
	return nil
}

func (r *Runner) pointSer(g group.Group) error {
	gen := g.Generator()
	for i := 0; i < r.runs; i++ {
		observeBytes(gen.Bytes())
	}
	return nil
}

func (r *Runner) pointDeser(g group.Group) error {
	ser := g.Generator().Bytes()
	dst := g.NewPoint()
	for i := 0; i < r.runs; i++ {
		p, err := dst.SetBytes(ser)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrDecode, err)
		}
		observePoint(p)
	}
	return nil
}
