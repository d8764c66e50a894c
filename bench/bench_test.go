package bench

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/curvebench/ed25519"
	"github.com/f3rmion/curvebench/group"
	"github.com/f3rmion/curvebench/pallas"
	"github.com/f3rmion/curvebench/ristretto"
	"github.com/f3rmion/curvebench/secp256k1"
	"github.com/f3rmion/curvebench/vesta"
)

var lineRE = regexp.MustCompile(`^([a-z_]+): (\d+)ms$`)

func parseLines(t *testing.T, out string) []string {
	t.Helper()
	var labels []string
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		m := lineRE.FindStringSubmatch(line)
		require.NotNil(t, m, "malformed line %q", line)
		labels = append(labels, m[1])
	}
	return labels
}

func TestRunAllGroups(t *testing.T) {
	groups := []group.Group{
		&ed25519.Ed25519{},
		&ristretto.Ristretto{},
		&pallas.Pallas{},
		&vesta.Vesta{},
		&secp256k1.Secp256k1{},
	}
	for _, g := range groups {
		t.Run(g.Name(), func(t *testing.T) {
			var buf bytes.Buffer
			err := New(&buf, WithRuns(1)).Run(g)
			require.NoError(t, err)
			require.Equal(t, Labels, parseLines(t, buf.String()))
		})
	}
}

func TestRunIterationCounts(t *testing.T) {
	g := &modGroup{}
	var buf bytes.Buffer
	require.NoError(t, New(&buf, WithRuns(3)).Run(g))

	assert.Equal(t, 300, g.doubles)
	assert.Equal(t, 300, g.adds)
	assert.Equal(t, 3, g.muls)
	assert.Equal(t, 3+1, g.encodes)
	assert.Equal(t, 3, g.decodes)
	assert.Equal(t, 2*300, g.scalarAdds)
	assert.Zero(t, g.scalarMuls, "scalar_mul times addition")
}

func TestRunObservesResults(t *testing.T) {
	g := &modGroup{}
	require.NoError(t, New(io.Discard, WithRuns(2)).Run(g))

	// The last loop to store a point is point_deser, which decodes G.
	require.True(t, sinkPoint.Equal(g.Generator()))
	require.Equal(t, g.Generator().Bytes(), sinkBytes)
	// 200 additions of 2.
	require.True(t, sinkScalar.Equal(g.NewScalar().SetUint64(400)))
}

func TestRunDecodeFailureAborts(t *testing.T) {
	g := &modGroup{failDecode: true}
	var buf bytes.Buffer
	err := New(&buf, WithRuns(1)).Run(g)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrDecode)
	require.Contains(t, err.Error(), "mod: point_deser")

	// Every item before point_deser printed, point_deser did not.
	require.Equal(t, Labels[:len(Labels)-1], parseLines(t, buf.String()))
}

func TestMarkFormatsMilliseconds(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	clock := time.Unix(0, 0)
	r.now = func() time.Time {
		clock = clock.Add(1500 * time.Microsecond)
		return clock
	}

	require.NoError(t, r.mark("test", "op", func() error { return nil }))
	require.Equal(t, "op: 1ms\n", buf.String())
}

func TestMarkPropagatesError(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("boom")
	err := New(&buf).mark("test", "op", func() error { return boom })
	require.ErrorIs(t, err, boom)
	require.Empty(t, buf.String())
}

func TestRunLogsBatteries(t *testing.T) {
	var log bytes.Buffer
	logger := zerolog.New(&log).Level(zerolog.DebugLevel)
	require.NoError(t, New(io.Discard, WithRuns(1), WithLogger(logger)).Run(&modGroup{}))

	var ops []string
	for _, line := range strings.Split(strings.TrimRight(log.String(), "\n"), "\n") {
		var ev struct {
			Level   string `json:"level"`
			Group   string `json:"group"`
			Op      string `json:"op"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal([]byte(line), &ev), line)
		require.Equal(t, "debug", ev.Level)
		require.Equal(t, "mod", ev.Group)
		require.Equal(t, "battery finished", ev.Message)
		ops = append(ops, ev.Op)
	}
	require.Equal(t, Labels, ops)
}

func TestRunInfoLoggerDropsBatteryEvents(t *testing.T) {
	var log bytes.Buffer
	logger := zerolog.New(&log).Level(zerolog.InfoLevel)
	require.NoError(t, New(io.Discard, WithRuns(1), WithLogger(logger)).Run(&modGroup{}))
	require.Empty(t, log.String())
}

// modOrder is the order of the additive toy group Z/modOrder.
const modOrder = 65521

// modGroup is the additive group of integers modulo a small prime, with
// generator 1. It counts operations so tests can check loop bounds.
type modGroup struct {
	failDecode bool

	scalarAdds, scalarMuls int
	adds, doubles, muls    int
	encodes, decodes       int
}

type modScalar struct {
	g *modGroup
	v uint64
}

func (s *modScalar) Add(a, b group.Scalar) group.Scalar {
	s.g.scalarAdds++
	s.v = (a.(*modScalar).v + b.(*modScalar).v) % modOrder
	return s
}

func (s *modScalar) Sub(a, b group.Scalar) group.Scalar {
	s.v = (a.(*modScalar).v + modOrder - b.(*modScalar).v) % modOrder
	return s
}

func (s *modScalar) Mul(a, b group.Scalar) group.Scalar {
	s.g.scalarMuls++
	s.v = a.(*modScalar).v * b.(*modScalar).v % modOrder
	return s
}

func (s *modScalar) Negate(a group.Scalar) group.Scalar {
	s.v = (modOrder - a.(*modScalar).v) % modOrder
	return s
}

func (s *modScalar) Set(a group.Scalar) group.Scalar {
	s.v = a.(*modScalar).v
	return s
}

func (s *modScalar) SetUint64(v uint64) group.Scalar {
	s.v = v % modOrder
	return s
}

func (s *modScalar) Bytes() []byte {
	return binary.BigEndian.AppendUint64(nil, s.v)
}

func (s *modScalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != 8 {
		return nil, fmt.Errorf("bad length %d", len(data))
	}
	v := binary.BigEndian.Uint64(data)
	if v >= modOrder {
		return nil, errors.New("out of range")
	}
	s.v = v
	return s, nil
}

func (s *modScalar) Equal(b group.Scalar) bool { return s.v == b.(*modScalar).v }
func (s *modScalar) IsZero() bool              { return s.v == 0 }

type modPoint struct {
	g *modGroup
	v uint64
}

func (p *modPoint) Add(a, b group.Point) group.Point {
	p.g.adds++
	p.v = (a.(*modPoint).v + b.(*modPoint).v) % modOrder
	return p
}

func (p *modPoint) Sub(a, b group.Point) group.Point {
	p.v = (a.(*modPoint).v + modOrder - b.(*modPoint).v) % modOrder
	return p
}

func (p *modPoint) Negate(a group.Point) group.Point {
	p.v = (modOrder - a.(*modPoint).v) % modOrder
	return p
}

func (p *modPoint) Double(a group.Point) group.Point {
	p.g.doubles++
	p.v = 2 * a.(*modPoint).v % modOrder
	return p
}

func (p *modPoint) ScalarMult(s group.Scalar, q group.Point) group.Point {
	p.g.muls++
	p.v = s.(*modScalar).v * q.(*modPoint).v % modOrder
	return p
}

func (p *modPoint) Set(a group.Point) group.Point {
	p.v = a.(*modPoint).v
	return p
}

func (p *modPoint) Bytes() []byte {
	p.g.encodes++
	return binary.BigEndian.AppendUint64(nil, p.v)
}

func (p *modPoint) SetBytes(data []byte) (group.Point, error) {
	p.g.decodes++
	if p.g.failDecode {
		return nil, errors.New("rejected")
	}
	if len(data) != 8 {
		return nil, fmt.Errorf("bad length %d", len(data))
	}
	v := binary.BigEndian.Uint64(data)
	if v >= modOrder {
		return nil, errors.New("out of range")
	}
	p.v = v
	return p, nil
}

func (p *modPoint) Equal(b group.Point) bool { return p.v == b.(*modPoint).v }
func (p *modPoint) IsIdentity() bool         { return p.v == 0 }

func (g *modGroup) Name() string            { return "mod" }
func (g *modGroup) NewScalar() group.Scalar { return &modScalar{g: g} }
func (g *modGroup) NewPoint() group.Point   { return &modPoint{g: g} }
func (g *modGroup) Generator() group.Point  { return &modPoint{g: g, v: 1} }

func (g *modGroup) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	return &modScalar{g: g, v: binary.BigEndian.Uint64(buf[:]) % modOrder}, nil
}
