package hostops_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/ovum-lang/oiljit/hostops"
	"github.com/ovum-lang/oiljit/lower"
	"github.com/stretchr/testify/require"
)

// fakeStack is an in-memory StackAccess backed by two LIFO slices, enough
// to drive handler tests without a compiled OIL program or real machine
// code.
type fakeStack struct {
	ints    []uint64
	strings []string
}

func (s *fakeStack) PushUint64(v uint64) { s.ints = append(s.ints, v) }
func (s *fakeStack) PushString(v string) { s.strings = append(s.strings, v) }

func (s *fakeStack) PopUint64() uint64 {
	v := s.ints[len(s.ints)-1]
	s.ints = s.ints[:len(s.ints)-1]
	return v
}

func (s *fakeStack) PopString() string {
	v := s.strings[len(s.strings)-1]
	s.strings = s.strings[:len(s.strings)-1]
	return v
}

type builderWriter struct{ strings.Builder }

func (b *builderWriter) WriteString(s string) (int, error) { return b.Builder.WriteString(s) }

type canned struct{ lines []string }

func (c *canned) ReadLine() (string, error) {
	line := c.lines[0]
	c.lines = c.lines[1:]
	return line, nil
}

func newTestManager() (*hostops.Manager, *builderWriter) {
	m := hostops.NewManager()
	out := &builderWriter{}
	m.Stdout = out
	m.Rand = rand.New(rand.NewSource(42))
	m.Names = []string{"greet", "counter"}
	return m, out
}

func TestFloatSqrt(t *testing.T) {
	m, _ := newTestManager()
	s := &fakeStack{ints: []uint64{math.Float64bits(16.0)}}
	require.NoError(t, m.Dispatch(s, lower.OpFloatSqrt))
	require.Equal(t, 4.0, math.Float64frombits(s.ints[len(s.ints)-1]))
}

func TestPrintAndPrintLine(t *testing.T) {
	m, out := newTestManager()
	s := &fakeStack{strings: []string{"hello"}}
	require.NoError(t, m.Dispatch(s, lower.OpPrint))
	s.strings = []string{"world"}
	require.NoError(t, m.Dispatch(s, lower.OpPrintLine))
	require.Equal(t, "helloworld\n", out.String())
}

func TestPushStringInterned(t *testing.T) {
	m, _ := newTestManager()
	s := &fakeStack{ints: []uint64{1}}
	require.NoError(t, m.Dispatch(s, lower.OpPushString))
	require.Equal(t, "counter", s.strings[len(s.strings)-1])
}

func TestPushStringOutOfRange(t *testing.T) {
	m, _ := newTestManager()
	s := &fakeStack{ints: []uint64{99}}
	require.Error(t, m.Dispatch(s, lower.OpPushString))
}

func TestStringConcat(t *testing.T) {
	m, _ := newTestManager()
	s := &fakeStack{strings: []string{"foo", "bar"}}
	require.NoError(t, m.Dispatch(s, lower.OpStringConcat))
	require.Equal(t, "foobar", s.strings[len(s.strings)-1])
}

func TestIntToStringRoundTrip(t *testing.T) {
	m, _ := newTestManager()
	s := &fakeStack{ints: []uint64{uint64(42)}}
	require.NoError(t, m.Dispatch(s, lower.OpIntToString))
	require.Equal(t, "42", s.strings[len(s.strings)-1])
	s.strings = []string{"42"}
	require.NoError(t, m.Dispatch(s, lower.OpStringToInt))
	require.Equal(t, uint64(42), s.ints[len(s.ints)-1])
}

func TestMemoryArenaRoundTrip(t *testing.T) {
	m, _ := newTestManager()
	s := &fakeStack{ints: []uint64{8}}
	require.NoError(t, m.Dispatch(s, lower.OpAllocate))
	handle := s.ints[len(s.ints)-1]

	s.ints = []uint64{handle, 0xAB, 8}
	require.NoError(t, m.Dispatch(s, lower.OpMemSet))

	s.ints = []uint64{8}
	require.NoError(t, m.Dispatch(s, lower.OpAllocate))
	dstHandle := s.ints[len(s.ints)-1]

	s.ints = []uint64{handle, dstHandle, 8}
	require.NoError(t, m.Dispatch(s, lower.OpMemCopy))

	s.ints = []uint64{dstHandle}
	require.NoError(t, m.Dispatch(s, lower.OpFree))
}

func TestCallFamilyReportsUnbound(t *testing.T) {
	m, _ := newTestManager()
	s := &fakeStack{ints: []uint64{0}}
	err := m.Dispatch(s, lower.OpCall)
	require.Error(t, err)
	require.Contains(t, err.Error(), "greet")
}

func TestReadLine(t *testing.T) {
	m, _ := newTestManager()
	m.Stdin = &canned{lines: []string{"typed input"}}
	s := &fakeStack{}
	require.NoError(t, m.Dispatch(s, lower.OpReadLine))
	require.Equal(t, "typed input", s.strings[len(s.strings)-1])
}

func TestUnknownOpCode(t *testing.T) {
	m, _ := newTestManager()
	s := &fakeStack{}
	require.Error(t, m.Dispatch(s, lower.OpCode(9999)))
}
