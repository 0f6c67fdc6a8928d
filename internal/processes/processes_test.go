package processes

import (
	"context"
	"sync"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records every command instead of executing it.
type fakeRunner struct {
	runs   [][]string
	starts [][]string
	mu     sync.Mutex
}

func (f *fakeRunner) Run(_ context.Context, _ StartOptions, name string, args ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs = append(f.runs, append([]string{name}, args...))
	return nil
}

func (f *fakeRunner) Start(_ context.Context, _ StartOptions, name string, args ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.starts = append(f.starts, append([]string{name}, args...))
	return nil
}

// scriptedLister replays a fixed sequence of Running answers; the last
// answer repeats once the script is exhausted.
type scriptedLister struct {
	answers []bool
	calls   int
	mu      sync.Mutex
}

func (s *scriptedLister) Running(string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	s.calls++
	if i >= len(s.answers) {
		i = len(s.answers) - 1
	}
	return s.answers[i], nil
}

type exitRecorder struct {
	codes []int
	mu    sync.Mutex
}

func (e *exitRecorder) exit(code int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.codes = append(e.codes, code)
}

func newTestOrchestrator(lister Lister, clock clockwork.Clock) (*Orchestrator, *fakeRunner, *exitRecorder) {
	runner := &fakeRunner{}
	exits := &exitRecorder{}
	o := &Orchestrator{
		exePath:  "steam.exe",
		procName: "steam.exe",
		runner:   runner,
		lister:   lister,
		clock:    clock,
		exit:     exits.exit,
	}
	return o, runner, exits
}

func TestRestart_ClientNotRunningSpawnsImmediately(t *testing.T) {
	t.Parallel()

	lister := &scriptedLister{answers: []bool{false}}
	o, runner, exits := newTestOrchestrator(lister, clockwork.NewRealClock())

	require.NoError(t, o.Restart([]string{"-applaunch", "440"}, false))

	assert.Empty(t, runner.runs, "no exit request when the client was not running")
	require.Len(t, runner.starts, 1)
	assert.Equal(t, []string{"steam.exe", "-applaunch", "440"}, runner.starts[0])
	assert.Empty(t, exits.codes)
}

func TestRestart_EmptyArgsIsPlainRestart(t *testing.T) {
	t.Parallel()

	lister := &scriptedLister{answers: []bool{false}}
	o, runner, _ := newTestOrchestrator(lister, clockwork.NewRealClock())

	require.NoError(t, o.Restart(nil, false))

	require.Len(t, runner.starts, 1)
	assert.Equal(t, []string{"steam.exe"}, runner.starts[0])
}

func TestRestart_ExitHostAfterSpawn(t *testing.T) {
	t.Parallel()

	lister := &scriptedLister{answers: []bool{false}}
	o, runner, exits := newTestOrchestrator(lister, clockwork.NewRealClock())

	require.NoError(t, o.Restart(nil, true))

	require.Len(t, runner.starts, 1)
	assert.Equal(t, []int{0}, exits.codes)
}

func TestRestart_WaitsOutGracefulShutdown(t *testing.T) {
	t.Parallel()

	// Running at the initial check and for two polls, gone on the third.
	lister := &scriptedLister{answers: []bool{true, true, true, false}}
	clk := clockwork.NewFakeClock()
	o, runner, _ := newTestOrchestrator(lister, clk)

	errCh := make(chan error, 1)
	go func() { errCh <- o.Restart([]string{"-applaunch", "440"}, false) }()

	for range 3 {
		clk.BlockUntil(1)
		clk.Advance(pollInterval)
	}
	require.NoError(t, <-errCh)

	require.Len(t, runner.runs, 1)
	assert.Equal(t, []string{"steam.exe", "-exitsteam"}, runner.runs[0])
	require.Len(t, runner.starts, 1)
	assert.Equal(t, []string{"steam.exe", "-applaunch", "440"}, runner.starts[0])
}

func TestRestart_EscalatesThenAbortsWhenClientNeverExits(t *testing.T) {
	t.Parallel()

	lister := &scriptedLister{answers: []bool{true}}
	clk := clockwork.NewFakeClock()
	o, runner, exits := newTestOrchestrator(lister, clk)

	errCh := make(chan error, 1)
	go func() { errCh <- o.Restart(nil, true) }()

	for range gracefulPolls + killPolls {
		clk.BlockUntil(1)
		clk.Advance(pollInterval)
	}
	assert.ErrorIs(t, <-errCh, ErrShutdownTimeout)

	// Graceful request, then the hard kill.
	require.Len(t, runner.runs, 2)
	assert.Equal(t, []string{"steam.exe", "-exitsteam"}, runner.runs[0])
	killName, killArgs := killCommand("steam.exe")
	assert.Equal(t, append([]string{killName}, killArgs...), runner.runs[1])

	// The relaunch is aborted: no spawn, no host exit.
	assert.Empty(t, runner.starts)
	assert.Empty(t, exits.codes)
}

func TestShutdown_TimeoutError(t *testing.T) {
	t.Parallel()

	lister := &scriptedLister{answers: []bool{true}}
	clk := clockwork.NewFakeClock()
	o, _, _ := newTestOrchestrator(lister, clk)

	errCh := make(chan error, 1)
	go func() { errCh <- o.shutdown() }()

	for range gracefulPolls + killPolls {
		clk.BlockUntil(1)
		clk.Advance(pollInterval)
	}
	assert.ErrorIs(t, <-errCh, ErrShutdownTimeout)
}

func TestSpawn_PassesArgsThrough(t *testing.T) {
	t.Parallel()

	lister := &scriptedLister{answers: []bool{false}}
	o, runner, _ := newTestOrchestrator(lister, clockwork.NewRealClock())

	require.NoError(t, o.Spawn("-noreactlogin", "-applaunch", "730"))
	require.Len(t, runner.starts, 1)
	assert.Equal(t, []string{"steam.exe", "-noreactlogin", "-applaunch", "730"}, runner.starts[0])
}
