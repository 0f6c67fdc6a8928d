// Package processes coordinates the Steam client's process lifecycle around
// an account switch: detect a running instance, wait out a graceful exit,
// relaunch with arguments, and optionally terminate the host application.
package processes

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/process"
)

const (
	// pollInterval is the cadence of the shutdown wait loop.
	pollInterval = time.Second
	// gracefulPolls bounds the wait after a graceful exit request before
	// escalating to a hard kill.
	gracefulPolls = 60
	// killPolls bounds the wait after a hard kill before giving up.
	killPolls = 10
)

// ErrShutdownTimeout is returned when the client outlives both the graceful
// exit request and the hard kill. The relaunch is aborted in that case so a
// second client is never spawned under a stale identity.
var ErrShutdownTimeout = errors.New("client process did not exit")

// Lister answers whether a process with an exact image name is running.
type Lister interface {
	Running(name string) (bool, error)
}

// systemLister reads the live process table.
type systemLister struct{}

func (systemLister) Running(name string) (bool, error) {
	procs, err := process.Processes()
	if err != nil {
		return false, fmt.Errorf("list processes: %w", err)
	}
	for _, p := range procs {
		pname, err := p.Name()
		if err != nil {
			continue
		}
		// Image names are matched case-insensitively, as Windows does.
		if strings.EqualFold(pname, name) {
			return true, nil
		}
	}
	return false, nil
}

// Orchestrator restarts one external client process.
type Orchestrator struct {
	runner   Runner
	lister   Lister
	clock    clockwork.Clock
	exit     func(code int)
	exePath  string
	procName string
}

// New returns an Orchestrator for the client executable at exePath.
func New(exePath, procName string) *Orchestrator {
	return &Orchestrator{
		exePath:  exePath,
		procName: procName,
		runner:   &RealRunner{},
		lister:   systemLister{},
		clock:    clockwork.NewRealClock(),
		exit:     os.Exit,
	}
}

// Running reports whether the client process is currently in the process
// table.
func (o *Orchestrator) Running() (bool, error) {
	return o.lister.Running(o.procName)
}

// Spawn launches the client directly with the given arguments, without any
// shutdown sequence. Used for the already-logged-in fast path.
func (o *Orchestrator) Spawn(args ...string) error {
	log.Info().Strs("args", args).Msg("starting client")
	opts := StartOptions{HideWindow: true}
	if err := o.runner.Start(context.Background(), opts, o.exePath, args...); err != nil {
		return fmt.Errorf("start client: %w", err)
	}
	return nil
}

// Restart shuts down a running client, relaunches it with args, and if
// exitHost is set terminates this process after the spawn is issued. It
// blocks through the shutdown polls; a shutdown failure aborts the
// relaunch so a second client is never spawned under a stale identity.
func (o *Orchestrator) Restart(args []string, exitHost bool) error {
	if err := o.shutdown(); err != nil {
		return fmt.Errorf("aborting relaunch: %w", err)
	}
	if err := o.Spawn(args...); err != nil {
		return err
	}
	if exitHost {
		o.exit(0)
	}
	return nil
}

// shutdown asks a running client to exit and waits for it to leave the
// process table, escalating to a hard kill when the graceful window runs
// out.
func (o *Orchestrator) shutdown() error {
	running, err := o.Running()
	if err != nil {
		return err
	}
	if !running {
		return nil
	}

	log.Info().Str("process", o.procName).Msg("client is running, requesting exit")
	opts := StartOptions{HideWindow: true}
	if err := o.runner.Run(context.Background(), opts, o.exePath, "-exitsteam"); err != nil {
		log.Warn().Err(err).Msg("graceful exit request failed")
	}
	if o.waitForExit(gracefulPolls) {
		return nil
	}

	log.Warn().Str("process", o.procName).Msg("graceful exit timed out, killing")
	name, killArgs := killCommand(o.procName)
	if err := o.runner.Run(context.Background(), opts, name, killArgs...); err != nil {
		log.Warn().Err(err).Msg("kill command failed")
	}
	if o.waitForExit(killPolls) {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrShutdownTimeout, o.procName)
}

func (o *Orchestrator) waitForExit(polls int) bool {
	for range polls {
		o.clock.Sleep(pollInterval)
		running, err := o.Running()
		if err != nil {
			log.Warn().Err(err).Msg("process table check failed")
			continue
		}
		if !running {
			return true
		}
	}
	return false
}
