package processes

import (
	"context"
	"os/exec"
)

// StartOptions configures how a command is started.
type StartOptions struct {
	// HideWindow suppresses the console window on Windows; ignored
	// elsewhere.
	HideWindow bool
}

// Runner abstracts exec.Command so process control can be exercised in
// tests without touching real system commands.
type Runner interface {
	// Run starts a command and waits for it to finish.
	Run(ctx context.Context, opts StartOptions, name string, args ...string) error

	// Start launches a command without waiting, fire-and-forget.
	Start(ctx context.Context, opts StartOptions, name string, args ...string) error
}

// RealRunner executes actual system commands.
type RealRunner struct{}

var _ Runner = (*RealRunner)(nil)

//nolint:wrapcheck // exec errors carry the context callers need
func (*RealRunner) Run(ctx context.Context, opts StartOptions, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	configureCmd(cmd, opts)
	return cmd.Run()
}

//nolint:wrapcheck // exec errors carry the context callers need
func (*RealRunner) Start(ctx context.Context, opts StartOptions, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	configureCmd(cmd, opts)
	return cmd.Start()
}
