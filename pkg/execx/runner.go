// Package execx provides the OS implementation of types.Runner.
// External tools (nix, home-manager, direnv) are opaque collaborators:
// the provisioner only inspects their presence and exit codes.
package execx

import (
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"

	"nixup/pkg/errors"
	"nixup/pkg/logging"
	"nixup/pkg/types"
)

// Options contains configuration for the runner
type Options struct {
	// Timeout bounds each invocation. Zero means no timeout.
	Timeout time.Duration

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer

	Logger zerolog.Logger
}

type osRunner struct {
	timeout time.Duration
	stdout  io.Writer
	stderr  io.Writer
	logger  zerolog.Logger
}

// New creates a runner that executes commands on the host.
func New(opts Options) types.Runner {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("execx")
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	return &osRunner{
		timeout: opts.Timeout,
		stdout:  stdout,
		stderr:  stderr,
		logger:  logger,
	}
}

func (r *osRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *osRunner) Run(ctx context.Context, name string, args ...string) error {
	return r.run(ctx, name, args, r.stdout, r.stderr)
}

func (r *osRunner) RunSilent(ctx context.Context, name string, args ...string) error {
	return r.run(ctx, name, args, io.Discard, io.Discard)
}

func (r *osRunner) run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	logging.LogCommand(name, args)
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()

	r.logger.Debug().
		Str("command", name).
		Strs("args", args).
		Dur("duration", time.Since(start)).
		Err(err).
		Msg("Command finished")

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Wrapf(ctxErr, errors.ErrCommandFailed, "%s interrupted", name)
		}
		return errors.Wrapf(err, errors.ErrCommandFailed, "%s failed", name)
	}
	return nil
}
