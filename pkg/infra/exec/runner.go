// Package exec runs external commands as argument vectors, capturing
// combined output and exit codes. Commands are never passed through a
// shell, so no quoting or interpolation applies.
package exec

import (
	"bytes"
	"context"
	"errors"
	"io"
	osexec "os/exec"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/oaeproject/oae-release-tools/pkg/domain/model"
	"github.com/oaeproject/oae-release-tools/pkg/domain/types"
)

// Runner executes external commands. The zero-value-equivalent returned
// by New captures output silently; WithEcho streams combined output to
// a writer while it is captured.
type Runner struct {
	echo io.Writer
	dir  string
}

// Option configures a Runner.
type Option func(*Runner)

// WithEcho streams each command's combined output to w as it runs, in
// addition to capturing it.
func WithEcho(w io.Writer) Option {
	return func(r *Runner) {
		r.echo = w
	}
}

// WithDir runs commands in the given working directory instead of the
// process working directory.
func WithDir(dir string) Option {
	return func(r *Runner) {
		r.dir = dir
	}
}

// New creates a command Runner.
func New(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes name with args and returns the captured result. On a
// non-zero exit both the result and an error are returned so callers
// that treat specific exit codes as answers (e.g. git diff --quiet)
// can inspect the code. A command that cannot be started at all
// returns a nil result and an infrastructure-tagged error.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (*model.CommandResult, error) {
	logger := ctxlog.From(ctx)
	logger.Debug("Running command", "command", name, "args", args)

	cmd := osexec.CommandContext(ctx, name, args...)
	cmd.Dir = r.dir

	var buf bytes.Buffer
	var out io.Writer = &buf
	if r.echo != nil {
		out = io.MultiWriter(&buf, r.echo)
	}
	cmd.Stdout = out
	cmd.Stderr = out

	err := cmd.Run()
	if err == nil {
		return &model.CommandResult{ExitCode: 0, Output: buf.String()}, nil
	}

	var exitErr *osexec.ExitError
	if !errors.As(err, &exitErr) {
		return nil, goerr.Wrap(err, "failed to start command",
			goerr.V("command", name),
			goerr.V("args", args),
			goerr.T(types.ErrTagInfra),
		)
	}

	result := &model.CommandResult{
		ExitCode: exitErr.ExitCode(),
		Output:   buf.String(),
	}
	return result, goerr.New("command exited with non-zero status",
		goerr.V("command", name),
		goerr.V("args", args),
		goerr.V("exit_code", result.ExitCode),
		goerr.V("output", strings.TrimSpace(result.Output)),
	)
}
