// Package publish pushes a freshly written export somewhere other people can
// see it.
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Publisher makes the current export available elsewhere
type Publisher interface {
	Publish(ctx context.Context, message string) error
}

// Runner executes a command in dir, returning its combined output
type Runner func(ctx context.Context, dir string, name string, args ...string) ([]byte, error)

// Git commits everything in a working tree and pushes it
type Git struct {
	Dir    string
	Remote string
	Branch string

	// Run defaults to executing the real git binary
	Run Runner
}

// Publish stages all changes, commits them, and pushes. Nothing is committed
// if there are no staged changes. Steps are not retried or rolled back.
func (g *Git) Publish(ctx context.Context, message string) error {
	if _, err := g.git(ctx, "add", "-A"); err != nil {
		return err
	}

	if _, err := g.git(ctx, "diff", "--cached", "--quiet"); err == nil {
		slog.Info("Nothing to publish", "dir", g.Dir)
		return nil
	} else if !isExitCode(err, 1) {
		return err
	}

	if _, err := g.git(ctx, "commit", "-m", message); err != nil {
		return err
	}

	args := []string{"push"}
	if g.Remote != "" {
		args = append(args, g.Remote)
		if g.Branch != "" {
			args = append(args, g.Branch)
		}
	}
	if _, err := g.git(ctx, args...); err != nil {
		return err
	}

	slog.Info("Published", "dir", g.Dir, "message", message)
	return nil
}

func (g *Git) git(ctx context.Context, args ...string) ([]byte, error) {
	run := g.Run
	if run == nil {
		run = execRunner
	}

	slog.Debug("Running git", "dir", g.Dir, "args", args)
	output, err := run(ctx, g.Dir, "git", args...)
	if err != nil {
		return output, &StepError{
			Step:   strings.Join(args, " "),
			Output: strings.TrimSpace(string(output)),
			Err:    err,
		}
	}
	return output, nil
}

// StepError describes which git command failed and what it printed
type StepError struct {
	Step   string
	Output string
	Err    error
}

func (e *StepError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("git %s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("git %s: %v: %s", e.Step, e.Err, e.Output)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// ExitCoder is implemented by errors carrying a process exit status, such as
// *exec.ExitError
type ExitCoder interface {
	ExitCode() int
}

func isExitCode(err error, code int) bool {
	var exitErr ExitCoder
	return errors.As(err, &exitErr) && exitErr.ExitCode() == code
}

func execRunner(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()
	return output.Bytes(), err
}

var _ Publisher = &Git{}
