// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"syscall"

	"github.com/rs/zerolog"
)

// CmdExecution executes a command and manages its lifecycle.
// It forcefully terminates the child process if ctx.Done() signal is received.
type CmdExecution struct {
	done   chan bool
	cmd    *exec.Cmd
	logger *zerolog.Logger
}

func NewCmdExecution(cmd *exec.Cmd, logger zerolog.Logger) *CmdExecution {
	sc := &CmdExecution{
		done:   make(chan bool),
		cmd:    cmd,
		logger: &logger,
	}

	return sc
}

// StopCmd stops monitoring the command execution
func (sc *CmdExecution) StopCmd() {
	close(sc.done)
}

// RunCmd starts running the command while monitoring any ctx.Done() signal
func (sc *CmdExecution) RunCmd(ctx context.Context) error {
	curDir, err := os.Getwd()
	if err != nil {
		return err
	}

	defer func() {
		sc.StopCmd()
	}()

	sc.logger.Debug().
		Str(logFields.execCmd, sc.cmd.String()).
		Str(logFields.execDir, curDir).
		Msg("Executing command")

	// start the command in its own process group so a kill reaches children too
	sc.cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	if err := sc.cmd.Start(); err != nil {
		return err
	}

	// monitor for interrupt signals to forcefully terminate the command process if needed
	go func() {
		select {
		case <-ctx.Done():
			sc.logger.Debug().
				Str(logFields.execCmd, sc.cmd.String()).
				Int(logFields.execPid, sc.cmd.Process.Pid).
				Msg("Force terminating command")

			err = syscall.Kill(-sc.cmd.Process.Pid, syscall.SIGKILL)
			if err != nil {
				sc.logger.Warn().
					Int(logFields.execPid, sc.cmd.Process.Pid).
					Err(err).
					Msg("Error occurred while terminating the process")
			}

			return
		case <-sc.done: // stop this coroutine
			return
		}
	}()

	sc.logger.Debug().
		Str(logFields.execCmd, sc.cmd.String()).
		Int(logFields.execPid, sc.cmd.Process.Pid).
		Msg("Waiting for command to finish execution")

	if err = sc.cmd.Wait(); err != nil {
		return err
	}

	return nil
}

// Result is the captured outcome of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CaptureCmd runs the command with captured output and returns the result
// even when the command exits non-zero; only start/wait failures that carry
// no exit status are returned as errors.
func CaptureCmd(ctx context.Context, logger zerolog.Logger, name string, args ...string) (Result, error) {
	cmd := exec.Command(name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	execution := NewCmdExecution(cmd, logger)
	err := execution.RunCmd(ctx)

	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, err
	}

	return res, nil
}
