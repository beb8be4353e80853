// SPDX-License-Identifier: Apache-2.0

package docker

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pisilinux/farmctl/internal/core"
	"github.com/pisilinux/farmctl/internal/exc"
	"github.com/pisilinux/farmctl/pkg/systemd"
)

// captureFn runs a command with captured output. Swapped out in tests.
type captureFn func(ctx context.Context, logger zerolog.Logger, name string, args ...string) (exc.Result, error)

// attachFn runs a command wired to the operator's terminal. Swapped out in tests.
type attachFn func(ctx context.Context, logger zerolog.Logger, name string, args ...string) error

// ensureDaemonFn starts the runtime service unit. Swapped out in tests.
type ensureDaemonFn func(ctx context.Context, unit string) error

// CLIClient implements Client by shelling out to the docker command line.
// The daemon itself, its image store and its volume semantics stay external;
// farmctl only sequences invocations and classifies their failures.
type CLIClient struct {
	binary      string
	useSudo     bool
	serviceName string
	label       string

	log zerolog.Logger

	capture      captureFn
	attach       attachFn
	ensureDaemon ensureDaemonFn
}

type ClientOption func(*CLIClient)

func WithBinary(binary string) ClientOption {
	return func(c *CLIClient) {
		c.binary = binary
	}
}

// WithSudo prefixes every runtime invocation with sudo. The runtime daemon
// requires elevated privileges; when farmctl itself runs as root the prefix
// is unnecessary.
func WithSudo(useSudo bool) ClientOption {
	return func(c *CLIClient) {
		c.useSudo = useSudo
	}
}

func WithServiceName(name string) ClientOption {
	return func(c *CLIClient) {
		c.serviceName = name
	}
}

func WithManagedLabel(key, value string) ClientOption {
	return func(c *CLIClient) {
		c.label = fmt.Sprintf("%s=%s", key, value)
	}
}

func WithLogger(log zerolog.Logger) ClientOption {
	return func(c *CLIClient) {
		c.log = log
	}
}

func NewCLIClient(opts ...ClientOption) *CLIClient {
	c := &CLIClient{
		binary:       "docker",
		useSudo:      os.Geteuid() != 0,
		serviceName:  core.DockerService,
		label:        fmt.Sprintf("%s=%s", core.ManagedLabel, core.ManagedLabelValue),
		log:          zerolog.Nop(),
		capture:      exc.CaptureCmd,
		attach:       runAttached,
		ensureDaemon: systemd.EnsureServiceActive,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// commandLine builds the full argv for one runtime invocation, including the
// optional sudo prefix.
func (c *CLIClient) commandLine(args ...string) (string, []string) {
	if c.useSudo {
		return "sudo", append([]string{c.binary}, args...)
	}
	return c.binary, args
}

// run executes one runtime command with captured output and classifies any
// failure.
func (c *CLIClient) run(ctx context.Context, args ...string) (string, error) {
	name, argv := c.commandLine(args...)
	cmdline := name + " " + strings.Join(argv, " ")

	res, err := c.capture(ctx, c.log, name, argv...)
	if err != nil {
		return "", core.CommandFailedError.Wrap(err, "failed to execute runtime command: %s", cmdline).
			WithProperty(core.ErrPropertyCommand, cmdline)
	}

	if res.ExitCode != 0 {
		return "", classifyFailure(cmdline, res.ExitCode, res.Stderr)
	}

	return strings.TrimSpace(res.Stdout), nil
}

func (c *CLIClient) EnsureDaemonRunning(ctx context.Context) error {
	if err := c.ensureDaemon(ctx, c.serviceName); err != nil {
		return core.DaemonUnavailableError.Wrap(err, "failed to start runtime daemon %s", c.serviceName).
			WithProperty(core.ErrPropertyResolution,
				fmt.Sprintf("Check the daemon unit: systemctl status %s", c.serviceName))
	}
	return nil
}

func (c *CLIClient) ListContainers(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, "ps", "-aq", "--filter", "label="+c.label)
	if err != nil {
		return nil, err
	}

	if out == "" {
		return nil, nil
	}

	return strings.Split(out, "\n"), nil
}

func (c *CLIClient) Start(ctx context.Context, containerID string) error {
	_, err := c.run(ctx, "start", containerID)
	return err
}

func (c *CLIClient) Stop(ctx context.Context, containerID string) error {
	_, err := c.run(ctx, "stop", containerID)
	return err
}

func (c *CLIClient) Remove(ctx context.Context, containerID string) error {
	_, err := c.run(ctx, "rm", "-f", containerID)
	return err
}

func (c *CLIClient) RunDetached(ctx context.Context, spec RunSpec) (string, error) {
	return c.run(ctx, spec.runArgs()...)
}

func (c *CLIClient) PruneAll(ctx context.Context) error {
	_, err := c.run(ctx, "system", "prune", "-f")
	return err
}

func (c *CLIClient) RemoveImage(ctx context.Context, imageRef string) error {
	_, err := c.run(ctx, "rmi", imageRef)
	return err
}

func (c *CLIClient) ImageExists(ctx context.Context, imageRef string) (bool, error) {
	name, argv := c.commandLine("image", "inspect", "--format", "{{.Id}}", imageRef)

	res, err := c.capture(ctx, c.log, name, argv...)
	if err != nil {
		return false, core.CommandFailedError.Wrap(err, "failed to inspect image %s", imageRef)
	}

	if res.ExitCode != 0 {
		// inspect exits non-zero for a missing image; that is an answer,
		// not a failure, unless the daemon itself is unreachable
		if strings.Contains(strings.ToLower(res.Stderr), "cannot connect to the docker daemon") {
			return false, classifyFailure(name, res.ExitCode, res.Stderr)
		}
		return false, nil
	}

	return true, nil
}

func (c *CLIClient) Attach(ctx context.Context, containerID string) error {
	name, argv := c.commandLine("attach", containerID)
	return c.attach(ctx, c.log, name, argv...)
}

// runAttached executes the command with the operator's terminal wired to the
// child. Blocks until the child exits or the context is canceled.
func runAttached(ctx context.Context, logger zerolog.Logger, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return exc.NewCmdExecution(cmd, logger).RunCmd(ctx)
}
