// SPDX-License-Identifier: Apache-2.0

package workflows

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"

	"github.com/pisilinux/farmctl/internal/core"
	"github.com/pisilinux/farmctl/internal/workflows/notify"
	"github.com/pisilinux/farmctl/pkg/hardware"
	"github.com/pisilinux/farmctl/pkg/software"
)

// CheckPrivilegesStep validates that farmctl can issue privileged runtime
// commands: either the process runs as root or sudo is available.
func CheckPrivilegesStep() automa.Builder {
	return automa.NewStepBuilder().WithId("validate-privileges").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if os.Geteuid() == 0 {
				logx.As().Info().Msg("Running as root, privilege validated")
				return automa.SuccessReport(stp)
			}

			if _, err := exec.LookPath("sudo"); err != nil {
				return automa.FailureReport(stp,
					automa.WithError(
						errorx.IllegalState.New("runtime commands require elevated privileges").
							WithProperty(core.ErrPropertyResolution,
								fmt.Sprintf("Install sudo or run the command as root: `sudo %s`",
									strings.Join(os.Args, " ")))))
			}

			logx.As().Info().Msg("sudo available, privilege validated")
			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Starting privilege validation")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Privilege validation failed")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Privilege validation step completed successfully")
		})
}

// CheckHostResourcesStep validates memory and storage against the farm spec.
func CheckHostResourcesStep() automa.Builder {
	return automa.NewStepBuilder().WithId("validate-host-resources").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			hostProfile := hardware.GetHostProfile()
			logx.As().Info().Str("host_profile", hostProfile.String()).Msg("Retrieved host profile")

			if err := hardware.FarmSpec().Validate(hostProfile); err != nil {
				return automa.FailureReport(stp,
					automa.WithError(errorx.IllegalState.Wrap(err, "host resource validation failed")))
			}

			logx.As().Info().Msg("Host resources validated")
			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Starting host resource validation")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Host resource validation failed")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Host resource validation step completed successfully")
		})
}

// CheckDockerPackageStep validates that the docker system package is
// installed. It does not install anything; the resolution tells the operator
// how.
func CheckDockerPackageStep() automa.Builder {
	return automa.NewStepBuilder().WithId("validate-docker-package").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			pkg, err := software.NewDocker()
			if err != nil {
				return automa.FailureReport(stp,
					automa.WithError(errorx.IllegalState.Wrap(err, "failed to query package manager")))
			}

			if !pkg.IsInstalled() {
				return automa.FailureReport(stp,
					automa.WithError(
						errorx.IllegalState.New("docker system package is not installed").
							WithProperty(core.ErrPropertyResolution,
								"Install docker with your system package manager, then re-run the command.")))
			}

			logx.As().Info().Str("package", pkg.Name()).Msg("Docker package validated")
			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Checking docker system package")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Docker package check failed")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Docker package check completed successfully")
		})
}

// NewPreflightWorkflow validates the host before the farm is installed.
func NewPreflightWorkflow() *automa.WorkflowBuilder {
	return automa.NewWorkflowBuilder().WithId("farm-preflight").Steps(
		CheckPrivilegesStep(),
		CheckHostResourcesStep(),
		CheckDockerPackageStep(),
	).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Starting farm preflight checks")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Farm preflight checks failed")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Farm preflight checks completed successfully")
		})
}
