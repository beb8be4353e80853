// SPDX-License-Identifier: Apache-2.0

package common

import (
	"context"

	"github.com/automa-saga/automa"
	"github.com/spf13/cobra"

	"github.com/pisilinux/farmctl/internal/doctor"
	"github.com/pisilinux/farmctl/internal/workflows/steps"
)

// RunWorkflow executes a workflow and handles error
func RunWorkflow(ctx context.Context, b automa.Builder) {
	wb, err := b.Build()
	if err != nil {
		doctor.CheckErr(ctx, err)
	}

	report := wb.Execute(ctx)
	CheckWorkflowReport(ctx, report)
}

// CheckWorkflowReport diagnoses a failed workflow report and terminates the
// process with a classified exit code. On success it prints the report.
func CheckWorkflowReport(ctx context.Context, report *automa.Report) {
	if report.Error != nil {
		instructions := doctor.GetInstructionsFromReport(report)
		doctor.CheckErr(ctx, report.Error, instructions)
	}

	steps.PrintWorkflowReport(report)
}

// DefaultRunE is a default RunE function that shows help message and provides a placeholder to add common behaviour.
// We always add a run function to commands to ensure cobra marks it as Runnable and allows our commands to invoke
// PersistentPreRunE functions of the root command.
func DefaultRunE(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}
