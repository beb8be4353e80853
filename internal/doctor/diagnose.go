// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"

	"github.com/pisilinux/farmctl/internal/config"
	"github.com/pisilinux/farmctl/internal/core"
	"github.com/pisilinux/farmctl/internal/version"
	"github.com/pisilinux/farmctl/pkg/exit"
)

type ErrorDiagnosis struct {
	Error      error     `yaml:"error" json:"error"`
	Message    string    `yaml:"message" json:"message"`
	Cause      string    `yaml:"cause" json:"cause"`
	ErrorType  string    `yaml:"errorType" json:"errorType"`
	TraceId    string    `yaml:"traceId" json:"traceId"`
	Commit     string    `yaml:"commit" json:"commit"`
	Version    string    `yaml:"version" json:"version"`
	Pid        int       `yaml:"pid" json:"pid"`
	Command    string    `yaml:"command" json:"command"`
	Stderr     string    `yaml:"stderr" json:"stderr"`
	Code       exit.Code `yaml:"code" json:"code"`
	Logfile    string    `yaml:"log" json:"log"`
	Stacktrace string    `yaml:"stacktrace" json:"stacktrace"`
	Resolution []string  `yaml:"steps" json:"steps"`
}

// toExitCode maps the farm error taxonomy onto POSIX exit codes.
func toExitCode(err error) exit.Code {
	switch {
	case errorx.IsOfType(err, core.DaemonUnavailableError):
		return exit.ServiceUnavailable
	case errorx.IsOfType(err, core.PermissionDeniedError):
		return exit.PermissionError
	case errorx.IsOfType(err, core.UnrecognizedSelectionError),
		errorx.IsOfType(err, errorx.IllegalArgument):
		return exit.UsageError
	case errorx.IsOfType(err, errorx.IllegalFormat):
		return exit.DataFormatError
	default:
		if errorx.HasTrait(err, errorx.NotFound()) {
			return exit.MissingInputError
		}
		return exit.GeneralError
	}
}

func toErrorMessage(err error) (string, string) {
	e := errorx.Cast(err)
	if e == nil {
		return err.Error(), ""
	}

	return e.Message(), fmt.Sprintf("%s", e.Cause())
}

func findResolution(err error) []string {
	// an explicit resolution attached at the failure site wins
	if hint, ok := errorx.ExtractProperty(err, core.ErrPropertyResolution); ok {
		if s, isStr := hint.(string); isStr && s != "" {
			return []string{s}
		}
	}

	switch {
	case errorx.IsOfType(err, core.DaemonUnavailableError):
		return []string{
			"Ensure the container runtime daemon is running: systemctl status " + core.DockerService,
			"Start it manually if needed: sudo systemctl start " + core.DockerService,
		}
	case errorx.IsOfType(err, core.ImageNotFoundError):
		return []string{
			fmt.Sprintf("Ensure the farm image %q exists locally or can be pulled.", core.ImageRef),
			"Run 'farmctl farm install' to provision the farm from scratch.",
		}
	case errorx.IsOfType(err, core.ContainerNotFoundError):
		return []string{
			"The farm container does not exist. Run 'farmctl farm install' first.",
		}
	case errorx.IsOfType(err, core.PermissionDeniedError):
		return []string{
			"Ensure your user can talk to the runtime daemon (docker group membership or sudo).",
		}
	case errorx.IsOfType(err, core.UnrecognizedSelectionError):
		return []string{
			"Choose one of the listed menu options by number or name.",
		}
	case errorx.IsOfType(err, errorx.IllegalArgument):
		if arg, ok := errorx.ExtractProperty(err, errorx.PropertyPayload()); ok {
			return []string{fmt.Sprintf("Ensure %q is provided.", arg.(string))}
		}
		return []string{"Ensure all required arguments are provided."}
	case errorx.IsOfType(err, errorx.IllegalFormat):
		return []string{"Ensure provided data is in correct format."}
	case errorx.IsOfType(err, config.NotFoundError):
		if arg, ok := errorx.ExtractProperty(err, errorx.PropertyPayload()); ok {
			return []string{fmt.Sprintf("Ensure configuration file %q exists, is correctly formatted and accessible", arg.(string))}
		}
		return []string{"Ensure configuration file exists and is accessible."}
	default:
		return []string{"Check error message for details or contact support"}
	}
}

// takeStacktraceSnapshot writes the error stack trace (or the current
// goroutine stacks when no error is given) under the diagnostics directory
// and returns the file path.
func takeStacktraceSnapshot(ex error) string {
	timestamp := time.Now().Format("20060102-150405")

	snapshotDir := path.Join(core.Paths().DiagnosticsDir, timestamp)
	if err := os.MkdirAll(snapshotDir, core.DefaultDirPerm); err != nil {
		log.Printf("failed to create diagnostics directory: %v", err)
		return ""
	}

	stacktraceFile := filepath.Join(snapshotDir, "stacktrace-"+timestamp+".txt")
	f, err := os.Create(stacktraceFile)
	if err != nil {
		log.Printf("failed to create stacktrace file: %v", err)
		return ""
	}
	defer f.Close()

	if ex != nil {
		_, _ = fmt.Fprintf(f, "%+v\n", ex)
	} else {
		buf := make([]byte, 1<<16)
		n := runtime.Stack(buf, true)
		_, _ = f.Write(buf[:n])
	}

	return stacktraceFile
}

func extractStringProperty(err error, p errorx.Property) string {
	if v, ok := errorx.ExtractProperty(err, p); ok {
		if s, isStr := v.(string); isStr {
			return s
		}
	}
	return ""
}

// Diagnose attempts to find a resolution and provide a human friendly error response
func Diagnose(ctx context.Context, ex error) *ErrorDiagnosis {
	var traceId string
	if ctx.Value("traceId") == nil {
		traceId = ""
	} else {
		traceId = ctx.Value("traceId").(string)
	}

	msg, cause := toErrorMessage(ex)
	return &ErrorDiagnosis{
		Error:      ex,
		ErrorType:  errorx.GetTypeName(ex),
		Message:    msg,
		Cause:      cause,
		TraceId:    traceId,
		Code:       toExitCode(ex),
		Commit:     version.Commit(),
		Version:    version.Number(),
		Pid:        os.Getpid(),
		Command:    extractStringProperty(ex, core.ErrPropertyCommand),
		Stderr:     extractStringProperty(ex, core.ErrPropertyStderr),
		Logfile:    config.Get().Log.Filename,
		Stacktrace: takeStacktraceSnapshot(ex),
		Resolution: findResolution(ex),
	}
}

// CheckErr prints diagnosis and exits with the mapped POSIX exit code.
// Optional instructions can be provided to give additional context to the user
func CheckErr(ctx context.Context, err error, instructions ...string) {
	logx.As().Error().Err(err).Msg("error occurred")
	fmt.Printf("%+v\n", err)
	resp := Diagnose(ctx, err)

	fmt.Printf("\n%s%s************************************** Error Diagnostics ******************************************%s\n", Bold, Red, Reset)
	fmt.Printf("%s*%s\t%sError:%s %s\n", Red, Reset, Bold+White, Reset, resp.Message)
	if resp.Cause != "" {
		fmt.Printf("%s*%s\t%sCause:%s %s\n", Red, Reset, Bold+White, Reset, resp.Cause)
	}
	fmt.Printf("%s*%s\t%sError Type:%s %s\n", Red, Reset, Bold+White, Reset, resp.ErrorType)
	fmt.Printf("%s*%s\t%sExit Code:%s %s\n", Red, Reset, Bold+White, Reset, resp.Code)
	if resp.Command != "" {
		fmt.Printf("%s*%s\t%sCommand:%s %s\n", Red, Reset, Bold+White, Reset, resp.Command)
	}
	if resp.Stderr != "" {
		fmt.Printf("%s*%s\t%sStderr:%s %s\n", Red, Reset, Bold+White, Reset, resp.Stderr)
	}
	fmt.Printf("%s*%s\t%sCommit:%s %s\n", Red, Reset, Gray, Reset, resp.Commit)
	fmt.Printf("%s*%s\t%sPid:%s %d\n", Red, Reset, Gray, Reset, resp.Pid)
	fmt.Printf("%s*%s\t%sTraceId:%s %s\n", Red, Reset, Gray, Reset, resp.TraceId)
	fmt.Printf("%s*%s\t%sVersion:%s %s\n", Red, Reset, Gray, Reset, resp.Version)
	if resp.Logfile != "" {
		fmt.Printf("%s*%s\t%sLogfile:%s %s\n", Red, Reset, Cyan, Reset, resp.Logfile)
	}
	if resp.Stacktrace != "" {
		fmt.Printf("%s*%s\t%sStacktrace:%s %s\n", Red, Reset, Cyan, Reset, resp.Stacktrace)
	}
	fmt.Printf("%s%s***************************************************************************************************%s\n", Bold, Red, Reset)
	fmt.Printf("\n%s%s****************************************** Resolution *********************************************%s\n", Bold, Yellow, Reset)

	// Print custom instructions first if provided
	if len(instructions) > 0 && instructions[0] != "" {
		for _, line := range strings.Split(instructions[0], "\n") {
			if line == "" {
				fmt.Printf("%s*%s\n", Yellow, Reset)
			} else {
				fmt.Printf("%s*%s\t%s\n", Yellow, Reset, Bold+White+line+Reset)
			}
		}
		if len(resp.Resolution) > 0 {
			fmt.Printf("%s*%s\n", Yellow, Reset)
		}
	}

	// Print default resolution steps
	for _, r := range resp.Resolution {
		fmt.Printf("%s*%s\t%s\n", Yellow, Reset, White+r+Reset)
	}

	fmt.Printf("%s%s***************************************************************************************************%s\n", Bold, Yellow, Reset)

	resp.Code.TerminateProcess()
}

// GetInstructionsFromReport recursively searches for instructions in report metadata.
// Returns the first non-empty instructions found in the report tree, or an empty string if none exist.
func GetInstructionsFromReport(report *automa.Report) string {
	if report == nil {
		return ""
	}

	// Check if this report has instructions
	if instructions, ok := report.Metadata["instructions"]; ok {
		return instructions
	}

	// Recursively check nested step reports
	for _, stepReport := range report.StepReports {
		if instructions := GetInstructionsFromReport(stepReport); instructions != "" {
			return instructions
		}
	}

	return ""
}
