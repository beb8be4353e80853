// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCmd_Success(t *testing.T) {
	cmd := exec.Command("echo", "hello")
	execution := NewCmdExecution(cmd, zerolog.Nop())

	err := execution.RunCmd(context.Background())
	require.NoError(t, err)
}

func TestRunCmd_Failure(t *testing.T) {
	cmd := exec.Command("false")
	execution := NewCmdExecution(cmd, zerolog.Nop())

	err := execution.RunCmd(context.Background())
	require.Error(t, err)
}

func TestRunCmd_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	cmd := exec.Command("sleep", "10")
	execution := NewCmdExecution(cmd, zerolog.Nop())

	start := time.Now()
	err := execution.RunCmd(ctx)
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestCaptureCmd(t *testing.T) {
	res, err := CaptureCmd(context.Background(), zerolog.Nop(), "sh", "-c", "echo out; echo err >&2")
	require.NoError(t, err)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
	assert.Equal(t, 0, res.ExitCode)
}

func TestCaptureCmd_NonZeroExit(t *testing.T) {
	res, err := CaptureCmd(context.Background(), zerolog.Nop(), "sh", "-c", "echo boom >&2; exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "boom\n", res.Stderr)
}

func TestCaptureCmd_StartFailure(t *testing.T) {
	_, err := CaptureCmd(context.Background(), zerolog.Nop(), "/no/such/binary")
	require.Error(t, err)
}
