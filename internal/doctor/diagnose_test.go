// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"

	"github.com/pisilinux/farmctl/internal/core"
	"github.com/pisilinux/farmctl/pkg/exit"
)

func TestToExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code exit.Code
	}{
		{"daemon down", core.DaemonUnavailableError.New("down"), exit.ServiceUnavailable},
		{"permission", core.PermissionDeniedError.New("denied"), exit.PermissionError},
		{"bad selection", core.UnrecognizedSelectionError.New("8"), exit.UsageError},
		{"bad argument", errorx.IllegalArgument.New("missing"), exit.UsageError},
		{"bad format", errorx.IllegalFormat.New("garbled"), exit.DataFormatError},
		{"missing image", core.ImageNotFoundError.New("gone"), exit.MissingInputError},
		{"missing container", core.ContainerNotFoundError.New("gone"), exit.MissingInputError},
		{"anything else", core.CommandFailedError.New("boom"), exit.GeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, toExitCode(tt.err))
		})
	}
}

func TestFindResolution_ExplicitHintWins(t *testing.T) {
	err := core.CommandFailedError.New("boom").
		WithProperty(core.ErrPropertyResolution, "Run farmctl farm install")

	steps := findResolution(err)
	assert.Equal(t, []string{"Run farmctl farm install"}, steps)
}

func TestFindResolution_DaemonUnavailable(t *testing.T) {
	steps := findResolution(core.DaemonUnavailableError.New("down"))
	assert.NotEmpty(t, steps)
	assert.Contains(t, steps[0], core.DockerService)
}
