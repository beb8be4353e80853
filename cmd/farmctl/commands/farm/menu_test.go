// SPDX-License-Identifier: Apache-2.0

package farm

import (
	"io"
	"strings"
	"testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pisilinux/farmctl/internal/core"
)

func TestSelectFromLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  core.Operation
	}{
		{name: "by number", input: "3\n", want: core.OpInstall},
		{name: "by name", input: "install\n", want: core.OpInstall},
		{name: "name with padding", input: "  Stop \n", want: core.OpStop},
		{name: "last line without newline", input: "5", want: core.OpReinstall},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			op, err := selectFromLine(strings.NewReader(tc.input), io.Discard)
			require.NoError(t, err)
			assert.Equal(t, tc.want, op)
		})
	}
}

func TestSelectFromLine_Unrecognized(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unknown word", input: "frobnicate\n"},
		{name: "out of range", input: "9\n"},
		{name: "blank line", input: "\n"},
		{name: "empty input", input: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := selectFromLine(strings.NewReader(tc.input), io.Discard)
			require.Error(t, err)
			assert.True(t, errorx.IsOfType(err, core.UnrecognizedSelectionError))
		})
	}
}

func TestSelectFromLine_PrintsMenu(t *testing.T) {
	var out strings.Builder
	_, err := selectFromLine(strings.NewReader("1\n"), &out)
	require.NoError(t, err)

	for _, op := range core.Operations() {
		assert.Contains(t, out.String(), op.String())
	}
}
