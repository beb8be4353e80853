// SPDX-License-Identifier: Apache-2.0

package core

import (
	"testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	testCases := []struct {
		input    string
		expected Operation
		wantErr  bool
	}{
		{input: "1", expected: OpStart},
		{input: "2", expected: OpStop},
		{input: "3", expected: OpInstall},
		{input: "4", expected: OpDelete},
		{input: "5", expected: OpReinstall},
		{input: " 3 ", expected: OpInstall},
		{input: "start", expected: OpStart},
		{input: "Reinstall", expected: OpReinstall},
		{input: "0", wantErr: true},
		{input: "6", wantErr: true},
		{input: "-1", wantErr: true},
		{input: "", wantErr: true},
		{input: "  ", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "3.5", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			op, err := ParseOperation(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errorx.IsOfType(err, UnrecognizedSelectionError))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, op)
		})
	}
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "start", OpStart.String())
	assert.Equal(t, "reinstall", OpReinstall.String())
	assert.Equal(t, "unknown", Operation(42).String())
}
