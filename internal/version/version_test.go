// SPDX-License-Identifier: Apache-2.0

package version

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.NotEmpty(t, info.Number)
	assert.NotEmpty(t, info.Commit)
	assert.NotEmpty(t, info.GoVersion)
}

func TestInfo_Format(t *testing.T) {
	info := Info{Number: "0.1.0", Commit: "abc1234", GoVersion: "go1.25"}

	out, err := info.Format(FormatJSON)
	require.NoError(t, err)
	var fromJSON Info
	require.NoError(t, json.Unmarshal([]byte(out), &fromJSON))
	assert.Equal(t, info, fromJSON)

	out, err = info.Format(FormatYAML)
	require.NoError(t, err)
	var fromYAML Info
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, info, fromYAML)

	_, err = info.Format("xml")
	require.Error(t, err)
}

func TestBuildMode(t *testing.T) {
	orig := buildMode
	defer func() { buildMode = orig }()

	buildMode = ""
	assert.False(t, IsReleaseBuild())
	assert.Equal(t, "dev", BuildMode())

	buildMode = "release"
	assert.True(t, IsReleaseBuild())
	assert.Equal(t, "release", BuildMode())

	buildMode = " release \n"
	assert.True(t, IsReleaseBuild())
}
