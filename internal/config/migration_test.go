// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pisilinux/farmctl/internal/core"
)

func TestInitialize_LegacyToml(t *testing.T) {
	path := writeTempConfig(t, "farm.toml", `
image = "pisilinux/farm:legacy"
container_name = "oldfarm"
repository_dir = "/srv/legacy/repository"
db_dir = "/srv/legacy/db"
keep = 3
`)

	require.NoError(t, Initialize(path))

	cfg := Get()
	assert.Equal(t, "pisilinux/farm:legacy", cfg.Farm.Image)
	assert.Equal(t, "oldfarm", cfg.Farm.ContainerName)
	assert.Equal(t, "/srv/legacy/repository", cfg.Farm.Mounts.Repository)
	assert.Equal(t, "/srv/legacy/db", cfg.Farm.Mounts.Database)
	assert.Equal(t, 3, cfg.Repo.Keep)

	// keys the legacy file never set keep their defaults
	assert.Equal(t, core.DefaultArchivesDir, cfg.Farm.Mounts.Archives)
	assert.Equal(t, core.DefaultPackagesDir, cfg.Farm.Mounts.Packages)
}

func TestInitialize_LegacyToml_EmptyValuesIgnored(t *testing.T) {
	path := writeTempConfig(t, "farm.toml", `
image = ""
container_name = "oldfarm"
`)

	require.NoError(t, Initialize(path))

	cfg := Get()
	assert.Equal(t, core.ImageRef, cfg.Farm.Image)
	assert.Equal(t, "oldfarm", cfg.Farm.ContainerName)
}

func TestInitialize_YamlSkipsLegacyMigration(t *testing.T) {
	path := writeTempConfig(t, "farmctl.yaml", `
farm:
  containerName: "newfarm"
`)

	require.NoError(t, Initialize(path))
	assert.Equal(t, "newfarm", Get().Farm.ContainerName)
}
