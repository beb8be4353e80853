// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pisilinux/farmctl/internal/core"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInitialize_Defaults(t *testing.T) {
	require.NoError(t, Initialize(""))

	cfg := Get()
	assert.Equal(t, core.ImageRef, cfg.Farm.Image)
	assert.Equal(t, core.ContainerName, cfg.Farm.ContainerName)
	assert.Equal(t, core.DefaultRepositoryDir, cfg.Farm.Mounts.Repository)
	assert.Equal(t, core.DefaultArchivesDir, cfg.Farm.Mounts.Archives)
	assert.Equal(t, core.DefaultPackagesDir, cfg.Farm.Mounts.Packages)
	assert.Equal(t, core.DefaultDatabaseDir, cfg.Farm.Mounts.Database)
	assert.Equal(t, "docker", cfg.Docker.Binary)
	assert.Equal(t, core.DockerService, cfg.Docker.Service)
	assert.Equal(t, 2, cfg.Repo.Keep)
}

func TestInitialize_FromYAML(t *testing.T) {
	path := writeTempConfig(t, "farmctl.yaml", `
log:
  level: "Info"
farm:
  image: "pisilinux/farm:devel"
  mounts:
    repository: "/srv/farm/repository"
repo:
  keep: 5
`)

	require.NoError(t, Initialize(path))

	cfg := Get()
	assert.Equal(t, "pisilinux/farm:devel", cfg.Farm.Image)
	assert.Equal(t, "/srv/farm/repository", cfg.Farm.Mounts.Repository)
	// untouched fields keep their defaults
	assert.Equal(t, core.ContainerName, cfg.Farm.ContainerName)
	assert.Equal(t, core.DefaultArchivesDir, cfg.Farm.Mounts.Archives)
	assert.Equal(t, 5, cfg.Repo.Keep)
}

func TestInitialize_EnvOverride_MountRepository(t *testing.T) {
	path := writeTempConfig(t, "farmctl.yaml", `
farm:
  mounts:
    repository: "/srv/farm/repository"
`)

	t.Setenv("FARMCTL_FARM_MOUNTS_REPOSITORY", "/mnt/big-disk/repository")

	require.NoError(t, Initialize(path))
	assert.Equal(t, "/mnt/big-disk/repository", Get().Farm.Mounts.Repository)
}

func TestInitialize_MissingFile(t *testing.T) {
	err := Initialize(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "relative mount path",
			mutate:  func(c *Config) { c.Farm.Mounts.Archives = "relative/path" },
			wantErr: true,
		},
		{
			name:    "mount path with shell metacharacters",
			mutate:  func(c *Config) { c.Farm.Mounts.Database = "/var/lib/pisi;rm -rf /" },
			wantErr: true,
		},
		{
			name:    "bad image reference",
			mutate:  func(c *Config) { c.Farm.Image = "pisilinux/farm:latest; true" },
			wantErr: true,
		},
		{
			name:    "bad container name",
			mutate:  func(c *Config) { c.Farm.ContainerName = "-leading-dash" },
			wantErr: true,
		},
		{
			name:    "negative keep count",
			mutate:  func(c *Config) { c.Repo.Keep = -1 },
			wantErr: true,
		},
		{
			name:   "bare docker binary name",
			mutate: func(c *Config) { c.Docker.Binary = "podman" },
		},
		{
			name:   "absolute docker binary path",
			mutate: func(c *Config) { c.Docker.Binary = "/usr/local/bin/docker" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOverrideFarmConfig(t *testing.T) {
	require.NoError(t, Initialize(""))

	OverrideFarmConfig(FarmConfig{
		Image:  "pisilinux/farm:testing",
		Mounts: MountsConfig{Packages: "/mnt/packages"},
	})

	cfg := Get()
	assert.Equal(t, "pisilinux/farm:testing", cfg.Farm.Image)
	assert.Equal(t, "/mnt/packages", cfg.Farm.Mounts.Packages)
	// empty overrides leave existing values alone
	assert.Equal(t, core.ContainerName, cfg.Farm.ContainerName)
	assert.Equal(t, core.DefaultArchivesDir, cfg.Farm.Mounts.Archives)
}
