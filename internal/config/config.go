// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"

	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
	"github.com/spf13/viper"

	"github.com/pisilinux/farmctl/internal/core"
	"github.com/pisilinux/farmctl/pkg/sanity"
)

// Config holds the global configuration for the application.
type Config struct {
	Log    logx.LoggingConfig `yaml:"log" json:"log"`
	Farm   FarmConfig         `yaml:"farm" json:"farm"`
	Docker DockerConfig       `yaml:"docker" json:"docker"`
	Repo   RepoConfig         `yaml:"repo" json:"repo"`
}

// MountsConfig holds the host-side directories of the four farm bind mounts.
// The container-side paths are fixed; only these host directories can be
// relocated, for example onto a larger disk.
type MountsConfig struct {
	Repository string `yaml:"repository" json:"repository"`
	Archives   string `yaml:"archives" json:"archives"`
	Packages   string `yaml:"packages" json:"packages"`
	Database   string `yaml:"database" json:"database"`
}

// Validate validates all mount host directories to ensure they are safe to
// place on a privileged command line.
func (m *MountsConfig) Validate() error {
	if m.Repository != "" {
		if _, err := sanity.SanitizePath(m.Repository); err != nil {
			return errorx.IllegalArgument.Wrap(err, "invalid repository mount path: %s", m.Repository)
		}
	}

	if m.Archives != "" {
		if _, err := sanity.SanitizePath(m.Archives); err != nil {
			return errorx.IllegalArgument.Wrap(err, "invalid archives mount path: %s", m.Archives)
		}
	}

	if m.Packages != "" {
		if _, err := sanity.SanitizePath(m.Packages); err != nil {
			return errorx.IllegalArgument.Wrap(err, "invalid packages mount path: %s", m.Packages)
		}
	}

	if m.Database != "" {
		if _, err := sanity.SanitizePath(m.Database); err != nil {
			return errorx.IllegalArgument.Wrap(err, "invalid database mount path: %s", m.Database)
		}
	}

	return nil
}

// FarmConfig represents the `farm` configuration block.
type FarmConfig struct {
	Image         string       `yaml:"image" json:"image"`
	ContainerName string       `yaml:"containerName" json:"containerName"`
	Mounts        MountsConfig `yaml:"mounts" json:"mounts"`
}

// Validate validates the farm configuration fields that are set.
func (c *FarmConfig) Validate() error {
	if c.Image != "" {
		if err := sanity.ValidateImageRef(c.Image); err != nil {
			return errorx.IllegalArgument.Wrap(err, "invalid farm image: %s", c.Image)
		}
	}

	if c.ContainerName != "" {
		if err := sanity.ValidateIdentifier(c.ContainerName); err != nil {
			return errorx.IllegalArgument.Wrap(err, "invalid container name: %s", c.ContainerName)
		}
	}

	return c.Mounts.Validate()
}

// DockerConfig represents the `docker` configuration block.
type DockerConfig struct {
	Binary  string `yaml:"binary" json:"binary"`
	Service string `yaml:"service" json:"service"`
}

// Validate validates the docker configuration fields that are set.
func (c *DockerConfig) Validate() error {
	if c.Binary != "" {
		if _, err := sanity.SanitizePath(c.Binary); err != nil {
			// a bare command name resolved through PATH is also acceptable
			if err2 := sanity.ValidateIdentifier(c.Binary); err2 != nil {
				return errorx.IllegalArgument.Wrap(err, "invalid docker binary: %s", c.Binary)
			}
		}
	}

	if c.Service != "" {
		if err := sanity.ValidateIdentifier(c.Service); err != nil {
			return errorx.IllegalArgument.Wrap(err, "invalid docker service unit: %s", c.Service)
		}
	}

	return nil
}

// RepoConfig represents the `repo` configuration block for the package
// repository cleaner.
type RepoConfig struct {
	// Dir is the binary package repository directory scanned by repo clean.
	Dir string `yaml:"dir" json:"dir"`
	// Keep is the number of newest builds retained per source package.
	Keep int `yaml:"keep" json:"keep"`
}

// Validate validates the repo configuration fields that are set.
func (c *RepoConfig) Validate() error {
	if c.Dir != "" {
		if _, err := sanity.SanitizePath(c.Dir); err != nil {
			return errorx.IllegalArgument.Wrap(err, "invalid repo dir: %s", c.Dir)
		}
	}

	if c.Keep < 0 {
		return errorx.IllegalArgument.New("repo keep count cannot be negative: %d", c.Keep)
	}

	return nil
}

// Validate validates all configuration fields to ensure they are safe and secure.
func (c Config) Validate() error {
	if err := c.Farm.Validate(); err != nil {
		return err
	}
	if err := c.Docker.Validate(); err != nil {
		return err
	}
	return c.Repo.Validate()
}

var globalConfig = defaultConfig()

func defaultConfig() Config {
	return Config{
		Log: logx.LoggingConfig{
			Level:          "Debug",
			ConsoleLogging: true,
			FileLogging:    false,
		},
		Farm: FarmConfig{
			Image:         core.ImageRef,
			ContainerName: core.ContainerName,
			Mounts: MountsConfig{
				Repository: core.DefaultRepositoryDir,
				Archives:   core.DefaultArchivesDir,
				Packages:   core.DefaultPackagesDir,
				Database:   core.DefaultDatabaseDir,
			},
		},
		Docker: DockerConfig{
			Binary:  "docker",
			Service: core.DockerService,
		},
		Repo: RepoConfig{
			Dir:  core.DefaultPackagesDir,
			Keep: 2,
		},
	}
}

// Initialize loads the configuration from the specified file. An empty path
// keeps the built-in defaults.
func Initialize(path string) error {
	if path != "" {
		globalConfig = defaultConfig()
		viper.Reset()
		viper.SetConfigFile(path)
		viper.SetEnvPrefix("FARMCTL")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

		err := viper.ReadInConfig()
		if err != nil {
			return NotFoundError.Wrap(err, "failed to read config file: %s", path).
				WithProperty(errorx.PropertyPayload(), path)
		}

		migrateLegacyConfig(path)

		if err := viper.Unmarshal(&globalConfig); err != nil {
			return errorx.IllegalFormat.Wrap(err, "failed to parse configuration").
				WithProperty(errorx.PropertyPayload(), path)
		}
	}

	return nil
}

// Get returns the loaded configuration.
func Get() Config {
	return globalConfig
}

func Set(c *Config) error {
	globalConfig = *c
	return nil
}

// OverrideFarmConfig updates the farm configuration with provided overrides.
// Empty string values are ignored (not applied).
func OverrideFarmConfig(overrides FarmConfig) {
	if overrides.Image != "" {
		globalConfig.Farm.Image = overrides.Image
	}
	if overrides.ContainerName != "" {
		globalConfig.Farm.ContainerName = overrides.ContainerName
	}
	if overrides.Mounts.Repository != "" {
		globalConfig.Farm.Mounts.Repository = overrides.Mounts.Repository
	}
	if overrides.Mounts.Archives != "" {
		globalConfig.Farm.Mounts.Archives = overrides.Mounts.Archives
	}
	if overrides.Mounts.Packages != "" {
		globalConfig.Farm.Mounts.Packages = overrides.Mounts.Packages
	}
	if overrides.Mounts.Database != "" {
		globalConfig.Farm.Mounts.Database = overrides.Mounts.Database
	}
}
