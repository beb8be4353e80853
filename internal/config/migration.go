// SPDX-License-Identifier: Apache-2.0

// Package config migration.go contains backward compatibility logic for the
// legacy farm.toml format used by the historical shell tooling. This file can
// be safely deleted once users have migrated to the YAML config format.
//
// Legacy flat keys and their new homes:
//   - image          -> farm.image
//   - container_name -> farm.containerName
//   - repository_dir -> farm.mounts.repository
//   - archives_dir   -> farm.mounts.archives
//   - packages_dir   -> farm.mounts.packages
//   - db_dir         -> farm.mounts.database
//   - keep           -> repo.keep

package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/automa-saga/logx"
	"github.com/spf13/viper"
)

// legacyFarmConfig mirrors the flat farm.toml layout of the historical tool.
type legacyFarmConfig struct {
	Image         string `toml:"image"`
	ContainerName string `toml:"container_name"`
	RepositoryDir string `toml:"repository_dir"`
	ArchivesDir   string `toml:"archives_dir"`
	PackagesDir   string `toml:"packages_dir"`
	DatabaseDir   string `toml:"db_dir"`
	Keep          int    `toml:"keep"`
}

// legacyKeyMapping maps one legacy flat key onto its structured replacement.
type legacyKeyMapping struct {
	oldKey string
	newKey string
	value  any
}

// migrateLegacyConfig imports settings from a legacy farm.toml when the
// operator still points farmctl at one. Values already present under the new
// keys win; each migrated key logs a deprecation warning so config files get
// updated eventually.
func migrateLegacyConfig(path string) {
	if !strings.HasSuffix(path, ".toml") {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var legacy legacyFarmConfig
	if err := toml.Unmarshal(data, &legacy); err != nil {
		logx.As().Warn().Err(err).Str("path", path).
			Msg("failed to parse legacy farm.toml, ignoring")
		return
	}

	mappings := []legacyKeyMapping{
		{"image", "farm.image", legacy.Image},
		{"container_name", "farm.containerName", legacy.ContainerName},
		{"repository_dir", "farm.mounts.repository", legacy.RepositoryDir},
		{"archives_dir", "farm.mounts.archives", legacy.ArchivesDir},
		{"packages_dir", "farm.mounts.packages", legacy.PackagesDir},
		{"db_dir", "farm.mounts.database", legacy.DatabaseDir},
	}
	if legacy.Keep > 0 {
		mappings = append(mappings, legacyKeyMapping{"keep", "repo.keep", legacy.Keep})
	}

	for _, m := range mappings {
		migrateKey(m.oldKey, m.newKey, m.value)
	}
}

// migrateKey applies a single legacy value under its new key. It only
// migrates when the new key is not already set and the legacy value is
// non-empty.
func migrateKey(oldKey, newKey string, value any) {
	if s, ok := value.(string); ok && s == "" {
		return
	}

	if !viper.IsSet(newKey) {
		viper.Set(newKey, value)

		logx.As().Warn().
			Str("oldKey", oldKey).
			Str("newKey", newKey).
			Msg("DEPRECATION WARNING: legacy farm.toml key is deprecated and will be removed in a future release. Please migrate to the YAML config format.")
	}
}
