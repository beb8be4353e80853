// SPDX-License-Identifier: Apache-2.0

package repo

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
)

var notFoundError = errorx.NewNamespace("repo").NewType("not_found", errorx.NotFound())

// ScanResult holds the outcome of one repository walk. Files whose names do
// not follow the package layout are collected instead of aborting the scan;
// the historical cleaner logged and skipped them the same way.
type ScanResult struct {
	Packages []PackageFile
	Skipped  []string
}

// Scan walks the repository directory and parses every package file found.
func Scan(dir string) (ScanResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return ScanResult{}, notFoundError.Wrap(err, "repository directory does not exist: %s", dir).
			WithProperty(errorx.PropertyPayload(), dir)
	}
	if !info.IsDir() {
		return ScanResult{}, errorx.IllegalArgument.New("not a directory: %s", dir)
	}

	var result ScanResult
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), PackageExt) {
			return nil
		}

		pkg, parseErr := ParseFileName(filepath.Dir(path), d.Name())
		if parseErr != nil {
			logx.As().Warn().Str("file", path).Err(parseErr).
				Msg("skipping file with malformed package name")
			result.Skipped = append(result.Skipped, path)
			return nil
		}

		result.Packages = append(result.Packages, pkg)
		return nil
	})
	if err != nil {
		return ScanResult{}, errorx.InternalError.Wrap(err, "failed to scan repository: %s", dir)
	}

	return result, nil
}
