// SPDX-License-Identifier: Apache-2.0

package repo

import (
	"path/filepath"
	"strings"

	"github.com/joomcode/errorx"
)

// PackageExt is the binary package file extension of the PiSi repository.
const PackageExt = ".pisi"

// PackageFile is one parsed binary package in the repository. File names
// follow the fixed layout name-version-release-pisiVersion-arch.pisi where
// only the name part may itself contain dashes.
type PackageFile struct {
	Dir         string
	FileName    string
	Name        string
	Version     string
	Release     string
	PisiVersion string
	Arch        string
}

// Path returns the full path of the package file.
func (p PackageFile) Path() string {
	return filepath.Join(p.Dir, p.FileName)
}

// ComparableVersion renders the version and release as one dotted tuple so
// that builds of the same upstream version still order by release number.
func (p PackageFile) ComparableVersion() string {
	return p.Version + "." + p.Release
}

// ParseFileName parses a repository file name into its package fields. The
// name is split on the last four dashes; everything before them is the
// package name.
func ParseFileName(dir, fileName string) (PackageFile, error) {
	if !strings.HasSuffix(fileName, PackageExt) {
		return PackageFile{}, errorx.IllegalFormat.New("not a package file: %s", fileName)
	}

	stem := strings.TrimSuffix(fileName, PackageExt)

	fields := make([]string, 0, 4)
	rest := stem
	for i := 0; i < 4; i++ {
		idx := strings.LastIndex(rest, "-")
		if idx <= 0 {
			return PackageFile{}, errorx.IllegalFormat.New("malformed package file name: %s", fileName)
		}
		fields = append([]string{rest[idx+1:]}, fields...)
		rest = rest[:idx]
	}

	return PackageFile{
		Dir:         dir,
		FileName:    fileName,
		Name:        rest,
		Version:     fields[0],
		Release:     fields[1],
		PisiVersion: fields[2],
		Arch:        fields[3],
	}, nil
}
