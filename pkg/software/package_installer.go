// SPDX-License-Identifier: Apache-2.0

package software

import (
	"sync"

	"github.com/bluet/syspkg"
	"github.com/bluet/syspkg/manager"
)

var (
	pkgManager syspkg.PackageManager
	once       sync.Once
)

func GetPackageManager() (syspkg.PackageManager, error) {
	var initErr error
	once.Do(func() {
		includeOptions := syspkg.IncludeOptions{AllAvailable: true}
		sysPackageManager, err := syspkg.New(includeOptions)
		if err != nil {
			initErr = newQueryError(err, "package-manager")
			return
		}

		// Let syspkg automatically detect the best available package manager
		pm, err := sysPackageManager.GetPackageManager("") // Empty string returns first available
		if err != nil {
			initErr = newQueryError(err, "package-manager")
			return
		}

		pkgManager = pm
	})

	return pkgManager, initErr
}

type option func(*PackageInstaller)

// PackageInstaller is the default implementation of the Package interface that
// uses the standard system package manager to manage a system package.
type PackageInstaller struct {
	pkgName    string
	pkgOptions manager.Options
	pkgManager syspkg.PackageManager
}

func (p *PackageInstaller) Name() string {
	return p.pkgName
}

func (p *PackageInstaller) Install() (*syspkg.PackageInfo, error) {
	_, err := p.pkgManager.Install([]string{p.pkgName}, &p.pkgOptions)
	if err != nil {
		return nil, newInstallationError(err, p.pkgName)
	}

	return p.Info()
}

func (p *PackageInstaller) IsInstalled() bool {
	info, err := p.Info()
	if err != nil {
		return false
	}

	return info.Status == manager.PackageStatusInstalled
}

func (p *PackageInstaller) Info() (*syspkg.PackageInfo, error) {
	// Find is more reliable than ListInstalled here: the apt implementation
	// of ListInstalled does not distinguish a fully removed package from one
	// whose config files are still present.
	resp, err := p.pkgManager.Find([]string{p.pkgName}, &p.pkgOptions)
	if err != nil {
		return nil, newQueryError(err, p.pkgName)
	}

	for _, pkg := range resp {
		if pkg.Name == p.pkgName {
			return &pkg, nil
		}
	}

	return nil, newQueryError(nil, p.pkgName)
}

func WithPackageName(name string) option {
	return func(pb *PackageInstaller) {
		pb.pkgName = name
	}
}

func WithPackageOptions(opts manager.Options) option {
	return func(pb *PackageInstaller) {
		pb.pkgOptions = opts
	}
}

func WithPackageManager(pm syspkg.PackageManager) option {
	return func(pb *PackageInstaller) {
		pb.pkgManager = pm
	}
}

func NewPackageInstaller(opts ...option) (*PackageInstaller, error) {
	p := &PackageInstaller{}

	for _, opt := range opts {
		opt(p)
	}

	if p.pkgManager == nil {
		pm, err := GetPackageManager()
		if err != nil {
			return nil, err
		}
		p.pkgManager = pm
	}

	return p, nil
}
