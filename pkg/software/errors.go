// SPDX-License-Identifier: Apache-2.0

package software

import "github.com/joomcode/errorx"

var (
	ErrorsNamespace   = errorx.NewNamespace("software")
	PackageQueryError = ErrorsNamespace.NewType("package_query_error")
	InstallationError = ErrorsNamespace.NewType("installation_error")

	packageNameProperty = errorx.RegisterPrintableProperty("package_name")
)

func newQueryError(cause error, pkgName string) error {
	e := PackageQueryError.New("failed to query package %q", pkgName).
		WithProperty(packageNameProperty, pkgName)
	if cause != nil {
		e = e.WithUnderlyingErrors(cause)
	}
	return e
}

func newInstallationError(cause error, pkgName string) error {
	e := InstallationError.New("failed to install package %q", pkgName).
		WithProperty(packageNameProperty, pkgName)
	if cause != nil {
		e = e.WithUnderlyingErrors(cause)
	}
	return e
}
