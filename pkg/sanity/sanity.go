// SPDX-License-Identifier: Apache-2.0

package sanity

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joomcode/errorx"
)

// Security validation patterns for user-supplied values that end up on a
// privileged command line.
var (
	// shellMetachars contains dangerous shell metacharacters that should be rejected
	shellMetachars = regexp.MustCompile("[;&|$\\x60<>(){}\\[\\]*?~]")

	// validIdentifier covers container names and label values
	validIdentifier = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.\-]*$`)

	// validImageRef covers repository[:tag] references such as pisilinux/farm:latest
	validImageRef = regexp.MustCompile(`^[a-z0-9]+(?:[._\-/][a-z0-9]+)*(?::[a-zA-Z0-9_.\-]+)?$`)
)

// SanitizePath validates and sanitizes the given path according to strict security rules.
//
// Specifically, it:
//  1. Rejects paths containing shell metacharacters (e.g., ; & | $ ` < > ( ) { } [ ] * ? ~).
//  2. Rejects path traversal attempts (".." as a path segment).
//  3. Requires the input path to be absolute.
//  4. Normalizes the path by removing redundant slashes and dot directories.
//
// Returns the sanitized (cleaned) path, or an error if the input is invalid or unsafe.
func SanitizePath(path string) (string, error) {
	if path == "" {
		return "", errorx.IllegalArgument.New("path cannot be empty")
	}

	if !filepath.IsAbs(path) {
		return "", errorx.IllegalArgument.New("path must be absolute: %s", path)
	}

	for _, segment := range strings.Split(path, "/") {
		if segment == ".." {
			return "", errorx.IllegalArgument.New("path cannot contain '..' segments: %s", path)
		}
	}

	if shellMetachars.MatchString(path) {
		return "", errorx.IllegalArgument.New("path contains shell metacharacters: %s", path)
	}

	return filepath.Clean(path), nil
}

// ValidateIdentifier validates a container name or label value.
func ValidateIdentifier(s string) error {
	if s == "" {
		return errorx.IllegalArgument.New("identifier cannot be empty")
	}
	if !validIdentifier.MatchString(s) {
		return errorx.IllegalArgument.New("invalid identifier: %q", s)
	}
	return nil
}

// ValidateImageRef validates a container image reference of the form
// repository[:tag]. Digest references are not accepted; the farm image is
// always addressed by name and tag.
func ValidateImageRef(s string) error {
	if s == "" {
		return errorx.IllegalArgument.New("image reference cannot be empty")
	}
	if !validImageRef.MatchString(s) {
		return errorx.IllegalArgument.New("invalid image reference: %q", s)
	}
	return nil
}

// Contains reports whether v is present in values.
func Contains[T comparable](v T, values []T) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
