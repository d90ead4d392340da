// Package shared provides common utility functions used across multiple
// packages in the hkgbuild codebase.
package shared

import (
	"fmt"
	"net/url"
	"strings"
)

// HTTPStatusError creates a formatted error for non-2xx HTTP responses.
func HTTPStatusError(status int, url string) error {
	return fmt.Errorf("status=%d url=%s", status, url)
}

// PackagePageURL joins the index base URL and a package name into the
// package's index page URL.
func PackagePageURL(base string, name string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/") + "/package/" + url.PathEscape(strings.TrimSpace(name))
}

// SourceArchiveURL returns the location of the source tarball for one
// released version of a package.
func SourceArchiveURL(base string, name string, version string) string {
	name = url.PathEscape(strings.TrimSpace(name))
	version = url.PathEscape(strings.TrimSpace(version))
	return fmt.Sprintf("%s/packages/archive/%s/%s/%s-%s.tar.gz",
		strings.TrimRight(strings.TrimSpace(base), "/"), name, version, name, version)
}
