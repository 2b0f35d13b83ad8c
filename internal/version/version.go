// Package version carries the build version, overridden at release time via
// -ldflags "-X github.com/ercx-tools/ercx-cli/internal/version.Version=...".
package version

var Version = "0.1.0-dev"
