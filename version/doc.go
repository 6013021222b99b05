// Package version provides build version information for chainkit
// binaries.
//
// Version, git commit, and build time are set at compile time via
// -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/chainkit/version.Version=1.0.0"
package version
