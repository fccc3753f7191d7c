// Package version records build-time version information, populated via
// -ldflags at release time.
package version

import "runtime"

var (
	// GitRelease is the release tag, or "dev" for local builds.
	GitRelease = "dev"

	// GitCommit is the commit hash the binary was built from.
	GitCommit = ""

	// GitCommitDate is the commit date the binary was built from.
	GitCommitDate = ""

	// GoInfo is the Go toolchain that built the binary.
	GoInfo = runtime.Version()
)
