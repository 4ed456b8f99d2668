// Package version contains version information for texpath.
package version

var (
	// Version is the current version of texpath.
	Version = "dev"
	// BuildTime is the time when the binary was built.
	BuildTime = "unknown"
	// GitCommit is the git commit hash of the build.
	GitCommit = "unknown"
)
