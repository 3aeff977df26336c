// Package version exposes build metadata shared by the rover binaries.
//
// Version, Commit, and BuildTime are injected at build time via Go ldflags
// and default to sensible values for local builds. Short and Full render the
// version string for CLI output and logs, and AttachCobraVersionCommand adds
// the `version` subcommand to each root command.
package version
