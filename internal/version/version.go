// Package version provides build and version information.
package version

// Version is the current application version. Fatal diagnostics include it
// so reports can be matched to a build.
const Version = "0.1.0"
