// Package gherkin2robotframework holds shared metadata for the CLI.
package gherkin2robotframework

// Version is the current release version, set at build time via ldflags
// for tagged builds.
var Version = "0.3.0"
