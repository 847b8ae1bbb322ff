// Package cli parses command-line arguments for the exhibit tool, overlays
// them on the optional YAML configuration file and maps usage problems to
// process exit codes.
package cli
