// Package main hosts the docsim CLI entrypoint and command graph.
//
// The Cobra command tree loads configuration once, applies flag overrides,
// and hands documents to the analysis pipeline. Reports go to stdout (or a
// file); logs go to stderr so the two never mix.
//
// Keep this package thin: behavior belongs in the internal packages and is
// surfaced here through commands and flags.
package main
