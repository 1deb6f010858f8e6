// Package config loads, normalizes, and validates docsim configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// DOCSIM_INPUT_DIR. The Config type centralizes every knob the CLI and the
// analysis pipeline need: where documents come from, which punctuation and
// stopwords the normalizer uses, the similarity and tf variants, and how
// reports and logs are written.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical enum values, and clear validation errors.
package config
