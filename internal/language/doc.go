// Package language provides language code normalization for the text
// normalizer.
//
// Codes arrive from configuration and flags in several spellings (ISO 639-1,
// ISO 639-2, English words). Everything is resolved to ISO 639-1 here so the
// stopword registry and the case-folding rules agree on one key.
package language
