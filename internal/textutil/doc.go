// Package textutil turns raw document text into token sequences for the
// bag-of-words pipeline.
//
// Normalization is deliberately simple and deterministic:
//   - the whole text is lowercased with the configured case-folding language
//   - every configured punctuation character is deleted outright, so letters
//     on either side of it merge ("don't" becomes "dont")
//   - the text is split on Unicode whitespace
//   - tokens found in the stopword set are dropped
//
// Order and duplicates are preserved because the sequences feed frequency
// counting. Punctuation and stopword sets are always passed in; the built-in
// lists in this package are defaults for configuration, not globals the
// normalizer reads.
package textutil
