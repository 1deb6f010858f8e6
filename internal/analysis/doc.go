// Package analysis runs the bag-of-words pipeline over one corpus.
//
// Run normalizes every document, builds the shared vocabulary, vectorizes,
// then computes pairwise angles and tf/idf. The result is a Report value;
// nothing here prints. Options carries every tunable input explicitly and
// OptionsFromConfig builds it from the loaded configuration.
package analysis
