// Package vectorspace builds the bag-of-words vector space for a corpus and
// measures angles between documents in it.
//
// A Vocabulary is built once per corpus from the normalized token sequences
// and is immutable afterwards. Every Vector produced against it has the same
// length and index meaning, which is what makes the dot products in
// similarity.go meaningful.
//
// Norm and dot product honour an IndexMode. FullRange sums every component.
// SkipFirst reproduces the historical loops that started at index 1 and so
// ignored the first vocabulary term; it exists only so old reports can be
// regenerated bit for bit.
package vectorspace
