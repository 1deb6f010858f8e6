// Package stats computes term frequency and inverse document frequency over
// normalized token sequences.
package stats
