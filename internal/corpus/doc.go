// Package corpus loads raw documents for analysis.
//
// Documents come from a directory (every matching regular file, in lexical
// name order) or from an explicit list of files (in the order given). Either
// way the result is an ordered []Document whose positions are the document
// identities used by every later stage. Reads happen in parallel but results
// are placed by index, so ordering never depends on scheduling.
//
// Watch re-loads a directory whenever its contents change and hands each new
// corpus to a callback; it is what `docsim analyze --watch` runs on.
package corpus
