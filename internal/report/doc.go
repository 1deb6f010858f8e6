// Package report renders analysis results.
//
// Four formats are supported: a banner-style text layout, go-pretty tables,
// indented JSON and YAML. JSON and YAML go through a serializable view of
// the report in which an angle that could not be computed is null. WriteFile
// writes a rendered report to disk under an advisory file lock.
package report
