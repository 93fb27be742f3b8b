// Package textutil provides small text helpers shared by the CLI and the
// conversion pipeline, chiefly filename sanitization for output paths
// derived from book titles.
package textutil
