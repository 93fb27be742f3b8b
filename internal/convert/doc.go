// Package convert orchestrates the full binding pipeline: discover inputs,
// resolve ordering and metadata into an immutable plan, then execute the plan
// against ffmpeg inside a temporary workspace.
//
// Planning and execution are split on purpose. A plan is pure data computed
// from the inputs, the manifest, and the command-line overrides; dry runs
// stop there. Execution takes a directory lock, materializes the concat list
// and FFMETADATA descriptor, and hands both to the encoder.
package convert
