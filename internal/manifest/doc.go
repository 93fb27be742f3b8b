// Package manifest reads and writes the user-editable YAML manifest that
// pins file order, chapter title overrides, and book-level metadata.
//
// A manifest is optional. When present it is authoritative for set
// membership and order: files it lists must exist, and files it omits are
// excluded from the conversion. An empty chapter list only overrides
// metadata and leaves ordering to the natural filename sort.
package manifest
