package types

// `json:"..."` tags are used by the JSON output sink.

// Entry is a single (path, digest) pair produced by a traversal. The digest
// is a lowercase hex string. Entries are emitted depth-first, post-order for
// directories: a directory's entry always follows the entries of all of its
// descendants.
type Entry struct {
	Path   string `json:"path"`
	Digest string `json:"digest"`
}
