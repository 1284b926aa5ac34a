// Package lib contains the core, reusable services for the hashtree application.
package lib

import (
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"sort"
	"strings"
)

// --- Constants ---

// DefaultAlgorithm is the digest algorithm used when none is requested.
const DefaultAlgorithm = "sha512"

// DefaultBufferSize is the read buffer size (in bytes) used when streaming
// file content through a digest.
const DefaultBufferSize = 8192

// IgnoreFilename is the conventional name of the file containing
// user-defined ignore patterns.
const IgnoreFilename = ".hashignore"

// ErrUnsupportedAlgorithm is returned when a requested digest algorithm is
// not available. Use errors.Is to test for it.
var ErrUnsupportedAlgorithm = errors.New("unsupported digest algorithm")

// digests maps algorithm names to digest constructors. A constructor is used
// rather than a shared instance so that every node hashed during a traversal
// gets its own fresh digest state.
var digests = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha256": sha256.New,
	"sha512": sha512.New,
}

// NewDigest resolves an algorithm name to a digest constructor. Names are
// case-insensitive. An empty name selects DefaultAlgorithm. Resolution
// happens before any traversal, so an unknown name fails fast with
// ErrUnsupportedAlgorithm.
func NewDigest(name string) (func() hash.Hash, error) {
	if name == "" {
		name = DefaultAlgorithm
	}

	constructor, ok := digests[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
	return constructor, nil
}

// SupportedAlgorithms returns the names of all available digest algorithms,
// sorted for stable output.
func SupportedAlgorithms() []string {
	names := make([]string, 0, len(digests))
	for name := range digests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
