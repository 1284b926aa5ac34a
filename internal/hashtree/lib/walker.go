// Package lib contains the core, reusable services for the hashtree application.
package lib

import (
	"errors"
	"fmt"
	"hash"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/welandaz/hashtree-go/internal/hashtree/types"
)

// ErrRootNotFound is returned by Walk when the root path does not exist.
// Use errors.Is to test for it.
var ErrRootNotFound = errors.New("root path not found")

// Walker computes content-addressed digests for a filesystem subtree: every
// regular file is hashed from its byte content, and every directory from the
// combined digests of its children, recursively.
//
// A zero Walker is usable and falls back to DefaultAlgorithm and
// DefaultBufferSize. Walkers are stateless between calls; all traversal
// bookkeeping lives on the recursion stack of a single Walk call.
type Walker struct {
	// NewDigest constructs a digest instance. A fresh instance is created
	// for every node, never shared across nodes.
	NewDigest func() hash.Hash

	// BufferSize is the read buffer size for file hashing.
	BufferSize int

	// IgnoreFile optionally names a gitignore-style pattern file in the
	// traversal root. When empty, nothing is filtered.
	IgnoreFile string
}

// NewWalker returns a Walker configured with the default algorithm and
// buffer size.
func NewWalker() *Walker {
	newDigest, _ := NewDigest(DefaultAlgorithm)
	return &Walker{NewDigest: newDigest, BufferSize: DefaultBufferSize}
}

// Walk traverses the subtree rooted at root and returns one Entry per
// visited node in depth-first post-order: files and subdirectories of a
// directory first (ascending by name), then the directory itself.
//
// A directory's digest is the digest of its direct children's hex digest
// strings concatenated in ascending name order. Directories that
// recursively contain zero files produce no entry at any nesting level. If
// root is itself a regular file, exactly one entry is returned.
//
// Any I/O failure aborts the whole traversal: Walk returns a nil slice and
// an error naming the offending path. There is no partial-result mode.
func (w *Walker) Walk(root string) ([]types.Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("could not stat root %s: %w", root, err)
	}

	newDigest := w.NewDigest
	if newDigest == nil {
		newDigest, _ = NewDigest(DefaultAlgorithm)
	}
	bufferSize := w.BufferSize
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("root %s is neither a directory nor a regular file", root)
		}
		digest, err := HashFile(root, newDigest, bufferSize)
		if err != nil {
			return nil, fmt.Errorf("failed to process file %s: %w", root, err)
		}
		return []types.Entry{{Path: root, Digest: digest}}, nil
	}

	var entries []types.Entry
	if _, _, err := w.walkDir(root, root, newDigest, bufferSize, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// walkDir hashes one directory. It returns the directory's hex digest and
// whether the directory contributed one (a directory with no hashed
// descendants contributes nothing and emits no entry).
//
// The child-digest record is local to this frame and dies when the frame
// returns, so traversal state is bounded by tree depth times fan-out, not
// tree size.
func (w *Walker) walkDir(baseDir, dir string, newDigest func() hash.Hash, bufferSize int, out *[]types.Entry) (string, bool, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return "", false, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	// os.ReadDir already sorts by filename, but the byte-wise child order is
	// what makes directory digests deterministic, so keep it explicit.
	sort.Slice(dirEntries, func(i, j int) bool {
		return dirEntries[i].Name() < dirEntries[j].Name()
	})

	var childDigests []string
	for _, entry := range dirEntries {
		fullPath := filepath.Join(dir, entry.Name())
		if w.isIgnored(baseDir, fullPath) {
			continue
		}

		if entry.IsDir() {
			digest, contributed, err := w.walkDir(baseDir, fullPath, newDigest, bufferSize, out)
			if err != nil {
				return "", false, err
			}
			if contributed {
				childDigests = append(childDigests, digest)
			}
			continue
		}

		// Symlinks, sockets, devices and other special files are skipped.
		if !entry.Type().IsRegular() {
			continue
		}

		digest, err := HashFile(fullPath, newDigest, bufferSize)
		if err != nil {
			return "", false, fmt.Errorf("failed to process file %s: %w", fullPath, err)
		}
		*out = append(*out, types.Entry{Path: fullPath, Digest: digest})
		childDigests = append(childDigests, digest)
	}

	if len(childDigests) == 0 {
		return "", false, nil
	}

	digest := HashBytes([]byte(strings.Join(childDigests, "")), newDigest)
	*out = append(*out, types.Entry{Path: dir, Digest: digest})
	return digest, true, nil
}

// isIgnored reports whether path should be excluded from the walk. It only
// consults the pattern matcher when an ignore file is configured.
func (w *Walker) isIgnored(baseDir, path string) bool {
	if w.IgnoreFile == "" {
		return false
	}
	return IsPathIgnored(baseDir, w.IgnoreFile, path)
}
