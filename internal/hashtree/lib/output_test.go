package lib

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/welandaz/hashtree-go/internal/hashtree/types"
)

func TestWriteEntriesRoundTrip(t *testing.T) {
	// Hash a real tree, write the result to a file and check that the file
	// lines match the in-memory map exactly.
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "alpha")
	writeFile(t, filepath.Join(root, "sub", "b.txt"), "beta")

	entries, err := NewWalker().Walk(root)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	// A nested output path exercises parent directory creation.
	outputPath := filepath.Join(t.TempDir(), "out", "hashes.txt")
	require.NoError(t, WriteEntries(outputPath, entries))

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, len(entries))

	fromFile := make(map[string]string, len(lines))
	for i, line := range lines {
		path, digest, found := strings.Cut(line, ": ")
		require.True(t, found, "malformed output line: %q", line)
		fromFile[path] = digest

		// Lines appear in emission order.
		assert.Equal(t, entries[i].Path, path)
	}

	assert.Equal(t, EntriesToMap(entries), fromFile)
}

func TestEntriesToMap(t *testing.T) {
	entries := []types.Entry{
		{Path: "/tree/file", Digest: "aa"},
		{Path: "/tree", Digest: "bb"},
	}

	hashes := EntriesToMap(entries)

	assert.Len(t, hashes, 2)
	assert.Equal(t, "aa", hashes["/tree/file"])
	assert.Equal(t, "bb", hashes["/tree"])
}

func TestEntriesJSONPreservesOrder(t *testing.T) {
	entries := []types.Entry{
		{Path: "/tree/a", Digest: "aa"},
		{Path: "/tree/b", Digest: "bb"},
		{Path: "/tree", Digest: "cc"},
	}

	data, err := EntriesJSON(entries)
	require.NoError(t, err)

	var decoded []types.Entry
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, entries, decoded)
}
