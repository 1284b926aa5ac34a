package lib

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/welandaz/hashtree-go/internal/hashtree/types"
)

// EntriesToMap converts an ordered entry slice into a path -> digest map.
// Paths are unique within one traversal, so no entries collide.
func EntriesToMap(entries []types.Entry) map[string]string {
	hashes := make(map[string]string, len(entries))
	for _, entry := range entries {
		hashes[entry.Path] = entry.Digest
	}
	return hashes
}

// FormatEntries renders entries in the line format used for output files,
// one "<path>: <digest>\n" line per entry, in emission order.
func FormatEntries(entries []types.Entry) string {
	var b strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&b, "%s: %s\n", entry.Path, entry.Digest)
	}
	return b.String()
}

// WriteEntries writes entries to outputPath in the line format, creating
// parent directories as needed.
func WriteEntries(outputPath string, entries []types.Entry) error {
	if err := EnsureParent(outputPath); err != nil {
		return fmt.Errorf("failed to create parent directories for %s: %w", outputPath, err)
	}
	if err := os.WriteFile(outputPath, []byte(FormatEntries(entries)), 0644); err != nil {
		return fmt.Errorf("failed to write hashes to %s: %w", outputPath, err)
	}
	return nil
}

// EntriesJSON renders entries as an indented JSON array, preserving
// emission order.
func EntriesJSON(entries []types.Entry) ([]byte, error) {
	return json.MarshalIndent(entries, "", "  ")
}
