package batch

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"sdd-exml/internal/archive"
)

// ManifestEntry represents one container in the output manifest.
type ManifestEntry struct {
	Input   string `json:"input"`
	Output  string `json:"output"`
	Size    int64  `json:"size"`
	Warning string `json:"warning,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WriteManifest writes manifest.json describing every result.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Input:   filepath.Base(r.Input),
			Output:  filepath.Base(r.Output),
			Size:    r.Size,
			Warning: r.Warning,
			Error:   r.Error,
		}
		if !r.Success {
			entries[i].Output = ""
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	return archive.WriteFile(path, data)
}
