package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one file in the output manifest.
type ManifestEntry struct {
	Mode    string `json:"mode"`
	Input   string `json:"input"`
	Output  string `json:"output,omitempty"`
	Bytes   int    `json:"bytes"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// WriteManifest writes a JSON manifest of the run to path.
func WriteManifest(path string, mode Mode, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Mode:    mode.String(),
			Input:   r.Input,
			Output:  r.Output,
			Bytes:   r.Bytes,
			Success: r.Success,
			Error:   r.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
