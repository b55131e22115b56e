// Package export writes configuration snapshots to disk. It only serializes
// what the store hands it; gathering the snapshot is the store's job.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"cdn_manager/internal/store"
)

// WriteJSON serializes a snapshot to path as indented JSON and returns the
// path written.
func WriteJSON(payload *store.ExportPayload, path string) (string, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}
