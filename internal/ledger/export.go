// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// ExportYAML writes every recorded run to export.yaml next to the database
// and returns the file path.
func (s *Store) ExportYAML(ctx context.Context) (string, error) {
	runs, err := s.Recent(ctx, exportLimit)
	if err != nil {
		return "", fmt.Errorf("querying for export: %w", err)
	}

	path := filepath.Join(s.dir, "export.yaml")
	data, err := yaml.Marshal(runs)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	return path, os.WriteFile(path, data, 0o644)
}

// ExportJSON writes every recorded run to export.json next to the database
// and returns the file path.
func (s *Store) ExportJSON(ctx context.Context) (string, error) {
	runs, err := s.Recent(ctx, exportLimit)
	if err != nil {
		return "", fmt.Errorf("querying for export: %w", err)
	}

	path := filepath.Join(s.dir, "export.json")
	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return path, os.WriteFile(path, data, 0o644)
}
