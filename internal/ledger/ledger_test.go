// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/aidottxt/internal/output"
	"github.com/pdiddy/aidottxt/internal/render"
	"github.com/pdiddy/aidottxt/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state", dbFile))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testResult() output.WriteResult {
	return output.WriteResult{Files: []output.FileResult{
		{
			Document: render.Document{Format: types.FormatRobots, Path: "robots.txt", Content: "User-agent: *\n"},
			FullPath: "/site/robots.txt",
			Digest:   output.Digest("User-agent: *\n"),
			Status:   output.StatusCreated,
		},
		{
			Document: render.Document{Format: types.FormatAI, Path: "ai.txt", Content: "# ai.txt\n"},
			Digest:   output.Digest("# ai.txt\n"),
			Status:   output.StatusFailed,
			Err:      errors.New("permission denied"),
		},
	}}
}

func TestNewRun(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.FixedZone("X", 3600))
	run := NewRun(start, "/site", false, []string{"ai", "robots"}, testResult())

	assert.NotEmpty(t, run.ID)
	assert.Equal(t, time.UTC, run.StartedAt.Location())
	require.Len(t, run.Documents, 2)
	assert.Equal(t, DocumentRecord{
		Format: "robots",
		Path:   "robots.txt",
		Digest: output.Digest("User-agent: *\n"),
		Bytes:  14,
		Status: "created",
	}, run.Documents[0])
	assert.Equal(t, "permission denied", run.Documents[1].Error)

	other := NewRun(start, "/site", false, nil, output.WriteResult{})
	assert.NotEqual(t, run.ID, other.ID)
}

func TestRecordAndRecent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	older := NewRun(base, "/old", true, []string{"humans"}, output.WriteResult{})
	newer := NewRun(base.Add(time.Hour), "/site", false, []string{"ai", "robots"}, testResult())

	require.NoError(t, s.Record(ctx, older))
	require.NoError(t, s.Record(ctx, newer))

	runs, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, newer.ID, runs[0].ID)
	assert.True(t, newer.StartedAt.Equal(runs[0].StartedAt))
	assert.Equal(t, []string{"ai", "robots"}, runs[0].Formats)
	assert.False(t, runs[0].DryRun)
	assert.Equal(t, newer.Documents, runs[0].Documents)

	assert.Equal(t, older.ID, runs[1].ID)
	assert.True(t, runs[1].DryRun)
	assert.Empty(t, runs[1].Documents)

	limited, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, newer.ID, limited[0].ID)
}

func TestRecord_DuplicateID(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	run := NewRun(time.Now(), "/site", false, nil, testResult())
	require.NoError(t, s.Record(ctx, run))

	err := s.Record(ctx, run)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inserting run")

	runs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Len(t, runs[0].Documents, 2, "failed insert must not add documents")
}

func TestReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), dbFile)
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	run := NewRun(time.Now(), "/site", false, []string{"llms"}, output.WriteResult{})
	require.NoError(t, s.Record(ctx, run))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	runs, err := s.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
}

func TestExport(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	run := NewRun(time.Now(), "/site", false, []string{"ai", "robots"}, testResult())
	require.NoError(t, s.Record(ctx, run))

	yamlPath, err := s.ExportYAML(ctx)
	require.NoError(t, err)
	data, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	var fromYAML []Run
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	require.Len(t, fromYAML, 1)
	assert.Equal(t, run.ID, fromYAML[0].ID)
	assert.Equal(t, run.Documents, fromYAML[0].Documents)

	jsonPath, err := s.ExportJSON(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(yamlPath), filepath.Dir(jsonPath))
	data, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	var fromJSON []Run
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	require.Len(t, fromJSON, 1)
	assert.Equal(t, "/site", fromJSON[0].OutDir)
}

func TestExport_Empty(t *testing.T) {
	s := testStore(t)

	path, err := s.ExportJSON(context.Background())
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestRecent_CorruptRows(t *testing.T) {
	tests := []struct {
		name      string
		startedAt string
		formats   string
		wantErr   string
	}{
		{"bad timestamp", "yesterday", `["ai"]`, "parsing started_at of run r1"},
		{"bad formats", "2024-01-01T00:00:00.000000000Z", `{ai`, "decoding formats of run r1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testStore(t)
			_, err := s.db.Exec(
				`INSERT INTO runs (id, started_at, out_dir, dry_run, formats) VALUES (?, ?, ?, ?, ?)`,
				"r1", tt.startedAt, "/site", false, tt.formats)
			require.NoError(t, err)

			_, err = s.Recent(context.Background(), 10)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
