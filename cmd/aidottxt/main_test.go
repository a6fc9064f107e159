// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/aidottxt/internal/answers"
	"github.com/pdiddy/aidottxt/internal/ledger"
	"github.com/pdiddy/aidottxt/internal/output"
	"github.com/pdiddy/aidottxt/pkg/types"
)

var fixedNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func TestFormatsFromFlags(t *testing.T) {
	tests := []struct {
		name  string
		set   []string
		names []string
		want  types.FormatSet
	}{
		{"none set", nil, nil, types.FormatSet{}},
		{"ai only", []string{"ai-only"}, nil, types.FormatSet{types.FormatAI}},
		{"union in canonical order", []string{"humans-only", "robots-only"}, nil,
			types.FormatSet{types.FormatRobots, types.FormatHumans}},
		{"all four", []string{"ai-only", "llms-only", "robots-only", "humans-only"}, nil,
			types.NewFormatSet(types.AllFormats...)},
		{"format names", nil, []string{"Humans", " llms "},
			types.FormatSet{types.FormatLLMs, types.FormatHumans}},
		{"names and flags combine", []string{"ai-only"}, []string{"robots", "ai"},
			types.FormatSet{types.FormatAI, types.FormatRobots}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatsFromFlags(func(name string) bool {
				for _, s := range tt.set {
					if s == name {
						return true
					}
				}
				return false
			}, tt.names)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got)
			assert.Equal(t, len(tt.want), len(got))
		})
	}
}

func TestFormatsFromFlags_UnknownName(t *testing.T) {
	_, err := formatsFromFlags(func(string) bool { return false }, []string{"ai", "sitemap"})
	assert.ErrorContains(t, err, `unknown format "sitemap"`)
}

func TestNewAsker_Accessible(t *testing.T) {
	t.Cleanup(func() { viper.Set("accessible", false) })

	assert.False(t, newAsker().Accessible)
	viper.Set("accessible", true)
	assert.True(t, newAsker().Accessible)
}

func TestGenerate_WritesSelectedDocuments(t *testing.T) {
	out := t.TempDir()
	gen := types.GeneratorConfig{
		OutDir:  out,
		Formats: types.NewFormatSet(types.FormatAI, types.FormatRobots),
	}

	var buf bytes.Buffer
	require.NoError(t, generate(context.Background(), gen, answers.Defaults(fixedNow), &buf))

	assert.FileExists(t, filepath.Join(out, "ai.txt"))
	assert.FileExists(t, filepath.Join(out, "robots.txt"))
	assert.NoFileExists(t, filepath.Join(out, "humans.txt"))
	assert.NoDirExists(t, filepath.Join(out, ".well-known"))
	assert.Contains(t, buf.String(), "Created:")
	assert.Contains(t, buf.String(), "Done")

	robots, err := os.ReadFile(filepath.Join(out, "robots.txt"))
	require.NoError(t, err)
	assert.Equal(t, "User-agent: *\nAllow: /*\n", string(robots))
}

func TestGenerate_SecondRunIsUnchanged(t *testing.T) {
	out := t.TempDir()
	gen := types.GeneratorConfig{OutDir: out, Formats: types.NewFormatSet(types.FormatHumans)}
	a := answers.Defaults(fixedNow)

	require.NoError(t, generate(context.Background(), gen, a, &bytes.Buffer{}))

	var buf bytes.Buffer
	require.NoError(t, generate(context.Background(), gen, a, &buf))
	assert.Contains(t, buf.String(), "Unchanged:")
	assert.NotContains(t, buf.String(), "Created:")
}

func TestGenerate_DryRunWritesNothing(t *testing.T) {
	out := t.TempDir()
	gen := types.GeneratorConfig{
		OutDir:  out,
		Formats: types.NewFormatSet(types.FormatLLMs),
		DryRun:  true,
	}

	var buf bytes.Buffer
	require.NoError(t, generate(context.Background(), gen, answers.Defaults(fixedNow), &buf))

	assert.Contains(t, buf.String(), "\n# /.well-known/llms.txt\n\n{")
	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_DryRunIsNotRecorded(t *testing.T) {
	dir := t.TempDir()
	gen := types.GeneratorConfig{
		OutDir:     filepath.Join(dir, "site"),
		Formats:    types.NewFormatSet(types.FormatRobots),
		DryRun:     true,
		LedgerPath: filepath.Join(dir, "ledger.db"),
	}

	require.NoError(t, generate(context.Background(), gen, answers.Defaults(fixedNow), &bytes.Buffer{}))
	assert.NoFileExists(t, gen.LedgerPath)
}

func TestGenerate_NoFormats(t *testing.T) {
	err := generate(context.Background(), types.GeneratorConfig{OutDir: t.TempDir()},
		answers.Defaults(fixedNow), &bytes.Buffer{})
	assert.ErrorIs(t, err, output.ErrNoFormats)
}

func TestGenerate_SavesAnswersAndRecordsRun(t *testing.T) {
	dir := t.TempDir()
	gen := types.GeneratorConfig{
		OutDir:      filepath.Join(dir, "site"),
		Formats:     types.NewFormatSet(types.AllFormats...),
		LedgerPath:  filepath.Join(dir, "ledger.db"),
		AnswersPath: filepath.Join(dir, "answers.yaml"),
	}
	a := answers.Defaults(fixedNow)
	a.SiteName = "Acme"

	require.NoError(t, generate(context.Background(), gen, a, &bytes.Buffer{}))

	saved, err := answers.Load(gen.AnswersPath, answers.Defaults(fixedNow))
	require.NoError(t, err)
	assert.Equal(t, "Acme", saved.SiteName)

	store, err := ledger.Open(gen.LedgerPath)
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, gen.OutDir, runs[0].OutDir)
	assert.Len(t, runs[0].Documents, 4)
	assert.Equal(t, "4 created", summarize(runs[0].Documents))
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "none", summarize(nil))
	assert.Equal(t, "1 created, 2 unchanged", summarize([]ledger.DocumentRecord{
		{Status: "created"}, {Status: "unchanged"}, {Status: "unchanged"},
	}))
}

func TestPrintRuns_Empty(t *testing.T) {
	var buf bytes.Buffer
	printRuns(&buf, nil)
	assert.Equal(t, "No runs recorded.\n", buf.String())
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aidottxt.yaml")

	require.NoError(t, writeSample(path, false, fixedNow))
	loaded, err := answers.Load(path, types.Answers{})
	require.NoError(t, err)
	assert.Equal(t, answers.Defaults(fixedNow), loaded)

	err = writeSample(path, false, fixedNow)
	assert.ErrorContains(t, err, "already exists")

	assert.NoError(t, writeSample(path, true, fixedNow))
}
