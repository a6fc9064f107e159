// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output writes rendered documents under a site root, or previews
// them without touching the filesystem.
package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/pdiddy/aidottxt/internal/render"
)

// ErrNoFormats is returned when a run has nothing to write.
var ErrNoFormats = errors.New("no files selected for generation")

// Status is the outcome of writing one document.
type Status string

const (
	StatusCreated   Status = "created"
	StatusUnchanged Status = "unchanged"
	StatusFailed    Status = "failed"
	StatusPreviewed Status = "previewed"
)

// FileResult records what happened to one document.
type FileResult struct {
	Document render.Document
	// FullPath is the filesystem path the document was written to.
	FullPath string
	// Digest is the hex BLAKE3 digest of the document content.
	Digest string
	Status Status
	Err    error
}

// WriteResult holds the outcome of a write or preview run.
type WriteResult struct {
	Files []FileResult
}

// Count returns how many files ended with status s.
func (r WriteResult) Count(s Status) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == s {
			n++
		}
	}
	return n
}

// HasFailures reports whether any document failed to write.
func (r WriteResult) HasFailures() bool {
	return r.Count(StatusFailed) > 0
}

// Digest returns the hex BLAKE3 digest of content.
func Digest(content string) string {
	sum := blake3.Sum256([]byte(content))
	return fmt.Sprintf("%x", sum[:])
}

// WriteAll writes each document beneath outDir. A file whose current content
// already has the same digest is left untouched. Failures are recorded per
// file and do not stop the remaining writes.
func WriteAll(ctx context.Context, docs []render.Document, outDir string) (WriteResult, error) {
	if len(docs) == 0 {
		return WriteResult{}, ErrNoFormats
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return WriteResult{}, fmt.Errorf("creating output directory: %w", err)
	}

	var result WriteResult
	for _, d := range docs {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}
		result.Files = append(result.Files, writeOne(d, outDir))
	}
	return result, nil
}

func writeOne(d render.Document, outDir string) FileResult {
	fr := FileResult{
		Document: d,
		Digest:   Digest(d.Content),
	}

	dest, err := resolve(outDir, d.Path)
	if err != nil {
		fr.Status, fr.Err = StatusFailed, err
		return fr
	}
	fr.FullPath = dest

	if existing, err := os.ReadFile(dest); err == nil && Digest(string(existing)) == fr.Digest {
		fr.Status = StatusUnchanged
		return fr
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		fr.Status, fr.Err = StatusFailed, fmt.Errorf("creating %s: %w", filepath.Dir(dest), err)
		return fr
	}
	if err := writeAtomic(dest, []byte(d.Content)); err != nil {
		fr.Status, fr.Err = StatusFailed, fmt.Errorf("writing %s: %w", dest, err)
		return fr
	}
	fr.Status = StatusCreated
	return fr
}

// resolve maps a slash-separated document path onto outDir, rejecting paths
// that would escape it.
func resolve(outDir, rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == "." || filepath.IsAbs(clean) || clean == ".." ||
		strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid document path %q", rel)
	}
	return filepath.Join(outDir, clean), nil
}

// writeAtomic writes data to a temporary file in dest's directory and renames
// it into place, so readers never observe a partial document.
func writeAtomic(dest string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// Preview prints each document under a "# /<path>" header instead of writing
// it.
func Preview(docs []render.Document, w io.Writer) (WriteResult, error) {
	if len(docs) == 0 {
		return WriteResult{}, ErrNoFormats
	}
	var result WriteResult
	for _, d := range docs {
		fmt.Fprintf(w, "\n# /%s\n\n", d.Path)
		fmt.Fprintln(w, d.Content)
		result.Files = append(result.Files, FileResult{
			Document: d,
			Digest:   Digest(d.Content),
			Status:   StatusPreviewed,
		})
	}
	return result, nil
}
