// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package changedoc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenFSAddRejectsConflicts(t *testing.T) {
	t.Parallel()

	gfs := NewGenFS()
	if err := gfs.Add(File{Path: "a/b.md", Data: []byte("one")}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	err := gfs.Add(File{Path: "a/./b.md", Data: []byte("two")})
	if !errors.Is(err, ErrFileConflict) {
		t.Fatalf("expected ErrFileConflict, got %v", err)
	}

	data, _ := gfs.Get("a/b.md")
	if string(data) != "one" {
		t.Fatalf("conflicting add replaced content: %q", data)
	}
}

func TestGenFSAddIsAllOrNothing(t *testing.T) {
	t.Parallel()

	gfs := NewGenFS()
	err := gfs.Add(
		File{Path: "ok.md"},
		File{Path: "/abs.md"},
		File{Path: "dup.md"},
		File{Path: "dup.md"},
	)

	if !errors.Is(err, ErrAbsolutePath) || !errors.Is(err, ErrFileConflict) {
		t.Fatalf("expected aggregated path errors, got %v", err)
	}

	if gfs.Len() != 0 {
		t.Fatalf("failed add stored %d files", gfs.Len())
	}
}

func TestGenFSAddRejectsEscapingPaths(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"..", "../x.md", "a/../../x.md", "./../x.md"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			gfs := NewGenFS()
			err := gfs.Add(File{Path: name, Data: []byte("x")})
			if !errors.Is(err, ErrEscapingPath) {
				t.Fatalf("Add(%q) error = %v, want %v", name, err, ErrEscapingPath)
			}

			if gfs.Len() != 0 {
				t.Fatalf("escaping add stored %d files", gfs.Len())
			}
		})
	}

	gfs := NewGenFS()
	if err := gfs.Add(File{Path: "a/../x.md"}, File{Path: "..x.md"}); err != nil {
		t.Fatalf("Add inside root: %v", err)
	}

	if diff := cmp.Diff([]string{"..x.md", "x.md"}, gfs.Paths()); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestGenFSWriteThenVerify(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	gfs := NewGenFS()
	if err := gfs.Add(
		File{Path: "_includes/nav.md", Data: []byte("nav\n")},
		File{Path: "documentation/changes/add_column.md", Data: []byte("page\n")},
	); err != nil {
		t.Fatalf("Add: %v", err)
	}

	ctx := context.Background()
	if err := gfs.Write(ctx, root); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "documentation", "changes", "add_column.md"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if string(data) != "page\n" {
		t.Fatalf("written content = %q", data)
	}

	if err := gfs.Verify(ctx, root); err != nil {
		t.Fatalf("Verify after Write: %v", err)
	}
}

func TestGenFSWriteOverwrites(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	target := filepath.Join(root, "page.md")
	if err := os.WriteFile(target, []byte("stale content that is longer"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	gfs := NewGenFS()
	if err := gfs.Add(File{Path: "page.md", Data: []byte("fresh")}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := gfs.Write(context.Background(), root); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if string(data) != "fresh" {
		t.Fatalf("content = %q, want fresh", data)
	}
}

func TestGenFSVerifyReportsMissingAndStale(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "stale.md"), []byte("old\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	gfs := NewGenFS()
	if err := gfs.Add(
		File{Path: "missing.md", Data: []byte("new\n")},
		File{Path: "stale.md", Data: []byte("new\n")},
	); err != nil {
		t.Fatalf("Add: %v", err)
	}

	err := gfs.Verify(context.Background(), root)
	if !errors.Is(err, ErrMissingFile) {
		t.Fatalf("expected ErrMissingFile, got %v", err)
	}

	if !errors.Is(err, ErrStaleFile) {
		t.Fatalf("expected ErrStaleFile, got %v", err)
	}

	assertContains(t, err.Error(), "+new")
}

func TestGenFSPathsSorted(t *testing.T) {
	t.Parallel()

	gfs := NewGenFS()
	if err := gfs.Add(File{Path: "b.md"}, File{Path: "a/z.md"}, File{Path: "a.md"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if diff := cmp.Diff([]string{"a.md", "a/z.md", "b.md"}, gfs.Paths()); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateThenVerifyTree(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	gen := newFixtureGenerator(t, Options{}, widgetDefinition())

	ctx := context.Background()
	files, err := gen.Generate(ctx)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if err := files.Write(ctx, root); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if err := files.Verify(ctx, root); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	page := filepath.Join(root, filepath.FromSlash(DefaultPagesDir), "add_widget.md")
	if err := os.WriteFile(page, []byte("edited by hand\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := files.Verify(ctx, root); !errors.Is(err, ErrStaleFile) {
		t.Fatalf("expected ErrStaleFile after edit, got %v", err)
	}
}
