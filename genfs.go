// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package changedoc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// ioConcurrency limits parallel file reads during Verify.
const ioConcurrency = 8

// File is one generated file.
type File struct {
	// Path is the slash-separated path relative to output root.
	Path string
	// Data is the file content written verbatim.
	Data []byte
}

// GenFS is an in-memory set of generated files that can be written to disk or
// compared with files already on disk.
//
// Files cannot be removed once added. Adding a path twice is an error.
type GenFS struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewGenFS creates an empty file set.
func NewGenFS() *GenFS {
	return &GenFS{files: make(map[string][]byte)}
}

// Add adds files to the set. Absolute, escaping and already present paths are
// rejected and no file is added when any of them fails.
func (gfs *GenFS) Add(files ...File) error {
	gfs.mu.Lock()
	defer gfs.mu.Unlock()

	var result *multierror.Error
	seen := make(map[string]struct{}, len(files))
	for _, file := range files {
		name := file.Path
		if filepath.IsAbs(name) || path.IsAbs(name) {
			result = multierror.Append(result, fmt.Errorf("%w: %s", ErrAbsolutePath, name))
			continue
		}

		name = path.Clean(filepath.ToSlash(name))
		if name == ".." || strings.HasPrefix(name, "../") {
			result = multierror.Append(result, fmt.Errorf("%w: %s", ErrEscapingPath, file.Path))
			continue
		}

		if _, ok := gfs.files[name]; ok {
			result = multierror.Append(result, fmt.Errorf("%w: %s", ErrFileConflict, name))
			continue
		}

		if _, ok := seen[name]; ok {
			result = multierror.Append(result, fmt.Errorf("%w: %s", ErrFileConflict, name))
			continue
		}

		seen[name] = struct{}{}
	}

	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	for _, file := range files {
		gfs.files[path.Clean(filepath.ToSlash(file.Path))] = file.Data
	}

	return nil
}

// Len returns the number of files.
func (gfs *GenFS) Len() int {
	gfs.mu.Lock()
	defer gfs.mu.Unlock()

	return len(gfs.files)
}

// Paths returns file paths in sorted order.
func (gfs *GenFS) Paths() []string {
	gfs.mu.Lock()
	defer gfs.mu.Unlock()

	paths := make([]string, 0, len(gfs.files))
	for name := range gfs.files {
		paths = append(paths, name)
	}

	sort.Strings(paths)
	return paths
}

// Get returns the content stored at path.
func (gfs *GenFS) Get(name string) ([]byte, bool) {
	gfs.mu.Lock()
	defer gfs.mu.Unlock()

	data, ok := gfs.files[path.Clean(filepath.ToSlash(name))]
	return data, ok
}

// Write writes every file below prefix in sorted path order, creating parent
// directories and overwriting existing files.
func (gfs *GenFS) Write(ctx context.Context, prefix string) error {
	for _, file := range gfs.sorted() {
		if err := ctx.Err(); err != nil {
			return err
		}

		target := filepath.Join(prefix, filepath.FromSlash(file.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("%s: ensure parent directory: %w", target, err)
		}

		if err := os.WriteFile(target, file.Data, 0o644); err != nil { //nolint:gosec
			return fmt.Errorf("%s: write file: %w", target, err)
		}
	}

	return nil
}

// Verify compares every file with its counterpart below prefix and reports
// all missing or differing files as one error.
func (gfs *GenFS) Verify(ctx context.Context, prefix string) error {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(ioConcurrency)

	var (
		mu     sync.Mutex
		result *multierror.Error
	)

	report := func(err error) {
		mu.Lock()
		result = multierror.Append(result, err)
		mu.Unlock()
	}

	for _, file := range gfs.sorted() {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			target := filepath.Join(prefix, filepath.FromSlash(file.Path))
			onDisk, err := os.ReadFile(target) //nolint:gosec
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					report(fmt.Errorf("%w: %s", ErrMissingFile, target))
					return nil
				}

				return fmt.Errorf("%s: read file: %w", target, err)
			}

			if diff := cmp.Diff(string(onDisk), string(file.Data)); diff != "" {
				report(fmt.Errorf("%w: %s (-disk +generated):\n%s", ErrStaleFile, target, diff))
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return fmt.Errorf("verify generated files: %w", err)
	}

	if result != nil {
		sort.Slice(result.Errors, func(i, j int) bool {
			return result.Errors[i].Error() < result.Errors[j].Error()
		})
	}

	return result.ErrorOrNil()
}

// sorted returns a snapshot of files ordered by path.
func (gfs *GenFS) sorted() []File {
	gfs.mu.Lock()
	defer gfs.mu.Unlock()

	files := make([]File, 0, len(gfs.files))
	for name, data := range gfs.files {
		files = append(files, File{Path: name, Data: data})
	}

	sort.Slice(files, func(i, j int) bool {
		return strings.Compare(files[i].Path, files[j].Path) < 0
	})

	return files
}
