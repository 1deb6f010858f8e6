package corpus

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// ErrNoDocuments is returned when a source yields no documents.
var ErrNoDocuments = errors.New("no documents found")

// maxParallelReads bounds concurrent file reads.
const maxParallelReads = 8

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is one raw input text and where it came from.
type Document struct {
	Name string
	Path string
	Text string
}

// Options controls which files are loaded.
type Options struct {
	// Extensions lists lowercase extensions including the dot. "*" matches
	// every file. Empty means every file.
	Extensions []string
	// IncludeHidden loads dot files from directories.
	IncludeHidden bool
	// MaxFileBytes rejects larger files. Zero disables the limit.
	MaxFileBytes int64
}

func (o Options) matches(name string) bool {
	if !o.IncludeHidden && strings.HasPrefix(name, ".") {
		return false
	}
	if len(o.Extensions) == 0 || slices.Contains(o.Extensions, "*") {
		return true
	}
	return slices.Contains(o.Extensions, strings.ToLower(filepath.Ext(name)))
}

// Texts returns the raw texts of docs in order.
func Texts(docs []Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Text
	}
	return out
}

// Names returns the display names of docs in order.
func Names(docs []Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Name
	}
	return out
}

// Fingerprint returns a SHA-256 digest over the names and texts of docs in
// order. Two corpora with equal fingerprints analyze identically.
func Fingerprint(docs []Document) string {
	h := sha256.New()
	for _, d := range docs {
		fmt.Fprintf(h, "%d:%s%d:", len(d.Name), d.Name, len(d.Text))
		h.Write([]byte(d.Text))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Load reads a single directory when paths names exactly one directory, and
// otherwise treats every path as a file.
func Load(ctx context.Context, paths []string, opts Options) ([]Document, error) {
	if len(paths) == 1 {
		info, err := os.Stat(paths[0])
		if err != nil {
			return nil, fmt.Errorf("inspect %q: %w", paths[0], err)
		}
		if info.IsDir() {
			return LoadDir(ctx, paths[0], opts)
		}
	}
	return LoadFiles(ctx, paths, opts)
}

// LoadDir reads every matching regular file directly inside dir, ordered by
// file name. Subdirectories are not descended into.
func LoadDir(ctx context.Context, dir string, opts Options) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory %q: %w", dir, err)
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			if entry.Type()&os.ModeSymlink == 0 {
				continue
			}
			info, err := os.Stat(filepath.Join(dir, entry.Name()))
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
		}
		if !opts.matches(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoDocuments, dir)
	}
	// os.ReadDir sorts by name already; documents are identified by position,
	// so keep that order explicit.
	slices.Sort(paths)
	return LoadFiles(ctx, paths, opts)
}

// LoadFiles reads paths in parallel and returns documents in the same order.
func LoadFiles(ctx context.Context, paths []string, opts Options) ([]Document, error) {
	if len(paths) == 0 {
		return nil, ErrNoDocuments
	}
	docs := make([]Document, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := readText(path, opts.MaxFileBytes)
			if err != nil {
				return err
			}
			docs[i] = Document{Name: filepath.Base(path), Path: path, Text: text}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func readText(path string, limit int64) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open document: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("stat document %q: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("document %q is a directory", path)
	}
	if limit > 0 && info.Size() > limit {
		return "", fmt.Errorf("document %q is %d bytes, limit is %d", path, info.Size(), limit)
	}

	var r io.Reader = file
	if limit > 0 {
		r = io.LimitReader(file, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read document %q: %w", path, err)
	}
	if limit > 0 && int64(len(data)) > limit {
		return "", fmt.Errorf("document %q exceeds %d bytes", path, limit)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", fmt.Errorf("document %q is not valid UTF-8", path)
	}
	return string(data), nil
}
