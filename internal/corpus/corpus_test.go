package corpus_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"docsim/internal/corpus"
	"docsim/internal/logging"
	"docsim/internal/testsupport"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestLoadDirOrdersByName(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"c.txt":       "tercero",
		"a.txt":       "primero",
		"b.txt":       "segundo",
		"notes.md":    "ignored",
		".hidden.txt": "ignored",
	})
	if err := os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	docs, err := corpus.LoadDir(context.Background(), dir, corpus.Options{Extensions: []string{".txt"}})
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	names := corpus.Names(docs)
	want := []string{"a.txt", "b.txt", "c.txt"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("names = %v, want %v", names, want)
	}
	texts := corpus.Texts(docs)
	if texts[0] != "primero" || texts[2] != "tercero" {
		t.Fatalf("texts = %v", texts)
	}
	if docs[1].Path != filepath.Join(dir, "b.txt") {
		t.Fatalf("path = %q", docs[1].Path)
	}
}

func TestLoadDirFilters(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"A.TXT":       "upper",
		"notes.md":    "markdown",
		".hidden.txt": "hidden",
	})

	tests := []struct {
		name string
		opts corpus.Options
		want []string
	}{
		{name: "extension case-insensitive", opts: corpus.Options{Extensions: []string{".txt"}}, want: []string{"A.TXT"}},
		{name: "wildcard", opts: corpus.Options{Extensions: []string{"*"}}, want: []string{"A.TXT", "notes.md"}},
		{name: "hidden included", opts: corpus.Options{Extensions: []string{".txt"}, IncludeHidden: true}, want: []string{".hidden.txt", "A.TXT"}},
		{name: "no extensions", opts: corpus.Options{}, want: []string{"A.TXT", "notes.md"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := corpus.LoadDir(context.Background(), dir, tt.opts)
			if err != nil {
				t.Fatalf("LoadDir: %v", err)
			}
			got := corpus.Names(docs)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Fatalf("names = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadDirErrors(t *testing.T) {
	empty := t.TempDir()
	_, err := corpus.LoadDir(context.Background(), empty, corpus.Options{Extensions: []string{".txt"}})
	if !errors.Is(err, corpus.ErrNoDocuments) {
		t.Fatalf("empty dir err = %v, want ErrNoDocuments", err)
	}

	_, err = corpus.LoadDir(context.Background(), filepath.Join(empty, "missing"), corpus.Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing dir err = %v, want ErrNotExist", err)
	}
}

func TestLoadFilesPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"z.txt": "zeta", "a.txt": "alfa"})

	docs, err := corpus.LoadFiles(context.Background(), []string{
		filepath.Join(dir, "z.txt"),
		filepath.Join(dir, "a.txt"),
	}, corpus.Options{})
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	if got := corpus.Texts(docs); got[0] != "zeta" || got[1] != "alfa" {
		t.Fatalf("texts = %v", got)
	}
}

func TestLoadFilesRejectsOversizedAndInvalid(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"bad.txt": string([]byte{0xff, 0xfe, 0x41}),
		"bom.txt": "\ufeffhola",
	})
	testsupport.WriteFile(t, filepath.Join(dir, "big.txt"), 64)

	if _, err := corpus.LoadFiles(context.Background(), []string{filepath.Join(dir, "big.txt")}, corpus.Options{MaxFileBytes: 16}); err == nil {
		t.Fatal("expected size limit error")
	}
	if _, err := corpus.LoadFiles(context.Background(), []string{filepath.Join(dir, "bad.txt")}, corpus.Options{}); err == nil {
		t.Fatal("expected invalid UTF-8 error")
	}
	docs, err := corpus.LoadFiles(context.Background(), []string{filepath.Join(dir, "bom.txt")}, corpus.Options{})
	if err != nil {
		t.Fatalf("LoadFiles bom: %v", err)
	}
	if docs[0].Text != "hola" {
		t.Fatalf("bom text = %q", docs[0].Text)
	}
	if _, err := corpus.LoadFiles(context.Background(), nil, corpus.Options{}); !errors.Is(err, corpus.ErrNoDocuments) {
		t.Fatalf("nil paths err = %v", err)
	}
}

func TestLoadDispatchesOnDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.txt": "uno", "b.txt": "dos"})

	docs, err := corpus.Load(context.Background(), []string{dir}, corpus.Options{Extensions: []string{".txt"}})
	if err != nil {
		t.Fatalf("Load dir: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("dir docs = %d, want 2", len(docs))
	}

	docs, err = corpus.Load(context.Background(), []string{filepath.Join(dir, "b.txt")}, corpus.Options{})
	if err != nil {
		t.Fatalf("Load file: %v", err)
	}
	if len(docs) != 1 || docs[0].Name != "b.txt" {
		t.Fatalf("file docs = %+v", docs)
	}
}

func TestWatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.txt": "uno"})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var (
		mu     sync.Mutex
		counts []int
	)
	done := make(chan error, 1)
	go func() {
		done <- corpus.Watch(ctx, dir, corpus.Options{Extensions: []string{".txt"}}, 20*time.Millisecond, logging.NewNop(),
			func(_ context.Context, docs []corpus.Document, err error) error {
				if err != nil {
					return err
				}
				mu.Lock()
				counts = append(counts, len(docs))
				n := len(counts)
				mu.Unlock()
				if n == 1 {
					if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte("dos"), 0o644); err != nil {
						return err
					}
				}
				if len(docs) == 2 {
					cancel()
				}
				return nil
			})
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch: %v", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("watch did not finish")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(counts) < 2 || counts[0] != 1 || counts[len(counts)-1] != 2 {
		t.Fatalf("reload counts = %v", counts)
	}
}

func TestFingerprint(t *testing.T) {
	a := []corpus.Document{{Name: "a.txt", Text: "uno"}, {Name: "b.txt", Text: "dos"}}
	b := []corpus.Document{{Name: "a.txt", Text: "uno"}, {Name: "b.txt", Text: "dos"}}
	if corpus.Fingerprint(a) != corpus.Fingerprint(b) {
		t.Fatal("equal corpora should share a fingerprint")
	}
	b[1].Text = "tres"
	if corpus.Fingerprint(a) == corpus.Fingerprint(b) {
		t.Fatal("changed text should change the fingerprint")
	}
	swapped := []corpus.Document{a[1], a[0]}
	if corpus.Fingerprint(a) == corpus.Fingerprint(swapped) {
		t.Fatal("order should change the fingerprint")
	}
}
