package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordsearch/pkg/cache"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", "wordsearch")
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", root)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != filepath.Join(root, "wordsearch") {
		t.Errorf("cacheDir() = %q, want under %q", dir, root)
	}
}

func TestCachePathCommand(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", root)

	c := New(&bytes.Buffer{}, log.InfoLevel)
	cmd := c.RootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"cache", "path"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != filepath.Join(root, "wordsearch") {
		t.Errorf("cache path printed %q", got)
	}
}

func TestCacheClearCommand(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", root)

	fc, err := cache.NewFileCache(filepath.Join(root, "wordsearch"))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, key := range []string{"a", "b", "c"} {
		if err := fc.Set(ctx, key, []byte(key), time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	c := New(&bytes.Buffer{}, log.InfoLevel)
	cmd := c.RootCommand()
	cmd.SetArgs([]string{"cache", "clear"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cache clear: %v", err)
	}

	for _, key := range []string{"a", "b", "c"} {
		if _, ok, _ := fc.Get(ctx, key); ok {
			t.Errorf("entry %q still cached after clear", key)
		}
	}
}
