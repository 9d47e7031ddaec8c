package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestReplaceFile(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "Quiz.ini")
		content := []byte("[CONFIG]\nMaxDificult=3\n")

		if err := replaceFile(filename, content, 0644); err != nil {
			t.Fatalf("replaceFile failed: %v", err)
		}

		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("Expected %q, got %q", content, got)
		}
	})

	t.Run("Overwrites Existing File", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "Quiz.ini")
		if err := os.WriteFile(filename, []byte("initial"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		if err := replaceFile(filename, []byte("overwritten"), 0644); err != nil {
			t.Fatalf("replaceFile failed: %v", err)
		}

		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != "overwritten" {
			t.Errorf("Expected content 'overwritten', got '%s'", string(got))
		}
	})

	t.Run("Keeps Existing Mode", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("permission bits are not meaningful on windows")
		}
		filename := filepath.Join(t.TempDir(), "private.ini")
		if err := os.WriteFile(filename, []byte("x=1"), 0600); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		if err := replaceFile(filename, []byte("x=2"), 0644); err != nil {
			t.Fatalf("replaceFile failed: %v", err)
		}

		info, err := os.Stat(filename)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0600 {
			t.Errorf("Expected mode 0600, got %v", info.Mode().Perm())
		}
	})

	t.Run("Creates Missing Directory", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "nested", "dir", "Quiz.ini")

		if err := replaceFile(filename, []byte("ok"), 0644); err != nil {
			t.Fatalf("replaceFile failed: %v", err)
		}
		if _, err := os.Stat(filename); err != nil {
			t.Errorf("Expected file to exist: %v", err)
		}
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		dir := t.TempDir()
		if err := replaceFile(filepath.Join(dir, "a.ini"), []byte("ok"), 0644); err != nil {
			t.Fatalf("replaceFile failed: %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), TempFilePrefix) {
				t.Errorf("Temp file left behind: %s", e.Name())
			}
		}
	})
}
