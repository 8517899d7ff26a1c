package validation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidRoot(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(dir, link); err != nil {
		t.Skipf("Symlinks not supported: %v", err)
	}

	valid := []string{dir, link, filepath.Join(dir, ".")}
	invalid := []string{"", file, filepath.Join(dir, "missing"), filepath.Join(file, "child")}
	for _, v := range valid {
		if err := ValidRoot(v); err != nil {
			t.Errorf("Valid root %s is falsely considered invalid: %v", v, err)
		}
	}
	for _, iv := range invalid {
		err := ValidRoot(iv)
		if err == nil {
			t.Errorf("Invalid root %q is falsely considered valid", iv)
			continue
		}
		if !errors.Is(err, ErrNotDirectory) {
			t.Errorf("Error for %q does not wrap ErrNotDirectory: %v", iv, err)
		}
	}
}
