package validation

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotDirectory is returned for a root that is missing or not a directory
var ErrNotDirectory = errors.New("not a directory")

/*
ValidRoot ...

A root must:

- exist (symlinks are followed).
- be a directory.

Permission to list the root itself is checked later by the walk.
*/
func ValidRoot(path string) error {
	if path == "" {
		return fmt.Errorf("empty path: %w", ErrNotDirectory)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: %w (%v)", path, ErrNotDirectory, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotDirectory)
	}
	return nil
}
