package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateOutputPath cleans a path that key material will be written to. It
// rejects empty paths, ".." segments and paths that already exist, so a
// generated key never replaces an existing file.
func ValidateOutputPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("invalid output path: empty")
	}

	// Reject any ".." segment before cleaning hides it
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".." {
			return "", fmt.Errorf("invalid output path: path traversal not allowed")
		}
	}
	clean := filepath.Clean(path)

	if _, err := os.Lstat(clean); err == nil {
		return "", fmt.Errorf("refusing to overwrite existing path %s", clean)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to stat %s: %w", clean, err)
	}
	return clean, nil
}

// WriteNewFile writes data to a file that must not exist yet, readable only by
// the owner.
func WriteNewFile(path string, data []byte) error {
	clean, err := ValidateOutputPath(path)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(clean, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
