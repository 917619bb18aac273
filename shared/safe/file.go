package safe

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// EnsureDir creates the directory at path, including any missing parents.
// It is a no-op when the directory already exists.
//
// Example:
//
//	if err := safe.EnsureDir(stateDir); err != nil {
//	    return fmt.Errorf("prepare state dir: %w", err)
//	}
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}

	return nil
}

// ReadFileOrDefault reads the file at path, returning defaultValue when the
// file does not exist or cannot be read.
//
// Example:
//
//	token := safe.ReadFileOrDefault(tokenPath, "")
func ReadFileOrDefault(path, defaultValue string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultValue
	}

	return string(data)
}

// WriteFile writes content to path, creating any missing parent directories
// first.
//
// Example:
//
//	if err := safe.WriteFile(reportPath, report); err != nil {
//	    return fmt.Errorf("write report: %w", err)
//	}
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := EnsureDir(dir); err != nil {
			return err
		}
	}

	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("write file %s: %w", path, err)
	}

	return nil
}
