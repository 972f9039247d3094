package media

import (
	"os"
	"path/filepath"
)

// DefaultFile returns the sole file in folder with the given extension.
// With zero or multiple candidates there is no safe default and it returns
// the empty string.
func DefaultFile(folder, ext string) string {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return ""
	}

	var match string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		if match != "" {
			return ""
		}
		match = filepath.Join(folder, entry.Name())
	}
	return match
}
