// apiintegrations/jamfpro/helpers.go
package jamfpro

import (
	"fmt"
	"os"
	"path/filepath"
)

// SafeOpenFile opens a file after validating and resolving its path, guarding the multipart
// upload path against directory traversal through ".." segments or symlinks.
func SafeOpenFile(filePath string) (*os.File, error) {
	cleanPath := filepath.Clean(filePath)

	absPath, err := filepath.EvalSymlinks(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve the absolute path: %s, error: %w", filePath, err)
	}

	return os.Open(absPath)
}
