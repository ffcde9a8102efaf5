package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output.
func writeDebugUnformatted(dir, filename string, content []byte) error {
	if dir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	// Not a .go file: a broken sidecar must not break the draft's package
	debugName := strings.TrimSuffix(filename, ".go") + ".go.unformatted"

	return os.WriteFile(filepath.Join(dir, debugName), content, filePerm)
}
