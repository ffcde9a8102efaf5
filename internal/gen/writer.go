package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes every generated file next to its draft. A non-empty
// outputDir overrides the destination directory of all files.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	for _, file := range files {
		dir := file.Dir
		if outputDir != "" {
			dir = outputDir
		}

		if dir == "" {
			return fmt.Errorf("writing file %s: no destination directory", file.Filename)
		}

		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		outputPath := filepath.Join(dir, file.Filename)

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}
