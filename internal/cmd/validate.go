package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/speclint/internal/config"
	"github.com/harrison/speclint/internal/display"
	"github.com/harrison/speclint/internal/validator"
)

// ValidationFailedError reports how many documents failed validation.
// It distinguishes a failed run (exit code 1) from usage and I/O errors.
type ValidationFailedError struct {
	Count int
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed for %d spec file(s)", e.Count)
}

// runValidate validates the spec file or directory at path, writing one
// report per document to output. Template overrides are discovered by
// walking up from the target's directory.
func runValidate(path string, output io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to access %s: %w", path, err)
	}

	var files []string
	configDir := path
	if info.IsDir() {
		files, err = findSpecFiles(path)
		if err != nil {
			return err
		}
	} else {
		files = []string{path}
		configDir = filepath.Dir(path)
	}

	tpl, err := config.Load(config.Discover(configDir))
	if err != nil {
		return err
	}

	printer := display.NewReportPrinter(output)
	failed := 0

	for i, file := range files {
		if i > 0 {
			fmt.Fprintln(output)
		}

		content, err := os.ReadFile(file)
		if err != nil {
			if len(files) == 1 {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			// Batch mode keeps going and reports the file as failed
			fmt.Fprintf(output, "✗ Failed to read %s: %v\n", filepath.Base(file), err)
			failed++
			continue
		}

		v := validator.NewWithTemplate(string(content), filepath.Base(file), tpl)
		v.Validate()
		printer.Print(v)

		if !v.Passed() {
			failed++
		}
	}

	if failed > 0 {
		return &ValidationFailedError{Count: failed}
	}
	return nil
}

// findSpecFiles scans a directory recursively for Markdown spec files.
// Returns an error when the directory holds none, since that almost always
// means the wrong path was given.
func findSpecFiles(dirPath string) ([]string, error) {
	var specFiles []string

	err := filepath.Walk(dirPath, func(path string, fileInfo os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if fileInfo.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".md" || ext == ".markdown" {
			specFiles = append(specFiles, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory %s: %w", dirPath, err)
	}

	if len(specFiles) == 0 {
		return nil, fmt.Errorf("no spec files (*.md) found in %s", dirPath)
	}

	return specFiles, nil
}
