package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Discover recursively finds all source files (*.cl) in the given directory
func Discover(rootPath string) ([]DiscoveredFile, error) {
	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	// Check if directory exists
	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("directory not found: %s", absRoot)
		}
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", absRoot)
	}

	var files []DiscoveredFile

	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Skip directories we can't access
			if os.IsPermission(err) {
				return nil
			}
			return err
		}

		// Skip directories
		if info.IsDir() {
			return nil
		}

		// Only process source files
		if !strings.HasSuffix(strings.ToLower(path), SourceExtension) {
			return nil
		}
		if ClassifyPath(path) != FileTypeSource {
			return nil
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}

		files = append(files, DiscoveredFile{
			Path:         path,
			RelativePath: relPath,
			Type:         FileTypeSource,
			ModTime:      info.ModTime(),
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return files, nil
}

// FromArg resolves a single command-line path argument: a directory is
// searched recursively for sources, a file is taken as-is regardless of
// extension (the user named it explicitly).
func FromArg(arg string) ([]DiscoveredFile, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", arg, err)
	}

	if info.IsDir() {
		return Discover(arg)
	}

	abs, err := filepath.Abs(arg)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	return []DiscoveredFile{{
		Path:         abs,
		RelativePath: arg,
		Type:         ClassifyPath(arg),
		ModTime:      info.ModTime(),
	}}, nil
}
