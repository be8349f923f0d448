package discovery

import (
	"path/filepath"
	"strings"
)

// SourceExtension is the file extension of lexable sources.
const SourceExtension = ".cl"

// GeneratedSuffix is appended to an input path to form its token-stream
// output path, and marks files discovery must never feed back into the lexer.
const GeneratedSuffix = "-lex"

// ClassifyFile determines whether a file is a lexable source or a
// generated token-stream output, based on naming convention
func ClassifyFile(filename string) FileType {
	// Normalize to lowercase for case-insensitive comparison
	lower := strings.ToLower(filename)

	if strings.HasSuffix(lower, GeneratedSuffix) {
		return FileTypeGenerated
	}

	return FileTypeSource
}

// ClassifyPath determines file type from a full path
func ClassifyPath(path string) FileType {
	return ClassifyFile(filepath.Base(path))
}

// IsSourceFile returns true if the file is a lexable source file
func IsSourceFile(filename string) bool {
	return ClassifyFile(filename) == FileTypeSource
}
