package discovery

import "time"

// DiscoveredFile represents a source file discovered during filesystem traversal
type DiscoveredFile struct {
	Path         string    // Absolute path to file
	RelativePath string    // Path relative to search root
	Type         FileType  // Source or generated output
	ModTime      time.Time // Last modification time
}

// FileType distinguishes lexable sources from files the tool itself produced
type FileType int

const (
	FileTypeSource    FileType = iota // *.cl source file
	FileTypeGenerated                 // *-lex token-stream output
)

// String returns a string representation of FileType
func (ft FileType) String() string {
	switch ft {
	case FileTypeSource:
		return "source"
	case FileTypeGenerated:
		return "generated"
	default:
		return "unknown"
	}
}
