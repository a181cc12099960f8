package types

import "path/filepath"

// FileInfo describes a regular file found in the working directory
type FileInfo struct {
	Path    string `json:"path"`
	Size    int64  `json:"size"`
	Symlink bool   `json:"symlink,omitempty"` // entry is a link resolving to a regular file
}

// Name returns the base name of the file
func (f *FileInfo) Name() string {
	return filepath.Base(f.Path)
}
