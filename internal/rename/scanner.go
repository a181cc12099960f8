package rename

import (
	"os"
	"path/filepath"

	"extrenamer/internal/errors"
	"extrenamer/internal/log"
	"extrenamer/pkg/types"
)

// ListFiles returns the regular files directly inside dir, in the order the
// filesystem enumerates them. Symbolic links count when they resolve to a
// regular file; directories, dangling links and special files are skipped.
func ListFiles(dir string) ([]types.FileInfo, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, classify("error opening directory", dir, errors.DirectoryUnreadable, err)
	}
	defer f.Close()

	// File.ReadDir keeps enumeration order; os.ReadDir would sort.
	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, classify("error reading directory", dir, errors.DirectoryUnreadable, err)
	}

	files := make([]types.FileInfo, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		switch {
		case entry.Type().IsRegular():
			info, err := entry.Info()
			if err != nil {
				// Removed between ReadDir and Info.
				log.LogWithFields(log.F("file", entry.Name())).Debugf("skipping entry: %v", err)
				continue
			}
			files = append(files, types.FileInfo{Path: path, Size: info.Size()})

		case entry.Type()&os.ModeSymlink != 0:
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			files = append(files, types.FileInfo{Path: path, Size: info.Size(), Symlink: true})
		}
	}

	return files, nil
}

// Scan lists dir and keeps the files whose names satisfy the rule's match
// suffix. Only reads are performed.
func Scan(dir string, rule Rule) ([]string, error) {
	matcher, err := rule.Matcher()
	if err != nil {
		return nil, err
	}

	files, err := ListFiles(dir)
	if err != nil {
		return nil, err
	}

	var matched []string
	for i := range files {
		name := files[i].Name()
		if matcher.Match(name) {
			matched = append(matched, name)
		}
	}

	log.LogWithFields(
		log.F("dir", dir),
		log.F("files", len(files)),
		log.F("matched", len(matched)),
	).Debugf("scanned with %s", rule)

	return matched, nil
}
