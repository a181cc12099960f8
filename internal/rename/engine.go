package rename

import (
	"os"
	"path/filepath"
	"syscall"

	"extrenamer/internal/errors"
	"extrenamer/internal/log"
	"extrenamer/pkg/types"
)

// Engine performs renames inside a single directory.
type Engine struct {
	rename func(oldpath, newpath string) error
	lstat  func(name string) (os.FileInfo, error)
}

// New creates an Engine backed by the real filesystem.
func New() *Engine {
	return &Engine{
		rename: os.Rename,
		lstat:  os.Lstat,
	}
}

// RenameFile renames dir/oldName to dir/newName. An existing destination is
// never overwritten: it is reported as a DestinationExists error. Renaming a
// file onto itself is a successful no-op.
func (e *Engine) RenameFile(dir, oldName, newName string) error {
	if newName == "" {
		return errors.NewFileError("empty target name", oldName, errors.RenameFailed, nil)
	}

	src := filepath.Join(dir, oldName)
	dest := filepath.Join(dir, newName)

	if src == dest {
		log.LogWithFields(log.F("file", oldName)).Debug("name unchanged, skipping rename")
		return nil
	}

	srcInfo, err := e.lstat(src)
	if err != nil {
		return classify("source file error", oldName, errors.RenameFailed, err)
	}

	if destInfo, err := e.lstat(dest); err == nil {
		// On case-insensitive filesystems a case-only change resolves to
		// the source itself.
		if !os.SameFile(srcInfo, destInfo) {
			return errors.NewFileError("destination already exists", newName, errors.DestinationExists, nil)
		}
	} else if !os.IsNotExist(err) {
		return classify("error checking destination", newName, errors.RenameFailed, err)
	}

	if err := e.rename(src, dest); err != nil {
		return classify("rename failed", oldName, errors.RenameFailed, err)
	}

	log.LogWithFields(log.F("file", oldName), log.F("target", newName)).Debug("renamed")
	return nil
}

// Execute renames every matched name in dir according to rule. Each file is
// independent: a failure is recorded in its result and the batch carries on.
// onResult, when non-nil, sees every result as soon as it is known.
func Execute(r Renamer, dir string, names []string, rule Rule, onResult func(types.RenameResult)) types.Summary {
	summary := types.Summary{Matched: len(names)}

	for _, name := range names {
		result := types.RenameResult{
			OldName: name,
			NewName: rule.NewName(name),
		}

		if err := r.RenameFile(dir, result.OldName, result.NewName); err != nil {
			result.Error = err
			log.LogWithFields(
				log.F("file", result.OldName),
				log.F("target", result.NewName),
				log.F("kind", errors.KindOf(err)),
			).Debugf("rename failed: %v", err)
		} else {
			result.Renamed = true
		}

		summary.Add(result)
		if onResult != nil {
			onResult(result)
		}
	}

	return summary
}

// Plan computes the rename mapping without touching the filesystem.
func Plan(names []string, rule Rule) []types.RenameResult {
	plan := make([]types.RenameResult, 0, len(names))
	for _, name := range names {
		plan = append(plan, types.RenameResult{OldName: name, NewName: rule.NewName(name)})
	}
	return plan
}

// classify wraps an OS error in a FileError whose kind reflects the cause,
// falling back to kind. Path errors are unwrapped so the message carries the
// OS reason rather than repeating full paths.
func classify(msg, name string, kind errors.ErrorKind, err error) error {
	switch {
	case os.IsNotExist(err):
		kind = errors.FileNotFound
	case os.IsPermission(err):
		kind = errors.FileAccessDenied
	case errors.Is(err, syscall.EEXIST), errors.Is(err, syscall.ENOTEMPTY):
		kind = errors.DestinationExists
	}

	var linkErr *os.LinkError
	var pathErr *os.PathError
	switch {
	case errors.As(err, &linkErr):
		err = linkErr.Err
	case errors.As(err, &pathErr):
		err = pathErr.Err
	}

	return errors.NewFileError(msg, name, kind, err)
}
