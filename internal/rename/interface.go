package rename

// Renamer defines the interface for renaming one file inside a directory.
// This allows for dependency injection in tests and other parts of the application
type Renamer interface {
	// RenameFile renames dir/oldName to dir/newName without overwriting
	RenameFile(dir, oldName, newName string) error
}

// Ensure Engine implements the Renamer interface
var _ Renamer = (*Engine)(nil)
