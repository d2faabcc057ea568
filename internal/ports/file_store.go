package ports

// FileStore reads and writes whole text files.
type FileStore interface {
	ReadText(path string) (string, error)
	// WriteText creates the file if absent and truncates it if present.
	WriteText(path, content string) error
}
