package filesystem

import "fmt"

// NotDirectoryError is returned when cd targets something other than a directory.
type NotDirectoryError struct {
	Path string
}

func (e *NotDirectoryError) Error() string {
	return fmt.Sprintf("not a directory: %s", e.Path)
}
