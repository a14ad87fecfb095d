package filestorage

import "mime/multipart"

// FileStorage defines the interface for storing uploaded files.
type FileStorage interface {
	// SaveFile saves a file under the storage root and returns its accessible path
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath saves a file under a subdirectory of the storage root
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// DeleteFile removes a stored file
	DeleteFile(filePath string) error

	// GetFullPath returns the filesystem path behind an accessible path
	GetFullPath(fileURL string) string
}
