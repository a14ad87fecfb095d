package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/acadbase/acadbase/internal/pkg/logger"
)

// LocalStorage saves files on the local filesystem under a public uploads
// directory served statically by the HTTP server.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a LocalStorage rooted at basePath. baseURL, when
// set, is prepended to returned paths so clients get fetchable URLs.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveFileWithPath saves a file to a subdirectory of the storage root.
// Stored filenames are random UUIDs to prevent collisions.
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	var accessiblePath string
	if ls.baseURL != "" {
		accessiblePath = strings.TrimRight(ls.baseURL, "/") + "/"
		if subPath != "" {
			accessiblePath += subPath + "/"
		}
		accessiblePath += uniqueFilename
	} else if subPath != "" {
		accessiblePath = filepath.Join("uploads", subPath, uniqueFilename)
	} else {
		accessiblePath = filepath.Join("uploads", uniqueFilename)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", uniqueFilename).Msg("File saved")
	return accessiblePath, nil
}

// SaveFile saves an uploaded file under the storage root.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	return ls.SaveFileWithPath(fileHeader, "")
}

// DeleteFile removes a file from storage. Missing files are not an error.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" {
		return nil
	}

	fullPath := ls.GetFullPath(filePath)
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete file %s: %w", fullPath, err)
	}
	return nil
}

// GetFullPath resolves an accessible path back to a filesystem path.
func (ls *LocalStorage) GetFullPath(fileURL string) string {
	rel := fileURL
	if ls.baseURL != "" && strings.HasPrefix(fileURL, ls.baseURL) {
		rel = strings.TrimPrefix(fileURL, ls.baseURL)
	}
	rel = strings.TrimPrefix(rel, "/")
	rel = strings.TrimPrefix(rel, "uploads/")
	return filepath.Join(ls.basePath, rel)
}
