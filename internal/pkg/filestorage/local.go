package filestorage

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arda/campusconnect/internal/pkg/logger"
)

// LocalStorage saves uploaded files on the local filesystem under a base
// directory, one subdirectory per resource type.
type LocalStorage struct {
	basePath string
}

// StoredFile describes a saved upload. FilePath is the relative path
// recorded on the owning record, e.g. "uploads/materials/...".
type StoredFile struct {
	FileName string // Original client-side filename
	FilePath string
	FileSize int64
	MimeType string
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")
	return &LocalStorage{basePath: basePath}, nil
}

// BasePath returns the storage root directory.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// SaveFile stores an uploaded file under the given subdirectory with a
// collision-resistant name of the form <epoch-ms>-<random>-<original-name>.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subDir string) (*StoredFile, error) {
	if fileHeader == nil {
		return nil, fmt.Errorf("no file provided")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(ls.basePath, subDir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload subdirectory: %w", err)
	}

	originalName := filepath.Base(fileHeader.Filename)
	storedName := fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), originalName)
	dstPath := filepath.Join(dir, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	logger.Info().Str("filename", originalName).Str("saved_as", storedName).Str("subdir", subDir).Msg("File saved")
	return &StoredFile{
		FileName: originalName,
		FilePath: filepath.ToSlash(filepath.Join("uploads", subDir, storedName)),
		FileSize: written,
		MimeType: mimeType,
	}, nil
}

// Resolve maps a stored relative path ("uploads/materials/<name>") back to
// the physical path, refusing anything that escapes the storage root.
func (ls *LocalStorage) Resolve(filePath string) (string, error) {
	rel := strings.TrimPrefix(filepath.ToSlash(filePath), "uploads/")
	if rel == "" || strings.Contains(rel, "..") {
		return "", fmt.Errorf("invalid file path: %s", filePath)
	}
	physical := filepath.Join(ls.basePath, filepath.FromSlash(rel))

	if _, err := os.Stat(physical); err != nil {
		return "", err
	}
	return physical, nil
}

// DeleteFile removes a stored file. A missing file is treated as already
// deleted; callers log but do not fail on other errors.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" {
		return nil
	}

	physical, err := ls.Resolve(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", filePath).Msg("File to delete does not exist")
			return nil
		}
		return err
	}

	if err := os.Remove(physical); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	logger.Info().Str("path", physical).Msg("File deleted")
	return nil
}

// AllowedExtension reports whether the filename carries one of the allowed
// extensions (compared without the leading dot, case-insensitively).
func AllowedExtension(filename string, allowed []string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, a := range allowed {
		if ext == strings.ToLower(a) {
			return true
		}
	}
	return false
}
