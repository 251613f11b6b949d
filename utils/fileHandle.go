package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"folio/config"

	"github.com/google/uuid"
)

// SaveUploadedFile stores an uploaded file under <static>/uploads/<folder>/
// with a generated filename. The client-supplied name is only used for its
// extension, so collisions and path traversal are not possible. Returns the
// path relative to the static root, which is what gets persisted.
func SaveUploadedFile(file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	destDir := filepath.Join(config.AppConfig.StaticDir, "uploads", folder)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	newFilename := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(destDir, newFilename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filepath.Join("uploads", folder, newFilename), nil
}

// GetFileURL maps a stored relative path to its public URL
func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	return "/" + filepath.ToSlash(filePath)
}
