package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const MaxImageSize = 10 * 1024 * 1024 // 10 MB

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrInvalidMimeType = errors.New("file type is not allowed")
)

// allowedImageTypes defines which upload types are accepted.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Uploader pushes one selected image to the object store and resolves its
// public URL. The entity prefix keeps each record type's images under its
// own key namespace.
type Uploader struct {
	store  ObjectStore
	prefix string
}

func NewUploader(store ObjectStore, prefix string) *Uploader {
	return &Uploader{store: store, prefix: prefix}
}

// Upload stores the file and returns the public retrieval URL. It validates
// size and sniffed MIME type first, so a rejected file never reaches the
// bucket.
func (u *Uploader) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size == 0 {
		return "", ErrEmptyFile
	}
	if fileHeader.Size > MaxImageSize {
		return "", ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Detect MIME type from the first 512 bytes
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := http.DetectContentType(buf[:n])
	mimeType = strings.Split(mimeType, ";")[0]

	if !allowedImageTypes[mimeType] {
		return "", ErrInvalidMimeType
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	key := ObjectKey(u.prefix, fileHeader.Filename, time.Now())
	if err := u.store.Put(ctx, key, file, mimeType); err != nil {
		return "", err
	}

	return u.store.PublicURL(key), nil
}
