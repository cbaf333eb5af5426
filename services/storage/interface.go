package storage

import (
	"context"
	"time"
)

// StorageService defines the interface for media storage operations. Two
// implementations exist: Firebase Storage and Cloudinary, selected by
// configuration.
type StorageService interface {
	// UploadFile stores a local file under destFolder and returns its
	// permanent identifier (object path or public ID).
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a stored file by its identifier.
	DeleteFile(ctx context.Context, id string) error
	// GetDownloadURL returns a public URL for the file.
	GetDownloadURL(ctx context.Context, id string, expires time.Duration) (string, error)
	// GetSecureDownloadURL returns a signed, short-lived URL.
	GetSecureDownloadURL(ctx context.Context, id string, expires time.Duration) (string, error)
}
