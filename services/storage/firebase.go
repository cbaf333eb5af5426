package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Omoefe-bazunu/hhaven/config"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// FirebaseStorageService implements StorageService using Firebase Storage.
type FirebaseStorageService struct {
	client         *storage.Client
	bucketName     string
	serviceAccount *config.ServiceAccount
}

// NewFirebaseStorageService creates a new FirebaseStorageService.
func NewFirebaseStorageService(serviceAccountJSONPath, bucketName string) (*FirebaseStorageService, error) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx, option.WithCredentialsFile(serviceAccountJSONPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	// Load service account for signing URLs
	sa, err := loadServiceAccount(serviceAccountJSONPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load service account for signing URLs: %w", err)
	}

	return &FirebaseStorageService{
		client:         client,
		bucketName:     bucketName,
		serviceAccount: sa,
	}, nil
}

func loadServiceAccount(path string) (*config.ServiceAccount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sa config.ServiceAccount
	if err := json.Unmarshal(data, &sa); err != nil {
		return nil, err
	}
	return &sa, nil
}

// UploadFile stores the file publicly readable under destFolder. A random
// prefix keeps repeated uploads of the same filename from colliding.
func (s *FirebaseStorageService) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	file, err := os.Open(localFilePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	name := uuid.NewString() + "_" + filepath.Base(localFilePath)
	objectPath := filepath.Join(destFolder, name)
	obj := s.client.Bucket(s.bucketName).Object(objectPath)
	w := obj.NewWriter(ctx)

	// Set public read ACL
	w.ACL = []storage.ACLRule{{Entity: storage.AllUsers, Role: storage.RoleReader}}

	// Detect and set content type
	if ext := filepath.Ext(localFilePath); ext != "" {
		w.ObjectAttrs.ContentType = mime.TypeByExtension(ext)
	}

	if _, err := io.Copy(w, file); err != nil {
		return "", fmt.Errorf("failed to copy file to storage: %w", err)
	}

	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return objectPath, nil
}

// DeleteFile deletes an object from the bucket.
func (s *FirebaseStorageService) DeleteFile(ctx context.Context, id string) error {
	obj := s.client.Bucket(s.bucketName).Object(id)
	if err := obj.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetDownloadURL returns a public URL assuming the file is publicly accessible.
func (s *FirebaseStorageService) GetDownloadURL(ctx context.Context, id string, expires time.Duration) (string, error) {
	u := fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media",
		s.bucketName, url.QueryEscape(id))
	return u, nil
}

// GetSecureDownloadURL returns a signed URL valid for the specified duration.
func (s *FirebaseStorageService) GetSecureDownloadURL(ctx context.Context, id string, expires time.Duration) (string, error) {
	u, err := storage.SignedURL(s.bucketName, id, &storage.SignedURLOptions{
		GoogleAccessID: s.serviceAccount.ClientEmail,
		PrivateKey:     []byte(strings.ReplaceAll(s.serviceAccount.PrivateKey, `\n`, "\n")),
		Method:         "GET",
		Expires:        time.Now().Add(expires),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}
	return u, nil
}
