package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorageService implements StorageService over Cloudinary.
type CloudinaryStorageService struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiSecret string
}

// NewCloudinaryStorageService creates a new CloudinaryStorageService instance.
func NewCloudinaryStorageService(cld *cloudinary.Cloudinary, cloudName, apiSecret string) *CloudinaryStorageService {
	return &CloudinaryStorageService{
		cld:       cld,
		cloudName: cloudName,
		apiSecret: apiSecret,
	}
}

// UploadFile uploads a file into the specified folder and returns the
// permanent public ID.
func (s *CloudinaryStorageService) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	uploadParams := uploader.UploadParams{
		Folder: destFolder,
	}
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploadParams)
	if err != nil {
		return "", fmt.Errorf("CloudinaryStorageService: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("CloudinaryStorageService: no public ID returned")
	}
	return result.PublicID, nil
}

// DeleteFile deletes a file given its public ID.
func (s *CloudinaryStorageService) DeleteFile(ctx context.Context, id string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: id})
	if err != nil {
		return fmt.Errorf("CloudinaryStorageService: failed to delete file: %w", err)
	}
	return nil
}

// GetDownloadURL constructs a public URL for a file.
func (s *CloudinaryStorageService) GetDownloadURL(ctx context.Context, id string, expires time.Duration) (string, error) {
	a, err := s.cld.Media(id)
	if err != nil {
		return "", fmt.Errorf("CloudinaryStorageService: failed to get asset: %w", err)
	}
	u, err := a.String()
	if err != nil {
		return "", fmt.Errorf("CloudinaryStorageService: failed to get URL string: %w", err)
	}
	return u, nil
}

// GetSecureDownloadURL generates a signed, short-lived URL. It computes a
// signature using SHA-1 over "expires_at" and "public_id" concatenated with
// the API secret.
func (s *CloudinaryStorageService) GetSecureDownloadURL(ctx context.Context, id string, expires time.Duration) (string, error) {
	expiresAt := time.Now().Add(expires).Unix()
	stringToSign := fmt.Sprintf("expires_at=%d&public_id=%s%s", expiresAt, id, s.apiSecret)
	signature := computeSHA1(stringToSign)
	secureURL := fmt.Sprintf("https://res.cloudinary.com/%s/image/authenticated/s--%s--/expires_%d/%s",
		s.cloudName, signature, expiresAt, id)
	return secureURL, nil
}

// computeSHA1 computes the SHA-1 hash of the input and returns its hex encoding.
func computeSHA1(input string) string {
	h := sha1.New()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}
