package interfaces

import (
	"context"
	"time"
)

// IPhotoStorage issues direct-upload URLs for job photos.
type IPhotoStorage interface {
	PresignUpload(ctx context.Context, key, contentType string) (url string, expiresAt time.Time, err error)
}
