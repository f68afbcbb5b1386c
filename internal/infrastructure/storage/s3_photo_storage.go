package storage

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"oficina_jobs/internal/usecase/interfaces"
	"oficina_jobs/pkg/logger"
)

const defaultPresignTTL = 15 * time.Minute

// S3PhotoStorage issues presigned PUT URLs so clients upload job photos
// straight to the bucket.
type S3PhotoStorage struct {
	presign *s3.PresignClient
	bucket  string
	ttl     time.Duration
	log     *zap.Logger
}

var _ interfaces.IPhotoStorage = (*S3PhotoStorage)(nil)

// NewS3PhotoStorage builds the storage. A non-empty endpoint switches to
// path-style addressing for S3-compatible servers (LocalStack, MinIO).
func NewS3PhotoStorage(awsCfg aws.Config, bucket, endpoint string, ttl time.Duration, log *zap.Logger) *S3PhotoStorage {
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	if ttl <= 0 {
		ttl = defaultPresignTTL
	}
	return &S3PhotoStorage{
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		ttl:     ttl,
		log:     logger.OrNop(log),
	}
}

func (s *S3PhotoStorage) PresignUpload(ctx context.Context, key, contentType string) (string, time.Time, error) {
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	req, err := s.presign.PresignPutObject(ctx, in, s3.WithPresignExpires(s.ttl))
	if err != nil {
		s.log.Error("[photo][storage] presign failed", zap.String("key", key), zap.Error(err))
		return "", time.Time{}, err
	}
	expiresAt := time.Now().UTC().Add(s.ttl)
	s.log.Debug("[photo][storage] presigned upload", zap.String("key", key), zap.Time("expires_at", expiresAt))
	return req.URL, expiresAt, nil
}
