package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAWSConfig() aws.Config {
	return aws.Config{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("key", "secret", ""),
	}
}

func TestPresignUpload_PathStyleEndpoint(t *testing.T) {
	s := NewS3PhotoStorage(testAWSConfig(), "photos", "http://localhost:4566", 5*time.Minute, nil)

	before := time.Now().UTC()
	url, expiresAt, err := s.PresignUpload(context.Background(), "jobs/j1/photos/p1/abc", "image/jpeg")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:4566/photos/jobs/j1/photos/p1/abc?"), url)
	assert.Contains(t, url, "X-Amz-Expires=300")
	assert.WithinDuration(t, before.Add(5*time.Minute), expiresAt, 5*time.Second)
}

func TestPresignUpload_DefaultTTL(t *testing.T) {
	s := NewS3PhotoStorage(testAWSConfig(), "photos", "", 0, nil)

	url, _, err := s.PresignUpload(context.Background(), "k", "")
	require.NoError(t, err)
	assert.Contains(t, url, "X-Amz-Expires=900")
	assert.Contains(t, url, "photos.s3.")
}
