package storage

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awsadapter "github.com/diillson/runway-dashboard-go/internal/adapter/driven/aws"
	"github.com/diillson/runway-dashboard-go/internal/domain/repository"
)

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Repository publica os relatórios exportados em um bucket S3.
type S3Repository struct {
	client func(ctx context.Context) (s3API, error)
}

// NewS3Repository creates a StorageRepository for the given profile and region.
// An empty region keeps the one from the shared AWS config.
func NewS3Repository(loader *awsadapter.ConfigLoader, profile, region string) repository.StorageRepository {
	return &S3Repository{
		client: func(ctx context.Context) (s3API, error) {
			cfg, err := loader.Load(ctx, profile, region)
			if err != nil {
				return nil, err
			}
			return s3.NewFromConfig(cfg), nil
		},
	}
}

// Upload puts the file at filePath under bucket/key and returns its s3:// URI.
func (r *S3Repository) Upload(ctx context.Context, bucket, key, filePath string) (string, error) {
	if bucket == "" {
		return "", fmt.Errorf("no S3 bucket given")
	}

	client, err := r.client(ctx)
	if err != nil {
		return "", err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("error opening %s for upload: %w", filePath, err)
	}
	defer file.Close()

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType(filePath)),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading %s to s3://%s/%s: %w", filepath.Base(filePath), bucket, key, err)
	}

	return fmt.Sprintf("s3://%s/%s", bucket, key), nil
}

func contentType(filePath string) string {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".md":
		return "text/markdown; charset=utf-8"
	case ".csv":
		return "text/csv; charset=utf-8"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
