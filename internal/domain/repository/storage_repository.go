package repository

import "context"

// StorageRepository publishes exported report files to object storage.
type StorageRepository interface {
	Upload(ctx context.Context, bucket, key, filePath string) (string, error)
}
