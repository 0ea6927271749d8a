package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	bucket, key, contentType string
	body                     []byte
	err                      error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.bucket = *params.Bucket
	f.key = *params.Key
	f.contentType = *params.ContentType
	f.body, _ = io.ReadAll(params.Body)
	return &s3.PutObjectOutput{}, nil
}

func repoWith(client s3API) *S3Repository {
	return &S3Repository{client: func(context.Context) (s3API, error) { return client, nil }}
}

func TestUpload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runway_20261019_143005.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"x"}`), 0o644))

	fake := &fakeS3{}
	uri, err := repoWith(fake).Upload(context.Background(), "reports", "runway/runway_20261019_143005.json", path)
	require.NoError(t, err)

	assert.Equal(t, "s3://reports/runway/runway_20261019_143005.json", uri)
	assert.Equal(t, "reports", fake.bucket)
	assert.Equal(t, "application/json", fake.contentType)
	assert.Equal(t, `{"id":"x"}`, string(fake.body))
}

func TestUpload_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := repoWith(&fakeS3{}).Upload(ctx, "", "k", "f")
	assert.ErrorContains(t, err, "no S3 bucket given")

	_, err = repoWith(&fakeS3{}).Upload(ctx, "reports", "k", filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorContains(t, err, "error opening")

	path := filepath.Join(t.TempDir(), "r.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.3"), 0o644))
	_, err = repoWith(&fakeS3{err: errors.New("AccessDenied")}).Upload(ctx, "reports", "r.pdf", path)
	assert.ErrorContains(t, err, "error uploading r.pdf to s3://reports/r.pdf: AccessDenied")
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv; charset=utf-8", contentType("r.csv"))
	assert.Equal(t, "text/markdown; charset=utf-8", contentType("r.MD"))
	assert.Equal(t, "application/pdf", contentType("r.pdf"))
	assert.Equal(t, "application/octet-stream", contentType("r.unknownext"))
}
