package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// s3Source is the subset of minio.Client this program needs to fetch a
// dump file staged in S3-compatible storage instead of on local disk.
type s3Source interface {
	FGetObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.GetObjectOptions) error
}

// newS3Client builds an S3 client from the S3_ENDPOINT/S3_KEY/S3_SECRET
// environment variables.
func newS3Client() (*minio.Client, error) {
	endpoint := os.Getenv("S3_ENDPOINT")
	key := os.Getenv("S3_KEY")
	secret := os.Getenv("S3_SECRET")
	if endpoint == "" {
		return nil, fmt.Errorf("S3_ENDPOINT is not set")
	}
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(key, secret, ""),
		Secure: true,
	})
}

// resolveSource returns a local file path for path, downloading it
// first if it names an S3 object ("s3://bucket/key"). The caller must
// call the returned cleanup func, which removes any downloaded file.
func resolveSource(ctx context.Context, path string, s3 s3Source) (local string, cleanup func(), err error) {
	bucket, key, ok := parseS3URL(path)
	if !ok {
		return path, func() {}, nil
	}
	if s3 == nil {
		return "", nil, fmt.Errorf("%s: S3 source requires S3_ENDPOINT to be configured", path)
	}

	tmp, err := os.CreateTemp("", "mwsqldump-*.sql")
	if err != nil {
		return "", nil, err
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := s3.FGetObject(ctx, bucket, key, tmpPath, minio.GetObjectOptions{}); err != nil {
		os.Remove(tmpPath)
		return "", nil, fmt.Errorf("fetching s3://%s/%s: %w", bucket, key, err)
	}
	return tmpPath, func() { os.Remove(tmpPath) }, nil
}

// parseS3URL splits "s3://bucket/key/with/slashes" into its bucket and
// key; ok is false for any path that isn't an s3:// URL.
func parseS3URL(path string) (bucket, key string, ok bool) {
	const prefix = "s3://"
	if !strings.HasPrefix(path, prefix) {
		return "", "", false
	}
	rest := path[len(prefix):]
	idx := strings.IndexByte(rest, '/')
	if idx < 0 {
		return "", "", false
	}
	return rest[:idx], rest[idx+1:], true
}
