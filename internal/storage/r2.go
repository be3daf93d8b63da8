package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// ObjectInfo describes a stored object. CreatedAt is the object's
// last-modified time, which for write-once objects is creation time.
type ObjectInfo struct {
	Key       string
	CreatedAt time.Time
}

// R2Client wraps the S3 API against a Cloudflare R2 endpoint. One
// client serves every bucket; public URLs are composed from the
// configured public base URL.
type R2Client struct {
	client  *s3.Client
	baseURL string
}

func NewR2Client(ctx context.Context) (*R2Client, error) {
	endpoint := os.Getenv("R2_ENDPOINT")
	accessKey := os.Getenv("R2_ACCESS_KEY")
	secretKey := os.Getenv("R2_SECRET_KEY")
	baseURL := os.Getenv("R2_PUBLIC_BASE_URL")

	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				accessKey,
				secretKey,
				"",
			),
		),
		config.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(
				func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					if service == s3.ServiceID {
						return aws.Endpoint{
							URL:           endpoint,
							SigningRegion: "auto",
						}, nil
					}
					return aws.Endpoint{}, &aws.EndpointNotFoundError{}
				},
			),
		),
	)
	if err != nil {
		return nil, err
	}

	return &R2Client{
		client:  s3.NewFromConfig(cfg),
		baseURL: baseURL,
	}, nil
}

// Upload stores the object and returns its public URL.
func (r *R2Client) Upload(
	ctx context.Context,
	bucket string,
	key string,
	body io.Reader,
	contentType string,
	cacheControl string,
) (string, error) {

	input := &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = &contentType
	}
	if cacheControl != "" {
		input.CacheControl = &cacheControl
	}

	if _, err := r.client.PutObject(ctx, input); err != nil {
		return "", err
	}

	return r.PublicURL(bucket, key), nil
}

// Remove deletes the given objects in one call. A nil or empty key
// list is a no-op.
func (r *R2Client) Remove(ctx context.Context, bucket string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	objects := make([]types.ObjectIdentifier, 0, len(keys))
	for i := range keys {
		objects = append(objects, types.ObjectIdentifier{Key: &keys[i]})
	}

	_, err := r.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: &bucket,
		Delete: &types.Delete{Objects: objects},
	})
	return err
}

// List returns the bucket's objects newest-first. limit <= 0 returns
// everything. S3 lists keys lexicographically, so ordering by creation
// time happens client-side.
func (r *R2Client) List(ctx context.Context, bucket string, limit int) ([]ObjectInfo, error) {
	out, err := r.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: &bucket,
	})
	if err != nil {
		return nil, err
	}

	objects := make([]ObjectInfo, 0, len(out.Contents))
	for _, obj := range out.Contents {
		objects = append(objects, ObjectInfo{
			Key:       aws.ToString(obj.Key),
			CreatedAt: aws.ToTime(obj.LastModified),
		})
	}

	sort.Slice(objects, func(i, j int) bool {
		return objects[i].CreatedAt.After(objects[j].CreatedAt)
	})

	if limit > 0 && len(objects) > limit {
		objects = objects[:limit]
	}

	return objects, nil
}

// PublicURL composes the public URL for a stored object.
func (r *R2Client) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", r.baseURL, bucket, key)
}

// IsAccessDenied reports whether the storage error is a bucket policy
// rejection, so callers can surface a misconfiguration message instead
// of a generic failure.
func IsAccessDenied(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "AccessDenied"
}
